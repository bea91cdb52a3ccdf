//go:build unit

package readstore_test

import (
	"context"
	"errors"
	"testing"

	"barista-cafe-api/internal/domain/booking"
	"barista-cafe-api/internal/infra"
	"barista-cafe-api/internal/infra/readstore"
	sqlc "barista-cafe-api/internal/infra/sqlc/generated"
	"barista-cafe-api/internal/pkg/pgconv"
	"barista-cafe-api/tests/common/builder"
	readstoremock "barista-cafe-api/tests/mock/readstore"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	errDBConnectionLost = errors.New("database connection lost")
)

// =============================================================================
// FindByID Tests
// =============================================================================

func TestBookingReadStore_FindByID(t *testing.T) {
	ctx := context.Background()
	b := builder.NewBookingBuilder().WithSpecialRequests("Window seat")

	testCases := []struct {
		name          string
		setupMock     func(*readstoremock.MockBookingReadQueries, uuid.UUID)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: booking found",
			setupMock: func(mock *readstoremock.MockBookingReadQueries, id uuid.UUID) {
				mock.EXPECT().GetBookingByID(ctx, gomock.Any(), id).Return(b.BuildInfra(), nil)
			},
		},
		{
			name: "error: booking not found",
			setupMock: func(mock *readstoremock.MockBookingReadQueries, id uuid.UUID) {
				mock.EXPECT().GetBookingByID(ctx, gomock.Any(), id).Return(sqlc.Booking{}, pgx.ErrNoRows)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
		{
			name: "error: database error",
			setupMock: func(mock *readstoremock.MockBookingReadQueries, id uuid.UUID) {
				mock.EXPECT().GetBookingByID(ctx, gomock.Any(), id).Return(sqlc.Booking{}, errDBConnectionLost)
			},
			expectedError: true,
			expectKind:    infra.KindDBFailure,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
			store := readstore.NewBookingReadStore(mockQueries, &mockDBTX{})
			tc.setupMock(mockQueries, b.ID)

			view, err := store.FindByID(ctx, b.ID)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind), "expected kind [%v] but got (%v)", tc.expectKind, err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, b.BuildView(), view)
		})
	}
}

// =============================================================================
// ListAll Tests
// =============================================================================

func TestBookingReadStore_ListAll(t *testing.T) {
	ctx := context.Background()

	t.Run("success: rows mapped in store order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		later := builder.NewBookingBuilder().WithDate("2025-06-02").WithTime("18:30")
		earlier := builder.NewBookingBuilder().AsCancelled()
		mockQueries.EXPECT().ListBookings(ctx, gomock.Any()).
			Return([]sqlc.Booking{later.BuildInfra(), earlier.BuildInfra()}, nil)

		views, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).ListAll(ctx)

		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, later.ID, views[0].ID)
		assert.Equal(t, "18:30", views[0].Time.String())
		assert.Equal(t, "cancelled", views[1].Status)
	})

	t.Run("success: no rows yields empty slice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		mockQueries.EXPECT().ListBookings(ctx, gomock.Any()).Return(nil, nil)

		views, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).ListAll(ctx)

		require.NoError(t, err)
		assert.NotNil(t, views)
		assert.Empty(t, views)
	})

	t.Run("error: statement timeout", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		mockQueries.EXPECT().ListBookings(ctx, gomock.Any()).Return(nil, context.DeadlineExceeded)

		_, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).ListAll(ctx)

		assert.True(t, infra.IsKind(err, infra.KindTimeout))
	})
}

// =============================================================================
// CountNonCancelledByTime Tests
// =============================================================================

func TestBookingReadStore_CountNonCancelledByTime(t *testing.T) {
	ctx := context.Background()
	date, err := booking.ParseDate("2025-06-01")
	require.NoError(t, err)

	t.Run("success: counts keyed by time of day", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		mockQueries.EXPECT().CountNonCancelledBookingsByTime(ctx, gomock.Any(), pgconv.DateToPgtype(date.Time())).
			Return([]sqlc.CountNonCancelledBookingsByTimeRow{
				{BookingTime: pgconv.ClockToPgtype(10 * 60), BookingsCount: 3},
				{BookingTime: pgconv.ClockToPgtype(10*60 + 15), BookingsCount: 1},
			}, nil)

		counts, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).CountNonCancelledByTime(ctx, date)

		require.NoError(t, err)
		ten, _ := booking.ParseTimeOfDay("10:00")
		quarter, _ := booking.ParseTimeOfDay("10:15")
		assert.Equal(t, map[booking.TimeOfDay]int{ten: 3, quarter: 1}, counts)
	})

	t.Run("error: database error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := readstoremock.NewMockBookingReadQueries(ctrl)
		mockQueries.EXPECT().CountNonCancelledBookingsByTime(ctx, gomock.Any(), gomock.Any()).
			Return(nil, errDBConnectionLost)

		counts, err := readstore.NewBookingReadStore(mockQueries, &mockDBTX{}).CountNonCancelledByTime(ctx, date)

		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, counts)
	})
}

// =============================================================================
// Test Helper Functions
// =============================================================================

// mockDBTX is a mock implementation of sqlc.DBTX interface
type mockDBTX struct{}

func (m *mockDBTX) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (m *mockDBTX) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (m *mockDBTX) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	panic("mockDBTX.QueryRow was called unexpectedly. Use sqlc mock instead.")
}
