//go:build unit

package queries_test

import (
	"context"
	"testing"

	"barista-cafe-api/internal/domain/booking"
	"barista-cafe-api/internal/infra"
	"barista-cafe-api/internal/pkg/errs"
	"barista-cafe-api/internal/usecase/queries"
	"barista-cafe-api/tests/common/builder"
	queriesmock "barista-cafe-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestBookingQueries_GetByID(t *testing.T) {
	ctx := context.Background()

	t.Run("success: returns view", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		view := builder.NewBookingBuilder().BuildView()
		store.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := queries.NewBookingQueries(store).GetByID(ctx, view.ID)

		require.NoError(t, err)
		assert.Same(t, view, got)
	})

	t.Run("error: not found kind is marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound))

		_, err := queries.NewBookingQueries(store).GetByID(ctx, uuid.New())

		assert.True(t, errs.Is(err, queries.ErrBookingNotFound))
	})

	t.Run("error: timeout kind is marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().FindByID(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to get booking by ID", context.DeadlineExceeded))

		_, err := queries.NewBookingQueries(store).GetByID(ctx, uuid.New())

		assert.True(t, errs.Is(err, errs.ErrStorageTimeout))
		assert.False(t, errs.Is(err, queries.ErrBookingNotFound))
	})
}

func TestBookingQueries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockBookingReadStore(ctrl)
	store.EXPECT().ListAll(gomock.Any()).
		Return(nil, infra.WrapRepoErr("failed to list bookings", assert.AnError))

	views, err := queries.NewBookingQueries(store).List(context.Background())

	assert.Nil(t, views)
	assert.True(t, errs.Is(err, errs.ErrStorageFailure))
}

func TestAvailabilityQueries_GetAvailableSlots(t *testing.T) {
	ctx := context.Background()
	date, err := booking.ParseDate("2025-06-01")
	require.NoError(t, err)

	t.Run("success: counts projected onto the grid", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		nine, _ := booking.ParseTimeOfDay("09:00")
		offGrid, _ := booking.ParseTimeOfDay("09:15")
		store.EXPECT().CountNonCancelledByTime(gomock.Any(), date).
			Return(map[booking.TimeOfDay]int{nine: 5, offGrid: 2}, nil)

		slots, err := queries.NewAvailabilityQueries(store).GetAvailableSlots(ctx, date)

		require.NoError(t, err)
		require.Len(t, slots, 25)
		assert.Equal(t, booking.TimeSlot{Time: nine, BookingsCount: 5, Available: false}, slots[0])
		assert.Equal(t, "09:30", slots[1].Time.String())
		assert.Zero(t, slots[1].BookingsCount)
		assert.True(t, slots[1].Available)
	})

	t.Run("error: storage failure is marked", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockBookingReadStore(ctrl)
		store.EXPECT().CountNonCancelledByTime(gomock.Any(), date).
			Return(nil, infra.WrapRepoErr("failed to count bookings", assert.AnError))

		slots, err := queries.NewAvailabilityQueries(store).GetAvailableSlots(ctx, date)

		assert.Nil(t, slots)
		assert.True(t, errs.Is(err, errs.ErrStorageFailure))
	})
}

func TestMenuQueries_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := queriesmock.NewMockMenuReadStore(ctrl)
	items := []*queries.MenuItemView{builder.NewMenuItemBuilder().BuildView()}
	store.EXPECT().ListAll(gomock.Any()).Return(items, nil)

	got, err := queries.NewMenuQueries(store).List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, items, got)
}
