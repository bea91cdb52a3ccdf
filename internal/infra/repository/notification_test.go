//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"barista-cafe-api/internal/infra"
	"barista-cafe-api/internal/infra/repository"
	sqlc "barista-cafe-api/internal/infra/sqlc/generated"
	"barista-cafe-api/internal/pkg/pgconv"
	"barista-cafe-api/internal/usecase/shared"
	repositorymock "barista-cafe-api/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestNotificationRepository_CreateJob(t *testing.T) {
	ctx := context.Background()
	runAt := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

	t.Run("success: job queued", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, sqlc.CreateNotificationJobParams{
			Kind:    "booking_event",
			Topic:   "booking.created",
			Payload: []byte(`{}`),
			RunAt:   pgconv.TimeToPgtype(runAt),
			Status:  shared.JobStatusQueued,
		}).Return(nil)

		err := repository.NewNotificationRepository(mockQueries).
			CreateJob(ctx, mockDB, "booking_event", "booking.created", []byte(`{}`), runAt)
		assert.NoError(t, err)
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().CreateNotificationJob(ctx, mockDB, gomock.Any()).Return(errDBConnection)

		err := repository.NewNotificationRepository(mockQueries).
			CreateJob(ctx, mockDB, "booking_event", "booking.created", nil, runAt)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestNotificationRepository_ClaimDue(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	jobID := uuid.New()

	t.Run("success: rows mapped to jobs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, sqlc.ClaimDueNotificationJobsParams{
			RunAt: pgconv.TimeToPgtype(now),
			Limit: 10,
		}).Return([]sqlc.NotificationJob{{
			ID:       jobID,
			Kind:     "booking_event",
			Topic:    "booking.status_changed",
			Payload:  []byte(`{"to":"confirmed"}`),
			Status:   shared.JobStatusQueued,
			Attempts: 2,
			RunAt:    pgconv.TimeToPgtype(now.Add(-time.Minute)),
		}}, nil)

		jobs, err := repository.NewNotificationRepository(mockQueries).ClaimDue(ctx, mockDB, now, 10)
		require.NoError(t, err)
		require.Len(t, jobs, 1)
		assert.Equal(t, shared.NotificationJob{
			ID:       jobID,
			Kind:     "booking_event",
			Topic:    "booking.status_changed",
			Payload:  []byte(`{"to":"confirmed"}`),
			Attempts: 2,
			RunAt:    now.Add(-time.Minute),
		}, jobs[0])
	})

	t.Run("error: database error occurs", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
		mockDB := &mockDBTX{}
		mockQueries.EXPECT().ClaimDueNotificationJobs(ctx, mockDB, gomock.Any()).Return(nil, errDBConnection)

		jobs, err := repository.NewNotificationRepository(mockQueries).ClaimDue(ctx, mockDB, now, 10)
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
		assert.Nil(t, jobs)
	})
}

func TestNotificationRepository_MarkFailed(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	next := time.Date(2025, 6, 1, 9, 5, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().MarkNotificationJobFailed(ctx, mockDB, sqlc.MarkNotificationJobFailedParams{
		ID:        id,
		Status:    shared.JobStatusFailed,
		LastError: pgtype.Text{String: "broker unreachable", Valid: true},
		RunAt:     pgconv.TimeToPgtype(next),
	}).Return(nil)

	err := repository.NewNotificationRepository(mockQueries).
		MarkFailed(ctx, mockDB, id, shared.JobStatusFailed, "broker unreachable", next)
	assert.NoError(t, err)
}

func TestNotificationRepository_PurgeSent(t *testing.T) {
	ctx := context.Background()
	before := time.Date(2025, 5, 25, 0, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	mockQueries := repositorymock.NewMockNotificationWriteQueries(ctrl)
	mockDB := &mockDBTX{}
	mockQueries.EXPECT().PurgeSentNotificationJobs(ctx, mockDB, pgconv.TimeToPgtype(before)).Return(int64(3), nil)
	mockQueries.EXPECT().MarkNotificationJobSent(ctx, mockDB, gomock.Any()).Return(errDBConnection)

	repo := repository.NewNotificationRepository(mockQueries)
	n, err := repo.PurgeSent(ctx, mockDB, before)
	require.NoError(t, err)
	assert.EqualValues(t, 3, n)

	err = repo.MarkSent(ctx, mockDB, uuid.New())
	assert.True(t, infra.IsKind(err, infra.KindDBFailure))
}
