//go:build unit

package outbox_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"barista-cafe-api/internal/infra/outbox"
	"barista-cafe-api/internal/pkg/clock"
	"barista-cafe-api/internal/pkg/config"
	"barista-cafe-api/internal/usecase/shared"
	outboxmock "barista-cafe-api/tests/mock/outbox"
	sharedmock "barista-cafe-api/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	now       = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)
	errBroker = errors.New("broker unreachable")
	testCfg   = config.OutboxConfig{
		BatchSize:      10,
		MaxAttempts:    3,
		RetryDelay:     30 * time.Second,
		Retention:      24 * time.Hour,
		PublishTimeout: time.Second,
	}
)

type relayFixture struct {
	relay         *outbox.Relay
	publisher     *outboxmock.MockPublisher
	notifications *sharedmock.MockNotificationRepository
}

func newRelayFixture(t *testing.T) relayFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	tx := sharedmock.NewMockTx(ctrl)
	notifications := sharedmock.NewMockNotificationRepository(ctrl)
	publisher := outboxmock.NewMockPublisher(ctrl)

	uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, tx)
		}).AnyTimes()
	tx.EXPECT().Notifications().Return(notifications).AnyTimes()
	tx.EXPECT().DB().Return(nil).AnyTimes()

	return relayFixture{
		relay:         outbox.NewRelay(uow, publisher, clock.NewMockClock(now), testCfg),
		publisher:     publisher,
		notifications: notifications,
	}
}

func TestRelay_RunOnce(t *testing.T) {
	ctx := context.Background()

	t.Run("success: published jobs are marked sent", func(t *testing.T) {
		f := newRelayFixture(t)
		jobs := []shared.NotificationJob{
			{ID: uuid.New(), Topic: "booking.created", Payload: []byte(`{"a":1}`)},
			{ID: uuid.New(), Topic: "booking.status_changed", Payload: []byte(`{"b":2}`)},
		}
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), now, int32(10)).Return(jobs, nil)
		for _, job := range jobs {
			f.publisher.EXPECT().Publish(gomock.Any(), job.Topic, job.Payload).Return(nil)
			f.notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), job.ID).Return(nil)
		}

		sent, err := f.relay.RunOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 2, sent)
	})

	t.Run("success: failed publish is rescheduled with backoff", func(t *testing.T) {
		f := newRelayFixture(t)
		job := shared.NotificationJob{ID: uuid.New(), Topic: "booking.created", Attempts: 1}
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), now, int32(10)).Return([]shared.NotificationJob{job}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), job.Topic, gomock.Any()).Return(errBroker)
		f.notifications.EXPECT().
			MarkFailed(gomock.Any(), gomock.Any(), job.ID, shared.JobStatusQueued, errBroker.Error(), now.Add(60*time.Second)).
			Return(nil)

		sent, err := f.relay.RunOnce(ctx)

		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("success: last attempt parks the job as failed", func(t *testing.T) {
		f := newRelayFixture(t)
		job := shared.NotificationJob{ID: uuid.New(), Topic: "booking.created", Attempts: 2}
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), now, int32(10)).Return([]shared.NotificationJob{job}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Return(errBroker)
		f.notifications.EXPECT().
			MarkFailed(gomock.Any(), gomock.Any(), job.ID, shared.JobStatusFailed, gomock.Any(), gomock.Any()).
			Return(nil)

		_, err := f.relay.RunOnce(ctx)

		require.NoError(t, err)
	})

	t.Run("success: each publish runs under its own timeout", func(t *testing.T) {
		f := newRelayFixture(t)
		job := shared.NotificationJob{ID: uuid.New(), Topic: "booking.created"}
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), now, int32(10)).Return([]shared.NotificationJob{job}, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), job.Topic, gomock.Any()).
			DoAndReturn(func(ctx context.Context, _ string, _ []byte) error {
				deadline, ok := ctx.Deadline()
				require.True(t, ok)
				assert.LessOrEqual(t, time.Until(deadline), testCfg.PublishTimeout)
				return nil
			})
		f.notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), job.ID).Return(nil)

		sent, err := f.relay.RunOnce(ctx)

		require.NoError(t, err)
		assert.Equal(t, 1, sent)
	})

	t.Run("success: batch stops when the transaction deadline is too close", func(t *testing.T) {
		f := newRelayFixture(t)
		shortCtx, cancel := context.WithTimeout(ctx, 100*time.Millisecond)
		defer cancel()

		jobs := []shared.NotificationJob{
			{ID: uuid.New(), Topic: "booking.created"},
			{ID: uuid.New(), Topic: "booking.created"},
		}
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), now, int32(10)).Return(jobs, nil)
		f.publisher.EXPECT().Publish(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
		f.notifications.EXPECT().MarkSent(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		sent, err := f.relay.RunOnce(shortCtx)

		require.NoError(t, err)
		assert.Zero(t, sent)
	})

	t.Run("error: claim failure is returned", func(t *testing.T) {
		f := newRelayFixture(t)
		f.notifications.EXPECT().ClaimDue(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, assert.AnError)

		sent, err := f.relay.RunOnce(ctx)

		assert.ErrorIs(t, err, assert.AnError)
		assert.Zero(t, sent)
	})
}

func TestRelay_Purge(t *testing.T) {
	f := newRelayFixture(t)
	f.notifications.EXPECT().PurgeSent(gomock.Any(), gomock.Any(), now.Add(-24*time.Hour)).Return(int64(7), nil)

	n, err := f.relay.Purge(context.Background())

	require.NoError(t, err)
	assert.EqualValues(t, 7, n)
}
