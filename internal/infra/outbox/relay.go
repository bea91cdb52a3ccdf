package outbox

import (
	"context"
	"log/slog"
	"time"

	"barista-cafe-api/internal/pkg/clock"
	"barista-cafe-api/internal/pkg/config"
	"barista-cafe-api/internal/usecase/shared"
)

type Publisher interface {
	Publish(ctx context.Context, topic string, body []byte) error
}

// Relay drains queued notification jobs to the publisher.
type Relay struct {
	uow       shared.UnitOfWork
	publisher Publisher
	clock     clock.Clock
	cfg       config.OutboxConfig
}

func NewRelay(uow shared.UnitOfWork, publisher Publisher, clk clock.Clock, cfg config.OutboxConfig) *Relay {
	return &Relay{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg,
	}
}

// RunOnce claims one batch of due jobs and publishes them inside a single
// transaction. Claimed rows stay locked, so a concurrent relay skips them.
// A failed publish is rescheduled with linear backoff until MaxAttempts,
// after which the job is parked as failed.
//
// Delivery is at-least-once: if the commit fails after a publish, that job is
// published again on a later run. Each publish gets its own PublishTimeout and
// the batch stops early once the transaction deadline can no longer fit one,
// leaving the rest queued for the next run.
func (r *Relay) RunOnce(ctx context.Context) (sent int, err error) {
	err = r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := r.clock.Now()
		jobs, err := tx.Notifications().ClaimDue(ctx, tx.DB(), now, r.cfg.BatchSize)
		if err != nil {
			return err
		}

		for i, job := range jobs {
			if !r.hasPublishBudget(ctx) {
				slog.InfoContext(ctx, "outbox batch cut short by transaction deadline",
					"published", i, "remaining", len(jobs)-i)
				break
			}

			if pubErr := r.publish(ctx, job); pubErr != nil {
				attempts := job.Attempts + 1
				status := shared.JobStatusQueued
				if attempts >= r.cfg.MaxAttempts {
					status = shared.JobStatusFailed
				}
				slog.WarnContext(ctx, "outbox publish failed",
					"job_id", job.ID, "topic", job.Topic, "attempts", attempts, "status", status, "error", pubErr.Error())

				next := now.Add(time.Duration(attempts) * r.cfg.RetryDelay)
				if err := tx.Notifications().MarkFailed(ctx, tx.DB(), job.ID, status, pubErr.Error(), next); err != nil {
					return err
				}
				continue
			}

			if err := tx.Notifications().MarkSent(ctx, tx.DB(), job.ID); err != nil {
				return err
			}
			sent++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return sent, nil
}

func (r *Relay) publish(ctx context.Context, job shared.NotificationJob) error {
	if r.cfg.PublishTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.cfg.PublishTimeout)
		defer cancel()
	}
	return r.publisher.Publish(ctx, job.Topic, job.Payload)
}

// hasPublishBudget reports whether one more publish, plus the MarkSent after
// it, still fits before the transaction deadline.
func (r *Relay) hasPublishBudget(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	deadline, ok := ctx.Deadline()
	if !ok || r.cfg.PublishTimeout <= 0 {
		return true
	}
	return time.Until(deadline) > r.cfg.PublishTimeout
}

// Purge deletes sent jobs older than the retention window.
func (r *Relay) Purge(ctx context.Context) (int64, error) {
	var purged int64
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		n, err := tx.Notifications().PurgeSent(ctx, tx.DB(), r.clock.Now().Add(-r.cfg.Retention))
		purged = n
		return err
	})
	return purged, err
}
