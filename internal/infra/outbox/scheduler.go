package outbox

import (
	"context"
	"log/slog"

	"barista-cafe-api/internal/pkg/config"

	"github.com/robfig/cron/v3"
)

// NewScheduler registers the relay and purge jobs. Overlapping runs of the
// same job are skipped.
func NewScheduler(relay *Relay, cfg config.OutboxConfig) (*cron.Cron, error) {
	c := cron.New(cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)))

	if _, err := c.AddFunc(cfg.RelaySpec, func() {
		sent, err := relay.RunOnce(context.Background())
		if err != nil {
			slog.Error("outbox relay failed", "error", err.Error())
			return
		}
		if sent > 0 {
			slog.Debug("outbox relay published jobs", "count", sent)
		}
	}); err != nil {
		return nil, err
	}

	if _, err := c.AddFunc(cfg.PurgeSpec, func() {
		n, err := relay.Purge(context.Background())
		if err != nil {
			slog.Error("outbox purge failed", "error", err.Error())
			return
		}
		slog.Info("outbox purge finished", "deleted", n)
	}); err != nil {
		return nil, err
	}

	return c, nil
}
