package bootstrap

import (
	"context"

	"barista-cafe-api/internal/infra/outbox"
	"barista-cafe-api/internal/pkg/clock"
	"barista-cafe-api/internal/pkg/config"
	"barista-cafe-api/internal/usecase/shared"

	"github.com/robfig/cron/v3"
	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewRelay,
		NewScheduler,
	),
	fx.Invoke(func(*cron.Cron) {}),
)

func NewRelay(uow shared.UnitOfWork, pub outbox.Publisher, clk clock.Clock, cfg config.Config) *outbox.Relay {
	return outbox.NewRelay(uow, pub, clk, cfg.Outbox)
}

func NewScheduler(lc fx.Lifecycle, relay *outbox.Relay, cfg config.Config) (*cron.Cron, error) {
	c, err := outbox.NewScheduler(relay, cfg.Outbox)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			select {
			case <-c.Stop().Done():
			case <-ctx.Done():
			}
			return nil
		},
	})
	return c, nil
}
