package bootstrap

import (
	"context"
	"log/slog"

	"barista-cafe-api/internal/infra/mq"
	"barista-cafe-api/internal/infra/outbox"
	"barista-cafe-api/internal/pkg/config"

	"go.uber.org/fx"
)

var MQModule = fx.Module("mq",
	fx.Provide(
		NewPublisher,
	),
)

// NewPublisher falls back to logging events when AMQP_URL is unset.
func NewPublisher(lc fx.Lifecycle, cfg config.Config) (outbox.Publisher, error) {
	if !cfg.MQ.Enabled() {
		slog.Info("rabbitmq disabled: AMQP_URL not set, booking events will be logged only")
		return mq.LogPublisher{}, nil
	}

	pub, err := mq.NewPublisher(cfg.MQ.URL, cfg.MQ.Exchange)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return pub.Close()
		},
	})
	return pub, nil
}
