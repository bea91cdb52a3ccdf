package bootstrap

import (
	"context"

	"barista-cafe-api/internal/infra/cache"
	"barista-cafe-api/internal/pkg/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewRedis,
	),
)

// NewRedis may return a nil client; consumers treat nil as "disabled".
func NewRedis(lc fx.Lifecycle, cfg config.Config) *redis.Client {
	rdb := cache.NewRedisClient(cfg.Redis)
	if rdb == nil {
		return nil
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return rdb.Close()
		},
	})
	return rdb
}
