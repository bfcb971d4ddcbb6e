package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"pharmashift/internal/infra/lock"
	"pharmashift/internal/pkg/config"
	"pharmashift/internal/usecase/shared"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewClaimLocker,
	),
)

// NewClaimLocker returns a Redis lock when REDIS_ADDR is set and a no-op lock otherwise.
func NewClaimLocker(lc fx.Lifecycle, cfg config.Config) (shared.ClaimLocker, error) {
	if cfg.Redis.Addr == "" {
		slog.Info("REDIS_ADDR not set, shift claims rely on the conditional update only")
		return lock.NoopLocker{}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	slog.Info("claim lock backed by redis", "addr", cfg.Redis.Addr, "ttl", cfg.Redis.ClaimLockTTL)
	return lock.NewRedisLocker(client, cfg.Redis.ClaimLockTTL), nil
}
