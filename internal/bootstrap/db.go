package bootstrap

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/sducloud/sduclouddb/config"
	"github.com/sducloud/sduclouddb/internal/sduclouddb/events"
	"github.com/sducloud/sduclouddb/internal/storage/postgres"
)

func OpenDB(ctx context.Context, cfg *config.DatabaseConfig) (*sqlx.DB, error) {
	db, err := postgres.NewConnection(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("db connect: %w", err)
	}
	return db, nil
}

// OpenPublisher returns a Redis change-event publisher, or a no-op one when
// no Redis address is configured. The returned close func is never nil.
func OpenPublisher(ctx context.Context, cfg *config.RedisConfig, logger *zap.Logger) (events.Publisher, func() error, error) {
	if cfg.Addr == "" {
		logger.Info("change events disabled (REDIS_ADDR not set)")
		return events.NopPublisher{}, func() error { return nil }, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})
	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("redis ping: %w", err)
	}
	return events.NewRedisPublisher(client, logger), client.Close, nil
}
