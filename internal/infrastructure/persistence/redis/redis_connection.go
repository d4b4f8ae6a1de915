// Package redis provides the Redis connection and the JSON cache manager.
package redis

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alongsideai/cre-ai-assistant-sub001/internal/config"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/logger"
)

// Connect opens and verifies the Redis connection.
func Connect(ctx context.Context, cfg *config.RedisConfig, log logger.Logger) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
		PoolSize: cfg.PoolSize,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		return nil, errors.ErrCache.WithMessage("redis ping failed").WithError(err)
	}

	log.Info(ctx, "redis connected", logger.String("addr", cfg.Addr))
	return client, nil
}
