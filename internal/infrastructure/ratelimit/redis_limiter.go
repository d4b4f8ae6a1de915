// Package ratelimit implements a fixed-window per-client rate limiter on
// Redis.
package ratelimit

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/redis/go-redis/v9"

	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/constants"
	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

// RedisLimiter counts requests per client in one-minute windows. The counter
// key carries the window number, so windows roll over without cleanup. The
// limit is read atomically so config reloads can adjust it at runtime.
type RedisLimiter struct {
	client *redis.Client
	limit  atomic.Int64
}

// NewRedisLimiter creates the limiter.
func NewRedisLimiter(client *redis.Client, requestsPerMinute int) *RedisLimiter {
	l := &RedisLimiter{client: client}
	l.limit.Store(int64(requestsPerMinute))
	return l
}

// SetLimit replaces the per-window budget. Takes effect on the next check.
func (l *RedisLimiter) SetLimit(requestsPerMinute int) {
	l.limit.Store(int64(requestsPerMinute))
}

// Allow reports whether the client may proceed. On Redis trouble it fails
// open: throttling is protection, not a correctness guarantee.
func (l *RedisLimiter) Allow(ctx context.Context, clientID string) (bool, error) {
	window := l.client.Time(ctx).Val().Unix() / int64(constants.RateLimitWindow.Seconds())
	key := fmt.Sprintf("ratelimit:%s:%d", clientID, window)

	pipe := l.client.TxPipeline()
	count := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, constants.RateLimitWindow)
	if _, err := pipe.Exec(ctx); err != nil {
		return true, errors.ErrCache.WithMessage("rate limit check failed").WithError(err)
	}

	return count.Val() <= l.limit.Load(), nil
}
