package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/alongsideai/cre-ai-assistant-sub001/pkg/errors"
)

// CacheManager is a JSON cache over Redis. It satisfies the application
// layer's Cache interface.
type CacheManager struct {
	client *redis.Client
	prefix string
}

// NewCacheManager creates a cache manager. All keys are namespaced with the
// given prefix.
func NewCacheManager(client *redis.Client, prefix string) *CacheManager {
	return &CacheManager{client: client, prefix: prefix}
}

// Get unmarshals the cached value into dest. Returns false on a miss.
func (m *CacheManager) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := m.client.Get(ctx, m.prefix+key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, errors.ErrCache.WithMessage("cache get failed").WithError(err)
	}
	if err := json.Unmarshal(raw, dest); err != nil {
		return false, errors.ErrCache.WithMessage("cache value corrupt").WithError(err)
	}
	return true, nil
}

// Set marshals and stores the value with a TTL.
func (m *CacheManager) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return errors.ErrCache.WithMessage("cache value not serializable").WithError(err)
	}
	if err := m.client.Set(ctx, m.prefix+key, raw, ttl).Err(); err != nil {
		return errors.ErrCache.WithMessage("cache set failed").WithError(err)
	}
	return nil
}

// Delete removes a key. Deleting a missing key is not an error.
func (m *CacheManager) Delete(ctx context.Context, key string) error {
	if err := m.client.Del(ctx, m.prefix+key).Err(); err != nil {
		return errors.ErrCache.WithMessage("cache delete failed").WithError(err)
	}
	return nil
}
