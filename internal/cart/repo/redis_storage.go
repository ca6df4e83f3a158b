package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/Vehicle-Shield/storefront/internal/cart/model"
	errx "github.com/Vehicle-Shield/storefront/internal/core/error"
	logx "github.com/Vehicle-Shield/storefront/pkg/logger"
)

// RedisStorage keeps one client session's key-value slots in Redis.
// Every write refreshes the TTL, so idle sessions expire on their own.
type RedisStorage struct {
	rdb       redis.Cmdable
	sessionID string
	ttl       time.Duration
}

func NewRedisStorage(rdb redis.Cmdable, sessionID string, ttl time.Duration) *RedisStorage {
	return &RedisStorage{rdb: rdb, sessionID: sessionID, ttl: ttl}
}

func (r *RedisStorage) storageKey(key string) string {
	return fmt.Sprintf("storage:%s:%s", r.sessionID, key)
}

func (r *RedisStorage) Get(ctx context.Context, key string) (string, bool, error) {
	k := r.storageKey(key)
	val, err := r.rdb.Get(ctx, k).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		logx.Error().Err(err).Str("key", k).Msg("failed to get value from redis")
		return "", false, errx.WrapRedis(err)
	}
	return val, true, nil
}

func (r *RedisStorage) Set(ctx context.Context, key, value string) error {
	k := r.storageKey(key)
	// zero ttl keeps the key forever
	if err := r.rdb.Set(ctx, k, value, r.ttl).Err(); err != nil {
		logx.Error().Err(err).Str("key", k).Msg("failed to set value in redis")
		return errx.WrapRedis(err)
	}
	return nil
}

func (r *RedisStorage) Delete(ctx context.Context, key string) error {
	k := r.storageKey(key)
	if err := r.rdb.Del(ctx, k).Err(); err != nil {
		logx.Error().Err(err).Str("key", k).Msg("failed to delete value from redis")
		return errx.WrapRedis(err)
	}
	return nil
}

var _ model.Storage = (*RedisStorage)(nil)
