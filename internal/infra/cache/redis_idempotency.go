package cache

import (
	"context"
	"errors"
	"time"

	"gin-order-admin/internal/infra"

	"github.com/redis/go-redis/v9"
)

// RedisIdempotencyStore keeps a short-lived lock per key while a request is in
// flight and the serialized result once it has completed.
type RedisIdempotencyStore struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisIdempotencyStore(rdb *redis.Client, ttl time.Duration) *RedisIdempotencyStore {
	return &RedisIdempotencyStore{rdb: rdb, ttl: ttl}
}

func lockKey(scope, key string) string   { return "idemp:lock:" + scope + ":" + key }
func resultKey(scope, key string) string { return "idemp:map:" + scope + ":" + key }

func (s *RedisIdempotencyStore) TryLock(ctx context.Context, scope, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, lockKey(scope, key), "1", s.ttl).Result()
	if err != nil {
		return false, infra.WrapRepoErr("failed to acquire idempotency lock", err, infra.KindCacheFailure)
	}
	return ok, nil
}

// Release drops the lock so a failed request can be retried with the same key.
func (s *RedisIdempotencyStore) Release(ctx context.Context, scope, key string) error {
	if err := s.rdb.Del(ctx, lockKey(scope, key)).Err(); err != nil {
		return infra.WrapRepoErr("failed to release idempotency lock", err, infra.KindCacheFailure)
	}
	return nil
}

func (s *RedisIdempotencyStore) Remember(ctx context.Context, scope, key, value string) error {
	if err := s.rdb.Set(ctx, resultKey(scope, key), value, s.ttl).Err(); err != nil {
		return infra.WrapRepoErr("failed to store idempotency result", err, infra.KindCacheFailure)
	}
	return nil
}

func (s *RedisIdempotencyStore) Recall(ctx context.Context, scope, key string) (string, bool, error) {
	val, err := s.rdb.Get(ctx, resultKey(scope, key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, infra.WrapRepoErr("failed to read idempotency result", err, infra.KindCacheFailure)
	}
	return val, true, nil
}
