package cache

import (
	"context"
	"errors"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/carwash-scheduler/internal/domain/preferences"
)

const settingsPrefix = "carwash:settings:"

// RedisKV is a preferences.Store kept in Redis without expiry.
type RedisKV struct {
	rdb *redis.Client
}

func NewRedisKV(rdb *redis.Client) *RedisKV {
	return &RedisKV{rdb: rdb}
}

func (s *RedisKV) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.rdb.Get(ctx, settingsPrefix+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return v, true, nil
}

func (s *RedisKV) Set(ctx context.Context, key, value string) error {
	return s.rdb.Set(ctx, settingsPrefix+key, value, 0).Err()
}

var _ preferences.Store = (*RedisKV)(nil)
