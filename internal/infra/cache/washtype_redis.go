package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/BruksfildServices01/carwash-scheduler/internal/domain/catalog"
	"github.com/BruksfildServices01/carwash-scheduler/internal/models"
)

const (
	catalogKey    = "carwash:catalog:v1"
	generationKey = "carwash:catalog:gen"
)

// WashTypeRedisCache keeps the serialized catalog under a single key.
type WashTypeRedisCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewWashTypeRedisCache(rdb *redis.Client, ttl time.Duration) *WashTypeRedisCache {
	if ttl <= 0 {
		ttl = 10 * time.Minute
	}
	return &WashTypeRedisCache{rdb: rdb, ttl: ttl}
}

func (c *WashTypeRedisCache) Get(ctx context.Context) ([]models.WashType, bool, error) {
	raw, err := c.rdb.Get(ctx, catalogKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var items []models.WashType
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false, nil
	}
	return items, true, nil
}

func (c *WashTypeRedisCache) Generation(ctx context.Context) (int64, error) {
	gen, err := c.rdb.Get(ctx, generationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return gen, err
}

// Set stores items only while the generation is still gen. A concurrent
// Invalidate makes the transaction fail, which is reported as a skipped write.
func (c *WashTypeRedisCache) Set(ctx context.Context, gen int64, items []models.WashType) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}

	err = c.rdb.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != gen {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, catalogKey, b, c.ttl)
			return nil
		})
		return err
	}, generationKey)

	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	return err
}

// Invalidate bumps the generation before dropping the list.
func (c *WashTypeRedisCache) Invalidate(ctx context.Context) error {
	if err := c.rdb.Incr(ctx, generationKey).Err(); err != nil {
		return err
	}
	return c.rdb.Del(ctx, catalogKey).Err()
}

var _ catalog.Cache = (*WashTypeRedisCache)(nil)
