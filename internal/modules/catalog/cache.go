package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	appredis "github.com/NixonSiagian/studio-archive-craft/pkg/redis"
)

var ErrCacheMiss = errors.New("cache miss")

// Cache fronts the product listing. Failures are treated as misses by
// the service; Redis being down degrades to MySQL, never to an error.
type Cache interface {
	GetList(ctx context.Context, key string) ([]Product, error)
	SetList(ctx context.Context, key string, items []Product) error
	Invalidate(ctx context.Context) error
}

const listKeyPrefix = "catalog:list:"

type RedisCache struct {
	rdb *appredis.RedisDB
	ttl time.Duration
}

func NewRedisCache(rdb *appredis.RedisDB, ttl time.Duration) *RedisCache {
	return &RedisCache{rdb: rdb, ttl: ttl}
}

func (c *RedisCache) GetList(ctx context.Context, key string) ([]Product, error) {
	raw, err := c.rdb.Get(ctx, listKeyPrefix+key)
	if err != nil {
		return nil, err
	}
	if raw == "" {
		return nil, ErrCacheMiss
	}
	var items []Product
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, ErrCacheMiss
	}
	return items, nil
}

func (c *RedisCache) SetList(ctx context.Context, key string, items []Product) error {
	b, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, listKeyPrefix+key, string(b), c.ttl)
}

// Invalidate drops the default listing key, the only one the service
// ever caches.
func (c *RedisCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, listKeyPrefix+"all")
}
