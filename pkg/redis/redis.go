package redis

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
)

type Config struct {
	Addr string
}

type RedisDB struct {
	Client *redis.Client
	cfg    Config
}

func NewRedisDB(cfg Config) *RedisDB {
	return &RedisDB{cfg: cfg}
}

func (r *RedisDB) Start(ctx context.Context) error {
	r.Client = redis.NewClient(&redis.Options{
		Addr: r.cfg.Addr,
	})
	if _, err := r.Client.Ping(ctx).Result(); err != nil {
		return err
	}
	return nil
}

func (r *RedisDB) Stop(ctx context.Context) error {
	return r.Client.Close()
}

func (r *RedisDB) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	return r.Client.Set(ctx, key, value, expiration).Err()
}

// Get returns "" without error on a missing key.
func (r *RedisDB) Get(ctx context.Context, key string) (string, error) {
	val, err := r.Client.Get(ctx, key).Result()
	if err == redis.Nil {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return val, nil
}

func (r *RedisDB) Del(ctx context.Context, keys ...string) error {
	return r.Client.Del(ctx, keys...).Err()
}
