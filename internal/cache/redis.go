package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bizledger/bizledger/internal/config"
	"github.com/bizledger/bizledger/internal/logger"
	"github.com/go-redis/redis/v8"
)

// RedisCache implements Cache backed by a shared redis instance, for
// deployments running more than one API replica.
type RedisCache struct {
	client *redis.Client
	logger *logger.Logger
}

// NewRedisCache connects to redis using the configured address
func NewRedisCache(cfg *config.Configuration, log *logger.Logger) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Cache.Redis.Address,
		Password: cfg.Cache.Redis.Password,
		DB:       cfg.Cache.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &RedisCache{client: client, logger: log}, nil
}

// Get returns the raw JSON bytes stored under key. Callers decode into
// their own types.
func (c *RedisCache) Get(ctx context.Context, key string) (interface{}, bool) {
	val, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.logger.Debugw("redis get failed", "key", key, "error", err)
		}
		return nil, false
	}
	return val, true
}

// Set JSON-encodes the value before writing, since redis only accepts
// strings and bytes.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) {
	data, err := json.Marshal(value)
	if err != nil {
		c.logger.Debugw("redis set encode failed", "key", key, "error", err)
		return
	}
	if err := c.client.Set(ctx, key, data, expiration).Err(); err != nil {
		c.logger.Debugw("redis set failed", "key", key, "error", err)
	}
}

func (c *RedisCache) Delete(ctx context.Context, key string) {
	if err := c.client.Del(ctx, key).Err(); err != nil {
		c.logger.Debugw("redis delete failed", "key", key, "error", err)
	}
}

func (c *RedisCache) DeleteByPrefix(ctx context.Context, prefix string) {
	iter := c.client.Scan(ctx, 0, prefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		c.logger.Debugw("redis scan failed", "prefix", prefix, "error", err)
	}
}

func (c *RedisCache) Flush(ctx context.Context) {
	if err := c.client.FlushDB(ctx).Err(); err != nil {
		c.logger.Debugw("redis flush failed", "error", err)
	}
}
