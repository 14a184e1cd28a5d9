// Package cache stores rendered public catalog lists. Stock and prices used by
// cart and checkout are never read from here.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	KeyCategories = "catalog:categories"
	KeyBrands     = "catalog:brands"
	KeySellers    = "catalog:sellers"
)

type CatalogCache interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Invalidate(ctx context.Context, keys ...string) error
}

type redisCatalogCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedisCatalogCache(rdb *redis.Client, ttl time.Duration) CatalogCache {
	return &redisCatalogCache{rdb: rdb, ttl: ttl}
}

func (c *redisCatalogCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	val, err := c.rdb.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal([]byte(val), dest); err != nil {
		return false, fmt.Errorf("failed to decode cached %s: %w", key, err)
	}
	return true, nil
}

func (c *redisCatalogCache) Set(ctx context.Context, key string, value any) error {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, jsonData, c.ttl).Err()
}

func (c *redisCatalogCache) Invalidate(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}

type noopCatalogCache struct{}

func NewNoopCatalogCache() CatalogCache { return noopCatalogCache{} }

func (noopCatalogCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	return false, nil
}

func (noopCatalogCache) Set(ctx context.Context, key string, value any) error { return nil }

func (noopCatalogCache) Invalidate(ctx context.Context, keys ...string) error { return nil }

// NewRedisClient connects and pings the server.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	ctx, cncl := context.WithTimeout(ctx, 5*time.Second)
	defer cncl()
	if err := rdb.Ping(ctx).Err(); err != nil {
		rdb.Close()
		return nil, fmt.Errorf("redis is not reachable at %s: %w", addr, err)
	}
	return rdb, nil
}
