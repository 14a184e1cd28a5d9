package cache

import (
	"context"
	"encoding/json"
	"sync"
)

// MemoryCatalogCache keeps JSON copies in a map. Entries never expire.
type MemoryCatalogCache struct {
	mu    sync.Mutex
	items map[string][]byte
}

func NewMemoryCatalogCache() *MemoryCatalogCache {
	return &MemoryCatalogCache{items: map[string][]byte{}}
}

func (c *MemoryCatalogCache) Get(ctx context.Context, key string, dest any) (bool, error) {
	c.mu.Lock()
	raw, ok := c.items[key]
	c.mu.Unlock()
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(raw, dest)
}

func (c *MemoryCatalogCache) Set(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	c.items[key] = raw
	c.mu.Unlock()
	return nil
}

func (c *MemoryCatalogCache) Invalidate(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	for _, k := range keys {
		delete(c.items, k)
	}
	c.mu.Unlock()
	return nil
}

func (c *MemoryCatalogCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}
