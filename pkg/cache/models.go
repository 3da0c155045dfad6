package cache

import (
	"time"

	"github.com/dgraph-io/ristretto"
)

type RistrettoConfig struct {
	Ttl  int64 `koanf:"ttlSec"`    // Expiration time in seconds
	Size int64 `koanf:"cacheSize"` // Maximum number of items to be cached
}

// Cache stores computed schedules. Every entry costs 1, so Size is an item
// count rather than a byte budget.
type Cache struct {
	cache *ristretto.Cache
	ttl   time.Duration
}

func NewCache(size int64, ttl int64) (*Cache, error) {
	cache, err := ristretto.NewCache(&ristretto.Config{
		NumCounters: int64(10 * size),
		MaxCost:     size,
		BufferItems: 64,
	})
	if err != nil {
		return nil, err
	}
	t := time.Duration(ttl) * time.Second
	return &Cache{cache: cache, ttl: t}, nil
}

// SetWithTTL stores value for the configured TTL. A non-positive TTL keeps
// the entry until it is evicted.
func (c *Cache) SetWithTTL(key string, value interface{}) bool {
	if c.ttl <= 0 {
		return c.Set(key, value)
	}
	return c.cache.SetWithTTL(key, value, 1, c.ttl)
}

func (c *Cache) Set(key string, value interface{}) bool {
	return c.cache.Set(key, value, 1)
}

func (c *Cache) Get(key string) (interface{}, bool) {
	return c.cache.Get(key)
}

func (c *Cache) Del(key string) {
	c.cache.Del(key)
}

// Wait blocks until buffered writes are applied.
func (c *Cache) Wait() {
	c.cache.Wait()
}

func (c *Cache) Close() {
	c.cache.Close()
}
