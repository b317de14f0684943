package server

import (
	"errors"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

type CacheHelper[T any] struct {
	Cache *Cache
}

func NewCacheHelper[T any](cache *Cache) *CacheHelper[T] {
	return &CacheHelper[T]{Cache: cache}
}

// Handle fills out from the cache, or from fn when the key is missing or the
// cache is unavailable. Fresh values are written back.
func (c *CacheHelper[T]) Handle(key string, out *T, fn func() T, expiration time.Duration) error {
	if c == nil || c.Cache == nil {
		*out = fn()
		return nil
	}
	err := c.Cache.Get(key, out)
	if err == nil {
		cacheHits.Inc()
		return nil
	}
	cacheMisses.Inc()
	if !errors.Is(err, redis.Nil) {
		log.Printf("cache read failed for %s: %v", key, err)
	}
	*out = fn()
	return c.Cache.Set(key, out, expiration)
}
