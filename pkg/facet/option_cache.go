package facet

import (
	"log"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/matst80/slask-inventory/pkg/types"
)

const defaultOptionCacheSize = 8

// OptionCache memoizes DeriveOptions per source version. A source never
// changes under its version, so entries never go stale.
type OptionCache struct {
	cache *lru.Cache[string, Options]
}

func NewOptionCache(size int) *OptionCache {
	if size <= 0 {
		size = defaultOptionCacheSize
	}
	cache, err := lru.New[string, Options](size)
	if err != nil {
		log.Printf("Failed to create option cache: %v", err)
		return &OptionCache{}
	}
	return &OptionCache{cache: cache}
}

func (c *OptionCache) Get(version string, records []types.VehicleRecord) Options {
	if c == nil || c.cache == nil || version == "" {
		return DeriveOptions(records)
	}
	if opts, ok := c.cache.Get(version); ok {
		return opts
	}
	opts := DeriveOptions(records)
	c.cache.Add(version, opts)
	return opts
}

func (c *OptionCache) Len() int {
	if c == nil || c.cache == nil {
		return 0
	}
	return c.cache.Len()
}

// Purge drops every memoized entry.
func (c *OptionCache) Purge() {
	if c == nil || c.cache == nil {
		return
	}
	c.cache.Purge()
}
