package contour

import (
	"fmt"
	"sync"

	"github.com/golang/groupcache/lru"
	"golang.org/x/sync/singleflight"
)

// DefaultCacheSize is the number of canvases a Cache remembers when NewCache
// is given a non-positive size.
const DefaultCacheSize = 32

type cacheKey struct {
	Width, Height float64
	Levels        int
}

func (k cacheKey) String() string {
	return fmt.Sprintf("%gx%g/%d", k.Width, k.Height, k.Levels)
}

// Cache memoizes a Generator by canvas size and level count. It keeps the
// results for a bounded number of keys and evicts the least recently used
// one when full. Concurrent requests for a key that is not cached yet share a
// single generation.
//
// Contours returned by a Cache are shared between callers and must not be
// modified.
type Cache struct {
	gen   Generator
	group singleflight.Group

	mu      sync.Mutex
	entries *lru.Cache
	hits    uint64
	misses  uint64
}

// NewCache returns a cache in front of g holding at most size canvases.
func NewCache(g Generator, size int) *Cache {
	if size <= 0 {
		size = DefaultCacheSize
	}
	return &Cache{
		gen:     g,
		entries: lru.New(size),
	}
}

// Contours returns the contours for a canvas, generating them on a miss.
// Errors are not cached.
func (c *Cache) Contours(width, height float64, levels int) ([]Contour, error) {
	key := cacheKey{width, height, levels}

	c.mu.Lock()
	if v, ok := c.entries.Get(key); ok {
		c.hits++
		c.mu.Unlock()
		return v.([]Contour), nil
	}
	c.misses++
	c.mu.Unlock()

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		// Another flight for the same key may have finished between our
		// lookup and now.
		c.mu.Lock()
		v, ok := c.entries.Get(key)
		c.mu.Unlock()
		if ok {
			return v, nil
		}

		cs, err := c.gen.Generate(width, height, levels)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.entries.Add(key, cs)
		c.mu.Unlock()
		return cs, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]Contour), nil
}

// CacheStats describes the usage of a Cache.
type CacheStats struct {
	Entries int
	Hits    uint64
	Misses  uint64
}

func (c *Cache) Stats() CacheStats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return CacheStats{
		Entries: c.entries.Len(),
		Hits:    c.hits,
		Misses:  c.misses,
	}
}

// Len returns the number of cached canvases.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entries.Len()
}

// Purge drops every cached canvas.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries.Clear()
}
