// Package cache provides the in-memory byte cache used for search results.
package cache

import (
	"container/list"
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"infograph-backend/application/ports"
)

// MemoryCache is an LRU-bounded cache with per-entry TTL. Expiry is checked
// lazily on access, so no background goroutine is needed.
type MemoryCache struct {
	mu       sync.Mutex
	items    map[string]*cacheItem
	lruList  *list.List
	maxItems int
	now      func() time.Time

	hits      int64
	misses    int64
	evictions int64

	logger *zap.Logger
}

type cacheItem struct {
	key        string
	value      []byte
	expiry     time.Time
	lruElement *list.Element
}

var _ ports.Cache = (*MemoryCache)(nil)

// NewMemoryCache creates a cache holding at most maxItems entries
func NewMemoryCache(maxItems int, logger *zap.Logger) *MemoryCache {
	if logger == nil {
		logger = zap.NewNop()
	}
	if maxItems <= 0 {
		maxItems = 1
	}

	return &MemoryCache{
		items:    make(map[string]*cacheItem),
		lruList:  list.New(),
		maxItems: maxItems,
		now:      time.Now,
		logger:   logger,
	}
}

// WithClock replaces the time source
func (c *MemoryCache) WithClock(now func() time.Time) *MemoryCache {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = now
	return c
}

// Get retrieves a copy of the cached value
func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, exists := c.items[key]
	if !exists {
		c.misses++
		return nil, false, nil
	}

	if !c.now().Before(item.expiry) {
		c.removeItem(item)
		c.misses++
		return nil, false, nil
	}

	c.lruList.MoveToFront(item.lruElement)
	c.hits++

	return append([]byte(nil), item.value...), true, nil
}

// Set stores value for ttl, evicting the least recently used entry when full
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, exists := c.items[key]; exists {
		c.removeItem(existing)
	}

	for len(c.items) >= c.maxItems && c.lruList.Len() > 0 {
		oldest := c.lruList.Back().Value.(*cacheItem)
		c.removeItem(oldest)
		c.evictions++
	}

	item := &cacheItem{
		key:    key,
		value:  append([]byte(nil), value...),
		expiry: c.now().Add(ttl),
	}
	item.lruElement = c.lruList.PushFront(item)
	c.items[key] = item

	return nil
}

// Delete removes a value from the cache
func (c *MemoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if item, exists := c.items[key]; exists {
		c.removeItem(item)
	}
	return nil
}

// Clear removes all keys matching pattern. "*" matches everything; a
// leading or trailing "*" matches by suffix or prefix.
func (c *MemoryCache) Clear(ctx context.Context, pattern string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	for key, item := range c.items {
		if matchPattern(key, pattern) {
			c.removeItem(item)
			removed++
		}
	}

	c.logger.Info("Cleared cache entries",
		zap.String("pattern", pattern),
		zap.Int("count", removed),
	)
	return nil
}

// removeItem must be called with the lock held
func (c *MemoryCache) removeItem(item *cacheItem) {
	if item.lruElement != nil {
		c.lruList.Remove(item.lruElement)
	}
	delete(c.items, item.key)
}

// Stats holds cache statistics
type Stats struct {
	Hits      int64
	Misses    int64
	Evictions int64
	Items     int
	HitRate   float64
}

// GetStats returns cache statistics
func (c *MemoryCache) GetStats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	hitRate := float64(0)
	if total := c.hits + c.misses; total > 0 {
		hitRate = float64(c.hits) / float64(total)
	}

	return Stats{
		Hits:      c.hits,
		Misses:    c.misses,
		Evictions: c.evictions,
		Items:     len(c.items),
		HitRate:   hitRate,
	}
}

func matchPattern(str, pattern string) bool {
	switch {
	case pattern == "*":
		return true
	case strings.HasPrefix(pattern, "*"):
		return strings.HasSuffix(str, pattern[1:])
	case strings.HasSuffix(pattern, "*"):
		return strings.HasPrefix(str, pattern[:len(pattern)-1])
	default:
		return str == pattern
	}
}
