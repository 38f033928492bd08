package lru

import "log/slog"

// Bytes is the set of value types the cache accepts: anything that converts
// to a byte slice with a plain conversion.
type Bytes interface {
	~string | ~[]byte
}

// Cache is a fixed-capacity key/value store with least-recently-used eviction.
// It is not safe for concurrent use.
type Cache[V Bytes] struct {
	capacity int
	entries  map[string]V
	order    *recency
	cfg      config[V]
	stats    Stats
}

// New creates an empty cache holding at most capacity entries.
// A capacity of zero is accepted: every Add then evicts the entry it inserted.
// Negative capacities are treated as zero.
func New[V Bytes](capacity int, opts ...Option[V]) *Cache[V] {
	cfg := defaultConfig[V]()
	for _, opt := range opts {
		opt(&cfg)
	}

	if capacity < 0 {
		capacity = 0
	}

	return &Cache[V]{
		capacity: capacity,
		entries:  make(map[string]V),
		order:    newRecency(),
		cfg:      cfg,
	}
}

// NewWithCallback creates an empty cache that calls fn for every evicted entry.
func NewWithCallback[V Bytes](capacity int, fn EvictFunc[V], opts ...Option[V]) *Cache[V] {
	return New(capacity, append(opts[:len(opts):len(opts)], OnEvict(fn))...)
}

// Get returns the value for key and marks it as most recently used.
// Returns the zero value and false if key is absent.
func (c *Cache[V]) Get(key string) (V, bool) {
	v, ok := c.entries[key]
	if !ok {
		c.stats.Misses++
		if c.cfg.onMiss != nil {
			c.cfg.onMiss(key)
		}
		return v, false
	}

	c.order.moveToFront(key)
	c.stats.Hits++
	if c.cfg.onHit != nil {
		c.cfg.onHit(key, v)
	}
	return v, true
}

// Peek returns the value for key without updating its recency.
func (c *Cache[V]) Peek(key string) (V, bool) {
	v, ok := c.entries[key]
	return v, ok
}

// Has reports whether key is present without updating its recency.
func (c *Cache[V]) Has(key string) bool {
	_, ok := c.entries[key]
	return ok
}

// Add inserts or replaces the value for key and marks it as most recently used.
// If the cache grows past its capacity, the least recently used entry is evicted.
func (c *Cache[V]) Add(key string, value V) {
	if _, ok := c.entries[key]; ok {
		c.entries[key] = value
		c.order.moveToFront(key)
	} else {
		c.entries[key] = value
		c.order.pushFront(key)
	}

	// Add grows the cache by at most one entry.
	if len(c.entries) > c.capacity {
		c.evictOldest()
	}
}

func (c *Cache[V]) evictOldest() {
	key, ok := c.order.evictOldest()
	if !ok {
		return
	}

	value := c.entries[key]
	delete(c.entries, key)
	c.stats.Evictions++

	c.cfg.logger.Debug("lru: evicted entry",
		slog.String("key", key),
		slog.Int("size", len(c.entries)),
		slog.Int("capacity", c.capacity),
	)

	if c.cfg.onEvict != nil {
		c.cfg.onEvict(key, value)
	}
}

// Size returns the number of entries in the cache.
func (c *Cache[V]) Size() int {
	return len(c.entries)
}

// Capacity returns the maximum number of entries the cache retains.
func (c *Cache[V]) Capacity() int {
	return c.capacity
}

// Keys returns the cached keys ordered from most to least recently used.
func (c *Cache[V]) Keys() []string {
	return c.order.keys()
}

// Stats returns a copy of the cache statistics.
func (c *Cache[V]) Stats() Stats {
	return c.stats
}
