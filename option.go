package lru

import "log/slog"

// EvictFunc is called with the key and value of every evicted entry.
// The cache holds no reference to the value once the callback runs.
type EvictFunc[V Bytes] func(key string, value V)

type config[V Bytes] struct {
	onEvict EvictFunc[V]
	onHit   func(string, V)
	onMiss  func(string)
	logger  *slog.Logger
}

func defaultConfig[V Bytes]() config[V] {
	return config[V]{
		logger: slog.New(slog.DiscardHandler),
	}
}

// Option configures a Cache.
type Option[V Bytes] func(*config[V])

// OnEvict sets a callback invoked when an entry is evicted.
func OnEvict[V Bytes](fn EvictFunc[V]) Option[V] {
	return func(c *config[V]) {
		c.onEvict = fn
	}
}

// OnHit sets a callback invoked on cache hits.
func OnHit[V Bytes](fn func(string, V)) Option[V] {
	return func(c *config[V]) {
		c.onHit = fn
	}
}

// OnMiss sets a callback invoked on cache misses.
func OnMiss[V Bytes](fn func(string)) Option[V] {
	return func(c *config[V]) {
		c.onMiss = fn
	}
}

// WithLogger sets the logger used to report evictions at debug level.
// A nil logger is ignored.
func WithLogger[V Bytes](l *slog.Logger) Option[V] {
	return func(c *config[V]) {
		if l != nil {
			c.logger = l
		}
	}
}
