// Package lru provides a fixed-capacity key/value cache with
// least-recently-used eviction.
//
// # Overview
//
// A Cache maps string keys to values of any type that converts to a byte
// slice (see Bytes). It holds at most a fixed number of entries. Adding an
// entry past that limit evicts the entry that has gone longest without being
// read or written.
//
// # Basic Usage
//
//	cache := lru.New[string](2)
//
//	cache.Add("a", "1")
//	cache.Add("b", "2")
//
//	if v, ok := cache.Get("a"); ok {
//		fmt.Println(v) // "a" is now most recently used
//	}
//
//	cache.Add("c", "3") // evicts "b"
//
// Get and Add both promote the key to most recently used. Peek and Has read
// without promoting. Re-adding an existing key replaces its value and never
// changes Size.
//
// # Eviction Callbacks
//
// Register a callback to observe evictions. It runs synchronously inside Add,
// exactly once per evicted entry, after the entry has left the cache:
//
//	cache := lru.NewWithCallback[[]byte](100, func(key string, value []byte) {
//		log.Printf("evicted %s (%d bytes)", key, len(value))
//	})
//
// A callback must not call back into the cache. A panic in the callback
// propagates out of Add; the cache is already consistent at that point.
//
// # Lifecycle Hooks
//
//	cache := lru.New[string](100,
//		lru.OnHit(func(key string, value string) { hits.Inc() }),
//		lru.OnMiss[string](func(key string) { misses.Inc() }),
//		lru.WithLogger[string](slog.Default()),
//	)
//
// # Configuration
//
// LoadConfig reads the capacity from LRU_CAPACITY, optionally after loading
// .env files:
//
//	cfg, err := lru.LoadConfig(".env")
//	if err != nil {
//		return err
//	}
//	cache := lru.NewFromConfig[[]byte](cfg)
//
// # Capacity Zero
//
// A capacity of zero is valid. Every Add inserts and immediately evicts the
// new entry, so the cache never retains anything and the callback sees every
// value.
//
// # Thread Safety
//
// Cache is not safe for concurrent use. Guard each Cache with a single
// sync.Mutex if it is shared between goroutines.
package lru
