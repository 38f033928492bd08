package lru_test

import (
	"fmt"

	"github.com/bjaus/lru"
)

func ExampleCache() {
	cache := lru.New[string](2)

	cache.Add("123", "11")
	cache.Add("23", "12")
	cache.Get("123")      // 123 is now most recently used
	cache.Add("45", "13") // evicts 23

	_, has23 := cache.Get("23")
	v, _ := cache.Get("123")
	fmt.Println("has 23:", has23)
	fmt.Println("123:", v)
	fmt.Println("size:", cache.Size())

	// Output:
	// has 23: false
	// 123: 11
	// size: 2
}

func ExampleNewWithCallback() {
	cache := lru.NewWithCallback[[]byte](2, func(key string, value []byte) {
		fmt.Printf("evicted: %s=%s\n", key, value)
	})

	cache.Add("a", []byte("1"))
	cache.Add("b", []byte("2"))
	cache.Add("c", []byte("3")) // triggers eviction of a

	// Output: evicted: a=1
}

func ExampleCache_Keys() {
	cache := lru.New[string](3)

	cache.Add("a", "1")
	cache.Add("b", "2")
	cache.Add("c", "3")
	cache.Get("a")

	fmt.Println(cache.Keys())
	// Output: [a c b]
}

func ExampleCache_Stats() {
	cache := lru.New[string](10)

	cache.Add("a", "1")
	cache.Get("a") // hit
	cache.Get("b") // miss

	stats := cache.Stats()
	fmt.Printf("hits: %d, misses: %d, rate: %.0f%%\n",
		stats.Hits, stats.Misses, stats.HitRate()*100)

	// Output: hits: 1, misses: 1, rate: 50%
}
