package catalog

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// entityCache is a small LRU over by-ID catalog lookups. Name lookups and
// list queries always go to the repository; only the hot by-ID path caches.
type entityCache[T any] struct {
	lru *lru.Cache[int, T]
}

func newEntityCache[T any](size int) *entityCache[T] {
	// lru.New only fails on a non-positive size
	c, err := lru.New[int, T](size)
	if err != nil {
		panic(err)
	}
	return &entityCache[T]{lru: c}
}

func (c *entityCache[T]) get(id int) (T, bool) {
	return c.lru.Get(id)
}

func (c *entityCache[T]) put(id int, v T) {
	c.lru.Add(id, v)
}

func (c *entityCache[T]) invalidate(id int) {
	c.lru.Remove(id)
}
