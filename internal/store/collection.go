package store

import "sync"

// Collection is an in-process keyed record set: the fallback backend of a
// resilient repository. Records are indexed by id and listed in insertion
// order, which keeps seeded fixtures and per-channel message history in a
// stable chronological sequence. All mutation happens under a write lock;
// reads only take the read lock.
type Collection[T any] struct {
	mu    sync.RWMutex
	keyOf func(T) string
	items map[string]T
	order []string
}

// NewCollection creates an empty Collection whose records are keyed by keyOf.
func NewCollection[T any](keyOf func(T) string) *Collection[T] {
	return &Collection[T]{
		keyOf: keyOf,
		items: make(map[string]T),
	}
}

// Insert adds item, overwriting any record with the same key. A fresh key
// is appended to the iteration order; an overwrite keeps its position.
func (c *Collection[T]) Insert(item T) {
	key := c.keyOf(item)

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[key]; !exists {
		c.order = append(c.order, key)
	}
	c.items[key] = item
}

// Get returns the record with the given key.
func (c *Collection[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	item, ok := c.items[key]
	return item, ok
}

// List returns records in insertion order. A nil match returns everything.
func (c *Collection[T]) List(match func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]T, 0, len(c.order))
	for _, key := range c.order {
		item := c.items[key]
		if match == nil || match(item) {
			out = append(out, item)
		}
	}
	return out
}

// Update applies apply to the record with the given key and stores the
// result, returning it. The second return is false when the key is absent.
func (c *Collection[T]) Update(key string, apply func(T) T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	item, ok := c.items[key]
	if !ok {
		var zero T
		return zero, false
	}
	item = apply(item)
	c.items[key] = item
	return item, true
}

// Delete removes the record with the given key, reporting whether it existed.
func (c *Collection[T]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[key]; !ok {
		return false
	}
	delete(c.items, key)
	c.removeFromOrder(key)
	return true
}

// DeleteWhere removes every record matching match, returning how many were removed.
func (c *Collection[T]) DeleteWhere(match func(T) bool) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	removed := 0
	kept := c.order[:0]
	for _, key := range c.order {
		if match(c.items[key]) {
			delete(c.items, key)
			removed++
			continue
		}
		kept = append(kept, key)
	}
	c.order = kept
	return removed
}

// Replace atomically removes every record matching match and appends items.
func (c *Collection[T]) Replace(match func(T) bool, items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()

	kept := c.order[:0]
	for _, key := range c.order {
		if match(c.items[key]) {
			delete(c.items, key)
			continue
		}
		kept = append(kept, key)
	}
	c.order = kept

	for _, item := range items {
		key := c.keyOf(item)
		if _, exists := c.items[key]; !exists {
			c.order = append(c.order, key)
		}
		c.items[key] = item
	}
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T]) removeFromOrder(key string) {
	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			return
		}
	}
}
