// Package memo memoizes values by key and version, so a changed input (for
// example a file with a new modification time) is recomputed instead of
// served stale.
package memo

import (
	"context"
	"sync"
	"sync/atomic"
)

// Cache stores at most one value per key together with the version it was
// computed for.
type Cache[V any] interface {
	// Get returns the value stored for key when it was stored with version.
	Get(ctx context.Context, key, version string) (V, bool)

	// Put stores v for key at version, replacing any older version.
	Put(ctx context.Context, key, version string, v V)

	// Invalidate drops key regardless of version.
	Invalidate(ctx context.Context, key string)

	// Purge drops every entry.
	Purge(ctx context.Context)

	Size() int64
}

// node is an entry in the recency list; head is the most recently stored.
type node[V any] struct {
	key     string
	version string
	value   V
	next    *node[V]
}

// inMemoryCache implements Cache with a map plus a singly linked list.
// When bounded (maxSize > 0) the oldest stored entry is evicted first.
type inMemoryCache[V any] struct {
	mu      sync.Mutex
	entries map[string]*node[V]
	head    *node[V]
	maxSize int
	size    atomic.Int64
}

// New creates an in-memory cache with configuration options.
func New[V any](opts ...Option) Cache[V] {
	cfg := config{maxSize: defaultMaxSize}
	for _, opt := range opts {
		opt(&cfg)
	}
	return &inMemoryCache[V]{
		entries: make(map[string]*node[V]),
		maxSize: cfg.maxSize,
	}
}

func (c *inMemoryCache[V]) Get(_ context.Context, key, version string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	n, ok := c.entries[key]
	if !ok || n.version != version {
		var zero V
		return zero, false
	}
	return n.value, true
}

func (c *inMemoryCache[V]) Put(_ context.Context, key, version string, v V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	// A new version replaces the old entry and moves it to the head.
	if _, ok := c.entries[key]; ok {
		c.remove(key)
	}
	if c.maxSize > 0 && len(c.entries) >= c.maxSize {
		c.evictOldest()
	}

	n := &node[V]{key: key, version: version, value: v, next: c.head}
	c.head = n
	c.entries[key] = n
	c.size.Add(1)
}

func (c *inMemoryCache[V]) Invalidate(_ context.Context, key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.remove(key)
}

func (c *inMemoryCache[V]) Purge(_ context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*node[V])
	c.head = nil
	c.size.Store(0)
}

func (c *inMemoryCache[V]) Size() int64 {
	return c.size.Load()
}

// remove unlinks key. Must be called with c.mu held.
func (c *inMemoryCache[V]) remove(key string) {
	n, ok := c.entries[key]
	if !ok {
		return
	}
	delete(c.entries, key)

	if c.head == n {
		c.head = n.next
	} else {
		cur := c.head
		for cur != nil && cur.next != n {
			cur = cur.next
		}
		if cur != nil {
			cur.next = n.next
		}
	}
	c.size.Add(-1)
}

// evictOldest removes the tail of the list. Must be called with c.mu held.
func (c *inMemoryCache[V]) evictOldest() {
	if c.head == nil {
		return
	}
	tail := c.head
	for tail.next != nil {
		tail = tail.next
	}
	c.remove(tail.key)
}
