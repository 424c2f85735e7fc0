package cache

import (
	"container/list"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
)

const (
	// DefaultCapacity is used when New is given a non-positive capacity
	DefaultCapacity = 100
	// DefaultTTL is used when New is given a non-positive default TTL
	DefaultTTL = 5 * time.Minute
)

// Cache is a thread-safe TTL cache bounded by entry count
type Cache[V any] struct {
	capacity   int
	defaultTTL time.Duration
	clock      clock.Clock

	mu    sync.Mutex
	order *list.List // front is the oldest insertion
	items map[string]*list.Element
	stats Stats
}

// entry is stored in the order list
type entry[V any] struct {
	key    string
	value  V
	expiry time.Time
}

// Stats holds monotonic counters describing cache activity
type Stats struct {
	Hits        uint64
	Misses      uint64
	Expirations uint64
	Evictions   uint64
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	clock clock.Clock
}

// WithClock sets the time source used for expiry checks.
func WithClock(c clock.Clock) Option {
	return func(o *options) {
		if c != nil {
			o.clock = c
		}
	}
}

// New creates a cache holding at most capacity entries.
func New[V any](capacity int, defaultTTL time.Duration, opts ...Option) *Cache[V] {
	o := options{clock: clock.New()}
	for _, opt := range opts {
		opt(&o)
	}

	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	if defaultTTL <= 0 {
		defaultTTL = DefaultTTL
	}

	return &Cache[V]{
		capacity:   capacity,
		defaultTTL: defaultTTL,
		clock:      o.clock,
		order:      list.New(),
		items:      make(map[string]*list.Element),
	}
}

// Set stores value under key using the default TTL.
func (c *Cache[V]) Set(key string, value V) {
	c.SetWithTTL(key, value, c.defaultTTL)
}

// SetWithTTL stores value under key, expiring ttl from now. A zero or
// negative ttl stores an entry that is already expired.
func (c *Cache[V]) SetWithTTL(key string, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.clock.Now()

	if node, exists := c.items[key]; exists {
		c.removeElement(node)
	}

	if c.order.Len() >= c.capacity {
		c.removeExpired(now)

		if c.order.Len() >= c.capacity {
			c.removeOldest()
		}
	}

	node := c.order.PushBack(&entry[V]{
		key:    key,
		value:  value,
		expiry: now.Add(ttl),
	})
	c.items[key] = node
}

// Get returns the live value for key. An expired entry is removed and
// reported as absent.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.live(key)
	if !ok {
		c.stats.Misses++
		var zero V
		return zero, false
	}

	c.stats.Hits++
	return ent.value, true
}

// Has reports whether key holds a live entry, removing it if expired.
func (c *Cache[V]) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	_, ok := c.live(key)
	return ok
}

// Delete removes key and reports whether an entry was present.
func (c *Cache[V]) Delete(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	node, exists := c.items[key]
	if !exists {
		return false
	}
	c.removeElement(node)
	return true
}

// Clear removes all entries
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = make(map[string]*list.Element)
	c.order.Init()
}

// Len returns the number of stored entries, including expired entries that
// have not been touched since they expired.
func (c *Cache[V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.order.Len()
}

// Capacity returns the maximum number of entries
func (c *Cache[V]) Capacity() int {
	return c.capacity
}

// Stats returns a snapshot of the activity counters
func (c *Cache[V]) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.stats
}

// live looks up key and drops it if expired. Caller holds mu.
func (c *Cache[V]) live(key string) (*entry[V], bool) {
	node, exists := c.items[key]
	if !exists {
		return nil, false
	}

	ent := node.Value.(*entry[V])
	if !c.clock.Now().Before(ent.expiry) {
		c.removeElement(node)
		c.stats.Expirations++
		return nil, false
	}

	return ent, true
}

// removeExpired drops every entry whose expiry is at or before now.
func (c *Cache[V]) removeExpired(now time.Time) {
	for node := c.order.Front(); node != nil; {
		next := node.Next()
		if !now.Before(node.Value.(*entry[V]).expiry) {
			c.removeElement(node)
			c.stats.Expirations++
		}
		node = next
	}
}

// removeOldest evicts the earliest inserted entry
func (c *Cache[V]) removeOldest() {
	if node := c.order.Front(); node != nil {
		c.removeElement(node)
		c.stats.Evictions++
	}
}

func (c *Cache[V]) removeElement(node *list.Element) {
	c.order.Remove(node)
	delete(c.items, node.Value.(*entry[V]).key)
}
