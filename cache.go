package evictcache

import (
	"context"
	"fmt"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
	"github.com/puzpuzpuz/xsync"
)

// Cache is a capacity-bounded in-memory cache.
//
// Please use New or one of NewLRU, NewLFU, NewFIFO to create instance.
type Cache[K comparable, V any] struct {
	mu    *xsync.RBMutex
	store *orderedStore[K, V]

	config Config
	log    ctxd.Logger
	stat   stats.Tracker
}

// New creates an instance of cache with optional configuration.
//
// Only first configuration argument is used.
func New[K comparable, V any](cfg ...Config) (*Cache[K, V], error) {
	config := Config{}

	if len(cfg) >= 1 {
		config = cfg[0]
	}

	config, err := config.withDefaults()
	if err != nil {
		return nil, err
	}

	s, err := newOrderedStore[K, V](config.Capacity)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	return &Cache[K, V]{
		mu:     &xsync.RBMutex{},
		store:  s,
		config: config,
		log:    config.Logger,
		stat:   config.Stats,
	}, nil
}

// NewLRU creates least recently used cache, ttlSeconds of 0 disables expiration.
func NewLRU[K comparable, V any](capacity, ttlSeconds int) (*Cache[K, V], error) {
	return newWithPolicy[K, V](LRU, capacity, ttlSeconds)
}

// NewLFU creates least frequently used cache, ttlSeconds of 0 disables expiration.
func NewLFU[K comparable, V any](capacity, ttlSeconds int) (*Cache[K, V], error) {
	return newWithPolicy[K, V](LFU, capacity, ttlSeconds)
}

// NewFIFO creates first in first out cache, ttlSeconds of 0 disables expiration.
func NewFIFO[K comparable, V any](capacity, ttlSeconds int) (*Cache[K, V], error) {
	return newWithPolicy[K, V](FIFO, capacity, ttlSeconds)
}

func newWithPolicy[K comparable, V any](p Policy, capacity, ttlSeconds int) (*Cache[K, V], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity %d", ErrInvalidConfig, capacity)
	}

	if ttlSeconds < 0 {
		return nil, fmt.Errorf("%w: time to live %ds", ErrInvalidConfig, ttlSeconds)
	}

	return New[K, V](Config{
		Policy:     p,
		Capacity:   capacity,
		TimeToLive: time.Duration(ttlSeconds) * time.Second,
	})
}

// Policy returns eviction policy.
func (c *Cache[K, V]) Policy() Policy {
	return c.config.Policy
}

// Capacity returns maximum number of entries.
func (c *Cache[K, V]) Capacity() int {
	return c.config.Capacity
}

// TimeToLive returns inactivity duration after which entries expire, 0 if expiration is disabled.
func (c *Cache[K, V]) TimeToLive() time.Duration {
	return c.config.TimeToLive
}

// Put stores value and returns previous value if the key was already present.
//
// Writing a new key to a full cache first deletes expired entries and then,
// if there is still no room, evicts one entry chosen by policy.
func (c *Cache[K, V]) Put(ctx context.Context, k K, v V) (prev V, replaced bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.config.Clock()

	var e *element[K, V]

	if c.config.Policy.reordersOnAccess() {
		e, replaced = c.store.moveToRecent(k)
	} else {
		e, replaced = c.store.peek(k)
	}

	if replaced {
		prev = e.value

		e.value = v
		e.lastAccess = now
		e.accessCount = 1
	} else {
		if c.store.len() >= c.config.Capacity {
			c.makeRoom(ctx, now)
		}

		c.store.insert(newElement(k, v, now))
	}

	if c.log != nil {
		c.log.Debug(ctx, "wrote to cache", "name", c.config.Name, "key", k, "value", v, "replaced", replaced)
	}

	if c.stat != nil {
		c.stat.Add(ctx, MetricWrite, 1, "name", c.config.Name)
		c.stat.Set(ctx, MetricItems, float64(c.store.len()), "name", c.config.Name)
	}

	return prev, replaced
}

// Get returns alive value and registers an access.
//
// Expired entry is deleted and reported as missing.
func (c *Cache[K, V]) Get(ctx context.Context, k K) (V, bool) {
	var zero V

	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.config.Clock()

	e, found := c.store.peek(k)
	if !found {
		if c.log != nil {
			c.log.Debug(ctx, "cache miss", "name", c.config.Name, "key", k)
		}

		if c.stat != nil {
			c.stat.Add(ctx, MetricMiss, 1, "name", c.config.Name)
		}

		return zero, false
	}

	if !e.alive(now, c.config.TimeToLive) {
		c.store.remove(k)

		if c.log != nil {
			c.log.Debug(ctx, "cache key expired", "name", c.config.Name, "key", k)
		}

		if c.stat != nil {
			c.stat.Add(ctx, MetricExpired, 1, "name", c.config.Name)
			c.stat.Add(ctx, MetricMiss, 1, "name", c.config.Name)
			c.stat.Set(ctx, MetricItems, float64(c.store.len()), "name", c.config.Name)
		}

		return zero, false
	}

	if c.config.Policy.reordersOnAccess() {
		c.store.moveToRecent(k)
	}

	e.touch(now)

	if c.stat != nil {
		c.stat.Add(ctx, MetricHit, 1, "name", c.config.Name)
	}

	return e.value, true
}

// Peek returns alive value without registering an access.
//
// Expired entries are not deleted by Peek.
func (c *Cache[K, V]) Peek(k K) (V, bool) {
	var zero V

	t := c.mu.RLock()
	defer c.mu.RUnlock(t)

	e, found := c.store.peek(k)
	if !found || !e.alive(c.config.Clock(), c.config.TimeToLive) {
		return zero, false
	}

	return e.value, true
}

// Remove deletes entry and returns its value, regardless of expiration.
func (c *Cache[K, V]) Remove(ctx context.Context, k K) (V, bool) {
	var zero V

	c.mu.Lock()
	defer c.mu.Unlock()

	e, found := c.store.remove(k)
	if !found {
		return zero, false
	}

	if c.log != nil {
		c.log.Debug(ctx, "removed cache entry", "name", c.config.Name, "key", k)
	}

	if c.stat != nil {
		c.stat.Add(ctx, MetricRemove, 1, "name", c.config.Name)
		c.stat.Set(ctx, MetricItems, float64(c.store.len()), "name", c.config.Name)
	}

	return e.value, true
}

// Size returns number of occupied slots, including expired entries that were not reclaimed yet.
func (c *Cache[K, V]) Size() int {
	t := c.mu.RLock()
	cnt := c.store.len()
	c.mu.RUnlock(t)

	return cnt
}

// Clear deletes all entries.
func (c *Cache[K, V]) Clear(ctx context.Context) {
	c.mu.Lock()
	cnt := c.store.len()
	c.store.purge()
	c.mu.Unlock()

	if c.log != nil {
		c.log.Important(ctx, "deleted all entries in cache", "name", c.config.Name, "count", cnt)
	}

	if c.stat != nil {
		c.stat.Set(ctx, MetricItems, 0, "name", c.config.Name)
	}
}

// Values returns alive values in iteration order, expired entries are deleted.
//
// Iteration order is insertion order for FIFO and access order (least recent first) for LRU and LFU.
func (c *Cache[K, V]) Values(ctx context.Context) []V {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.deleteExpired(ctx, c.config.Clock())

	elements := c.store.elements()
	values := make([]V, 0, len(elements))

	for _, e := range elements {
		values = append(values, e.value)
	}

	return values
}

// Keys returns alive keys in iteration order.
func (c *Cache[K, V]) Keys() []K {
	t := c.mu.RLock()
	defer c.mu.RUnlock(t)

	now := c.config.Clock()
	elements := c.store.elements()
	keys := make([]K, 0, len(elements))

	for _, e := range elements {
		if e.alive(now, c.config.TimeToLive) {
			keys = append(keys, e.key)
		}
	}

	return keys
}

// Walk calls function for every alive entry in iteration order and fails on first error returned by that function.
//
// Entries are visited from a snapshot, so walkFn is free to use the cache.
// Count of processed entries is returned.
func (c *Cache[K, V]) Walk(walkFn func(k K, v V) error) (int, error) {
	type kv struct {
		k K
		v V
	}

	t := c.mu.RLock()
	now := c.config.Clock()
	elements := c.store.elements()
	snapshot := make([]kv, 0, len(elements))

	for _, e := range elements {
		if e.alive(now, c.config.TimeToLive) {
			snapshot = append(snapshot, kv{k: e.key, v: e.value})
		}
	}
	c.mu.RUnlock(t)

	n := 0

	for _, i := range snapshot {
		if err := walkFn(i.k, i.v); err != nil {
			return n, err
		}

		n++
	}

	return n, nil
}

// DeleteExpired deletes all expired entries and returns their count.
func (c *Cache[K, V]) DeleteExpired(ctx context.Context) int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.deleteExpired(ctx, c.config.Clock())
}
