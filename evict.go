package evictcache

import (
	"context"
	"time"
)

// makeRoom frees one slot for a new key, must be called with exclusive lock held on a full store.
func (c *Cache[K, V]) makeRoom(ctx context.Context, now time.Time) {
	if c.deleteExpired(ctx, now) > 0 {
		return
	}

	var (
		e     *element[K, V]
		found bool
	)

	if c.config.Policy == LFU {
		if e, found = victim(LFU, c.store.elements()); found {
			c.store.remove(e.key)
		}
	} else {
		e, found = c.store.removeHead()
	}

	if !found {
		return
	}

	if c.log != nil {
		c.log.Debug(ctx, "evicted cache entry",
			"name", c.config.Name,
			"policy", c.config.Policy.String(),
			"key", e.key,
			"accessCount", e.accessCount,
			"lastAccess", e.lastAccess,
		)
	}

	if c.stat != nil {
		c.stat.Add(ctx, MetricEvict, 1, "name", c.config.Name)
	}
}

// deleteExpired removes all dead entries, must be called with exclusive lock held.
func (c *Cache[K, V]) deleteExpired(ctx context.Context, now time.Time) int {
	ttl := c.config.TimeToLive
	if ttl == 0 {
		return 0
	}

	n := c.store.removeOldestBy(func(e *element[K, V]) bool {
		return !e.alive(now, ttl)
	})

	if n == 0 {
		return 0
	}

	if c.log != nil {
		c.log.Debug(ctx, "deleted expired cache entries", "name", c.config.Name, "count", n)
	}

	if c.stat != nil {
		c.stat.Add(ctx, MetricExpired, float64(n), "name", c.config.Name)
		c.stat.Set(ctx, MetricItems, float64(c.store.len()), "name", c.config.Name)
	}

	return n
}
