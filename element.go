package evictcache

import "time"

// element is a cache entry, it never leaves the store.
type element[K comparable, V any] struct {
	key         K
	value       V
	lastAccess  time.Time
	accessCount uint64
}

func newElement[K comparable, V any](k K, v V, now time.Time) *element[K, V] {
	return &element[K, V]{
		key:         k,
		value:       v,
		lastAccess:  now,
		accessCount: 1,
	}
}

// touch registers an access.
func (e *element[K, V]) touch(now time.Time) {
	e.lastAccess = now
	e.accessCount++
}

// alive reports whether element has been accessed within ttl, zero ttl means no expiration.
func (e *element[K, V]) alive(now time.Time, ttl time.Duration) bool {
	if ttl == 0 {
		return true
	}

	return now.Sub(e.lastAccess) < ttl
}
