package evictcache

import (
	"fmt"
	"strings"
)

// Policy defines which entry is dropped when a new key is written to a full cache.
//
// Policy is chosen at construction and can not be changed for cache lifetime.
type Policy uint8

const (
	// LRU evicts least recently used entry, both Get and Put count as use.
	LRU Policy = iota

	// LFU evicts entry with the lowest access count, ties are resolved by the oldest access time.
	LFU

	// FIFO evicts the longest resident entry regardless of access pattern.
	FIFO
)

// Default capacities per policy.
const (
	DefaultLRUCapacity  = 1000
	DefaultLFUCapacity  = 1000
	DefaultFIFOCapacity = 1400
)

// ParsePolicy converts a policy name (case-insensitive) into Policy.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(s) {
	case "lru":
		return LRU, nil
	case "lfu":
		return LFU, nil
	case "fifo":
		return FIFO, nil
	}

	return 0, fmt.Errorf("%w: unknown policy %q", ErrInvalidConfig, s)
}

// String implements fmt.Stringer.
func (p Policy) String() string {
	switch p {
	case LRU:
		return "lru"
	case LFU:
		return "lfu"
	case FIFO:
		return "fifo"
	}

	return fmt.Sprintf("policy(%d)", uint8(p))
}

func (p Policy) valid() bool {
	return p <= FIFO
}

// DefaultCapacity returns capacity used when Config.Capacity is not set.
func (p Policy) DefaultCapacity() int {
	switch p {
	case LFU:
		return DefaultLFUCapacity
	case FIFO:
		return DefaultFIFOCapacity
	default:
		return DefaultLRUCapacity
	}
}

// reordersOnAccess reports whether Get and Put of existing key move the entry to the recent end.
func (p Policy) reordersOnAccess() bool {
	return p != FIFO
}

// victim picks a single entry to evict from elements listed in store iteration order (oldest first).
func victim[K comparable, V any](p Policy, elements []*element[K, V]) (*element[K, V], bool) {
	if len(elements) == 0 {
		return nil, false
	}

	if p != LFU {
		// Head of insertion order for FIFO, head of access order for LRU.
		return elements[0], true
	}

	least := elements[0]

	for _, e := range elements[1:] {
		if e.accessCount < least.accessCount ||
			(e.accessCount == least.accessCount && e.lastAccess.Before(least.lastAccess)) {
			least = e
		}
	}

	return least, true
}
