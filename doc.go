// Package evictcache provides a capacity-bounded in-process cache with pluggable eviction.
//
// Features:
//
//  - Fixed capacity, new keys on a full cache evict exactly one entry.
//  - Eviction policies: least recently used, least frequently used, first in first out.
//  - Optional time to live counted from the last access, expired entries are reclaimed lazily.
//  - No background janitor, all work happens within the calling operation.
//  - Single reader-biased lock per instance, safe for concurrent readers and writers.
//  - Allows logging, stats collection.
//  - Can serve as a backend for github.com/bool64/cache.
package evictcache
