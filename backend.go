package evictcache

import (
	"context"

	"github.com/bool64/cache"
)

var (
	_ cache.ReadWriter = &Backend{}
	_ cache.Deleter    = &Backend{}
)

// Backend exposes bounded cache with string keys as github.com/bool64/cache storage.
//
// It can be used as cache.FailoverConfig.Backend to combine bounded memory with
// failover value building.
type Backend struct {
	*Cache[string, interface{}]
}

// NewBackend creates an instance of bool64/cache backend with optional configuration.
func NewBackend(cfg ...Config) (*Backend, error) {
	c, err := New[string, interface{}](cfg...)
	if err != nil {
		return nil, err
	}

	return &Backend{Cache: c}, nil
}

// Read gets value.
//
// Missing and expired entries are reported with cache.ErrNotFound.
func (b *Backend) Read(ctx context.Context, key []byte) (interface{}, error) {
	if cache.SkipRead(ctx) {
		return nil, cache.ErrNotFound
	}

	v, found := b.Get(ctx, string(key))
	if !found {
		return nil, cache.ErrNotFound
	}

	return v, nil
}

// Write sets value.
func (b *Backend) Write(ctx context.Context, key []byte, value interface{}) error {
	b.Put(ctx, string(key), value)

	return nil
}

// Delete removes entry, cache.ErrNotFound is returned for missing key.
func (b *Backend) Delete(ctx context.Context, key []byte) error {
	if _, found := b.Remove(ctx, string(key)); !found {
		return cache.ErrNotFound
	}

	return nil
}

// DeleteAll erases all entries.
func (b *Backend) DeleteAll(ctx context.Context) {
	b.Clear(ctx)
}
