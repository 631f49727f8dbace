package evictcache

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bool64/ctxd"
)

// Clearer is a cache that can be dropped by Invalidator, *Cache and *Backend implement it.
type Clearer interface {
	Size() int
	Clear(ctx context.Context)
}

// Invalidator clears a group of caches at once, with flood protection.
type Invalidator struct {
	sync.Mutex

	// SkipInterval defines minimal duration between two cache invalidations (flood protection), default 15s.
	SkipInterval time.Duration

	// Logger receives a message per cleared cache, can be nil.
	Logger ctxd.Logger

	// Callbacks contains a list of additional functions to call on invalidate.
	Callbacks []func(ctx context.Context)

	caches  map[string]Clearer
	lastRun time.Time
}

// Add registers cache to be cleared on Invalidate, name is used in logs.
func (i *Invalidator) Add(name string, c Clearer) {
	i.Lock()
	defer i.Unlock()

	if i.caches == nil {
		i.caches = make(map[string]Clearer)
	}

	i.caches[name] = c
}

// Invalidate clears registered caches, calls callbacks and returns the number of dropped entries.
//
// Entries written concurrently with Invalidate may be dropped without being counted.
func (i *Invalidator) Invalidate(ctx context.Context) (int, error) {
	i.Lock()
	defer i.Unlock()

	if len(i.caches) == 0 && len(i.Callbacks) == 0 {
		return 0, ErrNothingToInvalidate
	}

	if i.SkipInterval == 0 {
		i.SkipInterval = 15 * time.Second
	}

	if time.Since(i.lastRun) < i.SkipInterval {
		return 0, fmt.Errorf("%w at %s, %s did not pass",
			ErrAlreadyInvalidated, i.lastRun.String(), i.SkipInterval.String())
	}

	i.lastRun = time.Now()
	total := 0

	for name, c := range i.caches {
		cnt := c.Size()
		c.Clear(ctx)
		total += cnt

		if i.Logger != nil {
			i.Logger.Info(ctx, "invalidated cache", "name", name, "count", cnt)
		}
	}

	for _, cb := range i.Callbacks {
		cb(ctx)
	}

	return total, nil
}
