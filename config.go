package evictcache

import (
	"fmt"
	"time"

	"github.com/bool64/ctxd"
	"github.com/bool64/stats"
)

// Config controls cache instance.
type Config struct {
	// Logger is an instance of contextualized logger, can be nil.
	Logger ctxd.Logger

	// Stats is metrics collector, can be nil.
	Stats stats.Tracker

	// Name is cache instance name, used in stats and logging.
	Name string

	// Policy selects eviction rule, default LRU.
	Policy Policy

	// Capacity is a maximum number of entries, default depends on Policy (1000 for LRU and LFU, 1400 for FIFO).
	Capacity int

	// TimeToLive is a duration of inactivity after which entry is considered expired, default 0 (no expiration).
	TimeToLive time.Duration

	// Clock returns current time, default time.Now.
	Clock func() time.Time
}

func (cfg Config) withDefaults() (Config, error) {
	if !cfg.Policy.valid() {
		return cfg, fmt.Errorf("%w: unknown policy %s", ErrInvalidConfig, cfg.Policy)
	}

	if cfg.Capacity < 0 {
		return cfg, fmt.Errorf("%w: capacity %d", ErrInvalidConfig, cfg.Capacity)
	}

	if cfg.TimeToLive < 0 {
		return cfg, fmt.Errorf("%w: time to live %s", ErrInvalidConfig, cfg.TimeToLive)
	}

	if cfg.Capacity == 0 {
		cfg.Capacity = cfg.Policy.DefaultCapacity()
	}

	if cfg.Clock == nil {
		cfg.Clock = time.Now
	}

	return cfg, nil
}
