package evictcache

// Metric names reported to stats.Tracker, every metric is labeled with "name" of cache instance.
const (
	// MetricHit is a counter of alive entries served by Get.
	MetricHit = "cache_hit"

	// MetricMiss is a counter of Get calls that found no alive entry.
	MetricMiss = "cache_miss"

	// MetricExpired is a counter of entries deleted because of time to live.
	MetricExpired = "cache_expired"

	// MetricWrite is a counter of Put calls.
	MetricWrite = "cache_write"

	// MetricEvict is a counter of entries dropped by eviction policy.
	MetricEvict = "cache_evict"

	// MetricRemove is a counter of entries deleted with Remove.
	MetricRemove = "cache_remove"

	// MetricItems is a gauge of occupied slots.
	MetricItems = "cache_items"
)
