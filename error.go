package evictcache

// SentinelError is an error.
type SentinelError string

const (
	// ErrInvalidConfig indicates a cache could not be created with given parameters.
	ErrInvalidConfig = SentinelError("invalid configuration")

	// ErrNothingToInvalidate indicates no caches were added to Invalidator.
	ErrNothingToInvalidate = SentinelError("nothing to invalidate")

	// ErrAlreadyInvalidated indicates recent invalidation.
	ErrAlreadyInvalidated = SentinelError("already invalidated")
)

// Error implements error.
func (e SentinelError) Error() string {
	return string(e)
}
