package metrics

import "time"

// Sink defines the interface for recording metrics.
// All methods are fire-and-forget: implementations MUST NOT block or propagate errors.
type Sink interface {
	// HTTP metrics
	RequestCompleted(method, route string, status int, duration time.Duration)

	// Listing metrics
	ListingCreated()
	ListingUpdated()

	// Cache metrics
	CacheLookup(result string)
}

// Result constants for CacheLookup.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheError = "error"
)
