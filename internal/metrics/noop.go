package metrics

import "time"

// NoopSink is a no-op implementation of Sink.
// Used when metrics are disabled to avoid nil checks.
type NoopSink struct{}

// NewNoopSink returns a no-op metrics sink.
func NewNoopSink() *NoopSink {
	return &NoopSink{}
}

func (n *NoopSink) RequestCompleted(method, route string, status int, d time.Duration) {}
func (n *NoopSink) ListingCreated()                                                    {}
func (n *NoopSink) ListingUpdated()                                                    {}
func (n *NoopSink) CacheLookup(result string)                                          {}
