package metrics

import (
	"strconv"
	"time"

	"github.com/garnizeh/jobboard/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink implements Sink using Prometheus client library.
// Registration errors are logged but never propagated.
type PrometheusSink struct {
	logger *logging.Logger

	// HTTP metrics
	requestsTotal   *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec

	// Listing metrics
	listingsCreatedTotal prometheus.Counter
	listingsUpdatedTotal prometheus.Counter

	// Cache metrics
	cacheLookupsTotal *prometheus.CounterVec
}

// NewPrometheusSink creates a new Prometheus metrics sink.
// If registration fails, it logs a warning and returns a functional sink.
func NewPrometheusSink(reg prometheus.Registerer, logger *logging.Logger) *PrometheusSink {
	if logger == nil {
		logger = logging.NewNop()
	}
	s := &PrometheusSink{logger: logger}
	s.initHTTPMetrics(reg)
	s.initListingMetrics(reg)
	s.initCacheMetrics(reg)
	return s
}

func (s *PrometheusSink) initHTTPMetrics(reg prometheus.Registerer) {
	s.requestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_http_requests_total",
		Help: "Total number of HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})
	s.requestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "jobboard_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	}, []string{"method", "route"})

	s.register(reg, s.requestsTotal, "jobboard_http_requests_total")
	s.register(reg, s.requestDuration, "jobboard_http_request_duration_seconds")
}

func (s *PrometheusSink) initListingMetrics(reg prometheus.Registerer) {
	s.listingsCreatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "jobboard_listings_created_total",
		Help: "Total number of job listings created.",
	})
	s.listingsUpdatedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "jobboard_listings_updated_total",
		Help: "Total number of job listings updated.",
	})

	s.register(reg, s.listingsCreatedTotal, "jobboard_listings_created_total")
	s.register(reg, s.listingsUpdatedTotal, "jobboard_listings_updated_total")
}

func (s *PrometheusSink) initCacheMetrics(reg prometheus.Registerer) {
	s.cacheLookupsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "jobboard_cache_lookups_total",
		Help: "Total number of listing cache lookups by result.",
	}, []string{"result"})

	s.register(reg, s.cacheLookupsTotal, "jobboard_cache_lookups_total")
}

// register attempts to register a collector, logging any errors without propagating them.
func (s *PrometheusSink) register(reg prometheus.Registerer, c prometheus.Collector, name string) {
	if err := reg.Register(c); err != nil {
		s.logger.Warn("metrics: failed to register collector", "name", name, "err", err)
	}
}

func (s *PrometheusSink) RequestCompleted(method, route string, status int, duration time.Duration) {
	s.requestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	s.requestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (s *PrometheusSink) ListingCreated() {
	s.listingsCreatedTotal.Inc()
}

func (s *PrometheusSink) ListingUpdated() {
	s.listingsUpdatedTotal.Inc()
}

func (s *PrometheusSink) CacheLookup(result string) {
	s.cacheLookupsTotal.WithLabelValues(result).Inc()
}
