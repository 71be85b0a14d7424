package api

import (
	"net/http"

	"github.com/garnizeh/jobboard/internal/auth"
	"github.com/garnizeh/jobboard/internal/listing"
	"github.com/garnizeh/jobboard/internal/metrics"
	"github.com/garnizeh/jobboard/pkg/repository"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps are the collaborators the HTTP layer is built from.
type Deps struct {
	Version   string
	BuildTime string

	Listings *listing.Service
	Health   repository.HealthChecker
	Verifier auth.Verifier

	// Metrics receives per-request observations. Nil disables them.
	Metrics metrics.Sink
	// Gatherer backs GET /metrics. Nil leaves the route unregistered.
	Gatherer prometheus.Gatherer
}

// SetupRoutes builds the HTTP handler. CORS wraps the router so preflight
// requests are answered before method matching.
func SetupRoutes(d Deps) http.Handler {
	r := mux.NewRouter()

	sink := d.Metrics
	if sink == nil {
		sink = metrics.NewNoopSink()
	}

	// Middleware chain
	r.Use(LoggingMiddleware)
	r.Use(RecoveryMiddleware)
	r.Use(MetricsMiddleware(sink))

	r.NotFoundHandler = LoggingMiddleware(http.HandlerFunc(notFound))
	r.MethodNotAllowedHandler = LoggingMiddleware(http.HandlerFunc(methodNotAllowed))

	systemHandler := NewSystemHandler(d.Health)
	listingsHandler := NewListingsHandler(d.Listings)

	// Open endpoints
	r.HandleFunc("/version", systemHandler.VersionHandler(d.Version, d.BuildTime)).Methods(http.MethodGet)
	r.HandleFunc("/health", systemHandler.HealthHandler).Methods(http.MethodGet)
	if d.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(d.Gatherer, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	}
	r.HandleFunc("/jobs", listingsHandler.List).Methods(http.MethodGet)
	r.HandleFunc("/jobs/{id}", listingsHandler.Get).Methods(http.MethodGet)

	// Protected routes
	protected := r.NewRoute().Subrouter()
	protected.Use(RequireAuth(d.Verifier))
	protected.HandleFunc("/job-posting", listingsHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/job-posting/{id}", listingsHandler.Update).Methods(http.MethodPut)

	return CORSMiddleware(r)
}
