package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/garnizeh/jobboard/internal/metrics"
	"github.com/garnizeh/jobboard/pkg/logging"
	"github.com/garnizeh/jobboard/pkg/models"
	"github.com/garnizeh/jobboard/pkg/repository"
)

const keyPrefix = "jobboard:listing:"

// ListingRepo caches GetListing results in front of another ListingRepo.
// Listing queries always go to the wrapped repo. Cache failures are logged
// and never fail the call.
//
// Each id carries an invalidation generation bumped by UpdateListing. A read
// only fills the cache when no invalidation happened while it was loading
// from the store, so a slow read cannot re-cache a replaced listing.
type ListingRepo struct {
	next    repository.ListingRepo
	cache   Cache
	ttl     time.Duration
	metrics metrics.Sink
	logger  *logging.Logger

	mu  sync.Mutex
	gen map[string]uint64
}

var _ repository.ListingRepo = (*ListingRepo)(nil)

func NewListingRepo(next repository.ListingRepo, c Cache, ttl time.Duration, sink metrics.Sink, logger *logging.Logger) *ListingRepo {
	if sink == nil {
		sink = metrics.NewNoopSink()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &ListingRepo{next: next, cache: c, ttl: ttl, metrics: sink, logger: logger, gen: make(map[string]uint64)}
}

func key(id string) string {
	return keyPrefix + id
}

func (r *ListingRepo) CreateListing(ctx context.Context, l *models.JobListing) (string, error) {
	return r.next.CreateListing(ctx, l)
}

func (r *ListingRepo) UpdateListing(ctx context.Context, id string, l *models.JobListing) error {
	if err := r.next.UpdateListing(ctx, id, l); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.gen[id]++
	if err := r.cache.Delete(ctx, key(id)); err != nil {
		r.logger.Warn("cache invalidate failed", "id", id, "err", err)
	}
	return nil
}

func (r *ListingRepo) generation(id string) uint64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.gen[id]
}

func (r *ListingRepo) GetListing(ctx context.Context, id string) (*models.JobListing, error) {
	var cached models.JobListing
	err := r.cache.Get(ctx, key(id), &cached)
	switch {
	case err == nil:
		r.metrics.CacheLookup(metrics.CacheHit)
		return &cached, nil
	case errors.Is(err, ErrNotFound):
		r.metrics.CacheLookup(metrics.CacheMiss)
	default:
		r.metrics.CacheLookup(metrics.CacheError)
		r.logger.Warn("cache read failed", "id", id, "err", err)
	}

	start := r.generation(id)
	l, err := r.next.GetListing(ctx, id)
	if err != nil || l == nil {
		return l, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if r.gen[id] != start {
		r.logger.Debug("listing changed during read, not caching", "id", id)
		return l, nil
	}
	if err := r.cache.Set(ctx, key(id), l, r.ttl); err != nil {
		r.logger.Warn("cache write failed", "id", id, "err", err)
	}
	return l, nil
}

func (r *ListingRepo) ListListings(ctx context.Context, f models.ListingFilter) ([]models.JobListing, error) {
	return r.next.ListListings(ctx, f)
}
