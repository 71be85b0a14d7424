package repository

import (
	"context"
	"errors"

	"github.com/garnizeh/jobboard/pkg/models"
)

// ErrNotFound is returned by writes that target a listing that does not exist.
var ErrNotFound = errors.New("not found")

// Repository interfaces for domain entities. These are the public contracts
// consumers should depend on; concrete implementations live under internal/.

type ListingRepo interface {
	// CreateListing assigns a fresh id and creation time and returns the id.
	CreateListing(ctx context.Context, l *models.JobListing) (string, error)
	// UpdateListing replaces every field except id and creation time.
	// Returns ErrNotFound when id does not exist.
	UpdateListing(ctx context.Context, id string, l *models.JobListing) error
	// GetListing returns nil, nil when id does not exist.
	GetListing(ctx context.Context, id string) (*models.JobListing, error)
	ListListings(ctx context.Context, f models.ListingFilter) ([]models.JobListing, error)
}

// HealthChecker reports connectivity of the persistence layer.
type HealthChecker interface {
	PingContext(ctx context.Context) error
}
