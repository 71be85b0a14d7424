// Package listing holds the job listing rules: which fields are required,
// how submissions are defaulted, how search parameters become a filter, and
// the Service that runs them in order against a repository.
package listing

import (
	"context"
	"errors"
	"fmt"

	"github.com/garnizeh/jobboard/internal/auth"
	apperrors "github.com/garnizeh/jobboard/internal/errors"
	"github.com/garnizeh/jobboard/internal/metrics"
	"github.com/garnizeh/jobboard/pkg/logging"
	"github.com/garnizeh/jobboard/pkg/models"
	"github.com/garnizeh/jobboard/pkg/repository"
)

// MsgNotFound is returned when a listing id is unknown.
const MsgNotFound = "Job listing not found"

// Service orchestrates listing operations.
type Service struct {
	repo      repository.ListingRepo
	validator Validator
	metrics   metrics.Sink
	logger    *logging.Logger
}

// NewService creates a Service. A nil sink or logger falls back to no-ops.
func NewService(repo repository.ListingRepo, v Validator, sink metrics.Sink, logger *logging.Logger) *Service {
	if sink == nil {
		sink = metrics.NewNoopSink()
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Service{repo: repo, validator: v, metrics: sink, logger: logger}
}

// Create validates and normalizes sub, then stores it as a new listing.
func (s *Service) Create(ctx context.Context, sub models.JobSubmission) (string, error) {
	if err := s.validator.Validate(&sub); err != nil {
		return "", err
	}

	l := &models.JobListing{JobSubmission: Normalize(sub)}
	id, err := s.repo.CreateListing(ctx, l)
	if err != nil {
		return "", apperrors.Internal("failed to create listing", err)
	}

	s.metrics.ListingCreated()
	s.logger.Info("listing created", "id", id, "user_id", userID(ctx))
	return id, nil
}

// Update replaces every field of the listing id with the normalized sub.
// The stored creation time is kept.
func (s *Service) Update(ctx context.Context, id string, sub models.JobSubmission) error {
	if err := s.validator.Validate(&sub); err != nil {
		return err
	}

	l := &models.JobListing{JobSubmission: Normalize(sub)}
	if err := s.repo.UpdateListing(ctx, id, l); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NotFound(MsgNotFound, fmt.Errorf("listing %s: %w", id, err))
		}
		return apperrors.Internal("failed to update listing", err)
	}

	s.metrics.ListingUpdated()
	s.logger.Info("listing updated", "id", id, "user_id", userID(ctx))
	return nil
}

// List returns the listings matching the raw query parameters.
func (s *Service) List(ctx context.Context, skills, searchTerm string) ([]models.JobListing, error) {
	out, err := s.repo.ListListings(ctx, BuildFilter(skills, searchTerm))
	if err != nil {
		return nil, apperrors.Internal("failed to list listings", err)
	}
	if out == nil {
		out = []models.JobListing{}
	}
	return out, nil
}

// Get returns a single listing.
func (s *Service) Get(ctx context.Context, id string) (*models.JobListing, error) {
	l, err := s.repo.GetListing(ctx, id)
	if err != nil {
		return nil, apperrors.Internal("failed to get listing", err)
	}
	if l == nil {
		return nil, apperrors.NotFound(MsgNotFound, fmt.Errorf("listing %s", id))
	}
	return l, nil
}

func userID(ctx context.Context) string {
	if id, ok := auth.IdentityFrom(ctx); ok {
		return id.UserID
	}
	return ""
}
