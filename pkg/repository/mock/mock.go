package mock

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/garnizeh/jobboard/pkg/models"
	"github.com/garnizeh/jobboard/pkg/repository"
	"github.com/google/uuid"
)

// ListingRepo is an in-memory repository.ListingRepo for tests. It records how
// many times each method was called and can be told to fail.
type ListingRepo struct {
	mu       sync.Mutex
	listings map[string]models.JobListing
	order    []string

	CreateErr error
	UpdateErr error
	GetErr    error
	ListErr   error
	PingErr   error

	CreateCalls int
	UpdateCalls int
	GetCalls    int
	ListCalls   int
}

var _ repository.ListingRepo = (*ListingRepo)(nil)
var _ repository.HealthChecker = (*ListingRepo)(nil)

func NewListingRepo() *ListingRepo {
	return &ListingRepo{listings: make(map[string]models.JobListing)}
}

// Calls returns the total number of repository calls made so far.
func (m *ListingRepo) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.CreateCalls + m.UpdateCalls + m.GetCalls + m.ListCalls
}

// Len returns the number of stored listings.
func (m *ListingRepo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.listings)
}

func (m *ListingRepo) CreateListing(ctx context.Context, l *models.JobListing) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreateCalls++
	if m.CreateErr != nil {
		return "", m.CreateErr
	}

	stored := clone(*l)
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	m.listings[stored.ID] = stored
	m.order = append(m.order, stored.ID)

	return stored.ID, nil
}

func (m *ListingRepo) UpdateListing(ctx context.Context, id string, l *models.JobListing) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdateCalls++
	if m.UpdateErr != nil {
		return m.UpdateErr
	}

	cur, ok := m.listings[id]
	if !ok {
		return repository.ErrNotFound
	}
	next := clone(*l)
	next.ID = cur.ID
	next.CreatedAt = cur.CreatedAt
	m.listings[id] = next

	return nil
}

func (m *ListingRepo) GetListing(ctx context.Context, id string) (*models.JobListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.GetCalls++
	if m.GetErr != nil {
		return nil, m.GetErr
	}

	l, ok := m.listings[id]
	if !ok {
		return nil, nil
	}
	out := clone(l)
	return &out, nil
}

func (m *ListingRepo) ListListings(ctx context.Context, f models.ListingFilter) ([]models.JobListing, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}

	out := []models.JobListing{}
	for _, id := range m.order {
		l := m.listings[id]
		if f.Match(&l) {
			out = append(out, clone(l))
		}
	}
	return out, nil
}

func (m *ListingRepo) PingContext(ctx context.Context) error {
	return m.PingErr
}

func clone(l models.JobListing) models.JobListing {
	l.SkillsRequired = slices.Clone(l.SkillsRequired)
	if l.JobLocation != nil {
		loc := *l.JobLocation
		l.JobLocation = &loc
	}
	return l
}
