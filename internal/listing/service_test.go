package listing_test

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/garnizeh/jobboard/internal/auth"
	apperrors "github.com/garnizeh/jobboard/internal/errors"
	"github.com/garnizeh/jobboard/internal/listing"
	"github.com/garnizeh/jobboard/internal/metrics"
	"github.com/garnizeh/jobboard/pkg/models"
	"github.com/garnizeh/jobboard/pkg/repository/mock"
)

type countingSink struct {
	metrics.NoopSink
	created, updated int
}

func (c *countingSink) ListingCreated() { c.created++ }
func (c *countingSink) ListingUpdated() { c.updated++ }

func newService(requireLogo bool) (*listing.Service, *mock.ListingRepo) {
	repo := mock.NewListingRepo()
	return listing.NewService(repo, listing.NewValidator(requireLogo), nil, nil), repo
}

func TestService_CreateThenGet(t *testing.T) {
	svc, repo := newService(true)
	ctx := auth.WithIdentity(context.Background(), &auth.Identity{UserID: "u-1"})

	sub := validSubmission()
	id, err := svc.Create(ctx, sub)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if id == "" {
		t.Fatalf("expected an id")
	}
	if repo.Len() != 1 {
		t.Fatalf("expected 1 stored listing got %d", repo.Len())
	}

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.ID != id {
		t.Fatalf("unexpected id %q", got.ID)
	}
	if !reflect.DeepEqual(got.JobSubmission, listing.Normalize(sub)) {
		t.Fatalf("stored fields differ from normalized submission:\n got %#v\nwant %#v", got.JobSubmission, listing.Normalize(sub))
	}
	if got.CreatedAt.IsZero() {
		t.Fatalf("expected createdAt to be set")
	}
}

func TestService_CreateInvalidDoesNotWrite(t *testing.T) {
	svc, repo := newService(true)

	sub := validSubmission()
	sub.CompanyName = ""
	_, err := svc.Create(context.Background(), sub)
	if !apperrors.Is(err, apperrors.ErrTypeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT got %v", err)
	}
	if repo.Calls() != 0 || repo.Len() != 0 {
		t.Fatalf("store must not be touched: calls=%d len=%d", repo.Calls(), repo.Len())
	}
}

func TestService_CreateStoreFailure(t *testing.T) {
	svc, repo := newService(true)
	repo.CreateErr = errors.New("disk full")

	_, err := svc.Create(context.Background(), validSubmission())
	if !apperrors.Is(err, apperrors.ErrTypeInternal) {
		t.Fatalf("expected INTERNAL got %v", err)
	}
}

func TestService_Scenario_DefaultsApplied(t *testing.T) {
	svc, _ := newService(false)
	ctx := context.Background()

	sub := models.JobSubmission{
		CompanyName:    "Acme",
		JobPosition:    "Engineer",
		MonthlySalary:  "5000",
		JobType:        "Full-time",
		RemoteOnsite:   "Remote",
		JobLocation:    strPtr(""),
		JobDescription: "Build stuff",
		AboutCompany:   "We build",
		SkillsRequired: []string{"go", "rust"},
		LogoURL:        "",
	}
	id, err := svc.Create(ctx, sub)
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	got, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.JobLocation == nil || *got.JobLocation != "Remote" {
		t.Fatalf("expected Remote location got %v", deref(got.JobLocation))
	}
	if got.LogoURL != listing.DefaultLogoURL {
		t.Fatalf("expected default logo got %q", got.LogoURL)
	}
	if got.CompanyName != "Acme" || got.JobPosition != "Engineer" || !reflect.DeepEqual(got.SkillsRequired, []string{"go", "rust"}) {
		t.Fatalf("other fields changed: %#v", got)
	}
}

func TestService_Update(t *testing.T) {
	svc, repo := newService(true)
	ctx := context.Background()

	id, err := svc.Create(ctx, validSubmission())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	before, _ := svc.Get(ctx, id)

	next := validSubmission()
	next.CompanyName = "Globex"
	next.SkillsRequired = []string{"python"}
	next.JobLocation = strPtr("")
	next.Information = "visa sponsorship"
	if err := svc.Update(ctx, id, next); err != nil {
		t.Fatalf("Update: %v", err)
	}

	after, err := svc.Get(ctx, id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !after.CreatedAt.Equal(before.CreatedAt) || after.CreatedAt != before.CreatedAt {
		t.Fatalf("createdAt changed: %v -> %v", before.CreatedAt, after.CreatedAt)
	}
	if !reflect.DeepEqual(after.JobSubmission, listing.Normalize(next)) {
		t.Fatalf("fields not replaced: %#v", after.JobSubmission)
	}
	if repo.Len() != 1 {
		t.Fatalf("update must not add listings")
	}
}

func TestService_UpdateUnknownID(t *testing.T) {
	svc, repo := newService(true)
	ctx := context.Background()

	id, _ := svc.Create(ctx, validSubmission())
	before, _ := svc.Get(ctx, id)

	err := svc.Update(ctx, "does-not-exist", validSubmission())
	if !apperrors.Is(err, apperrors.ErrTypeNotFound) {
		t.Fatalf("expected NOT_FOUND got %v", err)
	}

	after, _ := svc.Get(ctx, id)
	if !reflect.DeepEqual(before, after) || repo.Len() != 1 {
		t.Fatalf("store changed after failed update")
	}
}

func TestService_UpdateInvalidSkipsStore(t *testing.T) {
	svc, repo := newService(true)

	sub := validSubmission()
	sub.SkillsRequired = nil
	err := svc.Update(context.Background(), "any", sub)
	if !apperrors.Is(err, apperrors.ErrTypeInvalidInput) {
		t.Fatalf("expected INVALID_INPUT got %v", err)
	}
	if repo.UpdateCalls != 0 {
		t.Fatalf("store must not be called")
	}
}

func TestService_UpdateStoreFailure(t *testing.T) {
	svc, repo := newService(true)
	repo.UpdateErr = errors.New("locked")

	err := svc.Update(context.Background(), "id", validSubmission())
	if !apperrors.Is(err, apperrors.ErrTypeInternal) {
		t.Fatalf("expected INTERNAL got %v", err)
	}
}

func TestService_EmitsMetrics(t *testing.T) {
	repo := mock.NewListingRepo()
	sink := &countingSink{}
	svc := listing.NewService(repo, listing.NewValidator(true), sink, nil)
	ctx := context.Background()

	id, err := svc.Create(ctx, validSubmission())
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := svc.Update(ctx, id, validSubmission()); err != nil {
		t.Fatalf("Update: %v", err)
	}
	_ = svc.Update(ctx, "missing", validSubmission())

	if sink.created != 1 || sink.updated != 1 {
		t.Fatalf("unexpected counts created=%d updated=%d", sink.created, sink.updated)
	}
}

func TestService_GetUnknown(t *testing.T) {
	svc, repo := newService(true)

	if _, err := svc.Get(context.Background(), "nope"); !apperrors.Is(err, apperrors.ErrTypeNotFound) {
		t.Fatalf("expected NOT_FOUND got %v", err)
	}

	repo.GetErr = errors.New("io")
	if _, err := svc.Get(context.Background(), "nope"); !apperrors.Is(err, apperrors.ErrTypeInternal) {
		t.Fatalf("expected INTERNAL got %v", err)
	}
}

func TestService_List(t *testing.T) {
	svc, repo := newService(true)
	ctx := context.Background()

	mk := func(position string, skills ...string) string {
		s := validSubmission()
		s.JobPosition = position
		s.SkillsRequired = skills
		id, err := svc.Create(ctx, s)
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		return id
	}
	first := mk("Engineer", "go", "rust")
	mk("Manager", "python")
	third := mk("Manager", "go")

	got, err := svc.List(ctx, "go", "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if ids := idsOf(got); !sameSet(ids, []string{first, third}) {
		t.Fatalf("skills=go: unexpected ids %v", ids)
	}

	got, _ = svc.List(ctx, "", "eng")
	if ids := idsOf(got); !sameSet(ids, []string{first}) {
		t.Fatalf("searchTerm=eng: unexpected ids %v", ids)
	}

	got, _ = svc.List(ctx, "go", "man")
	if ids := idsOf(got); !sameSet(ids, []string{third}) {
		t.Fatalf("both: unexpected ids %v", ids)
	}

	got, _ = svc.List(ctx, "cobol", "")
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}

	repo.ListErr = errors.New("io")
	if _, err := svc.List(ctx, "", ""); !apperrors.Is(err, apperrors.ErrTypeInternal) {
		t.Fatalf("expected INTERNAL got %v", err)
	}
}

func idsOf(ls []models.JobListing) []string {
	ids := make([]string, 0, len(ls))
	for _, l := range ls {
		ids = append(ids, l.ID)
	}
	return ids
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[string]int, len(a))
	for _, s := range a {
		seen[s]++
	}
	for _, s := range b {
		if seen[s] == 0 {
			return false
		}
		seen[s]--
	}
	return true
}
