package models

import (
	"slices"
	"strings"
)

// ListingFilter selects listings. The zero value matches every listing.
type ListingFilter struct {
	// Skills matches listings requiring at least one of these skills.
	Skills []string
	// SearchTerm matches listings whose position contains it, ignoring case.
	SearchTerm string
}

// Match reports whether l satisfies every condition set on f. Stores that
// translate the filter into a query must return exactly the listings Match
// accepts.
func (f ListingFilter) Match(l *JobListing) bool {
	if l == nil {
		return false
	}
	if len(f.Skills) > 0 && !slices.ContainsFunc(l.SkillsRequired, func(s string) bool {
		return slices.Contains(f.Skills, s)
	}) {
		return false
	}
	if f.SearchTerm != "" && !strings.Contains(strings.ToLower(l.JobPosition), strings.ToLower(f.SearchTerm)) {
		return false
	}
	return true
}
