package listing

import (
	"strings"

	"github.com/garnizeh/jobboard/pkg/models"
)

// BuildFilter turns the raw "skills" and "searchTerm" query values into a
// filter. skills is a comma separated list; blank tokens are ignored. Empty
// parameters add no condition.
func BuildFilter(skills, searchTerm string) models.ListingFilter {
	var f models.ListingFilter

	for _, tok := range strings.Split(skills, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			f.Skills = append(f.Skills, tok)
		}
	}
	f.SearchTerm = strings.TrimSpace(searchTerm)

	return f
}
