package listing

import (
	"slices"

	"github.com/garnizeh/jobboard/pkg/models"
)

const (
	// DefaultLocation replaces an explicitly empty jobLocation.
	DefaultLocation = "Remote"
	// DefaultLogoURL replaces an empty logoURL.
	DefaultLogoURL = "https://eu.ui-avatars.com/api/?name=John+Doe&size=250"
)

// Normalize applies the defaulting rules to a copy of sub. An absent
// jobLocation stays absent; only an empty one becomes DefaultLocation.
func Normalize(sub models.JobSubmission) models.JobSubmission {
	out := sub
	out.SkillsRequired = slices.Clone(sub.SkillsRequired)

	if sub.JobLocation != nil {
		loc := *sub.JobLocation
		if loc == "" {
			loc = DefaultLocation
		}
		out.JobLocation = &loc
	}
	if out.LogoURL == "" {
		out.LogoURL = DefaultLogoURL
	}

	return out
}
