package listing

import (
	"fmt"
	"strings"

	apperrors "github.com/garnizeh/jobboard/internal/errors"
	"github.com/garnizeh/jobboard/pkg/models"
)

// MsgMissingFields is the only message callers see for a rejected submission.
const MsgMissingFields = "Please provide all required fields"

// Validator checks that every required submission field is present.
// jobLocation and information are never required.
type Validator struct {
	RequireLogoURL bool
}

func NewValidator(requireLogoURL bool) Validator {
	return Validator{RequireLogoURL: requireLogoURL}
}

// Validate returns an INVALID_INPUT domain error when any required field is
// empty. The missing field names are kept in the wrapped cause for logging.
func (v Validator) Validate(sub *models.JobSubmission) error {
	if sub == nil {
		return apperrors.InvalidInput(MsgMissingFields, fmt.Errorf("empty submission"))
	}

	var missing []string
	check := func(name, value string) {
		if value == "" {
			missing = append(missing, name)
		}
	}
	check("companyName", sub.CompanyName)
	check("jobPosition", sub.JobPosition)
	check("jobDescription", sub.JobDescription)
	if len(sub.SkillsRequired) == 0 {
		missing = append(missing, "skillsRequired")
	}
	check("aboutCompany", sub.AboutCompany)
	check("monthlySalary", sub.MonthlySalary)
	check("jobType", sub.JobType)
	check("remoteOnsite", sub.RemoteOnsite)
	if v.RequireLogoURL {
		check("logoURL", sub.LogoURL)
	}

	if len(missing) > 0 {
		return apperrors.InvalidInput(MsgMissingFields, fmt.Errorf("missing %s", strings.Join(missing, ", ")))
	}
	return nil
}
