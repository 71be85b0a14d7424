package models

import (
	"encoding/json"
	"time"
)

// Domain models matching the database schema in db/migrations/0001_init.sql

// JobSubmission is the caller-supplied part of a listing: everything except
// the store-assigned id and creation time.
type JobSubmission struct {
	CompanyName    string   `json:"companyName" db:"company_name"`
	LogoURL        string   `json:"logoURL" db:"logo_url"`
	JobPosition    string   `json:"jobPosition" db:"job_position"`
	MonthlySalary  string   `json:"monthlySalary" db:"monthly_salary"`
	JobType        string   `json:"jobType" db:"job_type"`
	RemoteOnsite   string   `json:"remoteOnsite" db:"remote_onsite"`
	JobLocation    *string  `json:"jobLocation,omitempty" db:"job_location"`
	JobDescription string   `json:"jobDescription" db:"job_description"`
	AboutCompany   string   `json:"aboutCompany" db:"about_company"`
	SkillsRequired []string `json:"skillsRequired" db:"skills_required"`
	Information    string   `json:"information,omitempty" db:"information"`
}

// JobListing is a persisted job posting.
type JobListing struct {
	ID string `json:"id" db:"id"`
	JobSubmission
	CreatedAt time.Time `json:"createdAt" db:"created"`
}

// MarshalBinary lets listings be stored in byte-oriented caches.
func (l *JobListing) MarshalBinary() ([]byte, error) {
	return json.Marshal(l)
}

func (l *JobListing) UnmarshalBinary(data []byte) error {
	return json.Unmarshal(data, l)
}
