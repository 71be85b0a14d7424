package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/garnizeh/jobboard/pkg/models"
	"github.com/garnizeh/jobboard/pkg/repository"
	"github.com/google/uuid"
)

const listingColumns = `id, company_name, logo_url, job_position, monthly_salary, job_type, remote_onsite, job_location, job_description, about_company, skills_required, information, created`

func (r *SQLiteRepo) CreateListing(ctx context.Context, l *models.JobListing) (string, error) {
	if l == nil {
		return "", fmt.Errorf("listing is nil")
	}

	skills, err := json.Marshal(l.SkillsRequired)
	if err != nil {
		return "", fmt.Errorf("encode skills: %w", err)
	}

	id := uuid.NewString()
	ts := now()
	q := `INSERT INTO job_listings (` + listingColumns + `, updated) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if _, err := r.conn.Exec(ctx, q,
		id, l.CompanyName, l.LogoURL, l.JobPosition, l.MonthlySalary, l.JobType, l.RemoteOnsite,
		nullString(l.JobLocation), l.JobDescription, l.AboutCompany, string(skills), l.Information, ts, ts,
	); err != nil {
		return "", fmt.Errorf("insert listing: %w", err)
	}

	return id, nil
}

// UpdateListing overwrites all caller-owned columns. id and created are never
// written, and there is no version check: the last write wins.
func (r *SQLiteRepo) UpdateListing(ctx context.Context, id string, l *models.JobListing) error {
	if l == nil {
		return fmt.Errorf("listing is nil")
	}

	skills, err := json.Marshal(l.SkillsRequired)
	if err != nil {
		return fmt.Errorf("encode skills: %w", err)
	}

	q := `UPDATE job_listings SET company_name = ?, logo_url = ?, job_position = ?, monthly_salary = ?, job_type = ?, remote_onsite = ?, job_location = ?, job_description = ?, about_company = ?, skills_required = ?, information = ?, updated = ? WHERE id = ?`
	res, err := r.conn.Exec(ctx, q,
		l.CompanyName, l.LogoURL, l.JobPosition, l.MonthlySalary, l.JobType, l.RemoteOnsite,
		nullString(l.JobLocation), l.JobDescription, l.AboutCompany, string(skills), l.Information, now(), id,
	)
	if err != nil {
		return fmt.Errorf("update listing: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update listing rows affected: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}

	return nil
}

func (r *SQLiteRepo) GetListing(ctx context.Context, id string) (*models.JobListing, error) {
	row := r.conn.QueryRow(ctx, `SELECT `+listingColumns+` FROM job_listings WHERE id = ?`, id)
	l, err := scanListing(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}

		return nil, err
	}

	return l, nil
}

// ListListings narrows by skills in SQL and applies the rest of the filter
// in Go, so case folding of the search term matches ListingFilter.Match.
func (r *SQLiteRepo) ListListings(ctx context.Context, f models.ListingFilter) ([]models.JobListing, error) {
	q := `SELECT ` + listingColumns + ` FROM job_listings`
	var args []any
	if len(f.Skills) > 0 {
		placeholders := strings.TrimSuffix(strings.Repeat("?,", len(f.Skills)), ",")
		q += ` WHERE EXISTS (SELECT 1 FROM json_each(job_listings.skills_required) WHERE json_each.value IN (` + placeholders + `))`
		for _, s := range f.Skills {
			args = append(args, s)
		}
	}
	q += ` ORDER BY created, id`

	rows, err := r.conn.QueryRows(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer rows.Close()

	out := []models.JobListing{}
	for rows.Next() {
		l, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		if f.Match(l) {
			out = append(out, *l)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list listings: %w", err)
	}

	return out, nil
}

// PingContext reports database connectivity for health checks.
func (r *SQLiteRepo) PingContext(ctx context.Context) error {
	return r.conn.PingContext(ctx)
}

type scanner interface {
	Scan(dest ...any) error
}

func scanListing(s scanner) (*models.JobListing, error) {
	var (
		l       models.JobListing
		loc     sql.NullString
		skills  string
		created int64
	)
	if err := s.Scan(&l.ID, &l.CompanyName, &l.LogoURL, &l.JobPosition, &l.MonthlySalary, &l.JobType, &l.RemoteOnsite,
		&loc, &l.JobDescription, &l.AboutCompany, &skills, &l.Information, &created); err != nil {
		return nil, err
	}

	if loc.Valid {
		v := loc.String
		l.JobLocation = &v
	}
	if err := json.Unmarshal([]byte(skills), &l.SkillsRequired); err != nil {
		return nil, fmt.Errorf("decode skills for listing %s: %w", l.ID, err)
	}
	l.CreatedAt = time.UnixMilli(created).UTC()

	return &l, nil
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
