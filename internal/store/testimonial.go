// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"scholarsite/internal/models"
)

// TestimonialStore handles client review records.
type TestimonialStore struct {
	db *sql.DB
}

// NewTestimonialStore creates a new TestimonialStore with the given database connection.
func NewTestimonialStore(db *sql.DB) *TestimonialStore {
	return &TestimonialStore{db: db}
}

const testimonialColumns = `id, client_name, client_position, client_organization,
	photo_key, text, rating, is_approved, created_at`

func scanTestimonials(rows *sql.Rows) ([]models.Testimonial, error) {
	defer rows.Close()
	var items []models.Testimonial
	for rows.Next() {
		var tm models.Testimonial
		if err := rows.Scan(
			&tm.ID, &tm.ClientName, &tm.ClientPosition, &tm.ClientOrganization,
			&tm.PhotoKey, &tm.Text, &tm.Rating, &tm.IsApproved, &tm.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan testimonial: %w", err)
		}
		items = append(items, tm)
	}
	return items, rows.Err()
}

// List returns all testimonials, newest first.
func (s *TestimonialStore) List() ([]models.Testimonial, error) {
	rows, err := s.db.Query(`SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list testimonials: %w", err)
	}
	return scanTestimonials(rows)
}

// ListApproved returns testimonials cleared for public display.
func (s *TestimonialStore) ListApproved() ([]models.Testimonial, error) {
	rows, err := s.db.Query(`SELECT ` + testimonialColumns + ` FROM testimonials WHERE is_approved ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list approved testimonials: %w", err)
	}
	return scanTestimonials(rows)
}

// FindByID retrieves a testimonial by its UUID. Returns nil if not found.
func (s *TestimonialStore) FindByID(id uuid.UUID) (*models.Testimonial, error) {
	tm := &models.Testimonial{}
	err := s.db.QueryRow(`SELECT `+testimonialColumns+` FROM testimonials WHERE id = $1`, id).Scan(
		&tm.ID, &tm.ClientName, &tm.ClientPosition, &tm.ClientOrganization,
		&tm.PhotoKey, &tm.Text, &tm.Rating, &tm.IsApproved, &tm.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find testimonial by id: %w", err)
	}
	return tm, nil
}

// Create inserts a new testimonial and returns it with the generated ID.
// New testimonials start unapproved; the CHECK constraint rejects ratings
// outside 1..5.
func (s *TestimonialStore) Create(tm *models.Testimonial) (*models.Testimonial, error) {
	if tm.Rating == 0 {
		tm.Rating = models.MaxRating
	}

	result := &models.Testimonial{}
	err := s.db.QueryRow(`
		INSERT INTO testimonials (client_name, client_position, client_organization,
			photo_key, text, rating, is_approved)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+testimonialColumns,
		tm.ClientName, tm.ClientPosition, tm.ClientOrganization,
		tm.PhotoKey, tm.Text, tm.Rating, tm.IsApproved,
	).Scan(
		&result.ID, &result.ClientName, &result.ClientPosition, &result.ClientOrganization,
		&result.PhotoKey, &result.Text, &result.Rating, &result.IsApproved, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create testimonial: %w", err)
	}
	return result, nil
}

// Update modifies an existing testimonial, including the approval flag.
func (s *TestimonialStore) Update(tm *models.Testimonial) error {
	_, err := s.db.Exec(`
		UPDATE testimonials SET
			client_name = $1, client_position = $2, client_organization = $3,
			photo_key = $4, text = $5, rating = $6, is_approved = $7
		WHERE id = $8
	`, tm.ClientName, tm.ClientPosition, tm.ClientOrganization, tm.PhotoKey,
		tm.Text, tm.Rating, tm.IsApproved, tm.ID)
	if err != nil {
		return fmt.Errorf("update testimonial: %w", err)
	}
	return nil
}

// SetApproved toggles the public-visibility flag on a testimonial.
func (s *TestimonialStore) SetApproved(id uuid.UUID, approved bool) error {
	_, err := s.db.Exec(`UPDATE testimonials SET is_approved = $1 WHERE id = $2`, approved, id)
	if err != nil {
		return fmt.Errorf("set testimonial approved: %w", err)
	}
	return nil
}

// Delete removes a testimonial by ID.
func (s *TestimonialStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete testimonial: %w", err)
	}
	return nil
}
