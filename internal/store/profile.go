// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the database access layer. Each entity gets its
// own store type over a shared *sql.DB, with plain SQL and no ORM.
package store

import (
	"database/sql"
	"fmt"

	"scholarsite/internal/models"
)

// ProfileStore handles the site owner's profile. The profiles table is
// constrained to a single row.
type ProfileStore struct {
	db *sql.DB
}

// NewProfileStore creates a new ProfileStore with the given database connection.
func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

const profileColumns = `id, full_name, photo_key, birth_date, education,
	academic_degree, academic_title, bio, specialization, experience_years,
	languages, email, phone, address, linkedin, facebook, researchgate,
	orcid, created_at, updated_at`

func scanProfile(row *sql.Row) (*models.Profile, error) {
	p := &models.Profile{}
	err := row.Scan(
		&p.ID, &p.FullName, &p.PhotoKey, &p.BirthDate, &p.Education,
		&p.AcademicDegree, &p.AcademicTitle, &p.Bio, &p.Specialization,
		&p.ExperienceYears, &p.Languages, &p.Email, &p.Phone, &p.Address,
		&p.LinkedIn, &p.Facebook, &p.ResearchGate, &p.ORCID,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scan profile: %w", err)
	}
	return p, nil
}

// Get returns the site profile, or nil if none has been created yet.
func (s *ProfileStore) Get() (*models.Profile, error) {
	return scanProfile(s.db.QueryRow(`SELECT ` + profileColumns + ` FROM profiles LIMIT 1`))
}

// Upsert creates the profile row or replaces the existing one. The
// singleton constraint guarantees at most one row regardless of caller
// behavior, so concurrent saves resolve to last-writer-wins.
func (s *ProfileStore) Upsert(p *models.Profile) (*models.Profile, error) {
	return scanProfile(s.db.QueryRow(`
		INSERT INTO profiles (full_name, photo_key, birth_date, education,
			academic_degree, academic_title, bio, specialization, experience_years,
			languages, email, phone, address, linkedin, facebook, researchgate, orcid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		ON CONFLICT (singleton) DO UPDATE SET
			full_name = EXCLUDED.full_name,
			photo_key = EXCLUDED.photo_key,
			birth_date = EXCLUDED.birth_date,
			education = EXCLUDED.education,
			academic_degree = EXCLUDED.academic_degree,
			academic_title = EXCLUDED.academic_title,
			bio = EXCLUDED.bio,
			specialization = EXCLUDED.specialization,
			experience_years = EXCLUDED.experience_years,
			languages = EXCLUDED.languages,
			email = EXCLUDED.email,
			phone = EXCLUDED.phone,
			address = EXCLUDED.address,
			linkedin = EXCLUDED.linkedin,
			facebook = EXCLUDED.facebook,
			researchgate = EXCLUDED.researchgate,
			orcid = EXCLUDED.orcid,
			updated_at = now()
		RETURNING `+profileColumns,
		p.FullName, p.PhotoKey, p.BirthDate, p.Education,
		p.AcademicDegree, p.AcademicTitle, p.Bio, p.Specialization,
		p.ExperienceYears, p.Languages, p.Email, p.Phone, p.Address,
		p.LinkedIn, p.Facebook, p.ResearchGate, p.ORCID,
	))
}
