// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data structures that map to database tables
// and provides the core types used throughout the application.
package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Profile holds the site owner's biographical and contact information.
// The profiles table enforces a single row via a constant-key unique
// constraint, so the site always works with at most one profile.
type Profile struct {
	ID              uuid.UUID  `json:"id"`
	FullName        string     `json:"full_name"`
	PhotoKey        *string    `json:"photo_key,omitempty"` // S3 object key
	BirthDate       *time.Time `json:"birth_date,omitempty"`
	Education       string     `json:"education"`
	AcademicDegree  string     `json:"academic_degree"`
	AcademicTitle   string     `json:"academic_title"`
	Bio             string     `json:"bio"`
	Specialization  string     `json:"specialization"`
	ExperienceYears int        `json:"experience_years"`
	Languages       string     `json:"languages"` // comma-separated
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Address         string     `json:"address"`
	LinkedIn        string     `json:"linkedin"`
	Facebook        string     `json:"facebook"`
	ResearchGate    string     `json:"researchgate"`
	ORCID           string     `json:"orcid"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// LanguageList splits the comma-separated Languages field into a slice.
func (p *Profile) LanguageList() []string {
	if strings.TrimSpace(p.Languages) == "" {
		return nil
	}
	parts := strings.Split(p.Languages, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
