// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Project is a research project or study. EndDate is nil while the
// project is still running. Listed newest start date first, with
// SortOrder as tiebreak.
type Project struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description"`
	StartDate    time.Time  `json:"start_date"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	Role         string     `json:"role"`
	Organization string     `json:"organization"`
	Funding      string     `json:"funding"`
	Results      string     `json:"results"`
	ImageKey     *string    `json:"image_key,omitempty"`
	IsActive     bool       `json:"is_active"`
	SortOrder    int        `json:"sort_order"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// IsOngoing reports whether the project has no end date yet.
func (p *Project) IsOngoing() bool {
	return p.EndDate == nil
}
