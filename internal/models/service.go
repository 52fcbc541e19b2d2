// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Service is a consulting or research service offered on the site.
// Services are listed in manual order (SortOrder ascending, title as
// tiebreak) and hidden from the public site when IsActive is false.
type Service struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	PriceFrom   *float64  `json:"price_from,omitempty"`
	Duration    string    `json:"duration"`
	Icon        string    `json:"icon"` // CSS icon class, e.g. "fas fa-chart-bar"
	IsActive    bool      `json:"is_active"`
	SortOrder   int       `json:"sort_order"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// DefaultServiceIcon is applied when a service is created without an icon.
const DefaultServiceIcon = "fas fa-chart-bar"
