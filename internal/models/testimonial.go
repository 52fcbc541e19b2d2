// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Rating bounds for testimonials, enforced by a CHECK constraint as well.
const (
	MinRating = 1
	MaxRating = 5
)

// Testimonial is a client review. Only approved testimonials appear on
// the public site; approval is a manual operator action.
type Testimonial struct {
	ID                 uuid.UUID `json:"id"`
	ClientName         string    `json:"client_name"`
	ClientPosition     string    `json:"client_position"`
	ClientOrganization string    `json:"client_organization"`
	PhotoKey           *string   `json:"photo_key,omitempty"`
	Text               string    `json:"text"`
	Rating             int       `json:"rating"` // 1..5
	IsApproved         bool      `json:"is_approved"`
	CreatedAt          time.Time `json:"created_at"`
}

// ValidRating reports whether r is within the allowed rating range.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
