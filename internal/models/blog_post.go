// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// BlogPost is a blog article. The slug is derived from the title at
// creation time when none is supplied and must be unique. ViewsCount is
// mutated only by the public detail view, via an atomic increment.
type BlogPost struct {
	ID          uuid.UUID  `json:"id"`
	Title       string     `json:"title"`
	Slug        string     `json:"slug"`
	Content     string     `json:"content"` // rich HTML body
	Excerpt     string     `json:"excerpt"`
	ImageKey    *string    `json:"image_key,omitempty"`
	Category    string     `json:"category"`
	Tags        string     `json:"tags"` // comma-separated
	ViewsCount  int        `json:"views_count"`
	IsPublished bool       `json:"is_published"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}
