// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// DefaultBookLanguage is applied when a book is created without a language.
const DefaultBookLanguage = "Русский"

// DefaultBookAuthor is applied when a book is created without an author:
// the site owner writes their own books.
const DefaultBookAuthor = "Ахмедова Ф.М."

// Book is a published book offered for order. Both a cover image and a
// PDF file are required at creation. The slug is derived from the title
// when none is supplied. Listing order: featured first, then manual
// SortOrder, then newest publication year.
type Book struct {
	ID               uuid.UUID `json:"id"`
	Title            string    `json:"title"`
	Slug             string    `json:"slug"`
	Author           string    `json:"author"`
	Description      string    `json:"description"` // rich HTML body
	ShortDescription string    `json:"short_description"`
	CoverKey         string    `json:"cover_key"` // S3 object key, required
	PDFKey           string    `json:"pdf_key"`   // S3 object key, required
	Publisher        string    `json:"publisher"`
	PublicationYear  int       `json:"publication_year"`
	ISBN             string    `json:"isbn"`
	Pages            *int      `json:"pages,omitempty"`
	Language         string    `json:"language"`
	Price            *float64  `json:"price,omitempty"` // unset means price on request
	IsAvailable      bool      `json:"is_available"`
	ViewsCount       int       `json:"views_count"`
	IsFeatured       bool      `json:"is_featured"`
	SortOrder        int       `json:"sort_order"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// HasPrice reports whether the book has a price set.
func (b *Book) HasPrice() bool {
	return b.Price != nil
}
