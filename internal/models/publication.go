// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// PublicationType classifies an academic publication.
type PublicationType string

const (
	PublicationArticle    PublicationType = "article"
	PublicationBook       PublicationType = "book"
	PublicationChapter    PublicationType = "chapter"
	PublicationConference PublicationType = "conference"
	PublicationThesis     PublicationType = "thesis"
)

// ValidPublicationType reports whether t is one of the known publication types.
func ValidPublicationType(t PublicationType) bool {
	switch t {
	case PublicationArticle, PublicationBook, PublicationChapter,
		PublicationConference, PublicationThesis:
		return true
	}
	return false
}

// Publication is an academic publication with bibliometric metadata and an
// optional attached PDF. Publications are listed newest year first.
type Publication struct {
	ID            uuid.UUID       `json:"id"`
	Title         string          `json:"title"`
	Type          PublicationType `json:"type"`
	Authors       string          `json:"authors"` // comma-separated full names
	Year          int             `json:"year"`
	Publisher     string          `json:"publisher"`
	Journal       string          `json:"journal"`
	Volume        string          `json:"volume"`
	Pages         string          `json:"pages"`
	DOI           string          `json:"doi"`
	ISBN          string          `json:"isbn"`
	Link          string          `json:"link"`
	Abstract      string          `json:"abstract"`
	Keywords      string          `json:"keywords"`
	CitationCount int             `json:"citation_count"`
	PDFKey        *string         `json:"pdf_key,omitempty"` // S3 object key
	IsFeatured    bool            `json:"is_featured"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Citation returns the short display form "Title (Year)".
func (p *Publication) Citation() string {
	return fmt.Sprintf("%s (%d)", p.Title, p.Year)
}
