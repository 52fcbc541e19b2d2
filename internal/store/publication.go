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

// PublicationStore handles academic publication records.
type PublicationStore struct {
	db *sql.DB
}

// NewPublicationStore creates a new PublicationStore with the given database connection.
func NewPublicationStore(db *sql.DB) *PublicationStore {
	return &PublicationStore{db: db}
}

const publicationColumns = `id, title, type, authors, year, publisher, journal,
	volume, pages, doi, isbn, link, abstract, keywords, citation_count,
	pdf_key, is_featured, created_at, updated_at`

func scanPublication(scan func(dest ...any) error) (*models.Publication, error) {
	p := &models.Publication{}
	err := scan(
		&p.ID, &p.Title, &p.Type, &p.Authors, &p.Year, &p.Publisher, &p.Journal,
		&p.Volume, &p.Pages, &p.DOI, &p.ISBN, &p.Link, &p.Abstract, &p.Keywords,
		&p.CitationCount, &p.PDFKey, &p.IsFeatured, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// List returns all publications, newest year first, title as tiebreak.
func (s *PublicationStore) List() ([]models.Publication, error) {
	rows, err := s.db.Query(`SELECT ` + publicationColumns + ` FROM publications ORDER BY year DESC, title`)
	if err != nil {
		return nil, fmt.Errorf("list publications: %w", err)
	}
	defer rows.Close()

	var items []models.Publication
	for rows.Next() {
		p, err := scanPublication(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan publication: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// ListFeatured returns publications marked as featured, for the homepage.
func (s *PublicationStore) ListFeatured() ([]models.Publication, error) {
	rows, err := s.db.Query(`SELECT ` + publicationColumns + ` FROM publications WHERE is_featured ORDER BY year DESC, title`)
	if err != nil {
		return nil, fmt.Errorf("list featured publications: %w", err)
	}
	defer rows.Close()

	var items []models.Publication
	for rows.Next() {
		p, err := scanPublication(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan publication: %w", err)
		}
		items = append(items, *p)
	}
	return items, rows.Err()
}

// FindByID retrieves a publication by its UUID. Returns nil if not found.
func (s *PublicationStore) FindByID(id uuid.UUID) (*models.Publication, error) {
	p, err := scanPublication(s.db.QueryRow(`SELECT `+publicationColumns+` FROM publications WHERE id = $1`, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find publication by id: %w", err)
	}
	return p, nil
}

// Create inserts a new publication and returns it with the generated ID.
func (s *PublicationStore) Create(p *models.Publication) (*models.Publication, error) {
	if p.Type == "" {
		p.Type = models.PublicationArticle
	}

	created, err := scanPublication(s.db.QueryRow(`
		INSERT INTO publications (title, type, authors, year, publisher, journal,
			volume, pages, doi, isbn, link, abstract, keywords, citation_count,
			pdf_key, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+publicationColumns,
		p.Title, p.Type, p.Authors, p.Year, p.Publisher, p.Journal,
		p.Volume, p.Pages, p.DOI, p.ISBN, p.Link, p.Abstract, p.Keywords,
		p.CitationCount, p.PDFKey, p.IsFeatured,
	).Scan)
	if err != nil {
		return nil, fmt.Errorf("create publication: %w", err)
	}
	return created, nil
}

// Update modifies an existing publication.
func (s *PublicationStore) Update(p *models.Publication) error {
	_, err := s.db.Exec(`
		UPDATE publications SET
			title = $1, type = $2, authors = $3, year = $4, publisher = $5,
			journal = $6, volume = $7, pages = $8, doi = $9, isbn = $10,
			link = $11, abstract = $12, keywords = $13, citation_count = $14,
			pdf_key = $15, is_featured = $16, updated_at = now()
		WHERE id = $17
	`, p.Title, p.Type, p.Authors, p.Year, p.Publisher, p.Journal, p.Volume,
		p.Pages, p.DOI, p.ISBN, p.Link, p.Abstract, p.Keywords, p.CitationCount,
		p.PDFKey, p.IsFeatured, p.ID)
	if err != nil {
		return fmt.Errorf("update publication: %w", err)
	}
	return nil
}

// Delete removes a publication by ID.
func (s *PublicationStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM publications WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete publication: %w", err)
	}
	return nil
}
