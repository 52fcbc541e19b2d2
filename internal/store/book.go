// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"scholarsite/internal/models"
)

// ErrMissingBookFiles is returned when a book is created without the
// required cover image or PDF file.
var ErrMissingBookFiles = errors.New("book requires both a cover image and a pdf file")

// BookStore handles book records.
type BookStore struct {
	db *sql.DB
}

// NewBookStore creates a new BookStore with the given database connection.
func NewBookStore(db *sql.DB) *BookStore {
	return &BookStore{db: db}
}

const bookColumns = `id, title, slug, author, description, short_description,
	cover_key, pdf_key, publisher, publication_year, isbn, pages, language,
	price, is_available, views_count, is_featured, sort_order, created_at, updated_at`

func scanBook(scan func(dest ...any) error) (*models.Book, error) {
	b := &models.Book{}
	err := scan(
		&b.ID, &b.Title, &b.Slug, &b.Author, &b.Description, &b.ShortDescription,
		&b.CoverKey, &b.PDFKey, &b.Publisher, &b.PublicationYear, &b.ISBN,
		&b.Pages, &b.Language, &b.Price, &b.IsAvailable, &b.ViewsCount,
		&b.IsFeatured, &b.SortOrder, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (s *BookStore) queryBooks(query string, args ...any) ([]models.Book, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.Book
	for rows.Next() {
		b, err := scanBook(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		items = append(items, *b)
	}
	return items, rows.Err()
}

// List returns all books for the admin: featured first, then manual
// order, then newest publication year.
func (s *BookStore) List() ([]models.Book, error) {
	items, err := s.queryBooks(`SELECT ` + bookColumns + ` FROM books
		ORDER BY is_featured DESC, sort_order, publication_year DESC`)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	return items, nil
}

// ListAvailable returns books orderable on the public site.
func (s *BookStore) ListAvailable() ([]models.Book, error) {
	items, err := s.queryBooks(`SELECT ` + bookColumns + ` FROM books
		WHERE is_available
		ORDER BY is_featured DESC, sort_order, publication_year DESC`)
	if err != nil {
		return nil, fmt.Errorf("list available books: %w", err)
	}
	return items, nil
}

// ListFeatured returns available books flagged for the homepage.
func (s *BookStore) ListFeatured() ([]models.Book, error) {
	items, err := s.queryBooks(`SELECT ` + bookColumns + ` FROM books
		WHERE is_available AND is_featured
		ORDER BY sort_order, publication_year DESC`)
	if err != nil {
		return nil, fmt.Errorf("list featured books: %w", err)
	}
	return items, nil
}

// FindByID retrieves a book by its UUID regardless of availability.
func (s *BookStore) FindByID(id uuid.UUID) (*models.Book, error) {
	b, err := scanBook(s.db.QueryRow(`SELECT `+bookColumns+` FROM books WHERE id = $1`, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find book by id: %w", err)
	}
	return b, nil
}

// FindBySlug retrieves a book by its slug. Unavailable books stay
// reachable by direct link so existing orders can still resolve them,
// but they are hidden from listings.
func (s *BookStore) FindBySlug(slug string) (*models.Book, error) {
	b, err := scanBook(s.db.QueryRow(`SELECT `+bookColumns+` FROM books WHERE slug = $1`, slug).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find book by slug: %w", err)
	}
	return b, nil
}

// SlugExists reports whether any book uses the slug.
func (s *BookStore) SlugExists(slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM books WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("book slug exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new book and returns it with the generated ID. Both
// the cover image and the PDF file must be present.
func (s *BookStore) Create(b *models.Book) (*models.Book, error) {
	if b.CoverKey == "" || b.PDFKey == "" {
		return nil, ErrMissingBookFiles
	}
	if b.Language == "" {
		b.Language = models.DefaultBookLanguage
	}
	if b.Author == "" {
		b.Author = models.DefaultBookAuthor
	}

	created, err := scanBook(s.db.QueryRow(`
		INSERT INTO books (title, slug, author, description, short_description,
			cover_key, pdf_key, publisher, publication_year, isbn, pages,
			language, price, is_available, is_featured, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING `+bookColumns,
		b.Title, b.Slug, b.Author, b.Description, b.ShortDescription,
		b.CoverKey, b.PDFKey, b.Publisher, b.PublicationYear, b.ISBN, b.Pages,
		b.Language, b.Price, b.IsAvailable, b.IsFeatured, b.SortOrder,
	).Scan)
	if err != nil {
		return nil, fmt.Errorf("create book: %w", err)
	}
	return created, nil
}

// Update modifies an existing book. The view counter is owned by
// IncrementViews and never written here.
func (s *BookStore) Update(b *models.Book) error {
	if b.CoverKey == "" || b.PDFKey == "" {
		return ErrMissingBookFiles
	}

	_, err := s.db.Exec(`
		UPDATE books SET
			title = $1, slug = $2, author = $3, description = $4,
			short_description = $5, cover_key = $6, pdf_key = $7, publisher = $8,
			publication_year = $9, isbn = $10, pages = $11, language = $12,
			price = $13, is_available = $14, is_featured = $15, sort_order = $16,
			updated_at = now()
		WHERE id = $17
	`, b.Title, b.Slug, b.Author, b.Description, b.ShortDescription,
		b.CoverKey, b.PDFKey, b.Publisher, b.PublicationYear, b.ISBN, b.Pages,
		b.Language, b.Price, b.IsAvailable, b.IsFeatured, b.SortOrder, b.ID)
	if err != nil {
		return fmt.Errorf("update book: %w", err)
	}
	return nil
}

// Delete removes a book. Dependent book orders are removed by the
// ON DELETE CASCADE foreign key.
func (s *BookStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete book: %w", err)
	}
	return nil
}

// IncrementViews bumps the book's view counter by one in a single UPDATE,
// so concurrent detail views never lose counts to read-modify-write races.
func (s *BookStore) IncrementViews(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE books SET views_count = views_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment book views: %w", err)
	}
	return nil
}
