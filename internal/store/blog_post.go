// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"scholarsite/internal/models"
)

// BlogPostStore handles blog article records.
type BlogPostStore struct {
	db *sql.DB
}

// NewBlogPostStore creates a new BlogPostStore with the given database connection.
func NewBlogPostStore(db *sql.DB) *BlogPostStore {
	return &BlogPostStore{db: db}
}

const blogPostColumns = `id, title, slug, content, excerpt, image_key, category,
	tags, views_count, is_published, published_at, created_at, updated_at`

func scanBlogPosts(rows *sql.Rows) ([]models.BlogPost, error) {
	defer rows.Close()
	var items []models.BlogPost
	for rows.Next() {
		var p models.BlogPost
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.ImageKey,
			&p.Category, &p.Tags, &p.ViewsCount, &p.IsPublished, &p.PublishedAt,
			&p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan blog post: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// List returns all posts for the admin, newest first.
func (s *BlogPostStore) List() ([]models.BlogPost, error) {
	rows, err := s.db.Query(`SELECT ` + blogPostColumns + ` FROM blog_posts
		ORDER BY published_at DESC NULLS LAST, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list blog posts: %w", err)
	}
	return scanBlogPosts(rows)
}

// ListPublished returns published posts for the public blog index.
func (s *BlogPostStore) ListPublished() ([]models.BlogPost, error) {
	rows, err := s.db.Query(`SELECT ` + blogPostColumns + ` FROM blog_posts
		WHERE is_published
		ORDER BY published_at DESC NULLS LAST, created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list published blog posts: %w", err)
	}
	return scanBlogPosts(rows)
}

// FindByID retrieves a post by its UUID regardless of publication state.
func (s *BlogPostStore) FindByID(id uuid.UUID) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	err := s.db.QueryRow(`SELECT `+blogPostColumns+` FROM blog_posts WHERE id = $1`, id).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.ImageKey,
		&p.Category, &p.Tags, &p.ViewsCount, &p.IsPublished, &p.PublishedAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post by id: %w", err)
	}
	return p, nil
}

// FindBySlug retrieves a published post by its slug. Used by the public
// detail view; drafts are not visible through this path.
func (s *BlogPostStore) FindBySlug(slug string) (*models.BlogPost, error) {
	p := &models.BlogPost{}
	err := s.db.QueryRow(`SELECT `+blogPostColumns+` FROM blog_posts
		WHERE slug = $1 AND is_published`, slug).Scan(
		&p.ID, &p.Title, &p.Slug, &p.Content, &p.Excerpt, &p.ImageKey,
		&p.Category, &p.Tags, &p.ViewsCount, &p.IsPublished, &p.PublishedAt,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find blog post by slug: %w", err)
	}
	return p, nil
}

// SlugExists reports whether any post (published or not) uses the slug.
func (s *BlogPostStore) SlugExists(slug string) (bool, error) {
	var exists bool
	err := s.db.QueryRow(`SELECT EXISTS (SELECT 1 FROM blog_posts WHERE slug = $1)`, slug).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("blog post slug exists: %w", err)
	}
	return exists, nil
}

// Create inserts a new post and returns it with the generated ID. The
// caller assigns the slug before calling; publishing without a timestamp
// sets published_at to now.
func (s *BlogPostStore) Create(p *models.BlogPost) (*models.BlogPost, error) {
	if p.IsPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	result := &models.BlogPost{}
	err := s.db.QueryRow(`
		INSERT INTO blog_posts (title, slug, content, excerpt, image_key,
			category, tags, is_published, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING `+blogPostColumns,
		p.Title, p.Slug, p.Content, p.Excerpt, p.ImageKey,
		p.Category, p.Tags, p.IsPublished, p.PublishedAt,
	).Scan(
		&result.ID, &result.Title, &result.Slug, &result.Content, &result.Excerpt,
		&result.ImageKey, &result.Category, &result.Tags, &result.ViewsCount,
		&result.IsPublished, &result.PublishedAt, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create blog post: %w", err)
	}
	return result, nil
}

// Update modifies an existing post. The view counter is not touched here;
// IncrementViews owns that column.
func (s *BlogPostStore) Update(p *models.BlogPost) error {
	if p.IsPublished && p.PublishedAt == nil {
		now := time.Now()
		p.PublishedAt = &now
	}

	_, err := s.db.Exec(`
		UPDATE blog_posts SET
			title = $1, slug = $2, content = $3, excerpt = $4, image_key = $5,
			category = $6, tags = $7, is_published = $8, published_at = $9,
			updated_at = now()
		WHERE id = $10
	`, p.Title, p.Slug, p.Content, p.Excerpt, p.ImageKey, p.Category, p.Tags,
		p.IsPublished, p.PublishedAt, p.ID)
	if err != nil {
		return fmt.Errorf("update blog post: %w", err)
	}
	return nil
}

// Delete removes a post by ID.
func (s *BlogPostStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete blog post: %w", err)
	}
	return nil
}

// IncrementViews bumps the post's view counter by one in a single UPDATE,
// so concurrent detail views never lose counts to read-modify-write races.
func (s *BlogPostStore) IncrementViews(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE blog_posts SET views_count = views_count + 1 WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("increment blog post views: %w", err)
	}
	return nil
}
