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

// ProjectStore handles research project records.
type ProjectStore struct {
	db *sql.DB
}

// NewProjectStore creates a new ProjectStore with the given database connection.
func NewProjectStore(db *sql.DB) *ProjectStore {
	return &ProjectStore{db: db}
}

const projectColumns = `id, title, description, start_date, end_date, role,
	organization, funding, results, image_key, is_active, sort_order,
	created_at, updated_at`

func scanProjects(rows *sql.Rows) ([]models.Project, error) {
	defer rows.Close()
	var items []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.StartDate, &p.EndDate, &p.Role,
			&p.Organization, &p.Funding, &p.Results, &p.ImageKey, &p.IsActive,
			&p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan project: %w", err)
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

// List returns all projects, newest start date first, sort_order as tiebreak.
func (s *ProjectStore) List() ([]models.Project, error) {
	rows, err := s.db.Query(`SELECT ` + projectColumns + ` FROM projects ORDER BY start_date DESC, sort_order`)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return scanProjects(rows)
}

// ListActive returns only the projects shown on the public portfolio page.
func (s *ProjectStore) ListActive() ([]models.Project, error) {
	rows, err := s.db.Query(`SELECT ` + projectColumns + ` FROM projects WHERE is_active ORDER BY start_date DESC, sort_order`)
	if err != nil {
		return nil, fmt.Errorf("list active projects: %w", err)
	}
	return scanProjects(rows)
}

// FindByID retrieves a project by its UUID. Returns nil if not found.
func (s *ProjectStore) FindByID(id uuid.UUID) (*models.Project, error) {
	p := &models.Project{}
	err := s.db.QueryRow(`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.StartDate, &p.EndDate, &p.Role,
		&p.Organization, &p.Funding, &p.Results, &p.ImageKey, &p.IsActive,
		&p.SortOrder, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find project by id: %w", err)
	}
	return p, nil
}

// Create inserts a new project and returns it with the generated ID.
func (s *ProjectStore) Create(p *models.Project) (*models.Project, error) {
	result := &models.Project{}
	err := s.db.QueryRow(`
		INSERT INTO projects (title, description, start_date, end_date, role,
			organization, funding, results, image_key, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING `+projectColumns,
		p.Title, p.Description, p.StartDate, p.EndDate, p.Role,
		p.Organization, p.Funding, p.Results, p.ImageKey, p.IsActive, p.SortOrder,
	).Scan(
		&result.ID, &result.Title, &result.Description, &result.StartDate, &result.EndDate,
		&result.Role, &result.Organization, &result.Funding, &result.Results, &result.ImageKey,
		&result.IsActive, &result.SortOrder, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return result, nil
}

// Update modifies an existing project.
func (s *ProjectStore) Update(p *models.Project) error {
	_, err := s.db.Exec(`
		UPDATE projects SET
			title = $1, description = $2, start_date = $3, end_date = $4,
			role = $5, organization = $6, funding = $7, results = $8,
			image_key = $9, is_active = $10, sort_order = $11, updated_at = now()
		WHERE id = $12
	`, p.Title, p.Description, p.StartDate, p.EndDate, p.Role, p.Organization,
		p.Funding, p.Results, p.ImageKey, p.IsActive, p.SortOrder, p.ID)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	return nil
}

// Delete removes a project by ID.
func (s *ProjectStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}
