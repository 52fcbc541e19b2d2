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

// ServiceStore handles service records.
type ServiceStore struct {
	db *sql.DB
}

// NewServiceStore creates a new ServiceStore with the given database connection.
func NewServiceStore(db *sql.DB) *ServiceStore {
	return &ServiceStore{db: db}
}

const serviceColumns = `id, title, description, price_from, duration, icon,
	is_active, sort_order, created_at, updated_at`

func scanServices(rows *sql.Rows) ([]models.Service, error) {
	defer rows.Close()
	var items []models.Service
	for rows.Next() {
		var sv models.Service
		if err := rows.Scan(
			&sv.ID, &sv.Title, &sv.Description, &sv.PriceFrom, &sv.Duration,
			&sv.Icon, &sv.IsActive, &sv.SortOrder, &sv.CreatedAt, &sv.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan service: %w", err)
		}
		items = append(items, sv)
	}
	return items, rows.Err()
}

// List returns all services in manual order (sort_order, then title).
func (s *ServiceStore) List() ([]models.Service, error) {
	rows, err := s.db.Query(`SELECT ` + serviceColumns + ` FROM services ORDER BY sort_order, title`)
	if err != nil {
		return nil, fmt.Errorf("list services: %w", err)
	}
	return scanServices(rows)
}

// ListActive returns only the services shown on the public site.
func (s *ServiceStore) ListActive() ([]models.Service, error) {
	rows, err := s.db.Query(`SELECT ` + serviceColumns + ` FROM services WHERE is_active ORDER BY sort_order, title`)
	if err != nil {
		return nil, fmt.Errorf("list active services: %w", err)
	}
	return scanServices(rows)
}

// FindByID retrieves a service by its UUID. Returns nil if not found.
func (s *ServiceStore) FindByID(id uuid.UUID) (*models.Service, error) {
	sv := &models.Service{}
	err := s.db.QueryRow(`SELECT `+serviceColumns+` FROM services WHERE id = $1`, id).Scan(
		&sv.ID, &sv.Title, &sv.Description, &sv.PriceFrom, &sv.Duration,
		&sv.Icon, &sv.IsActive, &sv.SortOrder, &sv.CreatedAt, &sv.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service by id: %w", err)
	}
	return sv, nil
}

// Create inserts a new service and returns it with the generated ID.
func (s *ServiceStore) Create(sv *models.Service) (*models.Service, error) {
	if sv.Icon == "" {
		sv.Icon = models.DefaultServiceIcon
	}

	result := &models.Service{}
	err := s.db.QueryRow(`
		INSERT INTO services (title, description, price_from, duration, icon, is_active, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+serviceColumns,
		sv.Title, sv.Description, sv.PriceFrom, sv.Duration, sv.Icon, sv.IsActive, sv.SortOrder,
	).Scan(
		&result.ID, &result.Title, &result.Description, &result.PriceFrom, &result.Duration,
		&result.Icon, &result.IsActive, &result.SortOrder, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return result, nil
}

// Update modifies an existing service.
func (s *ServiceStore) Update(sv *models.Service) error {
	_, err := s.db.Exec(`
		UPDATE services SET
			title = $1, description = $2, price_from = $3, duration = $4,
			icon = $5, is_active = $6, sort_order = $7, updated_at = now()
		WHERE id = $8
	`, sv.Title, sv.Description, sv.PriceFrom, sv.Duration, sv.Icon, sv.IsActive, sv.SortOrder, sv.ID)
	if err != nil {
		return fmt.Errorf("update service: %w", err)
	}
	return nil
}

// Delete removes a service. Dependent service orders are removed by the
// ON DELETE CASCADE foreign key.
func (s *ServiceStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM services WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete service: %w", err)
	}
	return nil
}
