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

// ErrInvalidStatus is returned when an order status transition targets a
// value outside the order type's closed status vocabulary.
var ErrInvalidStatus = errors.New("invalid order status")

// ServiceOrderStore handles service order records. Orders are created by
// public form submissions; only the operator updates status and notes.
type ServiceOrderStore struct {
	db *sql.DB
}

// NewServiceOrderStore creates a new ServiceOrderStore with the given database connection.
func NewServiceOrderStore(db *sql.DB) *ServiceOrderStore {
	return &ServiceOrderStore{db: db}
}

const serviceOrderColumns = `id, service_id, full_name, email, phone, organization,
	message, preferred_date, status, admin_notes, created_at, updated_at`

func scanServiceOrder(scan func(dest ...any) error) (*models.ServiceOrder, error) {
	o := &models.ServiceOrder{}
	err := scan(
		&o.ID, &o.ServiceID, &o.FullName, &o.Email, &o.Phone, &o.Organization,
		&o.Message, &o.PreferredDate, &o.Status, &o.AdminNotes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Create inserts a new order with status "new" and returns it with the
// generated ID. The referenced service must exist; the foreign key
// rejects dangling references.
func (s *ServiceOrderStore) Create(o *models.ServiceOrder) (*models.ServiceOrder, error) {
	created, err := scanServiceOrder(s.db.QueryRow(`
		INSERT INTO service_orders (service_id, full_name, email, phone, organization, message, preferred_date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+serviceOrderColumns,
		o.ServiceID, o.FullName, o.Email, o.Phone, o.Organization, o.Message, o.PreferredDate,
	).Scan)
	if err != nil {
		return nil, fmt.Errorf("create service order: %w", err)
	}
	return created, nil
}

// List returns all service orders, newest first.
func (s *ServiceOrderStore) List() ([]models.ServiceOrder, error) {
	rows, err := s.db.Query(`SELECT ` + serviceOrderColumns + ` FROM service_orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list service orders: %w", err)
	}
	defer rows.Close()

	var items []models.ServiceOrder
	for rows.Next() {
		o, err := scanServiceOrder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan service order: %w", err)
		}
		items = append(items, *o)
	}
	return items, rows.Err()
}

// FindByID retrieves a service order by its UUID. Returns nil if not found.
func (s *ServiceOrderStore) FindByID(id uuid.UUID) (*models.ServiceOrder, error) {
	o, err := scanServiceOrder(s.db.QueryRow(`SELECT `+serviceOrderColumns+` FROM service_orders WHERE id = $1`, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find service order by id: %w", err)
	}
	return o, nil
}

// UpdateStatus sets the order status and operator notes.
func (s *ServiceOrderStore) UpdateStatus(id uuid.UUID, status models.OrderStatus, notes string) error {
	if !models.ValidServiceOrderStatus(status) {
		return fmt.Errorf("service order status %q: %w", status, ErrInvalidStatus)
	}

	_, err := s.db.Exec(`
		UPDATE service_orders SET status = $1, admin_notes = $2, updated_at = now()
		WHERE id = $3
	`, status, notes, id)
	if err != nil {
		return fmt.Errorf("update service order status: %w", err)
	}
	return nil
}

// CountByStatus returns the number of service orders in the given status.
func (s *ServiceOrderStore) CountByStatus(status models.OrderStatus) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM service_orders WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count service orders: %w", err)
	}
	return count, nil
}
