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

// BookOrderStore handles book order records.
type BookOrderStore struct {
	db *sql.DB
}

// NewBookOrderStore creates a new BookOrderStore with the given database connection.
func NewBookOrderStore(db *sql.DB) *BookOrderStore {
	return &BookOrderStore{db: db}
}

const bookOrderColumns = `id, book_id, full_name, email, phone, address,
	quantity, message, status, admin_notes, created_at, updated_at`

func scanBookOrder(scan func(dest ...any) error) (*models.BookOrder, error) {
	o := &models.BookOrder{}
	err := scan(
		&o.ID, &o.BookID, &o.FullName, &o.Email, &o.Phone, &o.Address,
		&o.Quantity, &o.Message, &o.Status, &o.AdminNotes, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// Create inserts a new order with status "new" and returns it with the
// generated ID. The CHECK constraint rejects quantities below one.
func (s *BookOrderStore) Create(o *models.BookOrder) (*models.BookOrder, error) {
	created, err := scanBookOrder(s.db.QueryRow(`
		INSERT INTO book_orders (book_id, full_name, email, phone, address, quantity, message)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+bookOrderColumns,
		o.BookID, o.FullName, o.Email, o.Phone, o.Address, o.Quantity, o.Message,
	).Scan)
	if err != nil {
		return nil, fmt.Errorf("create book order: %w", err)
	}
	return created, nil
}

// List returns all book orders, newest first.
func (s *BookOrderStore) List() ([]models.BookOrder, error) {
	rows, err := s.db.Query(`SELECT ` + bookOrderColumns + ` FROM book_orders ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list book orders: %w", err)
	}
	defer rows.Close()

	var items []models.BookOrder
	for rows.Next() {
		o, err := scanBookOrder(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan book order: %w", err)
		}
		items = append(items, *o)
	}
	return items, rows.Err()
}

// FindByID retrieves a book order by its UUID. Returns nil if not found.
func (s *BookOrderStore) FindByID(id uuid.UUID) (*models.BookOrder, error) {
	o, err := scanBookOrder(s.db.QueryRow(`SELECT `+bookOrderColumns+` FROM book_orders WHERE id = $1`, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find book order by id: %w", err)
	}
	return o, nil
}

// UpdateStatus sets the order status and operator notes. Book orders
// additionally allow the "shipped" status.
func (s *BookOrderStore) UpdateStatus(id uuid.UUID, status models.OrderStatus, notes string) error {
	if !models.ValidBookOrderStatus(status) {
		return fmt.Errorf("book order status %q: %w", status, ErrInvalidStatus)
	}

	_, err := s.db.Exec(`
		UPDATE book_orders SET status = $1, admin_notes = $2, updated_at = now()
		WHERE id = $3
	`, status, notes, id)
	if err != nil {
		return fmt.Errorf("update book order status: %w", err)
	}
	return nil
}

// CountByStatus returns the number of book orders in the given status.
func (s *BookOrderStore) CountByStatus(status models.OrderStatus) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM book_orders WHERE status = $1`, status).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count book orders: %w", err)
	}
	return count, nil
}
