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

// ContactMessageStore handles contact form submissions.
type ContactMessageStore struct {
	db *sql.DB
}

// NewContactMessageStore creates a new ContactMessageStore with the given database connection.
func NewContactMessageStore(db *sql.DB) *ContactMessageStore {
	return &ContactMessageStore{db: db}
}

const contactMessageColumns = `id, name, email, subject, message, is_read, created_at`

// Create inserts a new contact message and returns it with the generated ID.
func (s *ContactMessageStore) Create(m *models.ContactMessage) (*models.ContactMessage, error) {
	result := &models.ContactMessage{}
	err := s.db.QueryRow(`
		INSERT INTO contact_messages (name, email, subject, message)
		VALUES ($1, $2, $3, $4)
		RETURNING `+contactMessageColumns,
		m.Name, m.Email, m.Subject, m.Message,
	).Scan(
		&result.ID, &result.Name, &result.Email, &result.Subject,
		&result.Message, &result.IsRead, &result.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create contact message: %w", err)
	}
	return result, nil
}

// List returns all contact messages, newest first.
func (s *ContactMessageStore) List() ([]models.ContactMessage, error) {
	rows, err := s.db.Query(`SELECT ` + contactMessageColumns + ` FROM contact_messages ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list contact messages: %w", err)
	}
	defer rows.Close()

	var items []models.ContactMessage
	for rows.Next() {
		var m models.ContactMessage
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan contact message: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

// FindByID retrieves a contact message by its UUID. Returns nil if not found.
func (s *ContactMessageStore) FindByID(id uuid.UUID) (*models.ContactMessage, error) {
	m := &models.ContactMessage{}
	err := s.db.QueryRow(`SELECT `+contactMessageColumns+` FROM contact_messages WHERE id = $1`, id).Scan(
		&m.ID, &m.Name, &m.Email, &m.Subject, &m.Message, &m.IsRead, &m.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find contact message by id: %w", err)
	}
	return m, nil
}

// SetRead toggles the operator's read flag on a message.
func (s *ContactMessageStore) SetRead(id uuid.UUID, read bool) error {
	_, err := s.db.Exec(`UPDATE contact_messages SET is_read = $1 WHERE id = $2`, read, id)
	if err != nil {
		return fmt.Errorf("set contact message read: %w", err)
	}
	return nil
}

// CountUnread returns the number of unread messages, shown on the admin dashboard.
func (s *ContactMessageStore) CountUnread() (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM contact_messages WHERE NOT is_read`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count unread contact messages: %w", err)
	}
	return count, nil
}

// Delete removes a contact message by ID.
func (s *ContactMessageStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM contact_messages WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete contact message: %w", err)
	}
	return nil
}
