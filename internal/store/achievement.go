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

// AchievementStore handles award and recognition records.
type AchievementStore struct {
	db *sql.DB
}

// NewAchievementStore creates a new AchievementStore with the given database connection.
func NewAchievementStore(db *sql.DB) *AchievementStore {
	return &AchievementStore{db: db}
}

const achievementColumns = `id, title, description, date, organization,
	certificate_key, sort_order, created_at, updated_at`

// List returns all achievements, newest first, sort_order as tiebreak.
func (s *AchievementStore) List() ([]models.Achievement, error) {
	rows, err := s.db.Query(`SELECT ` + achievementColumns + ` FROM achievements ORDER BY date DESC, sort_order`)
	if err != nil {
		return nil, fmt.Errorf("list achievements: %w", err)
	}
	defer rows.Close()

	var items []models.Achievement
	for rows.Next() {
		var a models.Achievement
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Description, &a.Date, &a.Organization,
			&a.CertificateKey, &a.SortOrder, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan achievement: %w", err)
		}
		items = append(items, a)
	}
	return items, rows.Err()
}

// FindByID retrieves an achievement by its UUID. Returns nil if not found.
func (s *AchievementStore) FindByID(id uuid.UUID) (*models.Achievement, error) {
	a := &models.Achievement{}
	err := s.db.QueryRow(`SELECT `+achievementColumns+` FROM achievements WHERE id = $1`, id).Scan(
		&a.ID, &a.Title, &a.Description, &a.Date, &a.Organization,
		&a.CertificateKey, &a.SortOrder, &a.CreatedAt, &a.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find achievement by id: %w", err)
	}
	return a, nil
}

// Create inserts a new achievement and returns it with the generated ID.
func (s *AchievementStore) Create(a *models.Achievement) (*models.Achievement, error) {
	result := &models.Achievement{}
	err := s.db.QueryRow(`
		INSERT INTO achievements (title, description, date, organization, certificate_key, sort_order)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING `+achievementColumns,
		a.Title, a.Description, a.Date, a.Organization, a.CertificateKey, a.SortOrder,
	).Scan(
		&result.ID, &result.Title, &result.Description, &result.Date, &result.Organization,
		&result.CertificateKey, &result.SortOrder, &result.CreatedAt, &result.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("create achievement: %w", err)
	}
	return result, nil
}

// Update modifies an existing achievement.
func (s *AchievementStore) Update(a *models.Achievement) error {
	_, err := s.db.Exec(`
		UPDATE achievements SET
			title = $1, description = $2, date = $3, organization = $4,
			certificate_key = $5, sort_order = $6, updated_at = now()
		WHERE id = $7
	`, a.Title, a.Description, a.Date, a.Organization, a.CertificateKey, a.SortOrder, a.ID)
	if err != nil {
		return fmt.Errorf("update achievement: %w", err)
	}
	return nil
}

// Delete removes an achievement by ID.
func (s *AchievementStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM achievements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete achievement: %w", err)
	}
	return nil
}
