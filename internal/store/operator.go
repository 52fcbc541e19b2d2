// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"scholarsite/internal/models"
)

// OperatorStore handles administrative account operations.
type OperatorStore struct {
	db *sql.DB
}

// NewOperatorStore creates a new OperatorStore with the given database connection.
func NewOperatorStore(db *sql.DB) *OperatorStore {
	return &OperatorStore{db: db}
}

const operatorColumns = `id, email, password_hash, display_name, totp_secret, totp_enabled, created_at, updated_at`

func scanOperator(scan func(dest ...any) error) (*models.Operator, error) {
	op := &models.Operator{}
	err := scan(
		&op.ID, &op.Email, &op.PasswordHash, &op.DisplayName,
		&op.TOTPSecret, &op.TOTPEnabled, &op.CreatedAt, &op.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return op, nil
}

// FindByEmail retrieves an operator by email. Returns nil if not found.
func (s *OperatorStore) FindByEmail(email string) (*models.Operator, error) {
	op, err := scanOperator(s.db.QueryRow(`SELECT `+operatorColumns+` FROM operators WHERE email = $1`, email).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find operator by email: %w", err)
	}
	return op, nil
}

// FindByID retrieves an operator by UUID. Returns nil if not found.
func (s *OperatorStore) FindByID(id uuid.UUID) (*models.Operator, error) {
	op, err := scanOperator(s.db.QueryRow(`SELECT `+operatorColumns+` FROM operators WHERE id = $1`, id).Scan)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find operator by id: %w", err)
	}
	return op, nil
}

// Create inserts a new operator with a bcrypt-hashed password.
func (s *OperatorStore) Create(email, password, displayName string) (*models.Operator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	op, err := scanOperator(s.db.QueryRow(`
		INSERT INTO operators (email, password_hash, display_name)
		VALUES ($1, $2, $3)
		RETURNING `+operatorColumns,
		email, string(hash), displayName,
	).Scan)
	if err != nil {
		return nil, fmt.Errorf("create operator: %w", err)
	}
	return op, nil
}

// SetTOTPSecret saves the TOTP secret for an operator (during 2FA setup).
func (s *OperatorStore) SetTOTPSecret(id uuid.UUID, secret string) error {
	_, err := s.db.Exec(`UPDATE operators SET totp_secret = $1, updated_at = now() WHERE id = $2`, secret, id)
	if err != nil {
		return fmt.Errorf("set totp secret: %w", err)
	}
	return nil
}

// EnableTOTP marks 2FA as active (after successful code verification).
func (s *OperatorStore) EnableTOTP(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE operators SET totp_enabled = TRUE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("enable totp: %w", err)
	}
	return nil
}

// ResetTOTP clears the TOTP secret and disables 2FA. The operator will be
// forced to set up 2FA again on the next login.
func (s *OperatorStore) ResetTOTP(id uuid.UUID) error {
	_, err := s.db.Exec(`UPDATE operators SET totp_secret = NULL, totp_enabled = FALSE, updated_at = now() WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("reset totp: %w", err)
	}
	return nil
}

// Delete removes an operator by ID.
func (s *OperatorStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM operators WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete operator: %w", err)
	}
	return nil
}

// CheckPassword verifies a plaintext password against the stored hash.
func (s *OperatorStore) CheckPassword(op *models.Operator, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(op.PasswordHash), []byte(password)) == nil
}
