package database

import (
	"database/sql"
	"fmt"
	"log/slog"

	"golang.org/x/crypto/bcrypt"
)

// Seed populates the database with initial development data: a default
// operator account, the site profile, and one sample service. It is a
// no-op once an operator exists.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM operators").Scan(&count); err != nil {
		return fmt.Errorf("seed check operators: %w", err)
	}
	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed bcrypt: %w", err)
	}

	// 2FA is not enabled — the operator sets it up on first login.
	_, err = db.Exec(`
		INSERT INTO operators (email, password_hash, display_name, totp_enabled)
		VALUES ($1, $2, $3, $4)
	`, "admin@scholarsite.local", string(hash), "Operator", false)
	if err != nil {
		return fmt.Errorf("seed insert operator: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO profiles (full_name, education, bio, specialization, experience_years, languages, email, phone)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`, "Ахмедова Феруза Медетовна",
		"Национальный университет, факультет социологии",
		"Профессиональный социолог.",
		"Социология города, социальные исследования",
		15, "Русский, O'zbek, English",
		"contact@scholarsite.local", "+998 00 000-00-00")
	if err != nil {
		return fmt.Errorf("seed insert profile: %w", err)
	}

	_, err = db.Exec(`
		INSERT INTO services (title, description, price_from, duration, sort_order)
		VALUES ($1, $2, $3, $4, $5)
	`, "Социологическое исследование",
		"Полный цикл: программа, полевой этап, анализ и отчет.",
		50000.00, "от 4 недель", 0)
	if err != nil {
		return fmt.Errorf("seed insert service: %w", err)
	}

	slog.Info("database seeded with default operator",
		"email", "admin@scholarsite.local",
		"password", "admin",
	)
	return nil
}
