package store

import (
	"testing"

	"scholarsite/internal/models"
)

// TestProfileUpsertSingleton verifies that repeated upserts update the one
// profile row instead of accumulating rows.
func TestProfileUpsertSingleton(t *testing.T) {
	db := testDB(t)
	s := NewProfileStore(db)

	first, err := s.Upsert(&models.Profile{
		FullName: "Test Scholar",
		Email:    "scholar@example.com",
		Phone:    "+998901234567",
	})
	if err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	second, err := s.Upsert(&models.Profile{
		FullName:        "Test Scholar Updated",
		Email:           "scholar@example.com",
		Phone:           "+998901234567",
		ExperienceYears: 15,
	})
	if err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	if first.ID != second.ID {
		t.Errorf("upsert created a second profile row: %s vs %s", first.ID, second.ID)
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM profiles`).Scan(&count); err != nil {
		t.Fatalf("count profiles: %v", err)
	}
	if count != 1 {
		t.Errorf("expected exactly one profile row, got %d", count)
	}

	got, err := s.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got == nil {
		t.Fatal("expected profile, got nil")
	}
	if got.FullName != "Test Scholar Updated" {
		t.Errorf("expected updated name, got %q", got.FullName)
	}
	if got.ExperienceYears != 15 {
		t.Errorf("expected 15 experience years, got %d", got.ExperienceYears)
	}
}
