package repositories

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"

	"youthstream/palco/internal/models/entities"
)

func setupDonationDB(t *testing.T) *sqlx.DB {
	db, err := sqlx.Connect("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	db.MustExec(`
		CREATE TABLE donations (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			amount_cents BIGINT NOT NULL,
			method       TEXT NOT NULL,
			identifier   TEXT,
			name         TEXT,
			user_id      TEXT,
			created_at   TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		);
	`)
	return db
}

func TestDonationRepository_Insert(t *testing.T) {
	db := setupDonationDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	name := "Doadora"
	userID := "user-1"
	d := &entities.Donation{
		AmountCents: 250000,
		Method:      "TPA",
		Name:        &name,
		UserID:      &userID,
	}

	if err := repo.Insert(ctx, d); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if d.ID == "" {
		t.Error("Expected the returned id to be filled")
	}
	if d.CreatedAt.IsZero() {
		t.Error("Expected the returned created_at to be filled")
	}

	// Anonymous donation: every optional column stays NULL.
	anon := &entities.Donation{AmountCents: 5000, Method: "REFERENCIA"}
	if err := repo.Insert(ctx, anon); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}

	list, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected 2 donations, got %d", len(list))
	}
	for _, got := range list {
		if got.AmountCents == 5000 {
			if got.Name != nil || got.UserID != nil || got.Identifier != nil {
				t.Errorf("Expected anonymous donation to keep NULLs, got %+v", got)
			}
		}
	}
}

func TestDonationRepository_List_NewestFirstWithLimit(t *testing.T) {
	db := setupDonationDB(t)
	repo := NewDonationRepository(db)
	ctx := context.Background()

	// Explicit timestamps so the ordering is deterministic.
	db.MustExec(`
		INSERT INTO donations (amount_cents, method, created_at) VALUES
			(1000, 'TPA', '2026-01-01 10:00:00'),
			(2000, 'TPA', '2026-01-02 10:00:00'),
			(3000, 'TPA', '2026-01-03 10:00:00');
	`)

	list, err := repo.List(ctx, 2)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("Expected limit of 2, got %d", len(list))
	}
	if list[0].AmountCents != 3000 || list[1].AmountCents != 2000 {
		t.Errorf("Expected newest first [3000 2000], got [%d %d]",
			list[0].AmountCents, list[1].AmountCents)
	}
}
