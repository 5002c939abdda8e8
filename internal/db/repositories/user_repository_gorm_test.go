package repositories

import (
	"context"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"youthstream/palco/internal/constants"
	gormModels "youthstream/palco/internal/models/gorm"
)

func setupRepoDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(
		&gormModels.User{},
		&gormModels.Profile{},
		&gormModels.StreamGrant{},
	); err != nil {
		t.Fatalf("Failed to migrate: %v", err)
	}

	return db
}

func TestUserRepositoryGORM_CreateGeneratesID(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewUserRepositoryGORM(db)
	ctx := context.Background()

	user := &gormModels.User{
		Email:    "id@example.com",
		Password: "hash",
		Role:     constants.RoleUser,
		IsActive: true,
		Profile:  &gormModels.Profile{FullName: "Com Id"},
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if user.ID == "" {
		t.Error("Expected an app-side generated user id")
	}
	if user.Profile.ID == "" {
		t.Error("Expected an app-side generated profile id")
	}
}

func TestUserRepositoryGORM_CreatePreservesInactiveFlag(t *testing.T) {
	db := setupRepoDB(t)
	repo := NewUserRepositoryGORM(db)
	ctx := context.Background()

	user := &gormModels.User{
		Email:    "suspenso@example.com",
		Password: "hash",
		Role:     constants.RoleVIP,
		IsActive: false,
	}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	stored, err := repo.GetByID(ctx, user.ID)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if stored.IsActive {
		t.Error("Account created deactivated came back active")
	}
}
