package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"youthstream/palco/internal/constants"
	"youthstream/palco/internal/db/repositories"
	"youthstream/palco/internal/models/dtos"
	gormModels "youthstream/palco/internal/models/gorm"
)

func TestUserService_CreateUser_AdminSetsRole(t *testing.T) {
	db := setupTestDB(t)
	svc := NewUserService(
		repositories.NewUserRepositoryGORM(db),
		repositories.NewStreamRepositoryGORM(db),
	)
	ctx := context.Background()

	resp, err := svc.CreateUser(ctx, dtos.CreateUserReq{
		Email:    "admin2@example.com",
		Password: "segredo1",
		FullName: "Segundo Admin",
		Role:     "ADMIN",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if resp.Role != "ADMIN" {
		t.Errorf("Expected role ADMIN, got %s", resp.Role)
	}

	// Role defaults to USER when omitted.
	resp, err = svc.CreateUser(ctx, dtos.CreateUserReq{
		Email:    "plain@example.com",
		Password: "segredo1",
		FullName: "Sem Papel",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if resp.Role != "USER" {
		t.Errorf("Expected default role USER, got %s", resp.Role)
	}

	if _, err := svc.CreateUser(ctx, dtos.CreateUserReq{
		Email:    "weird@example.com",
		Password: "segredo1",
		FullName: "Papel Errado",
		Role:     "SUPERUSER",
	}); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for unknown role, got %v", err)
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepositoryGORM(db)
	svc := NewUserService(userRepo, repositories.NewStreamRepositoryGORM(db))
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, dtos.CreateUserReq{
		Email:    "member@example.com",
		Password: "segredo1",
		FullName: "Membro",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	stream := gormModels.Stream{
		Title:       "Conferencia",
		SourceType:  constants.SourceYouTube,
		SourceURL:   "https://youtube.com/watch?v=conf",
		AccessLevel: constants.AccessVIP,
	}
	if err := db.Create(&stream).Error; err != nil {
		t.Fatalf("Failed to seed stream: %v", err)
	}

	role := "VIP"
	active := false
	expires := time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC).Format(time.RFC3339)
	updated, err := svc.UpdateUser(ctx, created.ID, dtos.UpdateUserReq{
		Role:      &role,
		IsActive:  &active,
		ExpiresAt: &expires,
		StreamIDs: []string{stream.ID, "phantom-stream"},
	})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	if updated.Role != "VIP" {
		t.Errorf("Expected role VIP, got %s", updated.Role)
	}
	if updated.IsActive {
		t.Error("Expected account to be deactivated")
	}
	if updated.ExpiresAt == nil || !updated.ExpiresAt.Equal(time.Date(2026, 12, 31, 23, 59, 0, 0, time.UTC)) {
		t.Errorf("Expected expiry to be set, got %v", updated.ExpiresAt)
	}
	// Nonexistent stream ids are dropped from the allow-list.
	if len(updated.StreamIDs) != 1 || updated.StreamIDs[0] != stream.ID {
		t.Errorf("Expected allow-list [%s], got %v", stream.ID, updated.StreamIDs)
	}
}

func TestUserService_UpdateUser_ClearExpiry(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepositoryGORM(db)
	svc := NewUserService(userRepo, repositories.NewStreamRepositoryGORM(db))
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, dtos.CreateUserReq{
		Email: "exp@example.com", Password: "segredo1", FullName: "Expira",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	expires := "2026-06-01T00:00:00Z"
	if _, err := svc.UpdateUser(ctx, created.ID, dtos.UpdateUserReq{ExpiresAt: &expires}); err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}

	empty := ""
	updated, err := svc.UpdateUser(ctx, created.ID, dtos.UpdateUserReq{ExpiresAt: &empty})
	if err != nil {
		t.Fatalf("UpdateUser failed: %v", err)
	}
	if updated.ExpiresAt != nil {
		t.Errorf("Expected expiry to be cleared, got %v", updated.ExpiresAt)
	}

	bad := "tomorrow"
	if _, err := svc.UpdateUser(ctx, created.ID, dtos.UpdateUserReq{ExpiresAt: &bad}); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for malformed expiry, got %v", err)
	}
}

func TestUserService_UpdateProfile_NeverTouchesPrivileges(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepositoryGORM(db)
	svc := NewUserService(userRepo, repositories.NewStreamRepositoryGORM(db))
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, dtos.CreateUserReq{
		Email: "self@example.com", Password: "segredo1", FullName: "Antes", Role: "VIP",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	name := "Depois"
	bio := "Sigo as transmissões desde Luanda."
	city := "Luanda"
	profile, err := svc.UpdateProfile(ctx, created.ID, dtos.UpdateProfileReq{
		FullName: &name,
		Bio:      &bio,
		City:     &city,
	})
	if err != nil {
		t.Fatalf("UpdateProfile failed: %v", err)
	}
	if profile.FullName != "Depois" || profile.City != "Luanda" {
		t.Errorf("Unexpected profile %+v", profile)
	}

	after, err := userRepo.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if after.Role != constants.RoleVIP || !after.IsActive {
		t.Errorf("Profile update changed privileges: role=%s active=%v", after.Role, after.IsActive)
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepositoryGORM(db)
	svc := NewUserService(userRepo, repositories.NewStreamRepositoryGORM(db))
	ctx := context.Background()

	created, err := svc.CreateUser(ctx, dtos.CreateUserReq{
		Email: "bye@example.com", Password: "segredo1", FullName: "De Saida",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	if err := svc.DeleteUser(ctx, created.ID); err != nil {
		t.Fatalf("DeleteUser failed: %v", err)
	}

	if _, err := userRepo.GetByID(ctx, created.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound after delete, got %v", err)
	}

	if err := svc.DeleteUser(ctx, created.ID); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound on second delete, got %v", err)
	}
}
