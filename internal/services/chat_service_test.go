package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/gorm"

	"youthstream/palco/internal/common"
	"youthstream/palco/internal/constants"
	"youthstream/palco/internal/db/repositories"
	"youthstream/palco/internal/models/dtos"
	gormModels "youthstream/palco/internal/models/gorm"
)

func newTestChatService(db *gorm.DB) *ChatService {
	return NewChatService(
		repositories.NewChatRepositoryGORM(db),
		repositories.NewUserRepositoryGORM(db),
		common.NewCacheService(60, 600),
		testMetrics(),
	)
}

func seedChatUser(t *testing.T, db *gorm.DB, email, name string, role constants.UserRole) *gormModels.User {
	t.Helper()
	user := &gormModels.User{
		Email:    email,
		Password: "hash",
		Role:     role,
		IsActive: true,
		Profile:  &gormModels.Profile{FullName: name},
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}
	return user
}

func TestChatService_SeedWelcome_Once(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestChatService(db)
	ctx := context.Background()

	if err := svc.SeedWelcome(ctx); err != nil {
		t.Fatalf("SeedWelcome failed: %v", err)
	}
	if err := svc.SeedWelcome(ctx); err != nil {
		t.Fatalf("Second SeedWelcome failed: %v", err)
	}

	n, err := repositories.NewChatRepositoryGORM(db).Count(ctx)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Expected exactly one seeded message, got %d", n)
	}
}

func TestChatService_Post_UsesAccountIdentity(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestChatService(db)
	ctx := context.Background()

	admin := seedChatUser(t, db, "mod@example.com", "Moderadora", constants.RoleAdmin)

	resp, err := svc.Post(ctx, admin.ID, dtos.PostChatMessageReq{Text: "Boa noite a todos!"})
	if err != nil {
		t.Fatalf("Post failed: %v", err)
	}

	if resp.UserName != "Moderadora" {
		t.Errorf("Expected sender name from profile, got %s", resp.UserName)
	}
	if !resp.IsAdmin {
		t.Error("Expected admin flag from the account role")
	}
}

func TestChatService_Post_Validation(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestChatService(db)
	ctx := context.Background()

	user := seedChatUser(t, db, "chatty@example.com", "Faladora", constants.RoleUser)

	if _, err := svc.Post(ctx, user.ID, dtos.PostChatMessageReq{Text: ""}); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for empty text, got %v", err)
	}

	long := strings.Repeat("a", 501)
	if _, err := svc.Post(ctx, user.ID, dtos.PostChatMessageReq{Text: long}); !errors.Is(err, ErrValidation) {
		t.Errorf("Expected ErrValidation for long text, got %v", err)
	}

	if _, err := svc.Post(ctx, "ghost-user", dtos.PostChatMessageReq{Text: "oi"}); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound for unknown sender, got %v", err)
	}
}

func TestChatService_Recent_OldestFirst(t *testing.T) {
	db := setupTestDB(t)
	svc := newTestChatService(db)
	ctx := context.Background()

	user := seedChatUser(t, db, "hist@example.com", "Historiadora", constants.RoleUser)

	for _, text := range []string{"primeira", "segunda", "terceira"} {
		if _, err := svc.Post(ctx, user.ID, dtos.PostChatMessageReq{Text: text}); err != nil {
			t.Fatalf("Post failed: %v", err)
		}
	}

	messages, err := svc.Recent(ctx)
	if err != nil {
		t.Fatalf("Recent failed: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("Expected 3 messages, got %d", len(messages))
	}
	if messages[0].Text != "primeira" || messages[2].Text != "terceira" {
		t.Errorf("Expected chronological order, got [%s .. %s]", messages[0].Text, messages[2].Text)
	}
}
