package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"youthstream/palco/internal/constants"
	"youthstream/palco/internal/db/repositories"
	"youthstream/palco/internal/models/dtos"
	gormModels "youthstream/palco/internal/models/gorm"
)

const testFrontendURL = "https://palco.example.com"

func TestVipService_CreateVipUser(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepositoryGORM(db)
	svc := NewVipService(userRepo, repositories.NewStreamRepositoryGORM(db), testFrontendURL)
	ctx := context.Background()

	stream := gormModels.Stream{
		Title:       "Gala VIP",
		SourceType:  constants.SourceOBS,
		SourceURL:   "rtmp://live/gala",
		AccessLevel: constants.AccessVIP,
		AccessCode:  "GALA2026XY",
	}
	if err := db.Create(&stream).Error; err != nil {
		t.Fatalf("Failed to seed stream: %v", err)
	}

	resp, err := svc.CreateVipUser(ctx, dtos.CreateVipUserReq{
		Name:      "Carlos Mendes",
		Email:     "carlos@example.com",
		Password:  "segredo1",
		StreamIDs: []string{stream.ID},
	})
	if err != nil {
		t.Fatalf("CreateVipUser failed: %v", err)
	}

	if resp.Role != "VIP" {
		t.Errorf("Expected role VIP, got %s", resp.Role)
	}
	if !resp.EmailSent {
		t.Error("Expected email to be marked sent by default")
	}
	if len(resp.Streams) != 1 {
		t.Fatalf("Expected 1 private link, got %d", len(resp.Streams))
	}

	link := resp.Streams[0]
	if link.AccessCode != "GALA2026XY" {
		t.Errorf("Expected stream's access code, got %s", link.AccessCode)
	}
	wantPrefix := testFrontendURL + "/vip/stream/" + stream.ID
	if !strings.HasPrefix(link.URL, wantPrefix) || !strings.Contains(link.URL, "access=GALA2026XY") {
		t.Errorf("Unexpected private link %s", link.URL)
	}

	stored, err := userRepo.GetByID(ctx, resp.ID)
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}
	if len(stored.StreamGrants) != 1 || stored.StreamGrants[0].StreamID != stream.ID {
		t.Errorf("Expected one grant for %s, got %+v", stream.ID, stored.StreamGrants)
	}
	if stored.Profile == nil || stored.Profile.AvatarURL == "" {
		t.Error("Expected a generated avatar URL")
	}
}

func TestVipService_CreateVipUser_DuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVipService(
		repositories.NewUserRepositoryGORM(db),
		repositories.NewStreamRepositoryGORM(db),
		testFrontendURL,
	)
	ctx := context.Background()

	req := dtos.CreateVipUserReq{Name: "Um", Email: "vip@example.com", Password: "segredo1"}
	if _, err := svc.CreateVipUser(ctx, req); err != nil {
		t.Fatalf("First create failed: %v", err)
	}

	req.Name = "Dois"
	if _, err := svc.CreateVipUser(ctx, req); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("Expected ErrEmailTaken, got %v", err)
	}
}

func TestVipService_NotifyStream_SkipsNonVips(t *testing.T) {
	db := setupTestDB(t)
	userRepo := repositories.NewUserRepositoryGORM(db)
	svc := NewVipService(userRepo, repositories.NewStreamRepositoryGORM(db), testFrontendURL)
	ctx := context.Background()

	stream := gormModels.Stream{
		Title:       "Estreia",
		SourceType:  constants.SourceYouTube,
		SourceURL:   "https://youtube.com/watch?v=estreia",
		AccessLevel: constants.AccessVIP,
		AccessCode:  "ESTREIA99",
	}
	if err := db.Create(&stream).Error; err != nil {
		t.Fatalf("Failed to seed stream: %v", err)
	}

	vip1, err := svc.CreateVipUser(ctx, dtos.CreateVipUserReq{Name: "Vip Um", Email: "v1@example.com", Password: "segredo1"})
	if err != nil {
		t.Fatalf("CreateVipUser failed: %v", err)
	}
	vip2, err := svc.CreateVipUser(ctx, dtos.CreateVipUserReq{Name: "Vip Dois", Email: "v2@example.com", Password: "segredo1"})
	if err != nil {
		t.Fatalf("CreateVipUser failed: %v", err)
	}

	plain := gormModels.User{
		Email:    "plain@example.com",
		Password: "hash",
		Role:     constants.RoleUser,
		IsActive: true,
	}
	if err := db.Create(&plain).Error; err != nil {
		t.Fatalf("Failed to seed user: %v", err)
	}

	resp, err := svc.NotifyStream(ctx, stream.ID, []string{vip1.ID, vip2.ID, plain.ID})
	if err != nil {
		t.Fatalf("NotifyStream failed: %v", err)
	}

	if resp.TotalUsers != 2 || resp.SuccessCount != 2 {
		t.Errorf("Expected 2 VIP recipients, got total=%d success=%d", resp.TotalUsers, resp.SuccessCount)
	}
}

func TestVipService_NotifyStream_UnknownStream(t *testing.T) {
	db := setupTestDB(t)
	svc := NewVipService(
		repositories.NewUserRepositoryGORM(db),
		repositories.NewStreamRepositoryGORM(db),
		testFrontendURL,
	)

	if _, err := svc.NotifyStream(context.Background(), "missing", []string{"someone"}); !errors.Is(err, repositories.ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}
