package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"sync/atomic"
	"time"

	"golang.org/x/crypto/bcrypt"
	"golang.org/x/sync/errgroup"

	"youthstream/palco/internal/constants"
	"youthstream/palco/internal/db/repositories"
	"youthstream/palco/internal/logging"
	"youthstream/palco/internal/models/dtos"
	gormModels "youthstream/palco/internal/models/gorm"
)

// VipService provisions VIP accounts with stream grants and handles
// the notification fan-out when a new VIP stream goes up. Actual
// e-mail delivery is an external concern; the fan-out computes the
// private links and logs each delivery.
type VipService struct {
	userRepo    *repositories.UserRepositoryGORM
	streamRepo  *repositories.StreamRepositoryGORM
	frontendURL string
}

func NewVipService(userRepo *repositories.UserRepositoryGORM, streamRepo *repositories.StreamRepositoryGORM, frontendURL string) *VipService {
	return &VipService{userRepo: userRepo, streamRepo: streamRepo, frontendURL: frontendURL}
}

// CreateVipUser creates a VIP account, grants it the requested
// streams, and returns the private links for each granted stream.
func (svc *VipService) CreateVipUser(ctx context.Context, req dtos.CreateVipUserReq) (*dtos.CreateVipUserResponse, error) {
	if len(req.Name) < 2 {
		return nil, fmt.Errorf("%w: name must be at least 2 characters", ErrValidation)
	}
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	if _, err := svc.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	expiresAt, err := parseOptionalTime(req.ExpiresAt)
	if err != nil {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &gormModels.User{
		Email:     req.Email,
		Password:  string(hash),
		Role:      constants.RoleVIP,
		IsActive:  true,
		ExpiresAt: expiresAt,
		Profile: &gormModels.Profile{
			FullName:  req.Name,
			AvatarURL: "https://ui-avatars.com/api/?name=" + url.QueryEscape(req.Name) + "&background=random",
			Phone:     req.Phone,
			City:      req.City,
			Country:   req.Country,
		},
	}

	if err := svc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	var links []dtos.VipStreamLink
	if len(req.StreamIDs) > 0 {
		streams, err := svc.streamRepo.GetByIDs(ctx, req.StreamIDs)
		if err != nil {
			return nil, err
		}

		ids := make([]string, 0, len(streams))
		for i := range streams {
			ids = append(ids, streams[i].ID)
			links = append(links, svc.privateLink(&streams[i]))
		}

		if err := svc.userRepo.ReplaceGrants(ctx, user.ID, ids); err != nil {
			return nil, err
		}
	}

	sendEmail := req.SendEmail == nil || *req.SendEmail
	if sendEmail {
		logging.Info("VIP welcome notification queued", "email", user.Email, "streams", len(links))
	}

	logging.Info("VIP user provisioned", "user_id", user.ID, "grants", len(links))

	return &dtos.CreateVipUserResponse{
		ID:        user.ID,
		Name:      req.Name,
		Email:     user.Email,
		Role:      string(user.Role),
		Streams:   links,
		EmailSent: sendEmail,
	}, nil
}

// NotifyStream fans notifications for a stream out to the named VIP
// users. Non-VIP ids in the list are silently skipped, matching the
// role filter on the lookup.
func (svc *VipService) NotifyStream(ctx context.Context, streamID string, userIDs []string) (*dtos.NotifyVipResponse, error) {
	stream, err := svc.streamRepo.GetByID(ctx, streamID)
	if err != nil {
		return nil, err
	}

	users, err := svc.userRepo.ListByIDedRole(ctx, userIDs, string(constants.RoleVIP))
	if err != nil {
		return nil, err
	}

	link := svc.privateLink(stream)

	var delivered int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i := range users {
		user := users[i]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			// Delivery itself is stubbed; the link and recipient are
			// logged so support can replay them.
			logging.Info("VIP stream notification",
				"email", user.Email,
				"stream_id", stream.ID,
				"stream_title", stream.Title,
				"url", link.URL,
			)
			atomic.AddInt64(&delivered, 1)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("notification fan-out failed: %w", err)
	}

	return &dtos.NotifyVipResponse{
		Message:      fmt.Sprintf("Notifications sent to %d users", delivered),
		TotalUsers:   len(users),
		SuccessCount: int(delivered),
	}, nil
}

func (svc *VipService) privateLink(s *gormModels.Stream) dtos.VipStreamLink {
	code := s.AccessCode
	if code == "" {
		code = generateAccessCode()
	}
	return dtos.VipStreamLink{
		ID:         s.ID,
		Title:      s.Title,
		URL:        fmt.Sprintf("%s/vip/stream/%s?access=%s", svc.frontendURL, s.ID, code),
		AccessCode: code,
	}
}

func parseOptionalTime(value *string) (*time.Time, error) {
	if value == nil || *value == "" {
		return nil, nil
	}
	ts, err := time.Parse(time.RFC3339, *value)
	if err != nil {
		return nil, fmt.Errorf("%w: expiresAt must be RFC3339", ErrValidation)
	}
	return &ts, nil
}
