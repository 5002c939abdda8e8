package services

import (
	"context"
	"fmt"
	"time"

	"youthstream/palco/internal/common"
	"youthstream/palco/internal/constants"
	"youthstream/palco/internal/db/repositories"
	"youthstream/palco/internal/logging"
	"youthstream/palco/internal/metrics"
	"youthstream/palco/internal/models/dtos"
	gormModels "youthstream/palco/internal/models/gorm"
)

const (
	chatHistoryLimit   = 100
	chatCacheTTL       = 5 * time.Second
	chatMaxMessageLen  = 500
	chatWelcomeUserID  = "system"
	chatWelcomeUser    = "Palco Bot"
	chatWelcomeMessage = "Bem-vindo ao chat ao vivo! Digam de onde nos acompanham 🇦🇴"
)

// ChatService persists the live chat and serves the recent history
// with a short cache so a busy viewing page does not hammer the
// database.
type ChatService struct {
	repo       *repositories.ChatRepositoryGORM
	userRepo   *repositories.UserRepositoryGORM
	cache      common.CacheInterface
	metricsReg *metrics.MetricsRegistry
}

func NewChatService(
	repo *repositories.ChatRepositoryGORM,
	userRepo *repositories.UserRepositoryGORM,
	cache common.CacheInterface,
	metricsReg *metrics.MetricsRegistry,
) *ChatService {
	return &ChatService{repo: repo, userRepo: userRepo, cache: cache, metricsReg: metricsReg}
}

// SeedWelcome inserts the bot greeting once, on an empty chat.
func (svc *ChatService) SeedWelcome(ctx context.Context) error {
	n, err := svc.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	msg := &gormModels.ChatMessage{
		UserID:   chatWelcomeUserID,
		UserName: chatWelcomeUser,
		Text:     chatWelcomeMessage,
		IsAdmin:  true,
	}
	return svc.repo.Append(ctx, msg)
}

// Recent returns the last messages, oldest first.
func (svc *ChatService) Recent(ctx context.Context) ([]dtos.ChatMessageResponse, error) {
	key := string(constants.CachePrefixChatRecent)

	if val, found := svc.cache.Get(key); found {
		if messages, ok := val.([]dtos.ChatMessageResponse); ok {
			svc.metricsReg.CacheHitsTotal.WithLabelValues(key).Inc()
			return messages, nil
		}
	}
	svc.metricsReg.CacheMissesTotal.WithLabelValues(key).Inc()

	rows, err := svc.repo.ListRecent(ctx, chatHistoryLimit)
	if err != nil {
		return nil, err
	}

	messages := make([]dtos.ChatMessageResponse, 0, len(rows))
	for i := range rows {
		messages = append(messages, chatToResponse(&rows[i]))
	}

	svc.cache.Set(key, messages, chatCacheTTL)
	return messages, nil
}

// Post appends a message from an authenticated user. The sender name
// and admin flag come from the account, not the request body.
func (svc *ChatService) Post(ctx context.Context, userID string, req dtos.PostChatMessageReq) (*dtos.ChatMessageResponse, error) {
	if req.Text == "" {
		return nil, fmt.Errorf("%w: message text is required", ErrValidation)
	}
	if len(req.Text) > chatMaxMessageLen {
		return nil, fmt.Errorf("%w: message too long", ErrValidation)
	}

	user, err := svc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	name := user.Email
	avatar := ""
	if user.Profile != nil {
		if user.Profile.FullName != "" {
			name = user.Profile.FullName
		}
		avatar = user.Profile.AvatarURL
	}

	msg := &gormModels.ChatMessage{
		UserID:    user.ID,
		UserName:  name,
		AvatarURL: avatar,
		Text:      req.Text,
		IsAdmin:   user.Role == constants.RoleAdmin,
	}

	if err := svc.repo.Append(ctx, msg); err != nil {
		return nil, err
	}

	svc.cache.Delete(string(constants.CachePrefixChatRecent))
	svc.metricsReg.ChatMessagesTotal.Inc()
	logging.Debug("Chat message posted", "user_id", user.ID)

	resp := chatToResponse(msg)
	return &resp, nil
}

func chatToResponse(m *gormModels.ChatMessage) dtos.ChatMessageResponse {
	return dtos.ChatMessageResponse{
		ID:        m.ID,
		UserID:    m.UserID,
		UserName:  m.UserName,
		AvatarURL: m.AvatarURL,
		Text:      m.Text,
		IsAdmin:   m.IsAdmin,
		Timestamp: m.CreatedAt,
	}
}
