package repositories

import (
	"context"
	"fmt"

	gormModels "youthstream/palco/internal/models/gorm"

	"gorm.io/gorm"
)

type ChatRepositoryGORM struct {
	db *gorm.DB
}

func NewChatRepositoryGORM(db *gorm.DB) *ChatRepositoryGORM {
	return &ChatRepositoryGORM{db: db}
}

// ListRecent returns the newest messages in chronological order.
func (r *ChatRepositoryGORM) ListRecent(ctx context.Context, limit int) ([]gormModels.ChatMessage, error) {
	var messages []gormModels.ChatMessage

	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&messages).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list chat messages: %w", err)
	}

	// Reverse to oldest-first for display.
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}

func (r *ChatRepositoryGORM) Append(ctx context.Context, msg *gormModels.ChatMessage) error {
	if err := r.db.WithContext(ctx).Create(msg).Error; err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}

// Count returns the total number of stored messages.
func (r *ChatRepositoryGORM) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&gormModels.ChatMessage{}).Count(&n).Error; err != nil {
		return 0, fmt.Errorf("failed to count chat messages: %w", err)
	}
	return n, nil
}
