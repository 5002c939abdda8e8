package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"youthstream/palco/internal/constants"
)

type Stream struct {
	ID          string                 `gorm:"column:id;primaryKey;type:uuid"`
	Title       string                 `gorm:"column:title"`
	Description string                 `gorm:"column:description"`
	SourceType  constants.StreamSource `gorm:"column:source_type"`
	SourceURL   string                 `gorm:"column:source_url"`
	Thumbnail   string                 `gorm:"column:thumbnail"`
	Category    string                 `gorm:"column:category;default:Geral"`
	IsLive      bool                   `gorm:"column:is_live;default:false"`
	AccessLevel constants.StreamAccess `gorm:"column:access_level;type:stream_access;default:PUBLIC"`
	AccessCode  string                 `gorm:"column:access_code"`
	Viewers     int                    `gorm:"column:viewers;default:0"`
	CreatedAt   time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

// TableName specifies the table name for GORM
func (Stream) TableName() string {
	return "streams"
}

// BeforeCreate generates the ID; uuids are assigned app-side so the
// postgres and sqlite paths behave the same.
func (s *Stream) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	return nil
}

type ChatMessage struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	UserID    string    `gorm:"column:user_id"`
	UserName  string    `gorm:"column:user_name"`
	AvatarURL string    `gorm:"column:avatar_url"`
	Text      string    `gorm:"column:text"`
	IsAdmin   bool      `gorm:"column:is_admin;default:false"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}

func (m *ChatMessage) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
