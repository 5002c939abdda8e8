package gorm

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"youthstream/palco/internal/constants"
)

type User struct {
	ID        string             `gorm:"column:id;primaryKey;type:uuid"`
	Email     string             `gorm:"column:email;uniqueIndex"`
	Password  string             `gorm:"column:password"`
	Role      constants.UserRole `gorm:"column:role;type:user_role;default:USER"`
	// No default tag: with one, GORM would skip a false value on
	// Create and the row would come back active.
	IsActive bool `gorm:"column:is_active"`
	ExpiresAt *time.Time         `gorm:"column:expires_at"`
	CreatedAt time.Time          `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time          `gorm:"column:updated_at;autoUpdateTime"`

	// Relationships
	Profile      *Profile      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	StreamGrants []StreamGrant `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for GORM
func (User) TableName() string {
	return "users"
}

// BeforeCreate generates the ID; uuids are assigned app-side so the
// postgres and sqlite paths behave the same.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}

type Profile struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	UserID    string    `gorm:"column:user_id;type:uuid;uniqueIndex"`
	FullName  string    `gorm:"column:full_name"`
	AvatarURL string    `gorm:"column:avatar_url"`
	Bio       string    `gorm:"column:bio"`
	Phone     string    `gorm:"column:phone"`
	City      string    `gorm:"column:city"`
	Country   string    `gorm:"column:country"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p *Profile) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}

// StreamGrant is one entry of a user's stream allow-list. A VIP user
// with no grants is unrestricted; with grants, they see exactly the
// granted streams plus public content.
type StreamGrant struct {
	ID        string    `gorm:"column:id;primaryKey;type:uuid"`
	UserID    string    `gorm:"column:user_id;type:uuid;index:idx_grants_user_stream,unique"`
	StreamID  string    `gorm:"column:stream_id;type:uuid;index:idx_grants_user_stream,unique"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (StreamGrant) TableName() string {
	return "stream_grants"
}

func (g *StreamGrant) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = uuid.NewString()
	}
	return nil
}
