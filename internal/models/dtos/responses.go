package dtos

import "time"

// APIResponse is the standard envelope for every JSON endpoint.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

type UserResponse struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Role      string           `json:"role"`
	IsActive  bool             `json:"isActive"`
	ExpiresAt *time.Time       `json:"expiresAt,omitempty"`
	StreamIDs []string         `json:"streamIds,omitempty"`
	Profile   *ProfileResponse `json:"profile,omitempty"`
	CreatedAt time.Time        `json:"createdAt"`
}

type ProfileResponse struct {
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl,omitempty"`
	Bio       string `json:"bio,omitempty"`
	Phone     string `json:"phone,omitempty"`
	City      string `json:"city,omitempty"`
	Country   string `json:"country,omitempty"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type StreamResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	SourceType  string    `json:"sourceType"`
	SourceURL   string    `json:"sourceUrl"`
	Thumbnail   string    `json:"thumbnail"`
	Category    string    `json:"category"`
	IsLive      bool      `json:"isLive"`
	AccessLevel string    `json:"accessLevel"`
	Viewers     int       `json:"viewers"`
	CreatedAt   time.Time `json:"createdAt"`
}

// VipStreamLink is a private playback link handed to a provisioned
// VIP user.
type VipStreamLink struct {
	ID         string `json:"id"`
	Title      string `json:"title"`
	URL        string `json:"url"`
	AccessCode string `json:"accessCode"`
}

type CreateVipUserResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Role      string          `json:"role"`
	Streams   []VipStreamLink `json:"streams"`
	EmailSent bool            `json:"emailSent"`
}

type NotifyVipResponse struct {
	Message      string `json:"message"`
	TotalUsers   int    `json:"totalUsers"`
	SuccessCount int    `json:"successCount"`
}

type DonationResponse struct {
	ID        string    `json:"id"`
	Amount    int64     `json:"amount"`
	Method    string    `json:"method"`
	Name      string    `json:"name,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type ChatMessageResponse struct {
	ID        string    `json:"id"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	AvatarURL string    `json:"userAvatar,omitempty"`
	Text      string    `json:"text"`
	IsAdmin   bool      `json:"isAdmin,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// AccessLogEntry is one denial event kept for admin diagnostics.
type AccessLogEntry struct {
	UserID    string    `json:"userId,omitempty"`
	StreamID  string    `json:"streamId"`
	Decision  string    `json:"decision"`
	Reason    string    `json:"reason"`
	Timestamp time.Time `json:"timestamp"`
}
