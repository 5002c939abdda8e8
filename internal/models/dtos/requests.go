package dtos

// Auth

type RegisterReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
}

type LoginReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ResetPasswordReq struct {
	Email       string `json:"email"`
	NewPassword string `json:"newPassword"`
}

// Profile

type UpdateProfileReq struct {
	FullName  *string `json:"fullName"`
	AvatarURL *string `json:"avatarUrl"`
	Bio       *string `json:"bio"`
	Phone     *string `json:"phone"`
	City      *string `json:"city"`
	Country   *string `json:"country"`
}

// Admin: users

type CreateUserReq struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type UpdateUserReq struct {
	FullName  *string  `json:"fullName"`
	Role      *string  `json:"role"`
	Password  *string  `json:"password"`
	IsActive  *bool    `json:"isActive"`
	ExpiresAt *string  `json:"expiresAt"`
	StreamIDs []string `json:"streamIds"`
}

// Admin: streams

type CreateStreamReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	SourceType  string `json:"sourceType"`
	SourceURL   string `json:"sourceUrl"`
	Thumbnail   string `json:"thumbnail"`
	Category    string `json:"category"`
	IsLive      *bool  `json:"isLive"`
	AccessLevel string `json:"accessLevel"`
	AccessCode  string `json:"accessCode"`
}

type UpdateStreamReq struct {
	Title       *string `json:"title"`
	Description *string `json:"description"`
	SourceURL   *string `json:"sourceUrl"`
	Thumbnail   *string `json:"thumbnail"`
	Category    *string `json:"category"`
	IsLive      *bool   `json:"isLive"`
	AccessLevel *string `json:"accessLevel"`
}

// Admin: VIP provisioning

type CreateVipUserReq struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Phone     string   `json:"phone"`
	City      string   `json:"city"`
	Country   string   `json:"country"`
	Password  string   `json:"password"`
	ExpiresAt *string  `json:"expiresAt"`
	SendEmail *bool    `json:"sendEmail"`
	StreamIDs []string `json:"streamIds"`
}

type NotifyVipReq struct {
	UserIDs []string `json:"userIds"`
}

// Donations

type CreateDonationReq struct {
	Amount     int64  `json:"amount"`
	Method     string `json:"method"`
	Identifier string `json:"identifier"`
	Name       string `json:"name"`
}

// Chat

type PostChatMessageReq struct {
	Text string `json:"text"`
}
