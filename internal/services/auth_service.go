package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"golang.org/x/crypto/bcrypt"

	"youthstream/palco/internal/auth"
	"youthstream/palco/internal/constants"
	"youthstream/palco/internal/db/repositories"
	"youthstream/palco/internal/logging"
	"youthstream/palco/internal/models/dtos"
	gormModels "youthstream/palco/internal/models/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrValidation         = errors.New("validation failed")
)

const bcryptCost = 10

// AuthService handles registration, login, and password reset.
type AuthService struct {
	userRepo *repositories.UserRepositoryGORM
	issuer   *auth.TokenIssuer
}

func NewAuthService(userRepo *repositories.UserRepositoryGORM, issuer *auth.TokenIssuer) *AuthService {
	return &AuthService{userRepo: userRepo, issuer: issuer}
}

// Register creates a USER-role account with a profile and returns it
// with a fresh token.
func (svc *AuthService) Register(ctx context.Context, req dtos.RegisterReq) (*dtos.AuthResponse, error) {
	if err := validateRegistration(req.Email, req.Password, req.FullName); err != nil {
		return nil, err
	}

	_, err := svc.userRepo.GetByEmail(ctx, req.Email)
	if err == nil {
		return nil, ErrEmailTaken
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, fmt.Errorf("duplicate check failed: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &gormModels.User{
		Email:    req.Email,
		Password: string(hash),
		Role:     constants.RoleUser,
		IsActive: true,
		Profile:  &gormModels.Profile{FullName: req.FullName},
	}

	if err := svc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logging.Info("User registered", "user_id", user.ID, "email", user.Email)
	return svc.authResponse(user)
}

// Login verifies credentials and issues a token. Unknown email and
// wrong password fail identically.
func (svc *AuthService) Login(ctx context.Context, req dtos.LoginReq) (*dtos.AuthResponse, error) {
	user, err := svc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	if !user.IsActive {
		return nil, ErrInvalidCredentials
	}

	return svc.authResponse(user)
}

// ResetPassword replaces the password for an existing account.
func (svc *AuthService) ResetPassword(ctx context.Context, req dtos.ResetPasswordReq) error {
	if len(req.NewPassword) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}

	user, err := svc.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	user.Password = string(hash)
	if err := svc.userRepo.Update(ctx, user); err != nil {
		return err
	}

	logging.Info("Password reset", "user_id", user.ID)
	return nil
}

func (svc *AuthService) authResponse(user *gormModels.User) (*dtos.AuthResponse, error) {
	token, err := svc.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	return &dtos.AuthResponse{
		User:  UserToResponse(user),
		Token: token,
	}, nil
}

func validateRegistration(email, password, fullName string) error {
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(password) < 6 {
		return fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	if len(fullName) < 2 {
		return fmt.Errorf("%w: full name must be at least 2 characters", ErrValidation)
	}
	return nil
}

// UserToResponse converts a persisted user into its API shape. The
// password hash never leaves the service layer.
func UserToResponse(user *gormModels.User) dtos.UserResponse {
	resp := dtos.UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		ExpiresAt: user.ExpiresAt,
		CreatedAt: user.CreatedAt,
	}

	for _, g := range user.StreamGrants {
		resp.StreamIDs = append(resp.StreamIDs, g.StreamID)
	}

	if user.Profile != nil {
		resp.Profile = &dtos.ProfileResponse{
			FullName:  user.Profile.FullName,
			AvatarURL: user.Profile.AvatarURL,
			Bio:       user.Profile.Bio,
			Phone:     user.Profile.Phone,
			City:      user.Profile.City,
			Country:   user.Profile.Country,
		}
	}

	return resp
}
