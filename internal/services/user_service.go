package services

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"time"

	"golang.org/x/crypto/bcrypt"

	"youthstream/palco/internal/constants"
	"youthstream/palco/internal/db/repositories"
	"youthstream/palco/internal/logging"
	"youthstream/palco/internal/models/dtos"
	gormModels "youthstream/palco/internal/models/gorm"
)

// UserService is the admin back-office path for user management plus
// the self-service profile operations.
type UserService struct {
	userRepo   *repositories.UserRepositoryGORM
	streamRepo *repositories.StreamRepositoryGORM
}

func NewUserService(userRepo *repositories.UserRepositoryGORM, streamRepo *repositories.StreamRepositoryGORM) *UserService {
	return &UserService{userRepo: userRepo, streamRepo: streamRepo}
}

func (svc *UserService) ListUsers(ctx context.Context) ([]dtos.UserResponse, error) {
	users, err := svc.userRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]dtos.UserResponse, 0, len(users))
	for i := range users {
		out = append(out, UserToResponse(&users[i]))
	}
	return out, nil
}

// CreateUser is the admin create path; unlike self-registration it may
// set any role.
func (svc *UserService) CreateUser(ctx context.Context, req dtos.CreateUserReq) (*dtos.UserResponse, error) {
	if _, err := mail.ParseAddress(req.Email); err != nil {
		return nil, fmt.Errorf("%w: invalid email", ErrValidation)
	}
	if len(req.Password) < 6 {
		return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
	}
	if len(req.FullName) < 2 {
		return nil, fmt.Errorf("%w: full name must be at least 2 characters", ErrValidation)
	}

	role := constants.UserRole(req.Role)
	if req.Role == "" {
		role = constants.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, req.Role)
	}

	if _, err := svc.userRepo.GetByEmail(ctx, req.Email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &gormModels.User{
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
		IsActive: true,
		Profile:  &gormModels.Profile{FullName: req.FullName},
	}

	if err := svc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logging.Info("User created by admin", "user_id", user.ID, "role", string(role))
	resp := UserToResponse(user)
	return &resp, nil
}

// UpdateUser applies a partial admin update: role, password, active
// flag, expiry, name, and the stream allow-list.
func (svc *UserService) UpdateUser(ctx context.Context, userID string, req dtos.UpdateUserReq) (*dtos.UserResponse, error) {
	user, err := svc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Role != nil {
		role := constants.UserRole(*req.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", ErrValidation, *req.Role)
		}
		user.Role = role
	}

	if req.Password != nil {
		if len(*req.Password) < 6 {
			return nil, fmt.Errorf("%w: password must be at least 6 characters", ErrValidation)
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*req.Password), bcryptCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hash)
	}

	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}

	if req.ExpiresAt != nil {
		if *req.ExpiresAt == "" {
			user.ExpiresAt = nil
		} else {
			ts, err := time.Parse(time.RFC3339, *req.ExpiresAt)
			if err != nil {
				return nil, fmt.Errorf("%w: expiresAt must be RFC3339", ErrValidation)
			}
			user.ExpiresAt = &ts
		}
	}

	if err := svc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	if req.FullName != nil {
		profile := &gormModels.Profile{UserID: user.ID, FullName: *req.FullName}
		if user.Profile != nil {
			profile = user.Profile
			profile.FullName = *req.FullName
		}
		if err := svc.userRepo.UpdateProfile(ctx, profile); err != nil && !errors.Is(err, repositories.ErrNotFound) {
			return nil, err
		}
	}

	if req.StreamIDs != nil {
		// Only keep ids that still exist; the allow-list is not
		// enforced atomically against stream deletion.
		existing, err := svc.streamRepo.GetByIDs(ctx, req.StreamIDs)
		if err != nil {
			return nil, err
		}
		ids := make([]string, 0, len(existing))
		for i := range existing {
			ids = append(ids, existing[i].ID)
		}
		if err := svc.userRepo.ReplaceGrants(ctx, user.ID, ids); err != nil {
			return nil, err
		}
	}

	updated, err := svc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	logging.Info("User updated by admin", "user_id", userID)
	resp := UserToResponse(updated)
	return &resp, nil
}

func (svc *UserService) DeleteUser(ctx context.Context, userID string) error {
	if err := svc.userRepo.Delete(ctx, userID); err != nil {
		return err
	}
	logging.Info("User deleted by admin", "user_id", userID)
	return nil
}

// GetProfile returns the caller's own profile.
func (svc *UserService) GetProfile(ctx context.Context, userID string) (*dtos.ProfileResponse, error) {
	user, err := svc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Profile == nil {
		return nil, repositories.ErrNotFound
	}

	return &dtos.ProfileResponse{
		FullName:  user.Profile.FullName,
		AvatarURL: user.Profile.AvatarURL,
		Bio:       user.Profile.Bio,
		Phone:     user.Profile.Phone,
		City:      user.Profile.City,
		Country:   user.Profile.Country,
	}, nil
}

// UpdateProfile is the self-service path; it can never touch role,
// active flag, expiry, or grants.
func (svc *UserService) UpdateProfile(ctx context.Context, userID string, req dtos.UpdateProfileReq) (*dtos.ProfileResponse, error) {
	user, err := svc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.Profile == nil {
		return nil, repositories.ErrNotFound
	}

	profile := user.Profile
	if req.FullName != nil {
		if len(*req.FullName) < 2 {
			return nil, fmt.Errorf("%w: full name must be at least 2 characters", ErrValidation)
		}
		profile.FullName = *req.FullName
	}
	if req.AvatarURL != nil {
		profile.AvatarURL = *req.AvatarURL
	}
	if req.Bio != nil {
		if len(*req.Bio) > 500 {
			return nil, fmt.Errorf("%w: bio must be at most 500 characters", ErrValidation)
		}
		profile.Bio = *req.Bio
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.City != nil {
		profile.City = *req.City
	}
	if req.Country != nil {
		profile.Country = *req.Country
	}

	if err := svc.userRepo.UpdateProfile(ctx, profile); err != nil {
		return nil, err
	}

	return &dtos.ProfileResponse{
		FullName:  profile.FullName,
		AvatarURL: profile.AvatarURL,
		Bio:       profile.Bio,
		Phone:     profile.Phone,
		City:      profile.City,
		Country:   profile.Country,
	}, nil
}
