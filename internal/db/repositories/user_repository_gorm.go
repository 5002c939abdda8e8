package repositories

import (
	"context"
	"errors"
	"fmt"

	gormModels "youthstream/palco/internal/models/gorm"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a looked-up record does not exist.
// Callers translate it to a 404 on admin paths.
var ErrNotFound = errors.New("record not found")

type UserRepositoryGORM struct {
	db *gorm.DB
}

// NewUserRepositoryGORM creates a new GORM-based user repository
func NewUserRepositoryGORM(db *gorm.DB) *UserRepositoryGORM {
	return &UserRepositoryGORM{db: db}
}

// GetByID retrieves a user with profile and stream grants preloaded.
func (r *UserRepositoryGORM) GetByID(ctx context.Context, id string) (*gormModels.User, error) {
	var user gormModels.User

	err := r.db.WithContext(ctx).
		Preload("Profile").
		Preload("StreamGrants").
		Where("id = ?", id).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// GetByEmail retrieves a user by email with profile preloaded.
func (r *UserRepositoryGORM) GetByEmail(ctx context.Context, email string) (*gormModels.User, error) {
	var user gormModels.User

	err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ?", email).
		First(&user).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}

	return &user, nil
}

// List returns all users with profiles and grants, newest first.
func (r *UserRepositoryGORM) List(ctx context.Context) ([]gormModels.User, error) {
	var users []gormModels.User

	err := r.db.WithContext(ctx).
		Preload("Profile").
		Preload("StreamGrants").
		Order("created_at DESC").
		Find(&users).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Create inserts the user together with its profile in one transaction.
func (r *UserRepositoryGORM) Create(ctx context.Context, user *gormModels.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Update persists the mutable columns of an already-loaded user row.
func (r *UserRepositoryGORM) Update(ctx context.Context, user *gormModels.User) error {
	err := r.db.WithContext(ctx).
		Model(&gormModels.User{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":      user.Email,
			"password":   user.Password,
			"role":       user.Role,
			"is_active":  user.IsActive,
			"expires_at": user.ExpiresAt,
		}).Error

	if err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// UpdateProfile persists profile fields for the given user.
func (r *UserRepositoryGORM) UpdateProfile(ctx context.Context, profile *gormModels.Profile) error {
	res := r.db.WithContext(ctx).
		Model(&gormModels.Profile{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"full_name":  profile.FullName,
			"avatar_url": profile.AvatarURL,
			"bio":        profile.Bio,
			"phone":      profile.Phone,
			"city":       profile.City,
			"country":    profile.Country,
		})

	if res.Error != nil {
		return fmt.Errorf("failed to update profile: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Delete removes the user; profile and grants cascade in one
// transaction. History rows (donations, chat) keep their user_id.
func (r *UserRepositoryGORM) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&gormModels.Profile{}).Error; err != nil {
			return fmt.Errorf("failed to delete profile: %w", err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&gormModels.StreamGrant{}).Error; err != nil {
			return fmt.Errorf("failed to delete grants: %w", err)
		}

		res := tx.Where("id = ?", id).Delete(&gormModels.User{})
		if res.Error != nil {
			return fmt.Errorf("failed to delete user: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// ReplaceGrants swaps the user's allow-list for the given stream ids.
func (r *UserRepositoryGORM) ReplaceGrants(ctx context.Context, userID string, streamIDs []string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).Delete(&gormModels.StreamGrant{}).Error; err != nil {
			return fmt.Errorf("failed to clear grants: %w", err)
		}

		for _, streamID := range streamIDs {
			grant := gormModels.StreamGrant{UserID: userID, StreamID: streamID}
			if err := tx.Create(&grant).Error; err != nil {
				return fmt.Errorf("failed to create grant: %w", err)
			}
		}
		return nil
	})
}

// ListByIDedRole returns the users among ids that carry the role.
func (r *UserRepositoryGORM) ListByIDedRole(ctx context.Context, ids []string, role string) ([]gormModels.User, error) {
	var users []gormModels.User

	err := r.db.WithContext(ctx).
		Preload("Profile").
		Where("id IN ? AND role = ?", ids, role).
		Find(&users).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list users by role: %w", err)
	}
	return users, nil
}
