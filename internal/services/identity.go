package services

import (
	"youthstream/palco/internal/access"
	gormModels "youthstream/palco/internal/models/gorm"
)

// IdentityFromUser projects a persisted user onto the value the
// access decision function consumes.
func IdentityFromUser(user *gormModels.User) *access.Identity {
	if user == nil {
		return nil
	}

	id := &access.Identity{
		ID:        user.ID,
		Role:      user.Role,
		Active:    user.IsActive,
		ExpiresAt: user.ExpiresAt,
	}

	if len(user.StreamGrants) > 0 {
		id.AllowedStreamIDs = make(map[string]struct{}, len(user.StreamGrants))
		for _, g := range user.StreamGrants {
			id.AllowedStreamIDs[g.StreamID] = struct{}{}
		}
	}

	return id
}

// StreamInfoOf projects a stream row for the decision function.
func StreamInfoOf(s *gormModels.Stream) access.StreamInfo {
	return access.StreamInfo{ID: s.ID, AccessLevel: s.AccessLevel}
}
