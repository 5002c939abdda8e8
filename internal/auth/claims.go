package auth

import "youthstream/palco/internal/constants"

// UserClaims is what the middleware resolves a credential into.
// Handlers only ever see this interface, never the raw token.
type UserClaims interface {
	UserID() string
	Role() string
	Source() string
	IsAdmin() bool
}

// JWTClaims backs UserClaims for bearer-token callers.
type JWTClaims struct {
	UserUUID  string
	RoleValue constants.UserRole
}

func (c *JWTClaims) UserID() string { return c.UserUUID }
func (c *JWTClaims) Role() string   { return string(c.RoleValue) }
func (c *JWTClaims) Source() string { return "JWT" }
func (c *JWTClaims) IsAdmin() bool  { return c.RoleValue == constants.RoleAdmin }
