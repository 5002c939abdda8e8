package auth

import (
	"context"

	"youthstream/palco/internal/access"
)

type contextKey string

var userClaimsKey contextKey = "user_claims"
var identityKey contextKey = "identity"

func SetUserClaims(ctx context.Context, claims UserClaims) context.Context {
	return context.WithValue(ctx, userClaimsKey, claims)
}

// GetUserClaims returns the resolved claims or nil for an anonymous
// caller.
func GetUserClaims(ctx context.Context) UserClaims {
	val := ctx.Value(userClaimsKey)
	if claims, ok := val.(UserClaims); ok {
		return claims
	}
	return nil
}

// SetIdentity stores the access-control identity resolved for this
// request, expiry and allow-list included.
func SetIdentity(ctx context.Context, id *access.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentity returns the resolved identity or nil for an anonymous
// caller.
func GetIdentity(ctx context.Context) *access.Identity {
	val := ctx.Value(identityKey)
	if id, ok := val.(*access.Identity); ok {
		return id
	}
	return nil
}
