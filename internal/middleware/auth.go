package middleware

import (
	"errors"
	"net/http"
	"strings"

	"youthstream/palco/internal/auth"
	"youthstream/palco/internal/constants"
	"youthstream/palco/internal/db/repositories"
	"youthstream/palco/internal/logging"
	"youthstream/palco/internal/services"
)

// OptionalAuth resolves a bearer token into user claims when one is
// present and valid. A missing, malformed, or expired token leaves the
// request anonymous; read endpoints downstream decide what anonymous
// callers may see. The identity is re-fetched from the datastore every
// request so role changes and deactivations take effect immediately.
func OptionalAuth(issuer *auth.TokenIssuer, userRepo *repositories.UserRepositoryGORM) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
			tokenClaims, err := issuer.Parse(tokenStr)
			if err != nil {
				// Invalid token is anonymous, not a request error.
				logging.Debug("Rejected bearer token", "error", err.Error())
				next.ServeHTTP(w, r)
				return
			}

			user, err := userRepo.GetByID(r.Context(), tokenClaims.UserID)
			if err != nil {
				if errors.Is(err, repositories.ErrNotFound) {
					// Token outlived the account.
					next.ServeHTTP(w, r)
					return
				}
				// Datastore failure must never resolve to an identity
				// or to anonymous-with-access; fail the request.
				logging.Error("Identity resolution failed", "error", err.Error())
				http.Error(w, "Internal Server Error", http.StatusInternalServerError)
				return
			}

			if !user.IsActive {
				// Soft-deleted accounts are anonymous for access
				// purposes.
				next.ServeHTTP(w, r)
				return
			}

			claims := &auth.JWTClaims{
				UserUUID:  user.ID,
				RoleValue: user.Role,
			}

			ctx := auth.SetUserClaims(r.Context(), claims)
			ctx = auth.SetIdentity(ctx, services.IdentityFromUser(user))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous callers. Must run after OptionalAuth.
func RequireAuth() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			if auth.GetUserClaims(r.Context()) == nil {
				http.Error(w, constants.MsgLoginRequired, http.StatusUnauthorized)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
