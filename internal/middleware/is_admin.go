package middleware

import (
	"net/http"

	"youthstream/palco/internal/auth"
	"youthstream/palco/internal/constants"
)

// IsAdminMiddleware gates the back-office routes. Runs after
// OptionalAuth; the role is a hard precondition before any admin data
// is read or written.
func IsAdminMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {

			claims := auth.GetUserClaims(r.Context())
			if claims == nil {
				http.Error(w, constants.MsgLoginRequired, http.StatusUnauthorized)
				return
			}

			if !claims.IsAdmin() {
				http.Error(w, constants.MsgAccessDenied, http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
