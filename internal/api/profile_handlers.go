package api

import (
	"encoding/json"
	"net/http"
	"time"

	"youthstream/palco/internal/auth"
	"youthstream/palco/internal/common"
	"youthstream/palco/internal/models/dtos"
	"youthstream/palco/internal/services"
)

// GetProfileHandler handles GET /api/profile/me
func GetProfileHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Login required", http.StatusUnauthorized)
			return
		}

		profile, err := userSvc.GetProfile(r.Context(), claims.UserID())
		if err != nil {
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		common.RespondSuccess(w, initTime, "", profile)
	}
}

// UpdateProfileHandler handles PUT /api/profile/me
func UpdateProfileHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Login required", http.StatusUnauthorized)
			return
		}

		var req dtos.UpdateProfileReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		profile, err := userSvc.UpdateProfile(r.Context(), claims.UserID(), req)
		if err != nil {
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		common.RespondSuccess(w, initTime, "Profile updated", profile)
	}
}
