package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"youthstream/palco/internal/common"
	"youthstream/palco/internal/models/dtos"
	"youthstream/palco/internal/services"
)

// Admin user management. All handlers here sit behind
// IsAdminMiddleware; the role check has already happened.

func ListUsersHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		users, err := userSvc.ListUsers(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list users", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", users)
	}
}

func CreateUserHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateUserReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		user, err := userSvc.CreateUser(r.Context(), req)
		if err != nil {
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		common.RespondSuccess(w, initTime, "User created", user, http.StatusCreated)
	}
}

func UpdateUserHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		userID := chi.URLParam(r, "id")

		var req dtos.UpdateUserReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		user, err := userSvc.UpdateUser(r.Context(), userID, req)
		if err != nil {
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		common.RespondSuccess(w, initTime, "User updated", user)
	}
}

func DeleteUserHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		userID := chi.URLParam(r, "id")

		if err := userSvc.DeleteUser(r.Context(), userID); err != nil {
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		common.RespondSuccess(w, initTime, "User deleted", nil)
	}
}

// Admin stream management.

func CreateStreamHandler(streamSvc *services.StreamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateStreamReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		stream, err := streamSvc.CreateStream(r.Context(), req)
		if err != nil {
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		common.RespondSuccess(w, initTime, "Stream created", stream, http.StatusCreated)
	}
}

func UpdateStreamHandler(streamSvc *services.StreamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		streamID := chi.URLParam(r, "id")

		var req dtos.UpdateStreamReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		stream, err := streamSvc.UpdateStream(r.Context(), streamID, req)
		if err != nil {
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		common.RespondSuccess(w, initTime, "Stream updated", stream)
	}
}

func DeleteStreamHandler(streamSvc *services.StreamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		streamID := chi.URLParam(r, "id")

		if err := streamSvc.DeleteStream(r.Context(), streamID); err != nil {
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		common.RespondSuccess(w, initTime, "Stream deleted", nil)
	}
}

// AccessLogHandler handles GET /api/admin/access-log: the denial
// diagnostics that stay invisible to end users.
func AccessLogHandler(accessLog *services.AccessLogService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		common.RespondSuccess(w, initTime, "", accessLog.Recent())
	}
}
