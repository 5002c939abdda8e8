package api

import (
	"encoding/json"
	"net/http"
	"time"

	"youthstream/palco/internal/common"
	"youthstream/palco/internal/metrics"
	"youthstream/palco/internal/models/dtos"
	"youthstream/palco/internal/services"
)

// RegisterHandler handles POST /api/auth/register
func RegisterHandler(authSvc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RegisterReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := authSvc.Register(r.Context(), req)
		if err != nil {
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		common.RespondSuccess(w, initTime, "Registered", resp, http.StatusCreated)
	}
}

// LoginHandler handles POST /api/auth/login
func LoginHandler(authSvc *services.AuthService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := authSvc.Login(r.Context(), req)
		if err != nil {
			metricsReg.LoginsTotal.WithLabelValues("failure").Inc()
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		metricsReg.LoginsTotal.WithLabelValues("success").Inc()
		common.RespondSuccess(w, initTime, "Logged in", resp)
	}
}

// ResetPasswordHandler handles POST /api/auth/reset-password
func ResetPasswordHandler(authSvc *services.AuthService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.ResetPasswordReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		if err := authSvc.ResetPassword(r.Context(), req); err != nil {
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		common.RespondSuccess(w, initTime, "Password updated", nil)
	}
}
