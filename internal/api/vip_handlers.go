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

// CreateVipUserHandler handles POST /api/admin/vip/users
func CreateVipUserHandler(vipSvc *services.VipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateVipUserReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := vipSvc.CreateVipUser(r.Context(), req)
		if err != nil {
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		common.RespondSuccess(w, initTime, "VIP user created", resp, http.StatusCreated)
	}
}

// NotifyVipHandler handles POST /api/admin/vip/streams/{id}/notify
func NotifyVipHandler(vipSvc *services.VipService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		streamID := chi.URLParam(r, "id")

		var req dtos.NotifyVipReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		resp, err := vipSvc.NotifyStream(r.Context(), streamID, req.UserIDs)
		if err != nil {
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		common.RespondSuccess(w, initTime, resp.Message, resp)
	}
}
