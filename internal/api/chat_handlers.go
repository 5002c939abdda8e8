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

// ListChatHandler handles GET /api/chat
func ListChatHandler(chatSvc *services.ChatService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		messages, err := chatSvc.Recent(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load chat", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", messages)
	}
}

// PostChatHandler handles POST /api/chat. Requires auth; the sender
// identity comes from the resolved claims, never the body.
func PostChatHandler(chatSvc *services.ChatService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		claims := auth.GetUserClaims(r.Context())
		if claims == nil {
			common.RespondError(w, initTime, nil, "Login required", http.StatusUnauthorized)
			return
		}

		var req dtos.PostChatMessageReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		msg, err := chatSvc.Post(r.Context(), claims.UserID(), req)
		if err != nil {
			code, m := mapServiceError(err)
			common.RespondError(w, initTime, err, m, code)
			return
		}

		common.RespondSuccess(w, initTime, "", msg, http.StatusCreated)
	}
}
