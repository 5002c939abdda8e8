package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"youthstream/palco/internal/access"
	"youthstream/palco/internal/auth"
	"youthstream/palco/internal/common"
	"youthstream/palco/internal/constants"
	"youthstream/palco/internal/services"
)

// ListStreamsHandler handles GET /api/streams. Anonymous callers get
// the public subset; the filter preserves catalog order.
func ListStreamsHandler(streamSvc *services.StreamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		identity := auth.GetIdentity(r.Context())

		streams, err := streamSvc.Catalog(r.Context(), identity)
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to load catalog", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", streams)
	}
}

// GetStreamHandler handles GET /api/streams/{id}. The access decision
// runs server-side on every request; the listing filter is never the
// gate. Denied callers get the same generic body whether they are the
// wrong tier or off the allow-list.
func GetStreamHandler(streamSvc *services.StreamService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		streamID := chi.URLParam(r, "id")
		identity := auth.GetIdentity(r.Context())

		stream, decision, err := streamSvc.GetStream(r.Context(), identity, streamID)
		if err != nil {
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		switch decision {
		case access.Allow:
			common.RespondSuccess(w, initTime, "", stream)
		case access.RequireLogin:
			common.RespondError(w, initTime, nil, constants.MsgLoginRequired, http.StatusUnauthorized)
		default:
			common.RespondError(w, initTime, nil, constants.MsgAccessDenied, http.StatusForbidden)
		}
	}
}
