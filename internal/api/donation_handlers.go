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

// ListDonationsHandler handles GET /api/donations
func ListDonationsHandler(donationSvc *services.DonationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		donations, err := donationSvc.List(r.Context())
		if err != nil {
			common.RespondError(w, initTime, err, "Failed to list donations", http.StatusInternalServerError)
			return
		}

		common.RespondSuccess(w, initTime, "", donations)
	}
}

// CreateDonationHandler handles POST /api/donations. Works for
// anonymous donors; logged-in donors get the record tied to their
// account.
func CreateDonationHandler(donationSvc *services.DonationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.CreateDonationReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, err, "Invalid request body", http.StatusBadRequest)
			return
		}

		userID := ""
		if claims := auth.GetUserClaims(r.Context()); claims != nil {
			userID = claims.UserID()
		}

		donation, err := donationSvc.Record(r.Context(), req, userID)
		if err != nil {
			code, msg := mapServiceError(err)
			common.RespondError(w, initTime, err, msg, code)
			return
		}

		common.RespondSuccess(w, initTime, "Donation recorded", donation, http.StatusCreated)
	}
}
