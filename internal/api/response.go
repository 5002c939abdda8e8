package api

import (
	"errors"
	"net/http"

	"youthstream/palco/internal/constants"
	"youthstream/palco/internal/db/repositories"
	"youthstream/palco/internal/services"
)

// mapServiceError translates service-layer sentinels to HTTP status
// codes and user-facing messages. Anything unrecognized is a 500 with
// a generic body.
func mapServiceError(err error) (int, string) {
	switch {
	case errors.Is(err, services.ErrValidation):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, services.ErrEmailTaken):
		return http.StatusConflict, constants.MsgEmailTaken
	case errors.Is(err, services.ErrInvalidCredentials):
		return http.StatusUnauthorized, constants.MsgInvalidCredentials
	case errors.Is(err, repositories.ErrNotFound):
		return http.StatusNotFound, "Not found"
	default:
		return http.StatusInternalServerError, "Internal error"
	}
}
