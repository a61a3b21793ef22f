package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"campusinfo/internal/database"
	"campusinfo/internal/service"

	"github.com/rs/zerolog"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload != nil {
		_ = json.NewEncoder(w).Encode(payload)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// respondError maps service and storage errors onto HTTP statuses. Anything
// unrecognized is a 500 and gets logged with its real cause; the client only
// sees a generic message.
func respondError(w http.ResponseWriter, logger *zerolog.Logger, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		writeError(w, http.StatusBadRequest, userMessage(err, service.ErrValidation))
	case errors.Is(err, database.ErrDuplicate):
		writeError(w, http.StatusBadRequest, "Resource already exists")
	case errors.Is(err, service.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, service.ErrInvalidToken):
		writeError(w, http.StatusUnauthorized, "Invalid or expired token")
	case errors.Is(err, service.ErrForbidden):
		writeError(w, http.StatusForbidden, userMessage(err, service.ErrForbidden))
	case errors.Is(err, database.ErrNotFound):
		writeError(w, http.StatusNotFound, "Not found")
	case errors.Is(err, database.ErrAlreadyReviewed):
		writeError(w, http.StatusConflict, "Request has already been reviewed")
	default:
		logger.Error().Err(err).Msg("request failed")
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// userMessage strips the sentinel prefix so the client sees only the
// human-readable part of a wrapped validation error.
func userMessage(err, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if len(msg) > len(prefix) && msg[:len(prefix)] == prefix {
		return msg[len(prefix):]
	}
	return msg
}

func decodeBody(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return service.ErrValidation
	}
	return nil
}
