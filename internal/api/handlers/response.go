package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/hkust/smart-buddy/internal/domain"
	"github.com/hkust/smart-buddy/internal/token"
)

// Response is the envelope every endpoint answers with.
type Response struct {
	Status  int         `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

func respond(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(Response{
		Status:  status,
		Message: message,
		Data:    data,
	})
}

// respondError maps a service error onto its HTTP status. Unclassified
// errors become a generic 500 so storage details never leak.
func respondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound):
		respond(w, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, domain.ErrWrongPassword):
		respond(w, http.StatusUnauthorized, err.Error(), nil)
	case errors.Is(err, domain.ErrPasswordMismatch):
		respond(w, http.StatusBadRequest, err.Error(), nil)
	case errors.Is(err, domain.ErrUsernameExists):
		respond(w, http.StatusConflict, err.Error(), nil)
	case token.IsTokenError(err):
		respond(w, http.StatusUnauthorized, err.Error(), nil)
	default:
		respond(w, http.StatusInternalServerError, "Internal server error", nil)
	}
}

// respondValidation reports per-field validation failures in one shot.
func respondValidation(w http.ResponseWriter, fields map[string]string) {
	respond(w, http.StatusBadRequest, "Validation failed", fields)
}
