// File: internal/handlers/helpers.go
package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"chatapp-backend/internal/auth"
	"chatapp-backend/internal/domain"
)

// writeJSON is a helper for sending JSON responses.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError is a helper for sending JSON error responses.
func writeError(w http.ResponseWriter, message string, status int) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps domain errors onto HTTP statuses in one place so
// handlers stay small.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUsernameTaken):
		writeError(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidCredentials), errors.Is(err, auth.ErrInvalidToken):
		writeError(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, domain.ErrUserNotFound), errors.Is(err, domain.ErrConversationNotFound):
		writeError(w, err.Error(), http.StatusNotFound)
	default:
		writeError(w, "internal server error", http.StatusInternalServerError)
	}
}

// maxPageLimit mirrors the repositories' page-size cap so an oversized
// ?limit never reaches them as an error.
const maxPageLimit = 1000

// pageParams reads optional offset/limit query parameters. Zero values let
// the repository apply its defaults; out-of-range values are clamped.
func pageParams(r *http.Request) (offset, limit int) {
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			offset = n
		}
	}
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
			if limit > maxPageLimit {
				limit = maxPageLimit
			}
		}
	}
	return offset, limit
}
