// File: internal/handlers/auth_handler.go
package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"chatapp-backend/internal/services"
)

// AuthHandler holds the dependencies for signup and login.
type AuthHandler struct {
	UserService *services.UserService
}

func NewAuthHandler(userService *services.UserService) *AuthHandler {
	return &AuthHandler{UserService: userService}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenResponse matches the payload the frontend expects.
type tokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	UserID    uint   `json:"userId"`
}

// Signup creates a new account and returns a bearer token for it.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	if req.Username == "" || req.Password == "" {
		writeError(w, "username and password are required", http.StatusBadRequest)
		return
	}
	if len(req.Username) > 50 {
		writeError(w, "username must be 50 characters or less", http.StatusBadRequest)
		return
	}

	created, token, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		Token:     token,
		TokenType: "bearer",
		UserID:    created.ID,
	})
}

// Login verifies credentials and returns a bearer token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, "username and password are required", http.StatusBadRequest)
		return
	}

	found, token, err := h.UserService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, tokenResponse{
		Token:     token,
		TokenType: "bearer",
		UserID:    found.ID,
	})
}
