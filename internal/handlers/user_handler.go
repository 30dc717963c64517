// File: internal/handlers/user_handler.go
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"chatapp-backend/internal/middleware"
	"chatapp-backend/internal/services"
)

// UserHandler serves user profiles and per-user conversation listings.
type UserHandler struct {
	UserService *services.UserService
	ChatService *services.ChatService
}

func NewUserHandler(userService *services.UserService, chatService *services.ChatService) *UserHandler {
	return &UserHandler{UserService: userService, ChatService: chatService}
}

// GetMe returns the authenticated user's own profile.
func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	currentUser, ok := middleware.CurrentUser(r.Context())
	if !ok {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	writeJSON(w, http.StatusOK, currentUser)
}

// GetUser returns a user profile. Users may only fetch their own.
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	currentUser, ok := middleware.CurrentUser(r.Context())
	if !ok {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	found, err := h.UserService.GetUserByID(r.Context(), currentUser.ID, userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, found)
}

// GetUserConversations lists the conversations owned by a user. Users may
// only list their own.
func (h *UserHandler) GetUserConversations(w http.ResponseWriter, r *http.Request) {
	currentUser, ok := middleware.CurrentUser(r.Context())
	if !ok {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	userID, err := pathID(r, "id")
	if err != nil {
		writeError(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	offset, limit := pageParams(r)
	conversations, err := h.ChatService.ListConversations(r.Context(), currentUser.ID, userID, offset, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, conversations)
}

// pathID parses a numeric path variable.
func pathID(r *http.Request, name string) (uint, error) {
	id, err := strconv.ParseUint(mux.Vars(r)[name], 10, 32)
	return uint(id), err
}
