// File: internal/handlers/chat_handler.go
package handlers

import (
	"encoding/json"
	"net/http"

	"chatapp-backend/internal/middleware"
	"chatapp-backend/internal/services"
)

// ChatHandler serves conversation, message and AI-generation endpoints.
type ChatHandler struct {
	ChatService *services.ChatService
}

func NewChatHandler(chatService *services.ChatService) *ChatHandler {
	return &ChatHandler{ChatService: chatService}
}

type createConversationRequest struct {
	UserID uint   `json:"user_id"`
	Title  string `json:"title"`
}

type createMessageRequest struct {
	ConversationID uint   `json:"conversation_id"`
	Content        string `json:"content"`
	// Defaults to true when omitted, matching the frontend contract.
	IsUser *bool `json:"is_user"`
}

type generateRequest struct {
	ConversationID uint   `json:"conversation_id"`
	Message        string `json:"message"`
}

// CreateConversation creates a conversation for the authenticated user.
func (h *ChatHandler) CreateConversation(w http.ResponseWriter, r *http.Request) {
	currentUser, ok := middleware.CurrentUser(r.Context())
	if !ok {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createConversationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.Title == "" {
		writeError(w, "title is required", http.StatusBadRequest)
		return
	}

	created, err := h.ChatService.CreateConversation(r.Context(), currentUser.ID, req.UserID, req.Title)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

// GetConversationMessages lists a conversation's messages in creation
// order.
func (h *ChatHandler) GetConversationMessages(w http.ResponseWriter, r *http.Request) {
	currentUser, ok := middleware.CurrentUser(r.Context())
	if !ok {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conversationID, err := pathID(r, "id")
	if err != nil {
		writeError(w, "invalid conversation ID", http.StatusBadRequest)
		return
	}

	offset, limit := pageParams(r)
	messages, err := h.ChatService.GetMessages(r.Context(), currentUser.ID, conversationID, offset, limit)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, messages)
}

// DeleteConversation removes a conversation and all of its messages.
func (h *ChatHandler) DeleteConversation(w http.ResponseWriter, r *http.Request) {
	currentUser, ok := middleware.CurrentUser(r.Context())
	if !ok {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	conversationID, err := pathID(r, "id")
	if err != nil {
		writeError(w, "invalid conversation ID", http.StatusBadRequest)
		return
	}

	if err := h.ChatService.DeleteConversation(r.Context(), currentUser.ID, conversationID); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// CreateMessage stores a message in one of the caller's conversations.
func (h *ChatHandler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	currentUser, ok := middleware.CurrentUser(r.Context())
	if !ok {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req createMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ConversationID == 0 || req.Content == "" {
		writeError(w, "conversation_id and content are required", http.StatusBadRequest)
		return
	}

	isUser := true
	if req.IsUser != nil {
		isUser = *req.IsUser
	}

	created, err := h.ChatService.CreateMessage(r.Context(), currentUser.ID, req.ConversationID, req.Content, isUser)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}

// GenerateReply asks the AI module for a reply to the given message, using
// the conversation's recent history as context, and persists the result as
// an assistant message.
func (h *ChatHandler) GenerateReply(w http.ResponseWriter, r *http.Request) {
	currentUser, ok := middleware.CurrentUser(r.Context())
	if !ok {
		writeError(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if req.ConversationID == 0 || req.Message == "" {
		writeError(w, "conversation_id and message are required", http.StatusBadRequest)
		return
	}

	created, err := h.ChatService.GenerateReply(r.Context(), currentUser.ID, req.ConversationID, req.Message)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, created)
}
