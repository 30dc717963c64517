// File: internal/handlers/routes.go
package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"chatapp-backend/internal/middleware"
)

// RouterConfig carries everything the router needs from the composition
// root.
type RouterConfig struct {
	AuthHandler       *AuthHandler
	UserHandler       *UserHandler
	ChatHandler       *ChatHandler
	UserResolver      middleware.UserResolver
	CORSAllowedOrigin string
}

// NewRouter assembles all routes and middleware. The ambient middleware
// wraps the router itself so CORS preflights and unmatched paths still pass
// through it; everything under the protected subrouter additionally goes
// through bearer-token authentication.
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// --- Public routes ---
	r.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "API is running"})
	}).Methods("GET")
	r.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	}).Methods("GET")
	r.HandleFunc("/api/auth/signup", cfg.AuthHandler.Signup).Methods("POST")
	r.HandleFunc("/api/auth/login", cfg.AuthHandler.Login).Methods("POST")

	// --- Protected routes ---
	api := r.PathPrefix("/api").Subrouter()
	api.Use(middleware.NewAuthMiddleware(cfg.UserResolver))

	api.HandleFunc("/users/me", cfg.UserHandler.GetMe).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}", cfg.UserHandler.GetUser).Methods("GET")
	api.HandleFunc("/users/{id:[0-9]+}/conversations", cfg.UserHandler.GetUserConversations).Methods("GET")

	api.HandleFunc("/conversations", cfg.ChatHandler.CreateConversation).Methods("POST")
	api.HandleFunc("/conversations/{id:[0-9]+}/messages", cfg.ChatHandler.GetConversationMessages).Methods("GET")
	api.HandleFunc("/conversations/{id:[0-9]+}", cfg.ChatHandler.DeleteConversation).Methods("DELETE")

	api.HandleFunc("/messages", cfg.ChatHandler.CreateMessage).Methods("POST")
	api.HandleFunc("/ai/generate", cfg.ChatHandler.GenerateReply).Methods("POST")

	var handler http.Handler = r
	handler = middleware.Logging(handler)
	handler = middleware.RequestID(handler)
	handler = middleware.RecoverPanic(handler)
	handler = middleware.CORS(cfg.CORSAllowedOrigin)(handler)
	return handler
}
