// File: internal/middleware/auth.go
package middleware

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"chatapp-backend/internal/domain"
)

// UserResolver resolves a bearer token into the user it belongs to.
type UserResolver interface {
	ResolveUser(ctx context.Context, token string) (*domain.User, error)
}

// NewAuthMiddleware validates the Authorization: Bearer header, resolves
// the current user and attaches it to the request context. Downstream
// handlers are not invoked on failure.
func NewAuthMiddleware(resolver UserResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := bearerToken(r)
			if token == "" {
				unauthorized(w, "missing bearer token")
				return
			}

			currentUser, err := resolver.ResolveUser(r.Context(), token)
			if err != nil {
				log.Printf("[AuthMiddleware] token rejected: %v", err)
				unauthorized(w, "could not validate credentials")
				return
			}

			ctx := context.WithValue(r.Context(), UserKey, currentUser)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CurrentUser returns the authenticated user placed on the context by the
// auth middleware.
func CurrentUser(ctx context.Context) (*domain.User, bool) {
	currentUser, ok := ctx.Value(UserKey).(*domain.User)
	return currentUser, ok
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("WWW-Authenticate", "Bearer")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
