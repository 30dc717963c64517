// File: internal/middleware/constants.go
package middleware

// Context keys for middleware communication.
type contextKey string

const (
	UserKey      contextKey = "user"
	RequestIDKey contextKey = "request_id"
)
