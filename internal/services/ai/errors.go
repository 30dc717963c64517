// File: internal/services/ai/errors.go
package ai

import "fmt"

// ProviderError wraps failures of the external generation service so the
// caller can log the operation that failed without parsing vendor errors.
type ProviderError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *ProviderError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("AI provider error in %s: %s (caused by: %v)", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("AI provider error in %s: %s", e.Operation, e.Message)
}

func (e *ProviderError) Unwrap() error { return e.Cause }

func NewProviderError(operation, msg string, cause error) *ProviderError {
	return &ProviderError{Operation: operation, Message: msg, Cause: cause}
}
