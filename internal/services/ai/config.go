// File: internal/services/ai/config.go
package ai

import (
	"fmt"
	"time"
)

type Config struct {
	APIKey  string
	BaseURL string
	Model   string

	// Sampling parameters. Bounded output, moderate randomness.
	MaxTokens   int
	Temperature float32

	Timeout time.Duration
}

func DefaultConfig() *Config {
	return &Config{
		Model:       "gpt-3.5-turbo",
		MaxTokens:   500,
		Temperature: 0.7,
		Timeout:     60 * time.Second,
	}
}

func (c *Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API key is required")
	}
	if c.Model == "" {
		return fmt.Errorf("model name is required")
	}
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max tokens must be positive")
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive")
	}
	return nil
}
