// File: internal/services/ai/openai_provider.go
package ai

import (
	"context"

	openai "github.com/sashabaranov/go-openai"
)

// OpenAIProvider talks to an OpenAI-compatible chat completion endpoint.
type OpenAIProvider struct {
	config *Config
	client *openai.Client
}

func NewOpenAIProvider(config *Config) (*OpenAIProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	clientConfig := openai.DefaultConfig(config.APIKey)
	if config.BaseURL != "" {
		clientConfig.BaseURL = config.BaseURL
	}

	return &OpenAIProvider{
		config: config,
		client: openai.NewClientWithConfig(clientConfig),
	}, nil
}

func (p *OpenAIProvider) Complete(ctx context.Context, turns []Turn) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, p.config.Timeout)
	defer cancel()

	messages := make([]openai.ChatCompletionMessage, 0, len(turns))
	for _, turn := range turns {
		messages = append(messages, openai.ChatCompletionMessage{
			Role:    turn.Role,
			Content: turn.Content,
		})
	}

	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       p.config.Model,
		Messages:    messages,
		MaxTokens:   p.config.MaxTokens,
		Temperature: p.config.Temperature,
	})
	if err != nil {
		return "", NewProviderError("completion", "failed to create completion", err)
	}

	if len(resp.Choices) == 0 || resp.Choices[0].Message.Content == "" {
		return "", NewProviderError("completion", "empty completion response", nil)
	}

	return resp.Choices[0].Message.Content, nil
}
