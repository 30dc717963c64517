// File: internal/services/reply_service_test.go
package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatapp-backend/internal/domain"
	"chatapp-backend/internal/services/ai"
)

// fakeProvider records the prompt it was given and returns a canned reply
// or error.
type fakeProvider struct {
	reply string
	err   error
	turns []ai.Turn
}

func (f *fakeProvider) Complete(ctx context.Context, turns []ai.Turn) (string, error) {
	f.turns = turns
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func TestGenerateReply_PromptAssembly(t *testing.T) {
	provider := &fakeProvider{reply: "generated"}
	svc := NewReplyService(provider, &NoOpLogger{})

	history := []domain.Message{
		{Content: "hello", IsUser: true},
		{Content: "hi there", IsUser: false},
		{Content: "tell me more", IsUser: true},
	}

	reply := svc.GenerateReply(context.Background(), "continue", history)
	assert.Equal(t, "generated", reply)

	require.Len(t, provider.turns, 5)
	assert.Equal(t, ai.RoleSystem, provider.turns[0].Role)
	assert.Equal(t, ai.RoleUser, provider.turns[1].Role)
	assert.Equal(t, ai.RoleAssistant, provider.turns[2].Role)
	assert.Equal(t, ai.RoleUser, provider.turns[3].Role)
	assert.Equal(t, ai.RoleUser, provider.turns[4].Role)
	assert.Equal(t, "continue", provider.turns[4].Content)
}

func TestGenerateReply_NoHistory(t *testing.T) {
	provider := &fakeProvider{reply: "generated"}
	svc := NewReplyService(provider, &NoOpLogger{})

	reply := svc.GenerateReply(context.Background(), "hello", nil)
	assert.Equal(t, "generated", reply)
	require.Len(t, provider.turns, 2)
	assert.Equal(t, ai.RoleSystem, provider.turns[0].Role)
	assert.Equal(t, ai.RoleUser, provider.turns[1].Role)
}

func TestGenerateReply_FallbackOnProviderFailure(t *testing.T) {
	provider := &fakeProvider{err: errors.New("network down")}
	svc := NewReplyService(provider, &NoOpLogger{})

	reply := svc.GenerateReply(context.Background(), "continue", nil)
	assert.Equal(t, FallbackReply, reply)
	assert.NotEmpty(t, reply)
}
