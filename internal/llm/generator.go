package llm

import (
	"context"
	"fmt"
	"time"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"

	"github.com/meliem/commitsum/internal/log"
)

// ChatGenerator adapts an eino ChatModel to the composer's Generator
// capability: one prompt in, one text completion out. Every call runs as a
// single attempt under a bounded deadline; transient failures are the
// caller's cue to fall back, not to retry.
type ChatGenerator struct {
	chatModel model.ChatModel
	provider  string
	timeout   time.Duration
}

// NewChatGenerator creates a ChatGenerator backed by the given provider.
func NewChatGenerator(ctx context.Context, provider Provider, timeout time.Duration) (*ChatGenerator, error) {
	chatModel, err := provider.CreateChatModel(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat model for provider %s: %w", provider.Name(), err)
	}
	return &ChatGenerator{
		chatModel: chatModel,
		provider:  provider.Name(),
		timeout:   timeout,
	}, nil
}

// Generate sends a system and user prompt to the model and returns the text
// of the completion.
func (g *ChatGenerator) Generate(ctx context.Context, system, prompt string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	start := time.Now()
	log.DebugRequest("POST", g.provider, prompt)

	messages := []*schema.Message{
		{
			Role:    schema.System,
			Content: system,
		},
		{
			Role:    schema.User,
			Content: prompt,
		},
	}

	msg, err := g.chatModel.Generate(ctx, messages)
	if err != nil {
		return "", fmt.Errorf("generation via %s failed: %w", g.provider, err)
	}

	log.DebugDuration("generation", time.Since(start))
	log.DebugResponse(200, msg.Content)

	if msg.Content == "" {
		return "", fmt.Errorf("provider %s returned an empty completion", g.provider)
	}
	return msg.Content, nil
}
