// Package llm adapts the configured chat-completion providers to the single
// capability the composer needs: one prompt in, one text completion out.
package llm

import (
	"context"

	"github.com/cloudwego/eino/components/model"
)

// Provider builds a chat model for one configured backend.
type Provider interface {
	// Name returns the provider name
	Name() string

	// CreateChatModel creates an Eino ChatModel instance
	CreateChatModel(ctx context.Context) (model.ChatModel, error)
}
