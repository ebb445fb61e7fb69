package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/gemini"
	"github.com/cloudwego/eino/components/model"
	"google.golang.org/genai"

	"github.com/meliem/commitsum/internal/config"
)

// geminiProvider implements Provider for Google Gemini, which has its own
// client instead of the OpenAI-compatible API.
type geminiProvider struct {
	cfg config.ModelConfig
}

func newGeminiProvider(cfg config.ModelConfig) *geminiProvider {
	return &geminiProvider{cfg: cfg}
}

// Name returns the provider name
func (p *geminiProvider) Name() string {
	return "gemini"
}

// CreateChatModel creates an Eino ChatModel for Gemini
func (p *geminiProvider) CreateChatModel(ctx context.Context) (model.ChatModel, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: p.cfg.APIKey,
	})
	if err != nil {
		return nil, err
	}

	cfg := &gemini.Config{
		Client: client,
		Model:  p.cfg.Model,
	}

	return gemini.NewChatModel(ctx, cfg)
}
