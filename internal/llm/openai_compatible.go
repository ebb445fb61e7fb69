package llm

import (
	"context"

	"github.com/cloudwego/eino-ext/components/model/openai"
	"github.com/cloudwego/eino/components/model"

	"github.com/meliem/commitsum/internal/config"
)

// endpoint describes one OpenAI-compatible backend. deepseek, ollama and
// grok all speak the OpenAI chat API and differ only in their default base
// URL and whether an API key is meaningful.
type endpoint struct {
	defaultBaseURL string
	placeholderKey string // set for backends that ignore the key (ollama)
}

var openAIEndpoints = map[string]endpoint{
	"openai":   {},
	"deepseek": {defaultBaseURL: "https://api.deepseek.com/v1"},
	"ollama":   {defaultBaseURL: "http://localhost:11434/v1", placeholderKey: "ollama"},
	"grok":     {defaultBaseURL: "https://api.x.ai/v1"},
}

// requiresAPIKey reports whether the named provider needs a real API key.
func requiresAPIKey(provider string) bool {
	return openAIEndpoints[provider].placeholderKey == ""
}

// openAICompatProvider implements Provider for every OpenAI-compatible
// backend in the endpoint table.
type openAICompatProvider struct {
	name string
	cfg  config.ModelConfig
}

func newOpenAICompatProvider(name string, cfg config.ModelConfig) *openAICompatProvider {
	ep := openAIEndpoints[name]
	if cfg.BaseURL == "" {
		cfg.BaseURL = ep.defaultBaseURL
	}
	if cfg.APIKey == "" {
		cfg.APIKey = ep.placeholderKey
	}
	return &openAICompatProvider{name: name, cfg: cfg}
}

// Name returns the provider name
func (p *openAICompatProvider) Name() string {
	return p.name
}

// CreateChatModel creates an Eino ChatModel over the OpenAI chat API
func (p *openAICompatProvider) CreateChatModel(ctx context.Context) (model.ChatModel, error) {
	cfg := &openai.ChatModelConfig{
		APIKey:  p.cfg.APIKey,
		Model:   p.cfg.Model,
		BaseURL: p.cfg.BaseURL,
	}

	return openai.NewChatModel(ctx, cfg)
}
