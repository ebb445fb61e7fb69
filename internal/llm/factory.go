package llm

import (
	"fmt"

	"github.com/meliem/commitsum/internal/config"
)

// ProviderFactory creates LLM providers based on configuration
type ProviderFactory struct{}

// NewProviderFactory creates a new ProviderFactory
func NewProviderFactory() *ProviderFactory {
	return &ProviderFactory{}
}

// Create creates a Provider based on the model configuration
func (f *ProviderFactory) Create(cfg config.ModelConfig) (Provider, error) {
	if cfg.Provider == "gemini" {
		return newGeminiProvider(cfg), nil
	}
	if _, ok := openAIEndpoints[cfg.Provider]; ok {
		return newOpenAICompatProvider(cfg.Provider, cfg), nil
	}
	return nil, fmt.Errorf("unsupported provider: %s", cfg.Provider)
}

// CreateFromConfig resolves the named model (empty means the configured
// default) and creates its provider. A model whose API key resolved to
// empty is rejected here so the caller sees one error instead of a failing
// request later.
func (f *ProviderFactory) CreateFromConfig(appCfg *config.Config, modelName string) (Provider, error) {
	modelCfg, err := appCfg.GetModel(modelName)
	if err != nil {
		return nil, err
	}
	if requiresAPIKey(modelCfg.Provider) && modelCfg.APIKey == "" {
		return nil, fmt.Errorf("no API key configured for model '%s'", modelCfg.Model)
	}
	return f.Create(*modelCfg)
}
