package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Supported providers
var supportedProviders = map[string]bool{
	"openai":   true,
	"deepseek": true,
	"ollama":   true,
	"gemini":   true,
	"grok":     true,
}

// SupportedProviders returns a list of supported providers
func SupportedProviders() []string {
	providers := make([]string, 0, len(supportedProviders))
	for p := range supportedProviders {
		providers = append(providers, p)
	}
	return providers
}

// Supported message styles
var supportedStyles = map[string]bool{
	"descriptive":  true,
	"conventional": true,
	"ai":           true,
}

// SupportedStyles returns a list of supported message styles
func SupportedStyles() []string {
	styles := make([]string, 0, len(supportedStyles))
	for s := range supportedStyles {
		styles = append(styles, s)
	}
	return styles
}

// Config represents the application configuration
type Config struct {
	DefaultModel string                 `yaml:"default_model" mapstructure:"default_model"`
	Models       map[string]ModelConfig `yaml:"models" mapstructure:"models"`
	Language     string                 `yaml:"language" mapstructure:"language"`
	Style        string                 `yaml:"style" mapstructure:"style"`
	Generation   *GenerationConfig      `yaml:"generation" mapstructure:"generation"`
}

// GenerationConfig controls the AI message generation request
type GenerationConfig struct {
	MaxDiffChars   int `yaml:"max_diff_chars" mapstructure:"max_diff_chars"`   // Diff truncation budget for the prompt
	TimeoutSeconds int `yaml:"timeout_seconds" mapstructure:"timeout_seconds"` // Deadline for a single generation call
}

// DefaultGenerationConfig returns the default generation configuration
func DefaultGenerationConfig() *GenerationConfig {
	return &GenerationConfig{
		MaxDiffChars:   2000,
		TimeoutSeconds: 30,
	}
}

// Validate validates the generation configuration
func (g *GenerationConfig) Validate() error {
	if g.MaxDiffChars < 0 {
		return fmt.Errorf("max_diff_chars must be non-negative")
	}
	if g.TimeoutSeconds < 0 {
		return fmt.Errorf("timeout_seconds must be non-negative")
	}
	return nil
}

// ModelConfig represents a single model configuration
type ModelConfig struct {
	Provider string `yaml:"provider" mapstructure:"provider"`
	APIKey   string `yaml:"api_key" mapstructure:"api_key"`
	Model    string `yaml:"model" mapstructure:"model"`
	BaseURL  string `yaml:"base_url" mapstructure:"base_url"`
}

// Validate validates the model configuration
func (m *ModelConfig) Validate() error {
	if m.Provider == "" {
		return fmt.Errorf("provider is required")
	}
	if !supportedProviders[m.Provider] {
		return fmt.Errorf("unsupported provider: %s", m.Provider)
	}
	if m.Model == "" {
		return fmt.Errorf("model is required")
	}
	// API key is required for all providers except ollama
	if m.Provider != "ollama" && m.APIKey == "" {
		return fmt.Errorf("api_key is required for provider %s", m.Provider)
	}
	return nil
}

// Validate validates the entire configuration
func (c *Config) Validate() error {
	// Validate default model exists when models are configured
	if c.DefaultModel != "" {
		if _, ok := c.Models[c.DefaultModel]; !ok {
			return fmt.Errorf("default model '%s' not found in models configuration", c.DefaultModel)
		}
	}

	// Validate each model
	for name, model := range c.Models {
		if err := model.Validate(); err != nil {
			return fmt.Errorf("invalid model '%s': %w", name, err)
		}
	}

	if c.Style != "" && !supportedStyles[c.Style] {
		return fmt.Errorf("unsupported style '%s' (expected one of: descriptive, conventional, ai)", c.Style)
	}

	if c.Generation != nil {
		if err := c.Generation.Validate(); err != nil {
			return fmt.Errorf("invalid generation configuration: %w", err)
		}
	}

	return nil
}

// GetModel returns the model configuration by name
// Priority: parameter > env variable (COMMITSUM_MODEL) > default_model
func (c *Config) GetModel(modelName string) (*ModelConfig, error) {
	// If modelName is empty, check env variable
	if modelName == "" {
		modelName = os.Getenv("COMMITSUM_MODEL")
	}

	// If still empty, use default model
	if modelName == "" {
		modelName = c.DefaultModel
	}

	// If still empty, return error
	if modelName == "" {
		return nil, fmt.Errorf("no model specified and no default model configured")
	}

	model, ok := c.Models[modelName]
	if !ok {
		return nil, fmt.Errorf("model '%s' not found in configuration", modelName)
	}

	// Expand environment variables in API key
	model.APIKey = expandEnv(model.APIKey)

	return &model, nil
}

// GetLanguage returns the language to use
// Priority: parameter > env variable (COMMITSUM_LANG) > config file > default (en)
func (c *Config) GetLanguage(langParam string) string {
	if langParam != "" {
		return langParam
	}

	if envLang := os.Getenv("COMMITSUM_LANG"); envLang != "" {
		return envLang
	}

	if c.Language != "" {
		return c.Language
	}

	return "en"
}

// GetStyle returns the message style to use
// Priority: parameter > env variable (COMMITSUM_STYLE) > config file > default (descriptive)
func (c *Config) GetStyle(styleParam string) string {
	if styleParam != "" {
		return styleParam
	}

	if envStyle := os.Getenv("COMMITSUM_STYLE"); envStyle != "" {
		return envStyle
	}

	if c.Style != "" {
		return c.Style
	}

	return "descriptive"
}

// GetGenerationConfig returns the generation configuration with defaults applied
func (c *Config) GetGenerationConfig() *GenerationConfig {
	if c.Generation == nil {
		return DefaultGenerationConfig()
	}
	// Apply defaults for unset values
	defaults := DefaultGenerationConfig()
	if c.Generation.MaxDiffChars <= 0 {
		c.Generation.MaxDiffChars = defaults.MaxDiffChars
	}
	if c.Generation.TimeoutSeconds <= 0 {
		c.Generation.TimeoutSeconds = defaults.TimeoutSeconds
	}
	return c.Generation
}

// expandEnv expands environment variables in the format ${VAR} or $VAR
func expandEnv(s string) string {
	// Handle ${VAR} format
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		envName := s[2 : len(s)-1]
		return os.Getenv(envName)
	}
	// Handle $VAR format
	if strings.HasPrefix(s, "$") {
		envName := s[1:]
		return os.Getenv(envName)
	}
	return s
}

// LoadFromFile loads configuration from a file
func LoadFromFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// Default returns the built-in configuration used when no config file is
// found. It carries no models, which leaves the rule-based styles fully
// functional and disables the ai style until a provider is configured.
func Default() *Config {
	return &Config{
		Language:   "en",
		Style:      "descriptive",
		Generation: DefaultGenerationConfig(),
	}
}

// Load loads configuration with the following priority:
// 1. Custom path if provided
// 2. Current directory .commitsum.yaml
// 3. Home directory ~/.commitsum.yaml
// 4. Built-in defaults
//
// A .env file in the current directory is loaded first so API keys
// referenced as ${VAR} in the config resolve from it.
func Load(customPath string) (*Config, error) {
	// Best effort; a missing .env file is the normal case
	_ = godotenv.Load()

	// If custom path is provided, use it exclusively
	if customPath != "" {
		return LoadFromFile(customPath)
	}

	// Try current directory first
	if cfg, err := LoadFromFile(".commitsum.yaml"); err == nil {
		return cfg, nil
	}

	// Try home directory
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return Default(), nil
	}

	homeCfgPath := filepath.Join(homeDir, ".commitsum.yaml")
	if cfg, err := LoadFromFile(homeCfgPath); err == nil {
		return cfg, nil
	}

	return Default(), nil
}
