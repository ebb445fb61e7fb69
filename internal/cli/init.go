package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

const defaultConfigTemplate = `# Commitsum Configuration File

# Default language for commit messages (en, fr, es, de, zh, ja)
language: en

# Default message style (descriptive, conventional, ai)
style: descriptive

# Default model to use for the ai style (must match a key in the models section)
default_model: openai

# LLM Model configurations (only needed for the ai style)
models:
  openai:
    provider: openai
    api_key: ${OPENAI_API_KEY}
    model: gpt-4o-mini
    # base_url: https://api.openai.com/v1  # optional, uses default

  # Deepseek
  # deepseek:
  #   provider: deepseek
  #   api_key: ${DEEPSEEK_API_KEY}
  #   model: deepseek-chat

  # Ollama (local, no API key)
  # ollama:
  #   provider: ollama
  #   model: llama3.2
  #   base_url: http://localhost:11434/v1

  # Google Gemini
  # gemini:
  #   provider: gemini
  #   api_key: ${GOOGLE_API_KEY}
  #   model: gemini-2.0-flash-exp

  # xAI Grok
  # grok:
  #   provider: grok
  #   api_key: ${XAI_API_KEY}
  #   model: grok-beta

# AI generation tuning
# generation:
#   max_diff_chars: 2000   # diff excerpt size embedded in the prompt
#   timeout_seconds: 30    # deadline for a single generation call
`

var (
	initForce bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize commitsum configuration",
	Long: `Create a default configuration file (~/.commitsum.yaml).

This command creates a template configuration file with example settings
for various LLM providers. The rule-based styles work without any
configuration; edit the file and add an API key to enable the ai style.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to get home directory: %w", err)
		}

		configPath := filepath.Join(homeDir, ".commitsum.yaml")

		// Check if file exists
		if _, err := os.Stat(configPath); err == nil && !initForce {
			return fmt.Errorf("config file already exists: %s\nUse --force to overwrite", configPath)
		}

		// Write config file
		err = os.WriteFile(configPath, []byte(defaultConfigTemplate), 0600)
		if err != nil {
			return fmt.Errorf("failed to write config file: %w", err)
		}

		fmt.Printf("✅ Configuration file created: %s\n", configPath)
		fmt.Println("\nNext steps:")
		fmt.Println("  1. Edit the config file and add your API keys (only for the ai style)")
		fmt.Println("  2. Set environment variables for sensitive keys (recommended)")
		fmt.Println("  3. Run 'commitsum suggest' to generate a commit message")

		return nil
	},
}

func init() {
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite existing config file")
	rootCmd.AddCommand(initCmd)
}
