package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/meliem/commitsum/internal/analyzer"
	"github.com/meliem/commitsum/internal/composer"
	"github.com/meliem/commitsum/internal/config"
	"github.com/meliem/commitsum/internal/git"
	"github.com/meliem/commitsum/internal/llm"
	"github.com/meliem/commitsum/internal/log"
	"github.com/meliem/commitsum/internal/ui"
	"github.com/meliem/commitsum/pkg/lang"
)

var (
	suggestStyle    string
	suggestLanguage string
	suggestUnstaged bool
	suggestCommit   bool
	suggestAutoYes  bool
)

var suggestCmd = &cobra.Command{
	Use:   "suggest",
	Short: "Analyze changes and suggest a commit message",
	Long: `Analyze the staged changes (git diff --cached) and suggest a commit
message for them.

This command will:
1. Parse the diff into change statistics (files, additions, deletions)
2. Classify the change with heuristic category rules
3. Compose a message in the requested style

Styles:
  descriptive   "Add function parse_config (12+ 3-)" (default)
  conventional  "feat: update Python code"
  ai            Delegate the wording to the configured LLM provider;
                falls back to descriptive when no provider is usable

Examples:
  commitsum suggest
  commitsum suggest --style conventional
  commitsum suggest --unstaged
  commitsum suggest --style ai --commit`,
	RunE: runSuggest,
}

func init() {
	suggestCmd.Flags().StringVarP(&suggestStyle, "style", "s", "", "Message style: descriptive, conventional or ai")
	suggestCmd.Flags().StringVarP(&suggestLanguage, "language", "l", "", "Output language (en, fr, es, ...)")
	suggestCmd.Flags().BoolVarP(&suggestUnstaged, "unstaged", "u", false, "Analyze unstaged changes instead of staged ones")
	suggestCmd.Flags().BoolVarP(&suggestCommit, "commit", "c", false, "Create a commit with the suggested message")
	suggestCmd.Flags().BoolVarP(&suggestAutoYes, "yes", "y", false, "Auto-confirm the commit without prompting")
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(configFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	log.DebugConfig("Configuration", cfg)

	style := composer.ParseStyle(cfg.GetStyle(suggestStyle))
	language := lang.ParseLanguage(cfg.GetLanguage(suggestLanguage))

	log.Debug("Using style: %s, language: %s", style, language)

	// Get current working directory
	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get current directory: %w", err)
	}

	gitExec := git.NewExecutor(cwd)

	// Bail out before any analysis when this is not a git working copy
	if !gitExec.IsWorkTree(ctx) {
		return fmt.Errorf("not a git repository: %s", cwd)
	}

	if err := ui.ShowTitle(os.Stdout); err != nil {
		return err
	}

	// Get the diff for the requested scope
	var diff string
	if suggestUnstaged {
		diff, err = gitExec.Diff(ctx)
	} else {
		diff, err = gitExec.DiffCached(ctx)
	}
	if err != nil {
		return fmt.Errorf("failed to get changes: %w", err)
	}

	if strings.TrimSpace(diff) == "" {
		if suggestUnstaged {
			return fmt.Errorf("%w: make changes in the working tree first", git.ErrNoChanges)
		}
		return fmt.Errorf("%w: use 'git add' to stage files for commit", git.ErrNoChanges)
	}

	// Analyze the diff
	start := time.Now()
	summary := analyzer.Parse(diff)
	categories := analyzer.Categorize(diff, summary.FilePaths)
	functions := analyzer.ExtractFunctions(diff)
	log.DebugDuration("diff analysis", time.Since(start))

	branch, err := gitExec.CurrentBranch(ctx)
	if err != nil {
		log.Debug("could not determine current branch: %v", err)
		branch = ""
	}

	if err := ui.ShowAnalysis(summary, categories, functions, branch, os.Stdout); err != nil {
		return err
	}

	// The generator is only needed for the ai style. Any failure to set it
	// up degrades to the rule-based fallback instead of aborting.
	var generator composer.Generator
	if style == composer.StyleAI {
		generator = buildGenerator(ctx, cfg)
	}

	comp := composer.New(composer.Options{
		Generator:    generator,
		MaxDiffChars: cfg.GetGenerationConfig().MaxDiffChars,
	})

	input := composer.Input{
		DiffText:   diff,
		Summary:    summary,
		Categories: categories,
		Functions:  functions,
	}

	printer := ui.NewPrinter(os.Stdout)
	if style == composer.StyleAI && generator != nil {
		if err := printer.PrintProgress("Generating commit message..."); err != nil {
			return err
		}
	}

	message := comp.Compose(ctx, input, style)
	message = comp.Translate(ctx, message, language)

	if err := ui.ShowCommitMessage(message, os.Stdout); err != nil {
		return err
	}

	if !suggestCommit {
		return nil
	}

	if suggestUnstaged {
		return fmt.Errorf("cannot commit unstaged changes: use 'git add' first")
	}

	// Ask for confirmation (default is Yes)
	if !suggestAutoYes {
		confirmed, err := ui.ConfirmWithDefault("Do you want to commit with this message?", true, os.Stdin, os.Stdout)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Println("Commit cancelled.")
			return nil
		}
	}

	if err := gitExec.Commit(ctx, message); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}

	fmt.Println()
	return printer.PrintSuccess("Commit created successfully!")
}

// buildGenerator wires the configured LLM provider into a composer.Generator.
// Returns nil when no provider is usable, which disables the ai style.
func buildGenerator(ctx context.Context, cfg *config.Config) composer.Generator {
	provider, err := llm.NewProviderFactory().CreateFromConfig(cfg, modelName)
	if err != nil {
		log.Warn("ai style requested but no usable model: %v", err)
		return nil
	}

	log.Debug("Using provider: %s", provider.Name())

	timeout := time.Duration(cfg.GetGenerationConfig().TimeoutSeconds) * time.Second
	generator, err := llm.NewChatGenerator(ctx, provider, timeout)
	if err != nil {
		log.Warn("failed to create generator: %v", err)
		return nil
	}
	return generator
}
