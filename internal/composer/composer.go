// Package composer turns diff analysis results into commit message text.
// Two rule-based strategies (descriptive, conventional) work offline; the ai
// strategy delegates the wording to an injected text generator and silently
// falls back to the descriptive strategy when the generator is missing or
// failing.
package composer

import (
	"context"
	"fmt"
	"strings"

	"github.com/meliem/commitsum/internal/analyzer"
	"github.com/meliem/commitsum/internal/log"
	"github.com/meliem/commitsum/pkg/lang"
)

// Style selects the commit message strategy
type Style string

const (
	StyleDescriptive  Style = "descriptive"
	StyleConventional Style = "conventional"
	StyleAI           Style = "ai"
)

// ParseStyle parses a style name, defaulting to descriptive for unknown input
func ParseStyle(s string) Style {
	switch Style(s) {
	case StyleDescriptive, StyleConventional, StyleAI:
		return Style(s)
	default:
		return StyleDescriptive
	}
}

// Generator is the capability the ai style depends on: a single bounded
// text-generation call. A nil Generator means the capability is unavailable
// and the composer degrades to its rule-based strategies.
type Generator interface {
	Generate(ctx context.Context, system, prompt string) (string, error)
}

// Input carries everything the composer needs about one analyzed diff.
type Input struct {
	DiffText   string
	Summary    analyzer.ChangeSummary
	Categories []string
	Functions  []string
}

// Options configures a Composer
type Options struct {
	Generator    Generator // nil disables the ai style
	MaxDiffChars int       // Diff truncation budget for the prompt (0 = default)
}

// Composer composes commit messages from analyzed diffs
type Composer struct {
	gen          Generator
	maxDiffChars int
}

// DefaultMaxDiffChars bounds the diff excerpt embedded in generation prompts
const DefaultMaxDiffChars = 2000

// New creates a Composer
func New(opts Options) *Composer {
	maxDiffChars := opts.MaxDiffChars
	if maxDiffChars <= 0 {
		maxDiffChars = DefaultMaxDiffChars
	}
	return &Composer{
		gen:          opts.Generator,
		maxDiffChars: maxDiffChars,
	}
}

// commitTypePriority orders category labels by how strongly they should
// dominate the final message type.
var commitTypePriority = []string{
	analyzer.CategoryFix,
	analyzer.CategoryFeat,
	analyzer.CategoryTest,
	analyzer.CategoryDocs,
	analyzer.CategoryStyle,
	analyzer.CategoryRefactor,
	analyzer.CategoryBuild,
	analyzer.CategoryCI,
	analyzer.CategoryConfig,
	analyzer.CategoryChore,
}

// commitType picks the dominant commit type from a category set
func commitType(categories []string) string {
	present := map[string]bool{}
	for _, c := range categories {
		present[c] = true
	}
	for _, t := range commitTypePriority {
		if present[t] {
			return t
		}
	}
	return analyzer.CategoryChore
}

// Compose produces a commit message for the given style. It is total: every
// style yields a message, with the ai style degrading to descriptive on any
// generator failure.
func (c *Composer) Compose(ctx context.Context, in Input, style Style) string {
	switch style {
	case StyleAI:
		if message, err := c.composeAI(ctx, in); err == nil {
			return message
		} else {
			log.Warn("AI generation unavailable (%v), using descriptive style", err)
		}
		return c.composeDescriptive(in)
	case StyleConventional:
		return c.composeConventional(in)
	default:
		return c.composeDescriptive(in)
	}
}

// composeConventional builds a "type: description" message, with the
// description keyed off the dominant file-type family.
func (c *Composer) composeConventional(in Input) string {
	summary := in.Summary

	var description string
	switch {
	case summary.HasType("py"):
		description = "update Python code"
	case summary.HasType("js") || summary.HasType("ts"):
		description = "update JavaScript/TypeScript code"
	case summary.HasType("go"):
		description = "update Go code"
	case summary.HasType("css") || summary.HasType("scss"):
		description = "update styles"
	case summary.HasType("html"):
		description = "update HTML templates"
	case summary.HasType("md"):
		description = "update documentation"
	default:
		description = fmt.Sprintf("update %d file(s)", summary.FilesChanged)
	}

	return fmt.Sprintf("%s: %s", commitType(in.Categories), description)
}

// composeDescriptive builds a "Verb subject (A+ D-)" message naming up to
// three of the touched functions.
func (c *Composer) composeDescriptive(in Input) string {
	var verb string
	switch commitType(in.Categories) {
	case analyzer.CategoryFeat:
		verb = "Add"
	case analyzer.CategoryFix:
		verb = "Fix"
	case analyzer.CategoryRefactor:
		verb = "Refactor"
	case analyzer.CategoryDocs:
		verb = "Document"
	case analyzer.CategoryTest:
		verb = "Test"
	default:
		verb = "Update"
	}

	var subject string
	switch n := len(in.Functions); {
	case n == 1:
		subject = "function " + in.Functions[0]
	case n > 1:
		subject = "functions " + strings.Join(in.Functions[:min(n, 3)], ", ")
		if n > 3 {
			subject += fmt.Sprintf(" and %d others", n-3)
		}
	case in.Summary.FilesChanged == 1:
		subject = "one file"
	default:
		subject = fmt.Sprintf("%d files", in.Summary.FilesChanged)
	}

	return fmt.Sprintf("%s %s (%d+ %d-)", verb, subject, in.Summary.Additions, in.Summary.Deletions)
}

// composeAI asks the generator for the message. One attempt only; any error
// or empty response is returned for the caller to fall back on.
func (c *Composer) composeAI(ctx context.Context, in Input) (string, error) {
	if c.gen == nil {
		return "", fmt.Errorf("no text generator configured")
	}

	message, err := c.gen.Generate(ctx, commitSystemPrompt, buildCommitPrompt(in, c.maxDiffChars))
	if err != nil {
		return "", err
	}

	message = trimQuotePair(strings.TrimSpace(message))
	if message == "" {
		return "", fmt.Errorf("generator returned an empty message")
	}
	return message, nil
}

// Translate renders the message in the target language through the
// generator. On any failure the original message is returned unchanged.
func (c *Composer) Translate(ctx context.Context, message string, target lang.Language) string {
	if target == lang.English || c.gen == nil {
		return message
	}

	system := fmt.Sprintf("You are a translator. Translate the following Git commit message to %s. Respond with the translated message only.", target.DisplayName())
	translated, err := c.gen.Generate(ctx, system, message)
	if err != nil {
		log.Warn("translation failed (%v), keeping original message", err)
		return message
	}

	translated = strings.TrimSpace(translated)
	if translated == "" {
		return message
	}
	return trimQuotePair(translated)
}

// trimQuotePair strips one matching pair of surrounding quotes
func trimQuotePair(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if first == last && (first == '"' || first == '\'') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
