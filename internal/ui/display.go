package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/meliem/commitsum/internal/analyzer"
)

// ShowTitle displays the application banner
func ShowTitle(output io.Writer) error {
	cyan := color.New(color.FgCyan)
	blue := color.New(color.FgBlue)

	_, err := cyan.Fprintln(output, "🧠 Commit Summarizer")
	if err != nil {
		return err
	}
	_, err = blue.Fprintln(output, "Intelligent commit message generator for Git")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(output)
	return err
}

// ShowAnalysis displays the diff analysis results
func ShowAnalysis(summary analyzer.ChangeSummary, categories, functions []string, branch string, output io.Writer) error {
	yellow := color.New(color.FgYellow)

	_, err := yellow.Fprintln(output, "📊 Analysis of changes:")
	if err != nil {
		return err
	}

	if branch != "" {
		if _, err := fmt.Fprintf(output, "  • Branch: %s\n", branch); err != nil {
			return err
		}
	}

	lines := []string{
		fmt.Sprintf("  • Files modified: %d", summary.FilesChanged),
		fmt.Sprintf("  • Lines added: %d", summary.Additions),
		fmt.Sprintf("  • Lines deleted: %d", summary.Deletions),
		fmt.Sprintf("  • File types: %s", joinOrDash(summary.FileTypes)),
		fmt.Sprintf("  • Categories: %s", joinOrDash(categories)),
	}
	if len(functions) > 0 {
		lines = append(lines, fmt.Sprintf("  • Functions: %s", strings.Join(functions, ", ")))
	}

	for _, line := range lines {
		if _, err := fmt.Fprintln(output, line); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(output)
	return err
}

// ShowCommitMessage displays a formatted commit message
func ShowCommitMessage(message string, output io.Writer) error {
	green := color.New(color.FgGreen)
	cyan := color.New(color.FgCyan)

	_, err := green.Fprintln(output, "✨ Suggested commit message:")
	if err != nil {
		return err
	}

	_, err = cyan.Fprintln(output, "─────────────────────────────")
	if err != nil {
		return err
	}

	_, err = fmt.Fprintln(output, message)
	if err != nil {
		return err
	}

	_, err = cyan.Fprintln(output, "─────────────────────────────")
	return err
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
