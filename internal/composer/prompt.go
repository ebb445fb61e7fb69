package composer

import (
	"fmt"
	"strings"
)

// commitSystemPrompt frames the generation request for the ai style
const commitSystemPrompt = `You are a Git commit message writer assistant. Your job is to create clear, concise, and informative commit messages based on the code changes.`

// buildCommitPrompt assembles the user prompt for the ai style: the summary
// statistics, categories and function names from the analysis, plus the diff
// body truncated to maxDiffChars.
func buildCommitPrompt(in Input, maxDiffChars int) string {
	summary := in.Summary

	fileTypes := "N/A"
	if len(summary.FileTypes) > 0 {
		fileTypes = strings.Join(summary.FileTypes, ", ")
	}
	categories := "N/A"
	if len(in.Categories) > 0 {
		categories = strings.Join(in.Categories, ", ")
	}

	var b strings.Builder
	b.WriteString("Generate a concise and informative Git commit message based on the following code changes:\n\n")
	b.WriteString("DIFF SUMMARY:\n")
	fmt.Fprintf(&b, "- Files changed: %d\n", summary.FilesChanged)
	fmt.Fprintf(&b, "- Lines added: %d\n", summary.Additions)
	fmt.Fprintf(&b, "- Lines deleted: %d\n", summary.Deletions)
	fmt.Fprintf(&b, "- File types: %s\n", fileTypes)
	fmt.Fprintf(&b, "- Categories: %s\n", categories)

	if len(in.Functions) > 0 {
		fmt.Fprintf(&b, "- Modified functions: %s", strings.Join(in.Functions[:min(len(in.Functions), 5)], ", "))
		if len(in.Functions) > 5 {
			fmt.Fprintf(&b, " and %d others", len(in.Functions)-5)
		}
		b.WriteString("\n")
	}

	b.WriteString("\nDIFF DETAILS:\n")
	b.WriteString(truncateDiff(in.DiffText, maxDiffChars))
	b.WriteString("\n\n")
	b.WriteString(`Please generate a concise commit message that clearly explains the purpose and impact of these changes.
If it's a feature, explain what was added. If it's a bug fix, explain what was fixed.
If it's a refactor, explain what was improved.

The message should be:
1. Informative but concise (50-75 characters for the subject line)
2. In the present tense (e.g., "Add feature" not "Added feature")
3. In English

If appropriate, use the conventional commit format (type: description).
`)

	return b.String()
}

// truncateDiff bounds the diff excerpt and marks the cut when it happens
func truncateDiff(diffText string, maxChars int) string {
	if len(diffText) <= maxChars {
		return diffText
	}
	return diffText[:maxChars] + "\n... (diff truncated)"
}
