package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meliem/commitsum/internal/analyzer"
)

func TestShowAnalysis(t *testing.T) {
	output := &bytes.Buffer{}

	summary := analyzer.ChangeSummary{
		FilesChanged: 2,
		Additions:    10,
		Deletions:    4,
		FileTypes:    []string{"go", "md"},
		FilePaths:    []string{"main.go", "README.md"},
	}
	categories := []string{"docs", "feat"}
	functions := []string{"Parse", "Render"}

	err := ShowAnalysis(summary, categories, functions, "main", output)
	require.NoError(t, err)

	out := output.String()
	assert.Contains(t, out, "Branch: main")
	assert.Contains(t, out, "Files modified: 2")
	assert.Contains(t, out, "Lines added: 10")
	assert.Contains(t, out, "Lines deleted: 4")
	assert.Contains(t, out, "go, md")
	assert.Contains(t, out, "docs, feat")
	assert.Contains(t, out, "Parse, Render")
}

func TestShowAnalysis_EmptyCollections(t *testing.T) {
	output := &bytes.Buffer{}

	err := ShowAnalysis(analyzer.ChangeSummary{}, nil, nil, "", output)
	require.NoError(t, err)

	out := output.String()
	assert.Contains(t, out, "File types: -")
	assert.Contains(t, out, "Categories: -")
	assert.NotContains(t, out, "Branch:")
	assert.NotContains(t, out, "Functions:")
}

func TestShowCommitMessage(t *testing.T) {
	output := &bytes.Buffer{}

	err := ShowCommitMessage("feat: add diff parser", output)
	require.NoError(t, err)

	out := output.String()
	assert.Contains(t, out, "Suggested commit message:")
	assert.Contains(t, out, "feat: add diff parser")
}

func TestShowTitle(t *testing.T) {
	output := &bytes.Buffer{}

	err := ShowTitle(output)
	require.NoError(t, err)
	assert.Contains(t, output.String(), "Commit Summarizer")
}
