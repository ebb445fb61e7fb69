package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var categoryVocabulary = map[string]bool{
	CategoryFeat:     true,
	CategoryFix:      true,
	CategoryDocs:     true,
	CategoryTest:     true,
	CategoryStyle:    true,
	CategoryBuild:    true,
	CategoryCI:       true,
	CategoryRefactor: true,
	CategoryConfig:   true,
	CategoryChore:    true,
}

func TestCategorize_PathRules(t *testing.T) {
	tests := []struct {
		name  string
		paths []string
		want  string
	}{
		{"readme", []string{"README.md"}, CategoryDocs},
		{"docs directory", []string{"docs/guide.rst"}, CategoryDocs},
		{"test file", []string{"pkg/parser_test.go"}, CategoryTest},
		{"spec file", []string{"app.spec.ts"}, CategoryTest},
		{"stylesheet", []string{"assets/site.css"}, CategoryStyle},
		{"theme file", []string{"themes/dark.go"}, CategoryStyle},
		{"package manifest", []string{"package.json"}, CategoryBuild},
		{"makefile", []string{"Makefile"}, CategoryBuild},
		{"github workflow", []string{".github/workflows/release.yml"}, CategoryCI},
		{"travis", []string{".travis.yml"}, CategoryCI},
		{"yaml config", []string{"deploy/values.yaml"}, CategoryConfig},
		{"toml config", []string{"pyproject.toml"}, CategoryConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories := Categorize("", tt.paths)
			assert.Contains(t, categories, tt.want)
		})
	}
}

func TestCategorize_ContentRules(t *testing.T) {
	tests := []struct {
		name string
		diff string
		want string
	}{
		{"fix keyword", "+// fix off-by-one in cursor", CategoryFix},
		{"bug keyword", "+handle the bug in retry", CategoryFix},
		{"exception keyword", "+raise ValueError # exception path", CategoryFix},
		{"feature keyword", "+implement pagination", CategoryFeat},
		{"refactor keyword", "+refactor the session store", CategoryRefactor},
		{"optimize keyword", "+optimize hot loop", CategoryRefactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			categories := Categorize(tt.diff, []string{"core/engine.go"})
			assert.Contains(t, categories, tt.want)
		})
	}
}

func TestCategorize_MultiLabel(t *testing.T) {
	diff := "+fix crash when config is missing\n+add new loader"
	paths := []string{"README.md", "loader_test.py"}

	categories := Categorize(diff, paths)

	assert.Contains(t, categories, CategoryDocs)
	assert.Contains(t, categories, CategoryTest)
	assert.Contains(t, categories, CategoryFix)
	assert.Contains(t, categories, CategoryFeat)
	assert.NotContains(t, categories, CategoryChore)
}

func TestCategorize_DefaultChore(t *testing.T) {
	// Paths and content that match no rule
	categories := Categorize("+x = 1\n-x = 2", []string{"core/engine.zig"})

	assert.Equal(t, []string{CategoryChore}, categories)
}

func TestCategorize_ChoreNeverCombined(t *testing.T) {
	categories := Categorize("+implement parser", []string{"core/engine.zig"})

	assert.Contains(t, categories, CategoryFeat)
	assert.NotContains(t, categories, CategoryChore)
}

func TestCategorize_CaseInsensitive(t *testing.T) {
	assert.Contains(t, Categorize("", []string{"Docs/INDEX.MD"}), CategoryDocs)
	assert.Contains(t, Categorize("+FIXED the crash", []string{"a.zig"}), CategoryFix)
}

func TestCategorize_DeterministicAndTotal(t *testing.T) {
	inputs := []struct {
		diff  string
		paths []string
	}{
		{"", nil},
		{"", []string{}},
		{"+add feature", []string{"main.go"}},
		{"-removed", []string{"README.md", ".github/ci.yml", "style.css"}},
	}

	for _, in := range inputs {
		first := Categorize(in.diff, in.paths)
		second := Categorize(in.diff, in.paths)

		require.NotEmpty(t, first)
		assert.Equal(t, first, second)
		for _, label := range first {
			assert.True(t, categoryVocabulary[label], "label %q outside vocabulary", label)
		}
	}
}
