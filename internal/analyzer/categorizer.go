package analyzer

import (
	"regexp"
	"sort"
)

// Categories used by the classifier. The categorizer only ever emits labels
// from this vocabulary.
const (
	CategoryFeat     = "feat"
	CategoryFix      = "fix"
	CategoryDocs     = "docs"
	CategoryTest     = "test"
	CategoryStyle    = "style"
	CategoryBuild    = "build"
	CategoryCI       = "ci"
	CategoryRefactor = "refactor"
	CategoryConfig   = "config"
	CategoryChore    = "chore"
)

// categoryRule maps a label to the patterns that trigger it. A rule with a
// path pattern fires when any touched path matches; a rule with a content
// pattern fires when the raw diff text matches. Rules are independent, so
// several labels can apply to the same diff.
type categoryRule struct {
	label   string
	path    *regexp.Regexp
	content *regexp.Regexp
}

var categoryRules = []categoryRule{
	{label: CategoryDocs, path: regexp.MustCompile(`(?i)README|docs|\.md$|documentation|wiki|\.(rst|txt)$`)},
	{label: CategoryTest, path: regexp.MustCompile(`(?i)test|spec|\.test\.|\.spec\.`)},
	{label: CategoryStyle, path: regexp.MustCompile(`(?i)\.css$|\.scss$|\.less$|style|theme`)},
	{label: CategoryBuild, path: regexp.MustCompile(`(?i)package\.json|requirements\.txt|setup\.py|Makefile|CMakeLists\.txt|webpack|build`)},
	{label: CategoryCI, path: regexp.MustCompile(`(?i)\.github|\.travis|\.gitlab|\.circleci|\.jenkins|\.azure`)},
	{label: CategoryConfig, path: regexp.MustCompile(`(?i)\.(json|ya?ml|toml|ini|conf)$`)},
	{label: CategoryFix, content: regexp.MustCompile(`(?i)fix|bug|issue|problem|error|crash|exception`)},
	{label: CategoryFeat, content: regexp.MustCompile(`(?i)feat|feature|add|new|implement`)},
	{label: CategoryRefactor, content: regexp.MustCompile(`(?i)refactor|clean|improve|enhance|optimize`)},
}

// Categorize assigns semantic labels to a diff based on the touched file
// paths and the raw diff content. Every matching rule contributes its label;
// when nothing matches the result is exactly [chore]. The returned slice is
// sorted and never empty.
func Categorize(diffText string, filePaths []string) []string {
	labels := map[string]bool{}

	for _, rule := range categoryRules {
		switch {
		case rule.path != nil:
			for _, path := range filePaths {
				if rule.path.MatchString(path) {
					labels[rule.label] = true
					break
				}
			}
		case rule.content != nil:
			if rule.content.MatchString(diffText) {
				labels[rule.label] = true
			}
		}
	}

	if len(labels) == 0 {
		return []string{CategoryChore}
	}

	categories := make([]string, 0, len(labels))
	for label := range labels {
		categories = append(categories, label)
	}
	sort.Strings(categories)
	return categories
}
