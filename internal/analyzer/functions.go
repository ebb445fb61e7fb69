package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

// functionPattern recognizes one surface syntax for a function declaration on
// an added diff line. The name function digs the identifier out of the match
// groups, since the interesting group differs per syntax.
type functionPattern struct {
	re   *regexp.Regexp
	name func(groups []string) string
}

func firstGroup(groups []string) string {
	for _, g := range groups[1:] {
		if g != "" {
			return g
		}
	}
	return ""
}

// Shallow per-language declaration patterns, tried in order with the first
// match winning. These are textual heuristics, not parsers: they will both
// miss and over-report names on nontrivial code, and that is the intended
// trade-off.
var functionPatterns = []functionPattern{
	// Python: def name( / async def name(
	{
		re:   regexp.MustCompile(`^\+\s*(?:async\s+)?def\s+([A-Za-z0-9_]+)\s*\(`),
		name: firstGroup,
	},
	// JavaScript: function declarations, function-valued const/let/var
	// bindings, and object-literal method shorthand
	{
		re:   regexp.MustCompile(`^\+\s*(?:async\s+)?function\s+([A-Za-z0-9_$]+)|^\+\s*(?:const|let|var)\s+([A-Za-z0-9_$]+)\s*=\s*(?:async\s*)?(?:function\b|\()|^\+\s*([A-Za-z0-9_$]+)\s*:\s*(?:async\s*)?\(`),
		name: firstGroup,
	},
	// Java / C#: optional modifier, return type, name(
	{
		re: regexp.MustCompile(`^\+\s*(public|private|protected|static)?\s*\w+\s+([A-Za-z0-9_]+)\s*\(`),
		name: func(groups []string) string {
			return groups[2]
		},
	},
	// C / C++: one or more type tokens followed by name(
	{
		re: regexp.MustCompile(`^\+\s*(?:\w+\s+)+([A-Za-z0-9_]+)\s*\(`),
		name: func(groups []string) string {
			return groups[1]
		},
	},
}

// ExtractFunctions scans the added lines of a diff for function declarations
// and returns the sorted set of identifiers found. Each line contributes at
// most one name, taken from the first pattern that matches it.
func ExtractFunctions(diffText string) []string {
	names := map[string]bool{}

	for _, line := range strings.Split(diffText, "\n") {
		if !strings.HasPrefix(line, "+") || strings.HasPrefix(line, "+++") {
			continue
		}
		for _, pattern := range functionPatterns {
			groups := pattern.re.FindStringSubmatch(line)
			if groups == nil {
				continue
			}
			if name := pattern.name(groups); name != "" {
				names[name] = true
			}
			break
		}
	}

	functions := make([]string, 0, len(names))
	for name := range names {
		functions = append(functions, name)
	}
	sort.Strings(functions)
	return functions
}
