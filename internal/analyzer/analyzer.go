// Package analyzer turns raw unified-diff text into structured change
// information: line statistics, heuristic change categories, and the names
// of functions touched by added lines.
package analyzer

import (
	"regexp"
	"sort"
	"strings"
)

// ChangeSummary holds the parsed statistics of a single diff.
type ChangeSummary struct {
	FilesChanged int               // Number of files touched
	Additions    int               // Added content lines (prefix "+", not "+++")
	Deletions    int               // Removed content lines (prefix "-", not "---")
	FileTypes    []string          // Sorted set of lower-cased extensions, without the dot
	FilePaths    []string          // Touched paths in diff order
	FileContents map[string]string // Per-file slice of the diff, keyed by path
}

// fileHeaderPattern matches the start of a per-file section in a unified diff
var fileHeaderPattern = regexp.MustCompile(`^diff --git a/(.+) b/(.+)$`)

// Parse analyzes unified-diff text and returns a ChangeSummary.
//
// It walks the diff line by line, opening a new file record on each
// "diff --git" header and counting added/removed content lines. Header and
// hunk-marker lines are ignored for counting but are captured, together with
// the content lines, into the per-file diff slice. Empty input is a valid
// diff and yields a summary with zero counts and empty collections.
func Parse(diffText string) ChangeSummary {
	summary := ChangeSummary{
		FileTypes:    []string{},
		FilePaths:    []string{},
		FileContents: map[string]string{},
	}

	if diffText == "" {
		return summary
	}

	fileTypes := map[string]bool{}
	var currentFile string
	var content strings.Builder

	flush := func() {
		if currentFile != "" {
			summary.FileContents[currentFile] = content.String()
			content.Reset()
		}
	}

	for _, line := range strings.Split(diffText, "\n") {
		if m := fileHeaderPattern.FindStringSubmatch(line); m != nil {
			flush()
			currentFile = m[2]
			summary.FilesChanged++
			summary.FilePaths = append(summary.FilePaths, currentFile)
			if ext := fileExtension(currentFile); ext != "" {
				fileTypes[ext] = true
			}
		} else if strings.HasPrefix(line, "+") && !strings.HasPrefix(line, "+++") {
			summary.Additions++
		} else if strings.HasPrefix(line, "-") && !strings.HasPrefix(line, "---") {
			summary.Deletions++
		}
		if currentFile != "" {
			content.WriteString(line)
			content.WriteByte('\n')
		}
	}
	flush()

	for ext := range fileTypes {
		summary.FileTypes = append(summary.FileTypes, ext)
	}
	sort.Strings(summary.FileTypes)

	return summary
}

// fileExtension returns the lower-cased extension of path without the dot,
// or "" when the filename has no extension.
func fileExtension(path string) string {
	base := path
	if idx := strings.LastIndexByte(path, '/'); idx >= 0 {
		base = path[idx+1:]
	}
	idx := strings.LastIndexByte(base, '.')
	if idx <= 0 || idx == len(base)-1 {
		return ""
	}
	return strings.ToLower(base[idx+1:])
}

// HasType reports whether the summary touched a file with the given extension.
func (s ChangeSummary) HasType(ext string) bool {
	for _, t := range s.FileTypes {
		if t == ext {
			return true
		}
	}
	return false
}
