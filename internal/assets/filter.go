package assets

import (
	"fmt"
	"path"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ignoredNames are never published, wherever they appear in the tree.
var ignoredNames = map[string]bool{
	".git":         true,
	".ds_store":    true,
	"thumbs.db":    true,
	"desktop.ini":  true,
	"node_modules": true,
	".folio":       true,
}

func ignored(name string) bool { return ignoredNames[strings.ToLower(name)] }

// Filter selects assets by slash-separated path. A pattern matches when it
// matches the whole relative path or just the base name, so "*.jpg" picks
// up photographs at any depth.
type Filter struct {
	include []string
	exclude []string
}

// NewFilter validates the patterns. An empty include list accepts
// everything.
func NewFilter(include, exclude []string) (*Filter, error) {
	if err := ValidatePatterns(include); err != nil {
		return nil, err
	}
	if err := ValidatePatterns(exclude); err != nil {
		return nil, err
	}
	return &Filter{include: slashed(include), exclude: slashed(exclude)}, nil
}

// Match reports whether relPath is published.
func (f *Filter) Match(relPath string) bool {
	p := filepath.ToSlash(relPath)
	if len(f.include) > 0 && !anyMatch(f.include, p) {
		return false
	}
	return !anyMatch(f.exclude, p)
}

func anyMatch(patterns []string, p string) bool {
	base := path.Base(p)
	for _, pattern := range patterns {
		if ok, _ := doublestar.Match(pattern, p); ok {
			return true
		}
		if ok, _ := doublestar.Match(pattern, base); ok {
			return true
		}
	}
	return false
}

func slashed(patterns []string) []string {
	out := make([]string, len(patterns))
	for i, p := range patterns {
		out[i] = filepath.ToSlash(p)
	}
	return out
}

// PatternError reports a malformed glob.
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid asset pattern %q", e.Pattern)
}

// ValidatePatterns returns a *PatternError for the first malformed pattern.
func ValidatePatterns(patterns []string) error {
	for _, p := range patterns {
		if !doublestar.ValidatePattern(filepath.ToSlash(p)) {
			return &PatternError{Pattern: p}
		}
	}
	return nil
}
