// Package route maps URL paths to one of the portfolio's views.
package route

import (
	"net/url"
	"strings"

	"github.com/evaszabo/folio/internal/content"
)

// Kind identifies which view a path resolves to.
type Kind int

const (
	KindNotFound Kind = iota
	KindHome
	KindProject
	KindAbout
)

func (k Kind) String() string {
	switch k {
	case KindHome:
		return "home"
	case KindProject:
		return "project"
	case KindAbout:
		return "about"
	default:
		return "not_found"
	}
}

const projectPrefix = "/project/"

// Match is the outcome of resolving a path.
type Match struct {
	Kind Kind
	Path string

	// Set for KindProject.
	Project     content.Project
	Index       int
	RequestedID string
	Fallback    bool // RequestedID is unknown; Project is the catalog's first entry
}

// Resolve maps path to exactly one view. Unknown project ids fall back to
// the first project; paths outside the three templates are KindNotFound.
func Resolve(c *content.Catalog, path string) Match {
	clean := normalize(path)

	switch {
	case clean == "/":
		return Match{Kind: KindHome, Path: clean}
	case clean == "/about":
		return Match{Kind: KindAbout, Path: clean}
	case strings.HasPrefix(clean, projectPrefix):
		raw := strings.TrimPrefix(clean, projectPrefix)
		if raw == "" || strings.Contains(raw, "/") {
			return Match{Kind: KindNotFound, Path: clean}
		}
		id, err := url.PathUnescape(raw)
		if err != nil {
			return Match{Kind: KindNotFound, Path: clean}
		}
		m := ForProject(c, id)
		m.Path = clean
		return m
	default:
		return Match{Kind: KindNotFound, Path: clean}
	}
}

// ForProject resolves a project id that a router has already extracted.
func ForProject(c *content.Catalog, id string) Match {
	m := Match{Kind: KindProject, Path: ProjectPath(id), RequestedID: id}
	if i, ok := c.IndexOf(id); ok {
		m.Index = i
		m.Project, _ = c.At(i)
		return m
	}
	m.Index = 0
	m.Project = c.First()
	m.Fallback = true
	return m
}

// ProjectPath returns the canonical path of a project detail view.
func ProjectPath(id string) string {
	return projectPrefix + url.PathEscape(id)
}

// normalize strips the query, fragment and a trailing slash.
func normalize(path string) string {
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		path = path[:i]
	}
	if path == "" {
		return "/"
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}
	if len(path) > 1 {
		path = strings.TrimSuffix(path, "/")
	}
	return path
}
