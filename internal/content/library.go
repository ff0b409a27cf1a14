package content

import (
	"fmt"
	"strings"
)

// Brand is the photographer's name and tag line shown in the header.
type Brand struct {
	Name string `json:"name" yaml:"name"`
	Tag  string `json:"tag" yaml:"tag"`
}

// Milestone is one row of the about page timeline.
type Milestone struct {
	Year string `json:"year" yaml:"year"`
	Text string `json:"text" yaml:"text"`
}

// About is the static about page.
type About struct {
	Heading  string      `json:"heading" yaml:"heading"`
	Body     string      `json:"body" yaml:"body"`
	Timeline []Milestone `json:"timeline" yaml:"timeline"`
}

// Book is the home page teaser for a book in progress.
type Book struct {
	Title string `json:"title" yaml:"title"`
	Blurb string `json:"blurb" yaml:"blurb"`
	Cover string `json:"cover" yaml:"cover"`
}

// Library bundles the catalog with the site-wide copy around it.
type Library struct {
	*Catalog
	Brand Brand
	About About
	Book  Book
}

// Source selects where the catalog is read from.
type Source string

const (
	SourceBuiltin  Source = "builtin"
	SourceMarkdown Source = "markdown"
	SourceSQLite   Source = "sqlite"
)

// ValidSource reports whether s names a known source.
func ValidSource(s Source) bool {
	switch s {
	case SourceBuiltin, SourceMarkdown, SourceSQLite:
		return true
	}
	return false
}

// Open loads a Library from the given source. path is the markdown content
// directory or the SQLite file; it is ignored for the builtin source.
func Open(source Source, path string) (*Library, error) {
	lib := Builtin()

	switch Source(strings.ToLower(string(source))) {
	case SourceBuiltin, "":
		return lib, nil
	case SourceMarkdown:
		catalog, about, err := LoadDir(path)
		if err != nil {
			return nil, fmt.Errorf("loading markdown content from %s: %w", path, err)
		}
		lib.Catalog = catalog
		if about != nil {
			if about.Heading == "" {
				about.Heading = lib.About.Heading
			}
			lib.About = *about
		}
		return lib, nil
	case SourceSQLite:
		catalog, err := LoadSQLite(path)
		if err != nil {
			return nil, fmt.Errorf("loading sqlite catalog from %s: %w", path, err)
		}
		lib.Catalog = catalog
		return lib, nil
	default:
		return nil, fmt.Errorf("unknown content source %q", source)
	}
}
