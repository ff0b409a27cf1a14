// Package content holds the portfolio's read-only content: the ordered
// project catalog plus the brand, about and book copy around it.
package content

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	ErrEmptyCatalog = errors.New("catalog has no projects")
	ErrMissingID    = errors.New("project has no id")
	ErrInvalidID    = errors.New("project id must be lowercase letters, digits, '.', '_' or '-'")
	ErrDuplicateID  = errors.New("duplicate project id")
	ErrNoImages     = errors.New("project has no images")
	ErrMissingSrc   = errors.New("image has no src")
)

// Image is one photograph of a project.
type Image struct {
	Src     string `json:"src" yaml:"src"`
	Caption string `json:"caption,omitempty" yaml:"caption,omitempty"`
}

// Project is a documentary body of work. The id is its routing key.
type Project struct {
	ID          string  `json:"id" yaml:"id"`
	Title       string  `json:"title" yaml:"title"`
	Place       string  `json:"place" yaml:"place"`
	Year        string  `json:"year" yaml:"year"`
	Logline     string  `json:"logline" yaml:"logline"`
	Description string  `json:"description" yaml:"description"`
	Images      []Image `json:"images" yaml:"images"`
}

// Cover returns the project's first image, used on chapter cards.
func (p Project) Cover() Image {
	if len(p.Images) == 0 {
		return Image{}
	}
	return p.Images[0]
}

// Store is the read side of the content collaborator: an ordered project
// collection. The order is the canonical navigation order.
type Store interface {
	Projects() []Project
}

// validID keeps ids usable as a single URL path segment and as a directory
// name in the static export.
var validID = regexp.MustCompile(`^[a-z0-9][a-z0-9._-]*$`)

var _ Store = (*Catalog)(nil)

// Catalog is a validated, immutable, ordered project collection.
type Catalog struct {
	projects []Project
	index    map[string]int
}

// NewCatalog validates projects and returns a Catalog preserving their order.
func NewCatalog(projects []Project) (*Catalog, error) {
	if len(projects) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		projects: make([]Project, len(projects)),
		index:    make(map[string]int, len(projects)),
	}
	for i, p := range projects {
		if p.ID == "" {
			return nil, fmt.Errorf("project %d: %w", i, ErrMissingID)
		}
		if !validID.MatchString(p.ID) {
			return nil, fmt.Errorf("project %q: %w", p.ID, ErrInvalidID)
		}
		if _, dup := c.index[p.ID]; dup {
			return nil, fmt.Errorf("project %q: %w", p.ID, ErrDuplicateID)
		}
		if len(p.Images) == 0 {
			return nil, fmt.Errorf("project %q: %w", p.ID, ErrNoImages)
		}
		for j, img := range p.Images {
			if img.Src == "" {
				return nil, fmt.Errorf("project %q image %d: %w", p.ID, j, ErrMissingSrc)
			}
		}
		p.Images = append([]Image(nil), p.Images...)
		c.projects[i] = p
		c.index[p.ID] = i
	}
	return c, nil
}

// Projects returns a copy of the ordered collection.
func (c *Catalog) Projects() []Project {
	out := make([]Project, len(c.projects))
	copy(out, c.projects)
	return out
}

// Len returns the number of projects.
func (c *Catalog) Len() int { return len(c.projects) }

// At returns the project at position i. ok is false when i is out of range.
func (c *Catalog) At(i int) (p Project, ok bool) {
	if i < 0 || i >= len(c.projects) {
		return Project{}, false
	}
	return c.projects[i], true
}

// IndexOf returns the position of the project with the given id.
func (c *Catalog) IndexOf(id string) (int, bool) {
	i, ok := c.index[id]
	return i, ok
}

// First returns the first project in catalog order.
func (c *Catalog) First() Project { return c.projects[0] }
