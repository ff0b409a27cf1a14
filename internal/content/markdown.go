package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// projectFrontmatter is the YAML header of a project markdown file. The
// markdown body becomes the project description.
type projectFrontmatter struct {
	ID      string  `yaml:"id"`
	Title   string  `yaml:"title"`
	Place   string  `yaml:"place"`
	Year    string  `yaml:"year"`
	Logline string  `yaml:"logline"`
	Order   int     `yaml:"order"`
	Images  []Image `yaml:"images"`
}

type aboutFrontmatter struct {
	Heading  string      `yaml:"heading"`
	Timeline []Milestone `yaml:"timeline"`
}

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// LoadDir reads a markdown content directory:
//
//	<dir>/projects/*.md   one project per file
//	<dir>/about.md        optional about page
//
// Projects are ordered by their frontmatter order, then by file name. The
// returned About is nil when about.md does not exist.
func LoadDir(dir string) (*Catalog, *About, error) {
	projectsDir := filepath.Join(dir, "projects")
	entries, err := os.ReadDir(projectsDir)
	if err != nil {
		return nil, nil, fmt.Errorf("reading %s: %w", projectsDir, err)
	}

	type ordered struct {
		order int
		name  string
		p     Project
	}
	var items []ordered
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".md") {
			continue
		}
		path := filepath.Join(projectsDir, e.Name())
		p, order, err := parseProjectFile(path)
		if err != nil {
			return nil, nil, err
		}
		items = append(items, ordered{order: order, name: e.Name(), p: p})
	}

	sort.SliceStable(items, func(i, j int) bool {
		if items[i].order != items[j].order {
			return items[i].order < items[j].order
		}
		return items[i].name < items[j].name
	})

	projects := make([]Project, len(items))
	for i, it := range items {
		projects[i] = it.p
	}
	catalog, err := NewCatalog(projects)
	if err != nil {
		return nil, nil, err
	}

	about, err := parseAboutFile(filepath.Join(dir, "about.md"))
	if err != nil {
		return nil, nil, err
	}
	return catalog, about, nil
}

func parseProjectFile(path string) (Project, int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Project{}, 0, fmt.Errorf("reading %s: %w", path, err)
	}

	var fm projectFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm, yamlFormat)
	if err != nil {
		return Project{}, 0, fmt.Errorf("parsing frontmatter in %s: %w", path, err)
	}

	id := fm.ID
	if id == "" {
		id = slugFromFile(filepath.Base(path))
	}
	title := fm.Title
	if title == "" {
		title = titleFromSlug(id)
	}

	return Project{
		ID:          id,
		Title:       title,
		Place:       fm.Place,
		Year:        fm.Year,
		Logline:     fm.Logline,
		Description: strings.TrimSpace(string(body)),
		Images:      fm.Images,
	}, fm.Order, nil
}

func parseAboutFile(path string) (*About, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}

	var fm aboutFrontmatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &fm, yamlFormat)
	if err != nil {
		return nil, fmt.Errorf("parsing frontmatter in %s: %w", path, err)
	}
	return &About{
		Heading:  fm.Heading,
		Body:     strings.TrimSpace(string(body)),
		Timeline: fm.Timeline,
	}, nil
}

// slugFromFile turns "02-swallow-song.md" into "swallow-song".
func slugFromFile(name string) string {
	slug := strings.TrimSuffix(name, filepath.Ext(name))
	if i := strings.IndexByte(slug, '-'); i > 0 && isDigits(slug[:i]) {
		slug = slug[i+1:]
	}
	return strings.ToLower(slug)
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

// titleFromSlug turns "swallow-song" into "Swallow Song".
func titleFromSlug(slug string) string {
	words := strings.ReplaceAll(strings.ReplaceAll(slug, "-", " "), "_", " ")
	return cases.Title(language.English).String(words)
}
