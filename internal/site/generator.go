package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/evaszabo/folio/internal/assets"
	"github.com/evaszabo/folio/internal/content"
	"github.com/evaszabo/folio/internal/progress"
	"github.com/evaszabo/folio/internal/route"
	"github.com/evaszabo/folio/internal/view"
)

// Generator exports the portfolio as a static site.
type Generator struct {
	Library   *content.Library
	Renderer  *Renderer
	Options   view.Options
	OutputDir string

	// AssetsDir is copied to OutputDir/assets, filtered by Assets.
	AssetsDir string
	Assets    []string

	Reporter progress.Reporter
}

// Result summarizes an export.
type Result struct {
	Pages        int
	Assets       int
	AssetsCopied int
}

// page is one exported URL and the file that serves it.
type page struct {
	path string
	file string
}

// pages lists every route of the site in catalog order.
func (g *Generator) pages() []page {
	out := []page{{path: "/", file: "index.html"}}
	for _, p := range g.Library.Projects() {
		path := route.ProjectPath(p.ID)
		out = append(out, page{path: path, file: strings.TrimPrefix(path, "/") + "/index.html"})
	}
	out = append(out, page{path: "/about", file: "about/index.html"})
	return out
}

// Generate writes every page, the static files, the project listing and the
// assets to g.OutputDir.
func (g *Generator) Generate() (Result, error) {
	var res Result
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Discard{}
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return res, fmt.Errorf("creating output dir: %w", err)
	}

	pages := g.pages()
	reporter.Start(len(pages) + 1)

	sess := view.NewSession(g.Library, g.Options)
	defer sess.Close()

	for i, p := range pages {
		if err := g.writePage(sess.Navigate(p.path), p.file); err != nil {
			return res, fmt.Errorf("rendering %s: %w", p.path, err)
		}
		res.Pages++
		reporter.Update(i+1, p.file)
	}

	// The not-found page has no request path of its own.
	notFound := view.Build(g.Library, route.Match{Kind: route.KindNotFound}, g.Options)
	if err := g.writePage(notFound, "404.html"); err != nil {
		return res, fmt.Errorf("rendering 404 page: %w", err)
	}
	res.Pages++
	reporter.Update(len(pages)+1, "404.html")
	reporter.Finish()

	if err := g.writeFile("static/style.css", []byte(cssContent)); err != nil {
		return res, err
	}
	if err := g.writeFile("static/script.js", []byte(jsContent)); err != nil {
		return res, err
	}

	listing, err := json.MarshalIndent(g.Library.Projects(), "", "  ")
	if err != nil {
		return res, fmt.Errorf("encoding projects.json: %w", err)
	}
	if err := g.writeFile("projects.json", listing); err != nil {
		return res, err
	}

	if g.AssetsDir != "" {
		if info, err := os.Stat(g.AssetsDir); err == nil && info.IsDir() {
			files, err := assets.Walk(assets.Config{RootDir: g.AssetsDir, Include: g.Assets})
			if err != nil {
				return res, err
			}
			copied, err := assets.Copy(files, filepath.Join(g.OutputDir, "assets"))
			if err != nil {
				return res, err
			}
			res.Assets = len(files)
			res.AssetsCopied = copied
		}
	}

	return res, nil
}

func (g *Generator) writePage(v view.View, rel string) error {
	var buf bytes.Buffer
	if err := g.Renderer.Render(&buf, v); err != nil {
		return err
	}
	return g.writeFile(rel, buf.Bytes())
}

// writeFile writes data to rel under OutputDir. It refuses paths that
// clean to somewhere outside OutputDir.
func (g *Generator) writeFile(rel string, data []byte) error {
	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(rel))
	if inside, err := filepath.Rel(g.OutputDir, outPath); err != nil || inside == "." || inside == ".." || strings.HasPrefix(inside, ".."+string(filepath.Separator)) {
		return fmt.Errorf("refusing to write %s outside %s", rel, g.OutputDir)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", rel, err)
	}
	return nil
}
