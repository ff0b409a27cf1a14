package site

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/evaszabo/folio/internal/content"
	"github.com/evaszabo/folio/internal/progress"
	"github.com/evaszabo/folio/internal/view"
)

type recordingReporter struct {
	total   int
	updates []string
	done    bool
}

func (r *recordingReporter) Start(total int) { r.total = total }
func (r *recordingReporter) Update(_ int, message string) { r.updates = append(r.updates, message) }
func (r *recordingReporter) Finish() { r.done = true }

var _ progress.Reporter = (*recordingReporter)(nil)

func TestGenerate(t *testing.T) {
	out := t.TempDir()
	assetsDir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(assetsDir, "jordan"), 0o755); err != nil {
		t.Fatal(err)
	}
	for name, data := range map[string]string{
		"showreel.mp4":      "video",
		"jordan/clinic.jpg": "jpeg",
		"draft.psd":         "layers",
	} {
		if err := os.WriteFile(filepath.Join(assetsDir, filepath.FromSlash(name)), []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	rep := &recordingReporter{}
	g := &Generator{
		Library:   content.Builtin(),
		Renderer:  newTestRenderer(t, testSettings()),
		Options:   view.DefaultOptions(),
		OutputDir: out,
		AssetsDir: assetsDir,
		Assets:    []string{"**/*.{jpg,mp4}"},
		Reporter:  rep,
	}

	res, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Pages != 6 {
		t.Errorf("pages = %d, want 6 (home, three projects, about, 404)", res.Pages)
	}
	if res.Assets != 2 || res.AssetsCopied != 2 {
		t.Errorf("assets = %d copied = %d, want 2/2", res.Assets, res.AssetsCopied)
	}

	for _, rel := range []string{
		"index.html",
		"project/ukraine/index.html",
		"project/swallow-song/index.html",
		"project/jordan/index.html",
		"about/index.html",
		"404.html",
		"static/style.css",
		"static/script.js",
		"projects.json",
		"assets/showreel.mp4",
		"assets/jordan/clinic.jpg",
	} {
		if _, err := os.Stat(filepath.Join(out, filepath.FromSlash(rel))); err != nil {
			t.Errorf("missing %s: %v", rel, err)
		}
	}
	if _, err := os.Stat(filepath.Join(out, "assets", "draft.psd")); err == nil {
		t.Error("unmatched asset was exported")
	}

	page, err := os.ReadFile(filepath.Join(out, "project", "jordan", "index.html"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(page), "<h1>Jordan</h1>") || !strings.Contains(string(page), "aria-modal=\"true\" hidden>") {
		t.Error("exported project page should show Jordan with a closed lightbox")
	}

	notFound, _ := os.ReadFile(filepath.Join(out, "404.html"))
	if !strings.Contains(string(notFound), "Page not found") || strings.Contains(string(notFound), "Nothing lives at") {
		t.Error("404 page should render without a request path")
	}

	var projects []content.Project
	data, _ := os.ReadFile(filepath.Join(out, "projects.json"))
	if err := json.Unmarshal(data, &projects); err != nil {
		t.Fatalf("projects.json: %v", err)
	}
	if len(projects) != 3 || projects[0].ID != "ukraine" {
		t.Errorf("projects.json = %+v", projects)
	}

	if rep.total != 6 || len(rep.updates) != 6 || !rep.done {
		t.Errorf("reporter total=%d updates=%v done=%v", rep.total, rep.updates, rep.done)
	}

	// A second export leaves unchanged assets alone.
	res, err = g.Generate()
	if err != nil {
		t.Fatalf("second Generate: %v", err)
	}
	if res.AssetsCopied != 0 {
		t.Errorf("second export copied %d assets, want 0", res.AssetsCopied)
	}
}

func TestGenerateWithoutAssetsDir(t *testing.T) {
	out := t.TempDir()
	g := &Generator{
		Library:   content.Builtin(),
		Renderer:  newTestRenderer(t, testSettings()),
		Options:   view.DefaultOptions(),
		OutputDir: out,
		AssetsDir: filepath.Join(out, "no-such-dir"),
	}
	res, err := g.Generate()
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if res.Assets != 0 {
		t.Errorf("assets = %d, want 0", res.Assets)
	}
}

func TestGenerateDottedProjectID(t *testing.T) {
	catalog, err := content.NewCatalog([]content.Project{
		{ID: "first", Title: "First", Images: []content.Image{{Src: "/a.jpg"}}},
		{ID: "river-towns.2019", Title: "River Towns", Images: []content.Image{{Src: "/b.jpg"}}},
	})
	if err != nil {
		t.Fatal(err)
	}
	lib := content.Builtin()
	lib.Catalog = catalog

	out := t.TempDir()
	g := &Generator{
		Library:   lib,
		Renderer:  newTestRenderer(t, testSettings()),
		Options:   view.DefaultOptions(),
		OutputDir: out,
	}
	if _, err := g.Generate(); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	page, err := os.ReadFile(filepath.Join(out, "project", "river-towns.2019", "index.html"))
	if err != nil {
		t.Fatalf("dotted project page: %v", err)
	}
	if !strings.Contains(string(page), "<h1>River Towns</h1>") {
		t.Error("dotted project page should show River Towns")
	}
	home, _ := os.ReadFile(filepath.Join(out, "index.html"))
	if !strings.Contains(string(home), `class="view-home"`) {
		t.Error("index.html should still be the home page")
	}
}

func TestWriteFileStaysInsideOutputDir(t *testing.T) {
	parent := t.TempDir()
	out := filepath.Join(parent, "public")
	g := &Generator{OutputDir: out}

	for _, rel := range []string{"../index.html", "project/../../escape.html", "..", "."} {
		if err := g.writeFile(rel, []byte("x")); err == nil {
			t.Errorf("writeFile(%q) should be refused", rel)
		}
	}
	if _, err := os.Stat(filepath.Join(parent, "index.html")); err == nil {
		t.Error("file written outside the output dir")
	}

	if err := g.writeFile("project/../about/index.html", []byte("ok")); err != nil {
		t.Errorf("writeFile inside output dir: %v", err)
	}
	if _, err := os.Stat(filepath.Join(out, "about", "index.html")); err != nil {
		t.Errorf("expected about/index.html: %v", err)
	}
}
