package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/evaszabo/folio/internal/content"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.Content.Source != content.SourceBuiltin {
		t.Errorf("expected default source %q, got %q", content.SourceBuiltin, cfg.Content.Source)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Build.OutputDir != "public" {
		t.Errorf("expected default output_dir %q, got %q", "public", cfg.Build.OutputDir)
	}
	if cfg.Showreel.Strength != 10 || cfg.Reveal.Margin != 80 {
		t.Errorf("unexpected presentation defaults: strength=%v margin=%d", cfg.Showreel.Strength, cfg.Reveal.Margin)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.folio.yml")

	original := DefaultConfig()
	original.Site.Name = "Ana Lobo"
	original.Content.Source = content.SourceMarkdown
	original.Content.Path = "content"
	original.Server.Port = 9090
	original.Build.Assets = []string{"**/*.jpg"}
	original.Showreel.Strength = 4.5

	if err := original.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if loaded.Site.Name != original.Site.Name {
		t.Errorf("site.name: got %q, want %q", loaded.Site.Name, original.Site.Name)
	}
	if loaded.Content != original.Content {
		t.Errorf("content: got %+v, want %+v", loaded.Content, original.Content)
	}
	if loaded.Server.Port != 9090 {
		t.Errorf("server.port: got %d, want 9090", loaded.Server.Port)
	}
	if loaded.Showreel.Strength != 4.5 {
		t.Errorf("showreel.strength: got %v, want 4.5", loaded.Showreel.Strength)
	}
	if len(loaded.Build.Assets) != 1 || loaded.Build.Assets[0] != "**/*.jpg" {
		t.Errorf("build.assets: got %v", loaded.Build.Assets)
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nonexistent.yml")

	// Loading a missing file should return defaults, not an error.
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load of missing file should not error, got: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port, got %d", cfg.Server.Port)
	}
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".folio.yml")
	data := "site:\n  name: Ana Lobo\nreveal:\n  margin: 40\n"
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Site.Name != "Ana Lobo" || cfg.Reveal.Margin != 40 {
		t.Errorf("file values not applied: %+v %+v", cfg.Site, cfg.Reveal)
	}
	if cfg.Build.OutputDir != "public" || cfg.Showreel.Strength != 10 {
		t.Errorf("defaults lost: %+v %+v", cfg.Build, cfg.Showreel)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("FOLIO_SERVER__PORT", "7070")
	t.Setenv("FOLIO_BUILD__OUTPUT_DIR", "dist")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 7070 {
		t.Errorf("server.port: got %d, want 7070", cfg.Server.Port)
	}
	if cfg.Build.OutputDir != "dist" {
		t.Errorf("build.output_dir: got %q, want dist", cfg.Build.OutputDir)
	}
}

func TestEnvKey(t *testing.T) {
	tests := map[string]string{
		"FOLIO_SERVER__PORT":       "server.port",
		"FOLIO_BUILD__OUTPUT_DIR":  "build.output_dir",
		"FOLIO_SHOWREEL__STRENGTH": "showreel.strength",
	}
	for in, want := range tests {
		if got := envKey(in); got != want {
			t.Errorf("envKey(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		modify  func(*Config)
		wantErr bool
	}{
		{"defaults", func(c *Config) {}, false},
		{"unknown source", func(c *Config) { c.Content.Source = "ftp" }, true},
		{"markdown without path", func(c *Config) { c.Content.Source = content.SourceMarkdown }, true},
		{"sqlite with path", func(c *Config) {
			c.Content.Source = content.SourceSQLite
			c.Content.Path = "catalog.db"
		}, false},
		{"port too large", func(c *Config) { c.Server.Port = 70000 }, true},
		{"empty output", func(c *Config) { c.Build.OutputDir = "" }, true},
		{"malformed asset pattern", func(c *Config) { c.Build.Assets = []string{"**/*.{jpg"} }, true},
		{"negative strength", func(c *Config) { c.Showreel.Strength = -1 }, true},
		{"negative margin", func(c *Config) { c.Reveal.Margin = -5 }, true},
		{"bad base url", func(c *Config) { c.Site.BaseURL = "example.com" }, true},
		{"good base url", func(c *Config) { c.Site.BaseURL = "https://example.com" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestApplySite(t *testing.T) {
	lib := content.Builtin()
	name := lib.Brand.Name

	cfg := DefaultConfig()
	cfg.ApplySite(lib)
	if lib.Brand.Name != name {
		t.Errorf("empty site.name changed brand to %q", lib.Brand.Name)
	}

	cfg.Site.Name = "Ana Lobo"
	cfg.Site.Tagline = "Stills"
	cfg.ApplySite(lib)
	if lib.Brand.Name != "Ana Lobo" || lib.Brand.Tag != "Stills" {
		t.Errorf("brand = %+v", lib.Brand)
	}
}
