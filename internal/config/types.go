package config

import "github.com/evaszabo/folio/internal/content"

// Config is the top-level folio configuration, corresponding to .folio.yml.
type Config struct {
	Site     SiteConfig     `yaml:"site" koanf:"site"`
	Content  ContentConfig  `yaml:"content" koanf:"content"`
	Server   ServerConfig   `yaml:"server" koanf:"server"`
	Build    BuildConfig    `yaml:"build" koanf:"build"`
	Showreel ShowreelConfig `yaml:"showreel" koanf:"showreel"`
	Reveal   RevealConfig   `yaml:"reveal" koanf:"reveal"`
}

// SiteConfig overrides the brand and copy shown on every page. Empty
// fields keep the content library's values.
type SiteConfig struct {
	Name      string `yaml:"name" koanf:"name"`
	Tagline   string `yaml:"tagline" koanf:"tagline"`
	Statement string `yaml:"statement" koanf:"statement"`
	BaseURL   string `yaml:"base_url" koanf:"base_url"`
	Instagram string `yaml:"instagram" koanf:"instagram"`
	Email     string `yaml:"email" koanf:"email"`
}

// ContentConfig selects where projects are read from.
type ContentConfig struct {
	Source content.Source `yaml:"source" koanf:"source"`
	Path   string         `yaml:"path" koanf:"path"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port     int  `yaml:"port" koanf:"port"`
	AllowAll bool `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	Metrics  bool `yaml:"metrics" koanf:"metrics"`
}

// BuildConfig controls static export.
type BuildConfig struct {
	OutputDir string   `yaml:"output_dir" koanf:"output_dir"`
	AssetsDir string   `yaml:"assets_dir" koanf:"assets_dir"`
	Assets    []string `yaml:"assets" koanf:"assets"`
}

// ShowreelConfig configures the home page video and its parallax.
type ShowreelConfig struct {
	Video    string  `yaml:"video" koanf:"video"`
	Strength float64 `yaml:"strength" koanf:"strength"`
}

// RevealConfig configures the scroll reveal margin in pixels.
type RevealConfig struct {
	Margin int `yaml:"margin" koanf:"margin"`
}
