package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/evaszabo/folio/internal/assets"
	"github.com/evaszabo/folio/internal/content"
)

// EnvPrefix prefixes environment overrides. Nested keys use a double
// underscore: FOLIO_SERVER__PORT -> server.port.
const EnvPrefix = "FOLIO_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FOLIO_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// envKey maps FOLIO_BUILD__OUTPUT_DIR to build.output_dir.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !content.ValidSource(c.Content.Source) {
		return fmt.Errorf("invalid content.source %q: must be one of builtin, markdown, sqlite", c.Content.Source)
	}
	if c.Content.Source != content.SourceBuiltin && c.Content.Path == "" {
		return fmt.Errorf("content.path is required for source %q", c.Content.Source)
	}

	if c.Server.Port < 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port %d out of range", c.Server.Port)
	}

	if c.Build.OutputDir == "" {
		return fmt.Errorf("build.output_dir is required")
	}
	if err := assets.ValidatePatterns(c.Build.Assets); err != nil {
		return fmt.Errorf("build.assets: %w", err)
	}

	if c.Showreel.Strength < 0 {
		return fmt.Errorf("showreel.strength must be non-negative")
	}

	if c.Reveal.Margin < 0 {
		return fmt.Errorf("reveal.margin must be non-negative")
	}

	if c.Site.BaseURL != "" && !strings.HasPrefix(c.Site.BaseURL, "http://") && !strings.HasPrefix(c.Site.BaseURL, "https://") {
		return fmt.Errorf("site.base_url %q must start with http:// or https://", c.Site.BaseURL)
	}

	return nil
}

// ApplySite overlays the configured brand onto lib.
func (c *Config) ApplySite(lib *content.Library) {
	if c.Site.Name != "" {
		lib.Brand.Name = c.Site.Name
	}
	if c.Site.Tagline != "" {
		lib.Brand.Tag = c.Site.Tagline
	}
}
