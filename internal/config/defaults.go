package config

import "github.com/evaszabo/folio/internal/content"

// DefaultConfigFile is the config path used when --config is not given.
const DefaultConfigFile = ".folio.yml"

// DefaultAssets are glob patterns copied from the assets dir on export.
var DefaultAssets = []string{
	"**/*.{jpg,jpeg,png,webp,gif,avif}",
	"**/*.{mp4,webm}",
	"favicon.ico",
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			Statement: "Eva, documentary photographer connecting memory, loss, and place.",
		},
		Content: ContentConfig{
			Source: content.SourceBuiltin,
		},
		Server: ServerConfig{
			Port:    8080,
			Metrics: true,
		},
		Build: BuildConfig{
			OutputDir: "public",
			AssetsDir: "assets",
			Assets:    append([]string(nil), DefaultAssets...),
		},
		Showreel: ShowreelConfig{
			Video:    "/assets/showreel.mp4",
			Strength: 10,
		},
		Reveal: RevealConfig{
			Margin: 80,
		},
	}
}
