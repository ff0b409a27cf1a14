package cmd

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"

	"github.com/evaszabo/folio/internal/config"
	"github.com/evaszabo/folio/internal/content"
	"github.com/evaszabo/folio/internal/site"
	"github.com/evaszabo/folio/internal/view"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// openLibrary loads the configured content and applies the site overrides.
func openLibrary(cfg *config.Config) (*content.Library, error) {
	lib, err := content.Open(cfg.Content.Source, cfg.Content.Path)
	if err != nil {
		return nil, err
	}
	cfg.ApplySite(lib)
	return lib, nil
}

// newRenderer creates a page renderer from the config.
func newRenderer(cfg *config.Config, liveReload bool) (*site.Renderer, error) {
	return site.NewRenderer(site.Settings{
		Statement:        cfg.Site.Statement,
		ShowreelVideo:    cfg.Showreel.Video,
		ParallaxStrength: cfg.Showreel.Strength,
		RevealMargin:     cfg.Reveal.Margin,
		BaseURL:          cfg.Site.BaseURL,
		Instagram:        cfg.Site.Instagram,
		Email:            cfg.Site.Email,
		LiveReload:       liveReload,
	})
}

// viewOptions maps the config onto the view controllers.
func viewOptions(cfg *config.Config) view.Options {
	opts := view.DefaultOptions()
	opts.RevealMargin = float64(cfg.Reveal.Margin)
	opts.ParallaxStrength = cfg.Showreel.Strength
	return opts
}

// openBrowser opens url in the default browser.
func openBrowser(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "Could not open browser: %v\n", err)
	}
}
