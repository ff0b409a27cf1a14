package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/evaszabo/folio/internal/progress"
	"github.com/evaszabo/folio/internal/site"
)

var buildOutput string

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Export the portfolio as a static site",
	Long: `Renders every page of the portfolio to HTML and copies the matching assets,
producing a directory that any static file host can serve.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if buildOutput != "" {
			cfg.Build.OutputDir = buildOutput
		}

		lib, err := openLibrary(cfg)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		renderer, err := newRenderer(cfg, false)
		if err != nil {
			return fmt.Errorf("creating renderer: %w", err)
		}

		start := time.Now()
		g := &site.Generator{
			Library:   lib,
			Renderer:  renderer,
			Options:   viewOptions(cfg),
			OutputDir: cfg.Build.OutputDir,
			AssetsDir: cfg.Build.AssetsDir,
			Assets:    cfg.Build.Assets,
			Reporter:  progress.NewReporter(),
		}
		res, err := g.Generate()
		if err != nil {
			return fmt.Errorf("exporting site: %w", err)
		}

		fmt.Fprintf(os.Stderr, "\nExported %d pages to %s in %s\n", res.Pages, cfg.Build.OutputDir, time.Since(start).Round(time.Millisecond))
		fmt.Fprintf(os.Stderr, "  Assets: %d matched, %d copied\n", res.Assets, res.AssetsCopied)
		return nil
	},
}

func init() {
	buildCmd.Flags().StringVarP(&buildOutput, "output", "o", "", "output directory (overrides config)")
	rootCmd.AddCommand(buildCmd)
}
