package cmd

import (
	"github.com/spf13/cobra"

	"github.com/evaszabo/folio/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Documentary photography portfolio server",
	Long: `Folio serves a documentary photographer's portfolio: a chaptered home page
with a showreel, one page per project with a lightbox gallery, and an about
page. Projects come from the built-in catalog, a directory of markdown files
or a SQLite catalog, and the same pages can be exported as a static site.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultConfigFile, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
