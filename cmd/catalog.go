package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evaszabo/folio/internal/content"
)

var (
	catalogSQLite string
	catalogForce  bool
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the project catalog",
}

var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current catalog to a SQLite database",
	Long: `Copies the configured catalog, in display order, into a new SQLite file.
Point content.source at "sqlite" and content.path at the file to serve from it.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		lib, err := openLibrary(cfg)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		if catalogForce {
			if err := os.Remove(catalogSQLite); err != nil && !os.IsNotExist(err) {
				return fmt.Errorf("removing %s: %w", catalogSQLite, err)
			}
		}
		if err := content.ExportSQLite(catalogSQLite, lib.Projects()); err != nil {
			return err
		}

		fmt.Fprintf(os.Stderr, "Exported %d projects to %s\n", lib.Len(), catalogSQLite)
		return nil
	},
}

func init() {
	catalogExportCmd.Flags().StringVar(&catalogSQLite, "sqlite", "catalog.db", "SQLite file to write")
	catalogExportCmd.Flags().BoolVar(&catalogForce, "force", false, "overwrite an existing file")
	catalogCmd.AddCommand(catalogExportCmd)
	rootCmd.AddCommand(catalogCmd)
}
