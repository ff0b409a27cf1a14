package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/evaszabo/folio/internal/route"
)

var projectsJSON bool

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "List the projects in the catalog",
	Long:  `Prints the catalog in display order with each project's route.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		lib, err := openLibrary(cfg)
		if err != nil {
			return fmt.Errorf("loading content: %w", err)
		}

		if projectsJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(lib.Projects())
		}

		tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, "#\tID\tTITLE\tPLACE\tYEAR\tIMAGES\tPATH")
		for i, p := range lib.Projects() {
			fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%d\t%s\n", i+1, p.ID, p.Title, p.Place, p.Year, len(p.Images), route.ProjectPath(p.ID))
		}
		return tw.Flush()
	},
}

func init() {
	projectsCmd.Flags().BoolVar(&projectsJSON, "json", false, "print the catalog as JSON")
	rootCmd.AddCommand(projectsCmd)
}
