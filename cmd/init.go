package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/evaszabo/folio/internal/config"
)

var initForce bool

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a folio configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the portfolio and writes a .folio.yml file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if _, err := os.Stat(cfgFile); err == nil && !initForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", cfgFile)
		}
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	initCmd.Flags().BoolVar(&initForce, "force", false, "overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}
