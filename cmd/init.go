package cmd

import (
	"github.com/spf13/cobra"

	"github.com/codealpha/showcase/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize showcase configuration with an interactive wizard",
	Long:  `Runs an interactive wizard to configure the gallery source, server port and logging, and writes the result to the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := config.RunWizard(cfgFile)
		return err
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
