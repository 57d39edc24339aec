package cmd

import (
	"github.com/spf13/cobra"

	"github.com/codealpha/showcase/internal/config"
	"github.com/codealpha/showcase/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "showcase",
	Short: "Calculator, image gallery and scroll-spy portfolio",
	Long: `Showcase bundles three small interactive front ends: a scientific
calculator with history, a filterable image gallery with a lightbox viewer,
and a portfolio page whose sections fade in and highlight their nav link as
you scroll. Each runs in the terminal, over HTTP, or as MCP tools.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if _, err := config.LoadDotEnv(); err != nil {
			return err
		}
		cfg, err := config.Load(cfgFile)
		if err != nil {
			// Commands report config errors themselves; keep the default logger.
			return nil
		}
		level := cfg.Log.Level
		if verbose {
			level = "debug"
		}
		return logging.Init(level, string(cfg.Log.Format))
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
