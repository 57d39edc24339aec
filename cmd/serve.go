package cmd

import (
	"github.com/spf13/cobra"

	"github.com/codealpha/showcase/internal/logging"
	mcpserver "github.com/codealpha/showcase/internal/mcp"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server for AI agent integration",
	Long:  `Starts a Model Context Protocol (MCP) server on stdio, exposing the calculator and gallery search as tools for AI agents.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		database, err := openDB(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		catalog, err := loadCatalog(cmd.Context(), database)
		if err != nil {
			return err
		}

		// Set version from the cmd package variable.
		mcpserver.Version = Version

		logging.L().Info().Int("images", catalog.Len()).Msg("showcase MCP server started on stdio")
		if catalog.Len() == 0 {
			logging.L().Warn().Msg("gallery catalog is empty; run `showcase gallery import` first")
		}

		srv := mcpserver.NewServer(catalog, calcOptions(cfg)...)
		return srv.Serve()
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
