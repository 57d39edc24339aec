package cmd

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/codealpha/showcase/internal/calc"
	"github.com/codealpha/showcase/internal/config"
	"github.com/codealpha/showcase/internal/gallery"
	"github.com/codealpha/showcase/internal/logging"
	"github.com/codealpha/showcase/internal/scrollspy"
	"github.com/codealpha/showcase/internal/server"
)

var serverPort int

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the HTTP server for the gallery, calculator and portfolio",
	Long:  `Starts the showcase HTTP server with the gallery and calculator session APIs, the calculator keypad WebSocket and the live portfolio page.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("port") {
			cfg.Server.Port = serverPort
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

		srv := server.New(server.Config{
			Port:     cfg.Server.Port,
			AllowAll: cfg.Server.AllowAllOrigins,
			PruneTTL: cfg.Server.SessionTTL,
		}, database)

		if err := registerAllRoutes(srv, cfg, catalog); err != nil {
			return err
		}

		// Graceful shutdown.
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		logging.L().Info().
			Str("version", Version).
			Int("port", cfg.Server.Port).
			Str("database", database.Path()).
			Int("images", catalog.Len()).
			Msg("showcase server starting")

		return srv.Run(ctx)
	},
}

// registerAllRoutes wires up all feature routes and their session pruning.
func registerAllRoutes(srv *server.Server, cfg *config.Config, catalog *gallery.Catalog) error {
	r := srv.Router()

	// Calculator. The keypad WebSocket is long-lived, so it stays outside the
	// request timeout.
	calcSvc := calc.NewService(calcOptions(cfg)...)
	calc.RegisterRoutes(r, calcSvc)
	srv.AddPruner("calc", calcSvc.Sessions())

	// Gallery
	gallerySvc := gallery.NewService(catalog)
	srv.AddPruner("gallery", gallerySvc.Sessions())

	// Portfolio
	var portfolioSvc *scrollspy.Service
	page, err := scrollspy.LoadPage(cfg.Portfolio.Source)
	switch {
	case err == nil:
		portfolioSvc, err = scrollspy.NewService(page, cfg.Portfolio.RevealThreshold, cfg.Portfolio.Theme)
		if err != nil {
			return fmt.Errorf("rendering portfolio: %w", err)
		}
		srv.AddPruner("portfolio", portfolioSvc.Sessions())
	case errors.Is(err, fs.ErrNotExist):
		logging.L().Warn().Str("source", cfg.Portfolio.Source).Msg("portfolio page not found, /portfolio disabled")
	default:
		return err
	}

	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(60 * time.Second))
		gallery.RegisterRoutes(r, gallerySvc)
		if portfolioSvc != nil {
			scrollspy.RegisterRoutes(r, portfolioSvc)
		}
	})
	return nil
}

func init() {
	serverCmd.Flags().IntVar(&serverPort, "port", 8080, "Port to listen on (overrides server.port)")
	rootCmd.AddCommand(serverCmd)
}
