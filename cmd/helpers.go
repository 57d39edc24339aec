package cmd

import (
	"context"
	"fmt"

	"github.com/codealpha/showcase/internal/calc"
	"github.com/codealpha/showcase/internal/config"
	"github.com/codealpha/showcase/internal/db"
	"github.com/codealpha/showcase/internal/gallery"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `showcase init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// openDB opens the catalog database inside the data directory.
func openDB(cfg *config.Config) (*db.DB, error) {
	database, err := db.Open(cfg.DBPath())
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	return database, nil
}

// loadCatalog reads the stored catalog. An empty store yields an empty
// catalog.
func loadCatalog(ctx context.Context, database *db.DB) (*gallery.Catalog, error) {
	catalog, err := gallery.NewStore(database).Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading gallery catalog: %w", err)
	}
	return catalog, nil
}

// calcOptions maps the calculator config to engine options.
func calcOptions(cfg *config.Config) []calc.Option {
	return []calc.Option{
		calc.WithHistoryLimit(cfg.Calculator.HistoryLimit),
		calc.WithPrecision(cfg.Calculator.Precision),
	}
}
