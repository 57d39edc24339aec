package config

import (
	"path/filepath"
	"time"
)

// DefaultExcludes are glob patterns skipped when scanning a gallery directory.
var DefaultExcludes = []string{
	"**/thumbs/**",
	"**/*.tmp.*",
}

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".showcase.yml"

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Log:     LogConfig{Level: "info", Format: LogConsole},
		DataDir: ".showcase",
		Gallery: GalleryConfig{
			Source:          "images",
			Exclude:         DefaultExcludes,
			DefaultCategory: "all",
		},
		Calculator: CalculatorConfig{
			HistoryLimit: 20,
			Precision:    10,
		},
		Portfolio: PortfolioConfig{
			Source:          "portfolio.md",
			RevealThreshold: 0.1,
			Theme:           "monokai",
		},
		Server: ServerConfig{
			Port:       8080,
			SessionTTL: 30 * time.Minute,
		},
	}
}

// DBPath returns the SQLite database location inside the data directory.
func (c *Config) DBPath() string {
	return filepath.Join(c.DataDir, "showcase.db")
}
