package config

import "time"

// LogFormat selects how log lines are written.
type LogFormat string

const (
	LogConsole LogFormat = "console"
	LogJSON    LogFormat = "json"
)

// Config is the top-level showcase configuration, corresponding to .showcase.yml.
type Config struct {
	Log        LogConfig        `yaml:"log" koanf:"log"`
	DataDir    string           `yaml:"data_dir" koanf:"data_dir"`
	Gallery    GalleryConfig    `yaml:"gallery" koanf:"gallery"`
	Calculator CalculatorConfig `yaml:"calculator" koanf:"calculator"`
	Portfolio  PortfolioConfig  `yaml:"portfolio" koanf:"portfolio"`
	Server     ServerConfig     `yaml:"server" koanf:"server"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string    `yaml:"level" koanf:"level"`
	Format LogFormat `yaml:"format" koanf:"format"`
}

// GalleryConfig controls catalog imports and the initial filter. An empty
// Include means the scanner's built-in image patterns.
type GalleryConfig struct {
	Source          string   `yaml:"source" koanf:"source"`
	Include         []string `yaml:"include" koanf:"include"`
	Exclude         []string `yaml:"exclude" koanf:"exclude"`
	DefaultCategory string   `yaml:"default_category" koanf:"default_category"`
}

// CalculatorConfig controls calculator sessions.
type CalculatorConfig struct {
	HistoryLimit int `yaml:"history_limit" koanf:"history_limit"`
	Precision    int `yaml:"precision" koanf:"precision"`
}

// PortfolioConfig points at the portfolio page source.
type PortfolioConfig struct {
	Source          string  `yaml:"source" koanf:"source"`
	RevealThreshold float64 `yaml:"reveal_threshold" koanf:"reveal_threshold"`
	Theme           string  `yaml:"theme" koanf:"theme"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Port            int           `yaml:"port" koanf:"port"`
	AllowAllOrigins bool          `yaml:"allow_all_origins" koanf:"allow_all_origins"`
	SessionTTL      time.Duration `yaml:"session_ttl" koanf:"session_ttl"`
}
