package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"
)

// EnvPrefix prefixes environment overrides. A double underscore separates
// nesting levels: SHOWCASE_SERVER__PORT sets server.port.
const EnvPrefix = "SHOWCASE_"

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (SHOWCASE_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	// Start from defaults.
	cfg := DefaultConfig()

	// Load YAML file if it exists.
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

var validLogLevels = map[string]bool{
	"trace": true,
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

var validLogFormats = map[LogFormat]bool{
	LogConsole: true,
	LogJSON:    true,
}

// Validate checks that the configuration contains valid values.
func (c *Config) Validate() error {
	if !validLogLevels[strings.ToLower(c.Log.Level)] {
		return fmt.Errorf("invalid log.level %q: must be one of trace, debug, info, warn, error", c.Log.Level)
	}
	if !validLogFormats[c.Log.Format] {
		return fmt.Errorf("invalid log.format %q: must be console or json", c.Log.Format)
	}

	if c.DataDir == "" {
		return fmt.Errorf("data_dir is required")
	}

	if c.Gallery.DefaultCategory == "" {
		return fmt.Errorf("gallery.default_category is required")
	}

	if c.Calculator.HistoryLimit < 1 || c.Calculator.HistoryLimit > 1000 {
		return fmt.Errorf("calculator.history_limit must be between 1 and 1000")
	}
	if c.Calculator.Precision < 0 || c.Calculator.Precision > 15 {
		return fmt.Errorf("calculator.precision must be between 0 and 15")
	}

	if c.Portfolio.RevealThreshold <= 0 || c.Portfolio.RevealThreshold > 1 {
		return fmt.Errorf("portfolio.reveal_threshold must be in (0, 1]")
	}

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be between 1 and 65535")
	}
	if c.Server.SessionTTL < 0 {
		return fmt.Errorf("server.session_ttl must be non-negative")
	}

	return nil
}
