package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/manifoldco/promptui"
)

// detectGallerySource looks for a likely image directory or manifest in the
// current directory.
func detectGallerySource() string {
	for _, candidate := range []string{"gallery.yml", "gallery.yaml", "images", "photos", "img"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}
	return "images"
}

// RunWizard runs an interactive configuration wizard and returns the
// resulting Config. It also saves the config to path.
func RunWizard(path string) (*Config, error) {
	fmt.Println("Welcome to showcase! Let's configure your project.")
	fmt.Println()

	cfg := DefaultConfig()

	// 1. Gallery source.
	sourcePrompt := promptui.Prompt{
		Label:   "Gallery image directory or manifest",
		Default: detectGallerySource(),
	}
	source, err := sourcePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("gallery source: %w", err)
	}
	cfg.Gallery.Source = strings.TrimSpace(source)

	// 2. Extra exclude patterns.
	excludePrompt := promptui.Prompt{
		Label:   "Extra exclude patterns (comma-separated, leave blank for defaults)",
		Default: "",
	}
	excludeStr, err := excludePrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("exclude patterns: %w", err)
	}
	if extra := splitAndTrim(excludeStr); len(extra) > 0 {
		cfg.Gallery.Exclude = append(append([]string{}, DefaultExcludes...), extra...)
	}

	// 3. Server port.
	portPrompt := promptui.Prompt{
		Label:    "HTTP server port",
		Default:  strconv.Itoa(cfg.Server.Port),
		Validate: validatePort,
	}
	portStr, err := portPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("server port: %w", err)
	}
	cfg.Server.Port, _ = strconv.Atoi(strings.TrimSpace(portStr))

	// 4. Log format.
	formatPrompt := promptui.Select{
		Label: "Log format",
		Items: []string{
			"console — human-readable",
			"json    — one JSON object per line",
		},
	}
	formatIdx, _, err := formatPrompt.Run()
	if err != nil {
		return nil, fmt.Errorf("log format selection: %w", err)
	}
	cfg.Log.Format = []LogFormat{LogConsole, LogJSON}[formatIdx]

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := cfg.Save(path); err != nil {
		return nil, fmt.Errorf("saving config: %w", err)
	}

	fmt.Printf("\nConfiguration saved to %s\n", path)
	return cfg, nil
}

func validatePort(s string) error {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 || n > 65535 {
		return fmt.Errorf("enter a port between 1 and 65535")
	}
	return nil
}

// splitAndTrim splits a comma-separated string and trims whitespace.
func splitAndTrim(s string) []string {
	var result []string
	for _, part := range strings.Split(s, ",") {
		if token := strings.TrimSpace(part); token != "" {
			result = append(result, token)
		}
	}
	return result
}
