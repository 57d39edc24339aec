package config

import (
	"os"

	"github.com/joho/godotenv"
)

// DotEnvFiles are read in order; earlier files win, and variables already in
// the environment win over both.
var DotEnvFiles = []string{".env.local", ".env"}

// LoadDotEnv copies SHOWCASE_* (and any other) variables from the dotenv files
// that exist into the process environment. It returns the files it read.
func LoadDotEnv() ([]string, error) {
	var found []string
	for _, f := range DotEnvFiles {
		if _, err := os.Stat(f); err == nil {
			found = append(found, f)
		}
	}
	if len(found) == 0 {
		return nil, nil
	}
	if err := godotenv.Load(found...); err != nil {
		return nil, err
	}
	return found, nil
}
