package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// LoadEnv pulls in an optional .env file. The demo has complete built-in
// defaults, so a missing file is not an error.
func LoadEnv() {
	_ = godotenv.Load()
}

// GetEnvVariable reads a single environment variable, failing on empty
// names or unset values so callers can fall back explicitly.
func GetEnvVariable(v string) (string, error) {
	if v == "" {
		return "", fmt.Errorf("input param empty")
	}
	b := os.Getenv(v)
	if b == "" {
		return "", fmt.Errorf("failed to get variable for %s", v)
	}
	return b, nil
}
