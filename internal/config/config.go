package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

const defaultBaseURL = "https://api.linear.app/graphql"

// Config holds environment-driven configuration.
type Config struct {
	Linear struct {
		APIKey  string
		BaseURL string // default: https://api.linear.app/graphql
	}
}

// CredentialFilePath returns the fallback location of the API key:
// <user config dir>/linear-project-updates/config, a single-line file.
func CredentialFilePath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "linear-project-updates", "config"), nil
}

// Load reads configuration from environment variables, falling back to the
// credential file for the API key. A .env file in the working directory is
// loaded first, best-effort.
func Load(log *slog.Logger) (Config, error) {
	var cfg Config

	_ = godotenv.Load()

	key, err := resolveAPIKey(log)
	if err != nil {
		return cfg, err
	}
	cfg.Linear.APIKey = key

	cfg.Linear.BaseURL = os.Getenv("LINEAR_API_URL")
	if cfg.Linear.BaseURL == "" {
		cfg.Linear.BaseURL = defaultBaseURL
	}

	return cfg, nil
}

// resolveAPIKey tries LINEAR_API_KEY first, then the credential file. The
// env var short-circuits; the file is only consulted when the var is unset.
func resolveAPIKey(log *slog.Logger) (string, error) {
	if key := os.Getenv("LINEAR_API_KEY"); key != "" {
		return key, nil
	}

	path, err := CredentialFilePath()
	if err != nil {
		return "", missingKeyError(filepath.Join("~", ".config", "linear-project-updates", "config"))
	}

	content, readErr := os.ReadFile(path)
	if readErr == nil {
		if key := strings.TrimSpace(string(content)); key != "" {
			return key, nil
		}
	} else if !errors.Is(readErr, os.ErrNotExist) {
		// An unreadable file is reported but not fatal on its own; the env
		// var remains a valid remediation.
		log.Warn("failed to read credential file",
			slog.String("path", path),
			slog.String("error", readErr.Error()),
		)
	}

	return "", missingKeyError(path)
}

// missingKeyError describes both remediation paths, including the literal
// credential file location.
func missingKeyError(path string) error {
	dir := filepath.Dir(path)
	return fmt.Errorf(`LINEAR_API_KEY not found.
Please either:
1. Set the environment variable: export LINEAR_API_KEY='your_api_key_here'
2. Create a config file at %s containing your API key
   mkdir -p %s
   echo 'your_api_key_here' > %s`, path, dir, path)
}
