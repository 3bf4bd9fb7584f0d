package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables read by the application, possibly from a .env file.
const (
	EnvLedgerFile = "BM_LEDGER_FILE"
	EnvDebug      = "BM_DEBUG"
)

// DefaultLedgerFile is the ledger path used when none is configured.
const DefaultLedgerFile = "transactions.json"

// Config represents the application configuration.
type Config struct {
	LedgerFile string // LedgerFile is the path of the ledger, loaded at start and saved before exit.
	Debug      bool   // Debug enables debug logging.
}

// LoadConfig resolves the configuration from the command line flags, the
// environment and a .env file.
//
// Non empty flag values win over the environment. envFile names a .env file
// that must exist; when it is empty a .env file in the current directory is
// loaded if present. Variables already set in the environment are never
// overridden by a .env file.
func LoadConfig(envFile, ledgerFileFlag string, debugFlag bool) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	debug, err := parseBoolEnv(EnvDebug, false)
	if err != nil {
		return nil, err
	}

	config := &Config{
		LedgerFile: getEnvOrDefault(EnvLedgerFile, DefaultLedgerFile),
		Debug:      debug || debugFlag,
	}
	if ledgerFileFlag != "" {
		config.LedgerFile = ledgerFileFlag
	}
	return config, nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// parseBoolEnv parses a boolean from an environment variable.
// Returns defaultValue if the environment variable is not set.
func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("invalid boolean value for %s: %s", key, value)
	}
	return parsed, nil
}
