package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// DefaultDataFile is where the ledger snapshot lives unless configured otherwise
const DefaultDataFile = "data/budget_data.json"

// CLIConfig holds settings for the budgetly command-line ledger.
type CLIConfig struct {
	Ledger LedgerConfig `toml:"ledger"`
}

// LedgerConfig holds ledger file and display settings.
type LedgerConfig struct {
	DataFile string `toml:"data_file"`
	Currency string `toml:"currency"`
}

// DefaultCLIConfig returns the default CLI configuration.
func DefaultCLIConfig() CLIConfig {
	return CLIConfig{
		Ledger: LedgerConfig{
			DataFile: DefaultDataFile,
			Currency: "$",
		},
	}
}

// CLIConfigDir returns the XDG-compliant config directory.
func CLIConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "budgetly")
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".config", "budgetly")
}

// CLIConfigPath returns the full path to the CLI config file.
func CLIConfigPath() string {
	return filepath.Join(CLIConfigDir(), "config.toml")
}

// LoadCLI reads the CLI config file, returning defaults if it doesn't exist.
// BUDGETLY_DATA overrides the configured data file.
func LoadCLI() (CLIConfig, error) {
	cfg := DefaultCLIConfig()

	data, err := os.ReadFile(CLIConfigPath())
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return cfg, fmt.Errorf("reading config: %w", err)
	}
	if err == nil {
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config: %w", err)
		}
	}

	if env := os.Getenv("BUDGETLY_DATA"); env != "" {
		cfg.Ledger.DataFile = env
	}
	if cfg.Ledger.DataFile == "" {
		cfg.Ledger.DataFile = DefaultDataFile
	}

	return cfg, nil
}
