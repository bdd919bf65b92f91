package internal

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultLedgerFile is the ledger path used when neither flags, environment nor config set one
const DefaultLedgerFile = "transactions.csv"

type Config struct {
	// LedgerFile is the path of the pipe-delimited ledger, relative to the working directory
	LedgerFile string `yaml:"ledger_file,omitempty"`

	// Currency is the ISO code used for display (e.g. "USD", "SEK")
	Currency string `yaml:"currency,omitempty"`

	// Locale overrides the system locale for number formatting (e.g. "sv_SE")
	Locale string `yaml:"locale,omitempty"`

	// NewestFirst controls listing order. Defaults to true.
	NewestFirst *bool `yaml:"newest_first,omitempty"`
}

// DefaultConfigPath returns the default config file path (~/.finledger/config.yaml)
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".finledger", "config.yaml")
}

// NewDefaultConfig creates the config used when no config file exists
func NewDefaultConfig() *Config {
	return &Config{LedgerFile: DefaultLedgerFile}
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if cfg.LedgerFile == "" {
		cfg.LedgerFile = DefaultLedgerFile
	}
	return &cfg, nil
}

// LoadConfigOrDefault loads path, falling back to defaults when the file does not exist.
// An empty path means DefaultConfigPath.
func LoadConfigOrDefault(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	if path == "" {
		return NewDefaultConfig(), nil
	}
	cfg, err := LoadConfig(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewDefaultConfig(), nil
	}
	return cfg, err
}

func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// ShowNewestFirst reports whether listings should put the latest record on top
func (c *Config) ShowNewestFirst() bool {
	return c == nil || c.NewestFirst == nil || *c.NewestFirst
}

// Order arranges records (kept oldest first) for display
func (c *Config) Order(records []Record) []Record {
	if c.ShowNewestFirst() {
		return NewestFirst(records)
	}
	return records
}
