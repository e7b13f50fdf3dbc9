package bankbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// Defaults applied when no configuration file or flag says otherwise.
const (
	DefaultDataFile = "bankbook.json"
	DefaultCurrency = "USD"
)

// Config holds the application settings. Only presentation and file-location
// concerns live here; nothing in the config changes stored data.
type Config struct {
	// DataFile is the path of the durable account file.
	DataFile string `yaml:"data_file"`
	// Currency is the ISO code used to format amounts for display.
	Currency string `yaml:"currency"`
}

// DefaultConfig returns the built-in settings.
func DefaultConfig() Config {
	return Config{DataFile: DefaultDataFile, Currency: DefaultCurrency}
}

// LoadConfig reads a YAML configuration file and fills missing fields with
// the defaults. An absent file is not an error: the defaults are returned.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("could not read config %q: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("could not parse config %q: %w", path, err)
	}
	if cfg.DataFile == "" {
		cfg.DataFile = DefaultDataFile
	}
	if cfg.Currency == "" {
		cfg.Currency = DefaultCurrency
	}
	return cfg, nil
}
