// Package config reads the optional nutriplan config file. Settings here
// are display and workflow defaults; everything nutritional lives in the
// database.
package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type Config struct {
	// DBPath overrides the default database location. The --db flag
	// still wins over both.
	DBPath string `toml:"db_path"`
	// DefaultCategory labels shopping-list lines whose ingredient has
	// no category. Empty means "Outros".
	DefaultCategory string `toml:"default_category"`
}

// Load reads the TOML config at path. A missing file is not an error and
// yields the zero config.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes the config as TOML, creating the file if needed.
func Save(path string, cfg Config) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}
	return nil
}
