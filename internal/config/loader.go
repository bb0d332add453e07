package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// Load reads and parses the configuration file. A missing file is not an
// error: defaults apply, so the tracker works out of the box.
func Load(path string) (*Config, error) {
	expandedPath, err := expandPath(path)
	if err != nil {
		return nil, fmt.Errorf("failed to expand config path: %w", err)
	}

	cfg := Default()

	data, err := os.ReadFile(expandedPath)
	if err != nil {
		if os.IsNotExist(err) {
			if err := cfg.expandPaths(); err != nil {
				return nil, err
			}
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.expandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// MustLoad loads config or exits with error
func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// expandPath expands ~ to home directory
func expandPath(path string) (string, error) {
	if !strings.HasPrefix(path, "~") {
		return path, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, path[1:]), nil
}

// expandPaths expands ~ in all path fields
func (c *Config) expandPaths() error {
	var err error

	c.Database.Path, err = expandPath(c.Database.Path)
	return err
}

// Validate checks that the configuration is valid
func (c *Config) Validate() error {
	var errs []error

	if c.Household.ID == "" {
		errs = append(errs, errors.New("household.id is required"))
	}

	if c.Database.Path == "" {
		errs = append(errs, errors.New("database.path is required"))
	}

	if c.Weather.Enabled {
		if c.Weather.Latitude < -90 || c.Weather.Latitude > 90 {
			errs = append(errs, errors.New("weather.latitude must be between -90 and 90"))
		}
		if c.Weather.Longitude < -180 || c.Weather.Longitude > 180 {
			errs = append(errs, errors.New("weather.longitude must be between -180 and 180"))
		}
	}

	if c.Display.Currency == "" {
		errs = append(errs, errors.New("display.currency is required"))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// EnsureDirectories creates the directory for the database file
func (c *Config) EnsureDirectories() error {
	if err := os.MkdirAll(filepath.Dir(c.Database.Path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	return nil
}
