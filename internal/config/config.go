package config

// Config represents the application configuration
type Config struct {
	Household HouseholdConfig `toml:"household"`
	Database  DatabaseConfig  `toml:"database"`
	Weather   WeatherConfig   `toml:"weather"`
	Display   DisplayConfig   `toml:"display"`
}

// HouseholdConfig identifies which household's records this installation
// reads and writes. All rows are scoped by this ID.
type HouseholdConfig struct {
	ID string `toml:"id"`
}

// DatabaseConfig contains database settings
type DatabaseConfig struct {
	Path string `toml:"path"`
}

// WeatherConfig contains forecast provider settings. Weather only feeds a
// small scoring bonus; disabling it falls back to a mild 72°F context.
type WeatherConfig struct {
	Enabled   bool    `toml:"enabled"`
	Latitude  float64 `toml:"latitude"`
	Longitude float64 `toml:"longitude"`
}

// DisplayConfig contains output formatting settings
type DisplayConfig struct {
	Currency string `toml:"currency"`
}

// Default returns a Config with sensible defaults
func Default() *Config {
	return &Config{
		Household: HouseholdConfig{
			ID: "default",
		},
		Database: DatabaseConfig{
			Path: "~/.local/share/foodchooser/foodchooser.db",
		},
		Weather: WeatherConfig{
			Enabled:   false,
			Latitude:  0,
			Longitude: 0,
		},
		Display: DisplayConfig{
			Currency: "$",
		},
	}
}
