package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/config"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/recommend"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/weather"
)

// openDatabase opens the household database, creating its directory on
// first run
func openDatabase(cfg *config.Config) (*database.DB, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

// loadPreferences returns saved budget preferences, or the defaults when the
// household has never saved any
func loadPreferences(ctx context.Context, db *database.DB, householdID string) (*database.BudgetPreferences, error) {
	prefs, err := db.GetPreferences(ctx, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to load preferences: %w", err)
	}
	if prefs == nil {
		prefs = database.DefaultPreferences(householdID)
	}
	return prefs, nil
}

// currentWeather fetches the weather context for scoring. Disabled or failing
// weather degrades to the mild fallback, never an error.
func currentWeather(ctx context.Context, cfg *config.Config) recommend.WeatherContext {
	if !cfg.Weather.Enabled {
		return recommend.FallbackWeather()
	}
	return weather.New().Context(ctx, cfg.Weather.Latitude, cfg.Weather.Longitude)
}

// parseDate validates and normalizes a "YYYY-MM-DD" argument, defaulting to
// today when empty
func parseDate(s string) (string, error) {
	if s == "" {
		return time.Now().Format(database.DateLayout), nil
	}
	t, err := time.ParseInLocation(database.DateLayout, s, time.Local)
	if err != nil {
		return "", fmt.Errorf("invalid date %q (use YYYY-MM-DD)", s)
	}
	return t.Format(database.DateLayout), nil
}

// parseDuration parses a human-readable duration like "7d", "2w", "1m"
func parseDuration(s string) (time.Duration, error) {
	if len(s) < 2 {
		return 0, fmt.Errorf("invalid duration format")
	}

	unit := s[len(s)-1]
	valueStr := s[:len(s)-1]

	var value int
	if _, err := fmt.Sscanf(valueStr, "%d", &value); err != nil {
		return 0, fmt.Errorf("invalid duration value")
	}

	switch unit {
	case 'd':
		return time.Duration(value) * 24 * time.Hour, nil
	case 'w':
		return time.Duration(value) * 7 * 24 * time.Hour, nil
	case 'm':
		return time.Duration(value) * 30 * 24 * time.Hour, nil
	default:
		return 0, fmt.Errorf("unknown duration unit: %c (use d, w, or m)", unit)
	}
}

// optional turns a possibly-empty flag value into a nullable field
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
