package database

import (
	"math"
	"strings"
	"time"
)

// DateLayout is the storage format for calendar dates. Dates are stored as
// plain "YYYY-MM-DD" strings so a logged day never shifts with the machine
// timezone.
const DateLayout = "2006-01-02"

// SeedMarker flags demo/synthetic records via the notes field. Rows carrying
// it (or seed_only=1) are excluded from spend aggregation but still feed the
// recommendation engine.
const SeedMarker = "[seed]"

// MealRecord represents a single logged meal event.
type MealRecord struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id"`
	Date        string    `json:"date"`
	Restaurant  *string   `json:"restaurant,omitempty"`
	Dish        string    `json:"dish"`
	Cuisine     string    `json:"cuisine"`
	Cost        float64   `json:"cost"`
	Rating      *int      `json:"rating,omitempty"`
	Notes       *string   `json:"notes,omitempty"`
	SeedOnly    bool      `json:"seed_only"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// RatingOrDefault returns the rating, defaulting to 3 when absent
func (m *MealRecord) RatingOrDefault() int {
	if m.Rating == nil {
		return 3
	}
	return *m.Rating
}

// Day parses the record's date as local midnight of that calendar day
func (m *MealRecord) Day() time.Time {
	t, err := time.ParseInLocation(DateLayout, m.Date, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// DaysSince returns whole calendar days between the record's date and now,
// never negative. Rounding absorbs DST-shortened or -lengthened days.
func (m *MealRecord) DaysSince(now time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	days := int(math.Round(today.Sub(m.Day()).Hours() / 24))
	if days < 0 {
		return 0
	}
	return days
}

// IsSeed reports whether the record is demo data, via either the flag or the
// reserved notes marker
func (m *MealRecord) IsSeed() bool {
	if m.SeedOnly {
		return true
	}
	return m.Notes != nil && strings.Contains(*m.Notes, SeedMarker)
}

// SameItem reports whether the record describes the same (restaurant, dish)
// pair. Edits that change the pair are treated as new records to preserve
// history.
func (m *MealRecord) SameItem(restaurant *string, dish string) bool {
	a := ""
	if m.Restaurant != nil {
		a = strings.ToLower(strings.TrimSpace(*m.Restaurant))
	}
	b := ""
	if restaurant != nil {
		b = strings.ToLower(strings.TrimSpace(*restaurant))
	}
	return a == b && strings.EqualFold(strings.TrimSpace(m.Dish), strings.TrimSpace(dish))
}

// GroceryTrip represents a grocery store visit
type GroceryTrip struct {
	ID          string    `json:"id"`
	HouseholdID string    `json:"household_id"`
	Date        string    `json:"date"`
	Store       string    `json:"store"`
	Amount      float64   `json:"amount"`
	Notes       *string   `json:"notes,omitempty"`
	SeedOnly    bool      `json:"seed_only"`
	CreatedAt   time.Time `json:"created_at"`
}

// IsSeed reports whether the trip is demo data
func (g *GroceryTrip) IsSeed() bool {
	if g.SeedOnly {
		return true
	}
	return g.Notes != nil && strings.Contains(*g.Notes, SeedMarker)
}

// Day parses the trip's date as local midnight of that calendar day
func (g *GroceryTrip) Day() time.Time {
	t, err := time.ParseInLocation(DateLayout, g.Date, time.Local)
	if err != nil {
		return time.Time{}
	}
	return t
}

// BudgetPreferences is the household-scoped budget singleton
type BudgetPreferences struct {
	HouseholdID      string    `json:"household_id"`
	Min              float64   `json:"min"`
	Max              float64   `json:"max"`
	ForbidRepeatDays int       `json:"forbid_repeat_days"`
	UpdatedAt        time.Time `json:"updated_at"`
}

// DefaultPreferences returns the preferences used when none are saved
func DefaultPreferences(householdID string) *BudgetPreferences {
	return &BudgetPreferences{
		HouseholdID:      householdID,
		Min:              10,
		Max:              35,
		ForbidRepeatDays: 1,
	}
}

// DisabledItem marks a normalized (restaurant, dish) pair as excluded from
// ranking. The display strings are kept so the list view stays readable.
type DisabledItem struct {
	HouseholdID string    `json:"household_id"`
	ItemKey     string    `json:"item_key"`
	Restaurant  *string   `json:"restaurant,omitempty"`
	Dish        string    `json:"dish"`
	Disabled    bool      `json:"disabled"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CuisineOverride is a boost count for a cuisine, matched by exact string.
// Used only by the cuisine-level recommender.
type CuisineOverride struct {
	HouseholdID string `json:"household_id"`
	Cuisine     string `json:"cuisine"`
	Count       int    `json:"count"`
}
