package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// CreateMeal inserts a new meal record
func (db *DB) CreateMeal(ctx context.Context, m *MealRecord) error {
	if m.ID == "" {
		m.ID = uuid.New().String()
	}
	m.CreatedAt = time.Now()
	m.UpdatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO meals (
			id, household_id, date, restaurant, dish, cuisine,
			cost, rating, notes, seed_only, created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		m.ID, m.HouseholdID, m.Date, NullString(m.Restaurant), m.Dish, m.Cuisine,
		m.Cost, NullInt(m.Rating), NullString(m.Notes), m.SeedOnly,
		m.CreatedAt, m.UpdatedAt,
	)
	return err
}

// GetMeal retrieves a meal record by ID, or nil when absent
func (db *DB) GetMeal(ctx context.Context, householdID, id string) (*MealRecord, error) {
	m := &MealRecord{}
	var restaurant, notes sql.NullString
	var rating sql.NullInt64

	err := db.QueryRowContext(ctx, `
		SELECT id, household_id, date, restaurant, dish, cuisine,
		       cost, rating, notes, seed_only, created_at, updated_at
		FROM meals WHERE household_id = ? AND id = ?
	`, householdID, id).Scan(
		&m.ID, &m.HouseholdID, &m.Date, &restaurant, &m.Dish, &m.Cuisine,
		&m.Cost, &rating, &notes, &m.SeedOnly, &m.CreatedAt, &m.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	m.Restaurant = StringPtr(restaurant)
	m.Rating = IntPtr(rating)
	m.Notes = StringPtr(notes)
	return m, nil
}

// UpdateMeal updates an existing meal record in place. Callers must only do
// this when restaurant+dish are unchanged; otherwise create a new record so
// history stays intact.
func (db *DB) UpdateMeal(ctx context.Context, m *MealRecord) error {
	m.UpdatedAt = time.Now()

	result, err := db.ExecContext(ctx, `
		UPDATE meals SET
			date = ?, restaurant = ?, dish = ?, cuisine = ?,
			cost = ?, rating = ?, notes = ?, seed_only = ?, updated_at = ?
		WHERE household_id = ? AND id = ?
	`,
		m.Date, NullString(m.Restaurant), m.Dish, m.Cuisine,
		m.Cost, NullInt(m.Rating), NullString(m.Notes), m.SeedOnly,
		m.UpdatedAt, m.HouseholdID, m.ID,
	)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("meal not found: %s", m.ID)
	}
	return nil
}

// DeleteMeal removes a meal record
func (db *DB) DeleteMeal(ctx context.Context, householdID, id string) error {
	result, err := db.ExecContext(ctx, `
		DELETE FROM meals WHERE household_id = ? AND id = ?
	`, householdID, id)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("meal not found: %s", id)
	}
	return nil
}

// MealListOptions contains optional filters for listing meals
type MealListOptions struct {
	Cuisine *string
	Since   *string // inclusive "YYYY-MM-DD" lower bound
	Limit   int
	Offset  int
}

// ListMeals retrieves meal history for a household, newest first
func (db *DB) ListMeals(ctx context.Context, householdID string, opts MealListOptions) ([]MealRecord, error) {
	query := `
		SELECT id, household_id, date, restaurant, dish, cuisine,
		       cost, rating, notes, seed_only, created_at, updated_at
		FROM meals WHERE household_id = ?
	`
	args := []interface{}{householdID}

	if opts.Cuisine != nil {
		query += " AND cuisine = ?"
		args = append(args, *opts.Cuisine)
	}
	if opts.Since != nil {
		query += " AND date >= ?"
		args = append(args, *opts.Since)
	}

	query += " ORDER BY date DESC, created_at DESC"

	if opts.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", opts.Limit)
		if opts.Offset > 0 {
			query += fmt.Sprintf(" OFFSET %d", opts.Offset)
		}
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meals []MealRecord
	for rows.Next() {
		m := MealRecord{}
		var restaurant, notes sql.NullString
		var rating sql.NullInt64

		if err := rows.Scan(
			&m.ID, &m.HouseholdID, &m.Date, &restaurant, &m.Dish, &m.Cuisine,
			&m.Cost, &rating, &notes, &m.SeedOnly, &m.CreatedAt, &m.UpdatedAt,
		); err != nil {
			return nil, err
		}

		m.Restaurant = StringPtr(restaurant)
		m.Rating = IntPtr(rating)
		m.Notes = StringPtr(notes)
		meals = append(meals, m)
	}

	return meals, rows.Err()
}

// CreateGrocery inserts a new grocery trip
func (db *DB) CreateGrocery(ctx context.Context, g *GroceryTrip) error {
	if g.ID == "" {
		g.ID = uuid.New().String()
	}
	g.CreatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO groceries (id, household_id, date, store, amount, notes, seed_only, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, g.ID, g.HouseholdID, g.Date, g.Store, g.Amount, NullString(g.Notes), g.SeedOnly, g.CreatedAt)
	return err
}

// ListGroceries retrieves grocery trips for a household, newest first
func (db *DB) ListGroceries(ctx context.Context, householdID string, since *string, limit int) ([]GroceryTrip, error) {
	query := `
		SELECT id, household_id, date, store, amount, notes, seed_only, created_at
		FROM groceries WHERE household_id = ?
	`
	args := []interface{}{householdID}

	if since != nil {
		query += " AND date >= ?"
		args = append(args, *since)
	}

	query += " ORDER BY date DESC, created_at DESC"

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var trips []GroceryTrip
	for rows.Next() {
		g := GroceryTrip{}
		var notes sql.NullString

		if err := rows.Scan(&g.ID, &g.HouseholdID, &g.Date, &g.Store, &g.Amount, &notes, &g.SeedOnly, &g.CreatedAt); err != nil {
			return nil, err
		}

		g.Notes = StringPtr(notes)
		trips = append(trips, g)
	}

	return trips, rows.Err()
}

// GetPreferences retrieves the saved budget preferences, or nil when none
// have been saved yet
func (db *DB) GetPreferences(ctx context.Context, householdID string) (*BudgetPreferences, error) {
	p := &BudgetPreferences{}

	err := db.QueryRowContext(ctx, `
		SELECT household_id, min, max, forbid_repeat_days, updated_at
		FROM preferences WHERE household_id = ?
	`, householdID).Scan(&p.HouseholdID, &p.Min, &p.Max, &p.ForbidRepeatDays, &p.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SavePreferences upserts the household budget preferences. Validation
// happens at the CLI boundary before this is called.
func (db *DB) SavePreferences(ctx context.Context, p *BudgetPreferences) error {
	p.UpdatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO preferences (household_id, min, max, forbid_repeat_days, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(household_id) DO UPDATE SET
			min = excluded.min,
			max = excluded.max,
			forbid_repeat_days = excluded.forbid_repeat_days,
			updated_at = excluded.updated_at
	`, p.HouseholdID, p.Min, p.Max, p.ForbidRepeatDays, p.UpdatedAt)
	return err
}

// SetDisabledItem upserts the disabled flag for a normalized item key
func (db *DB) SetDisabledItem(ctx context.Context, d *DisabledItem) error {
	d.UpdatedAt = time.Now()

	_, err := db.ExecContext(ctx, `
		INSERT INTO disabled_items (household_id, item_key, restaurant, dish, disabled, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(household_id, item_key) DO UPDATE SET
			disabled = excluded.disabled,
			updated_at = excluded.updated_at
	`, d.HouseholdID, d.ItemKey, NullString(d.Restaurant), d.Dish, d.Disabled, d.UpdatedAt)
	return err
}

// ListDisabledItems retrieves all disabled-item rows for a household
func (db *DB) ListDisabledItems(ctx context.Context, householdID string) ([]DisabledItem, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT household_id, item_key, restaurant, dish, disabled, updated_at
		FROM disabled_items WHERE household_id = ?
		ORDER BY dish
	`, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []DisabledItem
	for rows.Next() {
		d := DisabledItem{}
		var restaurant sql.NullString

		if err := rows.Scan(&d.HouseholdID, &d.ItemKey, &restaurant, &d.Dish, &d.Disabled, &d.UpdatedAt); err != nil {
			return nil, err
		}

		d.Restaurant = StringPtr(restaurant)
		items = append(items, d)
	}

	return items, rows.Err()
}

// DisabledSet returns the current disabled set as key -> true. Absent keys
// default to "not disabled".
func (db *DB) DisabledSet(ctx context.Context, householdID string) (map[string]bool, error) {
	items, err := db.ListDisabledItems(ctx, householdID)
	if err != nil {
		return nil, err
	}

	set := make(map[string]bool, len(items))
	for _, d := range items {
		if d.Disabled {
			set[d.ItemKey] = true
		}
	}
	return set, nil
}

// BoostCuisine increments the override count for a cuisine (exact string match)
func (db *DB) BoostCuisine(ctx context.Context, householdID, cuisine string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO cuisine_overrides (household_id, cuisine, count)
		VALUES (?, ?, 1)
		ON CONFLICT(household_id, cuisine) DO UPDATE SET count = count + 1
	`, householdID, cuisine)
	return err
}

// ClearCuisineOverride removes the override for a cuisine
func (db *DB) ClearCuisineOverride(ctx context.Context, householdID, cuisine string) error {
	result, err := db.ExecContext(ctx, `
		DELETE FROM cuisine_overrides WHERE household_id = ? AND cuisine = ?
	`, householdID, cuisine)
	if err != nil {
		return err
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("no override for cuisine: %s", cuisine)
	}
	return nil
}

// CuisineOverrides returns the cuisine -> boost count mapping
func (db *DB) CuisineOverrides(ctx context.Context, householdID string) (map[string]int, error) {
	rows, err := db.QueryContext(ctx, `
		SELECT cuisine, count FROM cuisine_overrides WHERE household_id = ?
	`, householdID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	overrides := make(map[string]int)
	for rows.Next() {
		var cuisine string
		var count int
		if err := rows.Scan(&cuisine, &count); err != nil {
			return nil, err
		}
		overrides[cuisine] = count
	}

	return overrides, rows.Err()
}

// NullString converts a *string to sql.NullString
func NullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

// NullInt converts a *int to sql.NullInt64
func NullInt(i *int) sql.NullInt64 {
	if i == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*i), Valid: true}
}

// StringPtr converts a sql.NullString to *string
func StringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	return &ns.String
}

// IntPtr converts a sql.NullInt64 to *int
func IntPtr(ni sql.NullInt64) *int {
	if !ni.Valid {
		return nil
	}
	i := int(ni.Int64)
	return &i
}
