package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

const testHousehold = "test-household"

func setupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func TestOpen(t *testing.T) {
	db := setupTestDB(t)

	for _, table := range []string{"meals", "groceries", "preferences", "disabled_items", "cuisine_overrides"} {
		var count int
		err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&count)
		if err != nil {
			t.Fatalf("failed to query tables: %v", err)
		}
		if count != 1 {
			t.Errorf("expected %s table to exist", table)
		}
	}

	if err := db.Health(context.Background()); err != nil {
		t.Errorf("Health() error = %v", err)
	}
}

func TestMealCRUD(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	restaurant := "Chipotle"
	rating := 4
	m := &MealRecord{
		HouseholdID: testHousehold,
		Date:        "2026-08-20",
		Restaurant:  &restaurant,
		Dish:        "Bowl",
		Cuisine:     "Mexican",
		Cost:        14.5,
		Rating:      &rating,
	}

	if err := db.CreateMeal(ctx, m); err != nil {
		t.Fatalf("CreateMeal() error = %v", err)
	}
	if m.ID == "" {
		t.Fatal("expected generated ID")
	}

	got, err := db.GetMeal(ctx, testHousehold, m.ID)
	if err != nil {
		t.Fatalf("GetMeal() error = %v", err)
	}
	if got == nil {
		t.Fatal("expected meal, got nil")
	}
	if got.Dish != "Bowl" || got.Cost != 14.5 || *got.Restaurant != "Chipotle" || *got.Rating != 4 {
		t.Errorf("round-tripped meal = %+v", got)
	}
	if got.Notes != nil {
		t.Errorf("expected nil notes, got %v", *got.Notes)
	}

	// Update in place (same restaurant+dish)
	got.Cost = 15.25
	newRating := 5
	got.Rating = &newRating
	if err := db.UpdateMeal(ctx, got); err != nil {
		t.Fatalf("UpdateMeal() error = %v", err)
	}

	updated, err := db.GetMeal(ctx, testHousehold, m.ID)
	if err != nil {
		t.Fatalf("GetMeal() after update error = %v", err)
	}
	if updated.Cost != 15.25 || *updated.Rating != 5 {
		t.Errorf("update not persisted: %+v", updated)
	}

	// Delete
	if err := db.DeleteMeal(ctx, testHousehold, m.ID); err != nil {
		t.Fatalf("DeleteMeal() error = %v", err)
	}
	gone, err := db.GetMeal(ctx, testHousehold, m.ID)
	if err != nil {
		t.Fatalf("GetMeal() after delete error = %v", err)
	}
	if gone != nil {
		t.Error("expected nil after delete")
	}

	if err := db.DeleteMeal(ctx, testHousehold, m.ID); err == nil {
		t.Error("expected error deleting missing meal")
	}
}

func TestListMeals(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	dates := []string{"2026-08-01", "2026-08-10", "2026-08-20"}
	cuisines := []string{"Thai", "Mexican", "Thai"}
	for i := range dates {
		m := &MealRecord{
			HouseholdID: testHousehold,
			Date:        dates[i],
			Dish:        "Dish " + dates[i],
			Cuisine:     cuisines[i],
			Cost:        20,
		}
		if err := db.CreateMeal(ctx, m); err != nil {
			t.Fatalf("CreateMeal() error = %v", err)
		}
	}

	// Another household's record must never leak
	other := &MealRecord{HouseholdID: "other", Date: "2026-08-15", Dish: "Hidden", Cuisine: "Thai", Cost: 10}
	if err := db.CreateMeal(ctx, other); err != nil {
		t.Fatalf("CreateMeal() error = %v", err)
	}

	all, err := db.ListMeals(ctx, testHousehold, MealListOptions{})
	if err != nil {
		t.Fatalf("ListMeals() error = %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 meals, got %d", len(all))
	}
	if all[0].Date != "2026-08-20" {
		t.Errorf("expected newest first, got %s", all[0].Date)
	}

	cuisine := "Thai"
	thai, err := db.ListMeals(ctx, testHousehold, MealListOptions{Cuisine: &cuisine})
	if err != nil {
		t.Fatalf("ListMeals(cuisine) error = %v", err)
	}
	if len(thai) != 2 {
		t.Errorf("expected 2 Thai meals, got %d", len(thai))
	}

	since := "2026-08-10"
	recent, err := db.ListMeals(ctx, testHousehold, MealListOptions{Since: &since})
	if err != nil {
		t.Fatalf("ListMeals(since) error = %v", err)
	}
	if len(recent) != 2 {
		t.Errorf("expected 2 meals since %s, got %d", since, len(recent))
	}

	limited, err := db.ListMeals(ctx, testHousehold, MealListOptions{Limit: 1})
	if err != nil {
		t.Fatalf("ListMeals(limit) error = %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("expected 1 meal with limit, got %d", len(limited))
	}
}

func TestGroceries(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	g := &GroceryTrip{
		HouseholdID: testHousehold,
		Date:        "2026-08-18",
		Store:       "QFC",
		Amount:      85.25,
	}
	if err := db.CreateGrocery(ctx, g); err != nil {
		t.Fatalf("CreateGrocery() error = %v", err)
	}

	trips, err := db.ListGroceries(ctx, testHousehold, nil, 0)
	if err != nil {
		t.Fatalf("ListGroceries() error = %v", err)
	}
	if len(trips) != 1 || trips[0].Store != "QFC" || trips[0].Amount != 85.25 {
		t.Errorf("trips = %+v", trips)
	}
}

func TestPreferences(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	// Nothing saved yet
	p, err := db.GetPreferences(ctx, testHousehold)
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}
	if p != nil {
		t.Errorf("expected nil preferences, got %+v", p)
	}

	if err := db.SavePreferences(ctx, &BudgetPreferences{
		HouseholdID: testHousehold, Min: 12, Max: 40, ForbidRepeatDays: 2,
	}); err != nil {
		t.Fatalf("SavePreferences() error = %v", err)
	}

	p, err = db.GetPreferences(ctx, testHousehold)
	if err != nil {
		t.Fatalf("GetPreferences() error = %v", err)
	}
	if p.Min != 12 || p.Max != 40 || p.ForbidRepeatDays != 2 {
		t.Errorf("preferences = %+v", p)
	}

	// Upsert overwrites
	if err := db.SavePreferences(ctx, &BudgetPreferences{
		HouseholdID: testHousehold, Min: 5, Max: 25, ForbidRepeatDays: 0,
	}); err != nil {
		t.Fatalf("SavePreferences() upsert error = %v", err)
	}
	p, _ = db.GetPreferences(ctx, testHousehold)
	if p.Min != 5 || p.Max != 25 || p.ForbidRepeatDays != 0 {
		t.Errorf("upserted preferences = %+v", p)
	}
}

func TestDisabledItems(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	restaurant := "Chipotle"
	d := &DisabledItem{
		HouseholdID: testHousehold,
		ItemKey:     "chipotle|bowl",
		Restaurant:  &restaurant,
		Dish:        "Bowl",
		Disabled:    true,
	}
	if err := db.SetDisabledItem(ctx, d); err != nil {
		t.Fatalf("SetDisabledItem() error = %v", err)
	}

	set, err := db.DisabledSet(ctx, testHousehold)
	if err != nil {
		t.Fatalf("DisabledSet() error = %v", err)
	}
	if !set["chipotle|bowl"] {
		t.Error("expected chipotle|bowl disabled")
	}

	// Re-enable
	d.Disabled = false
	if err := db.SetDisabledItem(ctx, d); err != nil {
		t.Fatalf("SetDisabledItem() re-enable error = %v", err)
	}
	set, _ = db.DisabledSet(ctx, testHousehold)
	if set["chipotle|bowl"] {
		t.Error("expected chipotle|bowl re-enabled")
	}
}

func TestCuisineOverrides(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()

	if err := db.BoostCuisine(ctx, testHousehold, "Thai"); err != nil {
		t.Fatalf("BoostCuisine() error = %v", err)
	}
	if err := db.BoostCuisine(ctx, testHousehold, "Thai"); err != nil {
		t.Fatalf("BoostCuisine() error = %v", err)
	}

	overrides, err := db.CuisineOverrides(ctx, testHousehold)
	if err != nil {
		t.Fatalf("CuisineOverrides() error = %v", err)
	}
	if overrides["Thai"] != 2 {
		t.Errorf("Thai boost = %d, want 2", overrides["Thai"])
	}

	if err := db.ClearCuisineOverride(ctx, testHousehold, "Thai"); err != nil {
		t.Fatalf("ClearCuisineOverride() error = %v", err)
	}
	if err := db.ClearCuisineOverride(ctx, testHousehold, "Thai"); err == nil {
		t.Error("expected error clearing missing override")
	}
}

func TestMealDaysSince(t *testing.T) {
	now := time.Now()

	tests := []struct {
		daysAgo  int
		expected int
	}{
		{0, 0},
		{1, 1},
		{10, 10},
	}

	for _, tt := range tests {
		m := &MealRecord{Date: now.AddDate(0, 0, -tt.daysAgo).Format(DateLayout)}
		if got := m.DaysSince(now); got != tt.expected {
			t.Errorf("DaysSince(%d days ago) = %d, want %d", tt.daysAgo, got, tt.expected)
		}
	}

	// Future dates clamp to zero
	future := &MealRecord{Date: now.AddDate(0, 0, 3).Format(DateLayout)}
	if got := future.DaysSince(now); got != 0 {
		t.Errorf("DaysSince(future) = %d, want 0", got)
	}
}

func TestIsSeed(t *testing.T) {
	marker := "imported " + SeedMarker
	plain := "just a note"

	tests := []struct {
		name     string
		meal     MealRecord
		expected bool
	}{
		{"flagged", MealRecord{SeedOnly: true}, true},
		{"marker in notes", MealRecord{Notes: &marker}, true},
		{"plain note", MealRecord{Notes: &plain}, false},
		{"no notes", MealRecord{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.meal.IsSeed(); got != tt.expected {
				t.Errorf("IsSeed() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestSameItem(t *testing.T) {
	restaurant := "Chipotle"
	m := &MealRecord{Restaurant: &restaurant, Dish: "Bowl"}

	padded := "  chipotle "
	if !m.SameItem(&padded, "BOWL") {
		t.Error("expected match despite case and whitespace")
	}

	other := "Qdoba"
	if m.SameItem(&other, "Bowl") {
		t.Error("expected mismatch on restaurant")
	}
	if m.SameItem(&restaurant, "Burrito") {
		t.Error("expected mismatch on dish")
	}
	if m.SameItem(nil, "Bowl") {
		t.Error("expected mismatch against missing restaurant")
	}
}
