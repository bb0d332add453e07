package spend

import (
	"testing"
	"time"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
)

func dateIn(t time.Time, day int) string {
	return time.Date(t.Year(), t.Month(), day, 0, 0, 0, 0, t.Location()).Format(database.DateLayout)
}

func TestSummarize(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.Local)
	seedNote := "seeded demo data " + database.SeedMarker

	meals := []database.MealRecord{
		{Date: dateIn(now, 3), Dish: "Bowl", Cuisine: "Mexican", Cost: 14.5},
		{Date: dateIn(now, 10), Dish: "Pad Thai", Cuisine: "Thai", Cost: 22},
		{Date: dateIn(now, 12), Dish: "Tacos", Cuisine: "Mexican", Cost: 12},
		{Date: dateIn(now, 5), Dish: "Demo", Cuisine: "Mexican", Cost: 100, SeedOnly: true},
		{Date: dateIn(now, 6), Dish: "Also Demo", Cuisine: "Thai", Cost: 50, Notes: &seedNote},
		{Date: "2026-07-20", Dish: "Last Month", Cuisine: "Thai", Cost: 30},
	}
	groceries := []database.GroceryTrip{
		{Date: dateIn(now, 2), Store: "QFC", Amount: 85.20},
		{Date: dateIn(now, 9), Store: "Costco", Amount: 120},
		{Date: dateIn(now, 4), Store: "Demo Mart", Amount: 500, SeedOnly: true},
	}

	s := Summarize(meals, groceries, now)

	if s.Month != "2026-08" {
		t.Errorf("month = %s, want 2026-08", s.Month)
	}
	if s.MealTotal != 48.5 {
		t.Errorf("meal total = %v, want 48.5 (seed and other months excluded)", s.MealTotal)
	}
	if s.MealCount != 3 {
		t.Errorf("meal count = %d, want 3", s.MealCount)
	}
	if s.GroceryTotal != 205.20 {
		t.Errorf("grocery total = %v, want 205.20", s.GroceryTotal)
	}
	if s.Total != 253.70 {
		t.Errorf("total = %v, want 253.70", s.Total)
	}

	// Cuisine breakdown sorted by total descending
	if len(s.ByCuisine) != 2 {
		t.Fatalf("cuisine breakdown = %d entries, want 2", len(s.ByCuisine))
	}
	if s.ByCuisine[0].Cuisine != "Mexican" || s.ByCuisine[0].Total != 26.5 || s.ByCuisine[0].Count != 2 {
		t.Errorf("top cuisine = %+v, want Mexican 26.5 x2", s.ByCuisine[0])
	}

	// Bowl and Tacos are Bronze, Pad Thai is Silver
	if s.ByTier["Bronze"] != 26.5 {
		t.Errorf("bronze spend = %v, want 26.5", s.ByTier["Bronze"])
	}
	if s.ByTier["Silver"] != 22 {
		t.Errorf("silver spend = %v, want 22", s.ByTier["Silver"])
	}
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, nil, time.Now())
	if s.Total != 0 || s.MealCount != 0 || len(s.ByCuisine) != 0 {
		t.Errorf("expected zero summary, got %+v", s)
	}
}

func TestMonthlySeries(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.Local)

	meals := []database.MealRecord{
		{Date: "2026-08-03", Dish: "A", Cuisine: "Thai", Cost: 20},
		{Date: "2026-07-10", Dish: "B", Cuisine: "Thai", Cost: 30},
		{Date: "2026-07-11", Dish: "C", Cuisine: "Thai", Cost: 10},
		{Date: "2026-05-01", Dish: "Too Old", Cuisine: "Thai", Cost: 99},
		{Date: "2026-08-04", Dish: "Seed", Cuisine: "Thai", Cost: 77, SeedOnly: true},
	}
	groceries := []database.GroceryTrip{
		{Date: "2026-06-20", Store: "QFC", Amount: 100},
	}

	series := MonthlySeries(meals, groceries, 3, now)

	if len(series) != 3 {
		t.Fatalf("series length = %d, want 3", len(series))
	}
	if series[0].Month != "2026-06" || series[1].Month != "2026-07" || series[2].Month != "2026-08" {
		t.Errorf("months = %v %v %v, want 2026-06..2026-08 oldest first", series[0].Month, series[1].Month, series[2].Month)
	}
	if series[0].Total != 100 {
		t.Errorf("june total = %v, want 100", series[0].Total)
	}
	if series[1].MealTotal != 40 {
		t.Errorf("july meals = %v, want 40", series[1].MealTotal)
	}
	if series[2].Total != 20 {
		t.Errorf("august total = %v, want 20 (seed excluded)", series[2].Total)
	}
}
