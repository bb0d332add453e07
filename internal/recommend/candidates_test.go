package recommend

import (
	"testing"
	"time"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
)

func strp(s string) *string { return &s }

func historyMeal(daysAgo int, restaurant, dish, cuisine string, cost float64, rating int) database.MealRecord {
	var r *string
	if restaurant != "" {
		r = &restaurant
	}
	return database.MealRecord{
		ID:         dish,
		Date:       time.Now().AddDate(0, 0, -daysAgo).Format(database.DateLayout),
		Restaurant: r,
		Dish:       dish,
		Cuisine:    cuisine,
		Cost:       cost,
		Rating:     &rating,
	}
}

func TestRankCandidates_EmptyHistory(t *testing.T) {
	got := RankCandidates(nil, testPrefs(10, 35), nil, FallbackWeather(), time.Now(), FixedRNG(0.5))
	if len(got) != 0 {
		t.Errorf("expected empty result for empty history, got %d candidates", len(got))
	}
}

func TestRankCandidates_BudgetFilter(t *testing.T) {
	history := []database.MealRecord{
		historyMeal(6, "Cheap Eats", "Slice", "Pizza", 5, 4),     // under min
		historyMeal(6, "Mid Range", "Bowl", "Mexican", 20, 4),    // in range
		historyMeal(6, "Fancy Place", "Omakase", "Sushi", 90, 5), // over max
	}

	got := RankCandidates(history, testPrefs(10, 35), nil, FallbackWeather(), time.Now(), FixedRNG(0.5))
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Record.Dish != "Bowl" {
		t.Errorf("expected Bowl to survive budget filter, got %s", got[0].Record.Dish)
	}
}

func TestRankCandidates_NoRepeatWindow(t *testing.T) {
	// Mexican eaten today: every Mexican record is excluded, including older
	// ones, because the window keys on the cuisine's most recent occurrence.
	history := []database.MealRecord{
		historyMeal(0, "Chipotle", "Bowl", "Mexican", 14.5, 4),
		historyMeal(10, "Taqueria", "Tacos", "Mexican", 12, 5),
		historyMeal(10, "Thai House", "Pad Thai", "Thai", 15, 4),
	}

	got := RankCandidates(history, testPrefs(10, 35), nil, FallbackWeather(), time.Now(), FixedRNG(0.5))
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Record.Cuisine != "Thai" {
		t.Errorf("expected only Thai to survive, got %s", got[0].Record.Cuisine)
	}
}

func TestRankCandidates_NoRepeatDisabled(t *testing.T) {
	history := []database.MealRecord{
		historyMeal(0, "Chipotle", "Bowl", "Mexican", 14.5, 4),
	}

	prefs := testPrefs(10, 35)
	prefs.ForbidRepeatDays = 0

	got := RankCandidates(history, prefs, nil, FallbackWeather(), time.Now(), FixedRNG(0.5))
	if len(got) != 1 {
		t.Errorf("with forbidRepeatDays=0 nothing is excluded, got %d candidates", len(got))
	}
}

func TestRankCandidates_DisabledItems(t *testing.T) {
	history := []database.MealRecord{
		historyMeal(6, "Chipotle", "Bowl", "Mexican", 14.5, 4),
		historyMeal(6, "Thai House", "Pad Thai", "Thai", 15, 4),
	}

	disabled := map[string]bool{
		ItemKey(strp("  CHIPOTLE "), " bowl "): true, // normalization must match
	}

	got := RankCandidates(history, testPrefs(10, 35), disabled, FallbackWeather(), time.Now(), FixedRNG(0.5))
	if len(got) != 1 {
		t.Fatalf("expected 1 candidate, got %d", len(got))
	}
	if got[0].Record.Dish != "Pad Thai" {
		t.Errorf("expected disabled Bowl to be excluded, got %s", got[0].Record.Dish)
	}
}

func TestRankCandidates_DedupKeepsBest(t *testing.T) {
	// Same (restaurant, dish), different ages: the fresher one scores lower
	// (recency penalty), so the older entry must be the survivor.
	history := []database.MealRecord{
		historyMeal(3, "Chipotle", "Bowl", "Mexican", 14.5, 4),
		historyMeal(25, "chipotle ", "BOWL", "Mexican", 14.5, 4),
	}

	prefs := testPrefs(10, 35)
	prefs.ForbidRepeatDays = 0

	got := RankCandidates(history, prefs, nil, FallbackWeather(), time.Now(), FixedRNG(0.5))
	if len(got) != 1 {
		t.Fatalf("expected dedup to a single candidate, got %d", len(got))
	}
	if got[0].Breakdown.RecencyPenalty != 0 {
		t.Errorf("expected the older (penalty-free) entry to win, got penalty %v", got[0].Breakdown.RecencyPenalty)
	}
}

func TestRankCandidates_SortAndTieBreak(t *testing.T) {
	// Identical ratings and ages; equal scores tie-break by cost descending
	history := []database.MealRecord{
		historyMeal(25, "A", "Dish A", "CuisineA", 20, 4),
		historyMeal(25, "B", "Dish B", "CuisineB", 30, 4),
		historyMeal(25, "C", "Dish C", "CuisineC", 25, 4),
	}

	prefs := testPrefs(10, 35)
	prefs.ForbidRepeatDays = 0

	got := RankCandidates(history, prefs, nil, FallbackWeather(), time.Now(), FixedRNG(0.5))
	if len(got) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(got))
	}

	costs := []float64{got[0].Record.Cost, got[1].Record.Cost, got[2].Record.Cost}
	if costs[0] != 30 || costs[1] != 25 || costs[2] != 20 {
		t.Errorf("tie-break order = %v, want [30 25 20]", costs)
	}
}

func TestRankCandidates_RoundTrip(t *testing.T) {
	// One Chipotle bowl six days ago, default-ish budget, mild weather.
	history := []database.MealRecord{
		historyMeal(6, "Chipotle", "Bowl", "Mexican", 14.5, 4),
	}

	got := RankCandidates(history, testPrefs(10, 35), map[string]bool{}, WeatherContext{Condition: ConditionMild, TempF: 70}, time.Now(), FixedRNG(0.5))
	if len(got) != 1 {
		t.Fatalf("expected the record to survive filtering, got %d candidates", len(got))
	}

	c := got[0]
	if ClassifyTier(c.Record.Cost) != TierBronze {
		t.Errorf("tier = %v, want Bronze for cost 14.5", ClassifyTier(c.Record.Cost))
	}
	if c.Breakdown.RatingWeight != 40 {
		t.Errorf("rating weight = %v, want 40", c.Breakdown.RatingWeight)
	}
	if c.Breakdown.BudgetFit != 8 {
		t.Errorf("budget fit = %v, want 8", c.Breakdown.BudgetFit)
	}
	if c.Breakdown.RecencyPenalty != -12 {
		t.Errorf("recency penalty = %v, want -12 (floor) at six days", c.Breakdown.RecencyPenalty)
	}
}

func TestItemKey(t *testing.T) {
	tests := []struct {
		name       string
		restaurant *string
		dish       string
		expected   string
	}{
		{"plain", strp("Chipotle"), "Bowl", "chipotle|bowl"},
		{"trims and lowercases", strp("  CHIPOTLE  "), "  BOWL  ", "chipotle|bowl"},
		{"nil restaurant uses sentinel", nil, "Stir Fry", "(none)|stir fry"},
		{"blank restaurant uses sentinel", strp("   "), "Stir Fry", "(none)|stir fry"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ItemKey(tt.restaurant, tt.dish); got != tt.expected {
				t.Errorf("ItemKey() = %q, want %q", got, tt.expected)
			}
		})
	}
}
