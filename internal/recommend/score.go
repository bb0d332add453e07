package recommend

import (
	"math"
	"time"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
)

// Scoring constants. Tuned together; changing one shifts the balance of the
// whole formula.
const (
	ratingMultiplier  = 10
	recencyWindowDays = 20
	recencyFloor      = -12
	budgetFitBonus    = 8
	budgetFitDivisor  = 4
	budgetFitFloor    = 12
	jitterRange       = 1.5
)

// mealWeatherBonus awards a small boost when the meal's cuisine exactly
// matches the curated list for the current condition
var mealWeatherBonus = map[Condition]map[string]float64{
	ConditionHot:  {"Japanese": 2, "Salad": 2, "Mexican": 2},
	ConditionCold: {"Ramen": 3, "Indian": 3, "Italian": 3},
	ConditionRain: {"Pho": 3, "Ramen": 3, "Curry": 3},
}

// Breakdown is the per-component score for a single meal. Every component is
// surfaced individually so the reveal view can show where a score came from.
type Breakdown struct {
	RatingWeight   float64 `json:"rating_weight"`
	RecencyPenalty float64 `json:"recency_penalty"`
	BudgetFit      float64 `json:"budget_fit"`
	WeatherBonus   float64 `json:"weather_bonus"`
	Jitter         float64 `json:"jitter"`
	Total          float64 `json:"total"`
}

// ScoreMeal computes the desirability score for one meal record. Pure apart
// from the jitter draw; inject FixedRNG(0.5) for a deterministic result.
func ScoreMeal(m *database.MealRecord, prefs *database.BudgetPreferences, weather WeatherContext, now time.Time, rng RNG) Breakdown {
	b := Breakdown{}

	b.RatingWeight = float64(m.RatingOrDefault() * ratingMultiplier)

	days := m.DaysSince(now)
	b.RecencyPenalty = math.Max(recencyFloor, -float64(recencyWindowDays-min(recencyWindowDays, days)))

	b.BudgetFit = budgetFit(m.Cost, prefs.Min, prefs.Max)

	if bonus, ok := mealWeatherBonus[weather.Condition][m.Cuisine]; ok {
		b.WeatherBonus = bonus
	}

	b.Jitter = rng.Float64()*2*jitterRange - jitterRange

	b.Total = b.RatingWeight + b.RecencyPenalty + b.BudgetFit + b.WeatherBonus + b.Jitter
	return b
}

// budgetFit rewards costs inside [min, max] and penalizes by distance from
// the nearest boundary, floored at -12
func budgetFit(cost, min, max float64) float64 {
	if cost >= min && cost <= max {
		return budgetFitBonus
	}

	boundary := max
	if cost < min {
		boundary = min
	}
	distance := math.Abs(cost - boundary)
	return -math.Min(distance/budgetFitDivisor, budgetFitFloor)
}
