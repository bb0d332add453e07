package recommend

import (
	"math"
	"sort"
	"time"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
)

// Constants for the cuisine-level aggregate recommender. This is the older,
// simpler "suggest a cuisine" path; its formula is intentionally separate
// from the per-dish scorer and the two are not expected to agree.
const (
	cuisineRatingMultiplier = 6
	cuisineRecencyWindow    = 6
	cuisineRecencyFloor     = -8
	cuisineBudgetBonus      = 12
	cuisineBudgetDivisor    = 5
	cuisineBudgetFloor      = 10
	cuisineTrendBonus       = 5
	cuisineTrendDays        = 30
	cuisineTrendMinCount    = 2
	cuisineTrendMinRating   = 4
	overrideMultiplier      = 3
)

// cuisineWeatherBonus mirrors the per-meal table with larger magnitudes
var cuisineWeatherBonus = map[Condition]map[string]float64{
	ConditionHot:  {"Japanese": 3, "Salad": 3, "Mexican": 3},
	ConditionCold: {"Ramen": 4, "Indian": 4, "Italian": 4},
	ConditionRain: {"Pho": 5, "Ramen": 5, "Curry": 5},
}

// CuisineRecommendation is one entry of the cuisine-level view
type CuisineRecommendation struct {
	Cuisine      string  `json:"cuisine"`
	Score        float64 `json:"score"`
	AvgRating    float64 `json:"avg_rating"`
	LastCost     float64 `json:"last_cost"`
	LastDays     int     `json:"last_days"`
	RecentCount  int     `json:"recent_count"`
	WeatherBonus float64 `json:"weather_bonus"`
	Boost        int     `json:"boost"`
}

// BuildCuisineRecommendations groups history by cuisine and ranks cuisines by
// an aggregate score. Cuisines whose latest cost falls outside the budget are
// dropped from the final list; with enforceNoRepeat, cuisines eaten inside
// the repeat window are skipped entirely.
func BuildCuisineRecommendations(history []database.MealRecord, prefs *database.BudgetPreferences, overrides map[string]int, enforceNoRepeat bool, weather WeatherContext, now time.Time) []CuisineRecommendation {
	groups := make(map[string][]*database.MealRecord)
	for i := range history {
		groups[history[i].Cuisine] = append(groups[history[i].Cuisine], &history[i])
	}

	recs := make([]CuisineRecommendation, 0, len(groups))
	for cuisine, records := range groups {
		var ratingSum float64
		last := records[0]
		recentCount := 0

		for _, m := range records {
			ratingSum += float64(m.RatingOrDefault())
			if m.Day().After(last.Day()) {
				last = m
			}
			if m.DaysSince(now) <= cuisineTrendDays {
				recentCount++
			}
		}

		avgRating := ratingSum / float64(len(records))
		lastDays := last.DaysSince(now)

		if enforceNoRepeat && prefs.ForbidRepeatDays > 0 && lastDays <= prefs.ForbidRepeatDays {
			continue
		}

		recencyPenalty := math.Max(cuisineRecencyFloor, -float64(cuisineRecencyWindow-min(cuisineRecencyWindow, lastDays)))

		budget := float64(cuisineBudgetBonus)
		if last.Cost < prefs.Min || last.Cost > prefs.Max {
			boundary := prefs.Max
			if last.Cost < prefs.Min {
				boundary = prefs.Min
			}
			budget = -math.Min(math.Abs(last.Cost-boundary)/cuisineBudgetDivisor, cuisineBudgetFloor)
		}

		weatherBonus := cuisineWeatherBonus[weather.Condition][cuisine]

		trend := 0.0
		if recentCount >= cuisineTrendMinCount && avgRating >= cuisineTrendMinRating {
			trend = cuisineTrendBonus
		}

		boost := overrides[cuisine]

		recs = append(recs, CuisineRecommendation{
			Cuisine:      cuisine,
			Score:        avgRating*cuisineRatingMultiplier + recencyPenalty + budget + weatherBonus + trend + float64(boost*overrideMultiplier),
			AvgRating:    avgRating,
			LastCost:     last.Cost,
			LastDays:     lastDays,
			RecentCount:  recentCount,
			WeatherBonus: weatherBonus,
			Boost:        boost,
		})
	}

	// Only cuisines whose latest cost is in budget make the final list
	filtered := recs[:0]
	for _, r := range recs {
		if r.LastCost >= prefs.Min && r.LastCost <= prefs.Max {
			filtered = append(filtered, r)
		}
	}

	sort.Slice(filtered, func(i, j int) bool {
		return filtered[i].Score > filtered[j].Score
	})

	return filtered
}
