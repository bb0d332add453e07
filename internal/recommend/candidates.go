package recommend

import (
	"math"
	"sort"
	"time"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
)

// Candidate is a scored, deduplicated history entry eligible for selection
type Candidate struct {
	Record    database.MealRecord `json:"record"`
	Score     float64             `json:"score"`
	Breakdown Breakdown           `json:"breakdown"`
}

// RankCandidates runs the full per-dish pipeline: budget filter, no-repeat
// window, disabled-item exclusion, scoring, dedup by (restaurant, dish), and
// a final sort by score descending (ties broken by cost descending).
//
// The no-repeat window looks at the most recent date per cuisine across ALL
// history, so a cuisine eaten inside the window is excluded entirely — even
// its own most recent record. An empty result is a valid state, not an error.
func RankCandidates(history []database.MealRecord, prefs *database.BudgetPreferences, disabled map[string]bool, weather WeatherContext, now time.Time, rng RNG) []Candidate {
	// Most recent occurrence per cuisine, over the full history
	lastByCuisine := make(map[string]time.Time)
	for i := range history {
		day := history[i].Day()
		if last, ok := lastByCuisine[history[i].Cuisine]; !ok || day.After(last) {
			lastByCuisine[history[i].Cuisine] = day
		}
	}

	best := make(map[string]Candidate)
	for i := range history {
		m := &history[i]

		// Budget bounds are inclusive on both ends
		if m.Cost < prefs.Min || m.Cost > prefs.Max {
			continue
		}

		if prefs.ForbidRepeatDays > 0 && daysSince(now, lastByCuisine[m.Cuisine]) <= prefs.ForbidRepeatDays {
			continue
		}

		key := ItemKey(m.Restaurant, m.Dish)
		if disabled[key] {
			continue
		}

		breakdown := ScoreMeal(m, prefs, weather, now, rng)
		c := Candidate{Record: *m, Score: breakdown.Total, Breakdown: breakdown}

		// Keep the single highest-scoring entry per item key
		if prev, ok := best[key]; !ok || c.Score > prev.Score {
			best[key] = c
		}
	}

	candidates := make([]Candidate, 0, len(best))
	for _, c := range best {
		candidates = append(candidates, c)
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Score != candidates[j].Score {
			return candidates[i].Score > candidates[j].Score
		}
		return candidates[i].Record.Cost > candidates[j].Record.Cost
	})

	return candidates
}

// daysSince counts whole local calendar days from day to now, never negative.
// Rounding absorbs DST-shortened or -lengthened days.
func daysSince(now, day time.Time) int {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	d := int(math.Round(today.Sub(day).Hours() / 24))
	if d < 0 {
		return 0
	}
	return d
}
