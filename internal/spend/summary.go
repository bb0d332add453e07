// Package spend aggregates meal and grocery spending. Seed/demo rows are
// excluded from every total here, though they still feed the recommendation
// engine.
package spend

import (
	"sort"
	"time"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/recommend"
)

// MonthLayout formats a month bucket key
const MonthLayout = "2006-01"

// Summary is the aggregate spend picture for one calendar month
type Summary struct {
	Month        string             `json:"month"`
	MealTotal    float64            `json:"meal_total"`
	GroceryTotal float64            `json:"grocery_total"`
	Total        float64            `json:"total"`
	MealCount    int                `json:"meal_count"`
	GroceryCount int                `json:"grocery_count"`
	ByCuisine    []CuisineSpend     `json:"by_cuisine"`
	ByTier       map[string]float64 `json:"by_tier"`
}

// CuisineSpend is meal spending attributed to one cuisine
type CuisineSpend struct {
	Cuisine string  `json:"cuisine"`
	Total   float64 `json:"total"`
	Count   int     `json:"count"`
}

// MonthTotal is one point of the month-over-month series
type MonthTotal struct {
	Month        string  `json:"month"`
	MealTotal    float64 `json:"meal_total"`
	GroceryTotal float64 `json:"grocery_total"`
	Total        float64 `json:"total"`
}

// Summarize computes the spend summary for the month containing the given
// time. Seed rows never count.
func Summarize(meals []database.MealRecord, groceries []database.GroceryTrip, month time.Time) *Summary {
	key := month.Format(MonthLayout)

	s := &Summary{
		Month:  key,
		ByTier: make(map[string]float64),
	}
	byCuisine := make(map[string]*CuisineSpend)

	for i := range meals {
		m := &meals[i]
		if m.IsSeed() || m.Day().Format(MonthLayout) != key {
			continue
		}

		s.MealTotal += m.Cost
		s.MealCount++
		s.ByTier[string(recommend.ClassifyTier(m.Cost))] += m.Cost

		cs, ok := byCuisine[m.Cuisine]
		if !ok {
			cs = &CuisineSpend{Cuisine: m.Cuisine}
			byCuisine[m.Cuisine] = cs
		}
		cs.Total += m.Cost
		cs.Count++
	}

	for i := range groceries {
		g := &groceries[i]
		if g.IsSeed() || g.Day().Format(MonthLayout) != key {
			continue
		}
		s.GroceryTotal += g.Amount
		s.GroceryCount++
	}

	s.Total = s.MealTotal + s.GroceryTotal

	s.ByCuisine = make([]CuisineSpend, 0, len(byCuisine))
	for _, cs := range byCuisine {
		s.ByCuisine = append(s.ByCuisine, *cs)
	}
	sort.Slice(s.ByCuisine, func(i, j int) bool {
		if s.ByCuisine[i].Total != s.ByCuisine[j].Total {
			return s.ByCuisine[i].Total > s.ByCuisine[j].Total
		}
		return s.ByCuisine[i].Cuisine < s.ByCuisine[j].Cuisine
	})

	return s
}

// MonthlySeries computes totals for the last n months ending at the month
// containing now, oldest first
func MonthlySeries(meals []database.MealRecord, groceries []database.GroceryTrip, n int, now time.Time) []MonthTotal {
	totals := make(map[string]*MonthTotal)

	series := make([]MonthTotal, 0, n)
	for i := n - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -i, 0)
		key := month.Format(MonthLayout)
		mt := &MonthTotal{Month: key}
		totals[key] = mt
		series = append(series, MonthTotal{Month: key})
	}

	for i := range meals {
		m := &meals[i]
		if m.IsSeed() {
			continue
		}
		if mt, ok := totals[m.Day().Format(MonthLayout)]; ok {
			mt.MealTotal += m.Cost
		}
	}

	for i := range groceries {
		g := &groceries[i]
		if g.IsSeed() {
			continue
		}
		if mt, ok := totals[g.Day().Format(MonthLayout)]; ok {
			mt.GroceryTotal += g.Amount
		}
	}

	for i := range series {
		mt := totals[series[i].Month]
		mt.Total = mt.MealTotal + mt.GroceryTotal
		series[i] = *mt
	}

	return series
}
