package recommend

import (
	"fmt"
	"math"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
)

// Tier is the reward tier a meal's cost falls into
type Tier string

const (
	TierBronze  Tier = "Bronze"
	TierSilver  Tier = "Silver"
	TierGold    Tier = "Gold"
	TierDiamond Tier = "Diamond"
)

// tierEpsilon treats each band's exclusive upper bound correctly when
// intersecting with the inclusive [min, max] budget range
const tierEpsilon = 0.01

// tierBands are half-open cost bands [Min, Max); Diamond is unbounded above
var tierBands = []struct {
	Tier Tier
	Min  float64
	Max  float64
}{
	{TierBronze, 0, 15},
	{TierSilver, 15, 30},
	{TierGold, 30, 55},
	{TierDiamond, 55, math.Inf(1)},
}

// ClassifyTier maps a cost to its reward tier. Lower bounds are inclusive,
// upper bounds exclusive.
func ClassifyTier(cost float64) Tier {
	switch {
	case cost < 15:
		return TierBronze
	case cost < 30:
		return TierSilver
	case cost < 55:
		return TierGold
	default:
		return TierDiamond
	}
}

// TierStatus reports whether a tier is reachable under the saved budget,
// with an advisory hint when it is not
type TierStatus struct {
	Tier     Tier   `json:"tier"`
	Eligible bool   `json:"eligible"`
	Hint     string `json:"hint,omitempty"`
}

// TierEligibility computes, per tier, whether its cost band intersects the
// inclusive budget range [min, max]
func TierEligibility(prefs *database.BudgetPreferences) []TierStatus {
	statuses := make([]TierStatus, 0, len(tierBands))

	for _, band := range tierBands {
		upper := band.Max - tierEpsilon // exclusive upper bound
		eligible := upper >= prefs.Min && prefs.Max >= band.Min

		status := TierStatus{Tier: band.Tier, Eligible: eligible}
		if !eligible {
			if prefs.Max < band.Min {
				status.Hint = fmt.Sprintf("raise max to %.0f", band.Min)
			} else if prefs.Min > upper {
				status.Hint = fmt.Sprintf("lower min below %.0f", band.Max)
			}
		}
		statuses = append(statuses, status)
	}

	return statuses
}
