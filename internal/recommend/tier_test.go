package recommend

import (
	"testing"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
)

func TestClassifyTier(t *testing.T) {
	tests := []struct {
		cost     float64
		expected Tier
	}{
		{0, TierBronze},
		{14.99, TierBronze},
		{15, TierSilver},
		{29.99, TierSilver},
		{30, TierGold},
		{54.99, TierGold},
		{55, TierDiamond},
		{1000, TierDiamond},
	}

	for _, tt := range tests {
		if got := ClassifyTier(tt.cost); got != tt.expected {
			t.Errorf("ClassifyTier(%v) = %v, want %v", tt.cost, got, tt.expected)
		}
	}
}

func TestTierEligibility(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		eligible map[Tier]bool
	}{
		{
			name: "default budget spans bronze through gold",
			min:  10, max: 35,
			eligible: map[Tier]bool{TierBronze: true, TierSilver: true, TierGold: true, TierDiamond: false},
		},
		{
			name: "cheap budget only bronze",
			min:  0, max: 10,
			eligible: map[Tier]bool{TierBronze: true, TierSilver: false, TierGold: false, TierDiamond: false},
		},
		{
			name: "expensive budget skips bronze and silver",
			min:  40, max: 100,
			eligible: map[Tier]bool{TierBronze: false, TierSilver: false, TierGold: true, TierDiamond: true},
		},
		{
			name: "max on a band's lower bound makes it eligible",
			min:  10, max: 15,
			eligible: map[Tier]bool{TierBronze: true, TierSilver: true, TierGold: false, TierDiamond: false},
		},
		{
			name: "min on a band's exclusive upper bound excludes it",
			min:  15, max: 20,
			eligible: map[Tier]bool{TierBronze: false, TierSilver: true, TierGold: false, TierDiamond: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			prefs := &database.BudgetPreferences{Min: tt.min, Max: tt.max}
			statuses := TierEligibility(prefs)

			if len(statuses) != 4 {
				t.Fatalf("expected 4 tier statuses, got %d", len(statuses))
			}

			for _, s := range statuses {
				if s.Eligible != tt.eligible[s.Tier] {
					t.Errorf("tier %s eligible = %v, want %v", s.Tier, s.Eligible, tt.eligible[s.Tier])
				}
				if !s.Eligible && s.Hint == "" {
					t.Errorf("tier %s ineligible but has no hint", s.Tier)
				}
				if s.Eligible && s.Hint != "" {
					t.Errorf("tier %s eligible but has hint %q", s.Tier, s.Hint)
				}
			}
		})
	}
}
