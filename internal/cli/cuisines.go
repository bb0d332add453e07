package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/config"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/output"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/recommend"
)

var cuisinesCmd = &cobra.Command{
	Use:   "cuisines",
	Short: "Rank cuisines instead of individual dishes",
	Long: `Aggregate your history per cuisine and rank cuisines by average
rating, recency, budget fit, weather and any manual boosts.

Faster than the full egg when you only need a direction, not a dish.`,
	RunE: runCuisines,
}

var cuisinesEnforceNoRepeat bool

func init() {
	rootCmd.AddCommand(cuisinesCmd)

	cuisinesCmd.Flags().BoolVar(&cuisinesEnforceNoRepeat, "enforce-no-repeat", false,
		"Exclude cuisines eaten within the no-repeat window")
}

func runCuisines(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	output.SetCurrency(cfg.Display.Currency)

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	history, err := db.ListMeals(ctx, cfg.Household.ID, database.MealListOptions{})
	if err != nil {
		return fmt.Errorf("failed to load meal history: %w", err)
	}
	if len(history) == 0 {
		fmt.Println("No meal history yet. Log a few meals first.")
		return nil
	}

	prefs, err := loadPreferences(ctx, db, cfg.Household.ID)
	if err != nil {
		return err
	}

	overrides, err := db.CuisineOverrides(ctx, cfg.Household.ID)
	if err != nil {
		return fmt.Errorf("failed to load cuisine boosts: %w", err)
	}

	weather := currentWeather(ctx, cfg)
	recs := recommend.BuildCuisineRecommendations(history, prefs, overrides,
		cuisinesEnforceNoRepeat, weather, time.Now())

	if len(recs) == 0 && outputFmt != "json" {
		fmt.Println("No cuisines fit the current budget and no-repeat window.")
		return nil
	}

	return output.Output(outputFmt, recs)
}
