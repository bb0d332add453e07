package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/config"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/output"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/recommend"
)

var eggCmd = &cobra.Command{
	Use:   "egg",
	Short: "Crack the mystery egg: pick tonight's meal",
	Long: `Score your meal history and crack the mystery egg.

Every eligible past meal is scored on rating, recency, budget fit and
the current weather, then one is drawn at random, weighted so better
scores win more often but never every time.

Examples:
  foodchooser egg              # reveal tonight's pick
  foodchooser egg --choices    # show the candidate pool and the pick
  foodchooser egg --accept     # also log the pick as today's meal`,
	RunE: runEgg,
}

var (
	eggChoices bool
	eggAccept  bool
)

func init() {
	rootCmd.AddCommand(eggCmd)

	eggCmd.Flags().BoolVar(&eggChoices, "choices", false, "Show the scored candidate pool alongside the pick")
	eggCmd.Flags().BoolVar(&eggAccept, "accept", false, "Log the pick as a meal eaten today")
}

func runEgg(cmd *cobra.Command, args []string) error {
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
		fmt.Println("No meal history yet. Log a few meals first, then crack the egg.")
		return nil
	}

	prefs, err := loadPreferences(ctx, db, cfg.Household.ID)
	if err != nil {
		return err
	}

	disabled, err := db.DisabledSet(ctx, cfg.Household.ID)
	if err != nil {
		return fmt.Errorf("failed to load disabled items: %w", err)
	}

	weather := currentWeather(ctx, cfg)
	rng := recommend.NewRNG()
	now := time.Now()

	candidates := recommend.RankCandidates(history, prefs, disabled, weather, now, rng)
	choice := recommend.SampleChoice(candidates, rng)
	if choice == recommend.NoChoice {
		fmt.Printf("No candidates in budget (%s%.2f-%s%.2f). Widen the budget or log more meals.\n",
			cfg.Display.Currency, prefs.Min, cfg.Display.Currency, prefs.Max)
		return nil
	}

	chosen := candidates[choice]

	if outputFmt == "json" {
		if eggChoices {
			pool := candidates
			if len(pool) > recommend.PoolSize {
				pool = pool[:recommend.PoolSize]
			}
			if err := output.JSON(struct {
				Choices []recommend.Candidate `json:"choices"`
				Chosen  int                   `json:"chosen"`
			}{pool, choice}); err != nil {
				return err
			}
		} else if err := output.JSON(chosen); err != nil {
			return err
		}
	} else {
		if eggChoices {
			if err := output.Choices(os.Stdout, candidates, choice); err != nil {
				return err
			}
			fmt.Println()
		}
		if err := output.Reveal(os.Stdout, &chosen); err != nil {
			return err
		}
	}

	if eggAccept {
		m := &database.MealRecord{
			HouseholdID: cfg.Household.ID,
			Date:        now.Format(database.DateLayout),
			Restaurant:  chosen.Record.Restaurant,
			Dish:        chosen.Record.Dish,
			Cuisine:     chosen.Record.Cuisine,
			Cost:        chosen.Record.Cost,
		}
		if err := db.CreateMeal(ctx, m); err != nil {
			return fmt.Errorf("failed to log accepted pick: %w", err)
		}
		fmt.Printf("Logged %s as today's meal (id %s)\n", m.Dish, m.ID)
	}

	return nil
}
