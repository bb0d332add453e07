package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/config"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
)

var logCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a meal",
	Long: `Log a meal to your household history.

Examples:
  foodchooser log --dish "Bowl" --cuisine Mexican --cost 14.50 --restaurant Chipotle --rating 4
  foodchooser log --dish "Stir Fry" --cuisine Chinese --cost 8 --date 2026-08-20
  foodchooser log --id <id> --cost 15.25   # edit an existing record`,
	RunE: runLog,
}

var (
	logID         string
	logRestaurant string
	logDish       string
	logCuisine    string
	logCost       float64
	logRating     int
	logNotes      string
	logDate       string
	logSeed       bool
)

func init() {
	rootCmd.AddCommand(logCmd)

	logCmd.Flags().StringVar(&logID, "id", "", "Existing record ID to edit")
	logCmd.Flags().StringVar(&logRestaurant, "restaurant", "", "Restaurant name (omit for home cooking)")
	logCmd.Flags().StringVar(&logDish, "dish", "", "Dish name (required for new records)")
	logCmd.Flags().StringVar(&logCuisine, "cuisine", "", "Cuisine (required for new records)")
	logCmd.Flags().Float64Var(&logCost, "cost", -1, "Cost (required for new records)")
	logCmd.Flags().IntVar(&logRating, "rating", 0, "Rating 1-5 (optional)")
	logCmd.Flags().StringVar(&logNotes, "notes", "", "Free-text notes")
	logCmd.Flags().StringVar(&logDate, "date", "", "Date YYYY-MM-DD (default: today)")
	logCmd.Flags().BoolVar(&logSeed, "seed", false, "Mark as demo data, excluded from spend totals")
}

func runLog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if logID != "" {
		return editMeal(ctx, cfg, db)
	}

	var errs []error
	if logDish == "" {
		errs = append(errs, errors.New("--dish is required"))
	}
	if logCuisine == "" {
		errs = append(errs, errors.New("--cuisine is required"))
	}
	if logCost < 0 {
		errs = append(errs, errors.New("--cost is required and must be non-negative"))
	}
	if logRating != 0 && (logRating < 1 || logRating > 5) {
		errs = append(errs, errors.New("--rating must be between 1 and 5"))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	date, err := parseDate(logDate)
	if err != nil {
		return err
	}

	m := &database.MealRecord{
		HouseholdID: cfg.Household.ID,
		Date:        date,
		Restaurant:  optional(logRestaurant),
		Dish:        logDish,
		Cuisine:     logCuisine,
		Cost:        logCost,
		Notes:       optional(logNotes),
		SeedOnly:    logSeed,
	}
	if logRating != 0 {
		m.Rating = &logRating
	}

	if err := db.CreateMeal(ctx, m); err != nil {
		return fmt.Errorf("failed to save meal: %w", err)
	}

	fmt.Printf("Logged %s (%s) on %s (id %s)\n", m.Dish, m.Cuisine, m.Date, m.ID)
	return nil
}

// editMeal updates a record in place when restaurant+dish are unchanged;
// a changed pair becomes a new record so history stays intact.
func editMeal(ctx context.Context, cfg *config.Config, db *database.DB) error {
	existing, err := db.GetMeal(ctx, cfg.Household.ID, logID)
	if err != nil {
		return fmt.Errorf("failed to load meal: %w", err)
	}
	if existing == nil {
		return fmt.Errorf("meal not found: %s", logID)
	}

	restaurant := existing.Restaurant
	if logRestaurant != "" {
		restaurant = &logRestaurant
	}
	dish := existing.Dish
	if logDish != "" {
		dish = logDish
	}

	if logRating != 0 && (logRating < 1 || logRating > 5) {
		return errors.New("--rating must be between 1 and 5")
	}

	updated := *existing
	updated.Restaurant = restaurant
	updated.Dish = dish
	if logCuisine != "" {
		updated.Cuisine = logCuisine
	}
	if logCost >= 0 {
		updated.Cost = logCost
	}
	if logRating != 0 {
		updated.Rating = &logRating
	}
	if logNotes != "" {
		updated.Notes = &logNotes
	}
	if logDate != "" {
		date, err := parseDate(logDate)
		if err != nil {
			return err
		}
		updated.Date = date
	}

	if existing.SameItem(restaurant, dish) {
		if err := db.UpdateMeal(ctx, &updated); err != nil {
			return fmt.Errorf("failed to update meal: %w", err)
		}
		fmt.Printf("Updated %s (id %s)\n", updated.Dish, updated.ID)
		return nil
	}

	// Different item: preserve the old record, create a new one
	updated.ID = ""
	if err := db.CreateMeal(ctx, &updated); err != nil {
		return fmt.Errorf("failed to save meal: %w", err)
	}
	fmt.Printf("Restaurant or dish changed; logged as a new record %s (original kept)\n", updated.ID)
	return nil
}
