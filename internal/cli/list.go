package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/config"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/output"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List logged meals",
	Long: `List meals from your household history, newest first.

Examples:
  foodchooser list
  foodchooser list --cuisine Mexican
  foodchooser list --since 2w --limit 10`,
	RunE: runList,
}

var (
	listCuisine string
	listSince   string
	listLimit   int
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringVar(&listCuisine, "cuisine", "", "Filter by cuisine")
	listCmd.Flags().StringVar(&listSince, "since", "", "Only meals since a duration ago (e.g. 7d, 2w, 1m)")
	listCmd.Flags().IntVar(&listLimit, "limit", 50, "Maximum number of meals to show")
}

func runList(cmd *cobra.Command, args []string) error {
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

	opts := database.MealListOptions{
		Cuisine: optional(listCuisine),
		Limit:   listLimit,
	}
	if listSince != "" {
		d, err := parseDuration(listSince)
		if err != nil {
			return err
		}
		since := time.Now().Add(-d).Format(database.DateLayout)
		opts.Since = &since
	}

	meals, err := db.ListMeals(ctx, cfg.Household.ID, opts)
	if err != nil {
		return fmt.Errorf("failed to list meals: %w", err)
	}

	if len(meals) == 0 && outputFmt != "json" {
		fmt.Println("No meals logged yet. Try: foodchooser log --dish \"Tacos\" --cuisine Mexican --cost 12")
		return nil
	}

	return output.Output(outputFmt, meals)
}
