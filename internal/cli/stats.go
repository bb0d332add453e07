package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/config"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/output"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/spend"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Monthly spending summary",
	Long: `Show how much the household spent on meals and groceries.

Seed (demo) records are excluded from all totals.

Examples:
  foodchooser stats                 # current month, detailed
  foodchooser stats --month 2026-07
  foodchooser stats --months 6      # last six months, one line each`,
	RunE: runStats,
}

var (
	statsMonth  string
	statsMonths int
)

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringVar(&statsMonth, "month", "", "Month to summarize (YYYY-MM, default: current)")
	statsCmd.Flags().IntVar(&statsMonths, "months", 0, "Show a series covering the last N months instead")
}

func runStats(cmd *cobra.Command, args []string) error {
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

	meals, err := db.ListMeals(ctx, cfg.Household.ID, database.MealListOptions{})
	if err != nil {
		return fmt.Errorf("failed to load meals: %w", err)
	}
	groceries, err := db.ListGroceries(ctx, cfg.Household.ID, nil, 0)
	if err != nil {
		return fmt.Errorf("failed to load grocery trips: %w", err)
	}

	if statsMonths > 0 {
		series := spend.MonthlySeries(meals, groceries, statsMonths, time.Now())
		if outputFmt == "json" {
			return output.JSON(series)
		}
		for _, mt := range series {
			fmt.Printf("%s  meals %s%.2f  groceries %s%.2f  total %s%.2f\n",
				mt.Month,
				cfg.Display.Currency, mt.MealTotal,
				cfg.Display.Currency, mt.GroceryTotal,
				cfg.Display.Currency, mt.Total)
		}
		return nil
	}

	month := time.Now()
	if statsMonth != "" {
		month, err = time.ParseInLocation(spend.MonthLayout, statsMonth, time.Local)
		if err != nil {
			return fmt.Errorf("invalid month %q (use YYYY-MM)", statsMonth)
		}
	}

	summary := spend.Summarize(meals, groceries, month)
	return output.Output(outputFmt, summary)
}
