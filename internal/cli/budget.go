package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/config"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/output"
)

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Show or set the per-meal budget and no-repeat window",
	Long: `Show or set budget preferences for the household.

Without flags, prints the current preferences. With flags, validates and
saves the new values.

Examples:
  foodchooser budget
  foodchooser budget --min 12 --max 40
  foodchooser budget --repeat-days 3`,
	RunE: runBudget,
}

var (
	budgetMin        float64
	budgetMax        float64
	budgetRepeatDays int
)

func init() {
	rootCmd.AddCommand(budgetCmd)

	budgetCmd.Flags().Float64Var(&budgetMin, "min", -1, "Minimum per-meal cost")
	budgetCmd.Flags().Float64Var(&budgetMax, "max", -1, "Maximum per-meal cost")
	budgetCmd.Flags().IntVar(&budgetRepeatDays, "repeat-days", -1, "No-repeat window in days (0 disables, max 14)")
}

func runBudget(cmd *cobra.Command, args []string) error {
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

	prefs, err := loadPreferences(ctx, db, cfg.Household.ID)
	if err != nil {
		return err
	}

	// No flags: just show
	if budgetMin < 0 && budgetMax < 0 && budgetRepeatDays < 0 {
		return output.Output(outputFmt, prefs)
	}

	if budgetMin >= 0 {
		prefs.Min = budgetMin
	}
	if budgetMax >= 0 {
		prefs.Max = budgetMax
	}
	if budgetRepeatDays >= 0 {
		prefs.ForbidRepeatDays = budgetRepeatDays
	}

	var errs []error
	if prefs.Min < 0 {
		errs = append(errs, errors.New("min must be non-negative"))
	}
	if prefs.Max < prefs.Min {
		errs = append(errs, fmt.Errorf("max (%.2f) must be at least min (%.2f)", prefs.Max, prefs.Min))
	}
	if prefs.ForbidRepeatDays < 0 || prefs.ForbidRepeatDays > 14 {
		errs = append(errs, errors.New("repeat-days must be between 0 and 14"))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	if err := db.SavePreferences(ctx, prefs); err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	fmt.Printf("Budget saved: %s%.2f-%s%.2f, no repeats within %d day(s)\n",
		cfg.Display.Currency, prefs.Min, cfg.Display.Currency, prefs.Max, prefs.ForbidRepeatDays)
	return nil
}
