package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/config"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/output"
)

var groceryCmd = &cobra.Command{
	Use:   "grocery",
	Short: "Track grocery trips",
}

var groceryLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a grocery trip",
	Long: `Log a grocery trip. Grocery spending counts toward monthly totals
but never enters the recommendation engine.

Examples:
  foodchooser grocery log --store "Trader Joe's" --amount 84.50
  foodchooser grocery log --store Costco --amount 210 --date 2026-08-20`,
	RunE: runGroceryLog,
}

var groceryListCmd = &cobra.Command{
	Use:   "list",
	Short: "List grocery trips",
	RunE:  runGroceryList,
}

var (
	groceryStore  string
	groceryAmount float64
	groceryNotes  string
	groceryDate   string
	grocerySeed   bool
	groceryLimit  int
	grocerySince  string
)

func init() {
	rootCmd.AddCommand(groceryCmd)
	groceryCmd.AddCommand(groceryLogCmd)
	groceryCmd.AddCommand(groceryListCmd)

	groceryLogCmd.Flags().StringVar(&groceryStore, "store", "", "Store name (required)")
	groceryLogCmd.Flags().Float64Var(&groceryAmount, "amount", -1, "Amount spent (required)")
	groceryLogCmd.Flags().StringVar(&groceryNotes, "notes", "", "Free-text notes")
	groceryLogCmd.Flags().StringVar(&groceryDate, "date", "", "Date YYYY-MM-DD (default: today)")
	groceryLogCmd.Flags().BoolVar(&grocerySeed, "seed", false, "Mark as demo data, excluded from spend totals")

	groceryListCmd.Flags().IntVar(&groceryLimit, "limit", 50, "Maximum number of trips to show")
	groceryListCmd.Flags().StringVar(&grocerySince, "since", "", "Only trips since a duration ago (e.g. 7d, 2w, 1m)")
}

func runGroceryLog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var errs []error
	if groceryStore == "" {
		errs = append(errs, errors.New("--store is required"))
	}
	if groceryAmount < 0 {
		errs = append(errs, errors.New("--amount is required and must be non-negative"))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	date, err := parseDate(groceryDate)
	if err != nil {
		return err
	}

	g := &database.GroceryTrip{
		HouseholdID: cfg.Household.ID,
		Date:        date,
		Store:       groceryStore,
		Amount:      groceryAmount,
		Notes:       optional(groceryNotes),
		SeedOnly:    grocerySeed,
	}

	if err := db.CreateGrocery(ctx, g); err != nil {
		return fmt.Errorf("failed to save grocery trip: %w", err)
	}

	fmt.Printf("Logged grocery trip to %s on %s (id %s)\n", g.Store, g.Date, g.ID)
	return nil
}

func runGroceryList(cmd *cobra.Command, args []string) error {
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

	var since *string
	if grocerySince != "" {
		d, err := parseDuration(grocerySince)
		if err != nil {
			return err
		}
		s := time.Now().Add(-d).Format(database.DateLayout)
		since = &s
	}

	trips, err := db.ListGroceries(ctx, cfg.Household.ID, since, groceryLimit)
	if err != nil {
		return fmt.Errorf("failed to list grocery trips: %w", err)
	}

	if len(trips) == 0 && outputFmt != "json" {
		fmt.Println("No grocery trips logged yet.")
		return nil
	}

	return output.Output(outputFmt, trips)
}
