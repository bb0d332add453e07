package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/config"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/output"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/recommend"
)

var disableCmd = &cobra.Command{
	Use:   "disable",
	Short: "Exclude a dish from future egg draws",
	Long: `Exclude a (restaurant, dish) pair from future recommendations.
Matching ignores case and surrounding whitespace; home-cooked dishes
are matched by dish name alone.

Examples:
  foodchooser disable --dish "Burrito" --restaurant Chipotle
  foodchooser disable --dish "Leftovers"
  foodchooser disable --list`,
	RunE: runDisable,
}

var enableCmd = &cobra.Command{
	Use:   "enable",
	Short: "Re-include a previously disabled dish",
	RunE:  runEnable,
}

var (
	disableRestaurant string
	disableDish       string
	disableList       bool
)

func init() {
	rootCmd.AddCommand(disableCmd)
	rootCmd.AddCommand(enableCmd)

	disableCmd.Flags().StringVar(&disableRestaurant, "restaurant", "", "Restaurant (omit for home cooking)")
	disableCmd.Flags().StringVar(&disableDish, "dish", "", "Dish to disable")
	disableCmd.Flags().BoolVar(&disableList, "list", false, "List all disabled dishes")

	enableCmd.Flags().StringVar(&disableRestaurant, "restaurant", "", "Restaurant (omit for home cooking)")
	enableCmd.Flags().StringVar(&disableDish, "dish", "", "Dish to re-enable")
}

func runDisable(cmd *cobra.Command, args []string) error {
	if disableList {
		return listDisabled(cmd)
	}
	return setDisabled(cmd, true)
}

func runEnable(cmd *cobra.Command, args []string) error {
	return setDisabled(cmd, false)
}

func setDisabled(cmd *cobra.Command, disabled bool) error {
	ctx := cmd.Context()

	if disableDish == "" {
		return errors.New("--dish is required")
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

	restaurant := optional(disableRestaurant)
	item := &database.DisabledItem{
		HouseholdID: cfg.Household.ID,
		ItemKey:     recommend.ItemKey(restaurant, disableDish),
		Restaurant:  restaurant,
		Dish:        disableDish,
		Disabled:    disabled,
	}

	if err := db.SetDisabledItem(ctx, item); err != nil {
		return fmt.Errorf("failed to update disabled item: %w", err)
	}

	verb := "Disabled"
	if !disabled {
		verb = "Enabled"
	}
	if restaurant != nil {
		fmt.Printf("%s %s at %s\n", verb, disableDish, *restaurant)
	} else {
		fmt.Printf("%s %s\n", verb, disableDish)
	}
	return nil
}

func listDisabled(cmd *cobra.Command) error {
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

	items, err := db.ListDisabledItems(ctx, cfg.Household.ID)
	if err != nil {
		return fmt.Errorf("failed to list disabled items: %w", err)
	}

	if len(items) == 0 && outputFmt != "json" {
		fmt.Println("No dishes disabled.")
		return nil
	}

	return output.Output(outputFmt, items)
}
