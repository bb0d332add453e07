package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/config"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/database"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/output"
)

var boostCmd = &cobra.Command{
	Use:   "boost [cuisine]",
	Short: "Boost a cuisine in the cuisine-level ranking",
	Long: `Boost a cuisine so the "cuisines" view favors it. Each boost adds
to a per-cuisine count; the count is matched by exact cuisine string.

Examples:
  foodchooser boost Ramen           # boost once more
  foodchooser boost --clear Ramen   # remove the boost entirely
  foodchooser boost                 # show current boosts`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBoost,
}

var boostClear bool

func init() {
	rootCmd.AddCommand(boostCmd)

	boostCmd.Flags().BoolVar(&boostClear, "clear", false, "Clear the boost for the cuisine")
}

func runBoost(cmd *cobra.Command, args []string) error {
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

	if len(args) == 0 {
		if boostClear {
			return fmt.Errorf("--clear requires a cuisine argument")
		}
		return showBoosts(ctx, cfg, db)
	}

	cuisine := args[0]
	if boostClear {
		if err := db.ClearCuisineOverride(ctx, cfg.Household.ID, cuisine); err != nil {
			return err
		}
		fmt.Printf("Cleared boost for %s\n", cuisine)
		return nil
	}

	if err := db.BoostCuisine(ctx, cfg.Household.ID, cuisine); err != nil {
		return fmt.Errorf("failed to boost cuisine: %w", err)
	}

	overrides, err := db.CuisineOverrides(ctx, cfg.Household.ID)
	if err != nil {
		return fmt.Errorf("failed to load boosts: %w", err)
	}
	fmt.Printf("Boosted %s (count now %d)\n", cuisine, overrides[cuisine])
	return nil
}

func showBoosts(ctx context.Context, cfg *config.Config, db *database.DB) error {
	overrides, err := db.CuisineOverrides(ctx, cfg.Household.ID)
	if err != nil {
		return fmt.Errorf("failed to load boosts: %w", err)
	}

	if len(overrides) == 0 && outputFmt != "json" {
		fmt.Println("No cuisine boosts set.")
		return nil
	}

	boosts := make([]database.CuisineOverride, 0, len(overrides))
	for cuisine, count := range overrides {
		boosts = append(boosts, database.CuisineOverride{
			HouseholdID: cfg.Household.ID,
			Cuisine:     cuisine,
			Count:       count,
		})
	}
	sort.Slice(boosts, func(i, j int) bool { return boosts[i].Cuisine < boosts[j].Cuisine })

	if outputFmt == "json" {
		return output.JSON(boosts)
	}
	for _, b := range boosts {
		fmt.Printf("%s: %d\n", b.Cuisine, b.Count)
	}
	return nil
}
