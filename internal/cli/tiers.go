package cli

import (
	"github.com/spf13/cobra"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/config"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/output"
	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/recommend"
)

var tiersCmd = &cobra.Command{
	Use:   "tiers",
	Short: "Show reward tiers and which your budget can reach",
	RunE:  runTiers,
}

func init() {
	rootCmd.AddCommand(tiersCmd)
}

func runTiers(cmd *cobra.Command, args []string) error {
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

	statuses := recommend.TierEligibility(prefs)
	return output.Output(outputFmt, statuses)
}
