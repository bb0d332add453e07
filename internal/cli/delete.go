package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FuRyanf/food-chooser-mvp-sub001/internal/config"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a logged meal",
	Args:  cobra.ExactArgs(1),
	RunE:  runDelete,
}

func init() {
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	id := args[0]

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	db, err := openDatabase(cfg)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteMeal(ctx, cfg.Household.ID, id); err != nil {
		return fmt.Errorf("failed to delete meal: %w", err)
	}

	fmt.Printf("Deleted meal %s\n", id)
	return nil
}
