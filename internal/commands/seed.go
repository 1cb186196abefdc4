package commands

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/mmynk/dayplanner/internal/defaults"
	"github.com/mmynk/dayplanner/internal/storage/sqlite"
)

var seedCmd = &cobra.Command{
	Use:   "seed-exercises",
	Short: "Insert or refresh the built-in exercise catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}

		store, err := sqlite.New(cfg.DBPath)
		if err != nil {
			return err
		}
		defer store.Close()

		exercises := defaults.Exercises()
		if err := store.UpsertExercises(cmd.Context(), exercises); err != nil {
			return err
		}

		slog.Info("Exercise catalog seeded", "database", cfg.DBPath, "count", len(exercises))
		fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d exercises\n", len(exercises))
		return nil
	},
}
