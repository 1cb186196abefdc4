package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/mmynk/dayplanner/internal/workout"
)

// tickInterval is one timer second.
var tickInterval = time.Second

var restCmd = &cobra.Command{
	Use:   "rest <seconds>",
	Short: "Count down a rest period between sets",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		seconds, err := strconv.Atoi(args[0])
		if err != nil || seconds <= 0 {
			return fmt.Errorf("invalid rest duration %q: expected a positive number of seconds", args[0])
		}

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		out := cmd.OutOrStdout()
		ticker := time.NewTicker(tickInterval)
		defer ticker.Stop()

		var timer workout.RestTimer
		timer.Start(seconds)
		fmt.Fprintf(out, "Rest %s\n", workout.FormatRest(seconds))

		err = timer.Run(ctx, ticker.C, func(remaining int) {
			if remaining > 0 {
				fmt.Fprintf(out, "\r%s ", workout.FormatRest(remaining))
			}
		})
		if errors.Is(err, context.Canceled) {
			fmt.Fprintf(out, "\nStopped with %s left\n", workout.FormatRest(timer.Remaining()))
			return nil
		}
		if err != nil {
			return err
		}

		fmt.Fprintln(out, "\rGo!  ")
		return nil
	},
}
