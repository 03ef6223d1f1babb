package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stride/internal/app"
	"github.com/example/stride/internal/ports/primary"
	"github.com/example/stride/internal/wire"
)

// WaterCmd returns the water command
func WaterCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "water",
		Short: "Log water intake and manage the daily goal",
	}

	cmd.AddCommand(waterAddCmd())
	cmd.AddCommand(waterGoalCmd())

	return cmd
}

func waterAddCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add [ml]",
		Short: "Log a water intake (default 250 ml)",
		Long: `Log a water intake in milliliters. Without an argument a standard
glass of 250 ml is logged.

Examples:
  stride water add
  stride water add 500`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			amount := 250
			if len(args) > 0 {
				n, err := strconv.Atoi(args[0])
				if err != nil {
					return fmt.Errorf("invalid amount %q: %w", args[0], err)
				}
				amount = n
			}

			snap, err := wire.TrackingService().AddWater(context.Background(), primary.AddWaterRequest{
				AmountMl: amount,
			})
			if err != nil {
				return fmt.Errorf("failed to log water: %w", err)
			}

			fmt.Printf("✓ Logged %d ml. Today: %s / %d ml (%d%%)\n",
				amount,
				color.New(color.FgHiCyan).Sprintf("%d ml", snap.WaterToday),
				snap.WaterGoalMl,
				snap.PercentOfGoal,
			)
			return nil
		},
	}
}

func waterGoalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "goal [ml]",
		Short: "Show or set the daily water goal (500-6000 ml)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()

			if len(args) == 0 {
				snap, err := wire.TrackingService().Snapshot(ctx)
				if err != nil {
					return fmt.Errorf("failed to load snapshot: %w", err)
				}
				fmt.Printf("Daily water goal: %d ml\n", snap.WaterGoalMl)
				return nil
			}

			goal, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid goal %q: %w", args[0], err)
			}

			err = wire.TrackingService().SetWaterGoal(ctx, primary.SetWaterGoalRequest{GoalMl: goal})
			if errors.Is(err, app.ErrGoalOutOfRange) {
				return fmt.Errorf("goal must be between 500 and 6000 ml, got %d", goal)
			}
			if err != nil {
				return fmt.Errorf("failed to set goal: %w", err)
			}

			fmt.Printf("✓ Daily water goal set to %d ml\n", goal)
			return nil
		},
	}
}
