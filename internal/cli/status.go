package cli

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/stride/internal/ports/primary"
	"github.com/example/stride/internal/wire"
)

// StatusCmd returns the status command
func StatusCmd() *cobra.Command {
	var showHistory bool

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's steps, water, and goal progress",
		Long: `Display today's activity:
- Step count
- Water intake and progress toward the daily goal
- Recent day history (with --history)

This provides a focused view of "how am I doing today?"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := wire.TrackingService().Snapshot(context.Background())
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}

			fmt.Printf("Stride - %s\n", snap.Date)
			fmt.Println()
			fmt.Printf("Steps: %s\n", color.New(color.FgHiGreen).Sprintf("%d", snap.StepsToday))
			fmt.Printf("Water: %s / %d ml (%d%%)\n",
				color.New(color.FgHiCyan).Sprintf("%d ml", snap.WaterToday),
				snap.WaterGoalMl,
				snap.PercentOfGoal,
			)
			fmt.Printf("       [%s]\n", progressBar(snap.PercentOfGoal, 20))

			if showHistory {
				fmt.Println()
				printHistory(snap.History)
			}

			return nil
		},
	}

	cmd.Flags().BoolVarP(&showHistory, "history", "H", false, "Show recent day history")

	return cmd
}

// HistoryCmd returns the history command
func HistoryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "history",
		Short: "Show the last 7 days of activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			snap, err := wire.TrackingService().Snapshot(context.Background())
			if err != nil {
				return fmt.Errorf("failed to load snapshot: %w", err)
			}

			printHistory(snap.History)
			return nil
		},
	}
}

func printHistory(entries []primary.DayEntry) {
	if len(entries) == 0 {
		fmt.Println("No activity recorded yet.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "DATE\tSTEPS\tWATER")
	fmt.Fprintln(w, "----\t-----\t-----")

	for _, e := range entries {
		marker := ""
		if e.IsToday {
			marker = color.New(color.FgHiMagenta).Sprint(" ←")
		}
		fmt.Fprintf(w, "%s\t%d\t%d ml%s\n", e.Date, e.Steps, e.Water, marker)
	}

	w.Flush()
}

func progressBar(percent, width int) string {
	filled := percent * width / 100
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("#", filled) + strings.Repeat("-", width-filled)
	if percent >= 100 {
		return color.New(color.FgHiGreen).Sprint(bar)
	}
	return color.New(color.FgHiCyan).Sprint(bar)
}
