package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/stride/internal/cli"
	"github.com/example/stride/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "stride",
		Short:   "Stride - personal daily activity tracker",
		Version: version.String(),
		Long: `Stride tracks your daily steps and water intake, keeps a rolling
seven-day history, and reminds you to drink water.`,
	}

	// Add subcommands
	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.StatusCmd())
	rootCmd.AddCommand(cli.HistoryCmd())
	rootCmd.AddCommand(cli.WaterCmd())
	rootCmd.AddCommand(cli.StepsCmd())
	rootCmd.AddCommand(cli.ReminderCmd())
	rootCmd.AddCommand(cli.ServeCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
