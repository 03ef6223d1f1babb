package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/stride/internal/config"
	"github.com/example/stride/internal/wire"
)

// ReminderCmd returns the reminder command
func ReminderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Manage hydration reminders",
		Long: `Enable or disable periodic hydration reminders.

The setting is stored in config.json. The scheduler itself runs inside
"stride serve"; enabling reminders here takes effect the next time the
server starts (or immediately, when toggled from the web page).`,
	}

	cmd.AddCommand(reminderOnCmd())
	cmd.AddCommand(reminderOffCmd())
	cmd.AddCommand(reminderStatusCmd())

	return cmd
}

func reminderOnCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "on",
		Short: "Enable hydration reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()
			cfg.RemindersEnabled = true
			if err := config.Save(wire.DataDir(), cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Printf("✓ Hydration reminders enabled (every %d minutes while stride serve runs)\n",
				cfg.ReminderIntervalMinutes)
			return nil
		},
	}
}

func reminderOffCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "off",
		Short: "Disable hydration reminders",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()
			cfg.RemindersEnabled = false
			if err := config.Save(wire.DataDir(), cfg); err != nil {
				return fmt.Errorf("failed to save config: %w", err)
			}

			fmt.Println("✓ Hydration reminders disabled")
			return nil
		},
	}
}

func reminderStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show reminder configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()

			state := "disabled"
			if cfg.RemindersEnabled {
				state = "enabled"
			}

			fmt.Printf("Reminders: %s\n", state)
			fmt.Printf("Interval: %d minutes\n", cfg.ReminderIntervalMinutes)
			fmt.Printf("Notification permission: %s\n", cfg.NotificationPermission)
			return nil
		},
	}
}
