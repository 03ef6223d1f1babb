package cli

import (
	"context"
	"fmt"
	"net/http"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/stride/internal/web"
	"github.com/example/stride/internal/wire"
)

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web dashboard and reminder scheduler",
		Long: `Start the long-lived stride process: it serves the web dashboard
(steps, water, history, reminder prompts) and runs the hydration
reminder scheduler when reminders are enabled.

Examples:
  stride serve
  stride serve --addr :9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := wire.Config()
			logger := wire.Logger()

			if addr == "" {
				addr = cfg.ListenAddr
			}

			if cfg.RemindersEnabled {
				if err := wire.ReminderService().Enable(context.Background()); err != nil {
					logger.Warn("failed to start reminder scheduler", zap.Error(err))
				}
			}

			server := web.NewServer(
				wire.TrackingService(),
				wire.ReminderService(),
				wire.Pending(),
				wire.MotionConfig(),
				logger,
			)

			fmt.Printf("Stride dashboard listening on %s\n", addr)
			if err := http.ListenAndServe(addr, server.Router()); err != nil {
				return fmt.Errorf("server stopped: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")

	return cmd
}
