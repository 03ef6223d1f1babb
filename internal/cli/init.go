package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/example/stride/internal/config"
)

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var storage string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create the stride data directory and default config",
		Long: `Initialize stride: create the data directory (~/.stride by default,
STRIDE_DATA_DIR overrides it) and write a default config.json.

Running init is optional - every command creates what it needs on
first use - but it gives you a config file to edit.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir := os.Getenv("STRIDE_DATA_DIR")
			if dataDir == "" {
				var err error
				dataDir, err = config.DefaultDataDir()
				if err != nil {
					return fmt.Errorf("failed to resolve data directory: %w", err)
				}
			}

			cfgPath := filepath.Join(dataDir, config.ConfigFile)
			if _, err := os.Stat(cfgPath); err == nil {
				fmt.Printf("Config already exists at %s\n", cfgPath)
				return nil
			}

			cfg := config.Default()
			if storage != "" {
				if storage != config.StorageSQLite && storage != config.StorageFile {
					return fmt.Errorf("unknown storage backend %q (want %q or %q)",
						storage, config.StorageSQLite, config.StorageFile)
				}
				cfg.Storage = storage
			}

			if err := config.Save(dataDir, cfg); err != nil {
				return fmt.Errorf("failed to write config: %w", err)
			}

			fmt.Printf("✓ Initialized stride in %s\n", dataDir)
			fmt.Printf("  Config: %s\n", cfgPath)
			fmt.Printf("  Storage: %s\n", cfg.Storage)
			return nil
		},
	}

	cmd.Flags().StringVar(&storage, "storage", "", `Storage backend: "sqlite" or "file"`)

	return cmd
}
