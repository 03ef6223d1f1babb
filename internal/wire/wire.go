// Package wire provides dependency injection for the stride application.
// It creates singleton services with lazy initialization.
package wire

import (
	"os"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/example/stride/internal/adapters/notify"
	"github.com/example/stride/internal/adapters/persistence"
	"github.com/example/stride/internal/adapters/sqlite"
	"github.com/example/stride/internal/app"
	"github.com/example/stride/internal/config"
	"github.com/example/stride/internal/core/stepsignal"
	"github.com/example/stride/internal/db"
	"github.com/example/stride/internal/ports/primary"
	"github.com/example/stride/internal/ports/secondary"
)

var (
	cfg             *config.Config
	dataDir         string
	logger          *zap.Logger
	pendingPrompt   *notify.PendingPrompt
	trackingService primary.TrackingService
	reminderService *app.ReminderServiceImpl
	once            sync.Once
)

// TrackingService returns the singleton TrackingService instance.
func TrackingService() primary.TrackingService {
	once.Do(initServices)
	return trackingService
}

// ReminderService returns the singleton reminder scheduler.
func ReminderService() *app.ReminderServiceImpl {
	once.Do(initServices)
	return reminderService
}

// Logger returns the process-wide zap logger.
func Logger() *zap.Logger {
	once.Do(initServices)
	return logger
}

// Config returns the loaded configuration.
func Config() *config.Config {
	once.Do(initServices)
	return cfg
}

// DataDir returns the resolved data directory (~/.stride by default,
// STRIDE_DATA_DIR overrides it).
func DataDir() string {
	once.Do(initServices)
	return dataDir
}

// Pending returns the in-app prompt buffer shared with the web shell.
func Pending() *notify.PendingPrompt {
	once.Do(initServices)
	return pendingPrompt
}

// MotionConfig returns the motion-heuristic tuning from config.
func MotionConfig() stepsignal.MotionConfig {
	once.Do(initServices)
	return stepsignal.MotionConfig{
		Alpha:           cfg.Motion.Alpha,
		ThresholdG:      cfg.Motion.ThresholdG,
		MinStepInterval: time.Duration(cfg.Motion.MinStepIntervalMs) * time.Millisecond,
	}
}

// initServices initializes all services and their dependencies.
// This is called once via sync.Once.
func initServices() {
	logger = buildLogger()

	dataDir = os.Getenv("STRIDE_DATA_DIR")
	if dataDir == "" {
		var err error
		dataDir, err = config.DefaultDataDir()
		if err != nil {
			logger.Warn("failed to resolve home directory, using current directory", zap.Error(err))
			dataDir = ".stride"
		}
	}

	cfg = config.LoadOrDefault(dataDir)

	// Storage backend: sqlite by default, JSON file as the alternative.
	// A broken backend is degraded around, never fatal.
	store := buildStore()

	pendingPrompt = notify.NewPendingPrompt()
	notifier := notify.NewConsoleNotifier(os.Stdout, secondary.PermissionState(cfg.NotificationPermission))
	prompt := notify.NewMultiPrompt(notify.NewConsolePrompt(os.Stdout), pendingPrompt)

	interval := time.Duration(cfg.ReminderIntervalMinutes) * time.Minute

	trackingService = app.NewTrackingService(store, secondary.SystemClock{}, logger)
	reminderService = app.NewReminderService(notifier, prompt, interval, logger)
}

// buildStore selects the state store per config, falling back to the JSON
// file store when sqlite cannot be opened.
func buildStore() secondary.StateStore {
	if cfg.Storage == config.StorageFile {
		return persistence.NewFileStore(dataDir)
	}

	database, err := db.Open(dataDir)
	if err != nil {
		logger.Warn("failed to open sqlite database, falling back to file store",
			zap.String("data_dir", dataDir),
			zap.Error(err))
		return persistence.NewFileStore(dataDir)
	}
	return sqlite.NewStateRepository(database)
}

func buildLogger() *zap.Logger {
	var zcfg zap.Config
	if os.Getenv("STRIDE_DEBUG") != "" {
		zcfg = zap.NewDevelopmentConfig()
	} else {
		zcfg = zap.NewProductionConfig()
		// Keep routine CLI invocations quiet; warnings still surface.
		zcfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	}

	l, err := zcfg.Build()
	if err != nil {
		return zap.NewNop()
	}
	return l
}
