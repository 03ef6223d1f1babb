package primary

import "context"

// ReminderService is the primary port for the hydration reminder scheduler.
type ReminderService interface {
	// Enable turns reminders on and (re)starts the interval timer. Calling
	// Enable while already enabled restarts the timer instead of stacking a
	// second one. The notification permission is requested best-effort and
	// never blocks the timer.
	Enable(ctx context.Context) error

	// Disable cancels the interval timer. An in-flight tick completes but
	// schedules nothing further.
	Disable(ctx context.Context) error

	// Status reports the scheduler's current state.
	Status(ctx context.Context) (*ReminderStatus, error)
}

// ReminderStatus describes the scheduler for display.
type ReminderStatus struct {
	Enabled         bool
	State           string // "disabled", "idle", "pending"
	Permission      string
	IntervalMinutes int
}
