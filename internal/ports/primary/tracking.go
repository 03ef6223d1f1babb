// Package primary defines the primary ports (driving interfaces) for the
// application. Shells (CLI, web) depend only on these interfaces.
package primary

import "context"

// TrackingService is the primary port for the daily tracking engine.
// Every operation rolls the day forward first, so callers never observe a
// stale "today" across a midnight boundary.
type TrackingService interface {
	// Snapshot returns the current day's counters and the merged history
	// projection for rendering. Pure read; mutates nothing except the
	// defensive day rollover.
	Snapshot(ctx context.Context) (*Snapshot, error)

	// AddWater logs a water intake and returns the refreshed snapshot.
	AddWater(ctx context.Context, req AddWaterRequest) (*Snapshot, error)

	// SetWaterGoal updates the daily water goal. Values outside 500-6000 ml
	// are rejected and the stored goal is left unchanged.
	SetWaterGoal(ctx context.Context, req SetWaterGoalRequest) error

	// AddSteps applies a relative step increment (motion-heuristic feed).
	AddSteps(ctx context.Context, req AddStepsRequest) (*Snapshot, error)

	// ObserveStepTotal feeds a cumulative since-boot step total from a
	// hardware counter. The first observation anchors the baseline; later
	// ones replace today's count with max(0, total-baseline).
	ObserveStepTotal(ctx context.Context, req ObserveStepTotalRequest) (*Snapshot, error)
}

// AddWaterRequest carries a single water log entry in milliliters.
type AddWaterRequest struct {
	AmountMl int
}

// SetWaterGoalRequest carries a new daily water goal in milliliters.
type SetWaterGoalRequest struct {
	GoalMl int
}

// AddStepsRequest carries a relative step increment.
type AddStepsRequest struct {
	Count int
}

// ObserveStepTotalRequest carries a cumulative hardware-counter reading.
type ObserveStepTotalRequest struct {
	Total float64
}

// Snapshot is the render-ready projection of the tracking state.
type Snapshot struct {
	Date          string
	StepsToday    int
	WaterToday    int
	WaterGoalMl   int
	PercentOfGoal int
	History       []DayEntry
}

// DayEntry is one row of the merged history projection, sorted ascending by
// date. Today is included for display but not persisted into history.
type DayEntry struct {
	Date    string
	Steps   int
	Water   int
	IsToday bool
}
