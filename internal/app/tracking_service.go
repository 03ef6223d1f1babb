// Package app implements the primary ports with injected secondary-port
// dependencies.
package app

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/example/stride/internal/core/stepsignal"
	"github.com/example/stride/internal/core/tracking"
	"github.com/example/stride/internal/ports/primary"
	"github.com/example/stride/internal/ports/secondary"
)

// ErrGoalOutOfRange is returned when a water goal fails validation. The
// stored goal is left unchanged.
var ErrGoalOutOfRange = errors.New("water goal out of range")

// TrackingServiceImpl implements the TrackingService interface.
//
// The in-memory state is authoritative for the running session: it is loaded
// once, mutated under the mutex, and persisted write-through after every
// mutation. A failed write is logged and retried implicitly on the next
// mutation. The mutex serializes whole read-roll-mutate-persist cycles, the
// Go equivalent of the original shells' single-threaded event queue.
type TrackingServiceImpl struct {
	mu     sync.Mutex
	store  secondary.StateStore
	clock  secondary.Clock
	logger *zap.Logger

	state *tracking.State
}

// NewTrackingService creates a TrackingService with injected dependencies.
func NewTrackingService(store secondary.StateStore, clock secondary.Clock, logger *zap.Logger) *TrackingServiceImpl {
	return &TrackingServiceImpl{
		store:  store,
		clock:  clock,
		logger: logger,
	}
}

// Snapshot returns the render-ready projection after a defensive rollover.
func (s *TrackingServiceImpl) Snapshot(ctx context.Context) (*primary.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureCurrent(ctx)
	return s.snapshotLocked(), nil
}

// AddWater logs a water intake, clamped at zero.
func (s *TrackingServiceImpl) AddWater(ctx context.Context, req primary.AddWaterRequest) (*primary.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureCurrent(ctx)
	s.state.AddWater(req.AmountMl)
	s.persist(ctx)
	return s.snapshotLocked(), nil
}

// SetWaterGoal validates and updates the daily goal. Rejection leaves the
// stored goal untouched.
func (s *TrackingServiceImpl) SetWaterGoal(ctx context.Context, req primary.SetWaterGoalRequest) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureCurrent(ctx)
	if guard := tracking.CanSetWaterGoal(req.GoalMl); !guard.Allowed {
		return fmt.Errorf("%w: %s", ErrGoalOutOfRange, guard.Reason)
	}
	s.state.WaterGoalMl = req.GoalMl
	s.persist(ctx)
	return nil
}

// AddSteps applies a relative step increment from the motion-heuristic feed.
func (s *TrackingServiceImpl) AddSteps(ctx context.Context, req primary.AddStepsRequest) (*primary.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureCurrent(ctx)
	s.state.AddSteps(req.Count)
	s.persist(ctx)
	return s.snapshotLocked(), nil
}

// ObserveStepTotal feeds a cumulative hardware-counter reading. The first
// observation anchors and persists the baseline; later ones replace today's
// count with the clamped delta. Non-finite totals are ignored.
func (s *TrackingServiceImpl) ObserveStepTotal(ctx context.Context, req primary.ObserveStepTotalRequest) (*primary.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ensureCurrent(ctx)

	counter := stepsignal.NewHardwareCounter(s.state.BaselineStepCount)
	ev, ok := counter.Observe(req.Total)
	if !ok {
		return s.snapshotLocked(), nil
	}
	s.state.BaselineStepCount = counter.Baseline()
	s.state.SetSteps(ev.Count)
	s.persist(ctx)
	return s.snapshotLocked(), nil
}

// ensureCurrent lazily loads the state and rolls the day forward. Must be
// called with the mutex held at the start of every operation that touches
// "today" — the process may stay resident across a midnight boundary.
func (s *TrackingServiceImpl) ensureCurrent(ctx context.Context) {
	today := tracking.KeyFor(s.clock.Now())

	if s.state == nil {
		s.state = s.load(ctx, today)
	}
	if s.state.EnsureRolled(today) {
		s.persist(ctx)
	}
}

// load retrieves the persisted state, falling back to a fresh state for
// today on a missing or unreadable blob. Load never fails the caller.
func (s *TrackingServiceImpl) load(ctx context.Context, today tracking.DateKey) *tracking.State {
	record, err := s.store.Load(ctx)
	if err != nil {
		if !errors.Is(err, secondary.ErrStateNotFound) {
			s.logger.Warn("failed to load tracking state, starting fresh",
				zap.Error(err))
		}
		return tracking.NewState(today)
	}
	return recordToState(record, today)
}

// persist writes the state through to the store. Failures are best-effort:
// the in-memory state stays authoritative and the next successful mutation
// persists everything.
func (s *TrackingServiceImpl) persist(ctx context.Context) {
	if err := s.store.Save(ctx, stateToRecord(s.state)); err != nil {
		s.logger.Warn("failed to persist tracking state",
			zap.String("date", string(s.state.CurrentDate)),
			zap.Error(err))
	}
}

func (s *TrackingServiceImpl) snapshotLocked() *primary.Snapshot {
	snap := s.state.Snapshot()
	out := &primary.Snapshot{
		Date:          string(snap.Date),
		StepsToday:    snap.StepsToday,
		WaterToday:    snap.WaterToday,
		WaterGoalMl:   snap.WaterGoalMl,
		PercentOfGoal: snap.PercentOfGoal,
		History:       make([]primary.DayEntry, 0, len(snap.Days)),
	}
	for _, d := range snap.Days {
		out.History = append(out.History, primary.DayEntry{
			Date:    string(d.Date),
			Steps:   d.Steps,
			Water:   d.Water,
			IsToday: d.IsToday,
		})
	}
	return out
}

// recordToState rehydrates the domain state from a persisted record,
// repairing fields a malformed blob may be missing.
func recordToState(record *secondary.StateRecord, today tracking.DateKey) *tracking.State {
	state := &tracking.State{
		CurrentDate:       tracking.DateKey(record.CurrentDate),
		StepsToday:        record.StepsToday,
		WaterToday:        record.WaterToday,
		WaterGoalMl:       record.WaterGoalMl,
		BaselineStepCount: record.BaselineStepCount,
	}
	if !state.CurrentDate.Valid() {
		state.CurrentDate = today
	}
	if state.StepsToday < 0 {
		state.StepsToday = 0
	}
	if state.WaterToday < 0 {
		state.WaterToday = 0
	}
	if guard := tracking.CanSetWaterGoal(state.WaterGoalMl); !guard.Allowed {
		state.WaterGoalMl = tracking.DefaultWaterGoalMl
	}
	for _, row := range record.History {
		state.History = append(state.History, tracking.DayRecord{
			Date:  tracking.DateKey(row.Date),
			Steps: row.Steps,
			Water: row.Water,
		})
	}
	if len(state.History) > tracking.MaxHistoryDays {
		state.History = state.History[len(state.History)-tracking.MaxHistoryDays:]
	}
	return state
}

func stateToRecord(state *tracking.State) *secondary.StateRecord {
	record := &secondary.StateRecord{
		CurrentDate:       string(state.CurrentDate),
		StepsToday:        state.StepsToday,
		WaterToday:        state.WaterToday,
		WaterGoalMl:       state.WaterGoalMl,
		BaselineStepCount: state.BaselineStepCount,
		History:           make([]secondary.DayRow, 0, len(state.History)),
	}
	for _, rec := range state.History {
		record.History = append(record.History, secondary.DayRow{
			Date:  string(rec.Date),
			Steps: rec.Steps,
			Water: rec.Water,
		})
	}
	return record
}
