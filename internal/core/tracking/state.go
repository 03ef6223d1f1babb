package tracking

import (
	"sort"
)

const (
	// MaxHistoryDays caps the archived history length (FIFO eviction).
	MaxHistoryDays = 7

	// DefaultWaterGoalMl is the daily water goal for a fresh install.
	DefaultWaterGoalMl = 2000

	// BaselineUnset marks a hardware-counter baseline that has not been
	// anchored yet.
	BaselineUnset = -1
)

// DayRecord is one archived day. Immutable once appended to history.
type DayRecord struct {
	Date  DateKey
	Steps int
	Water int
}

// State holds the mutable counters for the current day plus the bounded
// history of archived days. Exactly one State exists per installation.
type State struct {
	CurrentDate       DateKey
	StepsToday        int
	WaterToday        int
	WaterGoalMl       int
	History           []DayRecord
	BaselineStepCount float64
}

// NewState creates the state for a fresh install on the given day.
func NewState(today DateKey) *State {
	return &State{
		CurrentDate:       today,
		WaterGoalMl:       DefaultWaterGoalMl,
		BaselineStepCount: BaselineUnset,
	}
}

// EnsureRolled archives the previous day and resets counters if today differs
// from CurrentDate. Returns true when a rollover happened (caller persists).
// Days with no activity are not archived.
func (s *State) EnsureRolled(today DateKey) bool {
	if s.CurrentDate == today {
		return false
	}
	if s.StepsToday > 0 || s.WaterToday > 0 {
		s.History = append(s.History, DayRecord{
			Date:  s.CurrentDate,
			Steps: s.StepsToday,
			Water: s.WaterToday,
		})
	}
	if len(s.History) > MaxHistoryDays {
		s.History = s.History[len(s.History)-MaxHistoryDays:]
	}
	s.CurrentDate = today
	s.StepsToday = 0
	s.WaterToday = 0
	// The hardware-counter anchor belongs to the closed day. Without a
	// re-anchor, the first sync of the new day would replay everything
	// walked since the old anchor as if it happened today.
	s.BaselineStepCount = BaselineUnset
	return true
}

// AddWater applies a relative water amount, clamped at zero.
func (s *State) AddWater(amountMl int) {
	s.WaterToday += amountMl
	if s.WaterToday < 0 {
		s.WaterToday = 0
	}
}

// AddSteps applies a relative step increment, clamped at zero.
func (s *State) AddSteps(count int) {
	s.StepsToday += count
	if s.StepsToday < 0 {
		s.StepsToday = 0
	}
}

// SetSteps replaces today's step count with an absolute value, clamped at
// zero. Used by the hardware-counter path, which reports totals rather than
// increments.
func (s *State) SetSteps(count int) {
	if count < 0 {
		count = 0
	}
	s.StepsToday = count
}

// Snapshot is the render-ready projection of a State.
type Snapshot struct {
	Date          DateKey
	StepsToday    int
	WaterToday    int
	WaterGoalMl   int
	PercentOfGoal int
	Days          []SnapshotDay
}

// SnapshotDay is one row of the merged history projection.
type SnapshotDay struct {
	Date    DateKey
	Steps   int
	Water   int
	IsToday bool
}

// Snapshot projects the state for rendering. Today is merged into the day
// list for display only; History itself stays free of the current day until
// rollover archives it. Pure: never mutates the state.
func (s *State) Snapshot() Snapshot {
	days := make([]SnapshotDay, 0, len(s.History)+1)
	for _, rec := range s.History {
		days = append(days, SnapshotDay{Date: rec.Date, Steps: rec.Steps, Water: rec.Water})
	}
	days = append(days, SnapshotDay{
		Date:    s.CurrentDate,
		Steps:   s.StepsToday,
		Water:   s.WaterToday,
		IsToday: true,
	})
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return Snapshot{
		Date:          s.CurrentDate,
		StepsToday:    s.StepsToday,
		WaterToday:    s.WaterToday,
		WaterGoalMl:   s.WaterGoalMl,
		PercentOfGoal: percentOfGoal(s.WaterToday, s.WaterGoalMl),
		Days:          days,
	}
}

// percentOfGoal computes clamp(round(water/goal*100), 0, 100).
func percentOfGoal(waterMl, goalMl int) int {
	if goalMl <= 0 {
		return 0
	}
	pct := int(float64(waterMl)/float64(goalMl)*100 + 0.5)
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
