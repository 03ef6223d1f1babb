package tracking

import (
	"fmt"
	"testing"
	"time"
)

func TestKeyFor(t *testing.T) {
	loc := time.FixedZone("TST", 2*3600)
	got := KeyFor(time.Date(2024, 1, 9, 23, 59, 0, 0, loc))
	if got != "2024-01-09" {
		t.Errorf("KeyFor = %s, want 2024-01-09", got)
	}
	if !got.Valid() {
		t.Errorf("expected %s to be valid", got)
	}
	if DateKey("not-a-date").Valid() {
		t.Error("expected invalid key to fail validation")
	}
}

func TestNewStateDefaults(t *testing.T) {
	s := NewState("2024-01-01")

	if s.CurrentDate != "2024-01-01" {
		t.Errorf("CurrentDate = %s, want 2024-01-01", s.CurrentDate)
	}
	if s.StepsToday != 0 || s.WaterToday != 0 {
		t.Errorf("counters = %d/%d, want 0/0", s.StepsToday, s.WaterToday)
	}
	if s.WaterGoalMl != DefaultWaterGoalMl {
		t.Errorf("WaterGoalMl = %d, want %d", s.WaterGoalMl, DefaultWaterGoalMl)
	}
	if len(s.History) != 0 {
		t.Errorf("History length = %d, want 0", len(s.History))
	}
	if s.BaselineStepCount != BaselineUnset {
		t.Errorf("BaselineStepCount = %f, want %d", s.BaselineStepCount, BaselineUnset)
	}
}

func TestEnsureRolledSameDayIsNoOp(t *testing.T) {
	s := NewState("2024-01-01")
	s.AddWater(500)
	s.AddSteps(100)

	if rolled := s.EnsureRolled("2024-01-01"); rolled {
		t.Error("EnsureRolled on same day should be a no-op")
	}
	if s.StepsToday != 100 || s.WaterToday != 500 {
		t.Errorf("counters changed on no-op rollover: %d/%d", s.StepsToday, s.WaterToday)
	}
}

func TestEnsureRolledArchivesAndResets(t *testing.T) {
	s := NewState("2024-01-01")
	s.AddSteps(500)
	s.AddWater(1200)

	if rolled := s.EnsureRolled("2024-01-02"); !rolled {
		t.Fatal("expected rollover on new day")
	}

	if s.CurrentDate != "2024-01-02" {
		t.Errorf("CurrentDate = %s, want 2024-01-02", s.CurrentDate)
	}
	if s.StepsToday != 0 || s.WaterToday != 0 {
		t.Errorf("counters = %d/%d, want 0/0 after rollover", s.StepsToday, s.WaterToday)
	}
	if len(s.History) != 1 {
		t.Fatalf("History length = %d, want 1", len(s.History))
	}
	rec := s.History[0]
	if rec.Date != "2024-01-01" || rec.Steps != 500 || rec.Water != 1200 {
		t.Errorf("archived record = %+v, want {2024-01-01 500 1200}", rec)
	}
}

func TestEnsureRolledSkipsEmptyDays(t *testing.T) {
	s := NewState("2024-01-01")

	s.EnsureRolled("2024-01-02")

	if len(s.History) != 0 {
		t.Errorf("empty day was archived: %+v", s.History)
	}
	if s.CurrentDate != "2024-01-02" {
		t.Errorf("CurrentDate = %s, want 2024-01-02", s.CurrentDate)
	}
}

func TestEnsureRolledResetsHardwareBaseline(t *testing.T) {
	s := NewState("2024-01-01")
	s.BaselineStepCount = 1000
	s.SetSteps(4000)

	s.EnsureRolled("2024-01-02")

	if s.BaselineStepCount != BaselineUnset {
		t.Errorf("BaselineStepCount = %f after rollover, want %d (re-anchor on first sync of the new day)",
			s.BaselineStepCount, BaselineUnset)
	}
}

func TestHistoryCappedAtSevenOldestDroppedFirst(t *testing.T) {
	s := NewState("2024-01-01")

	// 9 consecutive rollovers, each day with nonzero activity.
	for day := 1; day <= 9; day++ {
		s.AddSteps(day * 100)
		s.AddWater(day * 10)
		next := DateKey(fmt.Sprintf("2024-01-%02d", day+1))
		s.EnsureRolled(next)
	}

	if len(s.History) != MaxHistoryDays {
		t.Fatalf("History length = %d, want %d", len(s.History), MaxHistoryDays)
	}
	// The 7 most recent days are 2024-01-03 .. 2024-01-09.
	for i, rec := range s.History {
		want := DateKey(fmt.Sprintf("2024-01-%02d", i+3))
		if rec.Date != want {
			t.Errorf("History[%d].Date = %s, want %s", i, rec.Date, want)
		}
	}
}

func TestHistoryNeverContainsCurrentDate(t *testing.T) {
	s := NewState("2024-01-01")
	s.AddWater(100)
	s.EnsureRolled("2024-01-02")
	s.AddWater(200)

	for _, rec := range s.History {
		if rec.Date == s.CurrentDate {
			t.Errorf("history contains current date %s", s.CurrentDate)
		}
	}
}

func TestAddWaterAccumulatesAndClamps(t *testing.T) {
	s := NewState("2024-01-01")

	s.AddWater(250)
	s.AddWater(250)
	if s.WaterToday != 500 {
		t.Errorf("WaterToday = %d, want 500", s.WaterToday)
	}

	s.AddWater(-9999)
	if s.WaterToday != 0 {
		t.Errorf("WaterToday = %d, want 0 after underflow clamp", s.WaterToday)
	}
}

func TestAddStepsClampsAtZero(t *testing.T) {
	s := NewState("2024-01-01")
	s.AddSteps(10)
	s.AddSteps(-50)
	if s.StepsToday != 0 {
		t.Errorf("StepsToday = %d, want 0", s.StepsToday)
	}
}

func TestSetStepsReplacesAndClamps(t *testing.T) {
	s := NewState("2024-01-01")
	s.SetSteps(4200)
	if s.StepsToday != 4200 {
		t.Errorf("StepsToday = %d, want 4200", s.StepsToday)
	}
	s.SetSteps(-3)
	if s.StepsToday != 0 {
		t.Errorf("StepsToday = %d, want 0", s.StepsToday)
	}
}

func TestSnapshotPercentOfGoal(t *testing.T) {
	tests := []struct {
		name    string
		water   int
		goal    int
		wantPct int
	}{
		{name: "zero water", water: 0, goal: 2000, wantPct: 0},
		{name: "quarter of goal", water: 500, goal: 2000, wantPct: 25},
		{name: "rounds to nearest", water: 333, goal: 1000, wantPct: 33},
		{name: "clamped at 100", water: 5000, goal: 2000, wantPct: 100},
		{name: "zero goal yields zero", water: 500, goal: 0, wantPct: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState("2024-01-01")
			s.WaterGoalMl = tt.goal
			s.AddWater(tt.water)
			snap := s.Snapshot()
			if snap.PercentOfGoal != tt.wantPct {
				t.Errorf("PercentOfGoal = %d, want %d", snap.PercentOfGoal, tt.wantPct)
			}
		})
	}
}

func TestSnapshotMergesTodaySortedAscending(t *testing.T) {
	s := NewState("2024-01-05")
	s.History = []DayRecord{
		{Date: "2024-01-03", Steps: 100, Water: 300},
		{Date: "2024-01-04", Steps: 200, Water: 400},
	}
	s.AddWater(500)

	snap := s.Snapshot()

	if len(snap.Days) != 3 {
		t.Fatalf("Days length = %d, want 3", len(snap.Days))
	}
	for i := 1; i < len(snap.Days); i++ {
		if snap.Days[i-1].Date >= snap.Days[i].Date {
			t.Errorf("Days not sorted ascending: %s before %s", snap.Days[i-1].Date, snap.Days[i].Date)
		}
	}
	last := snap.Days[len(snap.Days)-1]
	if !last.IsToday || last.Date != "2024-01-05" || last.Water != 500 {
		t.Errorf("today row = %+v, want today 2024-01-05 with 500 ml", last)
	}

	// Merging for display must not leak today into the persisted history.
	if len(s.History) != 2 {
		t.Errorf("History length = %d after Snapshot, want 2", len(s.History))
	}
}
