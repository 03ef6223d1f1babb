package sqlite_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/example/stride/internal/adapters/sqlite"
	"github.com/example/stride/internal/db"
	"github.com/example/stride/internal/ports/secondary"

	_ "github.com/mattn/go-sqlite3"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	testDB, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}

	// Use the authoritative schema from schema.go
	if _, err := testDB.Exec(db.GetSchemaSQL()); err != nil {
		t.Fatalf("failed to create schema: %v", err)
	}

	t.Cleanup(func() {
		testDB.Close()
	})

	return testDB
}

func TestStateRepositoryLoadEmptyReturnsNotFound(t *testing.T) {
	repo := sqlite.NewStateRepository(setupTestDB(t))

	_, err := repo.Load(context.Background())
	if !errors.Is(err, secondary.ErrStateNotFound) {
		t.Errorf("err = %v, want ErrStateNotFound", err)
	}
}

func TestStateRepositoryRoundTrip(t *testing.T) {
	repo := sqlite.NewStateRepository(setupTestDB(t))
	ctx := context.Background()

	in := &secondary.StateRecord{
		CurrentDate: "2024-01-05",
		StepsToday:  4200,
		WaterToday:  1500,
		WaterGoalMl: 2500,
		History: []secondary.DayRow{
			{Date: "2024-01-03", Steps: 8000, Water: 2000},
			{Date: "2024-01-04", Steps: 6500, Water: 1800},
		},
		BaselineStepCount: 120345,
	}

	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if out.CurrentDate != "2024-01-05" || out.StepsToday != 4200 ||
		out.WaterToday != 1500 || out.WaterGoalMl != 2500 {
		t.Errorf("loaded = %+v, want %+v", out, in)
	}
	if out.BaselineStepCount != 120345 {
		t.Errorf("BaselineStepCount = %f, want 120345", out.BaselineStepCount)
	}
	if len(out.History) != 2 {
		t.Fatalf("History length = %d, want 2", len(out.History))
	}
	if out.History[0].Date != "2024-01-03" || out.History[1].Date != "2024-01-04" {
		t.Errorf("History order = %+v, want chronological", out.History)
	}
}

func TestStateRepositorySaveIsUpsert(t *testing.T) {
	testDB := setupTestDB(t)
	repo := sqlite.NewStateRepository(testDB)
	ctx := context.Background()

	first := &secondary.StateRecord{
		CurrentDate:       "2024-01-01",
		WaterToday:        500,
		WaterGoalMl:       2000,
		BaselineStepCount: -1,
		History:           []secondary.DayRow{{Date: "2023-12-31", Steps: 100, Water: 200}},
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("first Save failed: %v", err)
	}

	second := &secondary.StateRecord{
		CurrentDate:       "2024-01-02",
		WaterToday:        0,
		WaterGoalMl:       3000,
		BaselineStepCount: 987,
		History: []secondary.DayRow{
			{Date: "2023-12-31", Steps: 100, Water: 200},
			{Date: "2024-01-01", Steps: 0, Water: 500},
		},
	}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("second Save failed: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if out.CurrentDate != "2024-01-02" || out.WaterGoalMl != 3000 {
		t.Errorf("loaded = %+v, want second state", out)
	}
	if len(out.History) != 2 {
		t.Errorf("History length = %d, want 2 (replaced, not appended)", len(out.History))
	}

	// Still exactly one state row.
	var count int
	if err := testDB.QueryRow("SELECT COUNT(*) FROM tracking_state").Scan(&count); err != nil {
		t.Fatalf("row count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("tracking_state rows = %d, want 1", count)
	}
}

func TestStateRepositoryEmptyHistoryRoundTrip(t *testing.T) {
	repo := sqlite.NewStateRepository(setupTestDB(t))
	ctx := context.Background()

	in := &secondary.StateRecord{
		CurrentDate:       "2024-01-01",
		WaterGoalMl:       2000,
		BaselineStepCount: -1,
	}
	if err := repo.Save(ctx, in); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	out, err := repo.Load(ctx)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(out.History) != 0 {
		t.Errorf("History = %+v, want empty", out.History)
	}
}
