// Package sqlite contains SQLite implementations of secondary ports.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/example/stride/internal/ports/secondary"
)

// StateRepository implements secondary.StateStore with SQLite. The logical
// content is identical to the canonical JSON blob: a singleton state row
// plus the bounded day_history rows in chronological order.
type StateRepository struct {
	db *sql.DB
}

// NewStateRepository creates a new SQLite state repository.
func NewStateRepository(db *sql.DB) *StateRepository {
	return &StateRepository{db: db}
}

// Load retrieves the singleton state row and its history.
func (r *StateRepository) Load(ctx context.Context) (*secondary.StateRecord, error) {
	record := &secondary.StateRecord{}
	err := r.db.QueryRowContext(ctx,
		"SELECT current_day, steps_today, water_today, water_goal_ml, baseline_step_count FROM tracking_state WHERE id = 1",
	).Scan(&record.CurrentDate, &record.StepsToday, &record.WaterToday, &record.WaterGoalMl, &record.BaselineStepCount)

	if err == sql.ErrNoRows {
		return nil, secondary.ErrStateNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load tracking state: %w", err)
	}

	rows, err := r.db.QueryContext(ctx,
		"SELECT date, steps, water FROM day_history ORDER BY position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load day history: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var row secondary.DayRow
		if err := rows.Scan(&row.Date, &row.Steps, &row.Water); err != nil {
			return nil, fmt.Errorf("failed to scan day history row: %w", err)
		}
		record.History = append(record.History, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate day history: %w", err)
	}

	return record, nil
}

// Save replaces the full persisted state in one transaction.
func (r *StateRepository) Save(ctx context.Context, state *secondary.StateRecord) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO tracking_state (id, current_day, steps_today, water_today, water_goal_ml, baseline_step_count, updated_at)
		 VALUES (1, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(id) DO UPDATE SET
			current_day = excluded.current_day,
			steps_today = excluded.steps_today,
			water_today = excluded.water_today,
			water_goal_ml = excluded.water_goal_ml,
			baseline_step_count = excluded.baseline_step_count,
			updated_at = CURRENT_TIMESTAMP`,
		state.CurrentDate, state.StepsToday, state.WaterToday, state.WaterGoalMl, state.BaselineStepCount,
	)
	if err != nil {
		return fmt.Errorf("failed to save tracking state: %w", err)
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM day_history"); err != nil {
		return fmt.Errorf("failed to clear day history: %w", err)
	}
	for i, row := range state.History {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO day_history (position, date, steps, water) VALUES (?, ?, ?, ?)",
			i, row.Date, row.Steps, row.Water,
		)
		if err != nil {
			return fmt.Errorf("failed to save day history row %s: %w", row.Date, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit state save: %w", err)
	}
	return nil
}
