// Package secondary defines the secondary ports (driven adapters) for the application.
// These are the interfaces through which the application drives external systems.
package secondary

import (
	"context"
	"errors"
)

// ErrStateNotFound is returned by StateStore.Load when no state has been
// persisted yet (fresh install).
var ErrStateNotFound = errors.New("tracking state not found")

// StateStore defines the secondary port for tracking-state persistence.
// Implementations persist a single state record per installation.
type StateStore interface {
	// Load retrieves the persisted tracking state.
	// Returns ErrStateNotFound when nothing has been persisted yet.
	Load(ctx context.Context) (*StateRecord, error)

	// Save persists the full tracking state (write-through, replace).
	Save(ctx context.Context, state *StateRecord) error
}

// StateRecord represents the tracking state as stored in persistence.
// Field names mirror the canonical JSON blob schema.
type StateRecord struct {
	CurrentDate       string  `json:"currentDate"`
	StepsToday        int     `json:"stepsToday"`
	WaterToday        int     `json:"waterToday"`
	WaterGoalMl       int     `json:"waterGoalMl"`
	History           []DayRow `json:"history"`
	BaselineStepCount float64 `json:"baselineStepCount"`
}

// DayRow is an archived day within a StateRecord's history.
type DayRow struct {
	Date  string `json:"date"`
	Steps int    `json:"steps"`
	Water int    `json:"water"`
}
