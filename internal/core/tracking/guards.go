package tracking

import "fmt"

// Water goal bounds in milliliters (inclusive).
const (
	MinWaterGoalMl = 500
	MaxWaterGoalMl = 6000
)

// GuardResult represents the outcome of a guard evaluation.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error converts the guard result to an error if not allowed.
func (r GuardResult) Error() error {
	if r.Allowed {
		return nil
	}
	return fmt.Errorf("%s", r.Reason)
}

// CanSetWaterGoal evaluates whether a water goal value is acceptable.
// Rules:
// - Goal must be between MinWaterGoalMl and MaxWaterGoalMl, inclusive
func CanSetWaterGoal(goalMl int) GuardResult {
	if goalMl < MinWaterGoalMl || goalMl > MaxWaterGoalMl {
		return GuardResult{
			Allowed: false,
			Reason:  fmt.Sprintf("water goal must be between %d and %d ml (got %d)", MinWaterGoalMl, MaxWaterGoalMl, goalMl),
		}
	}
	return GuardResult{Allowed: true}
}
