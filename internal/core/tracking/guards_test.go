package tracking

import "testing"

func TestCanSetWaterGoal(t *testing.T) {
	tests := []struct {
		name        string
		goalMl      int
		wantAllowed bool
	}{
		{name: "lower bound inclusive", goalMl: 500, wantAllowed: true},
		{name: "upper bound inclusive", goalMl: 6000, wantAllowed: true},
		{name: "typical goal", goalMl: 2000, wantAllowed: true},
		{name: "below lower bound", goalMl: 499, wantAllowed: false},
		{name: "above upper bound", goalMl: 6001, wantAllowed: false},
		{name: "zero", goalMl: 0, wantAllowed: false},
		{name: "negative", goalMl: -100, wantAllowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CanSetWaterGoal(tt.goalMl)
			if result.Allowed != tt.wantAllowed {
				t.Errorf("Allowed = %v, want %v (goal %d)", result.Allowed, tt.wantAllowed, tt.goalMl)
			}
			if tt.wantAllowed && result.Error() != nil {
				t.Errorf("Error() = %v, want nil", result.Error())
			}
			if !tt.wantAllowed && result.Error() == nil {
				t.Error("Error() = nil, want validation error")
			}
		})
	}
}
