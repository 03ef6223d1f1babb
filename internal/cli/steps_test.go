package cli

import (
	"fmt"
	"strings"
	"testing"

	"github.com/example/stride/internal/core/stepsignal"
)

func TestParseSample(t *testing.T) {
	tests := []struct {
		name string
		line string
		ok   bool
	}{
		{"valid", "0.1,-0.2,9.81,1700000000000", true},
		{"valid with spaces", "0.1, -0.2, 9.81, 1700000000000", true},
		{"too few fields", "0.1,9.81,1700000000000", false},
		{"bad acceleration", "x,0,9.81,1700000000000", false},
		{"bad timestamp", "0,0,9.81,later", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, _, _, ok := parseSample(tt.line)
			if ok != tt.ok {
				t.Errorf("parseSample(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
		})
	}
}

func TestDetectStepsFromStream(t *testing.T) {
	// A resting stream with two qualifying spikes spaced past the
	// refractory window, plus comment and garbage lines.
	var b strings.Builder
	b.WriteString("# recorded walk\n")
	ts := int64(1_700_000_000_000)
	for i := 0; i < 5; i++ {
		fmt.Fprintf(&b, "0,0,9.81,%d\n", ts)
		ts += 100
	}
	fmt.Fprintf(&b, "0,0,13.74,%d\n", ts) // spike ~1.4g
	ts += 600
	fmt.Fprintf(&b, "0,0,9.81,%d\n", ts)
	ts += 100
	fmt.Fprintf(&b, "0,0,13.74,%d\n", ts)
	b.WriteString("not,a,sample\n")

	detected, skipped, err := detectSteps(strings.NewReader(b.String()), stepsignal.DefaultMotionConfig())
	if err != nil {
		t.Fatalf("detectSteps failed: %v", err)
	}
	if detected != 2 {
		t.Errorf("detected = %d, want 2", detected)
	}
	if skipped != 1 {
		t.Errorf("skipped = %d, want 1", skipped)
	}
}

func TestDetectStepsEmptyInput(t *testing.T) {
	detected, skipped, err := detectSteps(strings.NewReader(""), stepsignal.DefaultMotionConfig())
	if err != nil {
		t.Fatalf("detectSteps failed: %v", err)
	}
	if detected != 0 || skipped != 0 {
		t.Errorf("detected/skipped = %d/%d, want 0/0", detected, skipped)
	}
}
