// Package stepsignal converts raw sensor input into discrete step events.
// Two mutually exclusive strategies exist: a hardware cumulative counter
// (already-discrete totals) and a motion heuristic over raw accelerometer
// samples for platforms without a dedicated counter.
package stepsignal

import (
	"math"
	"time"
)

// Event is one step-detection output. Absolute events replace today's count;
// relative events increment it. Absolute events come from the hardware
// counter, relative ones from the motion heuristic.
type Event struct {
	Absolute bool
	Count    int
}

// HardwareCounter derives today's steps from a cumulative since-boot total.
// The first observed total anchors the baseline; every later observation
// reports max(0, total-baseline) as an absolute count, which makes replayed
// totals idempotent and guards against counter resets on reboot.
type HardwareCounter struct {
	baseline float64
}

// NewHardwareCounter creates a counter with a previously persisted baseline,
// or tracking.BaselineUnset (any negative value) when none exists yet.
func NewHardwareCounter(baseline float64) *HardwareCounter {
	return &HardwareCounter{baseline: baseline}
}

// Baseline returns the current anchor so callers can persist it after the
// first observation.
func (c *HardwareCounter) Baseline() float64 {
	return c.baseline
}

// Observe consumes one cumulative total. Returns the resulting absolute
// event and whether the observation was usable. Non-finite totals are
// ignored.
func (c *HardwareCounter) Observe(total float64) (Event, bool) {
	if math.IsNaN(total) || math.IsInf(total, 0) {
		return Event{}, false
	}
	if c.baseline < 0 {
		c.baseline = total
	}
	steps := int(total - c.baseline)
	if steps < 0 {
		steps = 0
	}
	return Event{Absolute: true, Count: steps}, true
}

// MotionConfig tunes the motion heuristic. The defaults are empirically
// chosen; they are configuration, not protocol constants.
type MotionConfig struct {
	// Alpha is the exponential-moving-average weight for the gravity
	// baseline.
	Alpha float64
	// ThresholdG is the minimum |magnitude-baseline| deviation, in g, that
	// counts as a footfall spike.
	ThresholdG float64
	// MinStepInterval is the refractory period after a detected step,
	// suppressing double counts from a single footfall's oscillation.
	MinStepInterval time.Duration
}

// DefaultMotionConfig returns the stock tuning.
func DefaultMotionConfig() MotionConfig {
	return MotionConfig{
		Alpha:           0.02,
		ThresholdG:      0.28,
		MinStepInterval: 450 * time.Millisecond,
	}
}

// seedBaselineG approximates the magnitude of gravity at rest, in g.
const seedBaselineG = 1.0

// MotionDetector emits one relative step event per detected footfall. The
// baseline adapts slowly so the detector tolerates carrying posture and
// device orientation drift. It makes no claim of step-perfect accuracy; the
// contract is a count that grows roughly once per footfall.
type MotionDetector struct {
	cfg       MotionConfig
	baselineG float64
	lastStep  time.Time
	started   bool
}

// NewMotionDetector creates a detector with the given tuning.
func NewMotionDetector(cfg MotionConfig) *MotionDetector {
	return &MotionDetector{cfg: cfg}
}

// Start resets the detector at tracking start: the baseline returns to the
// gravity seed and the refractory window opens at now, so pre-start sensor
// noise cannot fire a phantom step.
func (d *MotionDetector) Start(now time.Time) {
	d.baselineG = seedBaselineG
	d.lastStep = now
	d.started = true
}

// Started reports whether Start has been called.
func (d *MotionDetector) Started() bool {
	return d.started
}

// Sample consumes one 3-axis acceleration-including-gravity reading in m/s².
// Missing axes are fed as zero by callers. Returns a +1 event when the
// sample crosses the threshold outside the refractory window.
func (d *MotionDetector) Sample(ax, ay, az float64, now time.Time) (Event, bool) {
	if !d.started {
		return Event{}, false
	}

	magnitudeG := math.Sqrt(ax*ax+ay*ay+az*az) / 9.81
	if math.IsNaN(magnitudeG) || math.IsInf(magnitudeG, 0) {
		return Event{}, false
	}

	d.baselineG = d.baselineG*(1-d.cfg.Alpha) + magnitudeG*d.cfg.Alpha
	diff := math.Abs(magnitudeG - d.baselineG)

	if diff > d.cfg.ThresholdG && now.Sub(d.lastStep) > d.cfg.MinStepInterval {
		d.lastStep = now
		return Event{Absolute: false, Count: 1}, true
	}
	return Event{}, false
}

// BaselineG exposes the current adaptive baseline, mainly for diagnostics.
func (d *MotionDetector) BaselineG() float64 {
	return d.baselineG
}
