// Package reminder contains the pure state machine for the hydration
// reminder scheduler. The app layer owns the actual timer; this package owns
// the legal transitions and the delivery-channel routing.
package reminder

import (
	"github.com/example/stride/internal/ports/secondary"
)

// State is the scheduler's lifecycle state.
type State string

const (
	// Disabled means no timer is running.
	Disabled State = "disabled"
	// EnabledIdle means the timer is running and no tick is in flight.
	EnabledIdle State = "idle"
	// EnabledPending means a tick fired and is awaiting permission/delivery
	// resolution.
	EnabledPending State = "pending"
)

// Machine tracks the scheduler state. Not safe for concurrent use; the app
// layer serializes access.
type Machine struct {
	state State
}

// NewMachine creates a machine in the Disabled state.
func NewMachine() *Machine {
	return &Machine{state: Disabled}
}

// State returns the current state.
func (m *Machine) State() State {
	return m.state
}

// Enabled reports whether the machine is in any enabled state.
func (m *Machine) Enabled() bool {
	return m.state != Disabled
}

// Enable moves to EnabledIdle. Enabling an already-enabled machine is legal
// and lands in EnabledIdle; the caller restarts its timer rather than
// stacking a second one.
func (m *Machine) Enable() {
	m.state = EnabledIdle
}

// Disable moves to Disabled from any state. An in-flight tick observing this
// via ResolveTick acts on nothing further.
func (m *Machine) Disable() {
	m.state = Disabled
}

// BeginTick marks a tick in flight. Returns false when the machine is
// disabled (stale timer callback); a tick while another is pending is legal
// because a new reminder replaces, not stacks, the prior one.
func (m *Machine) BeginTick() bool {
	if m.state == Disabled {
		return false
	}
	m.state = EnabledPending
	return true
}

// ResolveTick completes an in-flight tick. Returns false when the machine
// was disabled while the tick was in flight (stale-callback guard): the
// caller must not schedule or deliver anything further.
func (m *Machine) ResolveTick() bool {
	if m.state != EnabledPending {
		return false
	}
	m.state = EnabledIdle
	return true
}

// Delivery is the channel a tick resolves to.
type Delivery string

const (
	// DeliverSystem sends a system notification.
	DeliverSystem Delivery = "system"
	// DeliverAfterRequest asks for permission first, then re-routes on the
	// resolved state.
	DeliverAfterRequest Delivery = "request"
	// DeliverPrompt falls back to the in-app prompt the user must dismiss
	// or convert into a quick water log.
	DeliverPrompt Delivery = "prompt"
)

// Route maps a permission state to the delivery channel for a tick. The
// user must always be reachable: everything that is not a granted system
// channel ends at the in-app prompt.
func Route(p secondary.PermissionState) Delivery {
	switch p {
	case secondary.PermissionGranted:
		return DeliverSystem
	case secondary.PermissionUndetermined:
		return DeliverAfterRequest
	default:
		return DeliverPrompt
	}
}
