// Package notify contains notification-channel adapters.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/example/stride/internal/ports/secondary"
)

// ConsoleNotifier implements secondary.Notifier on a terminal. The permission
// state is configured (so denied/undetermined environments can be exercised);
// an undetermined state resolves to granted on request since a terminal is
// always writable.
type ConsoleNotifier struct {
	mu   sync.Mutex
	out  io.Writer
	perm secondary.PermissionState
}

// NewConsoleNotifier creates a terminal notifier with the given initial
// permission state.
func NewConsoleNotifier(out io.Writer, perm secondary.PermissionState) *ConsoleNotifier {
	if perm == "" {
		perm = secondary.PermissionUndetermined
	}
	return &ConsoleNotifier{out: out, perm: perm}
}

// Permission reports the current permission state.
func (n *ConsoleNotifier) Permission() secondary.PermissionState {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.perm
}

// RequestPermission resolves an undetermined state to granted. Denied and
// unavailable states stay as configured.
func (n *ConsoleNotifier) RequestPermission(ctx context.Context) (secondary.PermissionState, error) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.perm == secondary.PermissionUndetermined {
		n.perm = secondary.PermissionGranted
	}
	return n.perm, nil
}

// Deliver prints a notification banner. Terminals cannot replace a prior
// banner, so the dedup tag is shown rather than acted on.
func (n *ConsoleNotifier) Deliver(ctx context.Context, notification secondary.Notification) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.perm != secondary.PermissionGranted {
		return fmt.Errorf("notifications not permitted (%s)", n.perm)
	}

	title := color.New(color.FgCyan, color.Bold).Sprint(notification.Title)
	if _, err := fmt.Fprintf(n.out, "\n🔔 %s\n   %s\n", title, notification.Body); err != nil {
		return fmt.Errorf("failed to write notification: %w", err)
	}
	return nil
}

// ConsolePrompt implements secondary.PromptSink on a terminal: the in-app
// modal becomes a highlighted block telling the user how to log or dismiss.
type ConsolePrompt struct {
	mu  sync.Mutex
	out io.Writer
}

// NewConsolePrompt creates a terminal prompt sink.
func NewConsolePrompt(out io.Writer) *ConsolePrompt {
	return &ConsolePrompt{out: out}
}

// Show prints the prompt block.
func (p *ConsolePrompt) Show(ctx context.Context, n secondary.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	header := color.New(color.FgYellow, color.Bold).Sprint(n.Title)
	_, err := fmt.Fprintf(p.out, "\n%s\n%s\nLog a glass with: stride water add 150\n", header, n.Body)
	if err != nil {
		return fmt.Errorf("failed to write prompt: %w", err)
	}
	return nil
}
