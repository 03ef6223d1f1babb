package notify

import (
	"context"
	"sync"

	"github.com/example/stride/internal/ports/secondary"
)

// PendingPrompt implements secondary.PromptSink for the web shell: the
// prompt is held until the page polls for it and the user dismisses it or
// converts it into a quick water log. A new prompt replaces an undismissed
// one, matching the notification dedup-tag semantics.
type PendingPrompt struct {
	mu      sync.Mutex
	pending *secondary.Notification
}

// NewPendingPrompt creates an empty pending-prompt holder.
func NewPendingPrompt() *PendingPrompt {
	return &PendingPrompt{}
}

// Show records the prompt, replacing any undismissed one.
func (p *PendingPrompt) Show(ctx context.Context, n secondary.Notification) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = &n
	return nil
}

// Pending returns the current prompt, or nil when there is none.
func (p *PendingPrompt) Pending() *secondary.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending == nil {
		return nil
	}
	n := *p.pending
	return &n
}

// Ack clears the pending prompt. Returns false when nothing was pending.
func (p *PendingPrompt) Ack() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.pending == nil {
		return false
	}
	p.pending = nil
	return true
}

// MultiPrompt fans a prompt out to several sinks so the user is reachable on
// every surface the process serves.
type MultiPrompt struct {
	sinks []secondary.PromptSink
}

// NewMultiPrompt creates a fan-out prompt sink.
func NewMultiPrompt(sinks ...secondary.PromptSink) *MultiPrompt {
	return &MultiPrompt{sinks: sinks}
}

// Show delivers to every sink, returning the first error after trying all.
func (m *MultiPrompt) Show(ctx context.Context, n secondary.Notification) error {
	var firstErr error
	for _, sink := range m.sinks {
		if err := sink.Show(ctx, n); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
