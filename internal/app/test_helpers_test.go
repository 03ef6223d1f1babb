package app

import (
	"context"
	"sync"
	"time"

	"github.com/example/stride/internal/ports/secondary"
)

// Ensure mocks implement their interfaces
var (
	_ secondary.StateStore = (*mockStateStore)(nil)
	_ secondary.Clock      = (*mockClock)(nil)
	_ secondary.Notifier   = (*mockNotifier)(nil)
	_ secondary.PromptSink = (*mockPrompt)(nil)
)

// mockStateStore implements secondary.StateStore for testing. The mutex
// makes it safe for the scheduler's ticker goroutine.
type mockStateStore struct {
	mu        sync.Mutex
	record    *secondary.StateRecord
	loadErr   error
	saveErr   error
	saveCount int
}

func newMockStateStore() *mockStateStore {
	return &mockStateStore{}
}

func (m *mockStateStore) Load(ctx context.Context) (*secondary.StateRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.loadErr != nil {
		return nil, m.loadErr
	}
	if m.record == nil {
		return nil, secondary.ErrStateNotFound
	}
	return m.record, nil
}

func (m *mockStateStore) Save(ctx context.Context, state *secondary.StateRecord) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.saveErr != nil {
		return m.saveErr
	}
	m.record = state
	m.saveCount++
	return nil
}

func (m *mockStateStore) saved() *secondary.StateRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.record
}

func (m *mockStateStore) saves() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.saveCount
}

// mockClock implements secondary.Clock with a settable instant.
type mockClock struct {
	mu  sync.Mutex
	now time.Time
}

func newMockClock(now time.Time) *mockClock {
	return &mockClock{now: now}
}

func (m *mockClock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

func (m *mockClock) set(now time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = now
}

// mockNotifier implements secondary.Notifier for testing.
type mockNotifier struct {
	mu            sync.Mutex
	permission    secondary.PermissionState
	requestResult secondary.PermissionState
	requestErr    error
	deliverErr    error
	delivered     []secondary.Notification
	requestCount  int
	onRequest     func() // optional hook, runs during RequestPermission
}

func newMockNotifier(p secondary.PermissionState) *mockNotifier {
	return &mockNotifier{permission: p, requestResult: p}
}

func (m *mockNotifier) Permission() secondary.PermissionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.permission
}

func (m *mockNotifier) RequestPermission(ctx context.Context) (secondary.PermissionState, error) {
	m.mu.Lock()
	hook := m.onRequest
	m.requestCount++
	m.mu.Unlock()
	if hook != nil {
		hook()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.requestErr != nil {
		return m.permission, m.requestErr
	}
	m.permission = m.requestResult
	return m.permission, nil
}

func (m *mockNotifier) Deliver(ctx context.Context, n secondary.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.deliverErr != nil {
		return m.deliverErr
	}
	m.delivered = append(m.delivered, n)
	return nil
}

func (m *mockNotifier) deliveredCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.delivered)
}

func (m *mockNotifier) lastDelivered() (secondary.Notification, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.delivered) == 0 {
		return secondary.Notification{}, false
	}
	return m.delivered[len(m.delivered)-1], true
}

// mockPrompt implements secondary.PromptSink for testing.
type mockPrompt struct {
	mu      sync.Mutex
	shown   []secondary.Notification
	showErr error
}

func newMockPrompt() *mockPrompt {
	return &mockPrompt{}
}

func (m *mockPrompt) Show(ctx context.Context, n secondary.Notification) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.showErr != nil {
		return m.showErr
	}
	m.shown = append(m.shown, n)
	return nil
}

func (m *mockPrompt) shownCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.shown)
}
