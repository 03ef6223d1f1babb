package app

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/example/stride/internal/core/reminder"
	"github.com/example/stride/internal/ports/primary"
	"github.com/example/stride/internal/ports/secondary"
)

// QuickLogWaterMl is the fixed amount logged when the user converts a
// reminder prompt into a quick water log.
const QuickLogWaterMl = 150

// DefaultReminderInterval is the stock reminder cadence.
const DefaultReminderInterval = 2 * time.Hour

// waterReminder is the fixed notification every tick delivers. The tag lets
// a new tick replace a prior undismissed notification instead of stacking.
func waterReminder() secondary.Notification {
	return secondary.Notification{
		Title: "Time to drink water",
		Body:  "Take a few sips now and log your intake.",
		Tag:   "water-reminder",
	}
}

// ReminderServiceImpl implements the ReminderService interface.
//
// The core machine owns the legal state transitions; this service owns the
// actual ticker goroutine and the delivery fallback chain. Enable is
// idempotent via cancel-then-restart: at most one ticker ever runs.
type ReminderServiceImpl struct {
	mu       sync.Mutex
	machine  *reminder.Machine
	notifier secondary.Notifier
	prompt   secondary.PromptSink
	logger   *zap.Logger
	interval time.Duration

	stop chan struct{}
}

// NewReminderService creates a ReminderService with injected dependencies.
// A non-positive interval falls back to DefaultReminderInterval.
func NewReminderService(notifier secondary.Notifier, prompt secondary.PromptSink, interval time.Duration, logger *zap.Logger) *ReminderServiceImpl {
	if interval <= 0 {
		interval = DefaultReminderInterval
	}
	return &ReminderServiceImpl{
		machine:  reminder.NewMachine(),
		notifier: notifier,
		prompt:   prompt,
		logger:   logger,
		interval: interval,
	}
}

// Enable turns reminders on. An already-running timer is cancelled and
// restarted, never stacked. The permission request is best-effort and does
// not block the timer.
func (s *ReminderServiceImpl) Enable(ctx context.Context) error {
	s.mu.Lock()
	if s.stop != nil {
		close(s.stop)
	}
	s.machine.Enable()
	s.stop = make(chan struct{})
	stopCh := s.stop
	s.mu.Unlock()

	// One up-front permission request so the first tick can use the system
	// channel. A late resolution after disablement must act on nothing.
	go func() {
		perm, err := s.notifier.RequestPermission(context.Background())
		if err != nil {
			s.logger.Warn("notification permission request failed", zap.Error(err))
			return
		}
		s.mu.Lock()
		enabled := s.machine.Enabled()
		s.mu.Unlock()
		if !enabled {
			return
		}
		s.logger.Info("notification permission resolved",
			zap.String("permission", string(perm)))
	}()

	go s.run(stopCh)
	s.logger.Info("reminders enabled", zap.Duration("interval", s.interval))
	return nil
}

// Disable cancels the interval timer. An in-flight tick completes but
// schedules nothing further.
func (s *ReminderServiceImpl) Disable(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
	s.machine.Disable()
	s.logger.Info("reminders disabled")
	return nil
}

// Status reports the scheduler state for display.
func (s *ReminderServiceImpl) Status(ctx context.Context) (*primary.ReminderStatus, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &primary.ReminderStatus{
		Enabled:         s.machine.Enabled(),
		State:           string(s.machine.State()),
		Permission:      string(s.notifier.Permission()),
		IntervalMinutes: int(s.interval / time.Minute),
	}, nil
}

// run is the ticker loop. It exits when its stop channel closes, which
// also cancels a scheduled-but-not-yet-fired tick.
func (s *ReminderServiceImpl) run(stopCh <-chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if err := s.Tick(context.Background()); err != nil {
				s.logger.Warn("reminder tick failed", zap.Error(err))
			}
		}
	}
}

// Tick runs one reminder delivery. Permission granted goes through the
// system channel; undetermined triggers a just-in-time request; everything
// else, including delivery failures, falls back to the in-app prompt so the
// user is always reachable by at least one channel.
func (s *ReminderServiceImpl) Tick(ctx context.Context) error {
	s.mu.Lock()
	if !s.machine.BeginTick() {
		// Stale timer callback after disablement.
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	n := waterReminder()

	switch reminder.Route(s.notifier.Permission()) {
	case reminder.DeliverSystem:
		s.deliverOrPrompt(ctx, n)

	case reminder.DeliverAfterRequest:
		perm, err := s.notifier.RequestPermission(ctx)
		// The permission prompt is a suspension point: the user may have
		// disabled reminders before it resolved.
		s.mu.Lock()
		enabled := s.machine.Enabled()
		s.mu.Unlock()
		if !enabled {
			return nil
		}
		if err == nil && perm == secondary.PermissionGranted {
			s.deliverOrPrompt(ctx, n)
		} else {
			s.showPrompt(ctx, n)
		}

	default:
		s.showPrompt(ctx, n)
	}

	s.mu.Lock()
	s.machine.ResolveTick()
	s.mu.Unlock()
	return nil
}

func (s *ReminderServiceImpl) deliverOrPrompt(ctx context.Context, n secondary.Notification) {
	if err := s.notifier.Deliver(ctx, n); err != nil {
		s.logger.Warn("notification delivery failed, falling back to prompt",
			zap.String("tag", n.Tag),
			zap.Error(err))
		s.showPrompt(ctx, n)
	}
}

func (s *ReminderServiceImpl) showPrompt(ctx context.Context, n secondary.Notification) {
	if err := s.prompt.Show(ctx, n); err != nil {
		s.logger.Warn("reminder prompt failed", zap.Error(err))
	}
}
