// Package web is the browser shell: an HTTP JSON API plus a single rendered
// page, both driving the same primary ports as the CLI shell.
package web

import (
	"encoding/json"
	"html/template"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/example/stride/internal/adapters/notify"
	"github.com/example/stride/internal/core/stepsignal"
	"github.com/example/stride/internal/ports/primary"
)

// Server holds the web shell's dependencies.
type Server struct {
	tracking  primary.TrackingService
	reminders primary.ReminderService
	pending   *notify.PendingPrompt
	logger    *zap.Logger
	page      *template.Template

	// The motion detector survives across requests so its adaptive baseline
	// and refractory window behave like an in-page listener would.
	motionMu  sync.Mutex
	motion    *stepsignal.MotionDetector
	motionCfg stepsignal.MotionConfig
}

// NewServer creates the web shell around the shared services.
func NewServer(tracking primary.TrackingService, reminders primary.ReminderService, pending *notify.PendingPrompt, motionCfg stepsignal.MotionConfig, logger *zap.Logger) *Server {
	return &Server{
		tracking:  tracking,
		reminders: reminders,
		pending:   pending,
		logger:    logger,
		page:      template.Must(template.New("page").Parse(pageHTML)),
		motion:    stepsignal.NewMotionDetector(motionCfg),
		motionCfg: motionCfg,
	}
}

// Router builds the HTTP routes.
func (s *Server) Router() http.Handler {
	mux := http.NewServeMux()

	// Page
	mux.HandleFunc("GET /", s.handleHome)

	// JSON API
	mux.HandleFunc("GET /api/snapshot", s.handleSnapshot)
	mux.HandleFunc("POST /api/water", s.handleAddWater)
	mux.HandleFunc("PUT /api/goal", s.handleSetGoal)
	mux.HandleFunc("POST /api/steps", s.handleSteps)
	mux.HandleFunc("POST /api/tracking/start", s.handleTrackingStart)
	mux.HandleFunc("POST /api/tracking/stop", s.handleTrackingStop)
	mux.HandleFunc("GET /api/reminders", s.handleReminderStatus)
	mux.HandleFunc("POST /api/reminders", s.handleReminderToggle)
	mux.HandleFunc("POST /api/reminders/ack", s.handleReminderAck)

	return s.logRequests(mux)
}

// logRequests is a minimal request-logging middleware.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		s.logger.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Duration("took", time.Since(start)))
	})
}

func jsonOK(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(payload)
}

func jsonError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
