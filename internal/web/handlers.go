package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/example/stride/internal/app"
	"github.com/example/stride/internal/core/stepsignal"
	"github.com/example/stride/internal/ports/primary"
)

// snapshotPayload is the JSON shape of a tracking snapshot.
type snapshotPayload struct {
	Date          string       `json:"date"`
	StepsToday    int          `json:"stepsToday"`
	WaterToday    int          `json:"waterToday"`
	WaterGoalMl   int          `json:"waterGoalMl"`
	PercentOfGoal int          `json:"percentOfGoal"`
	History       []dayPayload `json:"history"`
}

type dayPayload struct {
	Date    string `json:"date"`
	Steps   int    `json:"steps"`
	Water   int    `json:"water"`
	IsToday bool   `json:"isToday"`
}

func toPayload(snap *primary.Snapshot) snapshotPayload {
	out := snapshotPayload{
		Date:          snap.Date,
		StepsToday:    snap.StepsToday,
		WaterToday:    snap.WaterToday,
		WaterGoalMl:   snap.WaterGoalMl,
		PercentOfGoal: snap.PercentOfGoal,
		History:       []dayPayload{},
	}
	for _, d := range snap.History {
		out.History = append(out.History, dayPayload(d))
	}
	return out
}

// HandleHome renders the tracker page.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	snap, err := s.tracking.Snapshot(r.Context())
	if err != nil {
		http.Error(w, "failed to load tracking state", http.StatusInternalServerError)
		return
	}
	if err := s.page.Execute(w, toPayload(snap)); err != nil {
		s.logger.Warn("failed to render page", zap.Error(err))
	}
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	snap, err := s.tracking.Snapshot(r.Context())
	if err != nil {
		jsonError(w, "failed to load snapshot", http.StatusInternalServerError)
		return
	}
	jsonOK(w, toPayload(snap))
}

func (s *Server) handleAddWater(w http.ResponseWriter, r *http.Request) {
	var req struct {
		AmountMl int `json:"amountMl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	snap, err := s.tracking.AddWater(r.Context(), primary.AddWaterRequest{AmountMl: req.AmountMl})
	if err != nil {
		jsonError(w, "failed to log water", http.StatusInternalServerError)
		return
	}
	jsonOK(w, toPayload(snap))
}

func (s *Server) handleSetGoal(w http.ResponseWriter, r *http.Request) {
	var req struct {
		GoalMl int `json:"goalMl"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	err := s.tracking.SetWaterGoal(r.Context(), primary.SetWaterGoalRequest{GoalMl: req.GoalMl})
	if errors.Is(err, app.ErrGoalOutOfRange) {
		jsonError(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}
	if err != nil {
		jsonError(w, "failed to set goal", http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]any{"success": true, "goalMl": req.GoalMl})
}

// motionSample mirrors a DeviceMotion reading: acceleration including
// gravity in m/s² plus the event timestamp.
type motionSample struct {
	Ax          float64 `json:"ax"`
	Ay          float64 `json:"ay"`
	Az          float64 `json:"az"`
	TimestampMs int64   `json:"timestampMs"`
}

// handleSteps accepts either a hardware cumulative total or a batch of raw
// motion samples, whichever sensor the client shell has.
func (s *Server) handleSteps(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Total   *float64       `json:"total"`
		Samples []motionSample `json:"samples"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if req.Total != nil {
		snap, err := s.tracking.ObserveStepTotal(r.Context(), primary.ObserveStepTotalRequest{Total: *req.Total})
		if err != nil {
			jsonError(w, "failed to record steps", http.StatusInternalServerError)
			return
		}
		jsonOK(w, toPayload(snap))
		return
	}

	detected := s.feedMotionSamples(req.Samples)
	if detected > 0 {
		if _, err := s.tracking.AddSteps(r.Context(), primary.AddStepsRequest{Count: detected}); err != nil {
			jsonError(w, "failed to record steps", http.StatusInternalServerError)
			return
		}
	}

	snap, err := s.tracking.Snapshot(r.Context())
	if err != nil {
		jsonError(w, "failed to load snapshot", http.StatusInternalServerError)
		return
	}
	jsonOK(w, toPayload(snap))
}

// feedMotionSamples runs the batch through the shared detector and returns
// the number of detected steps. Samples are dropped when tracking is not
// started, mirroring an unregistered motion listener.
func (s *Server) feedMotionSamples(samples []motionSample) int {
	s.motionMu.Lock()
	defer s.motionMu.Unlock()

	if !s.motion.Started() {
		return 0
	}
	steps := 0
	for _, sample := range samples {
		ev, ok := s.motion.Sample(sample.Ax, sample.Ay, sample.Az, time.UnixMilli(sample.TimestampMs))
		if ok {
			steps += ev.Count
		}
	}
	return steps
}

func (s *Server) handleTrackingStart(w http.ResponseWriter, r *http.Request) {
	s.motionMu.Lock()
	s.motion.Start(time.Now())
	s.motionMu.Unlock()
	jsonOK(w, map[string]any{"tracking": true})
}

func (s *Server) handleTrackingStop(w http.ResponseWriter, r *http.Request) {
	s.motionMu.Lock()
	// A fresh detector drops the adapted baseline, matching a listener
	// that was removed and will be re-registered later.
	s.motion = stepsignal.NewMotionDetector(s.motionCfg)
	s.motionMu.Unlock()
	jsonOK(w, map[string]any{"tracking": false})
}

func (s *Server) handleReminderStatus(w http.ResponseWriter, r *http.Request) {
	status, err := s.reminders.Status(r.Context())
	if err != nil {
		jsonError(w, "failed to load reminder status", http.StatusInternalServerError)
		return
	}

	payload := map[string]any{
		"enabled":         status.Enabled,
		"state":           status.State,
		"permission":      status.Permission,
		"intervalMinutes": status.IntervalMinutes,
	}
	if pending := s.pending.Pending(); pending != nil {
		payload["pending"] = map[string]string{
			"title": pending.Title,
			"body":  pending.Body,
			"tag":   pending.Tag,
		}
	}
	jsonOK(w, payload)
}

func (s *Server) handleReminderToggle(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var err error
	if req.Enabled {
		err = s.reminders.Enable(r.Context())
	} else {
		err = s.reminders.Disable(r.Context())
	}
	if err != nil {
		jsonError(w, "failed to toggle reminders", http.StatusInternalServerError)
		return
	}
	jsonOK(w, map[string]any{"enabled": req.Enabled})
}

// handleReminderAck dismisses the pending in-app prompt, optionally
// converting it into a quick water log.
func (s *Server) handleReminderAck(w http.ResponseWriter, r *http.Request) {
	var req struct {
		LogWater bool `json:"logWater"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	s.pending.Ack()

	if req.LogWater {
		snap, err := s.tracking.AddWater(r.Context(), primary.AddWaterRequest{AmountMl: app.QuickLogWaterMl})
		if err != nil {
			jsonError(w, "failed to log water", http.StatusInternalServerError)
			return
		}
		jsonOK(w, toPayload(snap))
		return
	}
	jsonOK(w, map[string]any{"dismissed": true})
}
