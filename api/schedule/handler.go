// Package schedule exposes the planner over HTTP for the presentation
// layer: plan computation plus the strategy recommendation endpoints.
package schedule

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/robdg22/jetshift/core/logger"
	coremetrics "github.com/robdg22/jetshift/core/metrics"
	"github.com/robdg22/jetshift/core/model"
	"github.com/robdg22/jetshift/core/recommend"
	coreschedule "github.com/robdg22/jetshift/core/schedule"
)

// Handler serves the planner API. Requests are stateless; every call
// recomputes the plan from the submitted snapshots.
type Handler struct {
	planner *coreschedule.Planner
	sink    coremetrics.Sink
	log     logger.Logger
	mux     *http.ServeMux
}

// New builds the API handler. A nil sink disables metrics recording.
func New(planner *coreschedule.Planner, sink coremetrics.Sink, log logger.Logger) *Handler {
	if sink == nil {
		sink = coremetrics.NopSink{}
	}
	h := &Handler{planner: planner, sink: sink, log: log}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/schedule", h.computeSchedule)
	mux.HandleFunc("/api/strategy/recommend", h.recommendStrategy)
	mux.HandleFunc("/api/strategy/compare", h.compareStrategies)
	h.mux = mux
	return h
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

// ScheduleRequest is the body of POST /api/schedule.
type ScheduleRequest struct {
	Traveler model.Traveler `json:"traveler"`
	Trip     model.Trip     `json:"trip"`
}

// ScheduleResponse carries the computed plan. Entries is empty, never
// null, when the trip has no outbound leg.
type ScheduleResponse struct {
	PlanID       string                     `json:"plan_id"`
	RecoveryDays int                        `json:"recovery_days"`
	Entries      []model.DailyScheduleEntry `json:"entries"`
}

func (h *Handler) computeSchedule(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	var req ScheduleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	planID := uuid.NewString()
	start := time.Now()
	entries := h.planner.ComputeSchedule(req.Traveler, req.Trip)
	elapsed := time.Since(start)
	if entries == nil {
		entries = []model.DailyScheduleEntry{}
	}
	recovery := h.planner.RecoveryDays(req.Traveler, req.Trip)

	h.record(planID, req, entries, recovery, elapsed)
	h.log.Debugw("schedule computed", map[string]any{
		"plan_id": planID,
		"entries": len(entries),
	})

	writeJSON(w, ScheduleResponse{PlanID: planID, RecoveryDays: recovery, Entries: entries})
}

func (h *Handler) record(planID string, req ScheduleRequest, entries []model.DailyScheduleEntry, recovery int, elapsed time.Duration) {
	signed := h.planner.OffsetHours(req.Trip)
	offsetHours := signed
	if offsetHours < 0 {
		offsetHours = -offsetHours
	}
	rec := coremetrics.PlanComputation{
		PlanID:       planID,
		Strategy:     req.Traveler.EffectiveStrategy(req.Trip.Strategy),
		Direction:    model.DirectionForOffset(signed),
		OffsetHours:  offsetHours,
		TravelerAge:  req.Traveler.Age,
		Entries:      len(entries),
		RecoveryDays: recovery,
		Duration:     elapsed,
		ComputedAt:   time.Now().UTC(),
	}
	if err := h.sink.RecordPlanComputation([]coremetrics.PlanComputation{rec}); err != nil {
		h.log.Warnf("record plan metric: %v", err)
	}
}

// StrategyRequest is the body of the recommend and compare endpoints.
type StrategyRequest struct {
	DaysAtDestination   int   `json:"days_at_destination"`
	TimezoneOffsetHours int   `json:"timezone_offset_hours"`
	TravelerAges        []int `json:"traveler_ages"`
}

// RecommendResponse carries the recommended strategy and its recovery
// estimate.
type RecommendResponse struct {
	Strategy     model.Strategy `json:"strategy"`
	RecoveryDays int            `json:"recovery_days"`
}

func (h *Handler) recommendStrategy(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeStrategyRequest(w, r)
	if !ok {
		return
	}
	s := recommend.Strategy(req.DaysAtDestination, req.TimezoneOffsetHours, req.TravelerAges)
	writeJSON(w, RecommendResponse{
		Strategy:     s,
		RecoveryDays: recommend.RecoveryDays(s, req.TimezoneOffsetHours),
	})
}

func (h *Handler) compareStrategies(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeStrategyRequest(w, r)
	if !ok {
		return
	}
	writeJSON(w, recommend.Compare(req.DaysAtDestination, req.TimezoneOffsetHours, req.TravelerAges))
}

func decodeStrategyRequest(w http.ResponseWriter, r *http.Request) (StrategyRequest, bool) {
	var req StrategyRequest
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return req, false
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
