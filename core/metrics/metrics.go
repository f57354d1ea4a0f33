// Package metrics defines the observability boundary of the planner:
// a sink interface the service records plan computations into, with
// implementations under infra/metrics.
package metrics

import (
	"time"

	"github.com/robdg22/jetshift/core/model"
)

// PlanComputation describes one computed schedule for observability.
type PlanComputation struct {
	PlanID       string
	Strategy     model.Strategy
	Direction    model.Direction
	OffsetHours  int
	TravelerAge  int
	Entries      int
	RecoveryDays int
	Duration     time.Duration
	ComputedAt   time.Time
}

// Sink records plan computations for observability purposes.
type Sink interface {
	RecordPlanComputation(recs []PlanComputation) error
}

// NopSink implements Sink with no-op methods.
type NopSink struct{}

func (NopSink) RecordPlanComputation([]PlanComputation) error { return nil }

// Config defines settings for metrics sinks.
type Config struct {
	PrometheusEnabled bool   `json:"prometheus_enabled"`
	PrometheusAddr    string `json:"prometheus_addr"`
	InfluxEnabled     bool   `json:"influx_enabled"`
	InfluxURL         string `json:"influx_url"`
	InfluxToken       string `json:"influx_token"`
	InfluxOrg         string `json:"influx_org"`
	InfluxBucket      string `json:"influx_bucket"`
}

// SetDefaults applies sane defaults.
func (c *Config) SetDefaults() {
	if c.PrometheusAddr == "" {
		c.PrometheusAddr = ":9090"
	}
}
