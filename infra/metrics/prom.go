package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"

	coremetrics "github.com/robdg22/jetshift/core/metrics"
)

// PromSink records plan computations in Prometheus metrics.
type PromSink struct {
	plans    *prometheus.CounterVec
	entries  prometheus.Histogram
	duration prometheus.Histogram
}

// NewPromSink registers planner metrics on the default Prometheus
// registerer. The Prometheus server is started separately on
// cfg.PrometheusAddr.
func NewPromSink(cfg coremetrics.Config) (coremetrics.Sink, error) {
	return NewPromSinkWithRegistry(cfg, prometheus.DefaultRegisterer)
}

// NewPromSinkWithRegistry registers metrics on the provided registerer.
// A nil registerer defaults to the global one.
func NewPromSinkWithRegistry(_ coremetrics.Config, reg prometheus.Registerer) (coremetrics.Sink, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	plans := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "schedule_plans_computed_total",
		Help: "Total number of computed sleep schedules",
	}, []string{"strategy", "direction", "offset_hours"})
	entries := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_plan_entries",
		Help:    "Number of daily entries per computed schedule",
		Buckets: []float64{4, 6, 8, 10, 12, 16, 20},
	})
	duration := prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "schedule_compute_seconds",
		Help:    "Time spent computing one schedule",
		Buckets: prometheus.DefBuckets,
	})

	if err := reg.Register(plans); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			plans = are.ExistingCollector.(*prometheus.CounterVec)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(entries); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			entries = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}
	if err := reg.Register(duration); err != nil {
		if are, ok := err.(prometheus.AlreadyRegisteredError); ok {
			duration = are.ExistingCollector.(prometheus.Histogram)
		} else {
			return nil, err
		}
	}

	return &PromSink{plans: plans, entries: entries, duration: duration}, nil
}

// RecordPlanComputation increments the counters for each computed plan.
func (s *PromSink) RecordPlanComputation(recs []coremetrics.PlanComputation) error {
	for _, r := range recs {
		s.plans.WithLabelValues(r.Strategy.Kind.String(), r.Direction.String(), strconv.Itoa(r.OffsetHours)).Inc()
		s.entries.Observe(float64(r.Entries))
		s.duration.Observe(r.Duration.Seconds())
	}
	return nil
}
