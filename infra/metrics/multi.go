package metrics

import coremetrics "github.com/robdg22/jetshift/core/metrics"

// MultiSink fans plan computations out to multiple sinks.
type MultiSink struct {
	Sinks []coremetrics.Sink
}

// NewMultiSink creates a MultiSink with the provided sinks.
func NewMultiSink(sinks ...coremetrics.Sink) *MultiSink {
	return &MultiSink{Sinks: sinks}
}

// RecordPlanComputation forwards the record to all sinks, returning the
// first error encountered.
func (m *MultiSink) RecordPlanComputation(recs []coremetrics.PlanComputation) error {
	for _, s := range m.Sinks {
		if err := s.RecordPlanComputation(recs); err != nil {
			return err
		}
	}
	return nil
}
