// Package metrics records matcher evaluation and suite outcome
// counters.
package metrics

import "time"

// Recorder defines the interface for recording matcher metrics.
type Recorder interface {
	// RecordEvaluation records one matcher evaluation.
	RecordEvaluation(matcher string, passed bool)
	// RecordCase records a finished suite case.
	RecordCase(suite string, passed bool, duration time.Duration)
}

// NoopRecorder is a no-op implementation of Recorder used when
// metrics collection is disabled.
type NoopRecorder struct{}

func (NoopRecorder) RecordEvaluation(_ string, _ bool)            {}
func (NoopRecorder) RecordCase(_ string, _ bool, _ time.Duration) {}
