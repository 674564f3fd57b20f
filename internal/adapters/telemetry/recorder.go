package telemetry

import (
	"context"
	"maps"
	"sync"
	"time"

	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

var _ sdktrace.SpanProcessor = (*Recorder)(nil)

// Recorder is a span processor that keeps the duration of every finished span.
type Recorder struct {
	mu      sync.Mutex
	timings map[string]time.Duration
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{timings: make(map[string]time.Duration)}
}

// OnStart is called when a span starts.
func (r *Recorder) OnStart(_ context.Context, _ sdktrace.ReadWriteSpan) {}

// OnEnd records the span duration. Repeated span names accumulate.
func (r *Recorder) OnEnd(s sdktrace.ReadOnlySpan) {
	if !s.SpanContext().IsValid() {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.timings[s.Name()] += s.EndTime().Sub(s.StartTime())
}

// Timings returns a copy of the recorded durations.
func (r *Recorder) Timings() map[string]time.Duration {
	r.mu.Lock()
	defer r.mu.Unlock()
	return maps.Clone(r.timings)
}

// ForceFlush does nothing.
func (r *Recorder) ForceFlush(_ context.Context) error {
	return nil
}

// Shutdown does nothing.
func (r *Recorder) Shutdown(_ context.Context) error {
	return nil
}
