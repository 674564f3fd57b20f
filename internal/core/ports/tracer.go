package ports

import (
	"context"
	"time"
)

// Span is a timed unit of work.
type Span interface {
	// End completes the span.
	End()
	// RecordError marks the span as failed.
	RecordError(err error)
	// SetAttribute attaches a key/value pair to the span.
	SetAttribute(key string, value any)
}

// Tracer starts spans and reports their durations.
//
//go:generate mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks
type Tracer interface {
	// Start opens a span named name.
	Start(ctx context.Context, name string) (context.Context, Span)
	// Timings returns the durations of finished spans keyed by span name.
	Timings() map[string]time.Duration
	// Shutdown flushes and stops the tracer.
	Shutdown(ctx context.Context) error
}
