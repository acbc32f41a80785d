// Package tracer is a thin tracing abstraction so packages emit spans without
// importing OpenTelemetry directly. NoopTracer serves tests; OTelTracer
// delegates to the global OpenTelemetry provider.
package tracer

import (
	"context"
	"time"
)

// Span represents an active trace span. End must be called exactly once.
type Span interface {
	End(err error)
	SetAttributes(attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: value}
}

func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// Attribute keys shared by outbound calls.
const (
	AttrOperation     = "backend.operation"
	AttrHTTPMethod    = "http.method"
	AttrHTTPStatus    = "http.status_code"
	AttrTargetCountry = "survey.target_country"
)
