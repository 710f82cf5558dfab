package logger

import (
	"context"
	"log/slog"
	"os"
)

type ContextKey string

const (
	// Business context keys propagated through the pipeline.
	RequestIDKey    ContextKey = "rec.request.id"
	SegmentKey      ContextKey = "rec.segment"
	FallbackTierKey ContextKey = "rec.fallback.tier"
)

// ContextLogger provides context-aware logging with pipeline business
// context attached as structured fields.
type ContextLogger struct {
	logger      *slog.Logger
	serviceName string
}

// NewContextLogger creates a new context-aware logger.
func NewContextLogger(serviceName string) *ContextLogger {
	opts := &slog.HandlerOptions{
		Level: parseLevel(os.Getenv("LOG_LEVEL")),
	}
	handler := slog.NewJSONHandler(os.Stdout, opts)

	return &ContextLogger{
		logger:      slog.New(handler),
		serviceName: serviceName,
	}
}

// WithContext returns a logger with context values extracted and added as
// fields.
func (cl *ContextLogger) WithContext(ctx context.Context) *slog.Logger {
	logger := cl.logger.With("service", cl.serviceName)

	var fields []any

	if requestID := ctx.Value(RequestIDKey); requestID != nil {
		fields = append(fields, string(RequestIDKey), requestID)
	}
	if segment := ctx.Value(SegmentKey); segment != nil {
		fields = append(fields, string(SegmentKey), segment)
	}
	if tier := ctx.Value(FallbackTierKey); tier != nil {
		fields = append(fields, string(FallbackTierKey), tier)
	}

	if len(fields) > 0 {
		logger = logger.With(fields...)
	}

	return logger
}

// WithRequestID adds the request id to context for observability.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, RequestIDKey, requestID)
}

// WithSegment adds the assigned segment to context for observability.
func WithSegment(ctx context.Context, segment string) context.Context {
	return context.WithValue(ctx, SegmentKey, segment)
}

// WithFallbackTier adds the fallback tier to context for observability.
func WithFallbackTier(ctx context.Context, tier string) context.Context {
	return context.WithValue(ctx, FallbackTierKey, tier)
}
