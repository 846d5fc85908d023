package services

import "context"

type contextKey string

const (
	runIDKey   contextKey = "run_id"
	segmentKey contextKey = "segment"
)

// WithRunID annotates context with the pipeline run identifier.
func WithRunID(ctx context.Context, id string) context.Context {
	if id == "" {
		return ctx
	}
	return context.WithValue(ctx, runIDKey, id)
}

// RunIDFromContext extracts the run identifier if present.
func RunIDFromContext(ctx context.Context) (string, bool) {
	if v, ok := ctx.Value(runIDKey).(string); ok && v != "" {
		return v, true
	}
	return "", false
}

// WithSegmentIndex annotates context with the 1-based continuous segment index.
func WithSegmentIndex(ctx context.Context, index int) context.Context {
	if index < 1 {
		return ctx
	}
	return context.WithValue(ctx, segmentKey, index)
}

// SegmentIndexFromContext returns the segment index if present.
func SegmentIndexFromContext(ctx context.Context) (int, bool) {
	if v, ok := ctx.Value(segmentKey).(int); ok && v >= 1 {
		return v, true
	}
	return 0, false
}
