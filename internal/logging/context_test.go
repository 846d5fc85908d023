package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"murmur/internal/services"
)

func TestWithContextCarriesAnnotations(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Format: "console", Writer: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	ctx := services.WithRunID(context.Background(), "abc123")
	ctx = services.WithSegmentIndex(ctx, 2)

	WithContext(ctx, logger).Info("segment transcribed")

	line := buf.String()
	if !strings.Contains(line, "run_id=abc123") || !strings.Contains(line, "segment=2") {
		t.Fatalf("expected context attrs in %q", line)
	}
}

func TestWithContextWithoutAnnotationsReturnsLogger(t *testing.T) {
	logger := NewNop()
	if got := WithContext(context.Background(), logger); got != logger {
		t.Fatal("expected the original logger back for a bare context")
	}
}

func TestContextFieldsNilContext(t *testing.T) {
	if fields := ContextFields(nil); fields != nil {
		t.Fatalf("expected nil fields, got %v", fields)
	}
}
