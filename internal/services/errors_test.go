package services

import (
	"errors"
	"strings"
	"testing"
)

func TestWrapTagsMarker(t *testing.T) {
	cause := errors.New("exit status 1")
	err := Wrap(ErrExtractionFailed, "ffmpeg", "extract audio", "input.mkv", cause)

	if !errors.Is(err, ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed marker, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected wrapped cause to be inspectable, got %v", err)
	}
	for _, fragment := range []string{"ffmpeg", "extract audio", "input.mkv", "exit status 1"} {
		if !strings.Contains(err.Error(), fragment) {
			t.Errorf("expected %q in error message, got %q", fragment, err.Error())
		}
	}
}

func TestWrapWithoutCause(t *testing.T) {
	err := Wrap(ErrTranscriptMissing, "whisper", "load transcript", "segment_0001.json", nil)
	if !errors.Is(err, ErrTranscriptMissing) {
		t.Fatalf("expected ErrTranscriptMissing marker, got %v", err)
	}
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		err   error
		fatal bool
	}{
		{Wrap(ErrInputNotFound, "pipeline", "stat input", "", nil), true},
		{Wrap(ErrExtractionFailed, "ffmpeg", "cut segment", "", nil), true},
		{Wrap(ErrTranscriptionFailed, "whisper", "transcribe", "", nil), false},
		{Wrap(ErrTranscriptMissing, "whisper", "load transcript", "", nil), false},
		{ErrNoSpeechDetected, false},
		{errors.New("unrelated"), false},
	}
	for _, tt := range tests {
		if got := IsFatal(tt.err); got != tt.fatal {
			t.Errorf("IsFatal(%v) = %v, want %v", tt.err, got, tt.fatal)
		}
	}
}
