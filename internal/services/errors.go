package services

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInputNotFound marks a missing input file; the run aborts before
	// any processing.
	ErrInputNotFound = errors.New("input not found")
	// ErrExtractionFailed marks a media-tool failure (full audio extraction
	// or segment cutting); fatal to the run.
	ErrExtractionFailed = errors.New("extraction failed")
	// ErrNoSpeechDetected marks a run where the VAD found nothing. This is
	// a clean terminal state, not a failure: no subtitle file is written.
	ErrNoSpeechDetected = errors.New("no speech detected")
	// ErrTranscriptionFailed marks a per-segment transcription failure
	// (non-zero exit or timeout); the segment degrades to an empty
	// transcript and the run continues.
	ErrTranscriptionFailed = errors.New("transcription failed")
	// ErrTranscriptMissing marks a transcription run that exited cleanly
	// but left no transcript document behind; same degradation as
	// ErrTranscriptionFailed, distinct cause.
	ErrTranscriptMissing = errors.New("transcript file missing")
)

// Wrap builds an error message that includes collaborator context while
// tagging it with the provided marker for later classification via
// errors.Is. The marker should be one of the sentinel errors above.
func Wrap(marker error, component, operation, message string, err error) error {
	detail := buildDetail(component, operation, message)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", marker, detail, err)
	}
	return fmt.Errorf("%w: %s", marker, detail)
}

// IsFatal reports whether an error must abort the whole run. Per-segment
// transcription failures and the no-speech outcome never do.
func IsFatal(err error) bool {
	return errors.Is(err, ErrInputNotFound) || errors.Is(err, ErrExtractionFailed)
}

func buildDetail(component, operation, message string) string {
	parts := make([]string, 0, 3)
	if component = strings.TrimSpace(component); component != "" {
		parts = append(parts, component)
	}
	if operation = strings.TrimSpace(operation); operation != "" {
		parts = append(parts, operation)
	}
	if message = strings.TrimSpace(message); message != "" {
		parts = append(parts, message)
	}
	if len(parts) == 0 {
		return "collaborator failure"
	}
	return strings.Join(parts, ": ")
}
