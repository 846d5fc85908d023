package whisper

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"murmur/internal/services"
	"murmur/internal/subtitle"
)

// Defaults for the transcription collaborator.
const (
	DefaultCommand = "whisper"
	// DefaultModel is the smallest and fastest Whisper model.
	DefaultModel = "tiny"
	// DefaultTimeout bounds one transcription invocation.
	DefaultTimeout = 120 * time.Second
)

// Config captures runtime settings for transcription.
type Config struct {
	// Command is the Whisper executable to invoke.
	Command string
	// Timeout is the wall-clock bound per invocation.
	Timeout time.Duration
}

// Service runs the Whisper CLI against segment clips.
type Service struct {
	cfg           Config
	commandRunner func(ctx context.Context, name string, args ...string) error
}

// NewService creates a transcription service with the given configuration.
func NewService(cfg Config) *Service {
	if strings.TrimSpace(cfg.Command) == "" {
		cfg.Command = DefaultCommand
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Service{cfg: cfg}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) error) {
	s.commandRunner = runner
}

// Transcribe runs Whisper on one clip and returns the clip-relative
// transcript entries from the JSON document it writes into outputDir.
// Timeouts and non-zero exits surface as ErrTranscriptionFailed; a clean
// exit without a transcript document surfaces as ErrTranscriptMissing.
// Both degrade to an empty transcript at the pipeline boundary.
func (s *Service) Transcribe(ctx context.Context, clipPath, language, model, outputDir string) ([]subtitle.TranscriptEntry, error) {
	if strings.TrimSpace(model) == "" {
		model = DefaultModel
	}

	runCtx, cancel := context.WithTimeout(ctx, s.cfg.Timeout)
	defer cancel()

	args := buildArgs(clipPath, language, model, outputDir)
	if err := s.run(runCtx, s.cfg.Command, args...); err != nil {
		if errors.Is(runCtx.Err(), context.DeadlineExceeded) {
			return nil, services.Wrap(services.ErrTranscriptionFailed, "whisper", "transcribe", "timeout", err)
		}
		return nil, services.Wrap(services.ErrTranscriptionFailed, "whisper", "transcribe", filepath.Base(clipPath), err)
	}

	return LoadTranscript(TranscriptPath(clipPath, outputDir))
}

// TranscriptPath returns where Whisper writes the transcript document for
// a given clip: `<clip stem>.json` inside outputDir.
func TranscriptPath(clipPath, outputDir string) string {
	base := strings.TrimSuffix(filepath.Base(clipPath), filepath.Ext(clipPath))
	return filepath.Join(outputDir, base+".json")
}

// transcriptSegment mirrors one entry of the Whisper JSON document, with
// timestamps in seconds relative to the transcribed clip.
type transcriptSegment struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Text  string  `json:"text"`
}

type transcriptPayload struct {
	Segments []transcriptSegment `json:"segments"`
}

// LoadTranscript reads a Whisper JSON document and returns its entries in
// document order.
func LoadTranscript(jsonPath string) ([]subtitle.TranscriptEntry, error) {
	data, err := os.ReadFile(jsonPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrTranscriptMissing, "whisper", "load transcript", filepath.Base(jsonPath), nil)
		}
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	var payload transcriptPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("parse transcript %s: %w", filepath.Base(jsonPath), err)
	}

	entries := make([]subtitle.TranscriptEntry, 0, len(payload.Segments))
	for _, seg := range payload.Segments {
		entries = append(entries, subtitle.TranscriptEntry{
			StartSec: seg.Start,
			EndSec:   seg.End,
			Text:     seg.Text,
		})
	}
	return entries, nil
}

// buildArgs constructs the Whisper command line. The language is the
// human-readable name the CLI expects (e.g. "Japanese").
func buildArgs(clipPath, language, model, outputDir string) []string {
	return []string{
		clipPath,
		"--model", model,
		"--language", language,
		"--output_format", "json",
		"--output_dir", outputDir,
	}
}

func (s *Service) run(ctx context.Context, name string, args ...string) error {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	if output, err := cmd.CombinedOutput(); err != nil {
		return fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return nil
}
