package silero

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"murmur/internal/segment"
)

// Service runs the Silero VAD CLI against extracted waveforms.
type Service struct {
	cfg           Config
	commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewService creates a VAD service with the given configuration.
func NewService(cfg Config) *Service {
	if strings.TrimSpace(cfg.Command) == "" {
		cfg.Command = DefaultCommand
	}
	return &Service{cfg: cfg}
}

// WithCommandRunner sets a custom command runner (for testing).
func (s *Service) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) ([]byte, error)) {
	s.commandRunner = runner
}

// detection is one raw speech region in the collaborator's JSON output,
// expressed in sample offsets at SampleRate.
type detection struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
}

// DetectSpeech runs voice-activity detection over the waveform at
// audioPath and returns the detected speech intervals in milliseconds,
// ordered as reported. An empty result means no speech was detected and
// is not an error.
func (s *Service) DetectSpeech(ctx context.Context, audioPath string) ([]segment.Interval, error) {
	output, err := s.run(ctx, s.cfg.Command, s.buildArgs(audioPath)...)
	if err != nil {
		return nil, fmt.Errorf("vad: %w", err)
	}

	var detections []detection
	if err := json.Unmarshal(output, &detections); err != nil {
		return nil, fmt.Errorf("vad: parse detections: %w", err)
	}

	intervals := make([]segment.Interval, 0, len(detections))
	for _, d := range detections {
		intervals = append(intervals, segment.Interval{
			StartMS: d.Start / (SampleRate / 1000),
			EndMS:   d.End / (SampleRate / 1000),
		})
	}
	return intervals, nil
}

// buildArgs constructs the detection command line. Detections are written
// to stdout as a JSON array of sample-offset pairs.
func (s *Service) buildArgs(audioPath string) []string {
	return []string{
		audioPath,
		"--sample-rate", strconv.Itoa(SampleRate),
		"--threshold", strconv.FormatFloat(s.cfg.Threshold, 'f', -1, 64),
		"--min-speech-duration-ms", strconv.Itoa(s.cfg.MinSpeechDurationMS),
		"--min-silence-duration-ms", strconv.Itoa(s.cfg.MinSilenceDurationMS),
		"--speech-pad-ms", strconv.Itoa(s.cfg.SpeechPadMS),
		"--output-format", "json",
	}
}

func (s *Service) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if s.commandRunner != nil {
		return s.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	output, err := cmd.Output()
	if err != nil {
		detail := ""
		if exitErr, ok := err.(*exec.ExitError); ok {
			detail = strings.TrimSpace(string(exitErr.Stderr))
		}
		return nil, fmt.Errorf("%s: %w: %s", name, err, detail)
	}
	return output, nil
}
