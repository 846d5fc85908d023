package media

import (
	"context"
	"fmt"
	"os/exec"
	"strings"

	"murmur/internal/services"
)

// Default command names for the media tools.
const (
	FFmpegCommand  = "ffmpeg"
	FFprobeCommand = "ffprobe"
)

// FFmpeg invokes the ffmpeg/ffprobe binaries for decoding and inspection.
type FFmpeg struct {
	binary        string
	probeBinary   string
	commandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)
}

// NewFFmpeg creates a decoder around the given binaries. Empty names fall
// back to the commands on PATH.
func NewFFmpeg(binary, probeBinary string) *FFmpeg {
	if strings.TrimSpace(binary) == "" {
		binary = FFmpegCommand
	}
	if strings.TrimSpace(probeBinary) == "" {
		probeBinary = FFprobeCommand
	}
	return &FFmpeg{binary: binary, probeBinary: probeBinary}
}

// WithCommandRunner sets a custom command runner (for testing).
func (f *FFmpeg) WithCommandRunner(runner func(ctx context.Context, name string, args ...string) ([]byte, error)) {
	f.commandRunner = runner
}

func (f *FFmpeg) run(ctx context.Context, name string, args ...string) ([]byte, error) {
	if f.commandRunner != nil {
		return f.commandRunner(ctx, name, args...)
	}
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec
	output, err := cmd.CombinedOutput()
	if err != nil {
		return output, fmt.Errorf("%s: %w: %s", name, err, strings.TrimSpace(string(output)))
	}
	return output, nil
}

// ExtractAudio decodes the full audio track of any media file into a mono
// 16kHz PCM WAV at dest. ffmpeg detects the container format itself.
func (f *FFmpeg) ExtractAudio(ctx context.Context, source, dest string) error {
	if _, err := f.run(ctx, f.binary, buildExtractArgs(source, dest)...); err != nil {
		return services.Wrap(services.ErrExtractionFailed, "ffmpeg", "extract audio", source, err)
	}
	return nil
}

// CutSegment copies the [startMS, endMS] range of an extracted waveform
// into its own mono 16kHz PCM WAV at dest.
func (f *FFmpeg) CutSegment(ctx context.Context, audio string, startMS, endMS float64, dest string) error {
	if endMS <= startMS {
		return services.Wrap(services.ErrExtractionFailed, "ffmpeg", "cut segment",
			fmt.Sprintf("invalid range %.0fms-%.0fms", startMS, endMS), nil)
	}
	if _, err := f.run(ctx, f.binary, buildCutArgs(audio, startMS, endMS, dest)...); err != nil {
		return services.Wrap(services.ErrExtractionFailed, "ffmpeg", "cut segment", dest, err)
	}
	return nil
}

func buildExtractArgs(source, dest string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-i", source,
		"-vn",
		"-sn",
		"-dn",
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		dest,
	}
}

func buildCutArgs(audio string, startMS, endMS float64, dest string) []string {
	return []string{
		"-y",
		"-hide_banner",
		"-loglevel", "error",
		"-ss", formatSeconds(startMS / 1000),
		"-t", formatSeconds((endMS - startMS) / 1000),
		"-i", audio,
		"-ac", "1",
		"-ar", "16000",
		"-c:a", "pcm_s16le",
		dest,
	}
}

func formatSeconds(sec float64) string {
	return fmt.Sprintf("%.3f", sec)
}
