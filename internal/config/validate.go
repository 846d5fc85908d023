package config

import (
	"fmt"
	"strings"
)

// normalize trims string values and backfills empties with defaults so a
// sparse config file never produces unusable settings.
func (c *Config) normalize() {
	defaults := Default()

	c.Workspace.Dir = fallback(c.Workspace.Dir, defaults.Workspace.Dir)
	c.VAD.Command = fallback(c.VAD.Command, defaults.VAD.Command)
	c.Whisper.Command = fallback(c.Whisper.Command, defaults.Whisper.Command)
	c.Whisper.Model = fallback(c.Whisper.Model, defaults.Whisper.Model)
	c.Media.FFmpeg = fallback(c.Media.FFmpeg, defaults.Media.FFmpeg)
	c.Media.FFprobe = fallback(c.Media.FFprobe, defaults.Media.FFprobe)
	c.Logging.Level = strings.ToLower(fallback(c.Logging.Level, defaults.Logging.Level))
	c.Logging.Format = strings.ToLower(fallback(c.Logging.Format, defaults.Logging.Format))
}

// Validate reports the first configuration value that cannot be used.
func (c *Config) Validate() error {
	if c.VAD.Threshold <= 0 || c.VAD.Threshold > 1 {
		return fmt.Errorf("config: vad threshold must be in (0, 1], got %v", c.VAD.Threshold)
	}
	if c.VAD.MinSpeechDurationMS < 0 {
		return fmt.Errorf("config: min_speech_duration_ms must not be negative, got %d", c.VAD.MinSpeechDurationMS)
	}
	if c.VAD.MinSilenceDurationMS < 0 {
		return fmt.Errorf("config: min_silence_duration_ms must not be negative, got %d", c.VAD.MinSilenceDurationMS)
	}
	if c.VAD.SpeechPadMS < 0 {
		return fmt.Errorf("config: speech_pad_ms must not be negative, got %d", c.VAD.SpeechPadMS)
	}
	if c.Whisper.TimeoutSeconds <= 0 {
		return fmt.Errorf("config: whisper timeout_seconds must be positive, got %d", c.Whisper.TimeoutSeconds)
	}
	if c.Pipeline.SilenceThresholdSeconds <= 0 {
		return fmt.Errorf("config: silence_threshold_seconds must be positive, got %v", c.Pipeline.SilenceThresholdSeconds)
	}
	if c.Pipeline.Jobs < 1 {
		return fmt.Errorf("config: jobs must be at least 1, got %d", c.Pipeline.Jobs)
	}
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("config: log format must be console or json, got %q", c.Logging.Format)
	}
	return nil
}

func fallback(value, def string) string {
	if trimmed := strings.TrimSpace(value); trimmed != "" {
		return trimmed
	}
	return def
}
