package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Workspace contains working-directory configuration.
type Workspace struct {
	// Dir is the working directory name, created under the invocation
	// directory and retained after the run.
	Dir string `toml:"dir"`
}

// VAD contains tuning for the voice-activity-detection collaborator.
type VAD struct {
	Command              string  `toml:"command"`
	Threshold            float64 `toml:"threshold"`
	MinSpeechDurationMS  int     `toml:"min_speech_duration_ms"`
	MinSilenceDurationMS int     `toml:"min_silence_duration_ms"`
	SpeechPadMS          int     `toml:"speech_pad_ms"`
}

// Whisper contains settings for the transcription collaborator.
type Whisper struct {
	Command        string `toml:"command"`
	Model          string `toml:"model"`
	TimeoutSeconds int    `toml:"timeout_seconds"`
}

// Media contains the media-tool binaries.
type Media struct {
	FFmpeg  string `toml:"ffmpeg"`
	FFprobe string `toml:"ffprobe"`
}

// Pipeline contains run-level tuning.
type Pipeline struct {
	// SilenceThresholdSeconds is the minimum gap between speech intervals
	// for them to remain separate continuous segments.
	SilenceThresholdSeconds float64 `toml:"silence_threshold_seconds"`
	// Jobs bounds concurrent segment transcriptions. 1 means strictly
	// sequential processing.
	Jobs int `toml:"jobs"`
}

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Config encapsulates all configuration values for murmur.
type Config struct {
	Workspace Workspace `toml:"workspace"`
	VAD       VAD       `toml:"vad"`
	Whisper   Whisper   `toml:"whisper"`
	Media     Media     `toml:"media"`
	Pipeline  Pipeline  `toml:"pipeline"`
	Logging   Logging   `toml:"logging"`
}

// Sample returns the embedded sample configuration file contents.
func Sample() string {
	return sampleConfig
}

// DefaultConfigPath returns the default configuration file location.
func DefaultConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home: %w", err)
	}
	return filepath.Join(home, ".config", "murmur", "config.toml"), nil
}

// Load locates, parses, and validates a configuration file. A missing file
// is not an error: defaults apply. The returned path and bool report which
// file was considered and whether it existed.
func Load(path string) (*Config, string, bool, error) {
	cfg := Default()

	resolvedPath, exists, err := resolveConfigPath(path)
	if err != nil {
		return nil, "", false, err
	}

	if exists {
		file, err := os.Open(resolvedPath)
		if err != nil {
			return nil, "", false, fmt.Errorf("open config: %w", err)
		}
		defer file.Close()

		decoder := toml.NewDecoder(file)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, "", false, fmt.Errorf("parse config: %w", err)
		}
	}

	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, "", false, err
	}

	return &cfg, resolvedPath, exists, nil
}

func resolveConfigPath(path string) (string, bool, error) {
	if path != "" {
		_, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return path, false, nil
			}
			return "", false, fmt.Errorf("stat config: %w", err)
		}
		return path, true, nil
	}

	defaultPath, err := DefaultConfigPath()
	if err != nil {
		return "", false, err
	}
	projectPath, err := filepath.Abs("murmur.toml")
	if err != nil {
		return "", false, err
	}

	if info, err := os.Stat(defaultPath); err == nil && !info.IsDir() {
		return defaultPath, true, nil
	}
	if info, err := os.Stat(projectPath); err == nil && !info.IsDir() {
		return projectPath, true, nil
	}

	return defaultPath, false, nil
}
