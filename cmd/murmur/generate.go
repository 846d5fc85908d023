package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"murmur/internal/config"
	"murmur/internal/language"
	"murmur/internal/logging"
	"murmur/internal/media"
	"murmur/internal/pipeline"
	"murmur/internal/services"
	"murmur/internal/services/silero"
	"murmur/internal/services/whisper"
)

type generateParams struct {
	inputPath           string
	configPath          string
	language            string
	model               string
	silenceThresholdSec float64
	speechPadMS         int
	jobs                int
	logLevel            string
	logFormat           string
}

func runGenerate(cmd *cobra.Command, params generateParams) error {
	cfg, _, _, err := config.Load(params.configPath)
	if err != nil {
		return err
	}

	// Flags override file values only when set on the command line.
	silenceThresholdSec := cfg.Pipeline.SilenceThresholdSeconds
	if cmd.Flags().Changed("silence-threshold") {
		silenceThresholdSec = params.silenceThresholdSec
	}
	speechPadMS := cfg.VAD.SpeechPadMS
	if cmd.Flags().Changed("speech-pad") {
		speechPadMS = params.speechPadMS
	}
	jobs := cfg.Pipeline.Jobs
	if cmd.Flags().Changed("jobs") {
		jobs = params.jobs
	}
	model := cfg.Whisper.Model
	if cmd.Flags().Changed("model") {
		model = params.model
	}
	if params.logLevel != "" {
		cfg.Logging.Level = params.logLevel
	}
	if params.logFormat != "" {
		cfg.Logging.Format = params.logFormat
	}
	if silenceThresholdSec <= 0 {
		return fmt.Errorf("silence threshold must be positive, got %v", silenceThresholdSec)
	}
	if jobs < 1 {
		return fmt.Errorf("jobs must be at least 1, got %d", jobs)
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
	})
	if err != nil {
		return err
	}

	vadCfg := silero.Config{
		Command:              cfg.VAD.Command,
		Threshold:            cfg.VAD.Threshold,
		MinSpeechDurationMS:  cfg.VAD.MinSpeechDurationMS,
		MinSilenceDurationMS: cfg.VAD.MinSilenceDurationMS,
		SpeechPadMS:          speechPadMS,
	}

	ffmpeg := media.NewFFmpeg(cfg.Media.FFmpeg, cfg.Media.FFprobe)
	deps := pipeline.Deps{
		Decoder:  ffmpeg,
		Detector: silero.NewService(vadCfg),
		Transcriber: whisper.NewService(whisper.Config{
			Command: cfg.Whisper.Command,
			Timeout: time.Duration(cfg.Whisper.TimeoutSeconds) * time.Second,
		}),
		Prober: ffmpeg,
		Logger: logger,
	}

	opts := pipeline.Options{
		InputPath:          params.inputPath,
		Language:           language.Normalize(params.language),
		Model:              model,
		SilenceThresholdMS: silenceThresholdSec * 1000,
		Jobs:               jobs,
		WorkDirName:        cfg.Workspace.Dir,
	}

	summary, err := pipeline.Run(cmd.Context(), opts, deps)
	if errors.Is(err, services.ErrNoSpeechDetected) {
		// A speechless input is a clean outcome: no subtitle file, exit 0.
		printStatus(statusWarn, "no speech detected, no subtitle file written")
		if summary != nil {
			printStatus(statusInfo, "intermediate files kept in "+summary.WorkDir)
		}
		return nil
	}
	if err != nil {
		return err
	}

	printStatus(statusOK, "subtitle file written to "+summary.OutputPath)
	fmt.Println(renderSummary(summary))
	return nil
}

func renderSummary(summary *pipeline.Summary) string {
	rows := [][]string{
		{"Input", summary.InputPath},
		{"Subtitle file", summary.OutputPath},
		{"Working directory", summary.WorkDir},
		{"Continuous segments", fmt.Sprintf("%d", summary.Segments)},
		{"Subtitle cues", fmt.Sprintf("%d", summary.Cues)},
		{"Speech duration", fmt.Sprintf("%.2fs", summary.SpeechDurationSec)},
	}
	if summary.SourceDurationSec > 0 {
		rows = append(rows,
			[]string{"Source duration", fmt.Sprintf("%.2fs", summary.SourceDurationSec)},
			[]string{"Speech ratio", fmt.Sprintf("%.1f%%", summary.SpeechRatio()*100)},
		)
	}
	return renderTable([]string{"Run summary", ""}, rows)
}
