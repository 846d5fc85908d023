package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"murmur/internal/logging"
	"murmur/internal/segment"
	"murmur/internal/services"
	"murmur/internal/subtitle"
	"murmur/internal/workspace"
)

// Decoder extracts and cuts audio via the external media tool.
type Decoder interface {
	ExtractAudio(ctx context.Context, source, dest string) error
	CutSegment(ctx context.Context, audio string, startMS, endMS float64, dest string) error
}

// Detector yields raw speech intervals for an extracted waveform.
type Detector interface {
	DetectSpeech(ctx context.Context, audioPath string) ([]segment.Interval, error)
}

// Transcriber produces clip-relative transcript entries for one segment
// clip, bounded by its own wall-clock timeout.
type Transcriber interface {
	Transcribe(ctx context.Context, clipPath, language, model, outputDir string) ([]subtitle.TranscriptEntry, error)
}

// Prober reports a media file's duration for summary statistics.
type Prober interface {
	Duration(ctx context.Context, path string) (float64, error)
}

// Deps bundles the collaborators a run needs.
type Deps struct {
	Decoder     Decoder
	Detector    Detector
	Transcriber Transcriber
	// Prober is optional; without it the summary omits the source duration.
	Prober Prober
	Logger *slog.Logger
}

// Options carries the per-run parameters.
type Options struct {
	// InputPath is the source media file.
	InputPath string
	// Language is the transcription language display name.
	Language string
	// Model is the transcription model size selector.
	Model string
	// SilenceThresholdMS separates continuous segments.
	SilenceThresholdMS float64
	// Jobs bounds concurrent segment transcriptions; 1 is sequential.
	Jobs int
	// RootDir is where the working directory and the subtitle file are
	// created. Empty means the current working directory.
	RootDir string
	// WorkDirName overrides the working directory name.
	WorkDirName string
}

// Summary reports what a completed run produced.
type Summary struct {
	RunID             string
	InputPath         string
	OutputPath        string
	WorkDir           string
	SourceDurationSec float64
	SpeechDurationSec float64
	Segments          int
	Cues              int
}

// SpeechRatio returns detected speech as a fraction of the source
// duration, or 0 when the duration is unknown.
func (s Summary) SpeechRatio() float64 {
	if s.SourceDurationSec <= 0 {
		return 0
	}
	return s.SpeechDurationSec / s.SourceDurationSec
}

// Run executes one subtitle-generation run.
//
// Fatal outcomes (missing input, media-tool failure) return an error
// tagged with the matching services sentinel and write no subtitle file.
// A run over speechless media returns services.ErrNoSpeechDetected, also
// without a subtitle file; callers present that as a notice, not a
// failure.
func Run(ctx context.Context, opts Options, deps Deps) (*Summary, error) {
	if deps.Decoder == nil || deps.Detector == nil || deps.Transcriber == nil {
		return nil, errors.New("pipeline requires decoder, detector, and transcriber")
	}
	logger := deps.Logger
	if logger == nil {
		logger = logging.NewNop()
	}

	runID := strings.Split(uuid.NewString(), "-")[0]
	ctx = services.WithRunID(ctx, runID)
	logger = logging.WithContext(ctx, logger)

	rootDir := opts.RootDir
	if rootDir == "" {
		rootDir = "."
	}

	if _, err := os.Stat(opts.InputPath); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, services.Wrap(services.ErrInputNotFound, "pipeline", "stat input", opts.InputPath, nil)
		}
		return nil, fmt.Errorf("stat input: %w", err)
	}

	ws, err := workspace.Create(rootDir, opts.WorkDirName)
	if err != nil {
		return nil, err
	}
	defer ws.Release()

	summary := &Summary{
		RunID:     runID,
		InputPath: opts.InputPath,
		WorkDir:   ws.Dir(),
	}

	logger.Info("extracting audio", "input", opts.InputPath, "workdir", ws.Dir())
	if err := deps.Decoder.ExtractAudio(ctx, opts.InputPath, ws.AudioPath()); err != nil {
		return nil, err
	}

	logger.Info("detecting speech", "silence_threshold_ms", opts.SilenceThresholdMS)
	intervals, err := deps.Detector.DetectSpeech(ctx, ws.AudioPath())
	if err != nil {
		return nil, err
	}
	if len(intervals) == 0 {
		return summary, services.ErrNoSpeechDetected
	}
	logger.Info("speech detected", "intervals", len(intervals))

	segments := segment.Merge(intervals, opts.SilenceThresholdMS)
	summary.Segments = len(segments)
	summary.SpeechDurationSec = segment.TotalDurationMS(segments) / 1000
	for i, seg := range segments {
		logger.Debug("continuous segment",
			"segment", i+1,
			"start_sec", seg.StartMS/1000,
			"end_sec", seg.EndMS/1000,
			"duration_sec", seg.DurationMS()/1000,
		)
	}
	logger.Info("segments merged", "segments", len(segments))

	transcripts, err := transcribeSegments(ctx, opts, deps, logger, ws, segments)
	if err != nil {
		return nil, err
	}

	var cues []subtitle.Cue
	for i, seg := range segments {
		cues = append(cues, subtitle.Align(seg.StartMS, transcripts[i])...)
	}

	summary.OutputPath = outputPath(rootDir, opts.InputPath)
	count, err := subtitle.WriteFile(summary.OutputPath, cues)
	if err != nil {
		return nil, err
	}
	summary.Cues = count
	logger.Info("subtitle file written", "path", summary.OutputPath, "cues", count)

	if deps.Prober != nil {
		if duration, err := deps.Prober.Duration(ctx, ws.AudioPath()); err != nil {
			logger.Warn("source duration unavailable", "error", err)
		} else {
			summary.SourceDurationSec = duration
		}
	}

	return summary, nil
}

// transcribeSegments cuts and transcribes every segment, returning one
// transcript slot per segment in segment order. Transcription failures
// leave their slot empty; cutting failures abort the run.
func transcribeSegments(ctx context.Context, opts Options, deps Deps, logger *slog.Logger, ws *workspace.Workspace, segments []segment.Continuous) ([][]subtitle.TranscriptEntry, error) {
	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	transcripts := make([][]subtitle.TranscriptEntry, len(segments))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(jobs)
	for i, seg := range segments {
		i, seg := i, seg
		group.Go(func() error {
			segCtx := services.WithSegmentIndex(groupCtx, i+1)
			segLogger := logging.WithContext(segCtx, logger)

			clip := ws.ClipPath(i)
			segLogger.Info("processing segment",
				"of", len(segments),
				"start_sec", seg.StartMS/1000,
				"duration_sec", seg.DurationMS()/1000,
			)

			if err := deps.Decoder.CutSegment(segCtx, ws.AudioPath(), seg.StartMS, seg.EndMS, clip); err != nil {
				return err
			}

			entries, err := deps.Transcriber.Transcribe(segCtx, clip, opts.Language, opts.Model, ws.Dir())
			if err != nil {
				// Degrade this segment only; the run continues.
				segLogger.Warn("transcription failed, segment degraded to empty transcript", "error", err)
				return nil
			}
			transcripts[i] = entries
			segLogger.Info("segment transcribed", "entries", len(entries))
			return nil
		})
	}
	if err := group.Wait(); err != nil {
		return nil, err
	}
	return transcripts, nil
}

// outputPath names the subtitle file after the input stem, in rootDir.
func outputPath(rootDir, inputPath string) string {
	base := filepath.Base(inputPath)
	stem := strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(rootDir, stem+".srt")
}
