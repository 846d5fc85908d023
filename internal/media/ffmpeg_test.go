package media

import (
	"context"
	"errors"
	"strings"
	"testing"

	"murmur/internal/services"
)

func TestBuildExtractArgs(t *testing.T) {
	args := buildExtractArgs("movie.mkv", "audio.wav")
	joined := strings.Join(args, " ")

	for _, fragment := range []string{"-i movie.mkv", "-ac 1", "-ar 16000", "-c:a pcm_s16le", "-vn"} {
		if !strings.Contains(joined, fragment) {
			t.Errorf("expected %q in args, got %q", fragment, joined)
		}
	}
	if args[len(args)-1] != "audio.wav" {
		t.Errorf("expected dest as final arg, got %q", args[len(args)-1])
	}
}

func TestBuildCutArgs(t *testing.T) {
	args := buildCutArgs("audio.wav", 5000, 8000, "segment_0000.wav")
	joined := strings.Join(args, " ")

	if !strings.Contains(joined, "-ss 5.000") {
		t.Errorf("expected start offset in seconds, got %q", joined)
	}
	if !strings.Contains(joined, "-t 3.000") {
		t.Errorf("expected duration in seconds, got %q", joined)
	}
	if !strings.Contains(joined, "-i audio.wav") {
		t.Errorf("expected source after seek args, got %q", joined)
	}
}

func TestExtractAudioFailureIsFatalTaxonomy(t *testing.T) {
	ff := NewFFmpeg("", "")
	ff.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return nil, errors.New("exit status 1")
	})

	err := ff.ExtractAudio(context.Background(), "missing.mkv", "out.wav")
	if !errors.Is(err, services.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestCutSegmentInvalidRange(t *testing.T) {
	ff := NewFFmpeg("", "")
	ff.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		t.Fatal("command should not run for an invalid range")
		return nil, nil
	})

	err := ff.CutSegment(context.Background(), "audio.wav", 2000, 2000, "seg.wav")
	if !errors.Is(err, services.ErrExtractionFailed) {
		t.Fatalf("expected ErrExtractionFailed, got %v", err)
	}
}

func TestCutSegmentInvokesFFmpeg(t *testing.T) {
	var gotName string
	var gotArgs []string
	ff := NewFFmpeg("ffmpeg-custom", "")
	ff.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		gotName = name
		gotArgs = args
		return nil, nil
	})

	if err := ff.CutSegment(context.Background(), "audio.wav", 0, 1500, "seg.wav"); err != nil {
		t.Fatalf("CutSegment: %v", err)
	}
	if gotName != "ffmpeg-custom" {
		t.Fatalf("expected custom binary, got %q", gotName)
	}
	if gotArgs[len(gotArgs)-1] != "seg.wav" {
		t.Fatalf("expected dest as final arg, got %v", gotArgs)
	}
}

func TestDurationParsesProbeOutput(t *testing.T) {
	ff := NewFFmpeg("", "")
	ff.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		if name != FFprobeCommand {
			t.Fatalf("expected ffprobe invocation, got %q", name)
		}
		return []byte(`{"format":{"duration":"93.456000"}}`), nil
	})

	duration, err := ff.Duration(context.Background(), "audio.wav")
	if err != nil {
		t.Fatalf("Duration: %v", err)
	}
	if duration != 93.456 {
		t.Fatalf("expected 93.456, got %v", duration)
	}
}

func TestDurationRejectsGarbage(t *testing.T) {
	ff := NewFFmpeg("", "")
	ff.WithCommandRunner(func(ctx context.Context, name string, args ...string) ([]byte, error) {
		return []byte(`{"format":{}}`), nil
	})

	if _, err := ff.Duration(context.Background(), "audio.wav"); err == nil {
		t.Fatal("expected error for missing duration")
	}
}
