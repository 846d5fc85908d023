package subtitle

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRenderSingleCue(t *testing.T) {
	cues := Align(5000, []TranscriptEntry{{StartSec: 0.5, EndSec: 2.0, Text: "hello"}})
	text, count := Render(cues)

	if count != 1 {
		t.Fatalf("expected 1 cue, got %d", count)
	}
	want := "1\n00:00:05,500 --> 00:00:07,000\nhello\n\n"
	if text != want {
		t.Fatalf("rendered text mismatch:\ngot  %q\nwant %q", text, want)
	}
}

func TestRenderGlobalNumbering(t *testing.T) {
	// Cues from two segments concatenated in segment order share one
	// index sequence.
	first := Align(0, []TranscriptEntry{{StartSec: 0.1, EndSec: 0.9, Text: "first"}})
	second := Align(10000, []TranscriptEntry{{StartSec: 0.0, EndSec: 1.5, Text: "second"}})
	text, count := Render(append(first, second...))

	if count != 2 {
		t.Fatalf("expected 2 cues, got %d", count)
	}
	blocks := strings.Split(strings.TrimSpace(text), "\n\n")
	if len(blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(blocks))
	}
	if !strings.HasPrefix(blocks[0], "1\n") || !strings.HasPrefix(blocks[1], "2\n") {
		t.Fatalf("expected sequential indices, got:\n%s", text)
	}
	if !strings.Contains(blocks[1], "00:00:10,000 --> 00:00:11,500") {
		t.Fatalf("second cue timing wrong:\n%s", blocks[1])
	}
}

func TestRenderEmpty(t *testing.T) {
	text, count := Render(nil)
	if text != "" || count != 0 {
		t.Fatalf("expected empty render, got %q (%d)", text, count)
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.srt")
	cues := []Cue{{StartMS: 0, EndMS: 1000, Text: "line"}}

	count, err := WriteFile(path, cues)
	if err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 cue written, got %d", count)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if !strings.Contains(string(data), "00:00:00,000 --> 00:00:01,000") {
		t.Fatalf("unexpected file contents: %s", data)
	}
}
