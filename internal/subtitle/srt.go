package subtitle

import (
	"fmt"
	"os"
	"strings"
)

// Render serializes cues as SRT text, assigning sequential 1-based indices
// in emission order across the whole track. It returns the rendered text
// and the number of cues written.
func Render(cues []Cue) (string, int) {
	var sb strings.Builder
	for i := range cues {
		cues[i].Index = i + 1
		sb.WriteString(fmt.Sprintf("%d\n", cues[i].Index))
		sb.WriteString(fmt.Sprintf("%s --> %s\n", FormatTimestamp(cues[i].StartMS), FormatTimestamp(cues[i].EndMS)))
		sb.WriteString(cues[i].Text)
		sb.WriteString("\n\n")
	}
	return sb.String(), len(cues)
}

// WriteFile renders cues and writes the SRT track to path.
// It returns the number of cues written.
func WriteFile(path string, cues []Cue) (int, error) {
	text, count := Render(cues)
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return 0, fmt.Errorf("write srt: %w", err)
	}
	return count, nil
}
