package subtitle

import "strings"

// TranscriptEntry is one timed text span from the transcription
// collaborator, with timestamps in seconds relative to the clip start.
type TranscriptEntry struct {
	StartSec float64
	EndSec   float64
	Text     string
}

// Cue is one subtitle entry on the absolute media timeline. Index is
// assigned by Render; cues coming out of Align carry a zero Index.
type Cue struct {
	Index   int
	StartMS float64
	EndMS   float64
	Text    string
}

// Align maps a clip-relative transcript onto the absolute timeline by
// adding the owning segment's start offset to each entry. Entries whose
// trimmed text is empty produce no cue. Emission order matches input
// order, and entry bounds pass through unvalidated: the collaborator's
// timestamps are trusted as given.
func Align(segmentStartMS float64, entries []TranscriptEntry) []Cue {
	cues := make([]Cue, 0, len(entries))
	for _, entry := range entries {
		text := strings.TrimSpace(entry.Text)
		if text == "" {
			continue
		}
		cues = append(cues, Cue{
			StartMS: segmentStartMS + entry.StartSec*1000,
			EndMS:   segmentStartMS + entry.EndSec*1000,
			Text:    text,
		})
	}
	return cues
}
