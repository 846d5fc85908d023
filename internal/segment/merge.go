package segment

// Interval is one raw detected-speech region reported by the VAD
// collaborator, in milliseconds from the start of the audio.
// Intervals are assumed ordered by StartMS; Merge does not verify this.
type Interval struct {
	StartMS float64
	EndMS   float64
}

// Continuous is a maximal run of intervals whose consecutive gaps are all
// below the silence threshold. The span is the outer envelope of the run;
// silences shorter than the threshold are covered, not removed.
type Continuous struct {
	StartMS float64
	EndMS   float64
}

// DurationMS returns the covered span in milliseconds.
func (c Continuous) DurationMS() float64 {
	return c.EndMS - c.StartMS
}

// Merge folds an ordered interval sequence into continuous segments.
// Two adjacent intervals belong to the same segment when the gap between
// them is strictly below silenceThresholdMS; a gap exactly equal to the
// threshold starts a new segment. Overlapping or touching intervals have a
// non-positive gap and always merge. An empty input yields no segments,
// which callers treat as "no speech detected" rather than an error.
func Merge(intervals []Interval, silenceThresholdMS float64) []Continuous {
	if len(intervals) == 0 {
		return nil
	}

	segments := make([]Continuous, 0, len(intervals))
	current := Continuous{StartMS: intervals[0].StartMS, EndMS: intervals[0].EndMS}

	for _, next := range intervals[1:] {
		gap := next.StartMS - current.EndMS
		if gap < silenceThresholdMS {
			current.EndMS = next.EndMS
			continue
		}
		segments = append(segments, current)
		current = Continuous{StartMS: next.StartMS, EndMS: next.EndMS}
	}

	return append(segments, current)
}

// TotalDurationMS sums the covered spans of the given segments.
func TotalDurationMS(segments []Continuous) float64 {
	var total float64
	for _, seg := range segments {
		total += seg.DurationMS()
	}
	return total
}
