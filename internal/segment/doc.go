// Package segment merges raw voice-activity intervals into continuous
// speech segments.
//
// The VAD collaborator reports short, often fragmented speech intervals.
// Merge collapses runs of intervals whose gaps stay below a silence
// threshold into single segments suitable for clipping and transcription,
// keeping the outer envelope of each run (internal short silences count as
// covered, not spoken).
package segment
