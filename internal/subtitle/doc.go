// Package subtitle converts per-segment transcripts into an SRT subtitle
// track on the original media timeline.
//
// Transcription runs against extracted clips, so every timestamp it yields
// is relative to the clip start. Align shifts those back to absolute
// milliseconds using the owning segment's start offset, Render serializes
// the resulting cues with global 1-based numbering, and FormatTimestamp
// produces the SRT `HH:MM:SS,mmm` form.
package subtitle
