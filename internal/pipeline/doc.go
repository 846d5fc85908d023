// Package pipeline drives one subtitle-generation run from input media to
// a finished SRT track.
//
// The run is a fixed sequence: verify the input, extract a mono 16kHz
// waveform, detect speech intervals, merge them into continuous segments,
// cut and transcribe each segment, align the clip-relative transcripts
// back onto the source timeline, and write the subtitle file next to the
// invocation directory. Collaborators (decoder, detector, transcriber,
// prober) enter through interfaces so the flow is testable with
// deterministic fakes.
//
// Segment transcription may run on a bounded worker pool; results land in
// per-segment slots so cue order is always segment order, independent of
// completion order. Per-segment transcription failures degrade to an empty
// transcript and never abort the run.
package pipeline
