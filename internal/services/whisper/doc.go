// Package whisper invokes the Whisper transcription CLI on extracted
// speech clips and loads the timestamped transcript documents it writes.
//
// Each invocation is bounded by a wall-clock timeout. Failures never abort
// a run: the pipeline maps them to an empty transcript for the affected
// segment and moves on.
package whisper
