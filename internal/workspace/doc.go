// Package workspace manages the per-run working directory holding the
// extracted waveform, one clip per continuous segment, and the transcript
// documents.
//
// The directory is created once per run and deliberately retained after
// both successful and failed runs so intermediates can be inspected. A
// file lock prevents two concurrent runs from clobbering each other's
// clips in the same directory.
package workspace
