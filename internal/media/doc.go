// Package media shells out to ffmpeg and ffprobe for audio extraction,
// segment cutting, and duration inspection.
//
// All extraction output is mono 16kHz 16-bit PCM, the input format the VAD
// and transcription collaborators expect. ffmpeg failures are fatal to a
// run and surface as services.ErrExtractionFailed.
package media
