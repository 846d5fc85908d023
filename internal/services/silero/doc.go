// Package silero invokes the Silero voice-activity-detection CLI and
// converts its sample-offset detections into millisecond speech intervals.
package silero
