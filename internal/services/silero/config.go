package silero

// Config captures runtime settings for voice-activity detection.
type Config struct {
	// Command is the VAD executable to invoke.
	Command string
	// Threshold is the detection confidence threshold. Raised above the
	// model default to reduce background-noise detections in sparse audio.
	Threshold float64
	// MinSpeechDurationMS discards detections shorter than this.
	MinSpeechDurationMS int
	// MinSilenceDurationMS is the shortest silence the model will split on.
	MinSilenceDurationMS int
	// SpeechPadMS is added symmetrically around each raw detection so clip
	// boundaries do not truncate speech.
	SpeechPadMS int
}

// VAD configuration defaults.
const (
	DefaultCommand              = "silero-vad"
	DefaultThreshold            = 0.6
	DefaultMinSpeechDurationMS  = 250
	DefaultMinSilenceDurationMS = 100
	DefaultSpeechPadMS          = 300
)

// SampleRate is the rate of the extracted waveform the detector consumes.
// Detections arrive as sample offsets at this rate; dividing by
// SampleRate/1000 converts them to milliseconds.
const SampleRate = 16000

// DefaultConfig returns the detection settings used when no configuration
// file overrides them.
func DefaultConfig() Config {
	return Config{
		Command:              DefaultCommand,
		Threshold:            DefaultThreshold,
		MinSpeechDurationMS:  DefaultMinSpeechDurationMS,
		MinSilenceDurationMS: DefaultMinSilenceDurationMS,
		SpeechPadMS:          DefaultSpeechPadMS,
	}
}
