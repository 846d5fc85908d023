package config

const (
	defaultWorkspaceDir            = "temp_continuous"
	defaultVADCommand              = "silero-vad"
	defaultVADThreshold            = 0.6
	defaultMinSpeechDurationMS     = 250
	defaultMinSilenceDurationMS    = 100
	defaultSpeechPadMS             = 300
	defaultWhisperCommand          = "whisper"
	defaultWhisperModel            = "tiny"
	defaultWhisperTimeoutSeconds   = 120
	defaultFFmpegCommand           = "ffmpeg"
	defaultFFprobeCommand          = "ffprobe"
	defaultSilenceThresholdSeconds = 2.0
	defaultJobs                    = 1
	defaultLogLevel                = "info"
	defaultLogFormat               = "console"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Workspace: Workspace{
			Dir: defaultWorkspaceDir,
		},
		VAD: VAD{
			Command:              defaultVADCommand,
			Threshold:            defaultVADThreshold,
			MinSpeechDurationMS:  defaultMinSpeechDurationMS,
			MinSilenceDurationMS: defaultMinSilenceDurationMS,
			SpeechPadMS:          defaultSpeechPadMS,
		},
		Whisper: Whisper{
			Command:        defaultWhisperCommand,
			Model:          defaultWhisperModel,
			TimeoutSeconds: defaultWhisperTimeoutSeconds,
		},
		Media: Media{
			FFmpeg:  defaultFFmpegCommand,
			FFprobe: defaultFFprobeCommand,
		},
		Pipeline: Pipeline{
			SilenceThresholdSeconds: defaultSilenceThresholdSeconds,
			Jobs:                    defaultJobs,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
