package main

import (
	"github.com/spf13/cobra"

	"murmur/internal/services/whisper"
)

func newRootCommand() *cobra.Command {
	var (
		configFlag           string
		languageFlag         string
		modelFlag            string
		silenceThresholdFlag float64
		speechPadFlag        int
		jobsFlag             int
		logLevelFlag         string
		logFormatFlag        string
	)

	rootCmd := &cobra.Command{
		Use:   "murmur [flags] <input-file>",
		Short: "Generate subtitles for sparse-dialogue media",
		Long: `murmur detects where speech actually occurs in a video or audio file,
transcribes only those regions, and assembles the results into one
time-aligned SRT track written next to the invocation directory.

Intermediate files (the extracted waveform, per-segment clips, and
transcript documents) are kept in the working directory for inspection.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, generateParams{
				inputPath:           args[0],
				configPath:          configFlag,
				language:            languageFlag,
				model:               modelFlag,
				silenceThresholdSec: silenceThresholdFlag,
				speechPadMS:         speechPadFlag,
				jobs:                jobsFlag,
				logLevel:            logLevelFlag,
				logFormat:           logFormatFlag,
			})
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	rootCmd.Flags().StringVarP(&languageFlag, "language", "l", "", "Language name or code (e.g. Japanese, en)")
	rootCmd.Flags().StringVar(&modelFlag, "model", whisper.DefaultModel, "Whisper model size")
	rootCmd.Flags().Float64Var(&silenceThresholdFlag, "silence-threshold", 2.0, "Silence threshold in seconds separating continuous segments")
	rootCmd.Flags().IntVar(&speechPadFlag, "speech-pad", 300, "Padding in milliseconds around detected speech")
	rootCmd.Flags().IntVar(&jobsFlag, "jobs", 1, "Concurrent segment transcriptions")
	rootCmd.Flags().StringVar(&logLevelFlag, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&logFormatFlag, "log-format", "", "Log format (console, json)")
	_ = rootCmd.MarkFlagRequired("language")

	rootCmd.AddCommand(newDepsCommand(&configFlag))
	rootCmd.AddCommand(newConfigCommand(&configFlag))

	return rootCmd
}
