// Package config loads, normalizes, and validates murmur configuration.
//
// It supplies repository defaults, reads TOML files, and centralizes every
// knob the CLI and pipeline need: collaborator commands, VAD tuning,
// transcription timeouts, and logging. Flags override file values; file
// values override defaults. Always obtain settings through this package so
// downstream code receives sanitized values and clear validation errors.
package config
