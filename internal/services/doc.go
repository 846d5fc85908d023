// Package services defines shared utilities consumed by the pipeline and
// the external-tool integrations beneath it.
//
// Key responsibilities:
//   - Context helpers that stamp run identifiers and segment indexes for
//     correlated structured logging
//   - The error taxonomy separating fatal run failures from per-segment
//     degradations, with sentinel markers callers match via errors.Is
package services
