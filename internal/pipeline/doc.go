// Package pipeline implements the normalization engine that turns raw
// probe-tool output into typed track metadata.
//
// The engine is declarative: a Schema lists, per track kind, the ordered
// properties (raw field name -> handler -> output field) and the ordered
// rules (cross-field derivations that run after every handler). Handlers
// absorb malformed input by recording a warning on the scan Context and
// omitting the field, so one bad value never aborts a track.
//
// Key types:
//   - RawTrack: raw key/value map for one track as emitted by the tool
//   - Track: insertion-ordered normalized field map
//   - Handler: coerces one raw value into one typed output value
//   - Rule: derives one output field from already-normalized siblings
//   - Schema: the per-kind property and rule declarations
//   - Context: per-scan state (path, scan ID, warnings, debug dump)
package pipeline
