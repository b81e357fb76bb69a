// Package properties implements the concrete value handlers wired into
// provider schemas.
//
// Each handler coerces one raw probe field into one typed output value:
// primitives (Basic), unit-tagged numbers (Quantity), durations, booleans
// with optional hiding (YesNo), channel counts (AudioChannels), canonical
// language tags (Language), and profile-table token lookups (Lookup).
// Handlers never fail a track: expected malformed input degrades to "field
// omitted, warning recorded" via the scan context.
package properties
