// Package rules implements the cross-field post-processing rules wired into
// provider schemas.
//
// A rule computes a field that no single raw value can provide: the
// categorical resolution label, the human-facing channel layout, language
// inferred from track naming, and codec disambiguation for object-based or
// lossless sub-formats. Rules run after every property handler for a track,
// in schema order, and omit their target rather than fail.
package rules
