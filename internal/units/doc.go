// Package units provides the unit-of-measure value model used by normalized
// track fields.
//
// A Quantity pairs a numeric magnitude with a unit tag (bytes, bits, pixels,
// Hz, bps, fps) so consumers can format and compare values consistently.
// Quantities are immutable and compare equal only when both magnitude and
// unit match.
package units
