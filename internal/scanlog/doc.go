// Package scanlog records scan outcomes in a local SQLite database: which
// file was scanned, by which provider, how many tracks came out, and how many
// raw values could not be normalized. It stores outcomes only, never the
// normalized metadata itself, so the history stays small and stale results
// cannot be served back.
package scanlog
