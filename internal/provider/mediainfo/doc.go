// Package mediainfo implements the MediaInfo-backed metadata provider.
//
// The executor locates the mediainfo binary (configured path first, then
// well-known locations, then PATH), extracts raw track data with
// --Output=JSON --Full, and the provider normalizes it through the shared
// pipeline schema declared in schema.go.
package mediainfo
