// Package ffprobe implements the ffprobe-backed metadata provider.
//
// ffprobe nests stream tags and disposition flags in sub-objects; the
// executor flattens them into "tag:*" and "disposition:*" raw fields so the
// schema can address them like any other field. Durations are reported in
// seconds, unlike mediainfo's milliseconds.
package ffprobe
