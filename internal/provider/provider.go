package provider

import (
	"context"
	"path/filepath"
	"strings"

	"metaprobe/internal/pipeline"
)

// Provider extracts and normalizes metadata for one media file using one
// probing tool.
type Provider interface {
	// Name identifies the provider ("mediainfo", "ffprobe").
	Name() string
	// Accepts reports whether the provider can describe the path. A provider
	// whose tool could not be located accepts nothing.
	Accepts(path string) bool
	// Describe probes the file and normalizes the result. Field-level
	// problems surface as warnings on the scan context; Describe fails only
	// with pipeline.ErrMalformedFile or a *pipeline.ProbeError.
	Describe(ctx context.Context, path string, scan *pipeline.Context) (*Result, error)
	// Version returns tool version metadata, surfaced verbatim in results.
	Version() map[string]string
}

// videoExtensions lists the file extensions providers accept.
var videoExtensions = map[string]struct{}{
	".avi": {}, ".m2ts": {}, ".m4v": {}, ".mkv": {}, ".mov": {},
	".mp4": {}, ".mpg": {}, ".mpeg": {}, ".ogm": {}, ".ogv": {},
	".ts": {}, ".webm": {}, ".wmv": {},
}

// IsVideo reports whether the path has a recognized media extension.
func IsVideo(path string) bool {
	_, ok := videoExtensions[strings.ToLower(filepath.Ext(path))]
	return ok
}
