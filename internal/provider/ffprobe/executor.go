package ffprobe

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"

	"metaprobe/internal/pipeline"
)

// versionRe extracts the tool version from `ffprobe -version` output,
// e.g. "ffprobe version 6.1.1-3ubuntu5".
var versionRe = regexp.MustCompile(`ffprobe version (\S+)`)

// defaultLocations lists well-known install paths probed before PATH.
var defaultLocations = []string{
	"/usr/local/bin/ffprobe",
	"/opt/ffmpeg/bin/ffprobe",
}

// Executor knows where the ffprobe binary lives and how to run it.
type Executor struct {
	location string
	version  string
}

// NewExecutor discovers a usable ffprobe binary. The suggested path is tried
// first. Returns nil when the tool is unavailable; callers treat that as
// "provider never accepts".
func NewExecutor(suggestedPath string) *Executor {
	var candidates []string
	if trimmed := strings.TrimSpace(suggestedPath); trimmed != "" {
		candidates = append(candidates, trimmed)
	}
	candidates = append(candidates, defaultLocations...)
	if resolved, err := exec.LookPath("ffprobe"); err == nil {
		candidates = append(candidates, resolved)
	}

	for _, candidate := range candidates {
		output, err := exec.Command(candidate, "-version").Output()
		if err != nil {
			continue
		}
		match := versionRe.FindSubmatch(output)
		if match == nil {
			continue
		}
		return &Executor{location: candidate, version: string(match[1])}
	}
	return nil
}

// Location returns the resolved binary path.
func (e *Executor) Location() string {
	return e.location
}

// Version returns the detected tool version ("6.1.1-3ubuntu5").
func (e *Executor) Version() string {
	return e.version
}

// payload mirrors the ffprobe JSON envelope before flattening.
type payload struct {
	Streams []map[string]any `json:"streams"`
	Format  map[string]any   `json:"format"`
}

// Extract runs ffprobe against the path and returns the flattened container
// fields, the flattened stream list, and the raw payload for debug dumps.
func (e *Executor) Extract(ctx context.Context, path string) (pipeline.RawTrack, []pipeline.RawTrack, []byte, error) {
	cmd := exec.CommandContext(ctx, e.location,
		"-v", "error", "-hide_banner",
		"-show_format", "-show_streams",
		"-of", "json", "--", path)
	output, err := cmd.Output()
	if err != nil {
		return nil, nil, nil, &pipeline.ProbeError{Tool: "ffprobe", Err: fmt.Errorf("%w: %s", err, exitDetail(err))}
	}

	var decoded payload
	if err := json.Unmarshal(output, &decoded); err != nil {
		return nil, nil, nil, &pipeline.ProbeError{Tool: "ffprobe", Err: fmt.Errorf("parse output: %w", err)}
	}

	var format pipeline.RawTrack
	if decoded.Format != nil {
		format = flatten(decoded.Format)
	}
	streams := make([]pipeline.RawTrack, 0, len(decoded.Streams))
	for _, stream := range decoded.Streams {
		streams = append(streams, flatten(stream))
	}
	return format, streams, output, nil
}

// flatten lifts the nested "tags" and "disposition" sub-objects into
// prefixed top-level raw fields. Tag names are case-folded because muxers
// disagree on capitalization ("LANGUAGE" vs "language").
func flatten(fields map[string]any) pipeline.RawTrack {
	out := make(pipeline.RawTrack, len(fields))
	for key, value := range fields {
		switch key {
		case "tags":
			if tags, ok := value.(map[string]any); ok {
				for name, tag := range tags {
					out["tag:"+strings.ToLower(name)] = tag
				}
			}
		case "disposition":
			if dispositions, ok := value.(map[string]any); ok {
				for name, flag := range dispositions {
					out["disposition:"+strings.ToLower(name)] = flag
				}
			}
		default:
			out[key] = value
		}
	}
	return out
}

func exitDetail(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return strings.TrimSpace(string(exitErr.Stderr))
	}
	return err.Error()
}
