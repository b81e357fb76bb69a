package mediainfo

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

// versionRe extracts the library version from `mediainfo --Version` output,
// e.g. "MediaInfoLib - v24.01".
var versionRe = regexp.MustCompile(`\bv(\d+(?:\.\d+)+)\b`)

// defaultLocations lists well-known install paths probed before PATH.
var defaultLocations = []string{
	"/usr/local/mediainfo/bin/mediainfo",
	"/usr/local/bin/mediainfo",
	"/opt/mediainfo/bin/mediainfo",
}

// Executor knows where the mediainfo binary lives and how to run it.
type Executor struct {
	location string
	version  string
}

// NewExecutor discovers a usable mediainfo binary. The suggested path is
// tried first. Returns nil when the tool is unavailable; callers treat that
// as "provider never accepts".
func NewExecutor(suggestedPath string) *Executor {
	var candidates []string
	if trimmed := strings.TrimSpace(suggestedPath); trimmed != "" {
		candidates = append(candidates, trimmed)
	}
	candidates = append(candidates, defaultLocations...)
	if resolved, err := exec.LookPath("mediainfo"); err == nil {
		candidates = append(candidates, resolved)
	}

	for _, candidate := range candidates {
		// Old mediainfo builds exit non-zero for --Version but still print
		// the banner, so match on output regardless of the exit status.
		output, _ := exec.Command(candidate, "--Version").CombinedOutput()
		match := versionRe.FindSubmatch(output)
		if match == nil {
			continue
		}
		return &Executor{location: candidate, version: "v" + string(match[1])}
	}
	return nil
}

// Location returns the resolved binary path.
func (e *Executor) Location() string {
	return e.location
}

// Version returns the detected tool version ("v24.01").
func (e *Executor) Version() string {
	return e.version
}

// response mirrors the MediaInfo JSON envelope.
type response struct {
	Media struct {
		Track []pipeline.RawTrack `json:"track"`
	} `json:"media"`
}

// Extract runs mediainfo against the path and decodes the raw track list.
// The raw payload is returned alongside for debug dumps.
func (e *Executor) Extract(ctx context.Context, path string) ([]pipeline.RawTrack, []byte, error) {
	cmd := exec.CommandContext(ctx, e.location, "--Output=JSON", "--Full", path)
	output, err := cmd.Output()
	if err != nil {
		return nil, nil, &pipeline.ProbeError{Tool: "mediainfo", Err: fmt.Errorf("%w: %s", err, exitDetail(err))}
	}

	var decoded response
	if err := json.Unmarshal(output, &decoded); err != nil {
		return nil, nil, &pipeline.ProbeError{Tool: "mediainfo", Err: fmt.Errorf("parse output: %w", err)}
	}
	return decoded.Media.Track, output, nil
}

func exitDetail(err error) string {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return strings.TrimSpace(string(exitErr.Stderr))
	}
	return err.Error()
}
