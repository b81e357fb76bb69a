package rules

import (
	"metaprobe/internal/pipeline"
)

// DtsHd upgrades a DTS codec to DTS-HD when the profile carries a lossless
// or high-resolution sub-format marker. MediaInfo reports the marker in the
// profile ("MA / Core"), never as a standalone codec token. Side-effect
// rule like Atmos.
type DtsHd struct{}

var dtsHdProfiles = map[string]struct{}{
	"MA":    {},
	"HRA":   {},
	"X":     {},
	"96/24": {},
}

// Apply implements pipeline.Rule.
func (DtsHd) Apply(track *pipeline.Track, _ pipeline.RawTrack, _ *pipeline.Context) (any, bool) {
	upgraded := false
	for _, profile := range track.Strings("profile") {
		if _, ok := dtsHdProfiles[profile]; ok {
			upgraded = true
			break
		}
	}
	if !upgraded {
		return nil, false
	}
	rewriteCodec(track, func(codec string) string {
		if codec == "DTS" {
			return "DTS-HD"
		}
		return codec
	})
	return nil, false
}
