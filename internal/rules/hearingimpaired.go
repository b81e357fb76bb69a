package rules

import (
	"strings"

	"metaprobe/internal/pipeline"
)

// HearingImpaired derives the subtitle hearing-impaired flag from the raw
// disposition flag or from track naming conventions ("SDH").
type HearingImpaired struct{}

// Apply implements pipeline.Rule.
func (HearingImpaired) Apply(track *pipeline.Track, raw pipeline.RawTrack, _ *pipeline.Context) (any, bool) {
	if value, ok := raw.Lookup("HearingImpaired", "hearing_impaired", "disposition:hearing_impaired"); ok {
		if text, ok := pipeline.Text(value); ok {
			switch strings.ToLower(strings.TrimSpace(text)) {
			case "yes", "true", "1":
				return true, true
			}
		}
	}
	name, ok := track.String("name")
	if !ok {
		return nil, false
	}
	lower := strings.ToLower(name)
	if strings.Contains(lower, "sdh") || strings.Contains(lower, "hearing impaired") {
		return true, true
	}
	return nil, false
}
