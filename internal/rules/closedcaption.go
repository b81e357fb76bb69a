package rules

import (
	"metaprobe/internal/pipeline"
)

// ClosedCaption derives the closed-caption flag from the private caption
// service name field, independent of hearing_impaired.
type ClosedCaption struct{}

// Apply implements pipeline.Rule.
func (ClosedCaption) Apply(track *pipeline.Track, _ pipeline.RawTrack, _ *pipeline.Context) (any, bool) {
	if _, ok := track.Get("_closed_caption"); ok {
		return true, true
	}
	return nil, false
}
