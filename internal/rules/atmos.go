package rules

import (
	"strings"

	"metaprobe/internal/pipeline"
)

// Atmos detects object-based audio from the commercial format hint
// ("Dolby TrueHD with Dolby Atmos", "Dolby Digital Plus with Dolby Atmos")
// and augments the codec field. Runs only for its side effect; its own
// private target stays unset.
type Atmos struct{}

var atmosCarriers = map[string]struct{}{
	"TrueHD": {},
	"E-AC-3": {},
	"AC-3":   {},
}

// Apply implements pipeline.Rule.
func (Atmos) Apply(track *pipeline.Track, _ pipeline.RawTrack, _ *pipeline.Context) (any, bool) {
	hint, ok := track.String("_format_commercial")
	if !ok || !strings.Contains(strings.ToLower(hint), "atmos") {
		return nil, false
	}
	rewriteCodec(track, func(codec string) string {
		if _, ok := atmosCarriers[codec]; ok {
			return codec + " Atmos"
		}
		return codec
	})
	return nil, false
}

// rewriteCodec applies fn to the codec field, handling both the scalar and
// the MultiValue slice form.
func rewriteCodec(track *pipeline.Track, fn func(string) string) {
	value, ok := track.Get("codec")
	if !ok {
		return
	}
	switch v := value.(type) {
	case string:
		track.Set("codec", fn(v))
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			if s, ok := item.(string); ok {
				out[i] = fn(s)
			} else {
				out[i] = item
			}
		}
		track.Set("codec", out)
	}
}
