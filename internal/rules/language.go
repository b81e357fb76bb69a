package rules

import (
	"strings"
	"unicode"

	"metaprobe/internal/language"
	"metaprobe/internal/pipeline"
)

// Language infers the track language from naming conventions when the
// language handler reported a failure or the raw field was absent. The
// output is always a canonical tag or entirely absent, never a raw
// unrecognized string.
type Language struct{}

// Apply implements pipeline.Rule.
func (Language) Apply(track *pipeline.Track, _ pipeline.RawTrack, _ *pipeline.Context) (any, bool) {
	if _, ok := track.Get("language"); ok {
		return nil, false
	}
	name, ok := track.String("name")
	if !ok {
		return nil, false
	}
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r)
	})
	for _, word := range words {
		if code, ok := language.Word(word); ok {
			return code, true
		}
	}
	return nil, false
}
