package properties

import (
	"strconv"
	"strings"

	"metaprobe/internal/pipeline"
)

// AudioChannels coerces a raw channel count to an integer. A fixed set of
// tokens is intentionally non-numeric (object-based audio reports "object
// based" instead of a count) and omits silently rather than warning.
type AudioChannels struct {
	Field   string
	Ignored []string
}

// NewAudioChannels returns the handler with the standard ignored set.
func NewAudioChannels(field string) AudioChannels {
	return AudioChannels{
		Field: field,
		Ignored: []string{
			"object based", // Dolby Atmos
		},
	}
}

// Handle implements pipeline.Handler.
func (a AudioChannels) Handle(value any, ctx *pipeline.Context) (any, bool) {
	if v, ok := value.(int); ok {
		return v, true
	}

	text, ok := pipeline.Text(value)
	if !ok {
		ctx.Report(a.Field, value)
		return nil, false
	}
	token := strings.ToLower(strings.TrimSpace(text))
	for _, ignored := range a.Ignored {
		if token == ignored {
			return nil, false
		}
	}
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	ctx.Report(a.Field, value)
	return nil, false
}
