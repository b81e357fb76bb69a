package properties

import (
	"strings"

	"metaprobe/internal/pipeline"
)

// YesNo maps truthy/falsy raw tokens ("Yes"/"No"/"1"/"0") to a boolean.
// When Hidden is set, a resolved value equal to it suppresses the field
// entirely, so every track does not carry a noisy "forced: false".
type YesNo struct {
	Field  string
	Hidden *bool
}

// Hide builds a Hidden value for schema literals.
func Hide(value bool) *bool {
	return &value
}

// Handle implements pipeline.Handler.
func (y YesNo) Handle(value any, ctx *pipeline.Context) (any, bool) {
	resolved, ok := y.resolve(value)
	if !ok {
		ctx.Report(y.Field, value)
		return nil, false
	}
	if y.Hidden != nil && resolved == *y.Hidden {
		return nil, false
	}
	return resolved, true
}

func (y YesNo) resolve(value any) (bool, bool) {
	if v, ok := value.(bool); ok {
		return v, true
	}
	text, ok := pipeline.Text(value)
	if !ok {
		return false, false
	}
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "yes", "true", "1":
		return true, true
	case "no", "false", "0":
		return false, true
	}
	return false, false
}
