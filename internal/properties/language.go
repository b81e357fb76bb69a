package properties

import (
	"metaprobe/internal/language"
	"metaprobe/internal/pipeline"
)

// Language normalizes language codes and names to a canonical two-letter
// tag. Unrecognized codes report rather than propagate garbage; LanguageRule
// gets a chance to infer the language from other hints afterwards.
type Language struct {
	Field string
}

// Handle implements pipeline.Handler.
func (l Language) Handle(value any, ctx *pipeline.Context) (any, bool) {
	text, ok := pipeline.Text(value)
	if !ok {
		ctx.Report(l.Field, value)
		return nil, false
	}
	code, ok := language.Parse(text)
	if !ok {
		ctx.Report(l.Field, value)
		return nil, false
	}
	return code, true
}
