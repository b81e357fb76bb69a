package properties

import (
	"strings"

	"metaprobe/internal/config"
	"metaprobe/internal/pipeline"
)

// Lookup resolves a raw token through a profile mapping table (codec names,
// profiles, scan types, subtitle formats, ...). Unmapped tokens fall back to
// the raw token verbatim with a warning, unless the table declares a
// default.
type Lookup struct {
	Field string
	Table config.Table
}

// NewLookup builds a Lookup against one profile category.
func NewLookup(field string, profile *config.Profile, category string) Lookup {
	return Lookup{Field: field, Table: profile.Table(category)}
}

// Handle implements pipeline.Handler.
func (l Lookup) Handle(value any, ctx *pipeline.Context) (any, bool) {
	text, ok := pipeline.Text(value)
	if !ok {
		ctx.Report(l.Field, value)
		return nil, false
	}
	token := strings.TrimSpace(text)
	if token == "" {
		return nil, false
	}
	if canonical, ok := l.Table.Lookup(token); ok {
		return canonical, true
	}
	if l.Table.Default != "" {
		return l.Table.Default, true
	}
	ctx.Report(l.Field, value)
	return token, true
}
