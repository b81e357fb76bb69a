package properties

import (
	"math"
	"strconv"
	"strings"

	"metaprobe/internal/pipeline"
)

// Kind selects the primitive type a Basic handler coerces to.
type Kind int

const (
	String Kind = iota
	Int
	Float
	Bool
)

// Basic coerces a raw value to a declared primitive type. With AllowFallback
// the raw string survives a failed coercion instead of being reported; some
// tools emit non-numeric junk in normally-numeric fields (track IDs).
type Basic struct {
	Field         string
	Kind          Kind
	AllowFallback bool
}

// Handle implements pipeline.Handler.
func (b Basic) Handle(value any, ctx *pipeline.Context) (any, bool) {
	switch b.Kind {
	case Int:
		switch v := value.(type) {
		case int:
			return v, true
		case float64:
			if v == math.Trunc(v) {
				return int(v), true
			}
		}
	case Float:
		switch v := value.(type) {
		case float64:
			return v, true
		case int:
			return float64(v), true
		}
	case Bool:
		if v, ok := value.(bool); ok {
			return v, true
		}
	}

	text, ok := pipeline.Text(value)
	if !ok {
		b.fail(value, ctx)
		return nil, false
	}
	text = strings.TrimSpace(text)

	switch b.Kind {
	case String:
		if text == "" {
			return nil, false
		}
		return text, true
	case Int:
		if n, err := strconv.Atoi(text); err == nil {
			return n, true
		}
	case Float:
		if f, err := strconv.ParseFloat(text, 64); err == nil {
			return f, true
		}
	case Bool:
		if v, err := strconv.ParseBool(text); err == nil {
			return v, true
		}
	}

	if b.AllowFallback {
		return text, true
	}
	b.fail(value, ctx)
	return nil, false
}

func (b Basic) fail(value any, ctx *pipeline.Context) {
	ctx.Report(b.Field, value)
}
