package pipeline

import (
	"strconv"
	"strings"
)

// Handler coerces one raw field value into one typed output value. The
// second return value reports whether a value was produced; false means the
// field is omitted. Handlers signal anomalies through ctx.Report and return
// false rather than failing the track.
type Handler interface {
	Handle(value any, ctx *Context) (any, bool)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(value any, ctx *Context) (any, bool)

// Handle implements Handler.
func (f HandlerFunc) Handle(value any, ctx *Context) (any, bool) {
	return f(value, ctx)
}

// Property declares one schema field: where to find the raw value, how to
// normalize it, and under which name to store it.
type Property struct {
	// Name is the output field name. A leading underscore marks a private
	// field consumed only by rules.
	Name string
	// Raw lists the raw field names to probe, first match wins.
	Raw []string
	// Handler normalizes the raw value. Nil means string passthrough.
	Handler Handler
	// Default is stored verbatim when every raw field is absent.
	Default any
	// Description documents the field.
	Description string
}

// Text renders a raw JSON value as its string form. Numbers decoded as
// float64 render without a trailing ".0" when whole.
func Text(value any) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case int:
		return strconv.Itoa(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case bool:
		return strconv.FormatBool(v), true
	}
	return "", false
}

// Identity passes the raw value through as a trimmed string.
var Identity Handler = HandlerFunc(func(value any, _ *Context) (any, bool) {
	s, ok := Text(value)
	if !ok {
		return nil, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, false
	}
	return s, true
})

// MultiValue applies an inner handler to each element of a delimited raw
// value. Raw fields sometimes carry one value per sub-stream joined by a
// delimiter (e.g. "AC-3 / AC-3"); each element is normalized independently
// and the results are recombined in order of appearance.
type MultiValue struct {
	// Handler normalizes each element. Nil means string passthrough.
	Handler Handler
	// Delimiter splits the raw string. Empty means "/".
	Delimiter string
}

// Handle implements Handler. Zero resolved elements omit the field, one
// yields the scalar, several yield the ordered slice.
func (m MultiValue) Handle(value any, ctx *Context) (any, bool) {
	delimiter := m.Delimiter
	if delimiter == "" {
		delimiter = "/"
	}

	var elements []any
	switch v := value.(type) {
	case []any:
		elements = v
	default:
		s, ok := Text(value)
		if !ok || strings.TrimSpace(s) == "" {
			return nil, false
		}
		for _, piece := range strings.Split(s, delimiter) {
			elements = append(elements, strings.TrimSpace(piece))
		}
	}

	inner := m.Handler
	if inner == nil {
		inner = Identity
	}

	var results []any
	for _, element := range elements {
		if out, ok := inner.Handle(element, ctx); ok {
			results = append(results, out)
		}
	}

	switch len(results) {
	case 0:
		return nil, false
	case 1:
		return results[0], true
	default:
		return results, true
	}
}
