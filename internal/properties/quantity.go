package properties

import (
	"math"
	"strconv"
	"strings"

	"metaprobe/internal/pipeline"
	"metaprobe/internal/units"
)

// Quantity wraps a numeric coercion result in a unit tag. The magnitude is
// an integer unless Float is set.
type Quantity struct {
	Field string
	Unit  units.Unit
	Float bool
}

// Handle implements pipeline.Handler.
func (q Quantity) Handle(value any, ctx *pipeline.Context) (any, bool) {
	if existing, ok := value.(units.Quantity); ok && existing.Unit() == q.Unit {
		return existing, true
	}

	text, ok := pipeline.Text(value)
	if !ok {
		ctx.Report(q.Field, value)
		return nil, false
	}
	magnitude, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		ctx.Report(q.Field, value)
		return nil, false
	}

	if q.Float {
		return units.Float(magnitude, q.Unit), true
	}
	if magnitude != math.Trunc(magnitude) {
		ctx.Report(q.Field, value)
		return nil, false
	}
	return units.Int(int64(magnitude), q.Unit), true
}
