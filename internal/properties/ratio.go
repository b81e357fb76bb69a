package properties

import (
	"math"
	"strconv"
	"strings"

	"metaprobe/internal/pipeline"
	"metaprobe/internal/units"
)

// Ratio coerces a fractional raw value ("24000/1001", "16:9") to a float,
// rounded to three decimals. Plain numbers pass through. When Unit is set the
// result is wrapped in a Quantity.
type Ratio struct {
	Field string
	Unit  units.Unit
}

// Handle implements pipeline.Handler.
func (r Ratio) Handle(value any, ctx *pipeline.Context) (any, bool) {
	text, ok := pipeline.Text(value)
	if !ok {
		ctx.Report(r.Field, value)
		return nil, false
	}
	parsed, ok := parseRatio(text)
	if !ok {
		ctx.Report(r.Field, value)
		return nil, false
	}
	parsed = math.Round(parsed*1000) / 1000
	if r.Unit != units.None {
		return units.Float(parsed, r.Unit), true
	}
	return parsed, true
}

func parseRatio(text string) (float64, bool) {
	text = strings.TrimSpace(text)
	separator := strings.IndexAny(text, "/:")
	if separator < 0 {
		parsed, err := strconv.ParseFloat(text, 64)
		return parsed, err == nil
	}
	numerator, err := strconv.ParseFloat(strings.TrimSpace(text[:separator]), 64)
	if err != nil {
		return 0, false
	}
	denominator, err := strconv.ParseFloat(strings.TrimSpace(text[separator+1:]), 64)
	if err != nil || denominator == 0 {
		return 0, false
	}
	return numerator / denominator, true
}
