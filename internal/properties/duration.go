package properties

import (
	"strconv"
	"strings"
	"time"

	"metaprobe/internal/pipeline"
)

// Duration coerces a raw duration to time.Duration. Tools disagree on the
// raw scale, so the provider declares it: mediainfo reports milliseconds,
// ffprobe seconds.
type Duration struct {
	Field string
	// Scale is the duration of one raw unit.
	Scale time.Duration
}

// Handle implements pipeline.Handler.
func (d Duration) Handle(value any, ctx *pipeline.Context) (any, bool) {
	if existing, ok := value.(time.Duration); ok {
		return existing, true
	}

	scale := d.Scale
	if scale == 0 {
		scale = time.Millisecond
	}

	text, ok := pipeline.Text(value)
	if !ok {
		ctx.Report(d.Field, value)
		return nil, false
	}
	raw, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		ctx.Report(d.Field, value)
		return nil, false
	}
	return time.Duration(raw * float64(scale)).Round(time.Millisecond), true
}
