package rules

import (
	"fmt"
	"strings"

	"metaprobe/internal/pipeline"
)

// Resolution derives the categorical resolution label ("720p", "1080i")
// from width, height, and scan type. Heights snap to the nearest standard
// definition within a small tolerance (1088-line encodes still read as
// 1080); anything else renders as a literal "WxH" so the field never goes
// missing for odd frame sizes.
type Resolution struct{}

var standardHeights = []int64{240, 288, 360, 480, 576, 720, 1080, 1440, 2160, 4320}

// Apply implements pipeline.Rule.
func (Resolution) Apply(track *pipeline.Track, _ pipeline.RawTrack, _ *pipeline.Context) (any, bool) {
	width := quantityInt(track, "width")
	height := quantityInt(track, "height")
	if width <= 0 || height <= 0 {
		return nil, false
	}

	suffix := "p"
	if scan, ok := track.String("scan_type"); ok && strings.EqualFold(scan, "Interlaced") {
		suffix = "i"
	}

	if standard, ok := snapHeight(height); ok {
		return fmt.Sprintf("%d%s", standard, suffix), true
	}
	return fmt.Sprintf("%dx%d", width, height), true
}

// snapHeight matches a height against the standard set with 2% tolerance.
func snapHeight(height int64) (int64, bool) {
	for _, standard := range standardHeights {
		delta := height - standard
		if delta < 0 {
			delta = -delta
		}
		if delta*50 <= standard {
			return standard, true
		}
	}
	return 0, false
}
