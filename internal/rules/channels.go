package rules

import (
	"strconv"
	"strings"

	"metaprobe/internal/pipeline"
)

// AudioChannels reconciles the numeric channel count with the positional
// layout hint ("3/2/0.1") into a human-facing description ("5.1"). The
// positional layout wins when both are present, since the bare count cannot
// distinguish 5.1 from 6.0.
type AudioChannels struct{}

var channelLabels = map[int]string{
	1: "1.0",
	2: "2.0",
	6: "5.1",
	8: "7.1",
}

var layoutLabels = map[string]string{
	"mono":   "1.0",
	"stereo": "2.0",
}

// Apply implements pipeline.Rule.
func (AudioChannels) Apply(track *pipeline.Track, _ pipeline.RawTrack, _ *pipeline.Context) (any, bool) {
	for _, positions := range track.Strings("_channel_positions") {
		if label, ok := positionsLabel(positions); ok {
			return label, true
		}
	}
	if layout, ok := track.String("_channel_layout"); ok {
		if label, ok := layoutLabel(layout); ok {
			return label, true
		}
	}
	counts := intValues(track, "channels_count")
	best := 0
	for _, count := range counts {
		if count > best {
			best = count
		}
	}
	if label, ok := channelLabels[best]; ok {
		return label, true
	}
	return nil, false
}

// layoutLabel reads an ffprobe channel layout name: named layouts map
// directly, numeric ones ("5.1(side)", "7.1") drop the placement suffix.
func layoutLabel(layout string) (string, bool) {
	token := strings.ToLower(strings.TrimSpace(layout))
	if paren := strings.IndexByte(token, '('); paren >= 0 {
		token = token[:paren]
	}
	if label, ok := layoutLabels[token]; ok {
		return label, true
	}
	if _, err := strconv.ParseFloat(token, 64); err == nil && token != "" {
		if !strings.Contains(token, ".") {
			token += ".0"
		}
		return token, true
	}
	return "", false
}

// positionsLabel sums a slash-separated positional layout: "3/2/0.1" means
// three front channels, two surround, one LFE -> 5.1.
func positionsLabel(positions string) (string, bool) {
	total := 0.0
	found := false
	for _, part := range strings.Split(positions, "/") {
		value, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return "", false
		}
		total += value
		found = true
	}
	if !found || total <= 0 {
		return "", false
	}
	return strconv.FormatFloat(total, 'f', 1, 64), true
}
