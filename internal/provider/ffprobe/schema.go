package ffprobe

import (
	"time"

	"metaprobe/internal/config"
	"metaprobe/internal/pipeline"
	"metaprobe/internal/properties"
	"metaprobe/internal/rules"
	"metaprobe/internal/units"
)

// newSchema declares the ffprobe field mapping. Stream-level tags and
// disposition flags arrive pre-flattened by the executor ("tag:language",
// "disposition:forced"). Durations are in seconds.
func newSchema(profile *config.Profile) (*pipeline.Schema, error) {
	s := time.Second

	props := map[pipeline.TrackKind][]pipeline.Property{
		pipeline.General: {
			{Name: "title", Raw: []string{"tag:title"}, Description: "media title"},
			{Name: "path", Raw: []string{"filename"}, Description: "media path"},
			{Name: "duration", Raw: []string{"duration"}, Handler: properties.Duration{Field: "duration", Scale: s}, Description: "media duration"},
			{Name: "size", Raw: []string{"size"}, Handler: properties.Quantity{Field: "size", Unit: units.Byte}, Description: "media size"},
			{Name: "bit_rate", Raw: []string{"bit_rate"}, Handler: properties.Quantity{Field: "bit_rate", Unit: units.BitsPerSecond}, Description: "media bit rate"},
		},
		pipeline.Video: {
			{Name: "id", Raw: []string{"index"}, Handler: properties.Basic{Field: "id", Kind: properties.Int, AllowFallback: true}, Description: "video track number"},
			{Name: "name", Raw: []string{"tag:title"}, Description: "video track name"},
			{Name: "language", Raw: []string{"tag:language"}, Handler: properties.Language{Field: "language"}, Description: "video language"},
			{Name: "duration", Raw: []string{"duration"}, Handler: properties.Duration{Field: "duration", Scale: s}, Description: "video duration"},
			{Name: "width", Raw: []string{"width"}, Handler: properties.Quantity{Field: "width", Unit: units.Pixel}},
			{Name: "height", Raw: []string{"height"}, Handler: properties.Quantity{Field: "height", Unit: units.Pixel}},
			{Name: "scan_type", Raw: []string{"field_order"}, Handler: properties.NewLookup("scan_type", profile, "scan_type"), Default: "Progressive", Description: "video scan type"},
			{Name: "aspect_ratio", Raw: []string{"display_aspect_ratio"}, Handler: properties.Ratio{Field: "aspect_ratio"}, Description: "display aspect ratio"},
			{Name: "pixel_aspect_ratio", Raw: []string{"sample_aspect_ratio"}, Handler: properties.Ratio{Field: "pixel_aspect_ratio"}, Description: "pixel aspect ratio"},
			{Name: "frame_rate", Raw: []string{"r_frame_rate", "avg_frame_rate"}, Handler: properties.Ratio{Field: "frame_rate", Unit: units.FramesPerSecond}, Description: "video frame rate"},
			{Name: "bit_rate", Raw: []string{"bit_rate"}, Handler: properties.Quantity{Field: "bit_rate", Unit: units.BitsPerSecond}, Description: "video bit rate"},
			{Name: "bit_depth", Raw: []string{"bits_per_raw_sample"}, Handler: properties.Quantity{Field: "bit_depth", Unit: units.Bit}, Description: "video bit depth"},
			{Name: "codec", Raw: []string{"codec_name"}, Handler: properties.NewLookup("codec", profile, "video_codec"), Description: "video codec"},
			{Name: "profile", Raw: []string{"profile"}, Handler: properties.NewLookup("profile", profile, "video_profile"), Description: "video codec profile"},
			{Name: "forced", Raw: []string{"disposition:forced"}, Handler: properties.YesNo{Field: "forced", Hidden: properties.Hide(false)}, Description: "video track forced"},
			{Name: "default", Raw: []string{"disposition:default"}, Handler: properties.YesNo{Field: "default", Hidden: properties.Hide(false)}, Description: "video track default"},
		},
		pipeline.Audio: {
			{Name: "id", Raw: []string{"index"}, Handler: properties.Basic{Field: "id", Kind: properties.Int, AllowFallback: true}, Description: "audio track number"},
			{Name: "name", Raw: []string{"tag:title"}, Description: "audio track name"},
			{Name: "language", Raw: []string{"tag:language"}, Handler: properties.Language{Field: "language"}, Description: "audio language"},
			{Name: "duration", Raw: []string{"duration"}, Handler: properties.Duration{Field: "duration", Scale: s}, Description: "audio duration"},
			{Name: "codec", Raw: []string{"codec_name"}, Handler: properties.NewLookup("codec", profile, "audio_codec"), Description: "audio codec"},
			{Name: "profile", Raw: []string{"profile"}, Handler: properties.NewLookup("profile", profile, "audio_profile"), Description: "audio codec profile"},
			{Name: "_format_commercial", Raw: []string{"profile"}},
			{Name: "channels_count", Raw: []string{"channels"}, Handler: properties.NewAudioChannels("channels_count"), Description: "audio channels count"},
			{Name: "_channel_layout", Raw: []string{"channel_layout"}},
			{Name: "bit_depth", Raw: []string{"bits_per_raw_sample"}, Handler: properties.Quantity{Field: "bit_depth", Unit: units.Bit}, Description: "audio bit depth"},
			{Name: "bit_rate", Raw: []string{"bit_rate"}, Handler: properties.Quantity{Field: "bit_rate", Unit: units.BitsPerSecond}, Description: "audio bit rate"},
			{Name: "sampling_rate", Raw: []string{"sample_rate"}, Handler: properties.Quantity{Field: "sampling_rate", Unit: units.Hertz}, Description: "audio sampling rate"},
			{Name: "forced", Raw: []string{"disposition:forced"}, Handler: properties.YesNo{Field: "forced", Hidden: properties.Hide(false)}, Description: "audio track forced"},
			{Name: "default", Raw: []string{"disposition:default"}, Handler: properties.YesNo{Field: "default", Hidden: properties.Hide(false)}, Description: "audio track default"},
		},
		pipeline.Subtitle: {
			{Name: "id", Raw: []string{"index"}, Handler: properties.Basic{Field: "id", Kind: properties.Int, AllowFallback: true}, Description: "subtitle track number"},
			{Name: "name", Raw: []string{"tag:title"}, Description: "subtitle track name"},
			{Name: "language", Raw: []string{"tag:language"}, Handler: properties.Language{Field: "language"}, Description: "subtitle language"},
			{Name: "_closed_caption", Raw: []string{"disposition:captions"}, Handler: properties.YesNo{Field: "_closed_caption", Hidden: properties.Hide(false)}},
			{Name: "format", Raw: []string{"codec_name"}, Handler: properties.NewLookup("format", profile, "subtitle_format"), Description: "subtitle format"},
			{Name: "forced", Raw: []string{"disposition:forced"}, Handler: properties.YesNo{Field: "forced", Hidden: properties.Hide(false)}, Description: "subtitle track forced"},
			{Name: "default", Raw: []string{"disposition:default"}, Handler: properties.YesNo{Field: "default", Hidden: properties.Hide(false)}, Description: "subtitle track default"},
		},
	}

	ruleSpecs := map[pipeline.TrackKind][]pipeline.RuleSpec{
		pipeline.Video: {
			{Name: "language", Rule: rules.Language{}, Requires: []string{"language", "name"}, Description: "video language"},
			{Name: "resolution", Rule: rules.Resolution{}, Requires: []string{"width", "height", "scan_type"}, Description: "video resolution"},
		},
		pipeline.Audio: {
			{Name: "language", Rule: rules.Language{}, Requires: []string{"language", "name"}, Description: "audio language"},
			{Name: "channels", Rule: rules.AudioChannels{}, Requires: []string{"channels_count", "_channel_layout"}, Description: "audio channels"},
			{Name: "_atmos", Rule: rules.Atmos{}, Requires: []string{"codec", "_format_commercial"}, Description: "atmos detection"},
			{Name: "_dtshd", Rule: rules.DtsHd{}, Requires: []string{"codec", "profile"}, Description: "dts-hd detection"},
		},
		pipeline.Subtitle: {
			{Name: "language", Rule: rules.Language{}, Requires: []string{"language", "name"}, Description: "subtitle language"},
			{Name: "hearing_impaired", Rule: rules.HearingImpaired{}, Requires: []string{"name"}, Description: "subtitle hearing impaired"},
			{Name: "closed_caption", Rule: rules.ClosedCaption{}, Requires: []string{"_closed_caption"}, Description: "closed caption"},
		},
	}

	return pipeline.NewSchema(props, ruleSpecs)
}
