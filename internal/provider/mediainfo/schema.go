package mediainfo

import (
	"time"

	"metaprobe/internal/config"
	"metaprobe/internal/pipeline"
	"metaprobe/internal/properties"
	"metaprobe/internal/rules"
	"metaprobe/internal/units"
)

// newSchema declares the full MediaInfo field mapping: which raw field feeds
// which output field through which handler, and the rules that run after.
// Declaration order is the output order.
func newSchema(profile *config.Profile) (*pipeline.Schema, error) {
	ms := time.Millisecond

	props := map[pipeline.TrackKind][]pipeline.Property{
		pipeline.General: {
			{Name: "title", Raw: []string{"Title", "Movie"}, Description: "media title"},
			{Name: "path", Raw: []string{"CompleteName"}, Description: "media path"},
			{Name: "duration", Raw: []string{"Duration"}, Handler: properties.Duration{Field: "duration", Scale: ms}, Description: "media duration"},
			{Name: "size", Raw: []string{"FileSize"}, Handler: properties.Quantity{Field: "size", Unit: units.Byte}, Description: "media size"},
			{Name: "bit_rate", Raw: []string{"OverallBitRate"}, Handler: properties.Quantity{Field: "bit_rate", Unit: units.BitsPerSecond}, Description: "media bit rate"},
		},
		pipeline.Video: {
			{Name: "id", Raw: []string{"ID"}, Handler: properties.Basic{Field: "id", Kind: properties.Int, AllowFallback: true}, Description: "video track number"},
			{Name: "name", Raw: []string{"Title"}, Description: "video track name"},
			{Name: "language", Raw: []string{"Language"}, Handler: properties.Language{Field: "language"}, Description: "video language"},
			{Name: "duration", Raw: []string{"Duration"}, Handler: properties.Duration{Field: "duration", Scale: ms}, Description: "video duration"},
			{Name: "size", Raw: []string{"StreamSize"}, Handler: properties.Quantity{Field: "size", Unit: units.Byte}, Description: "video stream size"},
			{Name: "width", Raw: []string{"Width"}, Handler: properties.Quantity{Field: "width", Unit: units.Pixel}},
			{Name: "height", Raw: []string{"Height"}, Handler: properties.Quantity{Field: "height", Unit: units.Pixel}},
			{Name: "scan_type", Raw: []string{"ScanType"}, Handler: properties.NewLookup("scan_type", profile, "scan_type"), Default: "Progressive", Description: "video scan type"},
			{Name: "aspect_ratio", Raw: []string{"DisplayAspectRatio"}, Handler: properties.Basic{Field: "aspect_ratio", Kind: properties.Float}, Description: "display aspect ratio"},
			{Name: "pixel_aspect_ratio", Raw: []string{"PixelAspectRatio"}, Handler: properties.Basic{Field: "pixel_aspect_ratio", Kind: properties.Float}, Description: "pixel aspect ratio"},
			{Name: "frame_rate", Raw: []string{"FrameRate"}, Handler: properties.Quantity{Field: "frame_rate", Unit: units.FramesPerSecond, Float: true}, Description: "video frame rate"},
			{Name: "bit_rate", Raw: []string{"BitRate"}, Handler: properties.Quantity{Field: "bit_rate", Unit: units.BitsPerSecond}, Description: "video bit rate"},
			{Name: "bit_depth", Raw: []string{"BitDepth"}, Handler: properties.Quantity{Field: "bit_depth", Unit: units.Bit}, Description: "video bit depth"},
			{Name: "codec", Raw: []string{"CodecID", "Format"}, Handler: properties.NewLookup("codec", profile, "video_codec"), Description: "video codec"},
			{Name: "profile", Raw: []string{"Format_Profile"}, Handler: properties.NewLookup("profile", profile, "video_profile"), Description: "video codec profile"},
			{Name: "profile_level", Raw: []string{"Format_Level"}, Handler: properties.NewLookup("profile_level", profile, "profile_level"), Description: "video codec profile level"},
			{Name: "profile_tier", Raw: []string{"Format_Tier"}, Handler: properties.NewLookup("profile_tier", profile, "profile_tier"), Description: "video codec profile tier"},
			{Name: "encoder", Raw: []string{"Encoded_Library_Name"}, Handler: properties.NewLookup("encoder", profile, "encoder"), Description: "video encoder"},
			{Name: "media_type", Raw: []string{"InternetMediaType"}, Description: "video media type"},
			{Name: "forced", Raw: []string{"Forced"}, Handler: properties.YesNo{Field: "forced", Hidden: properties.Hide(false)}, Description: "video track forced"},
			{Name: "default", Raw: []string{"Default"}, Handler: properties.YesNo{Field: "default", Hidden: properties.Hide(false)}, Description: "video track default"},
		},
		pipeline.Audio: {
			{Name: "id", Raw: []string{"ID"}, Handler: properties.Basic{Field: "id", Kind: properties.Int, AllowFallback: true}, Description: "audio track number"},
			{Name: "name", Raw: []string{"Title"}, Description: "audio track name"},
			{Name: "language", Raw: []string{"Language"}, Handler: properties.Language{Field: "language"}, Description: "audio language"},
			{Name: "duration", Raw: []string{"Duration"}, Handler: properties.Duration{Field: "duration", Scale: ms}, Description: "audio duration"},
			{Name: "size", Raw: []string{"StreamSize"}, Handler: properties.Quantity{Field: "size", Unit: units.Byte}, Description: "audio stream size"},
			// MultiValue splits on "/" before the lookup, so slashed codec IDs
			// ("A_MPEG/L3") arrive at the table one element at a time and
			// audio_codec tokens must not contain slashes.
			{Name: "codec", Raw: []string{"CodecID", "Format"}, Handler: pipeline.MultiValue{Handler: properties.NewLookup("codec", profile, "audio_codec")}, Description: "audio codec"},
			{Name: "profile", Raw: []string{"Format_Profile"}, Handler: pipeline.MultiValue{Handler: properties.NewLookup("profile", profile, "audio_profile"), Delimiter: " / "}, Description: "audio codec profile"},
			{Name: "_format_commercial", Raw: []string{"Format_Commercial_IfAny"}},
			{Name: "channels_count", Raw: []string{"Channels"}, Handler: pipeline.MultiValue{Handler: properties.NewAudioChannels("channels_count")}, Description: "audio channels count"},
			{Name: "_channel_positions", Raw: []string{"ChannelPositions_String2"}, Handler: pipeline.MultiValue{Delimiter: " / "}, Description: "audio channels position"},
			{Name: "bit_depth", Raw: []string{"BitDepth"}, Handler: properties.Quantity{Field: "bit_depth", Unit: units.Bit}, Description: "audio bit depth"},
			{Name: "bit_rate", Raw: []string{"BitRate"}, Handler: pipeline.MultiValue{Handler: properties.Quantity{Field: "bit_rate", Unit: units.BitsPerSecond}}, Description: "audio bit rate"},
			{Name: "bit_rate_mode", Raw: []string{"BitRate_Mode"}, Handler: pipeline.MultiValue{Handler: properties.NewLookup("bit_rate_mode", profile, "bit_rate_mode")}, Description: "audio bit rate mode"},
			{Name: "sampling_rate", Raw: []string{"SamplingRate"}, Handler: pipeline.MultiValue{Handler: properties.Quantity{Field: "sampling_rate", Unit: units.Hertz}}, Description: "audio sampling rate"},
			{Name: "compression", Raw: []string{"Compression_Mode"}, Handler: pipeline.MultiValue{Handler: properties.NewLookup("compression", profile, "compression")}, Description: "audio compression"},
			{Name: "forced", Raw: []string{"Forced"}, Handler: properties.YesNo{Field: "forced", Hidden: properties.Hide(false)}, Description: "audio track forced"},
			{Name: "default", Raw: []string{"Default"}, Handler: properties.YesNo{Field: "default", Hidden: properties.Hide(false)}, Description: "audio track default"},
		},
		pipeline.Subtitle: {
			{Name: "id", Raw: []string{"ID"}, Handler: properties.Basic{Field: "id", Kind: properties.Int, AllowFallback: true}, Description: "subtitle track number"},
			{Name: "name", Raw: []string{"Title"}, Description: "subtitle track name"},
			{Name: "language", Raw: []string{"Language"}, Handler: properties.Language{Field: "language"}, Description: "subtitle language"},
			{Name: "_closed_caption", Raw: []string{"CaptionServiceName", "captionservicename"}},
			{Name: "format", Raw: []string{"CodecID", "Format"}, Handler: properties.NewLookup("format", profile, "subtitle_format"), Description: "subtitle format"},
			{Name: "forced", Raw: []string{"Forced"}, Handler: properties.YesNo{Field: "forced", Hidden: properties.Hide(false)}, Description: "subtitle track forced"},
			{Name: "default", Raw: []string{"Default"}, Handler: properties.YesNo{Field: "default", Hidden: properties.Hide(false)}, Description: "subtitle track default"},
		},
	}

	ruleSpecs := map[pipeline.TrackKind][]pipeline.RuleSpec{
		pipeline.Video: {
			{Name: "language", Rule: rules.Language{}, Requires: []string{"language", "name"}, Description: "video language"},
			{Name: "resolution", Rule: rules.Resolution{}, Requires: []string{"width", "height", "scan_type"}, Description: "video resolution"},
		},
		pipeline.Audio: {
			{Name: "language", Rule: rules.Language{}, Requires: []string{"language", "name"}, Description: "audio language"},
			{Name: "channels", Rule: rules.AudioChannels{}, Requires: []string{"channels_count", "_channel_positions"}, Description: "audio channels"},
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
