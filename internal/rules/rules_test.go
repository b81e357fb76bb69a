package rules

import (
	"testing"

	"metaprobe/internal/pipeline"
	"metaprobe/internal/units"
)

func videoTrack(width, height int64, scanType string) *pipeline.Track {
	track := pipeline.NewTrack()
	track.Set("width", units.Int(width, units.Pixel))
	track.Set("height", units.Int(height, units.Pixel))
	if scanType != "" {
		track.Set("scan_type", scanType)
	}
	return track
}

func TestResolutionStandardLabels(t *testing.T) {
	cases := []struct {
		width, height int64
		scanType      string
		want          string
	}{
		{1920, 1080, "Progressive", "1080p"},
		{720, 480, "Interlaced", "480i"},
		{1280, 720, "", "720p"},
		{3840, 2160, "Progressive", "2160p"},
		{1920, 1088, "Progressive", "1080p"}, // padded encode snaps
	}
	for _, c := range cases {
		got, ok := (Resolution{}).Apply(videoTrack(c.width, c.height, c.scanType), nil, nil)
		if !ok || got != c.want {
			t.Fatalf("Resolution(%dx%d %s) = %v, %v; want %q", c.width, c.height, c.scanType, got, ok, c.want)
		}
	}
}

func TestResolutionFallsBackToLiteralSize(t *testing.T) {
	got, ok := (Resolution{}).Apply(videoTrack(1280, 544, "Progressive"), nil, nil)
	if !ok || got != "1280x544" {
		t.Fatalf("non-standard resolution: %v, %v", got, ok)
	}
}

func TestResolutionOmitsWithoutDimensions(t *testing.T) {
	track := pipeline.NewTrack()
	if _, ok := (Resolution{}).Apply(track, nil, nil); ok {
		t.Fatal("missing dimensions must omit")
	}
}

func TestLanguageInferredFromTrackName(t *testing.T) {
	track := pipeline.NewTrack()
	track.Set("name", "Commentary (French)")
	got, ok := (Language{}).Apply(track, nil, nil)
	if !ok || got != "fr" {
		t.Fatalf("inferred language: %v, %v", got, ok)
	}
}

func TestLanguageKeepsHandlerResult(t *testing.T) {
	track := pipeline.NewTrack()
	track.Set("language", "en")
	track.Set("name", "German dub") // must not override
	if _, ok := (Language{}).Apply(track, nil, nil); ok {
		t.Fatal("rule must not override a resolved language")
	}
}

func TestLanguageOmitsWithoutHints(t *testing.T) {
	track := pipeline.NewTrack()
	track.Set("name", "Director Commentary")
	if _, ok := (Language{}).Apply(track, nil, nil); ok {
		t.Fatal("no language hint must omit")
	}
}

func TestAudioChannelsPrefersPositionalLayout(t *testing.T) {
	track := pipeline.NewTrack()
	track.Set("channels_count", 6)
	track.Set("_channel_positions", "3/2/0.1")
	got, ok := (AudioChannels{}).Apply(track, nil, nil)
	if !ok || got != "5.1" {
		t.Fatalf("positional layout: %v, %v", got, ok)
	}

	// Layout and count disagree: layout wins.
	track = pipeline.NewTrack()
	track.Set("channels_count", 6)
	track.Set("_channel_positions", "3/3/0")
	got, ok = (AudioChannels{}).Apply(track, nil, nil)
	if !ok || got != "6.0" {
		t.Fatalf("layout over count: %v, %v", got, ok)
	}
}

func TestAudioChannelsLayoutName(t *testing.T) {
	cases := map[string]string{
		"5.1(side)": "5.1",
		"7.1":       "7.1",
		"stereo":    "2.0",
		"mono":      "1.0",
	}
	for layout, want := range cases {
		track := pipeline.NewTrack()
		track.Set("_channel_layout", layout)
		got, ok := (AudioChannels{}).Apply(track, nil, nil)
		if !ok || got != want {
			t.Fatalf("layout %q: %v, %v", layout, got, ok)
		}
	}

	track := pipeline.NewTrack()
	track.Set("_channel_layout", "hexadecagonal")
	track.Set("channels_count", 6)
	got, ok := (AudioChannels{}).Apply(track, nil, nil)
	if !ok || got != "5.1" {
		t.Fatalf("unknown layout should fall back to the count: %v, %v", got, ok)
	}
}

func TestAudioChannelsCountFallback(t *testing.T) {
	track := pipeline.NewTrack()
	track.Set("channels_count", 2)
	got, ok := (AudioChannels{}).Apply(track, nil, nil)
	if !ok || got != "2.0" {
		t.Fatalf("count fallback: %v, %v", got, ok)
	}

	track = pipeline.NewTrack()
	track.Set("channels_count", 7) // no standard label
	if _, ok := (AudioChannels{}).Apply(track, nil, nil); ok {
		t.Fatal("unmapped count must omit")
	}
}

func TestAtmosAugmentsCodec(t *testing.T) {
	track := pipeline.NewTrack()
	track.Set("codec", "TrueHD")
	track.Set("_format_commercial", "Dolby TrueHD with Dolby Atmos")

	if _, ok := (Atmos{}).Apply(track, nil, nil); ok {
		t.Fatal("atmos rule must not set its own target")
	}
	if codec, _ := track.String("codec"); codec != "TrueHD Atmos" {
		t.Fatalf("codec not augmented: %q", codec)
	}
}

func TestAtmosLeavesOtherCodecsAlone(t *testing.T) {
	track := pipeline.NewTrack()
	track.Set("codec", "DTS")
	track.Set("_format_commercial", "DTS-HD Master Audio")

	(Atmos{}).Apply(track, nil, nil)
	if codec, _ := track.String("codec"); codec != "DTS" {
		t.Fatalf("codec must be unchanged: %q", codec)
	}
}

func TestDtsHdUpgradesCodec(t *testing.T) {
	track := pipeline.NewTrack()
	track.Set("codec", []any{"DTS", "DTS"})
	track.Set("profile", []any{"MA", "Core"})

	(DtsHd{}).Apply(track, nil, nil)
	codecs := track.Strings("codec")
	if len(codecs) != 2 || codecs[0] != "DTS-HD" || codecs[1] != "DTS-HD" {
		t.Fatalf("codec not upgraded: %v", codecs)
	}
}

func TestDtsHdRequiresMarkerProfile(t *testing.T) {
	track := pipeline.NewTrack()
	track.Set("codec", "DTS")
	track.Set("profile", "Core")

	(DtsHd{}).Apply(track, nil, nil)
	if codec, _ := track.String("codec"); codec != "DTS" {
		t.Fatalf("plain DTS must stay: %q", codec)
	}
}

func TestHearingImpairedFromNameAndFlag(t *testing.T) {
	track := pipeline.NewTrack()
	track.Set("name", "English (SDH)")
	got, ok := (HearingImpaired{}).Apply(track, pipeline.RawTrack{}, nil)
	if !ok || got != true {
		t.Fatalf("SDH name: %v, %v", got, ok)
	}

	track = pipeline.NewTrack()
	raw := pipeline.RawTrack{"hearing_impaired": "1"}
	got, ok = (HearingImpaired{}).Apply(track, raw, nil)
	if !ok || got != true {
		t.Fatalf("raw flag: %v, %v", got, ok)
	}

	track = pipeline.NewTrack()
	track.Set("name", "English")
	if _, ok := (HearingImpaired{}).Apply(track, pipeline.RawTrack{}, nil); ok {
		t.Fatal("plain subtitle must omit")
	}
}

func TestClosedCaption(t *testing.T) {
	track := pipeline.NewTrack()
	track.Set("_closed_caption", "CC1")
	got, ok := (ClosedCaption{}).Apply(track, nil, nil)
	if !ok || got != true {
		t.Fatalf("caption service present: %v, %v", got, ok)
	}

	if _, ok := (ClosedCaption{}).Apply(pipeline.NewTrack(), nil, nil); ok {
		t.Fatal("absent caption service must omit")
	}
}
