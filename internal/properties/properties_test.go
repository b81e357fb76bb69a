package properties

import (
	"testing"
	"time"

	"metaprobe/internal/config"
	"metaprobe/internal/pipeline"
	"metaprobe/internal/units"
)

func newCtx() *pipeline.Context {
	return pipeline.NewContext("test.mkv", nil)
}

func TestBasicIdentityOnTypedInput(t *testing.T) {
	ctx := newCtx()
	if out, ok := (Basic{Field: "id", Kind: Int}).Handle(3, ctx); !ok || out != 3 {
		t.Fatalf("int identity: %v %v", out, ok)
	}
	if out, ok := (Basic{Field: "ratio", Kind: Float}).Handle(1.778, ctx); !ok || out != 1.778 {
		t.Fatalf("float identity: %v %v", out, ok)
	}
	if len(ctx.Warnings()) != 0 {
		t.Fatalf("identity must not warn: %v", ctx.Warnings())
	}
}

func TestBasicCoercion(t *testing.T) {
	ctx := newCtx()
	if out, ok := (Basic{Field: "id", Kind: Int}).Handle("12", ctx); !ok || out != 12 {
		t.Fatalf("string to int: %v %v", out, ok)
	}
	if out, ok := (Basic{Field: "ratio", Kind: Float}).Handle("2.35", ctx); !ok || out != 2.35 {
		t.Fatalf("string to float: %v %v", out, ok)
	}
}

func TestBasicFallbackPolicy(t *testing.T) {
	ctx := newCtx()
	out, ok := (Basic{Field: "id", Kind: Int, AllowFallback: true}).Handle("12 (0xC)", ctx)
	if !ok || out != "12 (0xC)" {
		t.Fatalf("fallback should keep raw string: %v %v", out, ok)
	}
	if len(ctx.Warnings()) != 0 {
		t.Fatal("fallback must not warn")
	}

	if _, ok := (Basic{Field: "id", Kind: Int}).Handle("junk", ctx); ok {
		t.Fatal("coercion failure without fallback must omit")
	}
	if len(ctx.Warnings()) != 1 {
		t.Fatalf("expected exactly one warning: %v", ctx.Warnings())
	}
}

func TestQuantityCarriesDeclaredUnit(t *testing.T) {
	ctx := newCtx()
	for _, raw := range []string{"1920", "720", "480"} {
		out, ok := (Quantity{Field: "width", Unit: units.Pixel}).Handle(raw, ctx)
		if !ok {
			t.Fatalf("quantity %q omitted", raw)
		}
		if out.(units.Quantity).Unit() != units.Pixel {
			t.Fatalf("unit lost for %q: %v", raw, out)
		}
	}
}

func TestQuantityFloatMode(t *testing.T) {
	ctx := newCtx()
	out, ok := (Quantity{Field: "frame_rate", Unit: units.FramesPerSecond, Float: true}).Handle("23.976", ctx)
	if !ok {
		t.Fatal("expected a value")
	}
	q := out.(units.Quantity)
	if q.Float64() != 23.976 || q.Unit() != units.FramesPerSecond {
		t.Fatalf("unexpected quantity: %v", q)
	}

	if _, ok := (Quantity{Field: "width", Unit: units.Pixel}).Handle("1.5", ctx); ok {
		t.Fatal("fractional value in integer mode must report")
	}
}

func TestRatio(t *testing.T) {
	ctx := newCtx()
	out, ok := (Ratio{Field: "aspect_ratio"}).Handle("16:9", ctx)
	if !ok || out != 1.778 {
		t.Fatalf("colon ratio: %v %v", out, ok)
	}
	out, ok = (Ratio{Field: "frame_rate", Unit: units.FramesPerSecond}).Handle("24000/1001", ctx)
	if !ok || !out.(units.Quantity).Equal(units.Float(23.976, units.FramesPerSecond)) {
		t.Fatalf("slash ratio: %v %v", out, ok)
	}
	out, ok = (Ratio{Field: "aspect_ratio"}).Handle("2.35", ctx)
	if !ok || out != 2.35 {
		t.Fatalf("plain number: %v %v", out, ok)
	}
	if len(ctx.Warnings()) != 0 {
		t.Fatalf("unexpected warnings: %v", ctx.Warnings())
	}

	if _, ok := (Ratio{Field: "frame_rate"}).Handle("0/0", ctx); ok {
		t.Fatal("zero denominator must report")
	}
	if len(ctx.Warnings()) != 1 {
		t.Fatalf("expected exactly one warning: %v", ctx.Warnings())
	}
}

func TestDurationScales(t *testing.T) {
	ctx := newCtx()
	out, ok := (Duration{Field: "duration", Scale: time.Millisecond}).Handle("4504000.000", ctx)
	if !ok || out != 4504*time.Second {
		t.Fatalf("millisecond scale: %v %v", out, ok)
	}
	out, ok = (Duration{Field: "duration", Scale: time.Second}).Handle("123.450", ctx)
	if !ok || out != 123450*time.Millisecond {
		t.Fatalf("second scale: %v %v", out, ok)
	}
	if _, ok := (Duration{Field: "duration"}).Handle("soon", ctx); ok {
		t.Fatal("junk duration must report")
	}
}

func TestYesNoHideValue(t *testing.T) {
	ctx := newCtx()
	handler := YesNo{Field: "forced", Hidden: Hide(false)}

	if _, ok := handler.Handle("No", ctx); ok {
		t.Fatal("hidden value must be omitted")
	}
	if len(ctx.Warnings()) != 0 {
		t.Fatal("hiding must not warn")
	}
	out, ok := handler.Handle("Yes", ctx)
	if !ok || out != true {
		t.Fatalf("Yes must resolve to true: %v %v", out, ok)
	}
	if _, ok := handler.Handle("maybe", ctx); ok {
		t.Fatal("unrecognized token must report")
	}
	if len(ctx.Warnings()) != 1 {
		t.Fatalf("expected one warning: %v", ctx.Warnings())
	}
}

func TestAudioChannels(t *testing.T) {
	ctx := newCtx()
	handler := NewAudioChannels("channels_count")

	if out, ok := handler.Handle("6", ctx); !ok || out != 6 {
		t.Fatalf("numeric count: %v %v", out, ok)
	}
	if out, ok := handler.Handle(8, ctx); !ok || out != 8 {
		t.Fatalf("typed count identity: %v %v", out, ok)
	}
	if _, ok := handler.Handle("Object Based", ctx); ok {
		t.Fatal("object-based token must omit")
	}
	if len(ctx.Warnings()) != 0 {
		t.Fatal("object-based token must not warn")
	}
	if _, ok := handler.Handle("six", ctx); ok {
		t.Fatal("junk count must omit")
	}
	if len(ctx.Warnings()) != 1 {
		t.Fatalf("junk count must record exactly one warning: %v", ctx.Warnings())
	}
}

func TestLanguageHandler(t *testing.T) {
	ctx := newCtx()
	handler := Language{Field: "language"}

	if out, ok := handler.Handle("eng", ctx); !ok || out != "en" {
		t.Fatalf("eng: %v %v", out, ok)
	}
	if _, ok := handler.Handle("qqq", ctx); ok {
		t.Fatal("unrecognized code must omit")
	}
	if len(ctx.Warnings()) != 1 {
		t.Fatalf("expected one warning: %v", ctx.Warnings())
	}
}

func TestLookupFallbackAndDefault(t *testing.T) {
	ctx := newCtx()
	profile := config.DefaultProfile()

	codec := NewLookup("codec", profile, "video_codec")
	if out, ok := codec.Handle("V_MPEGH/ISO/HEVC", ctx); !ok || out != "H.265" {
		t.Fatalf("mapped token: %v %v", out, ok)
	}

	out, ok := codec.Handle("V_FUTURE_CODEC", ctx)
	if !ok || out != "V_FUTURE_CODEC" {
		t.Fatalf("unmapped token must fall back verbatim: %v %v", out, ok)
	}
	if len(ctx.Warnings()) != 1 {
		t.Fatalf("unmapped token must warn: %v", ctx.Warnings())
	}

	scan := NewLookup("scan_type", profile, "scan_type")
	if out, ok := scan.Handle("Unknown Scan", ctx); !ok || out != "Progressive" {
		t.Fatalf("table default must apply: %v %v", out, ok)
	}
	if len(ctx.Warnings()) != 1 {
		t.Fatal("table default must not add a warning")
	}
}
