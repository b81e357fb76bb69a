package pipeline

import (
	"strings"
	"testing"
)

func TestNewSchemaRejectsForwardRuleReference(t *testing.T) {
	properties := map[TrackKind][]Property{
		Audio: {{Name: "codec", Raw: []string{"CodecID"}}},
	}
	rules := map[TrackKind][]RuleSpec{
		Audio: {
			{
				Name:     "channels",
				Rule:     RuleFunc(func(*Track, RawTrack, *Context) (any, bool) { return nil, false }),
				Requires: []string{"_atmos"}, // declared by a later rule
			},
			{
				Name: "_atmos",
				Rule: RuleFunc(func(*Track, RawTrack, *Context) (any, bool) { return nil, false }),
			},
		},
	}
	if _, err := NewSchema(properties, rules); err == nil {
		t.Fatal("expected forward reference to be rejected")
	}
}

func TestNewSchemaRejectsDuplicateProperty(t *testing.T) {
	properties := map[TrackKind][]Property{
		Video: {
			{Name: "codec", Raw: []string{"CodecID"}},
			{Name: "codec", Raw: []string{"Format"}},
		},
	}
	if _, err := NewSchema(properties, nil); err == nil {
		t.Fatal("expected duplicate property to be rejected")
	}
}

func TestNewSchemaAllowsRuleReadingEarlierRuleTarget(t *testing.T) {
	properties := map[TrackKind][]Property{
		Audio: {{Name: "codec", Raw: []string{"CodecID"}}},
	}
	rules := map[TrackKind][]RuleSpec{
		Audio: {
			{
				Name:     "channels",
				Rule:     RuleFunc(func(*Track, RawTrack, *Context) (any, bool) { return "2.0", true }),
				Requires: []string{"codec"},
			},
			{
				Name:     "label",
				Rule:     RuleFunc(func(*Track, RawTrack, *Context) (any, bool) { return nil, false }),
				Requires: []string{"channels"},
			},
		},
	}
	if _, err := NewSchema(properties, rules); err != nil {
		t.Fatalf("valid schema rejected: %v", err)
	}
}

func TestNormalizeRunsHandlersThenRules(t *testing.T) {
	properties := map[TrackKind][]Property{
		Audio: {
			{Name: "codec", Raw: []string{"CodecID", "Format"}},
			{Name: "_hint", Raw: []string{"Format_Commercial_IfAny"}},
			{Name: "scan_type", Raw: []string{"ScanType"}, Default: "Progressive"},
		},
	}
	rules := map[TrackKind][]RuleSpec{
		Audio: {
			{
				Name: "flavor",
				Rule: RuleFunc(func(track *Track, _ RawTrack, _ *Context) (any, bool) {
					// The private field must already be populated.
					hint, ok := track.String("_hint")
					if !ok {
						return nil, false
					}
					return strings.ToLower(hint), true
				}),
				Requires: []string{"_hint"},
			},
		},
	}
	schema, err := NewSchema(properties, rules)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}

	ctx := NewContext("test.mkv", nil)
	track := schema.Normalize(Audio, RawTrack{
		"Format":                  "DTS",
		"Format_Commercial_IfAny": "DTS-HD Master Audio",
	}, ctx)

	if codec, _ := track.String("codec"); codec != "DTS" {
		t.Fatalf("unexpected codec: %q", codec)
	}
	if flavor, _ := track.String("flavor"); flavor != "dts-hd master audio" {
		t.Fatalf("rule did not observe private field: %q", flavor)
	}
	if scan, _ := track.String("scan_type"); scan != "Progressive" {
		t.Fatalf("default not applied: %q", scan)
	}
}

func TestNormalizeOmitsFieldOnHandlerReport(t *testing.T) {
	reporting := HandlerFunc(func(value any, ctx *Context) (any, bool) {
		ctx.Report("codec", value)
		return nil, false
	})
	properties := map[TrackKind][]Property{
		Video: {{Name: "codec", Raw: []string{"CodecID"}, Handler: reporting}},
	}
	schema, err := NewSchema(properties, nil)
	if err != nil {
		t.Fatalf("schema: %v", err)
	}

	ctx := NewContext("test.mkv", nil)
	track := schema.Normalize(Video, RawTrack{"CodecID": "junk"}, ctx)

	if _, ok := track.Get("codec"); ok {
		t.Fatal("reported field must be omitted")
	}
	warnings := ctx.Warnings()
	if len(warnings) != 1 || warnings[0].Field != "codec" {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
}
