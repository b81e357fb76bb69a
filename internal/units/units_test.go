package units

import (
	"encoding/json"
	"testing"
)

func TestQuantityString(t *testing.T) {
	if got := Int(1920, Pixel).String(); got != "1920 pixel" {
		t.Fatalf("unexpected pixel rendering: %q", got)
	}
	if got := Float(23.976, FramesPerSecond).String(); got != "23.976 fps" {
		t.Fatalf("unexpected fps rendering: %q", got)
	}
	if got := Int(2, None).String(); got != "2" {
		t.Fatalf("unexpected dimensionless rendering: %q", got)
	}
}

func TestQuantityEqualRequiresUnit(t *testing.T) {
	if Int(8, Bit).Equal(Int(8, Byte)) {
		t.Fatal("quantities with different units must not compare equal")
	}
	if !Int(8, Bit).Equal(Int(8, Bit)) {
		t.Fatal("identical quantities must compare equal")
	}
}

func TestQuantityConvert(t *testing.T) {
	bits, err := Int(2, Byte).Convert(Bit)
	if err != nil {
		t.Fatalf("convert byte to bit: %v", err)
	}
	if bits.Float64() != 16 || bits.Unit() != Bit {
		t.Fatalf("unexpected conversion result: %v", bits)
	}
	if _, err := Int(1, Pixel).Convert(Hertz); err == nil {
		t.Fatal("expected error converting pixel to Hz")
	}
}

func TestQuantityMarshalJSON(t *testing.T) {
	data, err := json.Marshal(Int(48000, Hertz))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(data) != `"48000 Hz"` {
		t.Fatalf("unexpected JSON: %s", data)
	}
}
