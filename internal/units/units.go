package units

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Unit tags a Quantity with its unit of measure.
type Unit string

const (
	// None marks a dimensionless quantity.
	None Unit = ""
	// Byte measures sizes.
	Byte Unit = "byte"
	// Bit measures depths (e.g. bit depth).
	Bit Unit = "bit"
	// BitsPerSecond measures bit rates.
	BitsPerSecond Unit = "bps"
	// Pixel measures frame dimensions.
	Pixel Unit = "pixel"
	// Hertz measures sampling rates.
	Hertz Unit = "Hz"
	// FramesPerSecond measures frame rates.
	FramesPerSecond Unit = "fps"
)

// Quantity is an immutable numeric magnitude paired with a unit.
type Quantity struct {
	value float64
	whole bool
	unit  Unit
}

// Int builds a whole-number quantity.
func Int(value int64, unit Unit) Quantity {
	return Quantity{value: float64(value), whole: true, unit: unit}
}

// Float builds a fractional quantity.
func Float(value float64, unit Unit) Quantity {
	return Quantity{value: value, unit: unit}
}

// Unit returns the unit tag.
func (q Quantity) Unit() Unit {
	return q.unit
}

// Float64 returns the magnitude as a float.
func (q Quantity) Float64() float64 {
	return q.value
}

// Int64 returns the magnitude truncated to an integer.
func (q Quantity) Int64() int64 {
	return int64(q.value)
}

// Equal reports whether both magnitude and unit match.
func (q Quantity) Equal(other Quantity) bool {
	return q.unit == other.unit && q.value == other.value
}

// Convert translates between compatible units. Only byte<->bit conversions
// are supported; converting to the same unit is a no-op.
func (q Quantity) Convert(to Unit) (Quantity, error) {
	if to == q.unit {
		return q, nil
	}
	switch {
	case q.unit == Byte && to == Bit:
		return Quantity{value: q.value * 8, whole: q.whole, unit: Bit}, nil
	case q.unit == Bit && to == Byte:
		return Quantity{value: q.value / 8, unit: Byte}, nil
	}
	return Quantity{}, fmt.Errorf("units: cannot convert %s to %s", q.unit, to)
}

// String renders the magnitude followed by the unit tag, e.g. "1920 pixel"
// or "23.976 fps". Dimensionless quantities render the bare number.
func (q Quantity) String() string {
	var number string
	if q.whole {
		number = strconv.FormatInt(int64(q.value), 10)
	} else {
		number = strconv.FormatFloat(q.value, 'f', -1, 64)
	}
	if q.unit == None {
		return number
	}
	return number + " " + string(q.unit)
}

// MarshalJSON emits the printable form.
func (q Quantity) MarshalJSON() ([]byte, error) {
	return json.Marshal(q.String())
}
