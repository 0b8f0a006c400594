package svgelem

import (
	"strconv"

	"golang.org/x/image/math/fixed"
)

// Unit identifies the active variant of a Length.
type Unit uint8

const (
	UnitNumber Unit = iota // unitless user space value
	UnitEm
	UnitEx
	UnitPixels
	UnitInch
	UnitCm
	UnitMm
	UnitPoint
	UnitPica
	UnitPercentage
)

var unitSuffixes = [...]string{
	UnitNumber:     "",
	UnitEm:         "em",
	UnitEx:         "ex",
	UnitPixels:     "px",
	UnitInch:       "in",
	UnitCm:         "cm",
	UnitMm:         "mm",
	UnitPoint:      "pt",
	UnitPica:       "pc",
	UnitPercentage: "%",
}

// Suffix returns the text appended to the magnitude when rendering.
func (u Unit) Suffix() string {
	if int(u) < len(unitSuffixes) {
		return unitSuffixes[u]
	}
	return ""
}

// isFloat reports whether the variant carries a fractional magnitude.
func (u Unit) isFloat() bool {
	switch u {
	case UnitInch, UnitCm, UnitMm, UnitPercentage:
		return true
	}
	return false
}

// Length is a length or percentage value, as found in
// coordinate and size attributes.
// The zero value is Number(0).
type Length struct {
	unit Unit
	i    int
	f    float64
}

func Number(n int) Length { return Length{unit: UnitNumber, i: n} }
func Em(n int) Length { return Length{unit: UnitEm, i: n} }
func Ex(n int) Length { return Length{unit: UnitEx, i: n} }
func Pixels(n int) Length { return Length{unit: UnitPixels, i: n} }
func Inch(f float64) Length { return Length{unit: UnitInch, f: f} }
func Cm(f float64) Length { return Length{unit: UnitCm, f: f} }
func Mm(f float64) Length { return Length{unit: UnitMm, f: f} }
func Point(n int) Length { return Length{unit: UnitPoint, i: n} }
func Pica(n int) Length { return Length{unit: UnitPica, i: n} }
func Percentage(f float64) Length { return Length{unit: UnitPercentage, f: f} }

// FixedPixels rounds a 26.6 fixed point value to the nearest pixel.
func FixedPixels(v fixed.Int26_6) Length { return Pixels(v.Round()) }

// Unit returns the active variant.
func (l Length) Unit() Unit { return l.unit }

// String returns the canonical form, such as 12px, 50% or 1.5in.
func (l Length) String() string {
	if l.unit.isFloat() {
		return strconv.FormatFloat(l.f, 'f', -1, 64) + l.unit.Suffix()
	}
	return strconv.Itoa(l.i) + l.unit.Suffix()
}
