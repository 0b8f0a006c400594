package scene

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/HaKr/svgrs/svgelem"
)

var (
	ErrInvalidLength = errors.New("invalid length")
	errFractional    = errors.New("unit only accepts integer values")
)

// suffixes are tried in order; the bare number comes last.
var suffixes = []struct {
	suffix string
	unit   svgelem.Unit
}{
	{"%", svgelem.UnitPercentage},
	{"em", svgelem.UnitEm},
	{"ex", svgelem.UnitEx},
	{"px", svgelem.UnitPixels},
	{"in", svgelem.UnitInch},
	{"cm", svgelem.UnitCm},
	{"mm", svgelem.UnitMm},
	{"pt", svgelem.UnitPoint},
	{"pc", svgelem.UnitPica},
}

var intConstructors = map[svgelem.Unit]func(int) svgelem.Length{
	svgelem.UnitNumber: svgelem.Number,
	svgelem.UnitEm:     svgelem.Em,
	svgelem.UnitEx:     svgelem.Ex,
	svgelem.UnitPixels: svgelem.Pixels,
	svgelem.UnitPoint:  svgelem.Point,
	svgelem.UnitPica:   svgelem.Pica,
}

var floatConstructors = map[svgelem.Unit]func(float64) svgelem.Length{
	svgelem.UnitInch:       svgelem.Inch,
	svgelem.UnitCm:         svgelem.Cm,
	svgelem.UnitMm:         svgelem.Mm,
	svgelem.UnitPercentage: svgelem.Percentage,
}

// ParseLength reads a length literal such as "12px", "1.5in" or "50%".
// A number without suffix is a unitless Number.
func ParseLength(v string) (svgelem.Length, error) {
	v = strings.TrimSpace(v)
	unit := svgelem.UnitNumber
	for _, s := range suffixes {
		if strings.HasSuffix(v, s.suffix) {
			unit = s.unit
			v = strings.TrimSpace(strings.TrimSuffix(v, s.suffix))
			break
		}
	}
	if ctor, ok := floatConstructors[unit]; ok {
		f, err := parseDecimal(v)
		if err != nil {
			return svgelem.Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, v+unit.Suffix())
		}
		return ctor(f), nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		if f, ferr := parseDecimal(v); ferr == nil && f != math.Trunc(f) {
			return svgelem.Length{}, fmt.Errorf("%w: %q: %w", ErrInvalidLength, v+unit.Suffix(), errFractional)
		}
		return svgelem.Length{}, fmt.Errorf("%w: %q", ErrInvalidLength, v+unit.Suffix())
	}
	return intConstructors[unit](n), nil
}

// parseDecimal accepts finite decimal numbers only:
// hexadecimal floats, NaN and infinities are rejected.
func parseDecimal(v string) (float64, error) {
	if strings.ContainsAny(v, "xX") {
		return 0, strconv.ErrSyntax
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, err
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, strconv.ErrRange
	}
	return f, nil
}
