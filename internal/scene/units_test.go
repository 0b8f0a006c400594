package scene

import (
	"errors"
	"testing"
)

func TestParseLength(t *testing.T) {
	for _, test := range []struct {
		in, want string
	}{
		{"100", "100"},
		{" 12px ", "12px"},
		{"2em", "2em"},
		{"3ex", "3ex"},
		{"1.5in", "1.5in"},
		{"2.54cm", "2.54cm"},
		{"10 mm", "10mm"},
		{"12pt", "12pt"},
		{"1pc", "1pc"},
		{"50%", "50%"},
		{"-4", "-4"},
	} {
		l, err := ParseLength(test.in)
		if err != nil {
			t.Fatalf("%q: %s", test.in, err)
		}
		if l.String() != test.want {
			t.Errorf("%q: expected %s, got %s", test.in, test.want, l)
		}
	}
}

func TestParseLengthErrors(t *testing.T) {
	for _, in := range []string{
		"", "px", "abc", "12qq", "1.5px", "2.5",
		"NaN%", "Infin", "-Inf", "inf%", "Infinitycm", "0x1p-2cm", "0x10", "1e3px",
	} {
		_, err := ParseLength(in)
		if !errors.Is(err, ErrInvalidLength) {
			t.Errorf("%q: expected invalid length, got %v", in, err)
		}
	}
	for in, fractional := range map[string]bool{
		"1.5px": true,
		"2.5":   true,
		"1e3px": false,
		"-Inf":  false,
		"NaNpt": false,
	} {
		_, err := ParseLength(in)
		if errors.Is(err, errFractional) != fractional {
			t.Errorf("%q: unexpected fractional error state: %v", in, err)
		}
	}
}
