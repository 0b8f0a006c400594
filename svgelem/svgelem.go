// Provides a typed builder for SVG markup.
// Elements are created by their constructors, decorated with
// chained attribute methods and finally written to an io.Writer:
//
//	svgelem.NewLine(svgelem.Number(100), svgelem.Number(200)).
//		ID("jjdk").
//		AddClass("axis").
//		Write(os.Stdout)
//
// Attribute values are single quoted and body text is written as is:
// no escaping is performed, so callers must sanitize content
// containing ', <, > or & themselves.
// The package only emits text; it never reads markup.
package svgelem

import (
	"bytes"
	"io"
	"strconv"
)

// Element is implemented by every type which can be written as markup.
// Write may be called several times and always produces the same output.
// Errors returned by `w` are propagated unchanged; `w` may then contain
// partial output.
type Element interface {
	Write(w io.Writer) error
}

// CoreAttributes is implemented by elements accepting
// the identity attributes.
type CoreAttributes[T any] interface {
	// ID sets the id attribute, replacing a previous value.
	ID(id string) T
	// TabIndex sets the tabindex attribute, replacing a previous value.
	TabIndex(index int) T
}

// StylingAttributes is implemented by elements accepting
// a class list.
type StylingAttributes[T any] interface {
	// AddClass appends a class to the class attribute.
	// Order is preserved and duplicates are kept.
	AddClass(class string) T
}

// Bounds defines a bounding box, such as a viewport.
type Bounds struct{ X, Y, W, H float64 }

// String returns the value of a viewBox attribute.
func (b Bounds) String() string {
	return formatFloat(b.X) + " " + formatFloat(b.Y) + " " +
		formatFloat(b.W) + " " + formatFloat(b.H)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Marshal returns the markup of `e`.
// An error returned by e.Write is propagated unchanged.
func Marshal(e Element) ([]byte, error) {
	var buf bytes.Buffer
	if err := e.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
