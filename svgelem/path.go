package svgelem

import (
	"strings"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"
)

// This file defines the path data used by the `d` attribute.

var _ rasterx.Adder = (*PathData)(nil) // shapes from rasterx may be added to a PathData

// Operation is one command of a path.
type Operation interface {
	// appendTo writes the command in its textual form.
	appendTo(b *strings.Builder)
}

type MoveTo fixed.Point26_6

type LineTo fixed.Point26_6

type QuadTo [2]fixed.Point26_6

type CubicTo [3]fixed.Point26_6

type Close struct{}

func writePoint(b *strings.Builder, p fixed.Point26_6) {
	b.WriteString(formatFixed(p.X))
	b.WriteByte(',')
	b.WriteString(formatFixed(p.Y))
}

func formatFixed(v fixed.Int26_6) string {
	return formatFloat(float64(v) / 64)
}

func (op MoveTo) appendTo(b *strings.Builder) {
	b.WriteByte('M')
	writePoint(b, fixed.Point26_6(op))
}

func (op LineTo) appendTo(b *strings.Builder) {
	b.WriteByte('L')
	writePoint(b, fixed.Point26_6(op))
}

func (op QuadTo) appendTo(b *strings.Builder) {
	b.WriteByte('Q')
	writePoint(b, op[0])
	b.WriteByte(' ')
	writePoint(b, op[1])
}

func (op CubicTo) appendTo(b *strings.Builder) {
	b.WriteByte('C')
	writePoint(b, op[0])
	b.WriteByte(' ')
	writePoint(b, op[1])
	b.WriteByte(' ')
	writePoint(b, op[2])
}

func (Close) appendTo(b *strings.Builder) { b.WriteByte('Z') }

// PathData describes a sequence of basic SVG path commands.
// Coordinates are stored in 26.6 fixed point.
type PathData []Operation

// String returns the value of a `d` attribute,
// such as "M10,20 L30,40 Z".
func (p PathData) String() string {
	var b strings.Builder
	for i, op := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		op.appendTo(&b)
	}
	return b.String()
}

// Clear zeros the path slice
func (p *PathData) Clear() {
	*p = (*p)[:0]
}

// Start starts a new curve at the given point.
func (p *PathData) Start(a fixed.Point26_6) {
	*p = append(*p, MoveTo{a.X, a.Y})
}

// Line adds a linear segment to the current curve.
func (p *PathData) Line(b fixed.Point26_6) {
	*p = append(*p, LineTo{b.X, b.Y})
}

// QuadBezier adds a quadratic segment to the current curve.
func (p *PathData) QuadBezier(b, c fixed.Point26_6) {
	*p = append(*p, QuadTo{b, c})
}

// CubeBezier adds a cubic segment to the current curve.
func (p *PathData) CubeBezier(b, c, d fixed.Point26_6) {
	*p = append(*p, CubicTo{b, c, d})
}

// Stop joins the ends of the path
func (p *PathData) Stop(closeLoop bool) {
	if closeLoop {
		*p = append(*p, Close{})
	}
}

// Pt converts float coordinates to a fixed point.
func Pt(x, y float64) fixed.Point26_6 {
	return rasterx.ToFixedP(x, y)
}
