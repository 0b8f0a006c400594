// Builds path elements for common shapes.
// The geometry is computed by rasterx shape functions,
// which are fed into an svgelem.PathData instead of a rasterizer,
// so the result is vector markup, not pixels.
package svgdraw

import (
	"errors"

	"github.com/HaKr/svgrs/svgelem"
	"github.com/srwiley/rasterx"
)

// GapMode selects how the corners of a rounded rectangle are drawn.
type GapMode uint8

const (
	FlatGap GapMode = iota
	RoundGap
	CubicGap
	QuadraticGap
)

var gapToFunc = [...]rasterx.GapFunc{
	FlatGap:      rasterx.FlatGap,
	RoundGap:     rasterx.RoundGap,
	CubicGap:     rasterx.CubicGap,
	QuadraticGap: rasterx.QuadraticGap,
}

func (g GapMode) String() string {
	switch g {
	case FlatGap:
		return "flat"
	case RoundGap:
		return "round"
	case CubicGap:
		return "cubic"
	case QuadraticGap:
		return "quadratic"
	}
	return "unknown gap"
}

var errOddCoordinates = errors.New("odd number of coordinates")

// Circle returns a closed path approximating the circle
// of center (cx, cy) and radius r.
func Circle(cx, cy, r float64) *svgelem.Path {
	var d svgelem.PathData
	rasterx.AddCircle(cx, cy, r, &d)
	return svgelem.NewPath(d)
}

// Ellipse returns an ellipse of radii (rx, ry),
// rotated around its center by `rot` degrees.
func Ellipse(cx, cy, rx, ry, rot float64) *svgelem.Path {
	var d svgelem.PathData
	rasterx.AddEllipse(cx, cy, rx, ry, rot, &d)
	return svgelem.NewPath(d)
}

// Rect returns a rectangle rotated around its center by `rot` degrees.
func Rect(minX, minY, maxX, maxY, rot float64) *svgelem.Path {
	var d svgelem.PathData
	rasterx.AddRect(minX, minY, maxX, maxY, rot, &d)
	return svgelem.NewPath(d)
}

// RoundRect returns a rectangle with rounded corners of radii (rx, ry).
// A non positive radius gives a plain rectangle.
func RoundRect(minX, minY, maxX, maxY, rx, ry, rot float64, gap GapMode) *svgelem.Path {
	var d svgelem.PathData
	gf := rasterx.FlatGap
	if int(gap) < len(gapToFunc) {
		gf = gapToFunc[gap]
	}
	rasterx.AddRoundRect(minX, minY, maxX, maxY, rx, ry, rot, gf, &d)
	return svgelem.NewPath(d)
}

// Polyline joins the points given as x0, y0, x1, y1, ...
// If `closed` is true, the path is closed.
func Polyline(closed bool, coords ...float64) (*svgelem.Path, error) {
	if len(coords)%2 != 0 {
		return nil, errOddCoordinates
	}
	var d svgelem.PathData
	for i := 0; i < len(coords); i += 2 {
		pt := rasterx.ToFixedP(coords[i], coords[i+1])
		if i == 0 {
			d.Start(pt)
		} else {
			d.Line(pt)
		}
	}
	if len(d) > 0 {
		d.Stop(closed)
	}
	return svgelem.NewPath(d), nil
}
