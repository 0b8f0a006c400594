package scene

import (
	"errors"
	"fmt"

	"github.com/HaKr/svgrs/internal/logging"
	"github.com/HaKr/svgrs/svgdraw"
	"github.com/HaKr/svgrs/svgelem"
)

var (
	ErrUnknownKind = errors.New("unknown element kind")
	errParamCount  = errors.New("wrong number of parameters")
	errViewBox     = errors.New("viewbox needs 4 values")
)

var gapModes = map[string]svgdraw.GapMode{
	"":          svgdraw.FlatGap,
	"flat":      svgdraw.FlatGap,
	"round":     svgdraw.RoundGap,
	"cubic":     svgdraw.CubicGap,
	"quadratic": svgdraw.QuadraticGap,
}

// decorated is satisfied by the elements accepting both
// identity and styling attributes.
type decorated[T any] interface {
	svgelem.Element
	svgelem.CoreAttributes[T]
	svgelem.StylingAttributes[T]
}

func decorate[T decorated[T]](e T, spec ElementSpec) T {
	if spec.ID != "" {
		e = e.ID(spec.ID)
	}
	if spec.TabIndex != nil {
		e = e.TabIndex(*spec.TabIndex)
	}
	for _, class := range spec.Class {
		e = e.AddClass(class)
	}
	return e
}

// Build creates the document described by `s`.
// Missing width or height default to 100%.
func Build(s *Scene) (*svgelem.Document, error) {
	logger := logging.GetLogger("scene")

	width, height := svgelem.Percentage(100), svgelem.Percentage(100)
	var err error
	if s.Width != "" {
		if width, err = ParseLength(s.Width); err != nil {
			return nil, fmt.Errorf("width: %w", err)
		}
	}
	if s.Height != "" {
		if height, err = ParseLength(s.Height); err != nil {
			return nil, fmt.Errorf("height: %w", err)
		}
	}

	doc := svgelem.NewDocument(width, height)
	switch len(s.ViewBox) {
	case 0:
	case 4:
		doc.ViewBox(svgelem.Bounds{X: s.ViewBox[0], Y: s.ViewBox[1], W: s.ViewBox[2], H: s.ViewBox[3]})
	default:
		return nil, fmt.Errorf("%w, got %d", errViewBox, len(s.ViewBox))
	}
	if s.ID != "" {
		doc.ID(s.ID)
	}

	children, err := buildAll(s.Elements, "element")
	if err != nil {
		return nil, err
	}
	doc.Append(children...)

	logger.Debug().Int("children", len(children)).Msg("Document built")
	return doc, nil
}

func buildAll(specs []ElementSpec, path string) ([]svgelem.Element, error) {
	out := make([]svgelem.Element, 0, len(specs))
	for i, spec := range specs {
		e, err := buildElement(spec, fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}

func buildElement(spec ElementSpec, path string) (svgelem.Element, error) {
	logger := logging.GetLogger("scene")
	logger.Trace().Str("element", path).Str("kind", spec.Kind).Msg("Building element")

	wrap := func(err error) error { return fmt.Errorf("%s (%s): %w", path, spec.Kind, err) }

	switch spec.Kind {
	case "line", "text":
		x, err := ParseLength(spec.X)
		if err != nil {
			return nil, wrap(err)
		}
		y, err := ParseLength(spec.Y)
		if err != nil {
			return nil, wrap(err)
		}
		if spec.Kind == "line" {
			return decorate(svgelem.NewLine(x, y), spec), nil
		}
		return decorate(svgelem.NewText(x, y, spec.Body), spec), nil
	case "group":
		children, err := buildAll(spec.Children, path+".children")
		if err != nil {
			return nil, err
		}
		return decorate(svgelem.NewGroup(children...), spec), nil
	case "circle", "ellipse", "rect", "roundrect", "polyline", "polygon":
		p, err := buildShape(spec)
		if err != nil {
			return nil, wrap(err)
		}
		return decorate(p, spec), nil
	}
	return nil, wrap(ErrUnknownKind)
}

func buildShape(spec ElementSpec) (*svgelem.Path, error) {
	ps := spec.Params
	// optional trailing rotation
	rot := func(n int) float64 {
		if len(ps) > n {
			return ps[n]
		}
		return 0
	}
	count := func(lo, hi int) error {
		if len(ps) < lo || len(ps) > hi {
			return fmt.Errorf("%w: expected %d to %d, got %d", errParamCount, lo, hi, len(ps))
		}
		return nil
	}

	switch spec.Kind {
	case "circle":
		if err := count(3, 3); err != nil {
			return nil, err
		}
		return svgdraw.Circle(ps[0], ps[1], ps[2]), nil
	case "ellipse":
		if err := count(4, 5); err != nil {
			return nil, err
		}
		return svgdraw.Ellipse(ps[0], ps[1], ps[2], ps[3], rot(4)), nil
	case "rect":
		if err := count(4, 5); err != nil {
			return nil, err
		}
		return svgdraw.Rect(ps[0], ps[1], ps[2], ps[3], rot(4)), nil
	case "roundrect":
		if err := count(6, 7); err != nil {
			return nil, err
		}
		gap, ok := gapModes[spec.Gap]
		if !ok {
			return nil, fmt.Errorf("unknown gap %q", spec.Gap)
		}
		return svgdraw.RoundRect(ps[0], ps[1], ps[2], ps[3], ps[4], ps[5], rot(6), gap), nil
	case "polyline":
		return svgdraw.Polyline(false, ps...)
	default: // polygon
		return svgdraw.Polyline(true, ps...)
	}
}
