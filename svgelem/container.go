package svgelem

import (
	"io"
)

// SVGNamespace is the value of the xmlns attribute of a Document.
const SVGNamespace = "http://www.w3.org/2000/svg"

var (
	_ Element                   = (*Group)(nil)
	_ CoreAttributes[*Group]    = (*Group)(nil)
	_ StylingAttributes[*Group] = (*Group)(nil)

	_ Element                   = (*Document)(nil)
	_ CoreAttributes[*Document] = (*Document)(nil)
)

// writeChildren implements the container protocol: a container
// without children is self-closing, otherwise the children
// are written between the opening and the closing tag.
func writeChildren(w io.Writer, tag *Tag, children []Element) error {
	if len(children) == 0 {
		return tag.WriteOpening(w, true)
	}
	if err := tag.WriteOpening(w, false); err != nil {
		return err
	}
	for _, child := range children {
		if err := child.Write(w); err != nil {
			return err
		}
	}
	return tag.WriteClosing(w)
}

// Group is a <g> container.
type Group struct {
	tag      Tag
	children []Element
}

func NewGroup(children ...Element) *Group {
	return &Group{tag: NewTag(TagGroup), children: children}
}

func (g *Group) Tag() *Tag { return &g.tag }

// Children returns the elements of the group, in writing order.
func (g *Group) Children() []Element { return g.children }

// Append adds elements at the end of the group.
func (g *Group) Append(children ...Element) *Group {
	g.children = append(g.children, children...)
	return g
}

func (g *Group) ID(id string) *Group {
	g.tag.Set(AttrID, id)
	return g
}

func (g *Group) TabIndex(index int) *Group {
	g.tag.Set(AttrTabIndex, index)
	return g
}

func (g *Group) AddClass(class string) *Group {
	g.tag.attrs.Append(AttrClass, class)
	return g
}

func (g *Group) Write(w io.Writer) error {
	return writeChildren(w, &g.tag, g.children)
}

// Document is the <svg> root element.
// No XML declaration is written.
type Document struct {
	tag      Tag
	children []Element
}

// NewDocument returns a root element with the given
// size and the SVG namespace.
func NewDocument(width, height Length) *Document {
	d := &Document{tag: NewTag(TagDocument)}
	d.tag.Set(AttrXMLNS, SVGNamespace)
	d.tag.Set(AttrWidth, width)
	d.tag.Set(AttrHeight, height)
	return d
}

func (d *Document) Tag() *Tag { return &d.tag }

func (d *Document) Children() []Element { return d.children }

func (d *Document) Append(children ...Element) *Document {
	d.children = append(d.children, children...)
	return d
}

// ViewBox sets the viewBox attribute.
func (d *Document) ViewBox(b Bounds) *Document {
	d.tag.Set(AttrViewBox, b)
	return d
}

func (d *Document) ID(id string) *Document {
	d.tag.Set(AttrID, id)
	return d
}

func (d *Document) TabIndex(index int) *Document {
	d.tag.Set(AttrTabIndex, index)
	return d
}

func (d *Document) Write(w io.Writer) error {
	return writeChildren(w, &d.tag, d.children)
}
