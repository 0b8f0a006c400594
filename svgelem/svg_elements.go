package svgelem

import (
	"io"
)

var (
	_ Element                  = (*Line)(nil) // assert interface conformance
	_ CoreAttributes[*Line]    = (*Line)(nil)
	_ StylingAttributes[*Line] = (*Line)(nil)

	_ Element                  = (*Text)(nil)
	_ CoreAttributes[*Text]    = (*Text)(nil)
	_ StylingAttributes[*Text] = (*Text)(nil)

	_ Element                  = (*Path)(nil)
	_ CoreAttributes[*Path]    = (*Path)(nil)
	_ StylingAttributes[*Path] = (*Path)(nil)
)

// Line is always written as a self-closing tag.
type Line struct {
	tag Tag
}

func NewLine(x, y Length) *Line {
	l := &Line{tag: NewTag(TagLine)}
	l.tag.Set(AttrX, x)
	l.tag.Set(AttrY, y)
	return l
}

// Tag gives access to the underlying tag, for attributes
// without a dedicated method.
func (l *Line) Tag() *Tag { return &l.tag }

func (l *Line) ID(id string) *Line {
	l.tag.Set(AttrID, id)
	return l
}

func (l *Line) TabIndex(index int) *Line {
	l.tag.Set(AttrTabIndex, index)
	return l
}

func (l *Line) AddClass(class string) *Line {
	l.tag.attrs.Append(AttrClass, class)
	return l
}

func (l *Line) Write(w io.Writer) error {
	return l.tag.WriteOpening(w, true)
}

// Text holds a body, written between its opening
// and closing tags without any escaping.
type Text struct {
	tag  Tag
	body string
}

func NewText(x, y Length, body string) *Text {
	t := &Text{tag: NewTag(TagText), body: body}
	t.tag.Set(AttrX, x)
	t.tag.Set(AttrY, y)
	return t
}

func (t *Text) Tag() *Tag { return &t.tag }

// Body returns the text content.
func (t *Text) Body() string { return t.body }

func (t *Text) ID(id string) *Text {
	t.tag.Set(AttrID, id)
	return t
}

func (t *Text) TabIndex(index int) *Text {
	t.tag.Set(AttrTabIndex, index)
	return t
}

func (t *Text) AddClass(class string) *Text {
	t.tag.attrs.Append(AttrClass, class)
	return t
}

func (t *Text) Write(w io.Writer) error {
	if err := t.tag.WriteOpening(w, false); err != nil {
		return err
	}
	if _, err := io.WriteString(w, t.body); err != nil {
		return err
	}
	return t.tag.WriteClosing(w)
}

// Path is a self-closing path element, whose geometry
// is given by its path data.
type Path struct {
	tag Tag
}

// NewPath copies the current state of `d` in the new element:
// later changes to `d` are not reflected.
func NewPath(d PathData) *Path {
	p := &Path{tag: NewTag(TagPath)}
	p.tag.Set(AttrD, d)
	return p
}

func (p *Path) Tag() *Tag { return &p.tag }

func (p *Path) ID(id string) *Path {
	p.tag.Set(AttrID, id)
	return p
}

func (p *Path) TabIndex(index int) *Path {
	p.tag.Set(AttrTabIndex, index)
	return p
}

func (p *Path) AddClass(class string) *Path {
	p.tag.attrs.Append(AttrClass, class)
	return p
}

func (p *Path) Write(w io.Writer) error {
	return p.tag.WriteOpening(w, true)
}
