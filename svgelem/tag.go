package svgelem

import (
	"fmt"
	"io"
)

// TagName is the kind of an element.
type TagName uint8

const (
	TagDocument TagName = iota
	TagGroup
	TagLine
	TagText
	TagPath
)

var tagNames = [...]string{
	TagDocument: "svg",
	TagGroup:    "g",
	TagLine:     "line",
	TagText:     "text",
	TagPath:     "path",
}

func (t TagName) String() string {
	if int(t) < len(tagNames) {
		return tagNames[t]
	}
	return fmt.Sprintf("<invalid tag %d>", t)
}

// Tag pairs a tag name with its attributes.
// The name is fixed at creation, attributes may change afterwards.
type Tag struct {
	name  TagName
	attrs Attributes
}

// NewTag returns a tag without attributes.
func NewTag(name TagName) Tag {
	return Tag{name: name}
}

// Name returns the tag kind.
func (t *Tag) Name() TagName { return t.name }

// Attributes gives access to the attribute store.
func (t *Tag) Attributes() *Attributes { return &t.attrs }

// Attr is a shortcut for t.Attributes().Get(name).
func (t *Tag) Attr(name Attribute) (string, bool) { return t.attrs.Get(name) }

// Set stores `value` under `name`, see Attributes.Set.
func (t *Tag) Set(name Attribute, value any) { t.attrs.Set(name, value) }

// WriteOpening writes `<name attr='value' ...` followed by ` />`
// if `selfClose` is true or by `>` otherwise.
// Errors from `w` are returned as is.
func (t *Tag) WriteOpening(w io.Writer, selfClose bool) error {
	end := ">"
	if selfClose {
		end = " />"
	}
	_, err := fmt.Fprintf(w, "<%s%s%s", t.name, t.attrs, end)
	return err
}

// WriteClosing writes `</name>`.
func (t *Tag) WriteClosing(w io.Writer) error {
	_, err := fmt.Fprintf(w, "</%s>", t.name)
	return err
}
