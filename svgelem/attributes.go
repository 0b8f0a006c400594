package svgelem

import (
	"fmt"
	"slices"
	"strings"
)

// Attribute is the name of an attribute known to this package.
type Attribute uint8

const (
	AttrViewBox Attribute = iota
	AttrXMLNS
	AttrWidth
	AttrHeight
	AttrX
	AttrY
	AttrD
	AttrID
	AttrClass
	AttrTabIndex
)

var attributeNames = [...]string{
	AttrViewBox:  "viewBox",
	AttrXMLNS:    "xmlns",
	AttrWidth:    "width",
	AttrHeight:   "height",
	AttrX:        "x",
	AttrY:        "y",
	AttrD:        "d",
	AttrID:       "id",
	AttrClass:    "class",
	AttrTabIndex: "tabindex",
}

func (a Attribute) String() string {
	if int(a) < len(attributeNames) {
		return attributeNames[a]
	}
	return fmt.Sprintf("<invalid attribute %d>", a)
}

// Attributes maps attribute names to already formatted values.
// It is owned by exactly one Tag and is not safe for concurrent mutation.
//
// The order in which attributes are written is not part of the contract;
// the current implementation follows the declaration order of the
// Attribute constants.
type Attributes struct {
	values map[Attribute]string
}

// Set stores the text form of `value` (as printed by fmt.Sprint) under `name`,
// replacing any previous value.
func (as *Attributes) Set(name Attribute, value any) {
	if as.values == nil {
		as.values = make(map[Attribute]string)
	}
	as.values[name] = fmt.Sprint(value)
}

// Append adds `token` to the space separated list stored under `name`.
// The first token is stored without separator. Duplicates are kept.
func (as *Attributes) Append(name Attribute, token string) {
	current, ok := as.Get(name)
	if !ok || current == "" {
		as.Set(name, token)
		return
	}
	as.Set(name, current+" "+token)
}

// Get returns the value stored under `name`.
func (as Attributes) Get(name Attribute) (string, bool) {
	v, ok := as.values[name]
	return v, ok
}

// Len returns the number of attributes set.
func (as Attributes) Len() int { return len(as.values) }

func (as Attributes) names() []Attribute {
	out := make([]Attribute, 0, len(as.values))
	for name := range as.values {
		out = append(out, name)
	}
	slices.Sort(out)
	return out
}

// String returns the attributes as they appear in an opening tag,
// each one preceded by a space.
func (as Attributes) String() string {
	var b strings.Builder
	for _, name := range as.names() {
		fmt.Fprintf(&b, " %s='%s'", name, as.values[name])
	}
	return b.String()
}
