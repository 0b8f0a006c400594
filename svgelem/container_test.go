package svgelem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmptyContainers(t *testing.T) {
	out, err := Marshal(NewGroup().ID("empty"))
	require.NoError(t, err)
	assert.Equal(t, "<g id='empty' />", string(out))

	out, err = Marshal(NewDocument(Number(1), Number(2)))
	require.NoError(t, err)
	assert.Equal(t, "<svg xmlns='http://www.w3.org/2000/svg' width='1' height='2' />", string(out))
}

func TestGroup(t *testing.T) {
	g := NewGroup(NewLine(Number(1), Number(2))).
		AddClass("axis").
		Append(NewText(Number(3), Number(4), "label"))
	require.Len(t, g.Children(), 2)

	out, err := Marshal(g)
	require.NoError(t, err)
	assert.Equal(t, "<g class='axis'><line x='1' y='2' /><text x='3' y='4'>label</text></g>", string(out))
}

func TestDocument(t *testing.T) {
	doc := NewDocument(Pixels(400), Pixels(300)).
		ViewBox(Bounds{W: 400, H: 300}).
		ID("chart").
		Append(
			NewGroup(NewLine(Number(0), Number(0)).AddClass("axis")).ID("axes"),
			NewText(Number(20), Number(30), "title").TabIndex(1),
		)

	root := parse(t, doc)
	assert.Equal(t, "svg", root.Tag)
	assert.Equal(t, "0 0 400 300", root.SelectAttrValue("viewBox", ""))
	assert.Equal(t, SVGNamespace, root.SelectAttrValue("xmlns", ""))
	assert.Equal(t, "400px", root.SelectAttrValue("width", ""))
	assert.Equal(t, "chart", root.SelectAttrValue("id", ""))

	children := root.ChildElements()
	require.Len(t, children, 2)
	assert.Equal(t, "g", children[0].Tag)
	assert.Equal(t, "axes", children[0].SelectAttrValue("id", ""))
	require.Len(t, children[0].ChildElements(), 1)
	assert.Equal(t, "axis", children[0].ChildElements()[0].SelectAttrValue("class", ""))
	assert.Equal(t, "text", children[1].Tag)
	assert.Equal(t, "title", children[1].Text())
}

func TestContainerErrors(t *testing.T) {
	g := NewGroup(NewLine(Number(1), Number(2)))
	for ok := 0; ok < 3; ok++ {
		assert.Same(t, errSink, g.Write(&failingWriter{ok: ok}))
	}
	fw := &failingWriter{ok: 2}
	_ = g.Write(fw)
	assert.Equal(t, "<g><line x='1' y='2' />", fw.buf.String())
}

func TestBounds(t *testing.T) {
	assert.Equal(t, "-1.5 0 10 20.25", Bounds{X: -1.5, W: 10, H: 20.25}.String())
}
