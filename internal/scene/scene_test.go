package scene

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/HaKr/svgrs/svgelem"
	"github.com/beevik/etree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tomlScene = `
width = "400px"
height = "300px"
viewbox = [0, 0, 400, 300]
id = "chart"

[[element]]
kind = "line"
x = "100"
y = "200"
id = "jjdk"
class = ["axis", "x-axis"]
tabindex = 1

[[element]]
kind = "text"
x = "20"
y = "30"
body = "My cat is Grumpy!"
id = "grumpy-cat"

[[element]]
kind = "group"
class = ["shapes"]

[[element.children]]
kind = "rect"
params = [0, 0, 10, 10]

[[element.children]]
kind = "circle"
params = [50, 50, 10]
class = ["dot"]
`

const yamlScene = `
width: 400px
height: 300px
viewbox: [0, 0, 400, 300]
id: chart
element:
  - kind: line
    x: "100"
    y: "200"
    id: jjdk
    class: [axis, x-axis]
    tabindex: 1
  - kind: text
    x: "20"
    y: "30"
    body: My cat is Grumpy!
    id: grumpy-cat
  - kind: group
    class: [shapes]
    children:
      - kind: rect
        params: [0, 0, 10, 10]
      - kind: circle
        params: [50, 50, 10]
        class: [dot]
`

func checkScene(t *testing.T, s *Scene) {
	t.Helper()
	doc, err := Build(s)
	require.NoError(t, err)

	out, err := svgelem.Marshal(doc)
	require.NoError(t, err)
	assert.Contains(t, string(out), "<text x='20' y='30' id='grumpy-cat'>My cat is Grumpy!</text>")
	assert.Contains(t, string(out), "<path d='M0,0 L10,0 L10,10 L0,10 Z' />")

	tree := etree.NewDocument()
	require.NoError(t, tree.ReadFromBytes(out))
	root := tree.Root()
	assert.Equal(t, "0 0 400 300", root.SelectAttrValue("viewBox", ""))
	assert.Equal(t, "300px", root.SelectAttrValue("height", ""))
	assert.Equal(t, "chart", root.SelectAttrValue("id", ""))

	children := root.ChildElements()
	require.Len(t, children, 3)
	line := children[0]
	assert.Equal(t, "line", line.Tag)
	assert.Equal(t, "axis x-axis", line.SelectAttrValue("class", ""))
	assert.Equal(t, "1", line.SelectAttrValue("tabindex", ""))

	group := children[2]
	assert.Equal(t, "shapes", group.SelectAttrValue("class", ""))
	shapes := group.ChildElements()
	require.Len(t, shapes, 2)
	assert.Equal(t, "dot", shapes[1].SelectAttrValue("class", ""))
	assert.True(t, strings.HasSuffix(shapes[1].SelectAttrValue("d", ""), "Z"))
}

func TestDecodeTOML(t *testing.T) {
	s, err := Decode(strings.NewReader(tomlScene), FormatTOML)
	require.NoError(t, err)
	require.Len(t, s.Elements, 3)
	checkScene(t, s)
}

func TestDecodeYAML(t *testing.T) {
	s, err := Decode(strings.NewReader(yamlScene), FormatYAML)
	require.NoError(t, err)
	require.Len(t, s.Elements, 3)
	checkScene(t, s)
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(strings.NewReader("unknown = 1"), FormatTOML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader("unknown: 1"), FormatYAML)
	assert.Error(t, err)

	_, err = Decode(strings.NewReader(""), Format(9))
	assert.ErrorIs(t, err, ErrUnknownFormat)

	s, err := Decode(strings.NewReader(""), FormatYAML)
	require.NoError(t, err)
	assert.Empty(t, s.Elements)
}

func TestFormat(t *testing.T) {
	for path, want := range map[string]Format{
		"a.toml": FormatTOML,
		"b.yaml": FormatYAML,
		"c.YML":  FormatYAML,
	} {
		f, err := FormatFromPath(path)
		require.NoError(t, err)
		assert.Equal(t, want, f)
	}
	_, err := FormatFromPath("scene.json")
	assert.ErrorIs(t, err, ErrUnknownFormat)
	assert.Equal(t, "yaml", FormatYAML.String())
}

func TestBuildErrors(t *testing.T) {
	for name, test := range map[string]struct {
		scene Scene
		err   error
	}{
		"width":        {Scene{Width: "wide"}, ErrInvalidLength},
		"height":       {Scene{Height: "1.5px"}, ErrInvalidLength},
		"viewbox":      {Scene{ViewBox: []float64{1, 2}}, errViewBox},
		"kind":         {Scene{Elements: []ElementSpec{{Kind: "star"}}}, ErrUnknownKind},
		"coordinate":   {Scene{Elements: []ElementSpec{{Kind: "line", X: "1", Y: "?"}}}, ErrInvalidLength},
		"circle":       {Scene{Elements: []ElementSpec{{Kind: "circle", Params: []float64{1, 2}}}}, errParamCount},
		"nested":       {Scene{Elements: []ElementSpec{{Kind: "group", Children: []ElementSpec{{Kind: "ellipse"}}}}}, errParamCount},
		"polygon":      {Scene{Elements: []ElementSpec{{Kind: "polygon", Params: []float64{1}}}}, nil},
		"roundrectgap": {Scene{Elements: []ElementSpec{{Kind: "roundrect", Params: []float64{0, 0, 1, 1, 1, 1}, Gap: "zigzag"}}}, nil},
	} {
		_, err := Build(&test.scene)
		if !assert.Error(t, err, name) {
			continue
		}
		if test.err != nil {
			assert.True(t, errors.Is(err, test.err), "%s: %v", name, err)
		}
	}
}

func TestBuildDefaults(t *testing.T) {
	doc, err := Build(&Scene{})
	require.NoError(t, err)
	out, err := svgelem.Marshal(doc)
	require.NoError(t, err)
	assert.Equal(t, "<svg xmlns='http://www.w3.org/2000/svg' width='100%' height='100%' />", string(out))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "scene.toml")
	// "Café" in latin1
	content := "[[element]]\nkind = \"text\"\nx = \"1\"\ny = \"2\"\nbody = \"Caf\xe9\"\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	s, err := Load(path, FormatTOML, "latin1")
	require.NoError(t, err)
	require.Len(t, s.Elements, 1)
	assert.Equal(t, "Café", s.Elements[0].Body)

	_, err = Load(path, FormatTOML, "no-such-charset")
	assert.Error(t, err)

	_, err = Load(filepath.Join(dir, "missing.toml"), FormatTOML, "")
	assert.ErrorIs(t, err, os.ErrNotExist)
}
