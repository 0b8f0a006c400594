// Package scene decodes declarative drawings, written in TOML or YAML,
// into svgelem documents.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/HaKr/svgrs/internal/logging"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/net/html/charset"
	"gopkg.in/yaml.v3"
)

// Format is the syntax of a scene file.
type Format uint8

const (
	FormatTOML Format = iota
	FormatYAML
)

var ErrUnknownFormat = errors.New("unknown scene format")

func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	}
	return fmt.Sprintf("<invalid format %d>", f)
}

// ParseFormat accepts "toml", "yaml" and "yml".
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// FormatFromPath guesses the format from the file extension.
func FormatFromPath(path string) (Format, error) {
	return ParseFormat(filepath.Ext(path))
}

// Scene is the content of a scene file.
type Scene struct {
	Width    string        `toml:"width" yaml:"width"`
	Height   string        `toml:"height" yaml:"height"`
	ViewBox  []float64     `toml:"viewbox" yaml:"viewbox"`
	ID       string        `toml:"id" yaml:"id"`
	Elements []ElementSpec `toml:"element" yaml:"element"`
}

// ElementSpec describes one element. Which fields are used
// depends on Kind:
//   - line: X, Y
//   - text: X, Y, Body
//   - circle, ellipse, rect, roundrect, polyline, polygon: Params (and Gap for roundrect)
//   - group: Children
type ElementSpec struct {
	Kind     string        `toml:"kind" yaml:"kind"`
	X        string        `toml:"x" yaml:"x"`
	Y        string        `toml:"y" yaml:"y"`
	Body     string        `toml:"body" yaml:"body"`
	Params   []float64     `toml:"params" yaml:"params"`
	Gap      string        `toml:"gap" yaml:"gap"`
	ID       string        `toml:"id" yaml:"id"`
	Class    []string      `toml:"class" yaml:"class"`
	TabIndex *int          `toml:"tabindex" yaml:"tabindex"`
	Children []ElementSpec `toml:"children" yaml:"children"`
}

// Decode reads a scene in the given format.
func Decode(r io.Reader, format Format) (*Scene, error) {
	var s Scene
	switch format {
	case FormatTOML:
		if err := toml.NewDecoder(r).DisallowUnknownFields().Decode(&s); err != nil {
			return nil, fmt.Errorf("decoding toml scene: %w", err)
		}
	case FormatYAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decoding yaml scene: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	return &s, nil
}

// Load opens and decodes the scene file at `path`.
// If `charsetLabel` is not empty, the file is converted
// from this encoding (such as "latin1" or "windows-1252") to UTF-8.
func Load(path string, format Format, charsetLabel string) (*Scene, error) {
	logger := logging.GetLogger("scene")

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var r io.Reader = f
	if charsetLabel != "" {
		r, err = charset.NewReaderLabel(charsetLabel, f)
		if err != nil {
			return nil, fmt.Errorf("scene %s: %w", path, err)
		}
	}

	logger.Debug().
		Str("path", path).
		Stringer("format", format).
		Str("charset", charsetLabel).
		Msg("Loading scene")

	s, err := Decode(r, format)
	if err != nil {
		return nil, fmt.Errorf("scene %s: %w", path, err)
	}
	logger.Info().Str("path", path).Int("elements", len(s.Elements)).Msg("Scene loaded")
	return s, nil
}
