// Package palette holds the named color schemes the scene cycles through.
package palette

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Palette is a background color plus the colors new particles pick from.
type Palette struct {
	Name       string
	Background color.NRGBA
	Colors     []color.NRGBA
}

// Spec is the textual form of a palette as it appears in config files.
type Spec struct {
	Name       string   `yaml:"name"`
	Background string   `yaml:"background"`
	Colors     []string `yaml:"colors"`
}

var builtinSpecs = []Spec{
	{
		Name:       "sunrise",
		Background: "#FFF8E1",
		Colors:     []string{"#FFD70080", "#FFA50070", "#FFEB3B70", "#FFC10770"},
	},
	{
		Name:       "lemonade",
		Background: "#FFFDE7",
		Colors:     []string{"#FFECB370", "#FF8F0070", "#FFE08270", "#FFD18070"},
	},
}

// BuiltinSpecs returns a copy of the default palette definitions.
func BuiltinSpecs() []Spec {
	out := make([]Spec, len(builtinSpecs))
	for i, s := range builtinSpecs {
		out[i] = Spec{Name: s.Name, Background: s.Background, Colors: append([]string(nil), s.Colors...)}
	}
	return out
}

// Builtin returns the default palettes.
func Builtin() []Palette {
	ps, err := Compile(builtinSpecs)
	if err != nil {
		panic(err)
	}
	return ps
}

// Compile parses specs into palettes. The list must not be empty and every
// palette needs at least one particle color.
func Compile(specs []Spec) ([]Palette, error) {
	if len(specs) == 0 {
		return nil, errors.New("palette: no palettes defined")
	}
	out := make([]Palette, 0, len(specs))
	for i, s := range specs {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("#%d", i)
		}
		bg, err := Parse(s.Background)
		if err != nil {
			return nil, fmt.Errorf("palette %s: background: %w", name, err)
		}
		if len(s.Colors) == 0 {
			return nil, fmt.Errorf("palette %s: no colors", name)
		}
		p := Palette{Name: name, Background: bg, Colors: make([]color.NRGBA, 0, len(s.Colors))}
		for _, hex := range s.Colors {
			c, err := Parse(hex)
			if err != nil {
				return nil, fmt.Errorf("palette %s: %w", name, err)
			}
			p.Colors = append(p.Colors, c)
		}
		out = append(out, p)
	}
	return out, nil
}

// Parse reads "#RRGGBB" or "#RRGGBBAA". Without an alpha byte the color is opaque.
func Parse(hex string) (color.NRGBA, error) {
	s := strings.TrimSpace(hex)
	alpha := uint8(0xff)
	switch len(s) {
	case 7:
	case 9:
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("color %q: bad alpha: %w", hex, err)
		}
		alpha = uint8(a)
		s = s[:7]
	default:
		return color.NRGBA{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", hex)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha}, nil
}
