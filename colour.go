package tinct

import (
	"fmt"
	"strconv"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// ColourName is one of the eight classic terminal colour names. The
// constant values are the SGR code offsets (Black=0 ... White=7).
type ColourName int

const (
	Black ColourName = iota
	Red
	Green
	Yellow
	Blue
	Magenta
	Cyan
	White
)

type colourKind int

const (
	colourUnset colourKind = iota
	colourBasic
	colourPalette
	colourRGB
)

// Colour is a terminal colour in one of three forms: a classic named
// colour (dull or bright), a 256-palette index, or a 24-bit RGB
// triple. Each form has a fixed minimum [Capability]; a chunk whose
// colour needs more than the active capability renders without that
// colour. The zero value is "no colour".
type Colour struct {
	kind    colourKind
	bright  bool
	name    ColourName
	index   uint8
	r, g, b uint8
}

// Basic returns a dull classic colour. Requires [CapBasic].
func Basic(name ColourName) Colour {
	return Colour{kind: colourBasic, name: name}
}

// Bright returns a bright classic colour. Requires [CapBasic].
//
// Bright colours use the aixterm SGR codes 90-97 (foreground) and
// 100-107 (background) rather than bold plus a dull colour, so
// brightness never interacts with the bold attribute.
func Bright(name ColourName) Colour {
	return Colour{kind: colourBasic, name: name, bright: true}
}

// Palette returns a 256-palette colour. Requires [Cap256].
func Palette(index uint8) Colour {
	return Colour{kind: colourPalette, index: index}
}

// RGB returns a 24-bit colour. Requires [CapTrueColor].
func RGB(r, g, b uint8) Colour {
	return Colour{kind: colourRGB, r: r, g: g, b: b}
}

// Hex parses a "#rrggbb" or "#rgb" string into an RGB colour.
// Unparseable strings wrap [ErrInvalidColour].
func Hex(s string) (Colour, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return Colour{}, fmt.Errorf("%w: %q", ErrInvalidColour, s)
	}
	r, g, b := c.RGB255()
	return RGB(r, g, b), nil
}

// need returns the minimum capability at which the colour renders.
// The mapping is fixed: basic colours need CapBasic, palette colours
// need Cap256, RGB colours need CapTrueColor.
func (c Colour) need() Capability {
	switch c.kind {
	case colourBasic:
		return CapBasic
	case colourPalette:
		return Cap256
	case colourRGB:
		return CapTrueColor
	default:
		return CapNone
	}
}

// visibleAt reports whether the colour is set and renderable at the
// given capability.
func (c Colour) visibleAt(cap Capability) bool {
	return c.kind != colourUnset && cap >= c.need()
}

// appendParams appends the colour's SGR parameters. Foreground basic
// colours use 30-37 (dull) or 90-97 (bright); backgrounds 40-47 or
// 100-107. Palette and RGB colours use the 38/48 extended forms.
func (c Colour) appendParams(params []string, background bool) []string {
	switch c.kind {
	case colourBasic:
		base := 30
		if c.bright {
			base = 90
		}
		if background {
			base += 10
		}
		return append(params, strconv.Itoa(base+int(c.name)))
	case colourPalette:
		lead := "38"
		if background {
			lead = "48"
		}
		return append(params, lead, "5", strconv.Itoa(int(c.index)))
	case colourRGB:
		lead := "38"
		if background {
			lead = "48"
		}
		return append(params, lead, "2",
			strconv.Itoa(int(c.r)), strconv.Itoa(int(c.g)), strconv.Itoa(int(c.b)))
	default:
		return params
	}
}
