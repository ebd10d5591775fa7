package bstviz

import "image/color"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

// RGBA converts c to an 8-bit straight-alpha color, scaling alpha by the
// given opacity.
func (c Color) RGBA(opacity float64) color.NRGBA {
	return color.NRGBA{
		R: to8(c.R),
		G: to8(c.G),
		B: to8(c.B),
		A: to8(c.A * opacity),
	}
}

// Hex returns the color as "#rrggbb", ignoring alpha.
func (c Color) Hex() string {
	const digits = "0123456789abcdef"
	b := []byte("#000000")
	for i, v := range [3]uint8{to8(c.R), to8(c.G), to8(c.B)} {
		b[1+2*i] = digits[v>>4]
		b[2+2*i] = digits[v&0x0f]
	}
	return string(b)
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// hexColor builds an opaque Color from a 0xRRGGBB literal.
func hexColor(rgb uint32) Color {
	return Color{
		R: float64(rgb>>16&0xff) / 255,
		G: float64(rgb>>8&0xff) / 255,
		B: float64(rgb&0xff) / 255,
		A: 1,
	}
}

// Vec2 is a 2D point in layout space. The origin is the top-left corner with
// Y increasing downward.
type Vec2 struct {
	X, Y float64
}

// ColorState selects how a node is painted.
type ColorState uint8

const (
	StateNormal  ColorState = iota // untouched by the current search
	StateVisited                   // on the search path
	StateFound                     // terminal node matching the target
)

func (s ColorState) String() string {
	switch s {
	case StateVisited:
		return "visited"
	case StateFound:
		return "found"
	default:
		return "normal"
	}
}

// Palette holds every color a render surface needs.
type Palette struct {
	Background Color
	Node       Color
	Visited    Color
	Found      Color
	Stroke     Color
	Edge       Color
	Label      Color
	Ring       Color
	Text       Color
}

// LightPalette matches the default page theme.
var LightPalette = Palette{
	Background: hexColor(0xf4f6fb),
	Node:       hexColor(0x7da6ff),
	Visited:    hexColor(0xffd36e),
	Found:      hexColor(0x5cd68a),
	Stroke:     hexColor(0x444444),
	Edge:       hexColor(0x888888),
	Label:      hexColor(0xffffff),
	Ring:       hexColor(0xffb347),
	Text:       hexColor(0x222222),
}

// DarkPalette is the alternate theme.
var DarkPalette = Palette{
	Background: hexColor(0x16181f),
	Node:       hexColor(0x4f6fb8),
	Visited:    hexColor(0xc9a23f),
	Found:      hexColor(0x3fa86a),
	Stroke:     hexColor(0xbbbbbb),
	Edge:       hexColor(0x666666),
	Label:      hexColor(0xffffff),
	Ring:       hexColor(0xffb347),
	Text:       hexColor(0xe6e6e6),
}

// Fill returns the node fill color for a state.
func (p Palette) Fill(s ColorState) Color {
	switch s {
	case StateVisited:
		return p.Visited
	case StateFound:
		return p.Found
	default:
		return p.Node
	}
}
