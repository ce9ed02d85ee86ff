package uikit

import (
	"math"

	"github.com/gogpu/gputypes"
)

// Color is a linear-space RGBA color. Each component is in the range
// [0, 1]. All colors handed to the GPU go through this type; sRGB input
// (hex strings, 8-bit channels) is converted on construction.
type Color struct {
	R, G, B, A float32
}

// Transparent is the zero Color: transparent black. Invalid color input
// parses to Transparent rather than producing an error.
var Transparent = Color{}

// srgb8ToLinear maps an 8-bit sRGB channel value to its linear-space float.
// Built once at init; hex parsing is on the per-frame style path and the
// table avoids a Pow per channel.
var srgb8ToLinear [256]float32

func init() {
	for i := range srgb8ToLinear {
		srgb8ToLinear[i] = SRGBToLinear(float32(i) / 255.0)
	}
}

// SRGBToLinear converts a single sRGB channel in [0,1] to linear space.
func SRGBToLinear(c float32) float32 {
	if c <= 0.04045 {
		return c / 12.92
	}
	return float32(math.Pow(float64(c+0.055)/1.055, 2.4))
}

// LinearToSRGB converts a single linear channel in [0,1] to sRGB space.
func LinearToSRGB(c float32) float32 {
	if c <= 0.0031308 {
		return c * 12.92
	}
	return 1.055*float32(math.Pow(float64(c), 1.0/2.4)) - 0.055
}

// Hex parses a hex color string into a linear-space Color.
//
// Accepted forms are "#RGB", "#RGBA", "#RRGGBB" and "#RRGGBBAA",
// case-insensitive. Three- and four-digit forms repeat each nibble
// ("#abc" parses as "#aabbcc"). Anything else — wrong length, missing
// '#', non-hex digits — yields Transparent.
//
// RGB channels are converted from sRGB to linear space; alpha is linear
// already and is only scaled to [0,1].
func Hex(hex string) Color {
	r8, g8, b8, a8, ok := parseHexRGBA(hex)
	if !ok {
		return Transparent
	}
	return Color{
		R: srgb8ToLinear[r8],
		G: srgb8ToLinear[g8],
		B: srgb8ToLinear[b8],
		A: float32(a8) / 255.0,
	}
}

func parseHexRGBA(hex string) (r, g, b, a uint8, ok bool) {
	n := len(hex)
	if n == 0 || hex[0] != '#' {
		return 0, 0, 0, 0, false
	}
	if n != 4 && n != 5 && n != 7 && n != 9 {
		return 0, 0, 0, 0, false
	}
	for i := 1; i < n; i++ {
		if !isHexDigit(hex[i]) {
			return 0, 0, 0, 0, false
		}
	}
	a = 255
	switch n {
	case 4, 5:
		r = hexNibble(hex[1]) * 17
		g = hexNibble(hex[2]) * 17
		b = hexNibble(hex[3]) * 17
		if n == 5 {
			a = hexNibble(hex[4]) * 17
		}
	case 7, 9:
		r = hexNibble(hex[1])<<4 | hexNibble(hex[2])
		g = hexNibble(hex[3])<<4 | hexNibble(hex[4])
		b = hexNibble(hex[5])<<4 | hexNibble(hex[6])
		if n == 9 {
			a = hexNibble(hex[7])<<4 | hexNibble(hex[8])
		}
	}
	return r, g, b, a, true
}

func isHexDigit(c byte) bool {
	return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
}

func hexNibble(c byte) uint8 {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'a' <= c && c <= 'f':
		return c - 'a' + 10
	default:
		return c - 'A' + 10
	}
}

// RGBA returns the color as a 4-element array, in linear space.
func (c Color) RGBA() [4]float32 {
	return [4]float32{c.R, c.G, c.B, c.A}
}

// GPU converts the color to the gputypes clear-color representation.
func (c Color) GPU() gputypes.Color {
	return gputypes.Color{
		R: float64(c.R),
		G: float64(c.G),
		B: float64(c.B),
		A: float64(c.A),
	}
}

// Premultiply returns the color with RGB scaled by alpha. GPU blend
// states in uikit expect premultiplied colors.
func (c Color) Premultiply() Color {
	return Color{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Lerp linearly interpolates between c and other in linear space.
// t is clamped to [0, 1].
func (c Color) Lerp(other Color, t float32) Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}
