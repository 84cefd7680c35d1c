// Package rgb holds the linear-light color model used for shading.
package rgb

import (
	"image/color"
	"math"
)

// Gamma is the exponent between display-space and linear components.
const Gamma = 2.2

// Color is an RGB triple in linear light. Arithmetic happens in linear
// space; values are only clamped when converted to a display pixel.
type Color struct {
	R, G, B float64
}

// RGB builds a Color from display-space components in [0,1].
func RGB(r, g, b float64) Color {
	return Color{R: Decode(r), G: Decode(g), B: Decode(b)}
}

// Linear builds a Color from components that are already linear.
func Linear(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Black is the additive identity.
func Black() Color {
	return Color{}
}

func (c Color) Add(o Color) Color {
	return Color{c.R + o.R, c.G + o.G, c.B + o.B}
}

func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// Encode maps a linear component to display space.
func Encode(linear float64) float64 {
	return math.Pow(linear, 1/Gamma)
}

// Decode maps a display-space component to linear light.
func Decode(encoded float64) float64 {
	return math.Pow(encoded, Gamma)
}

// to8 gamma-encodes, scales to [0,255] and truncates.
func to8(linear float64) uint8 {
	v := Encode(linear) * 255
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// NRGBA converts to an opaque 8-bit pixel in R,G,B,A order.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: 255}
}

// BGRA converts to the B,G,R,A byte layout used by 32-bit window
// framebuffers.
func (c Color) BGRA() [4]uint8 {
	return [4]uint8{to8(c.B), to8(c.G), to8(c.R), 255}
}
