package core

import (
	"image/color"

	"github.com/chewxy/math32"
)

// Color is a linear RGB triple
type Color struct {
	R, G, B float32
}

var (
	Black = Color{0, 0, 0}
	White = Color{1, 1, 1}
)

// NewColor creates a new Color
func NewColor(r, g, b float32) Color {
	return Color{R: r, G: g, B: b}
}

// Gray returns a color with all channels set to v
func Gray(v float32) Color {
	return Color{v, v, v}
}

func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Multiply scales every channel
func (c Color) Multiply(scalar float32) Color {
	return Color{c.R * scalar, c.G * scalar, c.B * scalar}
}

// MultiplyColor multiplies channel by channel
func (c Color) MultiplyColor(other Color) Color {
	return Color{c.R * other.R, c.G * other.G, c.B * other.B}
}

func (c Color) Divide(scalar float32) Color {
	return Color{c.R / scalar, c.G / scalar, c.B / scalar}
}

// Clamp limits every channel to [0, 1]
func (c Color) Clamp() Color {
	return Color{Clamp(c.R, 0, 1), Clamp(c.G, 0, 1), Clamp(c.B, 0, 1)}
}

// IsBlack reports whether every channel is zero or below
func (c Color) IsBlack() bool {
	return c.R <= 0 && c.G <= 0 && c.B <= 0
}

// Luminance returns the perceptual luminance
func (c Color) Luminance() float32 {
	return 0.299*c.R + 0.587*c.G + 0.114*c.B
}

// RGB8 converts to 8-bit channels as round(clamp(c, 0, 1) * 255)
func (c Color) RGB8() [3]uint8 {
	return [3]uint8{to8(c.R), to8(c.G), to8(c.B)}
}

// ToRGBA converts to an opaque image/color value
func (c Color) ToRGBA() color.RGBA {
	rgb := c.RGB8()
	return color.RGBA{R: rgb[0], G: rgb[1], B: rgb[2], A: 255}
}

func to8(v float32) uint8 {
	// NaN survives Clamp
	if math32.IsNaN(v) {
		return 0
	}
	return uint8(math32.Floor(Clamp(v, 0, 1)*255 + 0.5))
}
