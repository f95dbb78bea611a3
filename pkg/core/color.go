package core

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a packed RGBA8 value. R occupies bits 0-7, G 8-15, B 16-23 and
// A 24-31, so the little-endian byte order of a Color is R, G, B, A.
type Color uint32

// Channel indices for Color.Channel
const (
	ChannelR = iota
	ChannelG
	ChannelB
	ChannelA
)

// RGBA packs four channels into a Color
func RGBA(r, g, b, a uint8) Color {
	return Color(uint32(r) | uint32(g)<<8 | uint32(b)<<16 | uint32(a)<<24)
}

// RGB packs an opaque color
func RGB(r, g, b uint8) Color {
	return RGBA(r, g, b, 0xFF)
}

// FromRGBA converts any image/color value to a packed Color
func FromRGBA(c color.Color) Color {
	n := color.RGBAModel.Convert(c).(color.RGBA)
	return RGBA(n.R, n.G, n.B, n.A)
}

// Channel extracts channel i (0=R, 1=G, 2=B, 3=A)
func (c Color) Channel(i int) uint8 {
	return uint8(uint32(c) >> (8 * uint(i)) & 0xFF)
}

// R returns the red channel
func (c Color) R() uint8 { return c.Channel(ChannelR) }

// G returns the green channel
func (c Color) G() uint8 { return c.Channel(ChannelG) }

// B returns the blue channel
func (c Color) B() uint8 { return c.Channel(ChannelB) }

// A returns the alpha channel
func (c Color) A() uint8 { return c.Channel(ChannelA) }

// Add returns the per-channel saturating sum of two colors. The result is opaque.
func (c Color) Add(other Color) Color {
	return RGB(
		clampChannel(float64(c.R())+float64(other.R())),
		clampChannel(float64(c.G())+float64(other.G())),
		clampChannel(float64(c.B())+float64(other.B())),
	)
}

// Scale multiplies every color channel by k, rounding and saturating to [0,255].
// The result is opaque.
func (c Color) Scale(k float64) Color {
	return RGB(
		clampChannel(math.Round(float64(c.R())*k)),
		clampChannel(math.Round(float64(c.G())*k)),
		clampChannel(math.Round(float64(c.B())*k)),
	)
}

// RGBAColor returns the color as a standard library color.RGBA
func (c Color) RGBAColor() color.RGBA {
	return color.RGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// String formats the color as #rrggbbaa
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R(), c.G(), c.B(), c.A())
}

// clampChannel saturates v to a channel byte. NaN maps to 0.
func clampChannel(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
