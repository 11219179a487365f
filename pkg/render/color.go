package render

import (
	"image/color"
	"math"
)

// RGB is an 8-bit per channel color with no alpha.
type RGB struct {
	R, G, B uint8
}

// Colors for convenience
var (
	ColorBlack  = RGB{0, 0, 0}
	ColorWhite  = RGB{255, 255, 255}
	ColorRed    = RGB{255, 0, 0}
	ColorGreen  = RGB{0, 255, 0}
	ColorBlue   = RGB{0, 0, 255}
	ColorGray   = RGB{100, 100, 100}
	ColorCream  = RGB{255, 255, 200}
	ColorYellow = RGB{255, 255, 0}
)

// Pack encodes c as R<<16 | G<<8 | B.
func (c RGB) Pack() uint32 {
	return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// Unpack decodes a packed 24-bit color. Bits above 23 are ignored.
func Unpack(p uint32) RGB {
	return RGB{
		R: uint8(p >> 16 & 0xff),
		G: uint8(p >> 8 & 0xff),
		B: uint8(p & 0xff),
	}
}

// Lerp interpolates each channel from c toward to by t, rounding to the
// nearest integer. t is clamped to [0, 1].
func (c RGB) Lerp(to RGB, t float64) RGB {
	t = clamp01(t)
	return RGB{
		R: lerpChannel(c.R, to.R, t),
		G: lerpChannel(c.G, to.G, t),
		B: lerpChannel(c.B, to.B, t),
	}
}

// ToRGBA returns c as an opaque color.RGBA.
func (c RGB) ToRGBA() color.RGBA {
	return color.RGBA{c.R, c.G, c.B, 255}
}

// FromRGBA drops the alpha channel of c.
func FromRGBA(c color.RGBA) RGB {
	return RGB{c.R, c.G, c.B}
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t
	return uint8(math.Round(v))
}

func clamp01(t float64) float64 {
	if t != t || t < 0 { // NaN shades dark
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
