package render

import (
	"fmt"
	"image/color"
	"math"

	"tinygo.org/x/drivers"
)

// Present copies fb to d pixel by pixel and then flushes it with Display.
// Only the region both sides cover is copied. Black pixels are sent too, so
// a panel never keeps stale pixels from the previous frame.
func Present(fb *Framebuffer, d drivers.Displayer) error {
	dw, dh := d.Size()
	w := min(fb.Width, int(dw))
	h := min(fb.Height, int(dh))
	for y := range h {
		row := fb.Row(y)
		for x := range w {
			d.SetPixel(int16(x), int16(y), Unpack(row[x]).ToRGBA())
		}
	}
	if err := d.Display(); err != nil {
		return fmt.Errorf("display frame: %w", err)
	}
	return nil
}

// Canvas adapts a Framebuffer to the drivers.Displayer interface so driver
// ecosystem code (fonts, shapes) can draw into it. Display is a no-op.
type Canvas struct {
	FB *Framebuffer
}

var _ drivers.Displayer = Canvas{}

// NewCanvas wraps fb.
func NewCanvas(fb *Framebuffer) Canvas {
	return Canvas{FB: fb}
}

// Size implements drivers.Displayer. Dimensions beyond int16 are clipped.
func (c Canvas) Size() (x, y int16) {
	return int16(min(c.FB.Width, math.MaxInt16)), int16(min(c.FB.Height, math.MaxInt16))
}

// SetPixel implements drivers.Displayer. Alpha is ignored.
func (c Canvas) SetPixel(x, y int16, col color.RGBA) {
	c.FB.Set(int(x), int(y), FromRGBA(col).Pack())
}

// Display implements drivers.Displayer.
func (c Canvas) Display() error {
	return nil
}
