package render

import (
	"image"
)

// Framebuffer is a fixed-size grid of packed 24-bit colors (R<<16|G<<8|B),
// stored row-major and addressed by y*Width+x. Zero is black.
type Framebuffer struct {
	Width  int
	Height int
	Pixels []uint32
}

// NewFramebuffer creates a black framebuffer. Negative dimensions are
// treated as zero.
func NewFramebuffer(width, height int) *Framebuffer {
	width = max(width, 0)
	height = max(height, 0)
	return &Framebuffer{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// Clear resets every pixel to black.
func (fb *Framebuffer) Clear() {
	clear(fb.Pixels)
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c uint32) {
	n := len(fb.Pixels)
	if n == 0 {
		return
	}
	fb.Pixels[0] = c
	for i := 1; i < n; i *= 2 {
		copy(fb.Pixels[i:], fb.Pixels[:i])
	}
}

// In reports whether (x, y) lies inside the framebuffer.
func (fb *Framebuffer) In(x, y int) bool {
	return x >= 0 && x < fb.Width && y >= 0 && y < fb.Height
}

// Set writes c at (x, y). Out of bounds writes are ignored.
func (fb *Framebuffer) Set(x, y int, c uint32) {
	if !fb.In(x, y) {
		return
	}
	fb.Pixels[y*fb.Width+x] = c
}

// At returns the packed color at (x, y), or black if out of bounds.
func (fb *Framebuffer) At(x, y int) uint32 {
	if !fb.In(x, y) {
		return 0
	}
	return fb.Pixels[y*fb.Width+x]
}

// Row returns row y as a slice aliasing the pixel storage.
func (fb *Framebuffer) Row(y int) []uint32 {
	if y < 0 || y >= fb.Height {
		return nil
	}
	return fb.Pixels[y*fb.Width : (y+1)*fb.Width]
}

// DrawLine draws a line from (x0, y0) to (x1, y1) using Bresenham's algorithm.
func (fb *Framebuffer) DrawLine(x0, y0, x1, y1 int, c uint32) {
	dx := abs(x1 - x0)
	dy := -abs(y1 - y0)
	sx := 1
	if x0 > x1 {
		sx = -1
	}
	sy := 1
	if y0 > y1 {
		sy = -1
	}
	err := dx + dy

	for {
		fb.Set(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// DrawRectOutline draws a one pixel rectangle outline.
func (fb *Framebuffer) DrawRectOutline(x, y, w, h int, c uint32) {
	if w <= 0 || h <= 0 {
		return
	}
	for px := x; px < x+w; px++ {
		fb.Set(px, y, c)
		fb.Set(px, y+h-1, c)
	}
	for py := y; py < y+h; py++ {
		fb.Set(x, py, c)
		fb.Set(x+w-1, py, c)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// ToImage converts the framebuffer to an opaque image.RGBA.
func (fb *Framebuffer) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			img.SetRGBA(x, y, Unpack(fb.Pixels[y*fb.Width+x]).ToRGBA())
		}
	}
	return img
}

// Snapshot returns a copy of the pixel data.
func (fb *Framebuffer) Snapshot() []uint32 {
	return append([]uint32(nil), fb.Pixels...)
}
