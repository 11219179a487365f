package render

import (
	"errors"
	"image/color"
	"testing"

	"tinygo.org/x/drivers"
)

// fakeDisplay records pixels the way an LED panel driver would.
type fakeDisplay struct {
	w, h     int16
	pixels   map[[2]int16]color.RGBA
	displays int
	err      error
}

var _ drivers.Displayer = (*fakeDisplay)(nil)

func newFakeDisplay(w, h int16) *fakeDisplay {
	return &fakeDisplay{w: w, h: h, pixels: make(map[[2]int16]color.RGBA)}
}

func (d *fakeDisplay) Size() (x, y int16) { return d.w, d.h }

func (d *fakeDisplay) SetPixel(x, y int16, c color.RGBA) {
	d.pixels[[2]int16{x, y}] = c
}

func (d *fakeDisplay) Display() error {
	d.displays++
	return d.err
}

func TestPresent(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	fb.Set(1, 2, RGB{1, 2, 3}.Pack())

	d := newFakeDisplay(3, 5)
	if err := Present(fb, d); err != nil {
		t.Fatalf("Present() error = %v", err)
	}

	if d.displays != 1 {
		t.Errorf("Display called %d times, want 1", d.displays)
	}
	// Clipped to 3 wide by 4 high.
	if len(d.pixels) != 12 {
		t.Errorf("SetPixel called for %d pixels, want 12", len(d.pixels))
	}
	if got := d.pixels[[2]int16{1, 2}]; got != (color.RGBA{1, 2, 3, 255}) {
		t.Errorf("pixel (1,2) = %v", got)
	}
	if got, ok := d.pixels[[2]int16{0, 0}]; !ok || got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("black pixel = %v, %v; want opaque black sent", got, ok)
	}
}

func TestPresentDisplayError(t *testing.T) {
	boom := errors.New("spi timeout")
	d := newFakeDisplay(2, 2)
	d.err = boom
	if err := Present(NewFramebuffer(2, 2), d); !errors.Is(err, boom) {
		t.Errorf("Present() error = %v, want wrapped %v", err, boom)
	}
}

func TestCanvas(t *testing.T) {
	fb := NewFramebuffer(5, 4)
	c := NewCanvas(fb)

	if w, h := c.Size(); w != 5 || h != 4 {
		t.Errorf("Size() = %d, %d, want 5, 4", w, h)
	}
	c.SetPixel(4, 3, color.RGBA{9, 8, 7, 0})
	c.SetPixel(9, 9, color.RGBA{255, 255, 255, 255})
	if got := fb.At(4, 3); got != 0x090807 {
		t.Errorf("At(4,3) = %06x, want 090807", got)
	}
	if err := c.Display(); err != nil {
		t.Errorf("Display() error = %v", err)
	}
}

func TestPresentCanvasRoundTrip(t *testing.T) {
	src := NewRenderer(16, 16)
	src.RenderMesh(screenQuad(16, 16, 2, 2, 12, 12))

	dst := NewFramebuffer(16, 16)
	if err := Present(src.Framebuffer(), NewCanvas(dst)); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	for i := range dst.Pixels {
		if dst.Pixels[i] != src.Framebuffer().Pixels[i] {
			t.Fatalf("pixel %d differs after round trip", i)
		}
	}
}
