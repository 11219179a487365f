package pattern

import (
	"testing"

	"github.com/taigrr/facet/pkg/render"
)

var (
	shadow = render.ColorGray
	lit    = render.ColorCream
)

func TestLabel(t *testing.T) {
	tests := []struct {
		w, h int
		want string
	}{
		{32, 32, "32x32"},
		{192, 64, "192x64"},
		{8, 16, "8x16"},
	}
	for _, tt := range tests {
		if got := Label(tt.w, tt.h); got != tt.want {
			t.Errorf("Label(%d, %d) = %q, want %q", tt.w, tt.h, got, tt.want)
		}
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("64x32"); got != 20 {
		t.Errorf("TextWidth = %d, want 20", got)
	}
}

func TestDrawText(t *testing.T) {
	fb := render.NewFramebuffer(8, 6)
	DrawText(fb, "1", 1, 0, lit)

	// '1' is 010 / 110 / 010 / 010 / 111.
	want := []string{
		"..#.....",
		".##.....",
		"..#.....",
		"..#.....",
		".###....",
		"........",
	}
	for y, row := range want {
		for x, ch := range row {
			on := fb.At(x, y) == lit.Pack()
			if on != (ch == '#') {
				t.Errorf("pixel (%d,%d) on = %v, want %v", x, y, on, ch == '#')
			}
		}
	}
}

func TestDrawTextUnknownRune(t *testing.T) {
	fb := render.NewFramebuffer(8, 6)
	DrawText(fb, "?", 0, 0, lit)
	for i, p := range fb.Pixels {
		if p != 0 {
			t.Fatalf("pixel %d drawn for unknown rune", i)
		}
	}
}

func TestDrawBorderAndCorners(t *testing.T) {
	fb := render.NewFramebuffer(32, 16)
	Draw(fb, shadow, lit)

	for x := 0; x < fb.Width; x++ {
		if fb.At(x, 0) != shadow.Pack() || fb.At(x, fb.Height-1) != shadow.Pack() {
			t.Fatalf("border missing at column %d", x)
		}
	}
	for y := 0; y < fb.Height; y++ {
		if fb.At(0, y) != shadow.Pack() || fb.At(fb.Width-1, y) != shadow.Pack() {
			t.Fatalf("border missing at row %d", y)
		}
	}
}

func TestDrawCross(t *testing.T) {
	fb := render.NewFramebuffer(32, 16)
	DrawCross(fb, lit.Pack())

	// Step i lands on (2i, i) and (31-2i, i).
	for i := range 16 {
		if fb.At(2*i, i) != lit.Pack() {
			t.Errorf("main diagonal missing at step %d", i)
		}
		if fb.At(31-2*i, i) != lit.Pack() {
			t.Errorf("anti diagonal missing at step %d", i)
		}
	}
}

func TestDrawLabelCentered(t *testing.T) {
	fb := render.NewFramebuffer(32, 32)
	DrawLabel(fb, "32x32", lit)

	// 20 pixels wide starting at x=6, 5 rows starting at y=13.
	minX, maxX, minY, maxY := fb.Width, -1, fb.Height, -1
	for y := 0; y < fb.Height; y++ {
		for x := 0; x < fb.Width; x++ {
			if fb.At(x, y) == 0 {
				continue
			}
			minX, maxX = min(minX, x), max(maxX, x)
			minY, maxY = min(minY, y), max(maxY, y)
		}
	}
	// The last glyph '2' fills all three columns, so ink ends at 6+16+2.
	if minX != 6 || maxX != 24 || minY != 13 || maxY != 17 {
		t.Errorf("label ink spans x %d..%d y %d..%d, want 6..24, 13..17", minX, maxX, minY, maxY)
	}
}
