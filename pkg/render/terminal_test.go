package render

import (
	"testing"

	uv "github.com/charmbracelet/ultraviolet"
)

func TestFramebufferDrawHalfBlocks(t *testing.T) {
	fb := NewFramebuffer(3, 4)
	fb.Set(0, 0, ColorRed.Pack())
	fb.Set(0, 1, ColorBlue.Pack())
	fb.Set(2, 3, ColorGreen.Pack())

	scr := uv.NewScreenBuffer(3, 2)
	fb.Draw(scr, scr.Bounds())

	tests := []struct {
		name   string
		x, y   int
		fg, bg RGB
		fgNil  bool
		bgNil  bool
	}{
		{name: "red over blue", x: 0, y: 0, fg: ColorRed, bg: ColorBlue},
		{name: "both black", x: 1, y: 0, fgNil: true, bgNil: true},
		{name: "black over green", x: 2, y: 1, fgNil: true, bg: ColorGreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cell := scr.CellAt(tt.x, tt.y)
			if cell == nil {
				t.Fatal("no cell")
			}
			if cell.Content != halfBlock {
				t.Errorf("Content = %q, want %q", cell.Content, halfBlock)
			}
			if tt.fgNil != (cell.Style.Fg == nil) {
				t.Errorf("Fg = %v, nil want %v", cell.Style.Fg, tt.fgNil)
			}
			if !tt.fgNil && cell.Style.Fg != tt.fg.ToRGBA() {
				t.Errorf("Fg = %v, want %v", cell.Style.Fg, tt.fg.ToRGBA())
			}
			if tt.bgNil != (cell.Style.Bg == nil) {
				t.Errorf("Bg = %v, nil want %v", cell.Style.Bg, tt.bgNil)
			}
			if !tt.bgNil && cell.Style.Bg != tt.bg.ToRGBA() {
				t.Errorf("Bg = %v, want %v", cell.Style.Bg, tt.bg.ToRGBA())
			}
		})
	}
}

func TestFramebufferDrawOffsetArea(t *testing.T) {
	fb := NewFramebuffer(1, 2)
	fb.Set(0, 0, ColorWhite.Pack())

	scr := uv.NewScreenBuffer(4, 3)
	fb.Draw(scr, uv.Rect(2, 1, 2, 2))

	if got := scr.CellAt(2, 1); got == nil || got.Style.Fg != ColorWhite.ToRGBA() {
		t.Errorf("cell (2,1) = %+v, want white fg", got)
	}
	// Column 3 is past the framebuffer width and row 2 past its height.
	if got := scr.CellAt(3, 1); got != nil && got.Content == halfBlock {
		t.Error("drew past framebuffer width")
	}
	if got := scr.CellAt(2, 2); got != nil && got.Content == halfBlock {
		t.Error("drew past framebuffer height")
	}
}

func TestTerminalSize(t *testing.T) {
	w, h := TerminalSize(80, 24)
	if w != 80 || h != 48 {
		t.Errorf("TerminalSize(80, 24) = %d, %d, want 80, 48", w, h)
	}
}
