package render

import (
	"image/color"

	uv "github.com/charmbracelet/ultraviolet"
)

// halfBlock is the upper half block glyph: fg paints the top pixel and bg
// paints the bottom one.
const halfBlock = "▀"

// Draw paints the framebuffer onto scr inside area using half-block cells,
// so each terminal row shows two framebuffer rows. The framebuffer height
// should be 2x the area height. Black pixels are left unstyled so the
// terminal background shows through, the way an unlit LED looks.
func (fb *Framebuffer) Draw(scr uv.Screen, area uv.Rectangle) {
	for row := area.Min.Y; row < area.Max.Y; row++ {
		topY := (row - area.Min.Y) * 2
		botY := topY + 1
		if topY >= fb.Height {
			break
		}

		for col := area.Min.X; col < area.Max.X; col++ {
			x := col - area.Min.X
			if x >= fb.Width {
				break
			}

			cell := &uv.Cell{
				Content: halfBlock,
				Width:   1,
				Style: uv.Style{
					Fg: packedToColor(fb.At(x, topY)),
					Bg: packedToColor(fb.At(x, botY)),
				},
			}
			scr.SetCell(col, row, cell)
		}
	}
}

// TerminalSize returns the framebuffer size that fills a cols x rows
// terminal area with half-block cells.
func TerminalSize(cols, rows int) (width, height int) {
	return cols, rows * 2
}

// packedToColor converts a packed pixel to a terminal color. Black maps to
// nil (no color).
func packedToColor(p uint32) color.Color {
	if p&0xffffff == 0 {
		return nil
	}
	return Unpack(p).ToRGBA()
}
