// Package pattern draws the panel test pattern: a border, both diagonals
// and the display resolution, used to check wiring and pixel mapping of a
// new panel chain.
package pattern

import (
	"strconv"

	"tinygo.org/x/tinyfont"

	"github.com/taigrr/facet/pkg/render"
)

// Draw paints the full test pattern into fb: diagonals in lit, the border in
// shadow over them, then the centered "WxH" label in lit.
func Draw(fb *render.Framebuffer, shadow, lit render.RGB) {
	DrawCross(fb, lit.Pack())
	fb.DrawRectOutline(0, 0, fb.Width, fb.Height, shadow.Pack())
	DrawLabel(fb, Label(fb.Width, fb.Height), lit)
}

// DrawCross draws both diagonals, stepping along the shorter side so each
// step lights exactly one pixel per diagonal.
func DrawCross(fb *render.Framebuffer, c uint32) {
	n := min(fb.Width, fb.Height)
	for i := range n {
		x := i * fb.Width / n
		y := i * fb.Height / n
		fb.Set(x, y, c)
		fb.Set(fb.Width-1-x, y, c)
	}
}

// Label formats a resolution as "WxH".
func Label(width, height int) string {
	return strconv.Itoa(width) + "x" + strconv.Itoa(height)
}

// TextWidth returns the advance width of s in Font.
func TextWidth(s string) int {
	_, outbox := tinyfont.LineWidth(Font, s)
	return int(outbox)
}

// DrawLabel draws s centered in fb.
func DrawLabel(fb *render.Framebuffer, s string, c render.RGB) {
	x := (fb.Width - TextWidth(s)) / 2
	y := (fb.Height - glyphHeight) / 2
	DrawText(fb, s, x, y, c)
}

// DrawText draws s with its top-left corner at (x, y).
func DrawText(fb *render.Framebuffer, s string, x, y int, c render.RGB) {
	tinyfont.WriteLine(render.NewCanvas(fb), Font, int16(x), int16(y+glyphHeight-1), s, c.ToRGBA())
}
