package pattern

import (
	"image/color"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

// Font is a 3x5 pixel font covering the digits and 'x', sized for 16 and 32
// pixel tall panels. Every rune advances 4 pixels; runes without a glyph
// draw nothing.
//
// Glyphs are drawn with y as the baseline (the bottom row), like other
// tinyfont fonts.
var Font tinyfont.Fonter = font3x5{}

const (
	glyphWidth   = 3
	glyphHeight  = 5
	glyphAdvance = 4
)

// glyphRows holds one byte per row, bit 2 = leftmost pixel.
var glyphRows = map[rune][glyphHeight]uint8{
	'0': {0b111, 0b101, 0b101, 0b101, 0b111},
	'1': {0b010, 0b110, 0b010, 0b010, 0b111},
	'2': {0b111, 0b001, 0b111, 0b100, 0b111},
	'3': {0b111, 0b001, 0b111, 0b001, 0b111},
	'4': {0b101, 0b101, 0b111, 0b001, 0b001},
	'5': {0b111, 0b100, 0b111, 0b001, 0b111},
	'6': {0b111, 0b100, 0b111, 0b101, 0b111},
	'7': {0b111, 0b001, 0b010, 0b100, 0b100},
	'8': {0b111, 0b101, 0b111, 0b101, 0b111},
	'9': {0b111, 0b101, 0b111, 0b001, 0b111},
	'x': {0b000, 0b101, 0b010, 0b101, 0b000},
}

type font3x5 struct{}

func (font3x5) GetYAdvance() uint8 { return glyphHeight + 1 }

func (font3x5) GetGlyph(r rune) tinyfont.Glypher { return glyph3x5{r: r} }

type glyph3x5 struct {
	r rune
}

func (g glyph3x5) Draw(display drivers.Displayer, x, y int16, c color.RGBA) {
	rows, ok := glyphRows[g.r]
	if !ok {
		return
	}
	for row := range glyphHeight {
		for col := range glyphWidth {
			if rows[row]&(0b100>>col) == 0 {
				continue
			}
			display.SetPixel(x+int16(col), y-int16(glyphHeight-1-row), c)
		}
	}
}

func (g glyph3x5) Info() tinyfont.GlyphInfo {
	return tinyfont.GlyphInfo{
		Rune:     g.r,
		Width:    glyphWidth,
		Height:   glyphHeight,
		XAdvance: glyphAdvance,
		XOffset:  0,
		YOffset:  -(glyphHeight - 1),
	}
}
