package vtcore

import "image/color"

// CellAttr is a bitmask of the rendering attributes a pen stamps onto a cell.
type CellAttr uint8

const (
	CellAttrBold CellAttr = 1 << iota
	CellAttrItalic
	CellAttrUnderline
	CellAttrStrikethrough
)

// has reports whether every bit in want is set in a.
func (a CellAttr) has(want CellAttr) bool {
	return a&want == want
}

// Cell stores the glyph and the pen that was active when it was written.
// Color is always a resolved 24-bit RGB value (Design Note §9: "colors as
// 24-bit"), never a palette index.
type Cell struct {
	Glyph rune
	Attr  CellAttr
	Fg    color.RGBA
	Bg    color.RGBA
}

// NewCell returns a cell initialized to the default pen: a space, no
// attributes, fg white, bg black.
func NewCell() Cell {
	return Cell{Glyph: ' ', Fg: DefaultFg, Bg: DefaultBg}
}

// Reset restores c to the default cell in place.
func (c *Cell) Reset() {
	c.Glyph = ' '
	c.Attr = 0
	c.Fg = DefaultFg
	c.Bg = DefaultBg
}

// HasAttr returns true if every bit in want is set.
func (c *Cell) HasAttr(want CellAttr) bool {
	return c.Attr&want == want
}

// SetAttr enables the given attribute bits without affecting others.
func (c *Cell) SetAttr(want CellAttr) {
	c.Attr |= want
}

// ClearAttr disables the given attribute bits without affecting others.
func (c *Cell) ClearAttr(want CellAttr) {
	c.Attr &^= want
}
