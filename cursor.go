package vtcore

import "image/color"

// Pen holds the rendering attributes stamped into every newly written cell.
// It is a plain value copy (Design Note §9: "pen-as-value") — cells never
// share attribute storage with the cursor.
type Pen struct {
	Attr CellAttr
	Fg   color.RGBA
	Bg   color.RGBA
}

// defaultPen returns the pen SGR 0 restores: no attributes, white on black.
func defaultPen() Pen {
	return Pen{Attr: 0, Fg: DefaultFg, Bg: DefaultBg}
}

// Cursor is the active write position plus the pen that stamps new cells.
type Cursor struct {
	X, Y int
	Pen  Pen
}

// newCursor returns a cursor at (0,0) on the default pen.
func newCursor() Cursor {
	return Cursor{X: 0, Y: 0, Pen: defaultPen()}
}
