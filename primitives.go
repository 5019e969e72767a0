package vtcore

// This file implements the Output Primitives (§4.3): the low-level grid
// mutations driven by the Default-state control codes and by CSI dispatch.
// They operate on the Terminal's grid, cursor, and scroll region.

// writeGlyph stamps c at the cursor using the current pen, wrapping first if
// the cursor already sits at the wrap-pending column cols.
func (t *Terminal) writeGlyph(c rune) {
	if t.cursor.X >= t.grid.Cols() {
		t.cursor.X = 0
		t.advanceLine()
	}
	cell := Cell{Glyph: c, Attr: t.cursor.Pen.Attr, Fg: t.cursor.Pen.Fg, Bg: t.cursor.Pen.Bg}
	t.grid.SetCell(t.cursor.Y, t.cursor.X, cell)
	t.cursor.X++
}

// writeTab advances the cursor to the next multiple-of-8 tab stop, wrapping
// to the next line only if that stop lies beyond the wrap-pending column cols.
func (t *Terminal) writeTab() {
	cols := t.grid.Cols()
	t.cursor.X = (t.cursor.X + 8) &^ 7
	if t.cursor.X > cols {
		t.cursor.X = 0
		t.lineFeed()
	}
}

// advanceLine moves the cursor down one row, scrolling the region up if that
// exits it through the bottom margin, clamping instead at the grid edge.
// Shared by writeGlyph's pre-write wrap and lineFeed.
func (t *Terminal) advanceLine() {
	t.cursor.Y++
	if t.cursor.Y == t.scrollBottom+1 {
		t.scrollRegionUp(1)
		t.cursor.Y = t.scrollBottom
	} else if t.cursor.Y >= t.grid.Rows() {
		t.cursor.Y = t.grid.Rows() - 1
	}
}

// lineFeed implements LF (§4.3): advance one row, scrolling the region when
// the bottom margin is crossed.
func (t *Terminal) lineFeed() {
	t.advanceLine()
}

// reverseLineFeed implements the ESC M reverse index (§4.3): move one row
// up, scrolling the region down when the top margin is crossed.
func (t *Terminal) reverseLineFeed() {
	t.cursor.Y--
	if t.cursor.Y == t.scrollTop-1 {
		t.scrollRegionDown(1)
		t.cursor.Y = t.scrollTop
	} else if t.cursor.Y < 0 {
		t.cursor.Y = 0
	}
}

// carriageReturn implements CR: move to column 0.
func (t *Terminal) carriageReturn() {
	t.cursor.X = 0
}

// scrollRegionUp scrolls [scrollTop, scrollBottom] up by n, clamped to the
// region's height, marking all affected rows dirty.
func (t *Terminal) scrollRegionUp(n int) {
	if n > t.grid.Rows() {
		n = t.grid.Rows()
	}
	t.grid.ScrollRegionUp(t.scrollTop, t.scrollBottom, n)
}

// scrollRegionDown is the symmetric inverse of scrollRegionUp.
func (t *Terminal) scrollRegionDown(n int) {
	if n > t.grid.Rows() {
		n = t.grid.Rows()
	}
	t.grid.ScrollRegionDown(t.scrollTop, t.scrollBottom, n)
}

// backspace implements BS (§4.4 Default, 0x08): move left one column, or to
// the end of the previous row when already at column 0.
func (t *Terminal) backspace() {
	if t.cursor.X > 0 {
		t.cursor.X--
	} else if t.cursor.Y > 0 {
		t.cursor.Y--
		t.cursor.X = t.grid.Cols() - 1
	}
}
