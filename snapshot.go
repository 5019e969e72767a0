package vtcore

import (
	"fmt"
	"image/color"
)

// Snapshot is a JSON-serializable capture of the visible screen, for the
// rendering collaborator (§1's "rendering backend is out of scope, but
// defines the interface it consumes").
type Snapshot struct {
	Size   SnapshotSize   `json:"size"`
	Cursor SnapshotCursor `json:"cursor"`
	Lines  []SnapshotLine `json:"lines"`
}

// SnapshotSize holds the terminal's dimensions.
type SnapshotSize struct {
	Rows int `json:"rows"`
	Cols int `json:"cols"`
}

// SnapshotCursor holds the cursor's position.
type SnapshotCursor struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// SnapshotLine is one row's cells.
type SnapshotLine struct {
	Cells []SnapshotCell `json:"cells"`
}

// SnapshotCell is one cell's glyph, resolved colors, and attributes.
type SnapshotCell struct {
	Char string        `json:"char"`
	Fg   string        `json:"fg"`
	Bg   string        `json:"bg"`
	Attr SnapshotAttrs `json:"attrs,omitempty"`
}

// SnapshotAttrs mirrors CellAttr as individual JSON booleans.
type SnapshotAttrs struct {
	Bold          bool `json:"bold,omitempty"`
	Italic        bool `json:"italic,omitempty"`
	Underline     bool `json:"underline,omitempty"`
	Strikethrough bool `json:"strikethrough,omitempty"`
}

// Snapshot captures the entire visible grid and cursor position. It does not
// consult or clear the dirty bitmap — callers that want incremental updates
// should use TakeDirty + ReadRow instead.
func (t *Terminal) Snapshot() Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()

	rows, cols := t.grid.Rows(), t.grid.Cols()
	snap := Snapshot{
		Size:   SnapshotSize{Rows: rows, Cols: cols},
		Cursor: SnapshotCursor{Row: t.cursor.Y, Col: t.cursor.X},
		Lines:  make([]SnapshotLine, rows),
	}
	for y := 0; y < rows; y++ {
		cells := t.grid.RowCells(y)
		line := SnapshotLine{Cells: make([]SnapshotCell, cols)}
		for x, c := range cells {
			line.Cells[x] = snapshotCell(c)
		}
		snap.Lines[y] = line
	}
	return snap
}

func snapshotCell(c Cell) SnapshotCell {
	return SnapshotCell{
		Char: string(c.Glyph),
		Fg:   hexColor(c.Fg),
		Bg:   hexColor(c.Bg),
		Attr: SnapshotAttrs{
			Bold:          c.HasAttr(CellAttrBold),
			Italic:        c.HasAttr(CellAttrItalic),
			Underline:     c.HasAttr(CellAttrUnderline),
			Strikethrough: c.HasAttr(CellAttrStrikethrough),
		},
	}
}

func hexColor(c color.RGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}
