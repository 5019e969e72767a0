package vtcore

import (
	"bytes"
	"strings"
	"testing"
)

type fakeKeyboardOutput struct {
	buf bytes.Buffer
}

func (f *fakeKeyboardOutput) Send(data []byte) { f.buf.Write(data) }

func rowText(t *Terminal, y int) string {
	var sb strings.Builder
	for _, c := range t.ReadRow(y) {
		sb.WriteRune(c.Glyph)
	}
	return sb.String()
}

// S1 — Plain text + wrap.
func TestScenarioWrap(t *testing.T) {
	term := New(WithSize(25, 80))
	term.Ingest(bytes.Repeat([]byte("A"), 81))

	row0 := rowText(term, 0)
	if strings.Trim(row0, "A") != "" || len(row0) != 80 {
		t.Fatalf("expected row 0 full of 'A', got %q", row0)
	}
	x, y := term.ReadCursor()
	if x != 1 || y != 1 {
		t.Fatalf("expected cursor (1,1), got (%d,%d)", x, y)
	}
	if got := term.ReadRow(1)[0].Glyph; got != 'A' {
		t.Fatalf("expected row 1 col 0 'A', got %q", got)
	}
}

// S2 — CR/LF.
func TestScenarioCRLF(t *testing.T) {
	term := New(WithSize(25, 80))
	term.Ingest([]byte("hi\r\nyo"))

	if got := strings.TrimRight(rowText(term, 0), " "); got != "hi" {
		t.Fatalf("row 0: expected 'hi', got %q", got)
	}
	if got := strings.TrimRight(rowText(term, 1), " "); got != "yo" {
		t.Fatalf("row 1: expected 'yo', got %q", got)
	}
	x, y := term.ReadCursor()
	if x != 2 || y != 1 {
		t.Fatalf("expected cursor (2,1), got (%d,%d)", x, y)
	}
}

// S3 — Color + reset.
func TestScenarioColorReset(t *testing.T) {
	term := New(WithSize(25, 80))
	term.Ingest([]byte("\x1b[31mRED\x1b[0mOK"))

	row := term.ReadRow(0)
	for i, want := range []rune("REDOK") {
		if row[i].Glyph != want {
			t.Fatalf("col %d: expected %q, got %q", i, want, row[i].Glyph)
		}
	}
	if row[0].Fg != NormalColors[1] {
		t.Fatalf("expected RED fg, got %v", row[0].Fg)
	}
	if row[3].Fg != DefaultFg {
		t.Fatalf("expected default fg after reset, got %v", row[3].Fg)
	}
}

// S4 — Cursor addressing and EL.
func TestScenarioCursorAddressingAndEL(t *testing.T) {
	term := New(WithSize(25, 80))
	term.Ingest([]byte("aaa\r\nbbb\x1b[1;1H\x1b[2K"))

	row0 := rowText(term, 0)
	if strings.Trim(row0, " ") != "" {
		t.Fatalf("expected row 0 entirely default, got %q", row0)
	}
	if got := strings.TrimRight(rowText(term, 1), " "); got != "bbb" {
		t.Fatalf("row 1: expected 'bbb', got %q", got)
	}
	x, y := term.ReadCursor()
	if x != 0 || y != 0 {
		t.Fatalf("expected cursor (0,0), got (%d,%d)", x, y)
	}
}

// S5 — Scroll region.
func TestScenarioScrollRegion(t *testing.T) {
	term := New(WithSize(25, 80))
	term.Ingest([]byte("\x1b[2;4r"))

	if term.scrollTop != 1 || term.scrollBottom != 3 {
		t.Fatalf("expected scroll region [1,3], got [%d,%d]", term.scrollTop, term.scrollBottom)
	}
	x, y := term.ReadCursor()
	if x != 0 || y != 0 {
		t.Fatalf("expected cursor home after DECSTBM, got (%d,%d)", x, y)
	}

	for i := 0; i < 5; i++ {
		term.Ingest([]byte("\n"))
	}
	_, y = term.ReadCursor()
	if y != 3 {
		t.Fatalf("expected cursor pinned at scroll_bottom=3, got y=%d", y)
	}
}

// S6 — 24-bit SGR.
func TestScenarioTruecolor(t *testing.T) {
	term := New(WithSize(25, 80))
	term.Ingest([]byte("\x1b[38;2;18;52;86mX"))

	cell := term.ReadRow(0)[0]
	if cell.Glyph != 'X' {
		t.Fatalf("expected glyph 'X', got %q", cell.Glyph)
	}
	want := rgb(0x12, 0x34, 0x56)
	if cell.Fg != want {
		t.Fatalf("expected fg %v, got %v", want, cell.Fg)
	}
}

// S7 — DA query.
func TestScenarioDeviceAttributes(t *testing.T) {
	out := &fakeKeyboardOutput{}
	term := New(WithSize(25, 80), WithKeyboardOutput(out))
	beforeX, beforeY := term.ReadCursor()

	term.Ingest([]byte("\x1b[c"))

	want := []byte{0x1B, 0x5B, 0x3F, 0x31, 0x3B, 0x32, 0x63}
	if !bytes.Equal(out.buf.Bytes(), want) {
		t.Fatalf("expected DA reply %X, got %X", want, out.buf.Bytes())
	}
	afterX, afterY := term.ReadCursor()
	if afterX != beforeX || afterY != beforeY {
		t.Fatal("DA query must not move the cursor")
	}
}

func TestDSRRoundTrip(t *testing.T) {
	out := &fakeKeyboardOutput{}
	term := New(WithSize(25, 80), WithKeyboardOutput(out))

	term.Ingest([]byte("\x1b[10;20H\x1b[6n"))

	want := []byte("\x1b[10;20R")
	if !bytes.Equal(out.buf.Bytes(), want) {
		t.Fatalf("expected %q, got %q", want, out.buf.Bytes())
	}
}

func TestMalformedCSIDropped(t *testing.T) {
	term := New(WithSize(25, 80))
	// "?25h" (DEC private mode set) isn't in the dispatch table and its
	// '?' marker makes the parameter buffer malformed per §4.4.1; the whole
	// sequence is dropped and 'A' prints normally afterward.
	term.Ingest([]byte("\x1b[?25hA"))

	if got := term.ReadRow(0)[0].Glyph; got != 'A' {
		t.Fatalf("expected 'A' written at (0,0), got %q", got)
	}
	x, y := term.ReadCursor()
	if x != 1 || y != 0 {
		t.Fatalf("expected cursor to have only advanced past 'A', got (%d,%d)", x, y)
	}
}

func TestResizePreservesParserStateAcrossPartialSequence(t *testing.T) {
	term := New(WithSize(25, 80))
	term.Ingest([]byte("\x1b[3"))
	term.Resize(30, 90)
	term.Ingest([]byte(";5H"))

	x, y := term.ReadCursor()
	if x != 4 || y != 2 {
		t.Fatalf("expected cursor (4,2) after resize mid-sequence, got (%d,%d)", x, y)
	}
}

func TestInvariantsAfterEveryByte(t *testing.T) {
	term := New(WithSize(10, 20))
	input := []byte("\x1b[31mhello world this is a long line that wraps around\r\n\x1b[2;4r")
	for i, b := range input {
		term.Ingest([]byte{b})

		x, y := term.ReadCursor()
		if y < 0 || y >= term.grid.Rows() || x < 0 || x > term.grid.Cols() {
			t.Fatalf("after byte %d: cursor out of bounds: (%d,%d)", i, x, y)
		}
		if term.scrollTop >= term.scrollBottom {
			t.Fatalf("after byte %d: expected scroll_top < scroll_bottom, got [%d,%d]", i, term.scrollTop, term.scrollBottom)
		}
	}
}
