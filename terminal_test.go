package vtcore

import "testing"

func TestNewDefaultsAndClamping(t *testing.T) {
	term := New()
	if term.Rows() != DefaultRows || term.Cols() != DefaultCols {
		t.Fatalf("expected default %dx%d, got %dx%d", DefaultRows, DefaultCols, term.Rows(), term.Cols())
	}

	small := New(WithSize(1, 1))
	if small.Rows() != minRows || small.Cols() != minCols {
		t.Fatalf("expected clamp to %dx%d, got %dx%d", minRows, minCols, small.Rows(), small.Cols())
	}

	zero := New(WithSize(0, 0))
	if zero.Rows() != DefaultRows || zero.Cols() != DefaultCols {
		t.Fatalf("expected non-positive size to fall back to defaults, got %dx%d", zero.Rows(), zero.Cols())
	}
}

func TestResizeNotifiesAndClampsCursor(t *testing.T) {
	var notifiedRows, notifiedCols int
	notifier := resizeNotifierFunc(func(r, c int) { notifiedRows, notifiedCols = r, c })

	term := New(WithSize(30, 60), WithResizeNotifier(notifier))
	term.Ingest([]byte("\x1b[30;60H"))

	term.Resize(5, 5) // shrinks below current cursor position; clamps to spec minimum

	if notifiedRows != minRows || notifiedCols != minCols {
		t.Fatalf("expected notifier to see clamped %dx%d, got %dx%d", minRows, minCols, notifiedRows, notifiedCols)
	}
	x, y := term.ReadCursor()
	if x > term.Cols() || y >= term.Rows() {
		t.Fatalf("expected cursor within bounds after shrink, got (%d,%d) in %dx%d", x, y, term.Rows(), term.Cols())
	}
	if term.scrollTop != 0 || term.scrollBottom != term.Rows()-1 {
		t.Fatalf("expected scroll region reset to full screen, got [%d,%d]", term.scrollTop, term.scrollBottom)
	}
}

type resizeNotifierFunc func(rows, cols int)

func (f resizeNotifierFunc) Notify(rows, cols int) { f(rows, cols) }

func TestMiddlewareInterceptsWriteGlyph(t *testing.T) {
	var seen []rune
	mw := &Middleware{
		WriteGlyph: func(c rune, next func(rune)) {
			seen = append(seen, c)
			next(c)
		},
	}
	term := New(WithSize(10, 20), WithMiddleware(mw))
	term.Ingest([]byte("ab"))

	if string(seen) != "ab" {
		t.Fatalf("expected middleware to observe 'ab', got %q", string(seen))
	}
	if term.ReadRow(0)[0].Glyph != 'a' {
		t.Fatal("expected middleware's next() to still write the glyph")
	}
}

func TestMiddlewareCanSuppressSGR(t *testing.T) {
	mw := &Middleware{
		SGR: func(params []int, next func([]int), apply func(*Pen, []int)) {
			// suppress entirely: never call next
		},
	}
	term := New(WithSize(10, 20), WithMiddleware(mw))
	term.Ingest([]byte("\x1b[31mX"))

	if term.ReadRow(0)[0].Fg != DefaultFg {
		t.Fatal("expected SGR to be suppressed by middleware")
	}
}
