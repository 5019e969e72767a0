package vtcore

import (
	"log/slog"
	"sync"
)

// DefaultRows and DefaultCols are used when WithSize is omitted or given a
// non-positive value.
const (
	DefaultRows = 24
	DefaultCols = 80
)

// Terminal is the byte-stream interpreter and cell grid model (§1). It owns
// the grid, cursor/pen, scroll region, and parser state exclusively; the
// three entry points Ingest, Resize, and TakeDirty are the only way external
// collaborators change it (§5), and ReadRow, ReadCursor, Rows, Cols, and
// Snapshot only read it. All operations are serialized by an internal
// mutex so a concurrent renderer and ingest goroutine never race, though the
// core itself performs no concurrency of its own.
type Terminal struct {
	mu sync.RWMutex

	grid   *Grid
	cursor Cursor

	scrollTop    int
	scrollBottom int

	parser

	keyboardOutput KeyboardOutput
	resizeNotifier ResizeNotifier
	logger         *slog.Logger
	middleware     *Middleware
}

// Option configures a Terminal at construction time, in the teacher's
// functional-options idiom.
type Option func(*Terminal)

// WithSize sets the initial dimensions. Non-positive values fall back to
// DefaultRows/DefaultCols; both are still clamped to the spec minimum.
func WithSize(rows, cols int) Option {
	return func(t *Terminal) {
		if rows <= 0 {
			rows = DefaultRows
		}
		if cols <= 0 {
			cols = DefaultCols
		}
		t.grid = NewGrid(rows, cols)
	}
}

// WithKeyboardOutput installs the collaborator that receives DA/DSR replies.
func WithKeyboardOutput(out KeyboardOutput) Option {
	return func(t *Terminal) { t.keyboardOutput = out }
}

// WithResizeNotifier installs the collaborator notified at the end of Resize.
func WithResizeNotifier(n ResizeNotifier) Option {
	return func(t *Terminal) { t.resizeNotifier = n }
}

// WithLogger installs a diagnostic logger. A nil logger (the default) is
// equivalent to discarding diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(t *Terminal) { t.logger = l }
}

// WithMiddleware installs interception hooks over the core's mutation
// points.
func WithMiddleware(m *Middleware) Option {
	return func(t *Terminal) { t.middleware = m }
}

// New constructs a Terminal at DefaultRows x DefaultCols unless overridden by
// WithSize, with no-op providers unless overridden.
func New(opts ...Option) *Terminal {
	t := &Terminal{
		keyboardOutput: NoopKeyboardOutput{},
		resizeNotifier: NoopResizeNotifier{},
	}
	for _, opt := range opts {
		opt(t)
	}
	if t.grid == nil {
		t.grid = NewGrid(DefaultRows, DefaultCols)
	}
	t.cursor = newCursor()
	t.scrollTop, t.scrollBottom = 0, t.grid.Rows()-1
	return t
}

// Resize reallocates the grid to new dimensions, clamped to the spec
// minimum (§4.1), resets the scroll region to the full screen, clamps the
// cursor back into bounds, and notifies the ResizeNotifier collaborator.
// A partially-accumulated escape sequence survives the resize unchanged
// (§5) because parser state lives outside the grid.
func (t *Terminal) Resize(rows, cols int) {
	t.mu.Lock()
	t.grid.Resize(rows, cols)
	t.scrollTop, t.scrollBottom = 0, t.grid.Rows()-1
	if t.cursor.X > t.grid.Cols() {
		t.cursor.X = t.grid.Cols()
	}
	if t.cursor.Y >= t.grid.Rows() {
		t.cursor.Y = t.grid.Rows() - 1
	}
	notifier := t.resizeNotifier
	newRows, newCols := t.grid.Rows(), t.grid.Cols()
	t.mu.Unlock()

	if notifier != nil {
		notifier.Notify(newRows, newCols)
	}
}

// TakeDirty returns the indices of every row modified since the last call,
// clearing their flags in the same step (§4.1, §6).
func (t *Terminal) TakeDirty() []int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.grid.TakeDirty()
}

// ReadRow returns a copy of row y's cells for a rendering collaborator.
func (t *Terminal) ReadRow(y int) []Cell {
	t.mu.RLock()
	defer t.mu.RUnlock()
	src := t.grid.RowCells(y)
	out := make([]Cell, len(src))
	copy(out, src)
	return out
}

// ReadCursor returns the cursor's current (x, y).
func (t *Terminal) ReadCursor() (x, y int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cursor.X, t.cursor.Y
}

// Rows and Cols report the terminal's current dimensions.
func (t *Terminal) Rows() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.grid.Rows()
}

func (t *Terminal) Cols() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.grid.Cols()
}
