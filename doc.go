// Package vtcore is the core of a browser-hosted terminal emulator: a
// byte-stream interpreter and character grid model that consumes PTY output
// and maintains a visible screen of colored, attributed cells. It recognizes
// the subset of ECMA-48/VT100 control sequences needed to run a typical
// interactive shell, line editor, or full-screen curses program.
//
// # Architecture
//
//   - [Terminal]: the emulator — owns the grid, cursor, and parser state,
//     and exposes the three entry points external collaborators use.
//   - [Grid]: the two-dimensional cell buffer, with per-row dirty tracking.
//   - [Cell]: one glyph plus the rendering attributes it was written with.
//   - [Cursor] / [Pen]: the active write position and the attribute triple
//     stamped into every newly written cell.
//
// # Usage
//
//	term := vtcore.New(vtcore.WithSize(24, 80))
//	term.Ingest([]byte("\x1b[31mHello\x1b[0m"))
//	rows := term.TakeDirty()
//	x, y := term.ReadCursor()
//
// # Scope
//
// This package implements exactly the escape-sequence subset, grid
// semantics, and SGR decoding the specification calls for. It does not
// implement scrollback, the alternate screen buffer, mouse reporting,
// bracketed paste, wide/zero-width Unicode handling, character-set
// switching, or inline graphics — every input code point occupies exactly
// one display column, and the grid holds only the rows currently visible.
//
// # Concurrency
//
// Terminal is safe for concurrent use: Ingest, Resize, and TakeDirty each
// take the internal lock for their duration. The core itself performs no
// concurrency or I/O of its own — every operation runs to completion
// synchronously before returning.
//
// # Collaborators
//
// The core calls out to two small interfaces it does not implement:
// [KeyboardOutput] (DA/DSR replies) and [ResizeNotifier] (post-resize
// notification). Both ship with no-op defaults so a Terminal can be built
// without wiring either.
package vtcore
