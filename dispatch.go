package vtcore

import "fmt"

// dispatchCSI implements the CSI dispatch table of §4.4.2. buf is the raw
// accumulated parameter/private-marker bytes (without the final byte); final
// is the byte that ended the CSI sequence.
func (t *Terminal) dispatchCSI(final byte, buf []byte) {
	params, raw := parseCSIParams(buf)

	// A malformed sequence (non-digit, non-';' byte, caught by
	// parseCSIParams) yields an empty parameter list and is dropped here.
	// DA is the one exception: its '>'/'=' private prefix is itself such a
	// byte, so it is dispatched on the raw buffer instead.
	if params == nil && final != 'c' {
		t.logDiag("malformed CSI", "final", string(final))
		return
	}

	arg := func(i, def int) int {
		if i < len(params) {
			if params[i] == 0 {
				return def
			}
			return params[i]
		}
		return def
	}

	// extra reports whether more parameters were supplied than the entry's
	// documented count (§4.4.2 preamble: "extra arguments beyond the
	// documented count cause the command to be silently dropped"). 'm' (SGR)
	// and 'r' (DECSTBM, checked in setScrollRegion) have their own rules and
	// are exempt; 'n' (DSR) already enforces its own exact count below.
	extra := func(documented int) bool { return len(params) > documented }

	cols, rows := t.grid.Cols(), t.grid.Rows()

	switch final {
	case '@': // ICH
		if extra(1) {
			return
		}
		n := clampInt(arg(0, 1), 1, cols-t.cursor.X)
		t.grid.RowInsertBlank(t.cursor.Y, t.cursor.X, n)
	case 'A': // CUU
		if extra(1) {
			return
		}
		t.cursor.Y = max(0, t.cursor.Y-arg(0, 1))
	case 'B': // CUD
		if extra(1) {
			return
		}
		t.cursor.Y = min(rows-1, t.cursor.Y+arg(0, 1))
	case 'C': // CUF
		if extra(1) {
			return
		}
		t.cursor.X = min(cols-1, t.cursor.X+arg(0, 1))
	case 'D': // CUB
		if extra(1) {
			return
		}
		t.cursor.X = max(0, t.cursor.X-arg(0, 1))
	case 'E': // CNL
		if extra(1) {
			return
		}
		t.cursor.Y = min(rows-1, t.cursor.Y+arg(0, 1))
		t.cursor.X = 0
	case 'F': // CPL
		if extra(1) {
			return
		}
		t.cursor.Y = max(0, t.cursor.Y-arg(0, 1))
		t.cursor.X = 0
	case 'G': // CHA
		if extra(1) {
			return
		}
		t.cursor.X = clampInt(arg(0, 1)-1, 0, cols)
	case 'H', 'f': // CUP / HVP
		if extra(2) {
			return
		}
		row := arg(0, 1)
		col := arg(1, 1)
		t.cursor.Y = clampInt(row-1, 0, rows-1)
		t.cursor.X = clampInt(col-1, 0, cols)
	case 'J': // ED
		if extra(1) {
			return
		}
		t.eraseInDisplay(arg(0, 0))
	case 'K': // EL
		if extra(1) {
			return
		}
		t.eraseInLine(arg(0, 0))
	case 'L': // IL
		if extra(1) {
			return
		}
		n := clampInt(arg(0, 1), 1, rows)
		t.grid.InsertLines(t.cursor.Y, t.scrollBottom, n)
	case 'P': // DCH
		if extra(1) {
			return
		}
		n := clampInt(arg(0, 1), 1, cols-t.cursor.X)
		t.grid.RowDelete(t.cursor.Y, t.cursor.X, n)
	case 'S': // SU
		if extra(1) {
			return
		}
		t.scrollRegionUp(max(0, arg(0, 0)))
	case 'T': // SD
		if extra(1) {
			return
		}
		t.scrollRegionDown(max(0, arg(0, 0)))
	case 'X': // ECH
		if extra(1) {
			return
		}
		n := arg(0, 1)
		if n < 1 {
			n = 1
		}
		t.eraseChars(n)
	case 'c': // DA
		if extra(1) {
			return
		}
		t.deviceAttributes(raw)
	case 'd': // VPA
		if extra(1) {
			return
		}
		t.cursor.Y = clampInt(arg(0, 1)-1, 0, rows-1)
	case 'm': // SGR
		t.mwApplySGR(params)
	case 'n': // DSR
		if len(params) == 1 && params[0] == 6 {
			t.deviceStatusReport()
		}
	case 'r': // DECSTBM
		t.setScrollRegion(params)
	default:
		t.logDiag("unimplemented CSI", "final", string(final))
	}
}

// eraseInDisplay implements ED (§4.4.2 J). op 1's dirty range follows the
// spec's preferred resolution of the source's open question: inclusive
// through the cursor's row (Design Note §9).
func (t *Terminal) eraseInDisplay(op int) {
	cols, rows := t.grid.Cols(), t.grid.Rows()
	switch op {
	case 0:
		t.grid.clearRange(t.cursor.Y, t.cursor.X, cols)
		for y := t.cursor.Y + 1; y < rows; y++ {
			t.grid.clearRange(y, 0, cols)
		}
	case 1:
		for y := 0; y < t.cursor.Y; y++ {
			t.grid.clearRange(y, 0, cols)
		}
		t.grid.clearRange(t.cursor.Y, 0, t.cursor.X+1)
	case 2:
		for y := 0; y < rows; y++ {
			t.grid.clearRange(y, 0, cols)
		}
	case 3:
		// scrollback reserved; no-op
	}
}

// eraseInLine implements EL (§4.4.2 K).
func (t *Terminal) eraseInLine(op int) {
	cols := t.grid.Cols()
	switch op {
	case 0:
		t.grid.clearRange(t.cursor.Y, t.cursor.X, cols)
	case 1:
		t.grid.clearRange(t.cursor.Y, 0, t.cursor.X+1)
	case 2:
		t.grid.clearRange(t.cursor.Y, 0, cols)
	}
}

// eraseChars implements ECH (§4.4.2 X): erase n cells from the cursor
// forward, wrapping line boundaries, stopping at the end of the screen.
func (t *Terminal) eraseChars(n int) {
	cols, rows := t.grid.Cols(), t.grid.Rows()
	y, x := t.cursor.Y, t.cursor.X
	for n > 0 && y < rows {
		onLine := cols - x
		if onLine > n {
			onLine = n
		}
		t.grid.clearRange(y, x, x+onLine)
		n -= onLine
		x = 0
		y++
	}
}

// deviceAttributes implements DA (§4.4.2 c). Replies are sent through the
// KeyboardOutput collaborator, never written inline (§5, §9).
func (t *Terminal) deviceAttributes(raw string) {
	if len(raw) > 0 && raw[0] == '>' {
		t.sendReply([]byte("\x1b[0;0;0c"))
		return
	}
	if len(raw) > 0 && raw[0] == '=' {
		return
	}
	t.sendReply([]byte("\x1b[?1;2c"))
}

// deviceStatusReport implements DSR(6) (§4.4.2 n).
func (t *Terminal) deviceStatusReport() {
	reply := fmt.Sprintf("\x1b[%d;%dR", t.cursor.Y+1, t.cursor.X+1)
	t.sendReply([]byte(reply))
}

// setScrollRegion implements DECSTBM (§4.4.2 r). With two arguments,
// top=a-1, bottom=b-1; with one argument, top=a, bottom=rows-1 — the rule
// is asymmetric in the source and preserved verbatim here.
func (t *Terminal) setScrollRegion(params []int) {
	if len(params) > 2 {
		return
	}
	rows := t.grid.Rows()
	top, bottom := 0, rows-1
	if len(params) == 2 {
		top = params[0] - 1
		bottom = params[1] - 1
	} else if len(params) == 1 {
		top = params[0]
	}
	top = clampInt(top, 0, rows-1)
	bottom = clampInt(bottom, 0, rows-1)
	if top >= bottom-1 {
		return
	}
	t.scrollTop, t.scrollBottom = top, bottom
	t.cursor.X, t.cursor.Y = 0, 0
}

func (t *Terminal) sendReply(b []byte) {
	if t.keyboardOutput != nil {
		t.keyboardOutput.Send(b)
	}
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
