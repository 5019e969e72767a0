package vtcore

// Middleware intercepts the core's highest-traffic mutation points, in the
// teacher's wrap-with-next idiom: each field receives the call's original
// arguments plus a next function invoking the default implementation. A nil
// field means the default implementation runs directly.
type Middleware struct {
	// WriteGlyph wraps writeGlyph, the per-character grid mutation.
	WriteGlyph func(c rune, next func(rune))

	// LineFeed wraps lineFeed for LF (0x0A) bytes. The line advance of a
	// glyph wrap or a tab overflow does not pass through it.
	LineFeed func(next func())

	// CSIDispatch wraps the CSI dispatch table entry point, keyed by the
	// sequence's final byte.
	CSIDispatch func(final byte, params []int, raw string, next func())

	// SGR wraps the SGR decoder, downstream of CSIDispatch's 'm' case.
	SGR func(params []int, next func([]int), apply func(*Pen, []int))
}

func (t *Terminal) mwWriteGlyph(c rune) {
	if t.middleware != nil && t.middleware.WriteGlyph != nil {
		t.middleware.WriteGlyph(c, t.writeGlyph)
		return
	}
	t.writeGlyph(c)
}

func (t *Terminal) mwLineFeed() {
	if t.middleware != nil && t.middleware.LineFeed != nil {
		t.middleware.LineFeed(t.lineFeed)
		return
	}
	t.lineFeed()
}

func (t *Terminal) mwDispatchCSI(final byte, buf []byte) {
	if t.middleware != nil && t.middleware.CSIDispatch != nil {
		params, raw := parseCSIParams(buf)
		t.middleware.CSIDispatch(final, params, raw, func() { t.dispatchCSI(final, buf) })
		return
	}
	t.dispatchCSI(final, buf)
}

func (t *Terminal) mwApplySGR(params []int) {
	if t.middleware != nil && t.middleware.SGR != nil {
		t.middleware.SGR(params, func(p []int) { applySGR(&t.cursor.Pen, p) }, applySGR)
		return
	}
	applySGR(&t.cursor.Pen, params)
}
