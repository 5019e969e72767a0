package vtcore

// applySGR decodes a parameter vector per §4.5, mutating pen in place.
// Unknown parameters are silently skipped; 38/48 consume additional
// parameters from the same vector.
func applySGR(pen *Pen, params []int) {
	for i := 0; i < len(params); i++ {
		p := params[i]
		switch {
		case p == 0:
			*pen = defaultPen()
		case p == 1:
			pen.Attr |= CellAttrBold
		case p == 21 || p == 22:
			pen.Attr &^= CellAttrBold
		case p == 3:
			pen.Attr |= CellAttrItalic
		case p == 23:
			pen.Attr &^= CellAttrItalic
		case p == 4:
			pen.Attr |= CellAttrUnderline
		case p == 24:
			pen.Attr &^= CellAttrUnderline
		case p == 7 || p == 27:
			pen.Fg, pen.Bg = pen.Bg, pen.Fg
		case p == 9:
			pen.Attr |= CellAttrStrikethrough
		case p == 29:
			pen.Attr &^= CellAttrStrikethrough
		case p >= 30 && p <= 37:
			pen.Fg = NormalColors[p-30]
		case p >= 40 && p <= 47:
			pen.Bg = NormalColors[p-40]
		case p >= 90 && p <= 97:
			pen.Fg = BrightColors[p-90]
		case p >= 100 && p <= 107:
			pen.Bg = BrightColors[p-100]
		case p == 39:
			pen.Fg = DefaultFg
		case p == 49:
			pen.Bg = DefaultBg
		case p == 38 || p == 48:
			i = applyExtendedColor(pen, params, i, p == 38)
		default:
			// 2, 5, 50-74 reserved; anything else unrecognized is also ignored.
		}
	}
}

// applyExtendedColor decodes the 38/48 extended-color subforms starting at
// index i (which holds the 38/48 token itself). It returns the index of the
// last parameter it consumed, so the caller's loop resumes after it.
func applyExtendedColor(pen *Pen, params []int, i int, fg bool) int {
	if i+1 >= len(params) {
		return i
	}
	switch params[i+1] {
	case 5: // 256-color
		if i+2 >= len(params) {
			return i + 1
		}
		c := resolveIndexed(params[i+2])
		if fg {
			pen.Fg = c
		} else {
			pen.Bg = c
		}
		return i + 2
	case 2: // 24-bit RGB
		if i+4 >= len(params) {
			return i + 1
		}
		c := rgb(clampByte(params[i+2]), clampByte(params[i+3]), clampByte(params[i+4]))
		if fg {
			pen.Fg = c
		} else {
			pen.Bg = c
		}
		return i + 4
	default:
		return i + 1
	}
}
