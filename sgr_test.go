package vtcore

import "testing"

func TestSGRDefaultResetsIdempotently(t *testing.T) {
	pen := Pen{Attr: CellAttrBold | CellAttrItalic, Fg: rgb(1, 2, 3), Bg: rgb(4, 5, 6)}
	applySGR(&pen, []int{0})

	want := defaultPen()
	if pen != want {
		t.Fatalf("expected default pen %+v, got %+v", want, pen)
	}

	// Idempotent regardless of starting state (§8 invariant 4).
	pen2 := defaultPen()
	applySGR(&pen2, []int{0})
	if pen2 != want {
		t.Fatalf("expected reset from default to stay default, got %+v", pen2)
	}
}

func TestSGRBoldClear(t *testing.T) {
	pen := defaultPen()
	applySGR(&pen, []int{1})
	if !pen.Attr.has(CellAttrBold) {
		t.Fatal("expected bold set")
	}
	applySGR(&pen, []int{22})
	if pen.Attr.has(CellAttrBold) {
		t.Fatal("expected bold cleared by 22")
	}

	applySGR(&pen, []int{1})
	applySGR(&pen, []int{21})
	if pen.Attr.has(CellAttrBold) {
		t.Fatal("expected bold cleared by 21")
	}
}

func TestSGRReverseSwapsStateless(t *testing.T) {
	pen := defaultPen()
	pen.Fg, pen.Bg = rgb(10, 20, 30), rgb(40, 50, 60)
	applySGR(&pen, []int{7})
	if pen.Fg != rgb(40, 50, 60) || pen.Bg != rgb(10, 20, 30) {
		t.Fatal("expected fg/bg swapped")
	}
	applySGR(&pen, []int{27})
	if pen.Fg != rgb(10, 20, 30) || pen.Bg != rgb(40, 50, 60) {
		t.Fatal("expected second swap to undo the first")
	}
}

func TestSGRNormalAndBrightPalette(t *testing.T) {
	pen := defaultPen()
	applySGR(&pen, []int{32})
	if pen.Fg != NormalColors[2] {
		t.Fatalf("expected NormalColors[2], got %v", pen.Fg)
	}
	applySGR(&pen, []int{102})
	if pen.Bg != BrightColors[2] {
		t.Fatalf("expected BrightColors[2], got %v", pen.Bg)
	}
	applySGR(&pen, []int{39, 49})
	if pen.Fg != DefaultFg || pen.Bg != DefaultBg {
		t.Fatal("expected 39/49 to restore defaults")
	}
}

func TestSGR256ColorCube(t *testing.T) {
	pen := defaultPen()
	// index 196 = pure-ish red in the cube: n'=180, r=(180/36%6)*51=5*51=255, g=0,b=0
	applySGR(&pen, []int{38, 5, 196})
	if pen.Fg != rgb(255, 0, 0) {
		t.Fatalf("expected cube color, got %v", pen.Fg)
	}

	applySGR(&pen, []int{48, 5, 232})
	if pen.Bg != rgb(8, 8, 8) {
		t.Fatalf("expected grayscale ramp start, got %v", pen.Bg)
	}

	applySGR(&pen, []int{38, 5, 3})
	if pen.Fg != NormalColors[3] {
		t.Fatalf("expected normal palette passthrough, got %v", pen.Fg)
	}
}

func TestSGRTruecolor(t *testing.T) {
	pen := defaultPen()
	applySGR(&pen, []int{38, 2, 18, 52, 86})
	if pen.Fg != rgb(18, 52, 86) {
		t.Fatalf("expected rgb(18,52,86), got %v", pen.Fg)
	}
}

func TestSGRExtendedColorInsufficientParamsNoChange(t *testing.T) {
	pen := defaultPen()
	applySGR(&pen, []int{38, 2, 1, 2}) // missing the blue component
	if pen.Fg != DefaultFg {
		t.Fatalf("expected no color change on truncated sequence, got %v", pen.Fg)
	}
}

func TestSGRUnknownParamSkipped(t *testing.T) {
	pen := defaultPen()
	applySGR(&pen, []int{5, 62, 1})
	if !pen.Attr.has(CellAttrBold) {
		t.Fatal("expected reserved params skipped and bold still applied")
	}
}
