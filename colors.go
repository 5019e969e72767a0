package vtcore

import "image/color"

// NormalColors and BrightColors are the bit-exact 8-entry SGR palettes (§6).
var NormalColors = [8]color.RGBA{
	rgb(0x00, 0x00, 0x00),
	rgb(0xD0, 0x00, 0x00),
	rgb(0x00, 0xC0, 0x00),
	rgb(0xF0, 0x80, 0x00),
	rgb(0x00, 0x00, 0xD0),
	rgb(0xA0, 0x00, 0xA0),
	rgb(0x10, 0xB0, 0xB0),
	rgb(0xA0, 0xA0, 0xA0),
}

var BrightColors = [8]color.RGBA{
	rgb(0x50, 0x50, 0x50),
	rgb(0xFF, 0x30, 0x30),
	rgb(0x20, 0xFF, 0x20),
	rgb(0xFF, 0xFF, 0x40),
	rgb(0x30, 0x30, 0xFF),
	rgb(0xFF, 0x20, 0xFF),
	rgb(0x30, 0xFF, 0xFF),
	rgb(0xFF, 0xFF, 0xFF),
}

// DefaultFg and DefaultBg are the pen's reset values: pure white on pure black.
var (
	DefaultFg = rgb(0xFF, 0xFF, 0xFF)
	DefaultBg = rgb(0x00, 0x00, 0x00)
)

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}

// resolveIndexed maps an SGR 256-color index (clamped to [0,255]) to RGB,
// per §4.5: 0-7 the normal palette, 8-15 the bright palette, 16-231 the
// 6x6x6 color cube, 232-255 a 24-step grayscale ramp.
func resolveIndexed(n int) color.RGBA {
	switch {
	case n < 0:
		n = 0
	case n > 255:
		n = 255
	}
	switch {
	case n < 8:
		return NormalColors[n]
	case n < 16:
		return BrightColors[n-8]
	case n < 232:
		nn := n - 16
		b := (nn % 6) * 51
		g := ((nn / 6) % 6) * 51
		r := ((nn / 36) % 6) * 51
		return rgb(uint8(r), uint8(g), uint8(b))
	default:
		level := uint8(8 + 10*(n-232))
		return rgb(level, level, level)
	}
}

// clampByte clamps an arbitrary SGR color component to a valid byte.
func clampByte(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
