package boardkit

import (
	"fmt"

	"github.com/chewxy/math32"
)

// Color is a linear RGBA color. Channels are treated as linear [0,1] but are
// never clamped by this package; out-of-range values pass through untouched.
type Color struct {
	R float32
	G float32
	B float32
	A float32
}

var (
	Transparent = Color{0, 0, 0, 0}
	Black       = NewColor(0.0, 0.0, 0.0)
	LightGrey   = NewColor(0.7, 0.7, 0.75)
	DarkGrey    = NewColor(0.1, 0.1, 0.15)
	Grey        = NewColor(0.4, 0.4, 0.5)
	Red         = NewColor(1.0, 0.0, 0.0)
	Orange      = NewColor(1.0, 0.6, 0.0)
	Green       = NewColor(0.0, 1.0, 0.0)
	DarkGreen   = NewColor(0.1, 0.3, 0.1)
	Blue        = NewColor(0.0, 0.0, 1.0)
	LightBlue   = NewColor(0.4, 0.4, 1.0)
	White       = NewColor(1.0, 1.0, 1.0)
	Yellow      = NewColor(1.0, 1.0, 0.0)
	Purple      = NewColor(1.0, 0.0, 1.0)
)

// NewColor returns an opaque color.
func NewColor(r, g, b float32) Color {
	return Color{R: r, G: g, B: b, A: 1.0}
}

// WithAlpha replaces the alpha channel.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

// Lerp interpolates component-wise between c and other.
func (c Color) Lerp(other Color, factor float32) Color {
	return Color{
		R: c.R + (other.R-c.R)*factor,
		G: c.G + (other.G-c.G)*factor,
		B: c.B + (other.B-c.B)*factor,
		A: c.A + (other.A-c.A)*factor,
	}
}

// Mul multiplies component-wise, used for tinting.
func (c Color) Mul(other Color) Color {
	return Color{
		R: c.R * other.R,
		G: c.G * other.G,
		B: c.B * other.B,
		A: c.A * other.A,
	}
}

// ColorFromHex parses a "#rrggbb" string, mapping each channel into linear
// space the same way ColorFromU8 does.
func ColorFromHex(hex string) (Color, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return Color{}, fmt.Errorf("expected hex color of form #rrggbb, got %q", hex)
	}
	parse := func(start int) (uint8, error) {
		var v uint8
		for i := start; i < start+2; i++ {
			c := hex[i]
			var d uint8
			switch {
			case c >= '0' && c <= '9':
				d = c - '0'
			case c >= 'a' && c <= 'f':
				d = c - 'a' + 10
			case c >= 'A' && c <= 'F':
				d = c - 'A' + 10
			default:
				return 0, fmt.Errorf("invalid hex digit %q in color %q", c, hex)
			}
			v = v*16 + d
		}
		return v, nil
	}
	r, err := parse(1)
	if err != nil {
		return Color{}, err
	}
	g, err := parse(3)
	if err != nil {
		return Color{}, err
	}
	b, err := parse(5)
	if err != nil {
		return Color{}, err
	}
	return ColorFromU8(r, g, b), nil
}

// ColorFromU8 maps 8-bit sRGB channel values into linear space.
func ColorFromU8(r, g, b uint8) Color {
	return Color{
		R: srgbToLinear(r),
		G: srgbToLinear(g),
		B: srgbToLinear(b),
		A: 1.0,
	}
}

func srgbToLinear(u uint8) float32 {
	c := float32(u) / 255.0
	if c <= 0.04045 {
		return c / 12.92
	}
	return math32.Pow((c+0.055)/1.055, 2.4)
}

// ColorFromHSV converts HSV to RGB. Hue is in degrees [0,360), saturation and
// value in [0,1].
func ColorFromHSV(hue, saturation, value float32) Color {
	h := math32.Mod(hue, 360)
	if h < 0 {
		h += 360
	}
	c := value * saturation
	x := c * (1 - math32.Abs(math32.Mod(h/60, 2)-1))
	m := value - c

	var r, g, b float32
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return Color{R: r + m, G: g + m, B: b + m, A: 1.0}
}
