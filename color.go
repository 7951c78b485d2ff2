package flowgrad

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"

	"github.com/gogpu/flowgrad/internal/field"
)

// RGBA is a straight-alpha color stop with components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements the color.Color interface.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// Color converts c to a color.NRGBA.
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{
		R: toByte(c.R),
		G: toByte(c.G),
		B: toByte(c.B),
		A: toByte(c.A),
	}
}

// FromColor converts a standard color.Color to straight-alpha RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1}
}

// Hex formats c as "#rrggbb", or "#rrggbbaa" when c is not opaque.
func (c RGBA) Hex() string {
	n := c.Color()
	if n.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

// ParseColor parses a CSS color name ("midnightblue") or a hex color in one
// of the forms "#rgb", "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseColor(s string) (RGBA, error) {
	s = strings.TrimSpace(s)
	if named, ok := colornames.Map[strings.ToLower(s)]; ok {
		return FromColor(named), nil
	}

	hex := strings.TrimPrefix(s, "#")
	alpha := uint8(255)
	switch len(hex) {
	case 3, 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return RGBA{}, fmt.Errorf("flowgrad: invalid color %q: %w", s, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	default:
		return RGBA{}, fmt.Errorf("flowgrad: invalid color %q", s)
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return RGBA{}, fmt.Errorf("flowgrad: invalid color %q: %w", s, err)
	}
	r, g, b := c.RGB255()
	return FromColor(color.NRGBA{R: r, G: g, B: b, A: alpha}), nil
}

// HSL creates an opaque color from hue in degrees and saturation and
// lightness in [0, 1], quantized to 8 bits per channel.
func HSL(h, s, l float64) RGBA {
	r, g, b := colorful.Hsl(h, s, l).Clamped().RGB255()
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: 1,
	}
}

// toByte scales a [0, 1] channel to [0, 255] with truncation. Values out of
// range saturate; NaN maps to 0.
func toByte(v float64) uint8 {
	x := v * 255
	if !(x > 0) {
		return 0
	}
	if x > 255 {
		return 255
	}
	return uint8(x)
}

func (c RGBA) stop() field.Color {
	return field.Color{c.R, c.G, c.B, c.A}
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
