package mvn

import "image/color"

// Color represents an 8-bit RGBA color, the pixel format shared by the
// texture and text layers. The zero value is fully transparent black.
type Color struct {
	R, G, B, A uint8
}

// NewColor creates a color from RGBA components.
func NewColor(r, g, b, a uint8) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// RGBA implements the standard color.Color interface.
// Components are converted to alpha-premultiplied 16-bit, matching
// color.NRGBA semantics.
func (c Color) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R)
	r |= r << 8
	r *= uint32(c.A)
	r /= 0xff
	g = uint32(c.G)
	g |= g << 8
	g *= uint32(c.A)
	g /= 0xff
	b = uint32(c.B)
	b |= b << 8
	b *= uint32(c.A)
	b /= 0xff
	a = uint32(c.A)
	a |= a << 8
	return
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B, A: n.A}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA".
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b, a uint32
	a = 255

	switch len(hex) {
	case 3: // RGB
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 4: // RGBA
		parseHex(hex[0:1], &r)
		parseHex(hex[1:2], &g)
		parseHex(hex[2:3], &b)
		parseHex(hex[3:4], &a)
		r, g, b, a = r*17, g*17, b*17, a*17
	case 6: // RRGGBB
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
	case 8: // RRGGBBAA
		parseHex(hex[0:2], &r)
		parseHex(hex[2:4], &g)
		parseHex(hex[4:6], &b)
		parseHex(hex[6:8], &a)
	default:
		return Color{A: 255}
	}

	return Color{R: uint8(r), G: uint8(g), B: uint8(b), A: uint8(a)}
}

// parseHex is a helper for hex parsing
func parseHex(s string, val *uint32) {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return
		}
	}
}

// Fade returns the color with its alpha scaled by the given factor.
// The factor is clamped to [0, 1]; color channels are unchanged.
func (c Color) Fade(alpha float64) Color {
	if alpha < 0 {
		alpha = 0
	}
	if alpha > 1 {
		alpha = 1
	}
	c.A = uint8(float64(c.A)*alpha + 0.5)
	return c
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: lerp8(c.R, other.R, t),
		G: lerp8(c.G, other.G, t),
		B: lerp8(c.B, other.B, t),
		A: lerp8(c.A, other.A, t),
	}
}

func lerp8(a, b uint8, t float64) uint8 {
	v := float64(a) + (float64(b)-float64(a))*t + 0.5
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}

// Standard palette
var (
	Blank      = Color{}
	White      = Color{R: 255, G: 255, B: 255, A: 255}
	Black      = Color{R: 0, G: 0, B: 0, A: 255}
	LightGray  = Color{R: 200, G: 200, B: 200, A: 255}
	Gray       = Color{R: 130, G: 130, B: 130, A: 255}
	DarkGray   = Color{R: 80, G: 80, B: 80, A: 255}
	Yellow     = Color{R: 253, G: 249, B: 0, A: 255}
	Gold       = Color{R: 255, G: 203, B: 0, A: 255}
	Orange     = Color{R: 255, G: 161, B: 0, A: 255}
	Pink       = Color{R: 255, G: 109, B: 194, A: 255}
	Red        = Color{R: 230, G: 41, B: 55, A: 255}
	Maroon     = Color{R: 190, G: 33, B: 55, A: 255}
	Green      = Color{R: 0, G: 228, B: 48, A: 255}
	Lime       = Color{R: 0, G: 158, B: 47, A: 255}
	DarkGreen  = Color{R: 0, G: 117, B: 44, A: 255}
	SkyBlue    = Color{R: 102, G: 191, B: 255, A: 255}
	Blue       = Color{R: 0, G: 121, B: 241, A: 255}
	DarkBlue   = Color{R: 0, G: 82, B: 172, A: 255}
	Purple     = Color{R: 200, G: 122, B: 255, A: 255}
	Violet     = Color{R: 135, G: 60, B: 190, A: 255}
	DarkPurple = Color{R: 112, G: 31, B: 126, A: 255}
	Beige      = Color{R: 211, G: 176, B: 131, A: 255}
	Brown      = Color{R: 127, G: 106, B: 79, A: 255}
	DarkBrown  = Color{R: 76, G: 63, B: 47, A: 255}
	Magenta    = Color{R: 255, G: 0, B: 255, A: 255}
)
