package plot

import (
	"fmt"
	"image/color"
	"math"
)

// Gruvbox palette.
var (
	GruvDark0  = color.NRGBA{0x28, 0x28, 0x28, 0xff}
	GruvDark3  = color.NRGBA{0x66, 0x5c, 0x54, 0xff}
	GruvLight1 = color.NRGBA{0xeb, 0xdb, 0xb2, 0xff}
	GruvLight2 = color.NRGBA{0xd5, 0xc4, 0xa1, 0xff}
	GruvRed    = color.NRGBA{0xcc, 0x24, 0x1d, 0xff}
	GruvGreen  = color.NRGBA{0x98, 0x97, 0x1a, 0xff}
	GruvYellow = color.NRGBA{0xd7, 0x99, 0x21, 0xff}
	GruvBlue   = color.NRGBA{0x45, 0x85, 0x88, 0xff}
	GruvPurple = color.NRGBA{0xb1, 0x62, 0x86, 0xff}
	GruvAqua   = color.NRGBA{0x68, 0x9d, 0x6a, 0xff}
	GruvOrange = color.NRGBA{0xd6, 0x5d, 0x0e, 0xff}
)

var namedColors = map[string]color.NRGBA{
	"dark0":  GruvDark0,
	"dark3":  GruvDark3,
	"light1": GruvLight1,
	"light2": GruvLight2,
	"red":    GruvRed,
	"green":  GruvGreen,
	"yellow": GruvYellow,
	"blue":   GruvBlue,
	"purple": GruvPurple,
	"aqua":   GruvAqua,
	"orange": GruvOrange,
}

// Fade returns col with its alpha set to alpha (0..1), truncated like
// raylib's Fade.
func Fade(col color.NRGBA, alpha float64) color.NRGBA {
	alpha = math.Max(0, math.Min(1, alpha))
	col.A = uint8(alpha * 255)
	return col
}

// ParseColor accepts a palette name ("blue") or a hex string ("#458588",
// "#45858880").
func ParseColor(s string) (color.NRGBA, error) {
	if c, ok := namedColors[s]; ok {
		return c, nil
	}
	if len(s) == 0 || s[0] != '#' {
		return color.NRGBA{}, fmt.Errorf("plot: unknown color %q", s)
	}
	c := color.NRGBA{A: 0xff}
	var err error
	switch len(s) {
	case 7:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x", &c.R, &c.G, &c.B)
	case 9:
		_, err = fmt.Sscanf(s, "#%02x%02x%02x%02x", &c.R, &c.G, &c.B, &c.A)
	default:
		return color.NRGBA{}, fmt.Errorf("plot: malformed color %q", s)
	}
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("plot: malformed color %q: %w", s, err)
	}
	return c, nil
}

// Hex formats col as #rrggbb, dropping alpha.
func Hex(col color.NRGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", col.R, col.G, col.B)
}
