package colorconv

import (
	"fmt"
	"math"
	"strconv"
)

// Values holds one rendering per format together with the alpha they
// were rendered with.
type Values struct {
	Hex   string  `json:"hex"`
	Hexa  string  `json:"hexa"`
	RGB   string  `json:"rgb"`
	RGBA  string  `json:"rgba"`
	HSL   string  `json:"hsl"`
	HSLA  string  `json:"hsla"`
	CMYK  string  `json:"cmyk"`
	Alpha float64 `json:"alpha"`
}

// Get returns the rendering for f.
func (v Values) Get(f Format) string {
	switch f {
	case FormatHex:
		return v.Hex
	case FormatHexa:
		return v.Hexa
	case FormatRGB:
		return v.RGB
	case FormatRGBA:
		return v.RGBA
	case FormatHSL:
		return v.HSL
	case FormatHSLA:
		return v.HSLA
	case FormatCMYK:
		return v.CMYK
	}
	return ""
}

// Render produces every textual format from one hub value.
func Render(c RGB, alpha float64) Values {
	c = RGB{clamp(c.R, 0, 255), clamp(c.G, 0, 255), clamp(c.B, 0, 255)}
	alpha = ClampAlpha(alpha)
	a := FormatAlpha(alpha)
	hex := RGBToHex(c)
	hsl := RGBToHSL(c)
	cmyk := RGBToCMYK(c)

	return Values{
		Hex:   hex,
		Hexa:  fmt.Sprintf("%s%02X", hex, round(alpha*255)),
		RGB:   fmt.Sprintf("%d, %d, %d", c.R, c.G, c.B),
		RGBA:  fmt.Sprintf("%d, %d, %d, %s", c.R, c.G, c.B, a),
		HSL:   fmt.Sprintf("%d°, %d%%, %d%%", hsl.H, hsl.S, hsl.L),
		HSLA:  fmt.Sprintf("%d°, %d%%, %d%%, %s", hsl.H, hsl.S, hsl.L, a),
		CMYK:  fmt.Sprintf("%d%%, %d%%, %d%%, %d%%", cmyk.C, cmyk.M, cmyk.Y, cmyk.K),
		Alpha: alpha,
	}
}

// FormatAlpha renders a with at most three decimals and no trailing
// zeros, so 1 prints as "1" and 0.5 as "0.5".
func FormatAlpha(a float64) string {
	return strconv.FormatFloat(math.Round(a*1000)/1000, 'f', -1, 64)
}
