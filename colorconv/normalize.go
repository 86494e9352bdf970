package colorconv

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// The loose patterns find the numeric components anywhere in the input,
// so that a half-typed value still yields something renderable.
var (
	rgbLoose  = regexp.MustCompile(`(\d+)\s*,\s*(\d+)\s*,\s*(\d+)(?:\s*,\s*(` + alphaPattern + `))?`)
	hslLoose  = regexp.MustCompile(`(\d+)\s*°?\s*,\s*(\d+)\s*%?\s*,\s*(\d+)\s*%?(?:\s*,\s*(` + alphaPattern + `))?`)
	cmykLoose = regexp.MustCompile(`(\d+)\s*%?\s*,\s*(\d+)\s*%?\s*,\s*(\d+)\s*%?\s*,\s*(\d+)\s*%?`)
)

const (
	defaultRGB  = "0, 0, 0"
	defaultHSL  = "0°, 0%, 0%"
	defaultCMYK = "0%, 0%, 0%, 0%"
	defaultHexa = "FFFFFFFF"
)

// Normalized is the canonical form of a raw token. Base is a literal of
// Format.Base(); Alpha is the transparency carried by the token, or 1 when
// the format has none.
type Normalized struct {
	Base     string
	Format   Format
	Alpha    float64
	HasAlpha bool
}

// Normalize canonicalizes text as a literal of format f. It never fails:
// components that cannot be parsed fall back to the zero value of the
// format, and a missing or malformed alpha falls back to 1.
func Normalize(text string, f Format) Normalized {
	n := Normalized{Format: f, Alpha: 1, HasAlpha: f.HasAlpha()}
	switch f {
	case FormatHex:
		n.Base = NormalizeHex(text)
	case FormatHexa:
		n.Base, n.Alpha = NormalizeHexa(text)
	case FormatRGB:
		n.Base = NormalizeRGB(text)
	case FormatRGBA:
		n.Base, n.Alpha = NormalizeRGBA(text)
	case FormatHSL:
		n.Base = NormalizeHSL(text)
	case FormatHSLA:
		n.Base, n.Alpha = NormalizeHSLA(text)
	case FormatCMYK:
		n.Base = NormalizeCMYK(text)
	default:
		n.Base = text
	}
	return n
}

func stripHash(text string) string {
	return strings.ToUpper(strings.TrimPrefix(strings.TrimSpace(text), "#"))
}

func doubleNibbles(s string) string {
	var b strings.Builder
	b.Grow(2 * len(s))
	for _, c := range s {
		b.WriteRune(c)
		b.WriteRune(c)
	}
	return b.String()
}

// NormalizeHex uppercases a hex literal, expands #RGB shorthand and makes
// sure it carries a leading '#'.
func NormalizeHex(text string) string {
	hex := stripHash(text)
	if len(hex) == 3 {
		hex = doubleNibbles(hex)
	}
	return "#" + hex
}

// NormalizeHexa splits a hex literal with alpha into its #RRGGBB base and
// the alpha as a fraction. #RGBA shorthand is expanded; lengths other than
// 4 or 8 digits degrade to opaque white.
func NormalizeHexa(text string) (string, float64) {
	hex := stripHash(text)
	switch len(hex) {
	case 4:
		hex = doubleNibbles(hex)
	case 8:
	default:
		hex = defaultHexa
	}
	alpha := 1.0
	if v, err := strconv.ParseUint(hex[6:8], 16, 8); err == nil {
		alpha = float64(v) / 255
	}
	return "#" + hex[:6], alpha
}

func NormalizeRGB(text string) string {
	base, _ := NormalizeRGBA(text)
	return base
}

// NormalizeRGBA returns the canonical "R, G, B" base and the trailing alpha.
func NormalizeRGBA(text string) (string, float64) {
	m := rgbLoose.FindStringSubmatch(text)
	if m == nil {
		return defaultRGB, 1
	}
	r := parseComponent(m[1], 255)
	g := parseComponent(m[2], 255)
	b := parseComponent(m[3], 255)
	return fmt.Sprintf("%d, %d, %d", r, g, b), parseAlpha(m[4])
}

func NormalizeHSL(text string) string {
	base, _ := NormalizeHSLA(text)
	return base
}

// NormalizeHSLA returns the canonical "H°, S%, L%" base and the trailing
// alpha.
func NormalizeHSLA(text string) (string, float64) {
	m := hslLoose.FindStringSubmatch(text)
	if m == nil {
		return defaultHSL, 1
	}
	h := parseComponent(m[1], 360)
	s := parseComponent(m[2], 100)
	l := parseComponent(m[3], 100)
	return fmt.Sprintf("%d°, %d%%, %d%%", h, s, l), parseAlpha(m[4])
}

func NormalizeCMYK(text string) string {
	m := cmykLoose.FindStringSubmatch(text)
	if m == nil {
		return defaultCMYK
	}
	c := parseComponent(m[1], 100)
	mg := parseComponent(m[2], 100)
	y := parseComponent(m[3], 100)
	k := parseComponent(m[4], 100)
	return fmt.Sprintf("%d%%, %d%%, %d%%, %d%%", c, mg, y, k)
}

// parseComponent parses a run of decimal digits and clamps it to [0, max].
// Runs too long for an int can only be too large.
func parseComponent(digits string, max int) int {
	v, err := strconv.Atoi(digits)
	if err != nil {
		return max
	}
	return clamp(v, 0, max)
}

func parseAlpha(s string) float64 {
	if s == "" {
		return 1
	}
	a, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 1
	}
	return ClampAlpha(a)
}

// ClampAlpha limits a to [0, 1]. NaN is treated as fully opaque.
func ClampAlpha(a float64) float64 {
	switch {
	case math.IsNaN(a):
		return 1
	case a < 0:
		return 0
	case a > 1:
		return 1
	}
	return a
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
