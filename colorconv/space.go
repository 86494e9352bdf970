package colorconv

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// RGB is the hub representation every conversion passes through.
// Channels are in [0, 255].
type RGB struct {
	R, G, B int
}

// HSL holds hue in degrees [0, 360) and saturation and lightness in
// percent.
type HSL struct {
	H, S, L int
}

// CMYK holds the four ink coverages in percent.
type CMYK struct {
	C, M, Y, K int
}

// unit returns the channels scaled to [0, 1].
func (c RGB) unit() (r, g, b float64) {
	return float64(clamp(c.R, 0, 255)) / 255,
		float64(clamp(c.G, 0, 255)) / 255,
		float64(clamp(c.B, 0, 255)) / 255
}

// round is used wherever a value crosses from one representation to
// another. All inputs are non-negative, where math.Round and the usual
// half-up rule agree.
func round(x float64) int {
	return int(math.Round(x))
}

// RGBToHSL converts c to HSL. Grays have hue and saturation 0.
func RGBToHSL(c RGB) HSL {
	r, g, b := c.unit()

	hi := math.Max(r, math.Max(g, b))
	lo := math.Min(r, math.Min(g, b))
	var h, s float64
	l := (hi + lo) / 2

	if hi != lo {
		d := hi - lo
		if l > 0.5 {
			s = d / (2 - hi - lo)
		} else {
			s = d / (hi + lo)
		}
		switch hi {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		default:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: round(h*360) % 360,
		S: round(s * 100),
		L: round(l * 100),
	}
}

// HSLToRGB converts c to RGB. Hue wraps modulo 360, saturation and
// lightness are clamped to [0, 100].
func HSLToRGB(c HSL) RGB {
	h := float64(((c.H%360)+360)%360) / 360
	s := float64(clamp(c.S, 0, 100)) / 100
	l := float64(clamp(c.L, 0, 100)) / 100

	if s == 0 {
		v := round(l * 255)
		return RGB{v, v, v}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: round(hueToRGB(p, q, h+1.0/3) * 255),
		G: round(hueToRGB(p, q, h) * 255),
		B: round(hueToRGB(p, q, h-1.0/3) * 255),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// RGBToCMYK converts c to CMYK. Pure black maps to {0, 0, 0, 100}.
func RGBToCMYK(c RGB) CMYK {
	r, g, b := c.unit()

	k := 1 - math.Max(r, math.Max(g, b))
	if k == 1 {
		return CMYK{0, 0, 0, 100}
	}

	return CMYK{
		C: round((1 - r - k) / (1 - k) * 100),
		M: round((1 - g - k) / (1 - k) * 100),
		Y: round((1 - b - k) / (1 - k) * 100),
		K: round(k * 100),
	}
}

// CMYKToRGB converts c to RGB. It is only used when CMYK is the source
// notation; CMYK is never a hub.
func CMYKToRGB(c CMYK) RGB {
	k := float64(clamp(c.K, 0, 100)) / 100
	channel := func(v int) int {
		x := float64(clamp(v, 0, 100)) / 100
		return round(255 * (1 - math.Min(1, x*(1-k)+k)))
	}
	return RGB{channel(c.C), channel(c.M), channel(c.Y)}
}

// RGBToHex renders c as #RRGGBB with uppercase digits.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02X%02X%02X",
		clamp(c.R, 0, 255), clamp(c.G, 0, 255), clamp(c.B, 0, 255))
}

// HexToRGB parses a #RRGGBB or #RGB literal.
func HexToRGB(hex string) (RGB, bool) {
	digits := strings.TrimPrefix(NormalizeHex(hex), "#")
	if len(digits) != 6 {
		return RGB{}, false
	}
	v, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return RGB{}, false
	}
	return RGB{int(v >> 16 & 0xFF), int(v >> 8 & 0xFF), int(v & 0xFF)}, true
}
