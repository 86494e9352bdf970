package colorconv

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var ErrInvalidColor = errors.New("invalid color format")

// InvalidColorError reports input that does not form a literal of the
// requested format, even after normalization.
type InvalidColorError struct {
	Input  string
	Format Format
}

func (e *InvalidColorError) Error() string {
	return fmt.Sprintf("%v: %q is not a %s color, expected e.g. %s",
		ErrInvalidColor, e.Input, e.Format, strings.Join(Examples(e.Format), " or "))
}

func (e *InvalidColorError) Unwrap() error { return ErrInvalidColor }

// Convert parses raw as a literal of source and renders it in every
// format. currentAlpha is used when source carries no alpha of its own.
// It returns false when raw cannot be read as source.
func Convert(raw string, source Format, currentAlpha float64) (Values, bool) {
	n := Normalize(raw, source)
	base := source.Base()
	if detected, ok := Detect(n.Base); !ok || detected != base {
		return Values{}, false
	}

	c, ok := parseBase(n.Base, base)
	if !ok {
		return Values{}, false
	}

	alpha := ClampAlpha(currentAlpha)
	if n.HasAlpha {
		alpha = n.Alpha
	}
	return Render(c, alpha), true
}

// ConvertE is Convert with the failure reported as an *InvalidColorError.
func ConvertE(raw string, source Format, currentAlpha float64) (Values, error) {
	v, ok := Convert(raw, source, currentAlpha)
	if !ok {
		return Values{}, &InvalidColorError{Input: raw, Format: source}
	}
	return v, nil
}

// parseBase reads a canonical literal of an opaque format into the hub.
func parseBase(literal string, f Format) (RGB, bool) {
	switch f {
	case FormatHex:
		return HexToRGB(literal)
	case FormatRGB:
		n, ok := components(rgbLoose, literal, 3)
		if !ok {
			return RGB{}, false
		}
		return RGB{n[0], n[1], n[2]}, true
	case FormatHSL:
		n, ok := components(hslLoose, literal, 3)
		if !ok {
			return RGB{}, false
		}
		return HSLToRGB(HSL{n[0], n[1], n[2]}), true
	case FormatCMYK:
		n, ok := components(cmykLoose, literal, 4)
		if !ok {
			return RGB{}, false
		}
		return CMYKToRGB(CMYK{n[0], n[1], n[2], n[3]}), true
	}
	return RGB{}, false
}

func components(re *regexp.Regexp, literal string, count int) ([]int, bool) {
	m := re.FindStringSubmatch(literal)
	if len(m) < count+1 {
		return nil, false
	}
	out := make([]int, count)
	for i := range out {
		v, err := strconv.Atoi(m[i+1])
		if err != nil {
			return nil, false
		}
		out[i] = v
	}
	return out, true
}
