// Package colorconv converts color literals between the hex, rgb, hsl and
// cmyk notations, with and without alpha. All conversions pass through an
// RGB value plus a separate alpha.
package colorconv

import (
	"errors"
	"fmt"
	"strings"
)

// Format identifies one of the textual color notations.
type Format int

const (
	FormatHex Format = iota
	FormatHexa
	FormatRGB
	FormatRGBA
	FormatHSL
	FormatHSLA
	FormatCMYK
)

var ErrUnknownFormat = errors.New("unknown color format")

// Formats lists every supported format in canonical order.
var Formats = []Format{FormatHex, FormatHexa, FormatRGB, FormatRGBA, FormatHSL, FormatHSLA, FormatCMYK}

func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatHexa:
		return "hexa"
	case FormatRGB:
		return "rgb"
	case FormatRGBA:
		return "rgba"
	case FormatHSL:
		return "hsl"
	case FormatHSLA:
		return "hsla"
	case FormatCMYK:
		return "cmyk"
	}
	return fmt.Sprintf("Format(%d)", int(f))
}

// ParseFormat maps a tag such as "rgba" to its Format.
func ParseFormat(tag string) (Format, error) {
	tag = strings.ToLower(strings.TrimSpace(tag))
	for _, f := range Formats {
		if f.String() == tag {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, tag)
}

// HasAlpha reports whether the format encodes transparency.
func (f Format) HasAlpha() bool {
	return f == FormatHexa || f == FormatRGBA || f == FormatHSLA
}

// Base returns the opaque counterpart of an alpha-bearing format.
func (f Format) Base() Format {
	switch f {
	case FormatHexa:
		return FormatHex
	case FormatRGBA:
		return FormatRGB
	case FormatHSLA:
		return FormatHSL
	}
	return f
}

func (f Format) MarshalText() ([]byte, error) {
	if f < FormatHex || f > FormatCMYK {
		return nil, fmt.Errorf("%w: %d", ErrUnknownFormat, int(f))
	}
	return []byte(f.String()), nil
}

func (f *Format) UnmarshalText(text []byte) error {
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// Examples returns literals accepted for f, as shown to users after a
// rejected input.
func Examples(f Format) []string {
	switch f {
	case FormatHex:
		return []string{"#FF5733", "#F53"}
	case FormatHexa:
		return []string{"#FF5733FF", "#F53F"}
	case FormatRGB:
		return []string{"255, 87, 51"}
	case FormatRGBA:
		return []string{"255, 87, 51, 1", "255, 87, 51, 0.5"}
	case FormatHSL:
		return []string{"11°, 100%, 60%"}
	case FormatHSLA:
		return []string{"11°, 100%, 60%, 1"}
	case FormatCMYK:
		return []string{"0%, 66%, 80%, 0%"}
	}
	return nil
}
