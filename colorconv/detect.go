package colorconv

import (
	"regexp"
	"strings"
)

const alphaPattern = `(?:\d+(?:\.\d*)?|\.\d+)`

var (
	hexPattern  = regexp.MustCompile(`^#?(?:[0-9A-Fa-f]{3}|[0-9A-Fa-f]{6})$`)
	hexaPattern = regexp.MustCompile(`^#?(?:[0-9A-Fa-f]{4}|[0-9A-Fa-f]{8})$`)
	rgbPattern  = regexp.MustCompile(`^\s*\d+\s*,\s*\d+\s*,\s*\d+\s*$`)
	rgbaPattern = regexp.MustCompile(`^\s*\d+\s*,\s*\d+\s*,\s*\d+\s*,\s*` + alphaPattern + `\s*$`)
	hslPattern  = regexp.MustCompile(`^\s*\d+\s*°?\s*,\s*\d+\s*%?\s*,\s*\d+\s*%?\s*$`)
	hslaPattern = regexp.MustCompile(`^\s*\d+\s*°?\s*,\s*\d+\s*%?\s*,\s*\d+\s*%?\s*,\s*` + alphaPattern + `\s*$`)
	cmykPattern = regexp.MustCompile(`^\s*\d+\s*%?\s*,\s*\d+\s*%?\s*,\s*\d+\s*%?\s*,\s*\d+\s*%?\s*$`)
)

// detectOrder is the precedence in which the patterns are tried. An rgb
// literal also satisfies the hsl pattern, so the order matters.
var detectOrder = []struct {
	format  Format
	pattern *regexp.Regexp
}{
	{FormatHex, hexPattern},
	{FormatHexa, hexaPattern},
	{FormatRGB, rgbPattern},
	{FormatRGBA, rgbaPattern},
	{FormatHSL, hslPattern},
	{FormatHSLA, hslaPattern},
	{FormatCMYK, cmykPattern},
}

// Detect classifies text into one of the supported formats. It returns
// false for empty input or text that matches none of them.
func Detect(text string) (Format, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, false
	}
	for _, d := range detectOrder {
		if d.pattern.MatchString(text) {
			return d.format, true
		}
	}
	return 0, false
}
