package models

import "strings"

// DefaultHistorySize is how many recent colors are kept when nothing else
// is configured.
const DefaultHistorySize = 6

// RecentColors lists hex colors, most recent first, without duplicates.
type RecentColors []string

// Push moves hex to the front and trims the list to size entries. Hex
// values are compared case-insensitively.
func (rc RecentColors) Push(hex string, size int) RecentColors {
	if size <= 0 {
		size = DefaultHistorySize
	}
	hex = strings.ToUpper(hex)
	out := make(RecentColors, 0, size)
	out = append(out, hex)
	for _, c := range rc {
		if len(out) == size {
			break
		}
		if strings.ToUpper(c) == hex {
			continue
		}
		out = append(out, c)
	}
	return out
}
