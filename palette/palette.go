// Package palette holds the example colors offered to users and the
// lookup of the closest named color.
package palette

import (
	"math/rand"
	"time"
)

// Default is the color the converter starts with and resets to.
const Default = "#FF5733"

// Examples are the colors handed out by the random picker.
var Examples = []string{
	"#FF5733", // red-orange
	"#33FF57", // green
	"#3357FF", // blue
	"#F3FF33", // yellow
	"#FF33F3", // pink
	"#33FFF3", // cyan
	"#8B33FF", // purple
	"#FF8B33", // orange
	"#33FF8B", // mint
	"#FF338B", // rose
}

// Random picks one of the examples. A nil r uses the shared source.
func Random(r *rand.Rand) string {
	if r == nil {
		return Examples[rand.Intn(len(Examples))]
	}
	return Examples[r.Intn(len(Examples))]
}

// ForDay returns the example featured on the calendar day of t, in t's
// location. Every process agrees on it without storing anything.
func ForDay(t time.Time) string {
	y, m, d := t.Date()
	days := time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix() / 86400
	i := int(days % int64(len(Examples)))
	if i < 0 {
		i += len(Examples)
	}
	return Examples[i]
}
