package palette

import (
	"fmt"

	"github.com/dev-toolbox/color-api/colorconv"
	"golang.org/x/image/colornames"
)

// Name describes the named color nearest to some input.
type Name struct {
	Value           string `json:"value"`
	ClosestNamedHex string `json:"closest_named_hex"`
	ExactMatchName  bool   `json:"exact_match_name"`
	Distance        int    `json:"distance"`
}

// Closest returns the SVG 1.1 named color nearest to c, measured as the
// squared euclidean distance in RGB. Ties go to the alphabetically first
// name, so "aqua" wins over "cyan".
func Closest(c colorconv.RGB) Name {
	best := Name{Distance: -1}
	for _, name := range colornames.Names {
		nc := colornames.Map[name]
		dr := int(nc.R) - c.R
		dg := int(nc.G) - c.G
		db := int(nc.B) - c.B
		d := dr*dr + dg*dg + db*db
		if best.Distance >= 0 && d >= best.Distance {
			continue
		}
		best = Name{
			Value:           name,
			ClosestNamedHex: fmt.Sprintf("#%02X%02X%02X", nc.R, nc.G, nc.B),
			ExactMatchName:  d == 0,
			Distance:        d,
		}
		if d == 0 {
			break
		}
	}
	return best
}
