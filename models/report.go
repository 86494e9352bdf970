package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/dev-toolbox/color-api/colorconv"
)

const ReportFileName = "color-conversion-results.txt"

// BuildReport renders values as the plain-text summary offered for
// download.
func BuildReport(values colorconv.Values, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString("Color Converter Results:\n\n")
	for _, f := range colorconv.Formats {
		fmt.Fprintf(&b, "%s: %s\n", strings.ToUpper(f.String()), values.Get(f))
	}
	fmt.Fprintf(&b, "\nGenerated at: %s\n", generatedAt.UTC().Format(time.RFC3339))
	return b.String()
}
