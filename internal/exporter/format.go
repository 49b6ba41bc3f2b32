package exporter

import (
	"fmt"
	"math"
	"strconv"
)

// formatValue renders a panel value for CSV output. Gaps (NaN) become empty
// cells; everything else keeps full precision.
func formatValue(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// formatInt renders an integer count for CSV output
func formatInt(i int) string {
	return strconv.Itoa(i)
}

// formatStat renders a summary statistic with two decimal places, the
// precision the quality report and dictionary publish.
func formatStat(f float64) string {
	if math.IsNaN(f) {
		return ""
	}
	return fmt.Sprintf("%.2f", f)
}
