package aggregator

import (
	"math"
	"strconv"
)

// SafeAverage is the left-to-right mean of values, or 0 when there are none.
func SafeAverage(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}

	var sum float64
	for _, v := range values {
		sum += v
	}

	return sum / float64(len(values))
}

// FormatStat renders v with two decimals. Zero and NaN render as "0.00".
func FormatStat(v float64) string {
	if v == 0 || math.IsNaN(v) {
		return "0.00"
	}
	return strconv.FormatFloat(v, 'f', 2, 64)
}
