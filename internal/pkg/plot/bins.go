package plot

import (
	"math"

	"github.com/montanaflynn/stats"
)

// AutoBins returns the number of histogram bins for values, using the
// narrower of the Sturges and Freedman-Diaconis bin widths. The count never
// exceeds the number of values.
func AutoBins(values []float64) int {
	data := stats.Float64Data(values)

	min, err := data.Min()
	if err != nil {
		return 1
	}

	max, _ := data.Max()
	span := max - min
	if span == 0 {
		return 1
	}

	n := float64(len(values))
	width := span / (math.Log2(n) + 1)

	iqr, err := stats.InterQuartileRange(data)
	if err == nil {
		fd := 2 * iqr / math.Cbrt(n)
		if fd > 0 && fd < width {
			width = fd
		}
	}

	bins := int(math.Ceil(span / width))
	if bins < 1 {
		return 1
	}
	if bins > len(values) {
		return len(values)
	}

	return bins
}
