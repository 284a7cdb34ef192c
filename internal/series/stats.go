package series

import "math"

// Stats holds summary figures over a close series.
type Stats struct {
	Last float64
	High float64
	Low  float64
}

// Compute scans the values once and returns the last, highest and lowest
// close of the series.
func Compute(values []float64) (Stats, error) {
	if len(values) == 0 {
		return Stats{}, ErrEmpty
	}
	high := math.Inf(-1)
	low := math.Inf(1)
	for _, v := range values {
		if v > high {
			high = v
		}
		if v < low {
			low = v
		}
	}
	return Stats{Last: values[len(values)-1], High: high, Low: low}, nil
}
