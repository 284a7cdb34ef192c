package series

import (
	"errors"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/model"
)

var (
	// ErrEmpty is returned when a series has no values to work with.
	ErrEmpty = errors.New("series: empty input")
	// ErrZeroBase is returned when the base value is zero and percent
	// change from it is undefined.
	ErrZeroBase = errors.New("series: zero base value")
)

// Normalize rescales values to percent change from the first element:
// out[i] = (values[i]/values[0] - 1) * 100. The first element maps to 0.
func Normalize(values []float64) ([]float64, error) {
	if len(values) == 0 {
		return nil, ErrEmpty
	}
	base := values[0]
	if base == 0 {
		return nil, ErrZeroBase
	}
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = (v/base - 1) * 100
	}
	return out, nil
}

// Rebase returns the series' close values, normalized to percent change
// when requested, untouched otherwise.
func Rebase(s *model.PriceSeries, normalize bool) ([]float64, error) {
	if s.Empty() {
		return nil, ErrEmpty
	}
	closes := s.Closes()
	if !normalize {
		return closes, nil
	}
	return Normalize(closes)
}
