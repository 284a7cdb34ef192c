package model

import "time"

// PricePoint is a single close observation in a historical series.
type PricePoint struct {
	Time  time.Time `json:"time"`
	Close float64   `json:"close"`
}

// PriceSeries holds the historical close prices for one symbol, ordered
// chronologically.
type PriceSeries struct {
	Symbol    string       `json:"symbol"`
	Points    []PricePoint `json:"points"`
	FetchedAt time.Time    `json:"fetched_at"`
}

// Closes returns the close values in series order.
func (s *PriceSeries) Closes() []float64 {
	closes := make([]float64, len(s.Points))
	for i, p := range s.Points {
		closes[i] = p.Close
	}
	return closes
}

// Empty reports whether the series has no points.
func (s *PriceSeries) Empty() bool {
	return s == nil || len(s.Points) == 0
}

// ComparisonLine is one symbol's series prepared for a multi-asset chart,
// optionally rebased to percent change from the first close.
type ComparisonLine struct {
	Symbol     string      `json:"symbol"`
	Times      []time.Time `json:"times"`
	Values     []float64   `json:"values"`
	Normalized bool        `json:"normalized"`
}
