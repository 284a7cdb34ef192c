package model

import "github.com/shopspring/decimal"

// Direction tells which side of the target price triggers an alert.
type Direction string

const (
	DirectionAbove Direction = "above"
	DirectionBelow Direction = "below"
)

// Valid reports whether the direction is one of the two known values.
func (d Direction) Valid() bool {
	return d == DirectionAbove || d == DirectionBelow
}

// Alert is a user-defined price threshold to watch for. Alerts carry no
// identity and are not persisted by the core; they live for one evaluation.
type Alert struct {
	Symbol    string          `json:"symbol" yaml:"symbol"`
	Target    decimal.Decimal `json:"target" yaml:"target"`
	Direction Direction       `json:"direction" yaml:"direction"`
}

// AlertResult reports one alert's state against the current price.
// The comparison is boundary-inclusive on both sides.
type AlertResult struct {
	Symbol    string          `json:"symbol"`
	Name      string          `json:"name"`
	Target    decimal.Decimal `json:"target"`
	Current   decimal.Decimal `json:"current"`
	Direction Direction       `json:"direction"`
	Triggered bool            `json:"triggered"`
}
