package model

import "github.com/shopspring/decimal"

// Holding is an owned position: a symbol and a quantity.
// Duplicate symbols are valuated independently, never merged.
type Holding struct {
	Symbol   string          `json:"symbol" yaml:"symbol"`
	Quantity decimal.Decimal `json:"quantity" yaml:"quantity"`
}

// PortfolioLine is the valuation of a single holding.
type PortfolioLine struct {
	Symbol   string          `json:"symbol"`
	Name     string          `json:"name"`
	Quantity decimal.Decimal `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Value    decimal.Decimal `json:"value"`
	Currency string          `json:"currency"`
}

// PortfolioValuation is the result of valuating a list of holdings.
// Lines follow input order; holdings without a price are omitted.
type PortfolioValuation struct {
	Lines      []PortfolioLine `json:"lines"`
	TotalValue decimal.Decimal `json:"total_value"`
}
