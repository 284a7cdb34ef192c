package provider

import (
	"context"
	"fmt"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/model"
)

// MockProvider returns controllable fixed data for development and testing.
// Symbols missing from the maps behave like unknown symbols.
type MockProvider struct {
	Quotes    map[string]*model.Quote
	Histories map[string]*model.PriceSeries
	Err       error
}

func (m *MockProvider) Name() string { return "mock" }

func (m *MockProvider) GetQuote(_ context.Context, symbol string) (*model.Quote, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	q, ok := m.Quotes[symbol]
	if !ok {
		return nil, fmt.Errorf("mock: unknown symbol %q", symbol)
	}
	cp := *q
	return &cp, nil
}

func (m *MockProvider) GetHistory(_ context.Context, symbol, _, _ string) (*model.PriceSeries, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	s, ok := m.Histories[symbol]
	if !ok {
		return nil, fmt.Errorf("mock: no history for %q", symbol)
	}
	return s, nil
}

// QuoteWithPrice builds a priced quote for tests and examples.
func QuoteWithPrice(symbol, name string, price float64) *model.Quote {
	return &model.Quote{
		Symbol:   symbol,
		Name:     name,
		Price:    &price,
		Currency: "USD",
	}
}

// QuoteWithoutPrice builds a quote whose price is absent.
func QuoteWithoutPrice(symbol, name string) *model.Quote {
	return &model.Quote{Symbol: symbol, Name: name, Currency: "USD"}
}
