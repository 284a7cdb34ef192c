package provider

import (
	"context"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/model"
)

// Provider defines the interface for fetching market data. Period and
// interval tokens are forwarded to the backing source verbatim.
type Provider interface {
	GetQuote(ctx context.Context, symbol string) (*model.Quote, error)
	GetHistory(ctx context.Context, symbol, period, interval string) (*model.PriceSeries, error)
	Name() string
}
