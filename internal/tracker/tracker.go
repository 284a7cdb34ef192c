package tracker

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/model"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/provider"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/series"
)

// Tracker runs the core operations against a market-data provider: quote
// lookup, portfolio valuation, alert evaluation and multi-asset comparison.
// It keeps no state of its own; holdings and alerts are passed in by the
// caller on every invocation.
type Tracker struct {
	provider    provider.Provider
	log         *logrus.Logger
	concurrency int
}

// New creates a Tracker. concurrency bounds parallel quote fetches in batch
// operations; 1 means strictly sequential.
func New(p provider.Provider, log *logrus.Logger, concurrency int) *Tracker {
	if concurrency < 1 {
		concurrency = 1
	}
	return &Tracker{provider: p, log: log, concurrency: concurrency}
}

// Quote fetches the quote for one symbol. Any provider failure (unknown
// symbol, network error, malformed response) is reported as an absent quote,
// never as an error: batch operations skip the symbol and carry on.
func (t *Tracker) Quote(ctx context.Context, symbol string) (*model.Quote, bool) {
	q, err := t.provider.GetQuote(ctx, symbol)
	if err != nil {
		t.log.WithField("symbol", symbol).Warnf("quote fetch failed: %v", err)
		return nil, false
	}
	if q.Name == "" {
		q.Name = "Unknown"
	}
	if q.Currency == "" {
		q.Currency = "USD"
	}
	return q, true
}

// fetchAll fetches quotes for all symbols through a bounded worker pool.
// The result slice is index-aligned with symbols; nil marks an absent quote.
func (t *Tracker) fetchAll(ctx context.Context, symbols []string) []*model.Quote {
	quotes := make([]*model.Quote, len(symbols))
	sem := make(chan struct{}, t.concurrency)
	var wg sync.WaitGroup

	for i, symbol := range symbols {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, symbol string) {
			defer wg.Done()
			defer func() { <-sem }()
			if q, ok := t.Quote(ctx, symbol); ok {
				quotes[i] = q
			}
		}(i, symbol)
	}
	wg.Wait()
	return quotes
}

// Valuate prices a list of holdings. Holdings whose quote is absent or
// priceless are omitted from the result without failing the batch; malformed
// rows (empty symbol, negative quantity) are skipped the same way. Line
// order matches input order.
func (t *Tracker) Valuate(ctx context.Context, holdings []model.Holding) *model.PortfolioValuation {
	valid := make([]model.Holding, 0, len(holdings))
	for _, h := range holdings {
		if h.Symbol == "" || h.Quantity.IsNegative() {
			t.log.WithField("symbol", h.Symbol).Debug("skipping malformed holding")
			continue
		}
		valid = append(valid, h)
	}

	symbols := make([]string, len(valid))
	for i, h := range valid {
		symbols[i] = h.Symbol
	}
	quotes := t.fetchAll(ctx, symbols)

	result := &model.PortfolioValuation{Lines: []model.PortfolioLine{}, TotalValue: decimal.Zero}
	for i, h := range valid {
		q := quotes[i]
		if !q.HasPrice() {
			t.log.WithField("symbol", h.Symbol).Warn("no price available, holding skipped")
			continue
		}
		price := decimal.NewFromFloat(*q.Price)
		value := price.Mul(h.Quantity)
		result.Lines = append(result.Lines, model.PortfolioLine{
			Symbol:   q.Symbol,
			Name:     q.Name,
			Quantity: h.Quantity,
			Price:    price,
			Value:    value,
			Currency: q.Currency,
		})
		result.TotalValue = result.TotalValue.Add(value)
	}
	return result
}

// CheckAlerts evaluates a list of alerts against current prices. An alert
// triggers when current >= target (above) or current <= target (below),
// boundary inclusive on both sides. Alerts whose quote is absent and
// malformed rows are skipped. With triggeredOnly set only triggered alerts
// are reported; otherwise every evaluated alert appears with its status.
func (t *Tracker) CheckAlerts(ctx context.Context, alerts []model.Alert, triggeredOnly bool) []model.AlertResult {
	valid := make([]model.Alert, 0, len(alerts))
	for _, a := range alerts {
		if a.Symbol == "" || !a.Direction.Valid() || a.Target.IsNegative() {
			t.log.WithField("symbol", a.Symbol).Debug("skipping malformed alert")
			continue
		}
		valid = append(valid, a)
	}

	symbols := make([]string, len(valid))
	for i, a := range valid {
		symbols[i] = a.Symbol
	}
	quotes := t.fetchAll(ctx, symbols)

	results := make([]model.AlertResult, 0, len(valid))
	for i, a := range valid {
		q := quotes[i]
		if !q.HasPrice() {
			t.log.WithField("symbol", a.Symbol).Warn("no price available, alert skipped")
			continue
		}
		current := decimal.NewFromFloat(*q.Price)
		var triggered bool
		switch a.Direction {
		case model.DirectionAbove:
			triggered = current.GreaterThanOrEqual(a.Target)
		case model.DirectionBelow:
			triggered = current.LessThanOrEqual(a.Target)
		}
		if triggeredOnly && !triggered {
			continue
		}
		results = append(results, model.AlertResult{
			Symbol:    q.Symbol,
			Name:      q.Name,
			Target:    a.Target,
			Current:   current,
			Direction: a.Direction,
			Triggered: triggered,
		})
	}
	return results
}

// History fetches the close-price history for one symbol. Period and
// interval tokens go to the provider verbatim.
func (t *Tracker) History(ctx context.Context, symbol, period, interval string) (*model.PriceSeries, error) {
	return t.provider.GetHistory(ctx, symbol, period, interval)
}

// Compare fetches histories for several symbols and prepares them for a
// single chart, rebasing each series to percent change from its first close
// when normalize is set. Symbols whose history is unavailable or empty are
// skipped; output order follows input order.
func (t *Tracker) Compare(ctx context.Context, symbols []string, period, interval string, normalize bool) []model.ComparisonLine {
	lines := make([]model.ComparisonLine, 0, len(symbols))
	for _, symbol := range symbols {
		hist, err := t.provider.GetHistory(ctx, symbol, period, interval)
		if err != nil {
			t.log.WithField("symbol", symbol).Warnf("history fetch failed: %v", err)
			continue
		}
		values, err := series.Rebase(hist, normalize)
		if err != nil {
			t.log.WithField("symbol", symbol).Warnf("rebase failed: %v", err)
			continue
		}
		times := make([]time.Time, len(hist.Points))
		for i, pt := range hist.Points {
			times[i] = pt.Time
		}
		lines = append(lines, model.ComparisonLine{
			Symbol:     symbol,
			Times:      times,
			Values:     values,
			Normalized: normalize,
		})
	}
	return lines
}
