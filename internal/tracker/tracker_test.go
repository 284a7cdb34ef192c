package tracker

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/model"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/provider"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func testProvider() *provider.MockProvider {
	return &provider.MockProvider{
		Quotes: map[string]*model.Quote{
			"AAPL":    provider.QuoteWithPrice("AAPL", "Apple Inc.", 150),
			"MSFT":    provider.QuoteWithPrice("MSFT", "Microsoft Corp.", 400),
			"BTC-USD": provider.QuoteWithPrice("BTC-USD", "Bitcoin USD", 65000),
			"HALTED":  provider.QuoteWithoutPrice("HALTED", "Halted Corp."),
		},
	}
}

func TestQuote_UnknownSymbolIsAbsent(t *testing.T) {
	tr := New(testProvider(), testLogger(), 1)
	q, ok := tr.Quote(context.Background(), "NOPE")
	assert.False(t, ok)
	assert.Nil(t, q)
}

func TestQuote_Defaults(t *testing.T) {
	p := &provider.MockProvider{Quotes: map[string]*model.Quote{
		"XYZ": {Symbol: "XYZ", Price: func() *float64 { v := 10.0; return &v }()},
	}}
	tr := New(p, testLogger(), 1)
	q, ok := tr.Quote(context.Background(), "XYZ")
	require.True(t, ok)
	assert.Equal(t, "Unknown", q.Name)
	assert.Equal(t, "USD", q.Currency)
	assert.Zero(t, q.ChangePercent)
}

func TestValuate_Empty(t *testing.T) {
	tr := New(testProvider(), testLogger(), 1)
	v := tr.Valuate(context.Background(), nil)
	require.NotNil(t, v)
	assert.Empty(t, v.Lines)
	assert.True(t, v.TotalValue.IsZero())
}

func TestValuate_SingleHolding(t *testing.T) {
	tr := New(testProvider(), testLogger(), 1)
	v := tr.Valuate(context.Background(), []model.Holding{
		{Symbol: "AAPL", Quantity: decimal.NewFromInt(10)},
	})
	require.Len(t, v.Lines, 1)
	assert.Equal(t, "AAPL", v.Lines[0].Symbol)
	assert.Equal(t, "Apple Inc.", v.Lines[0].Name)
	assert.True(t, v.Lines[0].Value.Equal(decimal.NewFromInt(1500)), "value = %s", v.Lines[0].Value)
	assert.True(t, v.TotalValue.Equal(decimal.NewFromInt(1500)), "total = %s", v.TotalValue)
}

func TestValuate_SkipsUnpricedAndUnknown(t *testing.T) {
	tr := New(testProvider(), testLogger(), 1)
	v := tr.Valuate(context.Background(), []model.Holding{
		{Symbol: "AAPL", Quantity: decimal.NewFromInt(10)},
		{Symbol: "NOPE", Quantity: decimal.NewFromInt(3)},
		{Symbol: "HALTED", Quantity: decimal.NewFromInt(2)},
		{Symbol: "MSFT", Quantity: decimal.NewFromInt(5)},
	})
	require.Len(t, v.Lines, 2)
	assert.Equal(t, "AAPL", v.Lines[0].Symbol)
	assert.Equal(t, "MSFT", v.Lines[1].Symbol)
	assert.True(t, v.TotalValue.Equal(decimal.NewFromInt(3500)), "total = %s", v.TotalValue)
}

func TestValuate_SkipsMalformedRows(t *testing.T) {
	tr := New(testProvider(), testLogger(), 1)
	v := tr.Valuate(context.Background(), []model.Holding{
		{Symbol: "", Quantity: decimal.NewFromInt(1)},
		{Symbol: "AAPL", Quantity: decimal.NewFromInt(-2)},
		{Symbol: "AAPL", Quantity: decimal.NewFromInt(1)},
	})
	require.Len(t, v.Lines, 1)
	assert.True(t, v.TotalValue.Equal(decimal.NewFromInt(150)))
}

func TestValuate_DuplicatesNotMerged(t *testing.T) {
	tr := New(testProvider(), testLogger(), 1)
	v := tr.Valuate(context.Background(), []model.Holding{
		{Symbol: "AAPL", Quantity: decimal.NewFromInt(1)},
		{Symbol: "AAPL", Quantity: decimal.NewFromInt(2)},
	})
	require.Len(t, v.Lines, 2)
	assert.True(t, v.TotalValue.Equal(decimal.NewFromInt(450)))
}

func TestValuate_FractionalQuantity(t *testing.T) {
	tr := New(testProvider(), testLogger(), 1)
	v := tr.Valuate(context.Background(), []model.Holding{
		{Symbol: "BTC-USD", Quantity: decimal.RequireFromString("0.5")},
	})
	require.Len(t, v.Lines, 1)
	assert.True(t, v.TotalValue.Equal(decimal.NewFromInt(32500)), "total = %s", v.TotalValue)
}

func TestValuate_OrderPreservedUnderConcurrency(t *testing.T) {
	tr := New(testProvider(), testLogger(), 8)
	holdings := []model.Holding{
		{Symbol: "BTC-USD", Quantity: decimal.NewFromInt(1)},
		{Symbol: "MSFT", Quantity: decimal.NewFromInt(1)},
		{Symbol: "AAPL", Quantity: decimal.NewFromInt(1)},
	}
	v := tr.Valuate(context.Background(), holdings)
	require.Len(t, v.Lines, 3)
	assert.Equal(t, "BTC-USD", v.Lines[0].Symbol)
	assert.Equal(t, "MSFT", v.Lines[1].Symbol)
	assert.Equal(t, "AAPL", v.Lines[2].Symbol)
}

func TestCheckAlerts_BoundaryInclusive(t *testing.T) {
	p := &provider.MockProvider{Quotes: map[string]*model.Quote{
		"X": provider.QuoteWithPrice("X", "X Corp.", 100),
	}}
	tr := New(p, testLogger(), 1)

	above := tr.CheckAlerts(context.Background(), []model.Alert{
		{Symbol: "X", Target: decimal.NewFromInt(100), Direction: model.DirectionAbove},
	}, false)
	require.Len(t, above, 1)
	assert.True(t, above[0].Triggered, "current == target must trigger 'above'")

	below := tr.CheckAlerts(context.Background(), []model.Alert{
		{Symbol: "X", Target: decimal.NewFromInt(100), Direction: model.DirectionBelow},
	}, false)
	require.Len(t, below, 1)
	assert.True(t, below[0].Triggered, "current == target must trigger 'below'")
}

func TestCheckAlerts_Directions(t *testing.T) {
	tr := New(testProvider(), testLogger(), 1)
	results := tr.CheckAlerts(context.Background(), []model.Alert{
		{Symbol: "AAPL", Target: decimal.NewFromInt(120), Direction: model.DirectionAbove},
		{Symbol: "AAPL", Target: decimal.NewFromInt(200), Direction: model.DirectionAbove},
		{Symbol: "AAPL", Target: decimal.NewFromInt(120), Direction: model.DirectionBelow},
		{Symbol: "AAPL", Target: decimal.NewFromInt(200), Direction: model.DirectionBelow},
	}, false)
	require.Len(t, results, 4)
	assert.True(t, results[0].Triggered)
	assert.False(t, results[1].Triggered)
	assert.False(t, results[2].Triggered)
	assert.True(t, results[3].Triggered)
}

func TestCheckAlerts_TriggeredOnlyFilter(t *testing.T) {
	tr := New(testProvider(), testLogger(), 1)
	alerts := []model.Alert{
		{Symbol: "AAPL", Target: decimal.NewFromInt(120), Direction: model.DirectionAbove},
		{Symbol: "AAPL", Target: decimal.NewFromInt(200), Direction: model.DirectionAbove},
	}
	all := tr.CheckAlerts(context.Background(), alerts, false)
	assert.Len(t, all, 2)

	triggered := tr.CheckAlerts(context.Background(), alerts, true)
	require.Len(t, triggered, 1)
	assert.True(t, triggered[0].Triggered)
	assert.True(t, triggered[0].Target.Equal(decimal.NewFromInt(120)))
}

func TestCheckAlerts_SkipsAbsentAndMalformed(t *testing.T) {
	tr := New(testProvider(), testLogger(), 1)
	results := tr.CheckAlerts(context.Background(), []model.Alert{
		{Symbol: "NOPE", Target: decimal.NewFromInt(1), Direction: model.DirectionAbove},
		{Symbol: "HALTED", Target: decimal.NewFromInt(1), Direction: model.DirectionAbove},
		{Symbol: "AAPL", Target: decimal.NewFromInt(1), Direction: "sideways"},
		{Symbol: "AAPL", Target: decimal.NewFromInt(-5), Direction: model.DirectionAbove},
		{Symbol: "MSFT", Target: decimal.NewFromInt(100), Direction: model.DirectionAbove},
	}, false)
	require.Len(t, results, 1)
	assert.Equal(t, "MSFT", results[0].Symbol)
}

func histPoints(closes ...float64) []model.PricePoint {
	pts := make([]model.PricePoint, len(closes))
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, c := range closes {
		pts[i] = model.PricePoint{Time: base.AddDate(0, 0, i), Close: c}
	}
	return pts
}

func TestCompare_NormalizedAndOrdered(t *testing.T) {
	p := &provider.MockProvider{Histories: map[string]*model.PriceSeries{
		"AAPL": {Symbol: "AAPL", Points: histPoints(50, 55, 45)},
		"MSFT": {Symbol: "MSFT", Points: histPoints(200, 210)},
	}}
	tr := New(p, testLogger(), 1)

	lines := tr.Compare(context.Background(), []string{"MSFT", "GONE", "AAPL"}, "1mo", "1d", true)
	require.Len(t, lines, 2)
	assert.Equal(t, "MSFT", lines[0].Symbol)
	assert.Equal(t, "AAPL", lines[1].Symbol)
	assert.InDelta(t, 5.0, lines[0].Values[1], 1e-9)
	assert.InDelta(t, -10.0, lines[1].Values[2], 1e-9)
	assert.True(t, lines[0].Normalized)
	assert.Len(t, lines[0].Times, 2)
}

func TestCompare_RawPassthrough(t *testing.T) {
	p := &provider.MockProvider{Histories: map[string]*model.PriceSeries{
		"AAPL": {Symbol: "AAPL", Points: histPoints(50, 55, 45)},
	}}
	tr := New(p, testLogger(), 1)

	lines := tr.Compare(context.Background(), []string{"AAPL"}, "1mo", "1d", false)
	require.Len(t, lines, 1)
	assert.Equal(t, []float64{50, 55, 45}, lines[0].Values)
	assert.False(t, lines[0].Normalized)
}
