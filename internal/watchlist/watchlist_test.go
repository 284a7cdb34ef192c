package watchlist

import (
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/model"
)

func TestHoldings_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "holdings.json")
	in := []model.Holding{
		{Symbol: "AAPL", Quantity: decimal.NewFromInt(10)},
		{Symbol: "BTC-USD", Quantity: decimal.RequireFromString("0.5")},
	}
	if err := SaveHoldings(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := LoadHoldings(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 holdings, got %d", len(out))
	}
	if out[0].Symbol != "AAPL" || !out[0].Quantity.Equal(decimal.NewFromInt(10)) {
		t.Errorf("first holding mismatch: %+v", out[0])
	}
	if !out[1].Quantity.Equal(decimal.RequireFromString("0.5")) {
		t.Errorf("fractional quantity mismatch: %s", out[1].Quantity)
	}
}

func TestAlerts_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "alerts.json")
	in := []model.Alert{
		{Symbol: "TSLA", Target: decimal.NewFromInt(300), Direction: model.DirectionBelow},
	}
	if err := SaveAlerts(path, in); err != nil {
		t.Fatalf("save: %v", err)
	}
	out, err := LoadAlerts(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("expected 1 alert, got %d", len(out))
	}
	if out[0].Direction != model.DirectionBelow {
		t.Errorf("direction mismatch: %s", out[0].Direction)
	}
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	dir := t.TempDir()
	hs, err := LoadHoldings(filepath.Join(dir, "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(hs) != 0 {
		t.Errorf("expected empty holdings, got %d", len(hs))
	}
	as, err := LoadAlerts(filepath.Join(dir, "nope.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(as) != 0 {
		t.Errorf("expected empty alerts, got %d", len(as))
	}
}
