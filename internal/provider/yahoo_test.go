package provider

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func yahooTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()

	mux.HandleFunc("/v7/finance/quote", func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Query().Get("symbols") {
		case "AAPL":
			w.Write([]byte(`{"quoteResponse":{"result":[{
				"symbol":"AAPL","shortName":"Apple Inc.","currency":"USD",
				"regularMarketPrice":150.25,"regularMarketPreviousClose":148.0,
				"regularMarketChangePercent":1.52}],"error":null}}`))
		case "CLOSED":
			w.Write([]byte(`{"quoteResponse":{"result":[{
				"symbol":"CLOSED","longName":"Closed Markets Ltd","currency":"EUR",
				"regularMarketPreviousClose":42.5}],"error":null}}`))
		case "BARE":
			w.Write([]byte(`{"quoteResponse":{"result":[{"symbol":"BARE"}],"error":null}}`))
		default:
			w.Write([]byte(`{"quoteResponse":{"result":[],"error":null}}`))
		}
	})

	mux.HandleFunc("/v8/finance/chart/", func(w http.ResponseWriter, r *http.Request) {
		symbol := strings.TrimPrefix(r.URL.Path, "/v8/finance/chart/")
		if symbol != "AAPL" {
			w.Write([]byte(`{"chart":{"result":[],"error":{"code":"Not Found","description":"No data found"}}}`))
			return
		}
		if r.URL.Query().Get("range") == "" || r.URL.Query().Get("interval") == "" {
			t.Error("range and interval must be forwarded")
		}
		// middle bar is a null close (holiday) and must be dropped
		w.Write([]byte(`{"chart":{"result":[{
			"timestamp":[1735689600,1735776000,1735862400],
			"indicators":{"quote":[{"close":[50.0,null,45.0]}]}}],"error":null}}`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestYahooGetQuote_LivePricePreferred(t *testing.T) {
	srv := yahooTestServer(t)
	p := NewYahooProvider(srv.URL, "")

	q, err := p.GetQuote(context.Background(), "AAPL")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.HasPrice() || *q.Price != 150.25 {
		t.Errorf("expected live price 150.25, got %+v", q.Price)
	}
	if q.Name != "Apple Inc." {
		t.Errorf("expected short name, got %q", q.Name)
	}
	if q.ChangePercent != 1.52 {
		t.Errorf("expected change percent 1.52, got %v", q.ChangePercent)
	}
}

func TestYahooGetQuote_FallbackToPreviousClose(t *testing.T) {
	srv := yahooTestServer(t)
	p := NewYahooProvider(srv.URL, "")

	q, err := p.GetQuote(context.Background(), "CLOSED")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !q.HasPrice() || *q.Price != 42.5 {
		t.Errorf("expected fallback price 42.5, got %+v", q.Price)
	}
	if q.Name != "Closed Markets Ltd" {
		t.Errorf("expected long-name fallback, got %q", q.Name)
	}
	if q.Currency != "EUR" {
		t.Errorf("expected EUR, got %q", q.Currency)
	}
}

func TestYahooGetQuote_NoPriceFields(t *testing.T) {
	srv := yahooTestServer(t)
	p := NewYahooProvider(srv.URL, "")

	q, err := p.GetQuote(context.Background(), "BARE")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if q.HasPrice() {
		t.Errorf("expected absent price, got %v", *q.Price)
	}
}

func TestYahooGetQuote_UnknownSymbol(t *testing.T) {
	srv := yahooTestServer(t)
	p := NewYahooProvider(srv.URL, "")

	if _, err := p.GetQuote(context.Background(), "NOPE"); err == nil {
		t.Fatal("expected error for unknown symbol")
	}
}

func TestYahooGetHistory(t *testing.T) {
	srv := yahooTestServer(t)
	p := NewYahooProvider(srv.URL, "")

	s, err := p.GetHistory(context.Background(), "AAPL", "1mo", "1d")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(s.Points) != 2 {
		t.Fatalf("expected 2 points after dropping the null bar, got %d", len(s.Points))
	}
	if s.Points[0].Close != 50 || s.Points[1].Close != 45 {
		t.Errorf("unexpected closes: %+v", s.Points)
	}
	if !s.Points[0].Time.Before(s.Points[1].Time) {
		t.Error("points must be chronological")
	}
}

func TestYahooGetHistory_APIError(t *testing.T) {
	srv := yahooTestServer(t)
	p := NewYahooProvider(srv.URL, "")

	if _, err := p.GetHistory(context.Background(), "NOPE", "1mo", "1d"); err == nil {
		t.Fatal("expected error for unknown symbol")
	}
}
