package notifier

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/Rhymond/go-money"
	"github.com/dustin/go-humanize"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/model"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/series"
)

// FormatMoney renders an amount in its currency, falling back to a plain
// comma-grouped number when the currency code is unknown.
func FormatMoney(v float64, code string) string {
	if c := money.GetCurrency(code); c != nil {
		units := int64(math.Round(v * math.Pow10(c.Fraction)))
		return money.New(units, code).Display()
	}
	return fmt.Sprintf("%s %s", humanize.CommafWithDigits(v, 2), code)
}

// FormatQuote renders a single quote for display.
func FormatQuote(q *model.Quote) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s (%s)\n", q.Name, q.Symbol))
	if q.HasPrice() {
		b.WriteString(fmt.Sprintf("Price: %s (%+.2f%%)", FormatMoney(*q.Price, q.Currency), q.ChangePercent))
	} else {
		b.WriteString("Price: n/a")
	}
	return b.String()
}

// FormatPortfolio renders a portfolio valuation as a plain-text table with
// the aggregate on the last line.
func FormatPortfolio(v *model.PortfolioValuation) string {
	var b strings.Builder
	b.WriteString(fmt.Sprintf("💼 <b>Portfolio</b> | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("%-12s %-20s %10s %14s %16s\n", "Symbol", "Name", "Qty", "Price", "Value"))
	b.WriteString(strings.Repeat("-", 76) + "\n")
	for _, line := range v.Lines {
		name := line.Name
		if len(name) > 20 {
			name = name[:20]
		}
		b.WriteString(fmt.Sprintf("%-12s %-20s %10s %14s %16s\n",
			line.Symbol, name, line.Quantity.String(),
			humanize.CommafWithDigits(line.Price.InexactFloat64(), 2),
			humanize.CommafWithDigits(line.Value.InexactFloat64(), 2)))
	}
	b.WriteString(strings.Repeat("-", 76) + "\n")
	b.WriteString(fmt.Sprintf("%-44s %31s\n", "TOTAL",
		humanize.CommafWithDigits(v.TotalValue.InexactFloat64(), 2)))
	return b.String()
}

// FormatAlerts renders alert evaluation results, one row per alert with its
// status. Pass a pre-filtered slice to report only triggered alerts.
func FormatAlerts(results []model.AlertResult) string {
	if len(results) == 0 {
		return "No alerts to report."
	}
	var b strings.Builder
	b.WriteString(fmt.Sprintf("🔔 <b>Price Alerts</b> | %s\n\n", time.Now().Format("2006-01-02")))
	b.WriteString(fmt.Sprintf("%-12s %-20s %12s %12s %12s\n", "Symbol", "Condition", "Current", "Target", "Status"))
	b.WriteString(strings.Repeat("-", 74) + "\n")
	for _, r := range results {
		status := "waiting"
		if r.Triggered {
			status = "🚨 TRIGGERED"
		}
		b.WriteString(fmt.Sprintf("%-12s %-20s %12s %12s %12s\n",
			r.Symbol,
			fmt.Sprintf("Price %s target", r.Direction),
			humanize.CommafWithDigits(r.Current.InexactFloat64(), 2),
			humanize.CommafWithDigits(r.Target.InexactFloat64(), 2),
			status))
	}
	triggered := 0
	for _, r := range results {
		if r.Triggered {
			triggered++
		}
	}
	b.WriteString(fmt.Sprintf("\n%d alert(s) triggered\n", triggered))
	return b.String()
}

// FormatStats renders period summary figures under a chart.
func FormatStats(st series.Stats, currency string) string {
	return fmt.Sprintf("Current %s | Period High %s | Period Low %s",
		FormatMoney(st.Last, currency), FormatMoney(st.High, currency), FormatMoney(st.Low, currency))
}
