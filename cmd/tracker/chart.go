package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/guptarohit/asciigraph"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/notifier"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/series"
)

// chartCmd plots the close-price history of one symbol in the terminal.
type chartCmd struct {
	period   string
	interval string
}

func (*chartCmd) Name() string     { return "chart" }
func (*chartCmd) Synopsis() string { return "plot historical closing prices for a symbol" }
func (*chartCmd) Usage() string {
	return `tracker chart [-period 1mo] [-interval 1d] SYMBOL

  Periods: 1d, 5d, 7d, 1mo, 3mo, 6mo, 1y, 2y, 5y, max
  Intervals: 1m, 5m, 15m, 30m, 1h, 1d
`
}

func (c *chartCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "1mo", "history period, forwarded to the provider")
	f.StringVar(&c.interval, "interval", "1d", "bar interval, forwarded to the provider")
}

func (c *chartCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	symbol := strings.ToUpper(f.Arg(0))

	tr, _, err := newTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	hist, err := tr.History(ctx, symbol, c.period, c.interval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "No data found for %q: %v\n", symbol, err)
		return subcommands.ExitFailure
	}
	closes := hist.Closes()
	st, err := series.Compute(closes)
	if err != nil {
		fmt.Fprintf(os.Stderr, "No data found for %q\n", symbol)
		return subcommands.ExitFailure
	}

	fmt.Println(asciigraph.Plot(closes,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("%s - last %s", symbol, c.period))))
	fmt.Println()
	fmt.Println(notifier.FormatStats(st, "USD"))
	return subcommands.ExitSuccess
}
