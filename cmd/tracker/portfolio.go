package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/notifier"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/watchlist"
)

// portfolioCmd valuates the holdings file and prints a summary table.
type portfolioCmd struct {
	file string
}

func (*portfolioCmd) Name() string     { return "portfolio" }
func (*portfolioCmd) Synopsis() string { return "valuate the holdings file at current prices" }
func (*portfolioCmd) Usage() string {
	return `tracker portfolio [-file data/holdings.json]

  The holdings file is a JSON array of {"symbol": "AAPL", "quantity": "10"}
  rows. Holdings without a fetchable price are skipped.
`
}

func (c *portfolioCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "path to the holdings JSON file (default from config)")
}

func (c *portfolioCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tr, cfg, err := newTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	path := c.file
	if path == "" {
		path = cfg.Watch.HoldingsFile
	}

	holdings, err := watchlist.LoadHoldings(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading holdings: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(holdings) == 0 {
		fmt.Printf("No holdings in %s\n", path)
		return subcommands.ExitSuccess
	}

	fmt.Print(plain(notifier.FormatPortfolio(tr.Valuate(ctx, holdings))))
	return subcommands.ExitSuccess
}
