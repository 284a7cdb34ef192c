package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/notifier"
)

// priceCmd prints the current price for one or more symbols.
type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "print the current price for one or more symbols" }
func (*priceCmd) Usage() string {
	return `tracker price SYMBOL [SYMBOL...]

  Fetches and prints the current quote for each symbol.
  Crypto pairs use the -USD suffix: BTC-USD, ETH-USD.
`
}
func (*priceCmd) SetFlags(_ *flag.FlagSet) {}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}
	tr, _, err := newTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	fetched := 0
	for _, arg := range f.Args() {
		symbol := strings.ToUpper(arg)
		q, ok := tr.Quote(ctx, symbol)
		if !ok {
			fmt.Fprintf(os.Stderr, "Could not fetch price for %q. Check the symbol and try again.\n", symbol)
			continue
		}
		fmt.Println(notifier.FormatQuote(q))
		fmt.Println()
		fetched++
	}
	if fetched == 0 {
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
