package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/guptarohit/asciigraph"
)

// compareCmd plots several symbols on one chart, normalized to percent
// change by default so differently priced assets stay comparable.
type compareCmd struct {
	period    string
	interval  string
	normalize bool
}

func (*compareCmd) Name() string     { return "compare" }
func (*compareCmd) Synopsis() string { return "compare multiple symbols on one chart" }
func (*compareCmd) Usage() string {
	return `tracker compare [-period 3mo] [-interval 1d] [-normalize=true] SYMBOL SYMBOL...

  Plots several assets on one chart. With -normalize each series shows
  percentage change from the start of the period.
`
}

func (c *compareCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "period", "3mo", "history period, forwarded to the provider")
	f.StringVar(&c.interval, "interval", "1d", "bar interval, forwarded to the provider")
	f.BoolVar(&c.normalize, "normalize", true, "rescale each series to % change from its first close")
}

func (c *compareCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	var symbols []string
	for _, arg := range f.Args() {
		for _, part := range strings.Split(arg, ",") {
			if sym := strings.ToUpper(strings.TrimSpace(part)); sym != "" {
				symbols = append(symbols, sym)
			}
		}
	}
	if len(symbols) < 2 {
		fmt.Fprint(os.Stderr, c.Usage())
		return subcommands.ExitUsageError
	}

	tr, _, err := newTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}

	lines := tr.Compare(ctx, symbols, c.period, c.interval, c.normalize)
	if len(lines) == 0 {
		fmt.Fprintln(os.Stderr, "Could not load data for the given symbols")
		return subcommands.ExitFailure
	}

	data := make([][]float64, len(lines))
	names := make([]string, len(lines))
	for i, line := range lines {
		data[i] = line.Values
		names[i] = line.Symbol
	}

	fmt.Println(asciigraph.PlotMany(data,
		asciigraph.Height(15),
		asciigraph.Width(80),
		asciigraph.Caption(fmt.Sprintf("Comparison - last %s", c.period))))
	fmt.Println()
	fmt.Printf("Series: %s\n", strings.Join(names, ", "))
	if c.normalize {
		fmt.Println("Chart shows percentage change from start of period")
	}
	return subcommands.ExitSuccess
}
