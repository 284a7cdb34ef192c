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

// alertsCmd checks the alerts file against current prices. By default only
// triggered alerts are printed, like the original script; -all reports
// every alert with its status, like the dashboard.
type alertsCmd struct {
	file string
	all  bool
}

func (*alertsCmd) Name() string     { return "alerts" }
func (*alertsCmd) Synopsis() string { return "check price alerts against current prices" }
func (*alertsCmd) Usage() string {
	return `tracker alerts [-file data/alerts.json] [-all]

  The alerts file is a JSON array of
  {"symbol": "AAPL", "target": "200", "direction": "above"} rows.
`
}

func (c *alertsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "file", "", "path to the alerts JSON file (default from config)")
	f.BoolVar(&c.all, "all", false, "report every alert with its status, not just triggered ones")
}

func (c *alertsCmd) Execute(ctx context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	tr, cfg, err := newTracker()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		return subcommands.ExitFailure
	}
	path := c.file
	if path == "" {
		path = cfg.Watch.AlertsFile
	}

	alerts, err := watchlist.LoadAlerts(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading alerts: %v\n", err)
		return subcommands.ExitFailure
	}
	if len(alerts) == 0 {
		fmt.Printf("No alerts in %s\n", path)
		return subcommands.ExitSuccess
	}

	results := tr.CheckAlerts(ctx, alerts, !c.all)
	if len(results) == 0 && !c.all {
		fmt.Println("No alerts triggered.")
		return subcommands.ExitSuccess
	}

	fmt.Print(plain(notifier.FormatAlerts(results)))
	return subcommands.ExitSuccess
}
