// Command tracker is the command-line front end to the tracker core: spot
// prices, terminal charts, multi-asset comparison, portfolio valuation and
// price alerts.
package main

import (
	"context"
	"flag"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/config"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/provider"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/tracker"
)

var configPath = flag.String("config", "configs/config.yaml", "path to the YAML config file")

// newTracker builds the tracker core from config; shared by all subcommands.
func newTracker() (*tracker.Tracker, *config.Config, error) {
	cfg, err := config.Load(*configPath)
	if err != nil {
		return nil, nil, err
	}
	log := logrus.New()
	if lvl, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(lvl)
	}
	yahoo := provider.NewYahooProvider(cfg.DataSource.BaseURL, cfg.Proxy)
	return tracker.New(yahoo, log, cfg.Fetch.Concurrency), cfg, nil
}

// plain strips the Telegram HTML markup from the shared report formatting.
var plain = strings.NewReplacer("<b>", "", "</b>", "").Replace

func main() {
	_ = godotenv.Load()

	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&priceCmd{}, "quotes")
	subcommands.Register(&chartCmd{}, "charts")
	subcommands.Register(&compareCmd{}, "charts")
	subcommands.Register(&portfolioCmd{}, "portfolio")
	subcommands.Register(&alertsCmd{}, "alerts")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}
