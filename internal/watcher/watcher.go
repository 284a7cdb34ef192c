package watcher

import (
	"context"
	"fmt"
	"strings"

	"github.com/robfig/cron/v3"
	"github.com/sirupsen/logrus"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/model"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/notifier"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/recorder"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/tracker"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/watchlist"
)

// Watcher manages the daemon's cron tasks: periodic alert sweeps and
// portfolio snapshots. Holdings and alert definitions are re-read from
// their files on every run, so edits take effect without a restart and the
// tracker core stays stateless.
type Watcher struct {
	Cron     *cron.Cron
	Tracker  *tracker.Tracker
	Notifier *notifier.TelegramNotifier
	Recorder recorder.Recorder
	Ctx      context.Context

	log          *logrus.Logger
	holdingsFile string
	alertsFile   string
}

// New creates a Watcher.
func New(ctx context.Context, tr *tracker.Tracker, tn *notifier.TelegramNotifier, rec recorder.Recorder, holdingsFile, alertsFile string, log *logrus.Logger) *Watcher {
	return &Watcher{
		Cron:         cron.New(cron.WithSeconds()),
		Tracker:      tr,
		Notifier:     tn,
		Recorder:     rec,
		Ctx:          ctx,
		log:          log,
		holdingsFile: holdingsFile,
		alertsFile:   alertsFile,
	}
}

// RegisterAll registers the alert sweep and portfolio snapshot tasks.
func (w *Watcher) RegisterAll(alertCron, portfolioCron string) error {
	if _, err := w.Cron.AddFunc(alertCron, w.alertSweep); err != nil {
		return fmt.Errorf("register alert sweep: %w", err)
	}
	if _, err := w.Cron.AddFunc(portfolioCron, w.portfolioSnapshot); err != nil {
		return fmt.Errorf("register portfolio snapshot: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (w *Watcher) Start() {
	w.Cron.Start()
	w.log.Info("watcher started")
}

// Stop stops the cron scheduler gracefully.
func (w *Watcher) Stop() {
	w.Cron.Stop()
	w.log.Info("watcher stopped")
}

// RunAlertSweepNow executes the alert sweep immediately (manual trigger /
// RUN_ON_START).
func (w *Watcher) RunAlertSweepNow() {
	w.alertSweep()
}

func (w *Watcher) alertSweep() {
	w.log.Info("running alert sweep")
	alerts, err := watchlist.LoadAlerts(w.alertsFile)
	if err != nil {
		w.log.Errorf("alert sweep: %v", err)
		return
	}
	if len(alerts) == 0 {
		w.log.Debug("no alerts configured, sweep skipped")
		return
	}

	results := w.Tracker.CheckAlerts(w.Ctx, alerts, false)
	if err := w.Recorder.RecordAlertSweep(results); err != nil {
		w.log.Errorf("record alert sweep: %v", err)
	}

	triggered := make([]model.AlertResult, 0, len(results))
	for _, r := range results {
		if r.Triggered {
			triggered = append(triggered, r)
		}
	}
	if len(triggered) == 0 {
		w.log.Infof("alert sweep done: %d evaluated, none triggered", len(results))
		return
	}
	w.trySend(notifier.FormatAlerts(triggered))
}

func (w *Watcher) portfolioSnapshot() {
	w.log.Info("running portfolio snapshot")
	holdings, err := watchlist.LoadHoldings(w.holdingsFile)
	if err != nil {
		w.log.Errorf("portfolio snapshot: %v", err)
		return
	}
	if len(holdings) == 0 {
		w.log.Debug("no holdings configured, snapshot skipped")
		return
	}

	valuation := w.Tracker.Valuate(w.Ctx, holdings)
	if err := w.Recorder.RecordValuation(valuation); err != nil {
		w.log.Errorf("record valuation: %v", err)
	}
	w.trySend(notifier.FormatPortfolio(valuation))
}

// HandleCommand processes a user command from Telegram and returns a reply.
func (w *Watcher) HandleCommand(command string) string {
	fields := strings.Fields(command)
	if len(fields) == 0 {
		return ""
	}
	switch fields[0] {
	case "/quote":
		if len(fields) < 2 {
			return "Usage: /quote SYMBOL"
		}
		symbol := strings.ToUpper(fields[1])
		q, ok := w.Tracker.Quote(w.Ctx, symbol)
		if !ok {
			return fmt.Sprintf("Could not fetch price for %q. Check the symbol and try again.", symbol)
		}
		if err := w.Recorder.RecordQuote(q); err != nil {
			w.log.Errorf("record quote: %v", err)
		}
		return notifier.FormatQuote(q)
	case "/portfolio":
		holdings, err := watchlist.LoadHoldings(w.holdingsFile)
		if err != nil {
			w.log.Errorf("load holdings: %v", err)
			return "Could not load holdings."
		}
		return notifier.FormatPortfolio(w.Tracker.Valuate(w.Ctx, holdings))
	case "/alerts":
		go w.alertSweep()
		return "Alert sweep started."
	default:
		return "Commands:\n• /quote SYMBOL\n• /portfolio\n• /alerts"
	}
}

func (w *Watcher) trySend(msg string) {
	if err := w.Notifier.SendWithRetry(w.Ctx, msg, 3); err != nil {
		w.log.Errorf("telegram notify: %v", err)
	}
}
