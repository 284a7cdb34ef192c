package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/config"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/notifier"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/provider"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/recorder"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/tracker"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/watcher"
)

func main() {
	log := logrus.New()
	log.Info("watchbot starting...")

	// Load .env file if it exists, but don't fail if it's missing
	_ = godotenv.Load()

	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config validation: %v", err)
	}
	if lvl, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(lvl)
	}

	// Init provider and tracker core
	yahoo := provider.NewYahooProvider(cfg.DataSource.BaseURL, cfg.Proxy)
	log.Infof("data source: %s", yahoo.Name())
	tr := tracker.New(yahoo, log, cfg.Fetch.Concurrency)

	// Init Telegram notifier
	tn := notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy, log)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath, log)
		if err != nil {
			log.Warnf("init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init watcher
	w := watcher.New(ctx, tr, tn, rec, cfg.Watch.HoldingsFile, cfg.Watch.AlertsFile, log)
	if err := w.RegisterAll(cfg.Watch.AlertCron, cfg.Watch.PortfolioCron); err != nil {
		log.Fatalf("register cron tasks: %v", err)
	}
	w.Start()
	defer w.Stop()

	// Start Telegram polling
	go tn.StartPolling(ctx, w.HandleCommand)
	log.Info("telegram polling started")

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Info("RUN_ON_START enabled, executing alert sweep now")
		go w.RunAlertSweepNow()
	}

	log.Info("watchbot is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping...")
	cancel()
	log.Info("watchbot stopped")
}
