package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/config"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/provider"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/server"
	"github.com/cblythe8/Stock-Crypto-Tracker/internal/tracker"
)

func main() {
	log := logrus.New()

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
	if lvl, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(lvl)
	}

	yahoo := provider.NewYahooProvider(cfg.DataSource.BaseURL, cfg.Proxy)
	tr := tracker.New(yahoo, log, cfg.Fetch.Concurrency)
	srv := server.New(tr, log)

	log.Infof("dashboard listening on :%s", cfg.Server.Port)
	if err := srv.Router().Run(fmt.Sprintf(":%s", cfg.Server.Port)); err != nil {
		log.Fatalf("server: %v", err)
	}
}
