package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration, shared by the CLI, the
// dashboard server and the watcher daemon.
type Config struct {
	DataSource struct {
		BaseURL string `yaml:"base_url"` // override for the Yahoo endpoint (mirrors, tests)
	} `yaml:"data_source"`
	Fetch struct {
		Concurrency int `yaml:"concurrency"`
	} `yaml:"fetch"`
	Server struct {
		Port string `yaml:"port"`
	} `yaml:"server"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Watch struct {
		AlertCron     string `yaml:"alert_cron"`
		PortfolioCron string `yaml:"portfolio_cron"`
		HoldingsFile  string `yaml:"holdings_file"`
		AlertsFile    string `yaml:"alerts_file"`
	} `yaml:"watch"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
	Proxy string `yaml:"proxy"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides. A missing file is not an error; defaults fill the gaps.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("YAHOO_BASE_URL"); v != "" {
		cfg.DataSource.BaseURL = v
	}
	if v := os.Getenv("FETCH_CONCURRENCY"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Fetch.Concurrency = n
		}
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Server.Port = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("CRON_ALERTS"); v != "" {
		cfg.Watch.AlertCron = v
	}
	if v := os.Getenv("CRON_PORTFOLIO"); v != "" {
		cfg.Watch.PortfolioCron = v
	}
	if v := os.Getenv("HOLDINGS_FILE"); v != "" {
		cfg.Watch.HoldingsFile = v
	}
	if v := os.Getenv("ALERTS_FILE"); v != "" {
		cfg.Watch.AlertsFile = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.Fetch.Concurrency == 0 {
		cfg.Fetch.Concurrency = 1
	}
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080"
	}
	if cfg.Watch.AlertCron == "" {
		cfg.Watch.AlertCron = "0 */15 * * * *"
	}
	if cfg.Watch.PortfolioCron == "" {
		cfg.Watch.PortfolioCron = "0 0 18 * * 1-5"
	}
	if cfg.Watch.HoldingsFile == "" {
		cfg.Watch.HoldingsFile = "data/holdings.json"
	}
	if cfg.Watch.AlertsFile == "" {
		cfg.Watch.AlertsFile = "data/alerts.json"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}

	return cfg, nil
}

// Validate checks the fields the watcher daemon cannot run without.
// The CLI and the dashboard don't need Telegram and skip this.
func (c *Config) Validate() error {
	if c.Telegram.BotToken == "" {
		return fmt.Errorf("telegram.bot_token is required")
	}
	if c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required")
	}
	if c.Fetch.Concurrency < 1 {
		return fmt.Errorf("fetch.concurrency must be at least 1")
	}
	return nil
}
