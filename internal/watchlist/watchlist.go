// Package watchlist loads and saves the holdings and alert definitions the
// CLI and the watcher daemon feed into the tracker core. The core itself
// stays stateless; these files are presentation-layer state.
package watchlist

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/model"
)

// LoadHoldings reads holdings from a JSON file. A missing file yields an
// empty list.
func LoadHoldings(path string) ([]model.Holding, error) {
	var holdings []model.Holding
	if err := load(path, &holdings); err != nil {
		return nil, fmt.Errorf("load holdings: %w", err)
	}
	return holdings, nil
}

// SaveHoldings writes holdings to a JSON file.
func SaveHoldings(path string, holdings []model.Holding) error {
	if err := save(path, holdings); err != nil {
		return fmt.Errorf("save holdings: %w", err)
	}
	return nil
}

// LoadAlerts reads alert definitions from a JSON file. A missing file
// yields an empty list.
func LoadAlerts(path string) ([]model.Alert, error) {
	var alerts []model.Alert
	if err := load(path, &alerts); err != nil {
		return nil, fmt.Errorf("load alerts: %w", err)
	}
	return alerts, nil
}

// SaveAlerts writes alert definitions to a JSON file.
func SaveAlerts(path string, alerts []model.Alert) error {
	if err := save(path, alerts); err != nil {
		return fmt.Errorf("save alerts: %w", err)
	}
	return nil
}

func load(path string, dst interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, dst)
}

func save(path string, src interface{}) error {
	data, err := json.MarshalIndent(src, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
