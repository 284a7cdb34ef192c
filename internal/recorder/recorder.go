package recorder

import "github.com/cblythe8/Stock-Crypto-Tracker/internal/model"

// Recorder persists fetch and evaluation snapshots for later inspection
// (Grafana over the SQLite file, ad-hoc queries). The tracker core never
// reads recorded data back; recording is write-only.
type Recorder interface {
	RecordQuote(q *model.Quote) error
	RecordValuation(v *model.PortfolioValuation) error
	RecordAlertSweep(results []model.AlertResult) error
	Close() error
}
