package recorder

import "github.com/cblythe8/Stock-Crypto-Tracker/internal/model"

// NoopRecorder is a no-op implementation used when SQLite is not configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordQuote(_ *model.Quote) error                  { return nil }
func (n *NoopRecorder) RecordValuation(_ *model.PortfolioValuation) error { return nil }
func (n *NoopRecorder) RecordAlertSweep(_ []model.AlertResult) error      { return nil }
func (n *NoopRecorder) Close() error                                      { return nil }
