package recorder

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/cblythe8/Stock-Crypto-Tracker/internal/model"
)

// SQLiteRecorder persists snapshots to a SQLite database. Decimal amounts
// are stored as text to keep exact values.
type SQLiteRecorder struct {
	db  *sqlx.DB
	log *logrus.Logger
	mu  sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs
// migrations.
func NewSQLiteRecorder(dbPath string, log *logrus.Logger) (*SQLiteRecorder, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance (dashboards read
	// while the daemon writes).
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db, log: log}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Infof("sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS quotes (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp      INTEGER NOT NULL,
			symbol         TEXT NOT NULL,
			name           TEXT,
			price          REAL,
			currency       TEXT,
			change_percent REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_quotes_ts ON quotes(timestamp)`,

		`CREATE TABLE IF NOT EXISTS valuations (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id      TEXT NOT NULL,
			timestamp   INTEGER NOT NULL,
			line_count  INTEGER,
			total_value TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_valuations_ts ON valuations(timestamp)`,

		`CREATE TABLE IF NOT EXISTS valuation_lines (
			id       INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id   TEXT NOT NULL,
			symbol   TEXT NOT NULL,
			name     TEXT,
			quantity TEXT,
			price    TEXT,
			value    TEXT,
			currency TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_valuation_lines_run ON valuation_lines(run_id)`,

		`CREATE TABLE IF NOT EXISTS alert_sweeps (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id    TEXT NOT NULL,
			timestamp INTEGER NOT NULL,
			symbol    TEXT NOT NULL,
			target    TEXT,
			current   TEXT,
			direction TEXT,
			triggered INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alert_sweeps_ts ON alert_sweeps(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordQuote(q *model.Quote) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var price interface{}
	if q.HasPrice() {
		price = *q.Price
	}
	_, err := r.db.Exec(`INSERT INTO quotes
		(timestamp, symbol, name, price, currency, change_percent)
		VALUES (?,?,?,?,?,?)`,
		time.Now().Unix(), q.Symbol, q.Name, price, q.Currency, q.ChangePercent,
	)
	return err
}

func (r *SQLiteRecorder) RecordValuation(v *model.PortfolioValuation) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	runID := uuid.NewString()
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`INSERT INTO valuations
		(run_id, timestamp, line_count, total_value)
		VALUES (?,?,?,?)`,
		runID, time.Now().Unix(), len(v.Lines), v.TotalValue.String(),
	); err != nil {
		return err
	}
	for _, line := range v.Lines {
		if _, err := tx.Exec(`INSERT INTO valuation_lines
			(run_id, symbol, name, quantity, price, value, currency)
			VALUES (?,?,?,?,?,?,?)`,
			runID, line.Symbol, line.Name, line.Quantity.String(),
			line.Price.String(), line.Value.String(), line.Currency,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) RecordAlertSweep(results []model.AlertResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	runID := uuid.NewString()
	now := time.Now().Unix()
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, res := range results {
		if _, err := tx.Exec(`INSERT INTO alert_sweeps
			(run_id, timestamp, symbol, target, current, direction, triggered)
			VALUES (?,?,?,?,?,?,?)`,
			runID, now, res.Symbol, res.Target.String(), res.Current.String(),
			string(res.Direction), res.Triggered,
		); err != nil {
			return err
		}
	}
	return tx.Commit()
}

func (r *SQLiteRecorder) Close() error {
	r.log.Info("closing sqlite recorder")
	return r.db.Close()
}
