package export

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	_ "modernc.org/sqlite"

	"MarketCalendar/internal/model"
)

// Store writes dashboard snapshots into a SQLite database.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// OpenStore opens (or creates) the database at path and runs migrations.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS snapshots (
			id           INTEGER PRIMARY KEY AUTOINCREMENT,
			generated_at INTEGER NOT NULL,
			view_date    TEXT,
			timeframe    TEXT,
			metric       TEXT,
			theme        TEXT,
			source       TEXT
		)`,

		`CREATE TABLE IF NOT EXISTS records (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id    INTEGER NOT NULL REFERENCES snapshots(id),
			date           TEXT NOT NULL,
			open_price     REAL,
			close_price    REAL,
			high_price     REAL,
			low_price      REAL,
			volume         REAL,
			volatility     REAL,
			liquidity      REAL,
			performance    REAL,
			rsi            REAL,
			moving_average REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_records_date ON records(snapshot_id, date)`,

		`CREATE TABLE IF NOT EXISTS triggered_alerts (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id INTEGER NOT NULL REFERENCES snapshots(id),
			alert_id    TEXT,
			type        TEXT,
			condition   TEXT,
			threshold   REAL,
			message     TEXT,
			date        TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_triggered_alert ON triggered_alerts(snapshot_id, alert_id)`,

		`CREATE TABLE IF NOT EXISTS patterns (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			snapshot_id INTEGER NOT NULL REFERENCES snapshots(id),
			type        TEXT,
			description TEXT,
			confidence  REAL,
			dates       TEXT
		)`,
	}

	for _, st := range stmts {
		if _, err := s.db.Exec(st); err != nil {
			return fmt.Errorf("exec %q: %w", st[:40], err)
		}
	}
	return nil
}

// Save writes snap in one transaction and returns its snapshot ID.
func (s *Store) Save(ctx context.Context, snap model.View) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx, `INSERT INTO snapshots
		(generated_at, view_date, timeframe, metric, theme, source)
		VALUES (?,?,?,?,?,?)`,
		snap.GeneratedAt.Unix(), snap.CurrentDate.Format("2006-01-02"),
		string(snap.Timeframe), string(snap.Metric), snap.Theme.ID, snap.Source,
	)
	if err != nil {
		return 0, fmt.Errorf("insert snapshot: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, err
	}

	for _, d := range snap.Data {
		if _, err := tx.ExecContext(ctx, `INSERT INTO records
			(snapshot_id, date, open_price, close_price, high_price, low_price,
			 volume, volatility, liquidity, performance, rsi, moving_average)
			VALUES (?,?,?,?,?,?,?,?,?,?,?,?)`,
			id, d.Date, d.OpenPrice, d.ClosePrice, d.HighPrice, d.LowPrice,
			d.Volume, d.Volatility, d.Liquidity, d.Performance, d.RSI, d.MovingAverage,
		); err != nil {
			return 0, fmt.Errorf("insert record %s: %w", d.Date, err)
		}
	}

	for _, a := range snap.Triggered {
		for _, date := range a.TriggeredDates {
			if _, err := tx.ExecContext(ctx, `INSERT INTO triggered_alerts
				(snapshot_id, alert_id, type, condition, threshold, message, date)
				VALUES (?,?,?,?,?,?,?)`,
				id, a.ID, string(a.Type), string(a.Condition), a.Threshold, a.Message, date,
			); err != nil {
				return 0, fmt.Errorf("insert triggered alert %s: %w", a.ID, err)
			}
		}
	}

	for _, p := range snap.Patterns {
		if _, err := tx.ExecContext(ctx, `INSERT INTO patterns
			(snapshot_id, type, description, confidence, dates)
			VALUES (?,?,?,?,?)`,
			id, string(p.Type), p.Description, p.Confidence, strings.Join(p.Dates, ","),
		); err != nil {
			return 0, fmt.Errorf("insert pattern: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return id, nil
}

// Close folds the write-ahead log back into the main file and closes the
// database.
func (s *Store) Close() error {
	if _, err := s.db.Exec("PRAGMA wal_checkpoint(TRUNCATE)"); err != nil {
		s.db.Close()
		return fmt.Errorf("checkpoint: %w", err)
	}
	return s.db.Close()
}

// SQLite writes the snapshot as a standalone database file.
type SQLite struct{}

func (SQLite) ContentType() string { return "application/vnd.sqlite3" }
func (SQLite) Extension() string   { return "sqlite" }

func (SQLite) Export(ctx context.Context, w io.Writer, snap model.View) error {
	if len(snap.Data) == 0 {
		return ErrEmptyInput
	}

	dir, err := os.MkdirTemp("", "calendar-export-*")
	if err != nil {
		return fmt.Errorf("temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	path := filepath.Join(dir, "snapshot.sqlite")
	store, err := OpenStore(path)
	if err != nil {
		return err
	}
	if _, err := store.Save(ctx, snap); err != nil {
		store.Close()
		return err
	}
	if err := store.Close(); err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("reopen snapshot: %w", err)
	}
	defer f.Close()
	if _, err := io.Copy(w, f); err != nil {
		return fmt.Errorf("copy snapshot: %w", err)
	}
	return nil
}
