package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"sync"

	_ "modernc.org/sqlite"
)

// SQLiteRecorder persists change snapshots and favourites to a SQLite
// database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL mode for better concurrent read performance.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Printf("[INFO] sqlite recorder opened: %s", dbPath)
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS price_changes (
			id               INTEGER PRIMARY KEY AUTOINCREMENT,
			timestamp        INTEGER NOT NULL,
			ticker           TEXT NOT NULL,
			value_per_day    REAL,
			percent_per_day  REAL,
			value_per_year   REAL,
			percent_per_year REAL,
			last_price       REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_changes_ticker_ts ON price_changes(ticker, timestamp)`,

		`CREATE TABLE IF NOT EXISTS favourites (
			id     INTEGER PRIMARY KEY AUTOINCREMENT,
			user   TEXT NOT NULL,
			ticker TEXT NOT NULL,
			UNIQUE(user, ticker)
		)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordChange(snap *ChangeSnapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO price_changes
		(timestamp, ticker, value_per_day, percent_per_day, value_per_year, percent_per_year, last_price)
		VALUES (?,?,?,?,?,?,?)`,
		snap.Taken.Unix(), snap.Ticker,
		snap.ValuePerDay, snap.PercentPerDay,
		snap.ValuePerYear, snap.PercentPerYear,
		snap.LastPrice,
	)
	return err
}

func (r *SQLiteRecorder) ToggleFavourite(user, ticker string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	res, err := r.db.Exec(`DELETE FROM favourites WHERE user = ? AND ticker = ?`, user, ticker)
	if err != nil {
		return false, err
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		return false, nil
	}
	if _, err := r.db.Exec(`INSERT INTO favourites (user, ticker) VALUES (?, ?)`, user, ticker); err != nil {
		return false, err
	}
	return true, nil
}

func (r *SQLiteRecorder) Favourites(user string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows, err := r.db.Query(`SELECT ticker FROM favourites WHERE user = ? ORDER BY ticker`, user)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var tickers []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		tickers = append(tickers, t)
	}
	return tickers, rows.Err()
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
