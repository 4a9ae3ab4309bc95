package recorder

import (
	"database/sql"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"VixSentinel/internal/model"
)

// SQLiteRecorder persists historical data to a SQLite database.
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

	// WAL mode for better concurrent read performance (dashboards read while the daemon writes).
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
		`CREATE TABLE IF NOT EXISTS term_structures (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			date      INTEGER NOT NULL,
			month     INTEGER NOT NULL,
			label     TEXT,
			price     REAL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_term_date ON term_structures(date)`,

		`CREATE TABLE IF NOT EXISTS shape_history (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			date      INTEGER NOT NULL,
			shape     TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_shape_date ON shape_history(date)`,

		`CREATE TABLE IF NOT EXISTS dependence_stats (
			id          INTEGER PRIMARY KEY AUTOINCREMENT,
			date        INTEGER NOT NULL,
			correlation REAL,
			mutual_info REAL,
			points      INTEGER
		)`,
		`CREATE INDEX IF NOT EXISTS idx_dep_date ON dependence_stats(date)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// nullIfNaN stores NaN statistics as SQL NULL.
func nullIfNaN(f float64) interface{} {
	if math.IsNaN(f) {
		return nil
	}
	return f
}

func (r *SQLiteRecorder) RecordTermStructure(date time.Time, ts model.TermStructure) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, p := range ts {
		_, err := r.db.Exec(`INSERT INTO term_structures (date, month, label, price)
			VALUES (?,?,?,?)`,
			date.Unix(), i+1, p.Label, p.Price,
		)
		if err != nil {
			return err
		}
	}
	return nil
}

func (r *SQLiteRecorder) RecordShape(p model.ShapePoint) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO shape_history (date, shape) VALUES (?,?)`,
		p.Time.Unix(), string(p.Shape),
	)
	return err
}

func (r *SQLiteRecorder) RecordDependence(date time.Time, stats *DependenceStats) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(`INSERT INTO dependence_stats (date, correlation, mutual_info, points)
		VALUES (?,?,?,?)`,
		date.Unix(), nullIfNaN(stats.Correlation), nullIfNaN(stats.MutualInformation), stats.Points,
	)
	return err
}

func (r *SQLiteRecorder) Close() error {
	log.Println("[INFO] closing sqlite recorder")
	return r.db.Close()
}
