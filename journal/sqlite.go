package journal

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type SQLiteJournal struct {
	db *sql.DB
}

func NewSQLite(path string) (*SQLiteJournal, error) {
	db, err := openSQLite(path, Schema)
	if err != nil {
		return nil, err
	}
	return &SQLiteJournal{db: db}, nil
}

func openSQLite(path, schema string) (*sql.DB, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func (j *SQLiteJournal) RecordLoan(l LoanRecord) error {
	_, err := j.db.Exec(`
		INSERT INTO loans
		(loan_id, event, amount, interest, capital, year, day, hour, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		l.LoanID, l.Event, l.Amount, l.Interest, l.Capital,
		l.Year, l.Day, l.Hour, l.RecordedAt,
	)
	return err
}

// RecordDay upserts on (year, day) so a replayed day overwrites its summary.
func (j *SQLiteJournal) RecordDay(d DayRecord) error {
	_, err := j.db.Exec(`
		INSERT OR REPLACE INTO days
		(year, day, capital, savings, debt, loans, income, costs, stress, age, job, recorded_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		d.Year, d.Day, d.Capital, d.Savings, d.Debt, d.Loans,
		d.Income, d.Costs, d.Stress, d.Age, d.Job, d.RecordedAt,
	)
	return err
}

func (j *SQLiteJournal) Close() error {
	return j.db.Close()
}
