package journal

import (
	"fmt"
)

const loanColumns = `loan_id, event, amount, interest, capital, year, day, hour, recorded_at`

// LoanHistory returns every ledger event for one loan, oldest first.
func (j *SQLiteJournal) LoanHistory(loanID string) ([]LoanRecord, error) {
	rows, err := j.db.Query(`
		SELECT `+loanColumns+`
		FROM loans
		WHERE loan_id = ?
		ORDER BY seq ASC`, loanID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LoanRecord
	for rows.Next() {
		var rec LoanRecord
		if err := scanLoan(rows.Scan, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("loan %q not found", loanID)
	}
	return out, nil
}

// ListLoans returns the most recent limit loan events in chronological
// order. limit <= 0 returns all of them.
func (j *SQLiteJournal) ListLoans(limit int) ([]LoanRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.Query(`
		SELECT `+loanColumns+` FROM (
			SELECT seq, `+loanColumns+`
			FROM loans
			ORDER BY seq DESC
			LIMIT ?
		) ORDER BY seq ASC`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []LoanRecord
	for rows.Next() {
		var rec LoanRecord
		if err := scanLoan(rows.Scan, &rec); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ListDays returns the most recent limit day summaries in chronological
// order. limit <= 0 returns all of them.
func (j *SQLiteJournal) ListDays(limit int) ([]DayRecord, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := j.db.Query(`
		SELECT year, day, capital, savings, debt, loans, income, costs, stress, age, job, recorded_at
		FROM (
			SELECT * FROM days
			ORDER BY year DESC, day DESC
			LIMIT ?
		) ORDER BY year ASC, day ASC`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DayRecord
	for rows.Next() {
		var rec DayRecord
		if err := rows.Scan(
			&rec.Year,
			&rec.Day,
			&rec.Capital,
			&rec.Savings,
			&rec.Debt,
			&rec.Loans,
			&rec.Income,
			&rec.Costs,
			&rec.Stress,
			&rec.Age,
			&rec.Job,
			&rec.RecordedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanLoan(scan func(dest ...any) error, rec *LoanRecord) error {
	return scan(
		&rec.LoanID,
		&rec.Event,
		&rec.Amount,
		&rec.Interest,
		&rec.Capital,
		&rec.Year,
		&rec.Day,
		&rec.Hour,
		&rec.RecordedAt,
	)
}
