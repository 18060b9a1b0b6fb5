package journal

import (
	"encoding/csv"
	"os"
	"strconv"
	"time"
)

var (
	loanHeader = []string{"loan_id", "event", "amount", "interest", "capital", "year", "day", "hour", "recorded_at"}
	dayHeader  = []string{"year", "day", "capital", "savings", "debt", "loans", "income", "costs", "stress", "age", "job", "recorded_at"}
)

type CSVJournal struct {
	loans  *csv.Writer
	days   *csv.Writer
	lf, df *os.File
}

// NewCSV opens the loan and day ledgers for appending, creating them with
// a header row when they are new or empty.
func NewCSV(loansPath, daysPath string) (*CSVJournal, error) {
	lf, lw, err := openCSVLedger(loansPath, loanHeader)
	if err != nil {
		return nil, err
	}
	df, dw, err := openCSVLedger(daysPath, dayHeader)
	if err != nil {
		_ = lf.Close()
		return nil, err
	}
	return &CSVJournal{lw, dw, lf, df}, nil
}

func openCSVLedger(path string, header []string) (*os.File, *csv.Writer, error) {
	fh, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, nil, err
	}
	info, err := fh.Stat()
	if err != nil {
		_ = fh.Close()
		return nil, nil, err
	}

	w := csv.NewWriter(fh)
	if info.Size() == 0 {
		if err := w.Write(header); err != nil {
			_ = fh.Close()
			return nil, nil, err
		}
		w.Flush()
		if err := w.Error(); err != nil {
			_ = fh.Close()
			return nil, nil, err
		}
	}
	return fh, w, nil
}

func (j *CSVJournal) RecordLoan(l LoanRecord) error {
	err := j.loans.Write([]string{
		l.LoanID,
		l.Event,
		f(l.Amount),
		f(l.Interest),
		f(l.Capital),
		strconv.Itoa(l.Year),
		strconv.Itoa(l.Day),
		strconv.Itoa(l.Hour),
		l.RecordedAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.loans.Flush()
	return j.loans.Error()
}

func (j *CSVJournal) RecordDay(d DayRecord) error {
	err := j.days.Write([]string{
		strconv.Itoa(d.Year),
		strconv.Itoa(d.Day),
		f(d.Capital),
		f(d.Savings),
		f(d.Debt),
		strconv.Itoa(d.Loans),
		f(d.Income),
		f(d.Costs),
		f(d.Stress),
		f(d.Age),
		d.Job,
		d.RecordedAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	j.days.Flush()
	return j.days.Error()
}

func (j *CSVJournal) Close() error {
	j.loans.Flush()
	if err := j.loans.Error(); err != nil {
		return err
	}
	j.days.Flush()
	if err := j.days.Error(); err != nil {
		return err
	}

	if err := j.lf.Close(); err != nil {
		return err
	}
	if err := j.df.Close(); err != nil {
		return err
	}
	return nil
}

func f(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}
