// journal/journal.go
package journal

import "time"

// Loan ledger events.
const (
	LoanTaken  = "taken"
	LoanForced = "forced"
	LoanRepaid = "repaid"
)

// LoanRecord is one entry in the loan ledger: a loan issued (manually or by
// force-borrowing) or repaid. Capital is the balance right after the event.
type LoanRecord struct {
	LoanID     string
	Event      string
	Amount     float64
	Interest   float64
	Capital    float64
	Year       int
	Day        int
	Hour       int
	RecordedAt time.Time
}

// DayRecord summarises the economy at the close of one in-game day.
type DayRecord struct {
	Year       int
	Day        int
	Capital    float64
	Savings    float64
	Debt       float64
	Loans      int
	Income     float64
	Costs      float64
	Stress     float64
	Age        float64
	Job        string
	RecordedAt time.Time
}

type Journal interface {
	RecordLoan(LoanRecord) error
	RecordDay(DayRecord) error
	Close() error
}

// NopJournal discards everything.
type NopJournal struct{}

func (NopJournal) RecordLoan(LoanRecord) error { return nil }
func (NopJournal) RecordDay(DayRecord) error   { return nil }
func (NopJournal) Close() error                { return nil }
