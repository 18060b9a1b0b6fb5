package sim

import (
	"fmt"

	"github.com/rustyeddy/capital/internal/errs"
	"github.com/rustyeddy/capital/internal/id"
)

const (
	initialInterestRate = 0.01
	interestRateStep    = 0.01
	loanCostsMultiple   = 10.0
)

// Loan is fixed at issuance. Interest is the daily rate charged on Amount.
type Loan struct {
	ID       string  `json:"id,omitempty"`
	Amount   float64 `json:"amount"`
	Interest float64 `json:"interest"`
}

// DailyCharge is the interest the loan costs per in-game day.
func (l Loan) DailyCharge() float64 {
	return l.Amount * l.Interest
}

// LoanBook issues and retires loans. It never touches capital; the State
// owns every capital flow.
type LoanBook struct {
	InterestRate float64
	BaseAmount   float64
	Loans        []Loan
}

func NewLoanBook() LoanBook {
	return LoanBook{InterestRate: initialInterestRate}
}

// Recompute sizes the next loan from the current hourly costs.
func (b *LoanBook) Recompute(totalCosts float64) {
	b.BaseAmount = totalCosts * loanCostsMultiple
}

// Take issues a loan of BaseAmount at the current rate; each outstanding
// loan raises the rate of the next one.
func (b *LoanBook) Take() Loan {
	loan := Loan{
		ID:       id.New(),
		Amount:   b.BaseAmount,
		Interest: b.InterestRate,
	}
	b.Loans = append(b.Loans, loan)
	b.InterestRate += interestRateStep
	return loan
}

func (b *LoanBook) Repay(loanID string) (Loan, error) {
	for i, l := range b.Loans {
		if l.ID == loanID {
			b.Loans = append(b.Loans[:i], b.Loans[i+1:]...)
			b.InterestRate -= interestRateStep
			return l, nil
		}
	}
	return Loan{}, errs.NotFound(fmt.Sprintf("loan %q not found", loanID), nil)
}

// Cover takes loans until capital is non-negative and returns the new
// capital along with the loans issued.
func (b *LoanBook) Cover(capital float64) (float64, []Loan, error) {
	var issued []Loan
	for capital < 0 {
		if b.BaseAmount <= 0 {
			return capital, issued, errs.Internal(
				fmt.Sprintf("cannot cover capital %.2f with loans of %.2f", capital, b.BaseAmount), nil)
		}
		loan := b.Take()
		capital += loan.Amount
		issued = append(issued, loan)
	}
	return capital, issued, nil
}

// Debt is the total outstanding principal.
func (b *LoanBook) Debt() float64 {
	var total float64
	for _, l := range b.Loans {
		total += l.Amount
	}
	return total
}

// DailyInterest is the total interest charged at the end of each day.
func (b *LoanBook) DailyInterest() float64 {
	var total float64
	for _, l := range b.Loans {
		total += l.DailyCharge()
	}
	return total
}
