package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/capital/internal/errs"
)

func TestLoanBookCover(t *testing.T) {
	t.Parallel()

	b := NewLoanBook()
	b.BaseAmount = 10

	capital, issued, err := b.Cover(-50)
	require.NoError(t, err)

	assert.Equal(t, 0.0, capital)
	assert.Len(t, issued, 5)
	assert.Len(t, b.Loans, 5)
	assert.InDelta(t, 0.06, b.InterestRate, 1e-9)

	for i, l := range issued {
		assert.Equal(t, 10.0, l.Amount)
		assert.InDelta(t, 0.01*float64(i+1), l.Interest, 1e-9)
		assert.NotEmpty(t, l.ID)
	}
}

func TestLoanBookCoverNonNegative(t *testing.T) {
	t.Parallel()

	b := NewLoanBook()
	b.BaseAmount = 10

	capital, issued, err := b.Cover(3)
	require.NoError(t, err)
	assert.Equal(t, 3.0, capital)
	assert.Empty(t, issued)
	assert.Equal(t, 0.01, b.InterestRate)
}

func TestLoanBookCoverWithoutBaseAmount(t *testing.T) {
	t.Parallel()

	b := NewLoanBook()
	_, _, err := b.Cover(-1)
	assert.True(t, errs.Is(err, errs.ErrTypeInternal))
	assert.Empty(t, b.Loans)
}

func TestLoanBookRepay(t *testing.T) {
	t.Parallel()

	b := NewLoanBook()
	b.Recompute(0.5)
	assert.Equal(t, 5.0, b.BaseAmount)

	first := b.Take()
	second := b.Take()
	assert.InDelta(t, 0.03, b.InterestRate, 1e-9)
	assert.Equal(t, 10.0, b.Debt())
	assert.InDelta(t, 5*0.01+5*0.02, b.DailyInterest(), 1e-12)

	repaid, err := b.Repay(first.ID)
	require.NoError(t, err)
	assert.Equal(t, first, repaid)
	assert.Equal(t, []Loan{second}, b.Loans)
	assert.InDelta(t, 0.02, b.InterestRate, 1e-9)

	_, err = b.Repay(first.ID)
	assert.True(t, errs.Is(err, errs.ErrTypeNotFound))
	assert.InDelta(t, 0.02, b.InterestRate, 1e-9)
}

func TestStateLoansMoveCapital(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.Loans.BaseAmount = 4

	loan := s.TakeLoan()
	assert.Equal(t, 5.0, s.Capital)

	_, err := s.RepayLoan(loan.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, s.Capital)
	assert.Empty(t, s.Loans.Loans)
	assert.InDelta(t, 0.01, s.Loans.InterestRate, 1e-9)
}

func TestDailyInterestChargedOnLastHour(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.Capital = 5
	s.Loans.Loans = []Loan{{ID: "l1", Amount: 10, Interest: 0.01}}

	s.Hour = 10
	_, err := s.updateLoans()
	require.NoError(t, err)
	assert.Equal(t, 5.0, s.Capital)

	s.Hour = 23
	issued, err := s.updateLoans()
	require.NoError(t, err)
	assert.Empty(t, issued)
	assert.InDelta(t, 4.9, s.Capital, 1e-12)
	assert.InDelta(t, 0.1, s.Loans.BaseAmount, 1e-12)
}
