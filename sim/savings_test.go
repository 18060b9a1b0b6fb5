package sim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rustyeddy/capital/internal/errs"
)

func TestSavingsAccount(t *testing.T) {
	t.Parallel()

	a := NewSavingsAccount()
	a.Deposit(100)
	a.Compound()
	assert.InDelta(t, 100.01, a.Balance, 1e-9)

	assert.Equal(t, 40.0, a.Withdraw(40))
	assert.InDelta(t, 60.01, a.Balance, 1e-9)

	taken := a.Withdraw(1000)
	assert.InDelta(t, 60.01, taken, 1e-9)
	assert.Equal(t, 0.0, a.Balance)
}

func TestStateDeposit(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.Capital = 10

	require.NoError(t, s.Deposit(4))
	assert.Equal(t, 6.0, s.Capital)
	assert.Equal(t, 4.0, s.Savings.Balance)

	err := s.Deposit(7)
	assert.True(t, errs.Is(err, errs.ErrTypeInvalidInput))
	assert.Equal(t, 6.0, s.Capital)
	assert.Equal(t, 4.0, s.Savings.Balance)
}

func TestStateWithdraw(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.Savings.Balance = 3

	taken, err := s.Withdraw(5)
	require.NoError(t, err)
	assert.Equal(t, 3.0, taken)
	assert.Equal(t, 4.0, s.Capital)
	assert.Equal(t, 0.0, s.Savings.Balance)
}

func TestInvalidAmounts(t *testing.T) {
	t.Parallel()

	for _, amount := range []float64{-1, math.NaN(), math.Inf(1), math.Inf(-1)} {
		s := newTestState(t)
		assert.True(t, errs.Is(s.Deposit(amount), errs.ErrTypeInvalidInput), "deposit %v", amount)
		_, err := s.Withdraw(amount)
		assert.True(t, errs.Is(err, errs.ErrTypeInvalidInput), "withdraw %v", amount)
		assert.Equal(t, 1.0, s.Capital)
	}
}

func TestSavingsCompoundOnlyOnLastHour(t *testing.T) {
	t.Parallel()

	s := newTestState(t)
	s.Savings.Balance = 100

	s.Hour = 5
	s.updatePassiveIncome()
	assert.Equal(t, 100.0, s.Savings.Balance)

	s.Hour = 23
	s.updatePassiveIncome()
	assert.InDelta(t, 100.01, s.Savings.Balance, 1e-9)
}
