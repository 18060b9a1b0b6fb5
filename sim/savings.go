package sim

const initialSavingsInterest = 0.0001

// SavingsAccount compounds its balance once per in-game day.
type SavingsAccount struct {
	Balance  float64
	Interest float64
}

func NewSavingsAccount() SavingsAccount {
	return SavingsAccount{Interest: initialSavingsInterest}
}

// Deposit adds to the balance. The caller has already debited the funds.
func (a *SavingsAccount) Deposit(amount float64) {
	a.Balance += amount
}

// Withdraw takes at most the balance and returns what was taken.
func (a *SavingsAccount) Withdraw(amount float64) float64 {
	taken := amount
	if amount > a.Balance {
		taken = a.Balance
	}
	a.Balance -= taken
	return taken
}

func (a *SavingsAccount) Compound() {
	a.Balance += a.Balance * a.Interest
}
