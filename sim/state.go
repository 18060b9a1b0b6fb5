package sim

import (
	"fmt"
	"math"

	"github.com/rustyeddy/capital/internal/errs"
)

// State is the aggregate root of the simulation. Capital may dip below
// zero inside a tick but force-borrowing restores it before the tick ends.
type State struct {
	Capital float64
	Hour    int
	Day     int
	Year    int
	Age     float64

	WageFactor   float64
	BaseCosts    float64
	CostsFactor  float64
	BaseStress   float64
	StressFactor float64

	Job Job

	Networking Track
	Education  Track

	Jobs    JobPool
	Loans   LoanBook
	Savings SavingsAccount
}

// NewState returns the starting state with a freshly generated job pool.
func NewState(g *Generator) *State {
	s := &State{
		Capital:      1.0,
		Age:          18.0,
		WageFactor:   1.0,
		BaseCosts:    0.01,
		CostsFactor:  1.0,
		BaseStress:   1.0,
		StressFactor: 1.0,
		Job:          Unemployed(),
		Networking:   newTrack(Networking),
		Education:    newTrack(Education),
		Jobs:         NewJobPool(),
		Loans:        NewLoanBook(),
		Savings:      NewSavingsAccount(),
	}
	s.Jobs.Refill(g)
	return s
}

// TotalCosts is the hourly cost after the costs multiplier.
func (s *State) TotalCosts() float64 {
	return s.CostsFactor * (s.BaseCosts + s.Job.Costs)
}

// TotalIncome is the hourly net income: scaled wage minus total costs.
func (s *State) TotalIncome() float64 {
	return s.WageFactor*s.Job.Wage - s.TotalCosts()
}

// TotalStress drives aging: one tick ages the player by TotalStress/8760 years.
func (s *State) TotalStress() float64 {
	return s.StressFactor * s.BaseStress * s.Job.Stress
}

// Track returns the named career track.
func (s *State) Track(kind TrackKind) (*Track, error) {
	switch kind {
	case Networking:
		return &s.Networking, nil
	case Education:
		return &s.Education, nil
	}
	return nil, errs.InvalidInput(fmt.Sprintf("unknown career track %q", kind), nil)
}

// Clone returns a deep copy safe to read while the engine keeps ticking.
func (s *State) Clone() State {
	c := *s
	if s.Jobs.Jobs != nil {
		c.Jobs.Jobs = append([]Job(nil), s.Jobs.Jobs...)
	}
	if s.Loans.Loans != nil {
		c.Loans.Loans = append([]Loan(nil), s.Loans.Loans...)
	}
	return c
}

// Hire installs the offer as the active job, replacing the current one.
func (s *State) Hire(jobID string) (Job, error) {
	job, err := s.Jobs.Hire(jobID)
	if err != nil {
		return Job{}, err
	}
	s.Job = job
	return job, nil
}

func (s *State) Reject(jobID string) error {
	return s.Jobs.Reject(jobID)
}

func (s *State) RefreshJobs(g *Generator) error {
	return s.Jobs.Refresh(g)
}

// StartUpgrade starts an upgrade on an idle track. Starting a track that is
// already upgrading is rejected without touching the state.
func (s *State) StartUpgrade(kind TrackKind) error {
	t, err := s.Track(kind)
	if err != nil {
		return err
	}
	return t.start(s)
}

// TakeLoan issues a loan at the current base amount and credits capital.
func (s *State) TakeLoan() Loan {
	loan := s.Loans.Take()
	s.Capital += loan.Amount
	return loan
}

// RepayLoan retires the loan and debits its principal from capital. A
// shortfall is covered by force-borrowing on the next tick.
func (s *State) RepayLoan(loanID string) (Loan, error) {
	loan, err := s.Loans.Repay(loanID)
	if err != nil {
		return Loan{}, err
	}
	s.Capital -= loan.Amount
	return loan, nil
}

// Deposit moves capital into savings; it is refused if capital does not
// cover the amount.
func (s *State) Deposit(amount float64) error {
	if err := validAmount(amount); err != nil {
		return err
	}
	if amount > s.Capital {
		return errs.InvalidInput(fmt.Sprintf("deposit %.2f exceeds capital %.2f", amount, s.Capital), nil)
	}
	s.Capital -= amount
	s.Savings.Deposit(amount)
	return nil
}

// Withdraw moves up to amount from savings into capital and returns what
// was moved. Over-withdrawal clamps to the balance.
func (s *State) Withdraw(amount float64) (float64, error) {
	if err := validAmount(amount); err != nil {
		return 0, err
	}
	taken := s.Savings.Withdraw(amount)
	s.Capital += taken
	return taken, nil
}

func validAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount < 0 {
		return errs.InvalidInput(fmt.Sprintf("invalid amount %v", amount), nil)
	}
	return nil
}

// updateCapital pays the hourly wage and charges the hourly costs.
func (s *State) updateCapital() {
	s.Capital += s.WageFactor * s.Job.Wage
	s.Capital -= s.TotalCosts()
}

// updateLoans re-sizes the next loan, charges daily interest on the last
// hour of the day, then borrows until capital is non-negative.
func (s *State) updateLoans() ([]Loan, error) {
	s.Loans.Recompute(s.TotalCosts())

	if s.Hour == HoursPerDay-1 {
		for _, l := range s.Loans.Loans {
			s.Capital -= l.DailyCharge()
		}
	}

	capital, issued, err := s.Loans.Cover(s.Capital)
	s.Capital = capital
	return issued, err
}

func (s *State) updatePassiveIncome() {
	if s.Hour == HoursPerDay-1 {
		s.Savings.Compound()
	}
}

// finishCompletedUpgrades completes every track whose timer ran out.
func (s *State) finishCompletedUpgrades() []TrackKind {
	var finished []TrackKind
	for _, kind := range TrackKinds {
		t, _ := s.Track(kind)
		if t.completed() {
			t.finish(s)
			finished = append(finished, kind)
		}
	}
	return finished
}
