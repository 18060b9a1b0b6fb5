// Package sim is the tick-based economic simulation: the state model, the
// per-tick pipeline, job generation, career upgrades, loans and savings.
package sim

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/capital/internal/errs"
	"github.com/rustyeddy/capital/journal"
)

// DefaultStateKey is the store key the snapshot lives under.
const DefaultStateKey = "state"

type Options struct {
	// Store holds the snapshot. Nil keeps state in memory only.
	Store journal.Store
	// Key defaults to DefaultStateKey.
	Key string
	// Journal receives loan and end-of-day records. Nil discards them.
	Journal journal.Journal
	Logger  *zap.Logger
	// Seed for job generation; 0 picks a time-based seed.
	Seed int64
}

// Engine owns the State and serializes every tick and player action behind
// one mutex, so a tick is never observed half-applied.
type Engine struct {
	mu      sync.Mutex
	state   *State
	gen     *Generator
	store   journal.Store
	key     string
	journal journal.Journal
	log     *zap.Logger
	now     func() time.Time
}

// TickResult summarises what one Step did.
type TickResult struct {
	Hour             int
	Day              int
	Year             int
	Capital          float64
	ForcedLoans      []Loan
	FinishedUpgrades []TrackKind
	DayClosed        bool
}

func NewEngine(opts Options) *Engine {
	e := &Engine{
		gen:     NewGenerator(opts.Seed),
		store:   opts.Store,
		key:     opts.Key,
		journal: opts.Journal,
		log:     opts.Logger,
		now:     time.Now,
	}
	if e.store == nil {
		e.store = journal.NewMemoryStore()
	}
	if e.key == "" {
		e.key = DefaultStateKey
	}
	if e.journal == nil {
		e.journal = journal.NopJournal{}
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	e.state = NewState(e.gen)
	return e
}

// View returns a copy of the current state.
func (e *Engine) View() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Clone()
}

// Load restores the stored snapshot. A missing, unreadable or
// other-version snapshot leaves the defaults in place and reports false;
// only store failures are returned as errors.
func (e *Engine) Load(ctx context.Context) (bool, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	data, err := e.store.Get(ctx, e.key)
	if errors.Is(err, journal.ErrNotFound) {
		e.log.Info("no saved state, starting fresh", zap.String("key", e.key))
		return false, nil
	}
	if err != nil {
		return false, errs.Unavailable("load snapshot", err)
	}

	snap, err := Decode(data)
	if err != nil {
		e.log.Warn("discarding unreadable snapshot", zap.Error(err))
		return false, nil
	}

	if err := Restore(e.state, snap); err != nil {
		e.log.Warn("discarding snapshot",
			zap.Int("version", snap.Version),
			zap.Int("want", SnapshotVersion),
			zap.Error(err))
		return false, nil
	}

	e.log.Info("restored saved state",
		zap.Int("year", e.state.Year),
		zap.Int("day", e.state.Day),
		zap.Int("hour", e.state.Hour),
		zap.Float64("capital", e.state.Capital))
	return true, nil
}

// Save writes the current snapshot to the store.
func (e *Engine) Save(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.saveLocked(ctx)
}

func (e *Engine) saveLocked(ctx context.Context) error {
	data, err := Encode(e.state)
	if err != nil {
		return errs.Internal("save snapshot", err)
	}
	if err := e.store.Put(ctx, e.key, data); err != nil {
		return errs.Unavailable("save snapshot", err)
	}
	return nil
}

// Reset discards the stored snapshot and starts over from defaults.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.store.Delete(ctx, e.key); err != nil {
		return errs.Unavailable("delete snapshot", err)
	}
	e.state = NewState(e.gen)
	e.log.Info("state reset")
	return nil
}

// Step runs one tick, one in-game hour, in fixed order:
//  1. wage and costs
//  2. loans: base amount, end-of-day interest, force-borrowing
//  3. end-of-day savings interest
//  4. clock, aging and cooldowns
//  5. completed career upgrades
//  6. snapshot to the store
//
// Stages 1-5 run on a copy that replaces the live state only once they all
// succeed, so a failed tick leaves nothing half-applied.
func (e *Engine) Step(ctx context.Context) (TickResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.state.Clone()
	s := &next
	closingYear, closingDay := s.Year, s.Day

	s.updateCapital()

	forced, err := s.updateLoans()
	if err != nil {
		return TickResult{}, fmt.Errorf("tick: %w", err)
	}
	for _, l := range forced {
		e.recordLoan(s, l, journal.LoanForced)
	}
	if len(forced) > 0 {
		e.log.Info("force-borrowed to cover capital",
			zap.Int("loans", len(forced)),
			zap.Float64("amount", forced[0].Amount),
			zap.Float64("next_rate", s.Loans.InterestRate))
	}

	s.updatePassiveIncome()

	dayClosed := s.advanceClock()
	if dayClosed {
		e.recordDay(s, closingYear, closingDay)
	}

	finished := s.finishCompletedUpgrades()
	for _, kind := range finished {
		t, _ := s.Track(kind)
		e.log.Info("career upgrade finished",
			zap.String("track", string(kind)),
			zap.Int("level", t.Level),
			zap.Int("max_job_level", s.Jobs.MaxLevel))
	}

	e.state = s
	if err := e.saveLocked(ctx); err != nil {
		return TickResult{}, fmt.Errorf("tick: %w", err)
	}

	e.log.Debug("tick",
		zap.Int("year", s.Year),
		zap.Int("day", s.Day),
		zap.Int("hour", s.Hour),
		zap.Float64("capital", s.Capital),
		zap.Float64("income", s.TotalIncome()))

	return TickResult{
		Hour:             s.Hour,
		Day:              s.Day,
		Year:             s.Year,
		Capital:          s.Capital,
		ForcedLoans:      forced,
		FinishedUpgrades: finished,
		DayClosed:        dayClosed,
	}, nil
}

// Hire accepts a job offer.
func (e *Engine) Hire(jobID string) (Job, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	job, err := e.state.Hire(jobID)
	if err != nil {
		return Job{}, err
	}
	e.log.Info("hired", zap.String("job", job.Name), zap.Float64("wage", job.Wage))
	return job, nil
}

// Reject discards a job offer.
func (e *Engine) Reject(jobID string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Reject(jobID)
}

// RefreshJobs replaces the offers once the refresh cooldown has run out.
func (e *Engine) RefreshJobs() error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.state.RefreshJobs(e.gen); err != nil {
		return err
	}
	e.log.Info("job offers refreshed",
		zap.Int("offers", len(e.state.Jobs.Jobs)),
		zap.Float64("next_cooldown", e.state.Jobs.RefreshCooldown))
	return nil
}

// StartUpgrade begins an upgrade on an idle track.
func (e *Engine) StartUpgrade(kind TrackKind) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.state.StartUpgrade(kind); err != nil {
		return err
	}
	t, _ := e.state.Track(kind)
	e.log.Info("career upgrade started",
		zap.String("track", string(kind)),
		zap.Float64("hours", t.UpgradeTimer))
	return nil
}

// TakeLoan borrows the current base amount.
func (e *Engine) TakeLoan() Loan {
	e.mu.Lock()
	defer e.mu.Unlock()

	loan := e.state.TakeLoan()
	e.recordLoan(e.state, loan, journal.LoanTaken)
	return loan
}

// RepayLoan retires a loan and debits its principal from capital.
func (e *Engine) RepayLoan(loanID string) (Loan, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	loan, err := e.state.RepayLoan(loanID)
	if err != nil {
		return Loan{}, err
	}
	e.recordLoan(e.state, loan, journal.LoanRepaid)
	return loan, nil
}

// Deposit moves capital into savings.
func (e *Engine) Deposit(amount float64) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Deposit(amount)
}

// Withdraw moves up to amount from savings into capital.
func (e *Engine) Withdraw(amount float64) (float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state.Withdraw(amount)
}

// Ledger failures never stop the simulation.
func (e *Engine) recordLoan(s *State, l Loan, event string) {
	err := e.journal.RecordLoan(journal.LoanRecord{
		LoanID:     l.ID,
		Event:      event,
		Amount:     l.Amount,
		Interest:   l.Interest,
		Capital:    s.Capital,
		Year:       s.Year,
		Day:        s.Day,
		Hour:       s.Hour,
		RecordedAt: e.now(),
	})
	if err != nil {
		e.log.Warn("record loan", zap.String("loan", l.ID), zap.Error(err))
	}
}

func (e *Engine) recordDay(s *State, year, day int) {
	err := e.journal.RecordDay(journal.DayRecord{
		Year:       year,
		Day:        day,
		Capital:    s.Capital,
		Savings:    s.Savings.Balance,
		Debt:       s.Loans.Debt(),
		Loans:      len(s.Loans.Loans),
		Income:     s.TotalIncome(),
		Costs:      s.TotalCosts(),
		Stress:     s.TotalStress(),
		Age:        s.Age,
		Job:        s.Job.Name,
		RecordedAt: e.now(),
	})
	if err != nil {
		e.log.Warn("record day", zap.Int("year", year), zap.Int("day", day), zap.Error(err))
	}
}
