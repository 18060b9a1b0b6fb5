package sim

import (
	"encoding/json"
	"errors"
	"fmt"
)

// SnapshotVersion is bumped whenever the snapshot shape changes. Snapshots
// with any other version are discarded; there are no migrations.
const SnapshotVersion = 8

var ErrVersionMismatch = errors.New("snapshot version mismatch")

type Snapshot struct {
	Version      int     `json:"version"`
	Capital      float64 `json:"capital"`
	Hour         int     `json:"hour"`
	Day          int     `json:"day"`
	Year         int     `json:"year"`
	Age          float64 `json:"age"`
	WageFactor   float64 `json:"wageFactor"`
	BaseCosts    float64 `json:"baseCosts"`
	CostsFactor  float64 `json:"costsFactor"`
	BaseStress   float64 `json:"baseStress"`
	StressFactor float64 `json:"stressFactor"`

	Job           Job                   `json:"job"`
	Loans         LoansSnapshot         `json:"loans"`
	PassiveIncome PassiveIncomeSnapshot `json:"passiveIncome"`
	Career        CareerSnapshot        `json:"career"`
	AvailableJobs AvailableJobsSnapshot `json:"availableJobs"`
}

type LoansSnapshot struct {
	InterestRate float64 `json:"interestRate"`
	BaseAmount   float64 `json:"baseAmount"`
	Loans        []Loan  `json:"loans"`
}

type PassiveIncomeSnapshot struct {
	SavingsAccount SavingsSnapshot `json:"savingsAccount"`
}

type SavingsSnapshot struct {
	Balance  float64 `json:"balance"`
	Interest float64 `json:"interest"`
}

type CareerSnapshot struct {
	Networking NetworkingSnapshot `json:"networking"`
	Education  EducationSnapshot  `json:"education"`
}

type NetworkingSnapshot struct {
	Level          int     `json:"level"`
	Duration       int     `json:"duration"`
	UpgradeTimer   float64 `json:"upgradeTimer"`
	UpgradeStarted bool    `json:"upgradeStarted"`
	Investment     float64 `json:"investment"`
}

type EducationSnapshot struct {
	Level          int     `json:"level"`
	Duration       int     `json:"duration"`
	UpgradeTimer   float64 `json:"upgradeTimer"`
	UpgradeStarted bool    `json:"upgradeStarted"`
}

type AvailableJobsSnapshot struct {
	MaxLevel        int     `json:"maxLevel"`
	Jobs            []Job   `json:"jobs"`
	RefreshCooldown float64 `json:"refreshCooldown"`
	RefreshTimer    float64 `json:"refreshTimer"`
}

// TakeSnapshot captures every persisted field of the state.
func TakeSnapshot(s *State) Snapshot {
	c := s.Clone()
	return Snapshot{
		Version:      SnapshotVersion,
		Capital:      c.Capital,
		Hour:         c.Hour,
		Day:          c.Day,
		Year:         c.Year,
		Age:          c.Age,
		WageFactor:   c.WageFactor,
		BaseCosts:    c.BaseCosts,
		CostsFactor:  c.CostsFactor,
		BaseStress:   c.BaseStress,
		StressFactor: c.StressFactor,
		Job:          c.Job,
		Loans: LoansSnapshot{
			InterestRate: c.Loans.InterestRate,
			BaseAmount:   c.Loans.BaseAmount,
			Loans:        c.Loans.Loans,
		},
		PassiveIncome: PassiveIncomeSnapshot{
			SavingsAccount: SavingsSnapshot{
				Balance:  c.Savings.Balance,
				Interest: c.Savings.Interest,
			},
		},
		Career: CareerSnapshot{
			Networking: NetworkingSnapshot{
				Level:          c.Networking.Level,
				Duration:       c.Networking.Duration,
				UpgradeTimer:   c.Networking.UpgradeTimer,
				UpgradeStarted: c.Networking.UpgradeStarted,
				Investment:     c.Networking.Investment,
			},
			Education: EducationSnapshot{
				Level:          c.Education.Level,
				Duration:       c.Education.Duration,
				UpgradeTimer:   c.Education.UpgradeTimer,
				UpgradeStarted: c.Education.UpgradeStarted,
			},
		},
		AvailableJobs: AvailableJobsSnapshot{
			MaxLevel:        c.Jobs.MaxLevel,
			Jobs:            c.Jobs.Jobs,
			RefreshCooldown: c.Jobs.RefreshCooldown,
			RefreshTimer:    c.Jobs.RefreshTimer,
		},
	}
}

func Encode(s *State) ([]byte, error) {
	data, err := json.Marshal(TakeSnapshot(s))
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}

func Decode(data []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decode snapshot: %w", err)
	}
	return snap, nil
}

// Restore overwrites s field by field from snap. A snapshot from another
// version leaves s untouched and returns ErrVersionMismatch.
func Restore(s *State, snap Snapshot) error {
	if snap.Version != SnapshotVersion {
		return fmt.Errorf("%w: got %d, want %d", ErrVersionMismatch, snap.Version, SnapshotVersion)
	}

	s.Capital = snap.Capital
	s.Hour = snap.Hour
	s.Day = snap.Day
	s.Year = snap.Year
	s.Age = snap.Age
	s.WageFactor = snap.WageFactor
	s.BaseCosts = snap.BaseCosts
	s.CostsFactor = snap.CostsFactor
	s.BaseStress = snap.BaseStress
	s.StressFactor = snap.StressFactor

	s.Job = snap.Job

	s.Loans.InterestRate = snap.Loans.InterestRate
	s.Loans.BaseAmount = snap.Loans.BaseAmount
	s.Loans.Loans = snap.Loans.Loans

	s.Savings.Balance = snap.PassiveIncome.SavingsAccount.Balance
	s.Savings.Interest = snap.PassiveIncome.SavingsAccount.Interest

	s.Networking.Level = snap.Career.Networking.Level
	s.Networking.Duration = snap.Career.Networking.Duration
	s.Networking.UpgradeTimer = snap.Career.Networking.UpgradeTimer
	s.Networking.UpgradeStarted = snap.Career.Networking.UpgradeStarted
	s.Networking.Investment = snap.Career.Networking.Investment

	s.Education.Level = snap.Career.Education.Level
	s.Education.Duration = snap.Career.Education.Duration
	s.Education.UpgradeTimer = snap.Career.Education.UpgradeTimer
	s.Education.UpgradeStarted = snap.Career.Education.UpgradeStarted

	s.Jobs.MaxLevel = snap.AvailableJobs.MaxLevel
	s.Jobs.Jobs = snap.AvailableJobs.Jobs
	s.Jobs.RefreshCooldown = snap.AvailableJobs.RefreshCooldown
	s.Jobs.RefreshTimer = snap.AvailableJobs.RefreshTimer

	return nil
}
