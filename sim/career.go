package sim

import (
	"fmt"

	"github.com/rustyeddy/capital/internal/errs"
)

type TrackKind string

const (
	Networking TrackKind = "networking"
	Education  TrackKind = "education"
)

// TrackKinds lists the career tracks in the order they are processed.
var TrackKinds = []TrackKind{Networking, Education}

func ParseTrackKind(s string) (TrackKind, error) {
	switch TrackKind(s) {
	case Networking, Education:
		return TrackKind(s), nil
	}
	return "", errs.InvalidInput(fmt.Sprintf("unknown career track %q", s), nil)
}

const (
	initialUpgradeDuration = 24
	initialInvestment      = 1.0
)

// Track is a career upgrade state machine. It is Idle while UpgradeStarted
// is false and Upgrading while the timer counts down; the orchestrator
// finishes the upgrade on the first tick the timer reads zero.
// Investment is only used by the Networking track.
type Track struct {
	Kind           TrackKind
	Level          int
	Duration       int
	UpgradeTimer   float64
	UpgradeStarted bool
	Investment     float64
}

func newTrack(kind TrackKind) Track {
	t := Track{
		Kind:     kind,
		Duration: initialUpgradeDuration,
	}
	if kind == Networking {
		t.Investment = initialInvestment
	}
	return t
}

func (t *Track) Upgrading() bool {
	return t.UpgradeStarted
}

func (t *Track) start(s *State) error {
	if t.UpgradeStarted {
		return errs.Precondition(fmt.Sprintf("%s upgrade already in progress", t.Kind), nil)
	}
	t.effects().OnStart(s, t)
	t.UpgradeStarted = true
	t.UpgradeTimer = float64(t.Duration)
	return nil
}

func (t *Track) completed() bool {
	return t.UpgradeStarted && t.UpgradeTimer == 0
}

func (t *Track) finish(s *State) {
	t.effects().OnFinish(s, t)
	t.UpgradeStarted = false
	t.Duration *= 2
	t.Level++
}

func (t *Track) effects() UpgradeEffects {
	if t.Kind == Networking {
		return networkingEffects{}
	}
	return educationEffects{}
}

// UpgradeEffects are the track-specific side effects applied to the state
// when an upgrade starts and when it completes.
type UpgradeEffects interface {
	OnStart(s *State, t *Track)
	OnFinish(s *State, t *Track)
}

type networkingEffects struct{}

func (networkingEffects) OnStart(s *State, t *Track) {
	s.beginUpgrade()
	s.Capital -= t.Investment
}

func (networkingEffects) OnFinish(s *State, t *Track) {
	s.endUpgrade()
	s.BaseStress += 0.01
	t.Investment *= 2.0
}

type educationEffects struct{}

func (educationEffects) OnStart(s *State, _ *Track) {
	s.beginUpgrade()
	s.WageFactor *= 0.5
}

func (educationEffects) OnFinish(s *State, _ *Track) {
	s.endUpgrade()
	s.WageFactor *= 2.0
	s.BaseCosts += 0.01
}

// beginUpgrade and endUpgrade are the effects shared by both tracks.
func (s *State) beginUpgrade() {
	s.CostsFactor *= 2.0
	s.StressFactor *= 2.0
}

func (s *State) endUpgrade() {
	s.CostsFactor *= 0.5
	s.StressFactor *= 0.5
	s.Jobs.upgradeFinished()
}
