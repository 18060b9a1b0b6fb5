// Package scheduler drives the simulation in real time, one tick per second.
package scheduler

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/rustyeddy/capital/sim"
)

// TickInterval is the real-time length of one in-game hour.
const TickInterval = time.Second

// Stepper advances the simulation by one tick.
type Stepper interface {
	Step(ctx context.Context) (sim.TickResult, error)
}

type TickScheduler struct {
	stepper  Stepper
	logger   *zap.Logger
	interval time.Duration
	onTick   func(sim.TickResult)

	mutex    sync.Mutex
	isActive bool
	stop     chan struct{}
}

// NewTickScheduler returns a scheduler that calls onTick, if set, after
// every successful tick.
func NewTickScheduler(stepper Stepper, logger *zap.Logger, onTick func(sim.TickResult)) *TickScheduler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &TickScheduler{
		stepper:  stepper,
		logger:   logger,
		interval: TickInterval,
		onTick:   onTick,
	}
}

// Start ticks until ctx is cancelled or Stop is called. A failed tick is
// logged and the next one is attempted on schedule. Calling Start on a
// running scheduler is a no-op.
func (s *TickScheduler) Start(ctx context.Context) error {
	s.mutex.Lock()
	if s.isActive {
		s.mutex.Unlock()
		return nil
	}
	s.isActive = true
	stop := make(chan struct{})
	s.stop = stop
	s.mutex.Unlock()

	defer func() {
		s.mutex.Lock()
		s.isActive = false
		s.mutex.Unlock()
	}()

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("tick scheduler started", zap.Duration("interval", s.interval))

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			s.logger.Info("tick scheduler stopped")
			return nil
		case <-ticker.C:
			res, err := s.stepper.Step(ctx)
			if err != nil {
				s.logger.Error("tick failed", zap.Error(err))
				continue
			}
			if s.onTick != nil {
				s.onTick(res)
			}
		}
	}
}

func (s *TickScheduler) Stop() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	if s.isActive && s.stop != nil {
		close(s.stop)
		s.stop = nil
	}
}

func (s *TickScheduler) Active() bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	return s.isActive
}
