package sim

import (
	"fmt"
	"math/bits"

	"github.com/rustyeddy/capital/internal/errs"
)

const initialRefreshCooldown = 24.0

// JobPool is the set of job offers awaiting a hire or reject decision.
type JobPool struct {
	MaxLevel        int
	Jobs            []Job
	RefreshCooldown float64
	RefreshTimer    float64
}

func NewJobPool() JobPool {
	return JobPool{
		MaxLevel:        1,
		RefreshCooldown: initialRefreshCooldown,
		RefreshTimer:    initialRefreshCooldown,
	}
}

// Size is floor(log2(MaxLevel)) + 1, the number of offers Refill produces.
func (p *JobPool) Size() int {
	if p.MaxLevel < 1 {
		return 1
	}
	return bits.Len(uint(p.MaxLevel))
}

// Refill replaces every offer with fresh jobs at levels in [1, MaxLevel].
func (p *JobPool) Refill(g *Generator) {
	n := p.Size()
	p.Jobs = make([]Job, 0, n)
	for i := 0; i < n; i++ {
		p.Jobs = append(p.Jobs, g.Generate(g.level(p.MaxLevel)))
	}
}

// CanRefresh reports whether the refresh cooldown has run out.
func (p *JobPool) CanRefresh() bool {
	return p.RefreshTimer == 0
}

// Refresh doubles the cooldown, restarts the timer and refills.
func (p *JobPool) Refresh(g *Generator) error {
	if !p.CanRefresh() {
		return errs.Precondition(fmt.Sprintf("refresh available in %.0f hours", p.RefreshTimer), nil)
	}
	p.RefreshCooldown *= 2.0
	p.RefreshTimer = p.RefreshCooldown
	p.Refill(g)
	return nil
}

// Hire removes the offer and returns it.
func (p *JobPool) Hire(jobID string) (Job, error) {
	i, err := p.index(jobID)
	if err != nil {
		return Job{}, err
	}
	job := p.Jobs[i]
	p.Jobs = append(p.Jobs[:i], p.Jobs[i+1:]...)
	return job, nil
}

// Reject removes the offer.
func (p *JobPool) Reject(jobID string) error {
	_, err := p.Hire(jobID)
	return err
}

func (p *JobPool) index(jobID string) (int, error) {
	for i, j := range p.Jobs {
		if j.ID == jobID {
			return i, nil
		}
	}
	return -1, errs.NotFound(fmt.Sprintf("job offer %q not found", jobID), nil)
}

// upgradeFinished applies the pool side of a completed career upgrade.
func (p *JobPool) upgradeFinished() {
	p.MaxLevel++

	if p.RefreshTimer < p.RefreshCooldown && p.RefreshTimer > 0 {
		p.RefreshTimer *= 0.5
	}
	p.RefreshCooldown *= 0.5
}
