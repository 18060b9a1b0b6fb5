package sim

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/rustyeddy/capital/internal/id"
)

// Generator produces random jobs. It is not safe for concurrent use; the
// Engine serializes access.
type Generator struct {
	rng   *rand.Rand
	newID func() string
}

// NewGenerator seeds a generator; seed 0 picks a time-based seed.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng:   rand.New(rand.NewSource(seed)),
		newID: id.New,
	}
}

// draft holds a job under construction in hundredths so repeated +-1
// steps stay exact.
type draft struct {
	wage, costs, stress int
}

// jobAction mutates the draft and reports whether it consumed a point
// (true) or refunded one (false). The clamped branches of the cost and
// wage decreases also adjust points themselves, so together with the
// caller's own adjustment they net to zero.
type jobAction func(d *draft, points *int) bool

var jobActions = [...]jobAction{
	// positive
	func(d *draft, _ *int) bool {
		d.wage++
		return true
	},
	func(d *draft, points *int) bool {
		if d.costs >= 1 {
			d.costs--
			return true
		}
		*points--
		return false
	},
	func(d *draft, _ *int) bool {
		d.stress--
		return true
	},
	// negative
	func(d *draft, points *int) bool {
		if d.wage >= 2 {
			d.wage--
			return false
		}
		*points++
		return true
	},
	func(d *draft, _ *int) bool {
		d.costs++
		return false
	},
	func(d *draft, _ *int) bool {
		d.stress++
		return false
	},
}

// Generate builds a job with a point budget equal to level. Starting from
// wage 0.01, costs 0 and stress 0, uniformly random actions spend or refund
// points until the budget is exactly zero. Levels below 1 are treated as 1.
func (g *Generator) Generate(level int) Job {
	if level < 1 {
		level = 1
	}

	d := draft{wage: 1}
	points := level
	for points > 0 {
		act := jobActions[g.rng.Intn(len(jobActions))]
		if act(&d, &points) {
			points--
		} else {
			points++
		}
	}

	return Job{
		ID:          g.newID(),
		Name:        fmt.Sprintf("Level %d", level),
		Description: fmt.Sprintf("A level %d job", level),
		Wage:        float64(d.wage) / 100.0,
		Costs:       float64(d.costs) / 100.0,
		Stress:      float64(d.stress) / 100.0,
	}
}

// level draws uniformly from [1, max].
func (g *Generator) level(max int) int {
	if max < 1 {
		max = 1
	}
	return g.rng.Intn(max) + 1
}
