// Package input rate-limits the spawn requests produced by pointer and scroll events.
package input

import (
	"math/rand"
	"time"
)

// Default gate thresholds: roughly one pointer move in five and
// one scroll step in ten produce a particle.
const (
	PointerThreshold = 0.8
	ScrollThreshold  = 0.9
)

// Gate lets an event through when a uniform random draw exceeds Threshold.
type Gate struct {
	Threshold float64
	rnd       *rand.Rand
}

// NewGate creates a gate. A nil source is replaced by a time seeded one.
func NewGate(threshold float64, rnd *rand.Rand) *Gate {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Gate{Threshold: threshold, rnd: rnd}
}

// Allow reports whether the current event should spawn a particle.
func (g *Gate) Allow() bool {
	return g.rnd.Float64() > g.Threshold
}

// ScrollPoint picks a spawn point for a scroll event: anywhere across the
// viewport width, inside the viewport height shifted by the scroll offset.
func (g *Gate) ScrollPoint(w, h int, offset float64) (x, y float64) {
	return g.rnd.Float64() * float64(w), offset + g.rnd.Float64()*float64(h)
}
