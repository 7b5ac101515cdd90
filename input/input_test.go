package input

import (
	"math/rand"
	"testing"
)

func TestGateExtremes(t *testing.T) {
	closed := NewGate(1, rand.New(rand.NewSource(1)))
	open := NewGate(-1, rand.New(rand.NewSource(1)))

	for i := 0; i < 1000; i++ {
		if closed.Allow() {
			t.Fatal("a threshold of 1 must never let events through")
		}
		if !open.Allow() {
			t.Fatal("a negative threshold must always let events through")
		}
	}
}

func TestGateRate(t *testing.T) {
	tests := []struct {
		threshold float64
		want      float64
	}{
		{PointerThreshold, 0.2},
		{ScrollThreshold, 0.1},
		{0.5, 0.5},
	}
	for _, tt := range tests {
		g := NewGate(tt.threshold, rand.New(rand.NewSource(42)))
		const n = 20000
		allowed := 0
		for i := 0; i < n; i++ {
			if g.Allow() {
				allowed++
			}
		}
		rate := float64(allowed) / n
		if rate < tt.want-0.02 || rate > tt.want+0.02 {
			t.Errorf("threshold %v: expected rate near %v, got %v", tt.threshold, tt.want, rate)
		}
	}
}

func TestScrollPoint(t *testing.T) {
	g := NewGate(ScrollThreshold, nil)
	for i := 0; i < 1000; i++ {
		x, y := g.ScrollPoint(80, 24, 100)
		if x < 0 || x >= 80 {
			t.Fatalf("x out of the viewport: %v", x)
		}
		if y < 100 || y >= 124 {
			t.Fatalf("y not shifted by the scroll offset: %v", y)
		}
	}
}
