// Package particle implements the ambient particle field: spawning,
// per-frame physics, boundary reflection and rendering onto a surface.
package particle

import (
	"errors"
	"image/color"
	"math/rand"
	"time"
)

// ErrInvalidSurface is returned when a system is created without a drawing surface.
var ErrInvalidSurface = errors.New("particle: invalid drawing surface")

// validator is implemented by surfaces which can report a nil or unbound
// value hidden behind a non-nil interface.
type validator interface {
	Valid() bool
}

// Surface is the drawing target a System is bound to.
type Surface interface {
	Size() (w, h int)
	Clear()
	FillCircle(x, y, r float64, c color.RGBA, alpha float64)
}

// Option customizes a System.
type Option func(*System)

// WithRand replaces the random source used for spawning.
func WithRand(r *rand.Rand) Option {
	return func(s *System) {
		if r != nil {
			s.rnd = r
		}
	}
}

// WithLimit caps the number of live particles. Once the cap is reached the
// oldest particle is evicted for every new one. Zero means no cap.
func WithLimit(n int) Option {
	return func(s *System) {
		if n > 0 {
			s.limit = n
		}
	}
}

// System owns the live particle collection bound to one surface.
type System struct {
	surface   Surface
	particles []Particle
	rnd       *rand.Rand
	limit     int
}

// NewSystem binds a new particle system to the surface.
func NewSystem(s Surface, opts ...Option) (*System, error) {
	if s == nil {
		return nil, ErrInvalidSurface
	}
	if v, ok := s.(validator); ok && !v.Valid() {
		return nil, ErrInvalidSurface
	}
	sys := &System{
		surface:   s,
		particles: make([]Particle, 0, 64),
		rnd:       rand.New(rand.NewSource(time.Now().UnixNano())),
	}
	for _, opt := range opts {
		opt(sys)
	}

	return sys, nil
}

// Spawn adds a particle at a random position inside the current surface bounds.
func (s *System) Spawn() {
	w, h := s.surface.Size()
	s.spawn(s.rnd.Float64()*float64(w), s.rnd.Float64()*float64(h))
}

// SpawnAt adds a particle at exactly {x, y}. The origin is a valid position.
func (s *System) SpawnAt(x, y float64) {
	s.spawn(x, y)
}

func (s *System) spawn(x, y float64) {
	p := newParticle(x, y,
		(s.rnd.Float64()*2-1)*MaxSpeed,
		(s.rnd.Float64()*2-1)*MaxSpeed,
		MinRadius+s.rnd.Float64()*(MaxRadius-MinRadius),
		MinOpacity+s.rnd.Float64()*(MaxOpacity-MinOpacity),
		Palette[s.rnd.Intn(len(Palette))],
	)
	s.add(p)
}

func (s *System) add(p Particle) {
	if s.limit > 0 && len(s.particles) >= s.limit {
		n := copy(s.particles, s.particles[len(s.particles)-s.limit+1:])
		s.particles = s.particles[:n]
	}
	s.particles = append(s.particles, p)
}

// Update advances every particle by one frame and drops the ones which faded out.
// Survivors are compacted in place, in their original order.
func (s *System) Update() {
	w, h := s.surface.Size()
	fw, fh := float64(w), float64(h)

	live := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]
		p.step(fw, fh)
		if p.IsDead() {
			continue
		}
		live = append(live, p)
	}
	s.particles = live
}

// Draw clears the surface and paints every live particle.
func (s *System) Draw() {
	s.surface.Clear()
	for i := range s.particles {
		p := &s.particles[i]
		s.surface.FillCircle(p.GetX(), p.GetY(), p.GetRadius(), p.GetColor(), p.GetOpacity())
	}
}

// Frame runs one animation iteration.
func (s *System) Frame() {
	s.Update()
	s.Draw()
}

// Len returns the number of live particles.
func (s *System) Len() int {
	return len(s.particles)
}
