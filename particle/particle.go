package particle

import "image/color"

// Particle defines the general components of a single particle.
type Particle struct {
	x, y    float64
	vx, vy  float64
	radius  float64
	opacity float64
	color   color.RGBA
}

func newParticle(x, y, vx, vy, radius, opacity float64, c color.RGBA) Particle {
	return Particle{x: x, y: y, vx: vx, vy: vy, radius: radius, opacity: opacity, color: c}
}

// GetX retrieve the particle {x} position.
func (p *Particle) GetX() float64 {
	return p.x
}

// GetY retrieve the particle {y} position.
func (p *Particle) GetY() float64 {
	return p.y
}

// GetRadius get the particle radius.
func (p *Particle) GetRadius() float64 {
	return p.radius
}

// GetOpacity get the particle opacity.
func (p *Particle) GetOpacity() float64 {
	return p.opacity
}

// GetColor get the particle fill color.
func (p *Particle) GetColor() color.RGBA {
	return p.color
}

// IsDead check if the particle has faded out.
func (p *Particle) IsDead() bool {
	return p.opacity <= 0
}

// step advances the particle by one frame inside a w x h surface.
func (p *Particle) step(w, h float64) {
	p.x += p.vx
	p.y += p.vy
	p.opacity -= Decay

	if p.x < 0 || p.x > w {
		p.vx = -p.vx
	}
	if p.y < 0 || p.y > h {
		p.vy = -p.vy
	}
}
