package game

import (
	"image/color"
	"math/rand/v2"
)

const (
	MaxLife = 255.0

	velocityDamping = 0.995
	radiusDecay     = 0.995
	lifeDecay       = 1.5

	spawnSpeed     = 2.0
	spawnRadiusMin = 10.0
	spawnRadiusMax = 40.0

	burstSpeed     = 5.0
	burstRadiusMin = 20.0
	burstRadiusMax = 60.0

	// MinRadius is the cull floor; smaller particles are removed.
	MinRadius = 1.0
)

// Particle is a single bouncer.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Radius float64
	Life   float64
	Color  color.NRGBA
}

// NewParticle creates a particle at (x, y) with a random velocity, radius and
// one of colors.
func NewParticle(r *rand.Rand, x, y float64, colors []color.NRGBA) Particle {
	p := Particle{
		X:      x,
		Y:      y,
		VX:     RandomInRange(r, -spawnSpeed, spawnSpeed),
		VY:     RandomInRange(r, -spawnSpeed, spawnSpeed),
		Radius: RandomInRange(r, spawnRadiusMin, spawnRadiusMax),
		Life:   MaxLife,
	}
	if len(colors) > 0 {
		p.Color = colors[r.IntN(len(colors))]
	}
	return p
}

// Update advances the particle one tick inside a width x height box.
func (p *Particle) Update(speedMultiplier, bounciness, width, height float64) {
	p.X += p.VX * speedMultiplier
	p.Y += p.VY * speedMultiplier
	p.VX *= velocityDamping
	p.VY *= velocityDamping

	if p.X-p.Radius < 0 || p.X+p.Radius > width {
		p.VX *= -bounciness
		p.X = clamp(p.X, p.Radius, width-p.Radius)
	}
	if p.Y-p.Radius < 0 || p.Y+p.Radius > height {
		p.VY *= -bounciness
		p.Y = clamp(p.Y, p.Radius, height-p.Radius)
	}

	p.Radius *= radiusDecay
	p.Life = clamp(p.Life-lifeDecay, 0, MaxLife)
}

// ApplyBurstEffect gives a freshly spawned particle burst energy. It is only
// meant for particles that have not been updated yet.
func (p *Particle) ApplyBurstEffect(r *rand.Rand, speedMultiplier float64) {
	p.VX = RandomInRange(r, -burstSpeed, burstSpeed) * speedMultiplier
	p.VY = RandomInRange(r, -burstSpeed, burstSpeed) * speedMultiplier
	p.Radius = RandomInRange(r, burstRadiusMin, burstRadiusMax)
	p.Life = MaxLife
}

// Dead reports whether the particle should be culled.
func (p *Particle) Dead() bool {
	return p.Life <= 0 || p.Radius < MinRadius
}

// Alpha is the draw alpha: the color's own alpha scaled by the life fraction.
func (p *Particle) Alpha() uint8 {
	return uint8(ClampedLinearMap(p.Life, 0, MaxLife, 0, float64(p.Color.A)))
}

// Draw renders the particle as a filled circle.
func (p *Particle) Draw(c Canvas) {
	clr := p.Color
	clr.A = p.Alpha()
	c.FillCircle(p.X, p.Y, p.Radius, clr)
}
