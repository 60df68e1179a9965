package game

import (
	"image/color"
	"math/rand/v2"

	"github.com/iburimskiy/joy/internal/palette"
)

// Pointer-driven parameter ranges.
const (
	MinSpeedMultiplier = 0.5
	MaxSpeedMultiplier = 3.0
	MinSpawnRate       = 0
	MaxSpawnRate       = 2
	MinBounciness      = 0.5
	MaxBounciness      = 2.0
)

// Settings are the population knobs of a Scene.
type Settings struct {
	InitialParticles int
	ResizeParticles  int
	MaxParticles     int
	SpawnInterval    int
	BurstTicks       int
	BurstPerTick     int
	FadeAlpha        uint8
}

// DefaultSettings matches the classic sketch: 40 particles at start, 60 after
// a resize, at most 100 alive.
func DefaultSettings() Settings {
	return Settings{
		InitialParticles: 40,
		ResizeParticles:  60,
		MaxParticles:     100,
		SpawnInterval:    5,
		BurstTicks:       5,
		BurstPerTick:     4,
		FadeAlpha:        25,
	}
}

// Params is a snapshot of the per-tick tuning values.
type Params struct {
	Tick            int
	SpeedMultiplier float64
	SpawnRate       int
	Bounciness      float64
	Burst           int
}

// Scene owns the particle population and maps pointer input onto it.
// It is driven from a single goroutine.
type Scene struct {
	settings   Settings
	palettes   []palette.Palette
	paletteIdx int
	background color.NRGBA
	particles  []Particle
	rng        *rand.Rand

	width, height float64

	tick            int
	speedMultiplier float64
	spawnRate       int
	bounciness      float64
	burst           int
}

// NewScene creates a scene of the given size and spawns the initial
// population. An empty palette list falls back to the built-in palettes.
func NewScene(width, height float64, palettes []palette.Palette, settings Settings, rng *rand.Rand) *Scene {
	if len(palettes) == 0 {
		palettes = palette.Builtin()
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &Scene{
		settings:        settings,
		palettes:        palettes,
		background:      palettes[0].Background,
		rng:             rng,
		width:           width,
		height:          height,
		speedMultiplier: 1,
		spawnRate:       1,
		bounciness:      1,
		particles:       make([]Particle, 0, settings.MaxParticles+settings.BurstPerTick+MaxSpawnRate),
	}
	s.spawn(settings.InitialParticles)
	return s
}

// Tick advances the scene one frame with the pointer at (px, py).
func (s *Scene) Tick(px, py float64) {
	s.tick++

	s.speedMultiplier = ClampedLinearMap(py, s.height, 0, MinSpeedMultiplier, MaxSpeedMultiplier)
	s.spawnRate = floorInt(ClampedLinearMap(py, s.height, 0, MinSpawnRate, MaxSpawnRate))
	s.bounciness = ClampedLinearMap(px, 0, s.width, MinBounciness, MaxBounciness)

	if s.settings.SpawnInterval > 0 && s.tick%s.settings.SpawnInterval == 0 {
		s.spawn(s.spawnRate)
	}

	if s.burst > 0 {
		colors := s.Palette().Colors
		for i := 0; i < s.settings.BurstPerTick; i++ {
			p := NewParticle(s.rng, s.rng.Float64()*s.width, s.rng.Float64()*s.height, colors)
			p.ApplyBurstEffect(s.rng, s.speedMultiplier)
			s.particles = append(s.particles, p)
		}
		s.burst--
	}

	// Oldest particles live at the front.
	if excess := len(s.particles) - s.settings.MaxParticles; excess > 0 {
		s.particles = append(s.particles[:0], s.particles[excess:]...)
	}

	alive := s.particles[:0]
	for i := range s.particles {
		p := s.particles[i]
		p.Update(s.speedMultiplier, s.bounciness, s.width, s.height)
		if !p.Dead() {
			alive = append(alive, p)
		}
	}
	s.particles = alive
}

// Draw fades the previous frame toward the background and draws every
// particle on top.
func (s *Scene) Draw(c Canvas) {
	fade := s.background
	fade.A = s.settings.FadeAlpha
	c.FillRect(0, 0, s.width, s.height, fade)
	for i := range s.particles {
		s.particles[i].Draw(c)
	}
}

// Click switches to the next palette and arms a burst. The caller should
// repaint its surface with Background.
func (s *Scene) Click() {
	s.paletteIdx = (s.paletteIdx + 1) % len(s.palettes)
	s.background = s.palettes[s.paletteIdx].Background
	s.burst = s.settings.BurstTicks
}

// Resize sets the viewport and replaces the population with a fresh one.
func (s *Scene) Resize(width, height float64) {
	s.width, s.height = width, height
	s.particles = s.particles[:0]
	s.spawn(s.settings.ResizeParticles)
}

func (s *Scene) spawn(n int) {
	colors := s.Palette().Colors
	for i := 0; i < n; i++ {
		s.particles = append(s.particles, NewParticle(s.rng, s.rng.Float64()*s.width, s.rng.Float64()*s.height, colors))
	}
}

// Particles returns the live population, oldest first. The slice is only
// valid until the next Tick or Resize.
func (s *Scene) Particles() []Particle { return s.particles }

func (s *Scene) Len() int { return len(s.particles) }

func (s *Scene) Background() color.NRGBA { return s.background }

func (s *Scene) Palette() palette.Palette { return s.palettes[s.paletteIdx] }

func (s *Scene) PaletteIndex() int { return s.paletteIdx }

func (s *Scene) Size() (float64, float64) { return s.width, s.height }

func (s *Scene) Settings() Settings { return s.settings }

func (s *Scene) Params() Params {
	return Params{
		Tick:            s.tick,
		SpeedMultiplier: s.speedMultiplier,
		SpawnRate:       s.spawnRate,
		Bounciness:      s.bounciness,
		Burst:           s.burst,
	}
}
