package game

import (
	"math/rand/v2"
	"testing"

	. "github.com/onsi/gomega"

	"github.com/iburimskiy/joy/internal/palette"
)

const (
	testWidth  = 800.0
	testHeight = 600.0
)

func newTestScene(seed uint64) *Scene {
	return NewScene(testWidth, testHeight, palette.Builtin(), DefaultSettings(), rand.New(rand.NewPCG(seed, seed)))
}

func TestNewScene_InitialPopulation(t *testing.T) {
	g := NewWithT(t)
	s := newTestScene(1)

	g.Expect(s.Len()).To(Equal(40))
	g.Expect(s.PaletteIndex()).To(Equal(0))
	g.Expect(s.Background()).To(Equal(palette.Builtin()[0].Background))
	for _, p := range s.Particles() {
		g.Expect(p.X).To(BeNumerically(">=", 0))
		g.Expect(p.X).To(BeNumerically("<", testWidth))
		g.Expect(p.Y).To(BeNumerically(">=", 0))
		g.Expect(p.Y).To(BeNumerically("<", testHeight))
	}
}

func TestNewScene_DefaultsPalettes(t *testing.T) {
	g := NewWithT(t)
	s := NewScene(testWidth, testHeight, nil, DefaultSettings(), nil)
	g.Expect(s.Palette().Name).To(Equal("sunrise"))
}

func TestScene_SpeedMultiplierFollowsPointerY(t *testing.T) {
	g := NewWithT(t)
	s := newTestScene(2)

	prev := MaxSpeedMultiplier + 1
	for y := 0.0; y <= testHeight; y += 7.5 {
		s.Tick(testWidth/2, y)
		speed := s.Params().SpeedMultiplier
		g.Expect(speed).To(BeNumerically(">=", MinSpeedMultiplier))
		g.Expect(speed).To(BeNumerically("<=", MaxSpeedMultiplier))
		g.Expect(speed).To(BeNumerically("<=", prev), "speed rose at y=%v", y)
		prev = speed
	}

	s.Tick(0, 0)
	g.Expect(s.Params().SpeedMultiplier).To(Equal(MaxSpeedMultiplier))
	s.Tick(0, testHeight)
	g.Expect(s.Params().SpeedMultiplier).To(Equal(MinSpeedMultiplier))
	s.Tick(0, -500)
	g.Expect(s.Params().SpeedMultiplier).To(Equal(MaxSpeedMultiplier))
}

func TestScene_SpawnRateFollowsPointerY(t *testing.T) {
	g := NewWithT(t)
	s := newTestScene(3)

	tests := []struct {
		y    float64
		want int
	}{
		{testHeight, 0},
		{testHeight * 0.75, 0},
		{testHeight * 0.4, 1},
		{0, 2},
		{testHeight * 2, 0},
	}
	for _, tt := range tests {
		s.Tick(0, tt.y)
		g.Expect(s.Params().SpawnRate).To(Equal(tt.want), "y=%v", tt.y)
	}
}

func TestScene_BouncinessFollowsPointerX(t *testing.T) {
	g := NewWithT(t)
	s := newTestScene(4)

	prev := MinBounciness - 1
	for x := 0.0; x <= testWidth; x += 10 {
		s.Tick(x, testHeight)
		b := s.Params().Bounciness
		g.Expect(b).To(BeNumerically(">=", MinBounciness))
		g.Expect(b).To(BeNumerically("<=", MaxBounciness))
		g.Expect(b).To(BeNumerically(">=", prev), "bounciness fell at x=%v", x)
		prev = b
	}
	g.Expect(prev).To(Equal(MaxBounciness))
}

func TestScene_SpawnsEveryFifthTick(t *testing.T) {
	g := NewWithT(t)
	s := newTestScene(5)

	for i := 1; i <= 4; i++ {
		s.Tick(0, 0)
		g.Expect(s.Len()).To(Equal(40), "tick %d", i)
	}
	s.Tick(0, 0)
	g.Expect(s.Len()).To(Equal(42))
}

func TestScene_NoSpawnWithPointerAtBottom(t *testing.T) {
	g := NewWithT(t)
	s := newTestScene(6)

	for i := 0; i < 50; i++ {
		s.Tick(testWidth/2, testHeight)
	}
	g.Expect(s.Len()).To(Equal(40))
}

func TestScene_PopulationCapsAtExactlyOneHundred(t *testing.T) {
	g := NewWithT(t)
	s := newTestScene(7)
	s.Resize(testWidth, testHeight)
	g.Expect(s.Len()).To(Equal(60))

	for i := 0; i < 100; i++ {
		s.Tick(0, 0)
	}
	g.Expect(s.Len()).To(Equal(100))
}

func TestScene_CountNeverExceedsCap(t *testing.T) {
	g := NewWithT(t)
	s := newTestScene(8)
	r := rand.New(rand.NewPCG(8, 9))

	for i := 0; i < 2000; i++ {
		if i%7 == 0 {
			s.Click()
		}
		s.Tick(r.Float64()*testWidth, r.Float64()*testHeight)
		g.Expect(s.Len()).To(BeNumerically("<=", 100), "tick %d", i)
	}
}

func TestScene_DropsOldestFirst(t *testing.T) {
	g := NewWithT(t)
	settings := DefaultSettings()
	settings.InitialParticles = 10
	settings.MaxParticles = 10
	settings.SpawnInterval = 1
	s := NewScene(testWidth, testHeight, nil, settings, rand.New(rand.NewPCG(9, 9)))

	for i := 0; i < 12; i++ {
		s.Tick(0, 0)
		g.Expect(s.Len()).To(Equal(10))
	}
	s.Click()
	s.Tick(0, 0)

	// Everything decays at the same rate, so life is ordered by age.
	ps := s.Particles()
	for i := 1; i < len(ps); i++ {
		g.Expect(ps[i].Life).To(BeNumerically(">=", ps[i-1].Life), "index %d", i)
	}
	g.Expect(ps[len(ps)-1].Life).To(Equal(MaxLife - lifeDecay))
}

func TestScene_Click(t *testing.T) {
	g := NewWithT(t)
	s := newTestScene(10)
	palettes := palette.Builtin()

	s.Click()
	g.Expect(s.PaletteIndex()).To(Equal(1))
	g.Expect(s.Palette().Name).To(Equal("lemonade"))
	g.Expect(s.Params().Burst).To(Equal(5))
	g.Expect(s.Background()).To(Equal(palettes[1].Background))

	s.Click()
	g.Expect(s.PaletteIndex()).To(Equal(0))
	g.Expect(s.Background()).To(Equal(palettes[0].Background))
}

func TestScene_BurstSpawnsFourPerTick(t *testing.T) {
	g := NewWithT(t)
	s := newTestScene(11)

	s.Click()
	for i := 1; i <= 5; i++ {
		s.Tick(testWidth/2, testHeight)
		g.Expect(s.Len()).To(Equal(40 + 4*i))
		g.Expect(s.Params().Burst).To(Equal(5 - i))
	}
	s.Tick(testWidth/2, testHeight)
	g.Expect(s.Len()).To(Equal(60))

	lemonade := palette.Builtin()[1].Colors
	for _, p := range s.Particles()[40:] {
		g.Expect(lemonade).To(ContainElement(p.Color))
	}
}

func TestScene_Resize(t *testing.T) {
	g := NewWithT(t)
	s := newTestScene(12)

	s.Resize(320, 200)
	w, h := s.Size()
	g.Expect(w).To(Equal(320.0))
	g.Expect(h).To(Equal(200.0))
	g.Expect(s.Len()).To(Equal(60))
	for _, p := range s.Particles() {
		g.Expect(p.X).To(BeNumerically("<", 320))
		g.Expect(p.Y).To(BeNumerically("<", 200))
		g.Expect(p.Life).To(Equal(MaxLife))
	}
}

func TestScene_CullsDeadParticles(t *testing.T) {
	g := NewWithT(t)
	s := newTestScene(13)

	for i := 0; i < 170; i++ {
		s.Tick(testWidth/2, testHeight)
	}
	g.Expect(s.Len()).To(BeZero())
}

func TestScene_Draw(t *testing.T) {
	g := NewWithT(t)
	s := newTestScene(14)
	s.Tick(0, testHeight)

	c := &recordingCanvas{}
	s.Draw(c)

	g.Expect(c.ops).ToNot(BeEmpty())
	g.Expect(c.ops[0]).To(Equal("rect"))
	g.Expect(c.rects).To(HaveLen(1))
	fade := c.rects[0]
	g.Expect(fade.w).To(Equal(testWidth))
	g.Expect(fade.h).To(Equal(testHeight))
	g.Expect(fade.c.A).To(Equal(uint8(25)))
	bg := s.Background()
	g.Expect([]uint8{fade.c.R, fade.c.G, fade.c.B}).To(Equal([]uint8{bg.R, bg.G, bg.B}))
	g.Expect(c.circles).To(HaveLen(s.Len()))
}
