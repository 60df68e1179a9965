package config

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iburimskiy/joy/internal/game"
)

var _ = Describe("DefaultConfig", func() {
	It("carries the classic scene settings", func() {
		cfg := DefaultConfig()
		Expect(cfg.SceneSettings()).To(Equal(game.DefaultSettings()))
		Expect(cfg.Validate()).To(Succeed())
	})

	It("ships both built-in palettes", func() {
		ps, err := DefaultConfig().CompilePalettes()
		Expect(err).NotTo(HaveOccurred())
		Expect(ps).To(HaveLen(2))
		Expect(ps[0].Name).To(Equal("sunrise"))
	})
})

var _ = Describe("Load and Save", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	It("round-trips a configuration", func() {
		cfg := DefaultConfig()
		cfg.Seed = 42
		cfg.Scene.MaxParticles = 80
		cfg.Video.Path = "/tmp/frames"
		path := filepath.Join(dir, "joy.yaml")

		Expect(Save(path, cfg)).To(Succeed())
		loaded, err := Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(loaded).To(Equal(cfg))
	})

	It("fills unspecified fields from the defaults", func() {
		path := filepath.Join(dir, "partial.yaml")
		Expect(os.WriteFile(path, []byte("seed: 7\nscene:\n  max_particles: 50\n"), 0644)).To(Succeed())

		cfg, err := Load(path)
		Expect(err).NotTo(HaveOccurred())
		Expect(cfg.Seed).To(Equal(int64(7)))
		Expect(cfg.Scene.MaxParticles).To(Equal(50))
		Expect(cfg.Scene.ResizeParticles).To(Equal(60))
		Expect(cfg.Window.Width).To(Equal(DefaultWindowWidth))
		Expect(cfg.Palettes).To(HaveLen(2))
	})

	It("replaces the palette list when one is given", func() {
		path := filepath.Join(dir, "palettes.yaml")
		data := "palettes:\n  - name: mono\n    background: \"#000000\"\n    colors: [\"#FFFFFF80\"]\n"
		Expect(os.WriteFile(path, []byte(data), 0644)).To(Succeed())

		cfg, err := Load(path)
		Expect(err).NotTo(HaveOccurred())
		ps, err := cfg.CompilePalettes()
		Expect(err).NotTo(HaveOccurred())
		Expect(ps).To(HaveLen(1))
		Expect(ps[0].Colors[0].A).To(Equal(uint8(0x80)))
	})

	It("rejects invalid values", func() {
		path := filepath.Join(dir, "bad.yaml")
		data := "scene:\n  max_particles: 0\npalettes:\n  - name: broken\n    background: red\n    colors: [\"#FFFFFF\"]\n"
		Expect(os.WriteFile(path, []byte(data), 0644)).To(Succeed())

		_, err := Load(path)
		Expect(err).To(MatchError(ContainSubstring("max_particles")))
		Expect(err).To(MatchError(ContainSubstring("palette broken")))
	})

	It("reports malformed YAML", func() {
		path := filepath.Join(dir, "garbage.yaml")
		Expect(os.WriteFile(path, []byte("scene: [1, 2"), 0644)).To(Succeed())

		_, err := Load(path)
		Expect(err).To(MatchError(ContainSubstring("parse")))
	})

	It("fails on a missing file", func() {
		_, err := Load(filepath.Join(dir, "missing.yaml"))
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Presets", func() {
	It("lists presets sorted", func() {
		Expect(ListPresets()).To(Equal([]string{"calm", "classic", "dusk", "frenzy", "silent"}))
	})

	It("returns nil for an unknown preset", func() {
		Expect(GetPreset("nonexistent")).To(BeNil())
	})

	It("keeps classic identical to the defaults", func() {
		Expect(GetPreset("classic")).To(Equal(DefaultConfig()))
	})

	It("hands out independent copies", func() {
		a := GetPreset("dusk")
		a.Palettes[0].Background = "#FFFFFF"
		Expect(GetPreset("dusk").Palettes[0].Background).To(Equal("#1B1B2F"))
	})

	DescribeTable("every preset validates",
		func(name string) {
			cfg := GetPreset(name)
			Expect(cfg).NotTo(BeNil())
			Expect(cfg.Validate()).To(Succeed())
		},
		Entry("calm", "calm"),
		Entry("classic", "classic"),
		Entry("dusk", "dusk"),
		Entry("frenzy", "frenzy"),
		Entry("silent", "silent"),
	)
})
