package config

import "sort"

// Presets tweak the default configuration. Each entry edits a fresh copy.
var Presets = map[string]func(*Config){
	"classic": func(c *Config) {},
	"calm": func(c *Config) {
		c.Scene.MaxParticles = 60
		c.Scene.BurstPerTick = 2
		c.Scene.FadeAlpha = 12
	},
	"frenzy": func(c *Config) {
		c.Scene.MaxParticles = 250
		c.Scene.ResizeParticles = 120
		c.Scene.SpawnInterval = 2
		c.Scene.BurstTicks = 10
		c.Scene.BurstPerTick = 8
		c.Scene.FadeAlpha = 40
	},
	"dusk": func(c *Config) {
		c.Palettes[0].Background = "#1B1B2F"
		c.Palettes[1].Background = "#162447"
		c.Scene.FadeAlpha = 18
	},
	"silent": func(c *Config) {
		c.Audio.Enabled = false
	},
}

func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
