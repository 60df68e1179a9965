package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/joy/internal/game"
	"github.com/iburimskiy/joy/internal/palette"
)

const (
	DefaultWindowWidth  = 1024
	DefaultWindowHeight = 640
	DefaultTitle        = "joy - click to burst, move to steer, H: help, O: open frames, Esc/Q: quit"

	// Frame overlay in the bottom-left corner.
	DefaultVideoWidth  = 230
	DefaultVideoMargin = 20
	DefaultVideoFPS    = 12.0

	DefaultVolume = -1.0
)

type Config struct {
	Seed     int64          `yaml:"seed"`
	Window   WindowConfig   `yaml:"window"`
	Scene    SceneConfig    `yaml:"scene"`
	Palettes []palette.Spec `yaml:"palettes"`
	Video    VideoConfig    `yaml:"video"`
	Audio    AudioConfig    `yaml:"audio"`
}

type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type SceneConfig struct {
	InitialParticles int   `yaml:"initial_particles"`
	ResizeParticles  int   `yaml:"resize_particles"`
	MaxParticles     int   `yaml:"max_particles"`
	SpawnInterval    int   `yaml:"spawn_interval"`
	BurstTicks       int   `yaml:"burst_ticks"`
	BurstPerTick     int   `yaml:"burst_per_tick"`
	FadeAlpha        uint8 `yaml:"fade_alpha"`
}

type VideoConfig struct {
	Path   string  `yaml:"path"`
	FPS    float64 `yaml:"fps"`
	Width  int     `yaml:"width"`
	Margin int     `yaml:"margin"`
}

type AudioConfig struct {
	Enabled bool `yaml:"enabled"`
	// Volume is beep's base-2 gain exponent; 0 leaves the chime untouched.
	Volume float64 `yaml:"volume"`
}

func DefaultConfig() *Config {
	s := game.DefaultSettings()
	return &Config{
		Window: WindowConfig{
			Width:  DefaultWindowWidth,
			Height: DefaultWindowHeight,
			Title:  DefaultTitle,
		},
		Scene: SceneConfig{
			InitialParticles: s.InitialParticles,
			ResizeParticles:  s.ResizeParticles,
			MaxParticles:     s.MaxParticles,
			SpawnInterval:    s.SpawnInterval,
			BurstTicks:       s.BurstTicks,
			BurstPerTick:     s.BurstPerTick,
			FadeAlpha:        s.FadeAlpha,
		},
		Palettes: palette.BuiltinSpecs(),
		Video: VideoConfig{
			FPS:    DefaultVideoFPS,
			Width:  DefaultVideoWidth,
			Margin: DefaultVideoMargin,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  DefaultVolume,
		},
	}
}

// Load reads a YAML file on top of the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.Window.Width, c.Window.Height))
	}
	if c.Scene.MaxParticles <= 0 {
		errs = append(errs, errors.New("scene.max_particles must be positive"))
	}
	if c.Scene.InitialParticles < 0 || c.Scene.ResizeParticles < 0 {
		errs = append(errs, errors.New("scene particle counts must not be negative"))
	}
	if c.Scene.SpawnInterval <= 0 {
		errs = append(errs, errors.New("scene.spawn_interval must be positive"))
	}
	if c.Scene.BurstTicks < 0 || c.Scene.BurstPerTick < 0 {
		errs = append(errs, errors.New("scene burst values must not be negative"))
	}
	if c.Video.Width <= 0 {
		errs = append(errs, errors.New("video.width must be positive"))
	}
	if c.Video.FPS <= 0 {
		errs = append(errs, errors.New("video.fps must be positive"))
	}
	if _, err := palette.Compile(c.Palettes); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SceneSettings converts the scene section into game settings.
func (c *Config) SceneSettings() game.Settings {
	return game.Settings{
		InitialParticles: c.Scene.InitialParticles,
		ResizeParticles:  c.Scene.ResizeParticles,
		MaxParticles:     c.Scene.MaxParticles,
		SpawnInterval:    c.Scene.SpawnInterval,
		BurstTicks:       c.Scene.BurstTicks,
		BurstPerTick:     c.Scene.BurstPerTick,
		FadeAlpha:        c.Scene.FadeAlpha,
	}
}

func (c *Config) CompilePalettes() ([]palette.Palette, error) {
	return palette.Compile(c.Palettes)
}
