package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iburimskiy/joy/internal/config"
	"github.com/iburimskiy/joy/internal/game"
	"github.com/iburimskiy/joy/internal/host"
	"github.com/iburimskiy/joy/internal/stats"
	"github.com/iburimskiy/joy/internal/tui"
)

var (
	configFile string
	preset     string
	seed       int64
	// Window
	width     int
	height    int
	videoPath string
	videoFPS  float64
	mute      bool
	// Headless
	ticks      int
	pointerX   float64
	pointerY   float64
	clickEvery int
	cols       int
	rows       int
	force      bool
)

func main() {
	log.SetFlags(log.Ltime)
	log.SetPrefix("joy: ")

	rootCmd := &cobra.Command{
		Use:          "joy",
		Short:        "bouncing, fading particles that follow the pointer",
		Args:         cobra.NoArgs,
		RunE:         runWindow,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().Int64Var(&seed, "seed", 0, "random seed (0 picks one from the clock)")
	rootCmd.PersistentFlags().IntVar(&width, "width", config.DefaultWindowWidth, "window width")
	rootCmd.PersistentFlags().IntVar(&height, "height", config.DefaultWindowHeight, "window height")
	rootCmd.Flags().StringVar(&videoPath, "video", "", "image or directory of frames to show in the corner")
	rootCmd.Flags().Float64Var(&videoFPS, "fps", config.DefaultVideoFPS, "frame rate for a directory of frames")
	rootCmd.Flags().BoolVar(&mute, "mute", false, "disable the click chime")

	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "run the scene headless and chart the population",
		Args:  cobra.NoArgs,
		RunE:  runSimulate,
	}
	simulateCmd.Flags().IntVar(&ticks, "ticks", 600, "number of ticks to run")
	simulateCmd.Flags().Float64Var(&pointerX, "x", 0.5, "pointer x as a fraction of the width")
	simulateCmd.Flags().Float64Var(&pointerY, "y", 0, "pointer y as a fraction of the height")
	simulateCmd.Flags().IntVar(&clickEvery, "click-every", 0, "click every N ticks (0 never clicks)")

	watchCmd := &cobra.Command{
		Use:   "watch",
		Short: "drive the scene from the terminal",
		Args:  cobra.NoArgs,
		RunE:  runWatch,
	}
	watchCmd.Flags().IntVar(&cols, "cols", 64, "canvas columns")
	watchCmd.Flags().IntVar(&rows, "rows", 20, "canvas rows")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
		},
	}

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration files",
	}
	initCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write the effective configuration to a yaml file",
		Args:  cobra.ExactArgs(1),
		RunE:  initConfig,
	}
	initCmd.Flags().BoolVar(&force, "force", false, "overwrite an existing file")
	configCmd.AddCommand(initCmd)

	rootCmd.AddCommand(simulateCmd, watchCmd, presetsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig resolves --config or --preset, then applies flag overrides.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "" && preset != "":
		return nil, errors.New("use either --config or --preset, not both")
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	case preset != "":
		cfg = config.GetPreset(preset)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q (have %s)", preset, strings.Join(config.ListPresets(), ", "))
		}
	default:
		cfg = config.DefaultConfig()
	}

	flags := cmd.Flags()
	if flags.Changed("seed") {
		cfg.Seed = seed
	}
	if flags.Changed("width") {
		cfg.Window.Width = width
	}
	if flags.Changed("height") {
		cfg.Window.Height = height
	}
	if flags.Changed("video") {
		cfg.Video.Path = videoPath
	}
	if flags.Changed("fps") {
		cfg.Video.FPS = videoFPS
	}
	if mute {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func seedOrClock(cfg *config.Config) int64 {
	if cfg.Seed != 0 {
		return cfg.Seed
	}
	return time.Now().UnixNano()
}

// newScene builds a scene the way the window starts one: created, then
// resized to the viewport.
func newScene(cfg *config.Config) (*game.Scene, error) {
	palettes, err := cfg.CompilePalettes()
	if err != nil {
		return nil, err
	}
	w, h := float64(cfg.Window.Width), float64(cfg.Window.Height)
	scene := game.NewScene(w, h, palettes, cfg.SceneSettings(), game.NewRand(seedOrClock(cfg)))
	scene.Resize(w, h)
	return scene, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	cfg.Seed = seedOrClock(cfg)
	return host.Run(cfg)
}

func runSimulate(cmd *cobra.Command, args []string) error {
	if ticks <= 0 {
		return fmt.Errorf("--ticks must be positive, got %d", ticks)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scene, err := newScene(cfg)
	if err != nil {
		return err
	}

	w, h := scene.Size()
	px, py := pointerX*w, pointerY*h
	history := stats.NewHistory(ticks)
	for i := 1; i <= ticks; i++ {
		if clickEvery > 0 && i%clickEvery == 0 {
			scene.Click()
		}
		scene.Tick(px, py)
		history.Record(float64(scene.Len()))
	}
	return tui.Report(cmd.OutOrStdout(), scene, history)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if cols <= 0 || rows <= 0 {
		return fmt.Errorf("canvas %dx%d must be positive", cols, rows)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	scene, err := newScene(cfg)
	if err != nil {
		return err
	}
	return tui.Run(scene, stats.NewHistory(600), cols, rows)
}

func initConfig(cmd *cobra.Command, args []string) error {
	path := args[0]
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s exists (use --force to overwrite)", path)
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := config.Save(path, cfg); err != nil {
		return err
	}
	log.Printf("wrote %s", path)
	return nil
}
