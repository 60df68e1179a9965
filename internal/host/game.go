// Package host runs a Scene inside an ebiten window: it feeds the pointer,
// clicks and resizes in, keeps the trail canvas, and draws the frame
// overlay and the instructions panel on top.
package host

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/joy/internal/audio"
	"github.com/iburimskiy/joy/internal/config"
	"github.com/iburimskiy/joy/internal/game"
	"github.com/iburimskiy/joy/internal/video"
)

// Game is the application context owned by main.
type Game struct {
	cfg   *config.Config
	scene *game.Scene

	// trail is never cleared; the scene fades it once per tick.
	trail         *ebiten.Image
	trailStale    bool
	repaint       bool
	width, height int

	overlay *frameOverlay
	chime   *audio.Chime

	showHelp bool
	lastErr  error
}

// New builds the scene and optional collaborators described by cfg. A
// missing audio device only disables the chime.
func New(cfg *config.Config) (*Game, error) {
	palettes, err := cfg.CompilePalettes()
	if err != nil {
		return nil, err
	}
	g := &Game{
		cfg:      cfg,
		scene:    game.NewScene(float64(cfg.Window.Width), float64(cfg.Window.Height), palettes, cfg.SceneSettings(), game.NewRand(cfg.Seed)),
		overlay:  newFrameOverlay(cfg.Video.Width, cfg.Video.Margin),
		showHelp: true,
	}

	if cfg.Video.Path != "" {
		src, err := video.Open(cfg.Video.Path, cfg.Video.FPS)
		if err != nil {
			return nil, fmt.Errorf("open frames: %w", err)
		}
		if err := g.overlay.attach(src); err != nil {
			log.Printf("close previous frames: %v", err)
		}
	}

	if cfg.Audio.Enabled {
		chime, err := audio.NewChime(cfg.Audio.Volume)
		if err != nil {
			log.Printf("chime disabled: %v", err)
		} else {
			g.chime = chime
		}
	}
	return g, nil
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.showHelp = !g.showHelp
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		g.openFramesDialog()
	}

	mouseX, mouseY := ebiten.CursorPosition()
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.handleClick(image.Pt(mouseX, mouseY))
	}

	g.overlay.update(1 / float32(ebiten.TPS()))
	g.scene.Tick(float64(mouseX), float64(mouseY))
	g.paint()
	return nil
}

// paint runs the fade-and-draw pass into the trail. It is called from Update
// so the trail fades once per tick whatever the display refresh rate is.
func (g *Game) paint() {
	if g.width == 0 || g.height == 0 {
		return
	}
	if g.trailStale {
		if g.trail != nil {
			g.trail.Deallocate()
		}
		g.trail = ebiten.NewImage(g.width, g.height)
		g.trailStale = false
		g.repaint = true
	}
	if g.repaint {
		g.trail.Fill(g.scene.Background())
		g.repaint = false
	}
	g.scene.Draw(imageCanvas{dst: g.trail})
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.trail == nil {
		return
	}
	screen.DrawImage(g.trail, nil)
	g.overlay.draw(screen)
	g.drawPanel(screen)

	if g.lastErr != nil {
		ebitenutil.DebugPrintAt(screen, "Error: "+g.lastErr.Error(), 12, 12)
	}
}

// Layout tracks the window size; any change, the first one included,
// respawns the scene and schedules a new trail canvas.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 && (outsideWidth != g.width || outsideHeight != g.height) {
		g.resize(outsideWidth, outsideHeight)
	}
	if g.width == 0 || g.height == 0 {
		return g.cfg.Window.Width, g.cfg.Window.Height
	}
	return g.width, g.height
}

func (g *Game) resize(w, h int) {
	g.width, g.height = w, h
	g.trailStale = true
	g.scene.Resize(float64(w), float64(h))
}

func (g *Game) handleClick(pt image.Point) {
	switch clickTarget(pt, g.width, g.showHelp) {
	case targetPanel:
		g.showHelp = !g.showHelp
	default:
		g.click()
	}
}

func (g *Game) click() {
	g.scene.Click()
	g.repaint = true
	if g.chime != nil {
		g.chime.Play(g.scene.PaletteIndex())
	}
}

func (g *Game) openFramesDialog() {
	path, err := video.Pick()
	if err != nil {
		if !errors.Is(err, video.ErrCanceled) {
			g.lastErr = err
		}
		return
	}
	src, err := video.Open(path, g.cfg.Video.FPS)
	if err != nil {
		g.lastErr = err
		return
	}
	if err := g.overlay.attach(src); err != nil {
		log.Printf("close previous frames: %v", err)
	}
	g.lastErr = nil
	log.Printf("showing frames from %s", path)
}

// Close releases the frame source and silences the chime.
func (g *Game) Close() error {
	if g.chime != nil {
		g.chime.Close()
	}
	return g.overlay.close()
}

// Run opens the window and blocks until it is closed.
func Run(cfg *config.Config) error {
	g, err := New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := g.Close(); err != nil {
			log.Printf("close: %v", err)
		}
	}()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
