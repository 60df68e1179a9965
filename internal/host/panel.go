package host

import (
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Panel dimensions
const (
	panelWidth     = 240
	panelMargin    = 20
	panelPadding   = 8
	panelLineH     = 16
	collapsedPanel = 24
)

var (
	panelFill   = color.NRGBA{R: 0, G: 0, B: 0, A: 120}
	panelBorder = color.NRGBA{R: 255, G: 255, B: 255, A: 100}
)

var instructions = []string{
	"Move up: faster, more spawns",
	"Move right: bouncier walls",
	"Click: burst + next palette",
	"O: open frames  H: hide",
	"Esc/Q: quit",
}

// panelRect is the clickable area of the instructions panel on a screen of
// the given width.
func panelRect(screenWidth int, expanded bool) image.Rectangle {
	if !expanded {
		x := screenWidth - panelMargin - collapsedPanel
		return image.Rect(x, panelMargin, x+collapsedPanel, panelMargin+collapsedPanel)
	}
	// One extra line for live stats.
	h := panelPadding*2 + panelLineH*(len(instructions)+1)
	x := screenWidth - panelMargin - panelWidth
	return image.Rect(x, panelMargin, x+panelWidth, panelMargin+h)
}

// What a left click lands on.
const (
	targetScene = iota
	targetPanel
)

// clickTarget reports whether pt hits the instructions panel, which only
// toggles, or the canvas, which bursts.
func clickTarget(pt image.Point, screenWidth int, expanded bool) int {
	if pt.In(panelRect(screenWidth, expanded)) {
		return targetPanel
	}
	return targetScene
}

func (g *Game) drawPanel(screen *ebiten.Image) {
	r := panelRect(g.width, g.showHelp)
	x, y := float32(r.Min.X), float32(r.Min.Y)
	w, h := float32(r.Dx()), float32(r.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, panelFill, false)
	vector.StrokeRect(screen, x, y, w, h, 1, panelBorder, false)

	if !g.showHelp {
		ebitenutil.DebugPrintAt(screen, "+", r.Min.X+9, r.Min.Y+4)
		return
	}

	tx, ty := r.Min.X+panelPadding, r.Min.Y+panelPadding
	for i, line := range instructions {
		ebitenutil.DebugPrintAt(screen, line, tx, ty+i*panelLineH)
	}
	p := g.scene.Params()
	stats := fmt.Sprintf("n=%d speed=%.2f bounce=%.2f", g.scene.Len(), p.SpeedMultiplier, p.Bounciness)
	ebitenutil.DebugPrintAt(screen, stats, tx, ty+len(instructions)*panelLineH)
}
