package tui

import (
	"image/color"
	"math"
	"strings"
)

// ramp maps cell intensity to characters, dimmest first.
const ramp = " .:-=+*#%@"

// Grid is a character-cell canvas for the scene. Each cell holds an
// intensity in [0, 1]; translucent fills fade it the same way the window
// canvas fades toward the background.
type Grid struct {
	cols, rows int
	scaleX     float64
	scaleY     float64
	cells      []float64
}

// NewGrid maps a sceneW x sceneH scene onto cols x rows cells.
func NewGrid(cols, rows int, sceneW, sceneH float64) *Grid {
	g := &Grid{cols: cols, rows: rows, cells: make([]float64, cols*rows)}
	g.Rescale(sceneW, sceneH)
	return g
}

// Rescale updates the scene size and clears the grid.
func (g *Grid) Rescale(sceneW, sceneH float64) {
	g.scaleX = float64(g.cols) / sceneW
	g.scaleY = float64(g.rows) / sceneH
	for i := range g.cells {
		g.cells[i] = 0
	}
}

func (g *Grid) FillRect(x, y, w, h float64, c color.NRGBA) {
	keep := 1 - float64(c.A)/255
	x0, y0 := g.cell(x, y)
	x1, y1 := g.cell(x+w, y+h)
	for row := max(y0, 0); row < min(y1, g.rows); row++ {
		for col := max(x0, 0); col < min(x1, g.cols); col++ {
			g.cells[row*g.cols+col] *= keep
		}
	}
}

func (g *Grid) FillCircle(cx, cy, r float64, c color.NRGBA) {
	col, row := g.cell(cx, cy)
	if col < 0 || col >= g.cols || row < 0 || row >= g.rows {
		return
	}
	// Larger bubbles read brighter.
	v := float64(c.A) / 255 * math.Min(1, 0.5+r/40)
	i := row*g.cols + col
	if v > g.cells[i] {
		g.cells[i] = v
	}
}

func (g *Grid) cell(x, y float64) (int, int) {
	return int(math.Floor(x * g.scaleX)), int(math.Floor(y * g.scaleY))
}

// At returns the intensity of a cell.
func (g *Grid) At(col, row int) float64 {
	return g.cells[row*g.cols+col]
}

func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.cols + 1) * g.rows)
	last := len(ramp) - 1
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			idx := int(math.Round(g.cells[row*g.cols+col] * float64(last)))
			b.WriteByte(ramp[min(max(idx, 0), last)])
		}
		if row < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
