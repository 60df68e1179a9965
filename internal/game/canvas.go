package game

import "image/color"

// Canvas is the drawing surface a Scene renders into. The window host backs
// it with an ebiten image, the terminal viewer with a character grid.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.NRGBA)
	FillCircle(cx, cy, r float64, c color.NRGBA)
}
