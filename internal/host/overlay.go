package host

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/iburimskiy/joy/internal/video"
)

const overlayFadeSeconds = 0.6

var overlayBorder = color.NRGBA{R: 255, G: 255, B: 255, A: 100}

// frameOverlay composites the current video frame into the bottom-left
// corner, fading in whenever a new source is attached.
type frameOverlay struct {
	source video.Source
	width  float64
	margin float64

	uploaded image.Image
	texture  *ebiten.Image

	fade  *gween.Tween
	alpha float32
}

func newFrameOverlay(width, margin int) *frameOverlay {
	return &frameOverlay{width: float64(width), margin: float64(margin)}
}

// attach swaps in a new source and closes the old one.
func (o *frameOverlay) attach(src video.Source) error {
	var err error
	if o.source != nil {
		err = o.source.Close()
	}
	o.source = src
	o.uploaded = nil
	if o.texture != nil {
		o.texture.Deallocate()
		o.texture = nil
	}
	o.alpha = 0
	o.fade = gween.New(0, 1, overlayFadeSeconds, ease.OutCubic)
	return err
}

func (o *frameOverlay) update(dt float32) {
	if o.fade == nil {
		return
	}
	alpha, done := o.fade.Update(dt)
	o.alpha = alpha
	if done {
		o.fade = nil
	}
}

// rect is where a frame of the given bounds lands on a screen of height h.
func (o *frameOverlay) rect(frame image.Rectangle, screenHeight int) (x, y, w, h float64) {
	w = o.width
	h = float64(frame.Dy()) / float64(frame.Dx()) * w
	x = o.margin
	y = float64(screenHeight) - h - o.margin
	return x, y, w, h
}

func (o *frameOverlay) draw(screen *ebiten.Image) {
	if o.source == nil {
		return
	}
	frame, ok := o.source.Frame()
	if !ok {
		return
	}
	if frame != o.uploaded {
		if o.texture != nil {
			o.texture.Deallocate()
		}
		o.texture = ebiten.NewImageFromImage(frame)
		o.uploaded = frame
	}

	b := frame.Bounds()
	x, y, w, h := o.rect(b, screen.Bounds().Dy())

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleAlpha(o.alpha)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(o.texture, op)

	border := overlayBorder
	border.A = uint8(float32(border.A) * o.alpha)
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, border, false)
}

func (o *frameOverlay) close() error {
	if o.texture != nil {
		o.texture.Deallocate()
		o.texture = nil
	}
	if o.source == nil {
		return nil
	}
	err := o.source.Close()
	o.source = nil
	return err
}
