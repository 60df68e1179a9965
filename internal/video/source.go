// Package video supplies the frames composited into the corner overlay.
package video

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/ncruces/zenity"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"
)

// ErrCanceled is returned by Pick when the dialog is dismissed.
var ErrCanceled = errors.New("video: selection canceled")

var frameExtensions = map[string]bool{
	".png": true, ".jpg": true, ".jpeg": true, ".gif": true, ".bmp": true, ".webp": true,
}

// Source yields the current frame. ok is false while no frame is available,
// in which case the overlay is not drawn.
type Source interface {
	Frame() (img image.Image, ok bool)
	Close() error
}

// Open loads a single image, or every image in a directory as a looping
// sequence played at fps.
func Open(path string, fps float64) (Source, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return LoadSequence(path, fps)
	}
	return LoadStill(path)
}

// Pick asks the user for a frame file through the native dialog.
func Pick() (string, error) {
	path, err := zenity.SelectFile(
		zenity.Title("Open Frames"),
		zenity.FileFilters{{
			Name:     "Images",
			Patterns: []string{"*.png", "*.jpg", "*.jpeg", "*.gif", "*.bmp", "*.webp"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return "", ErrCanceled
		}
		return "", err
	}
	return path, nil
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("decode %s: empty image", path)
	}
	return img, nil
}

// Still is a source that always shows the same frame.
type Still struct {
	img image.Image
}

func NewStill(img image.Image) *Still {
	return &Still{img: img}
}

func LoadStill(path string) (*Still, error) {
	img, err := decodeFile(path)
	if err != nil {
		return nil, err
	}
	return NewStill(img), nil
}

func (s *Still) Frame() (image.Image, bool) {
	return s.img, s.img != nil
}

func (s *Still) Close() error {
	s.img = nil
	return nil
}

// Sequence loops over a fixed list of frames at a constant rate.
type Sequence struct {
	frames []image.Image
	fps    float64
	start  time.Time
	now    func() time.Time
}

func NewSequence(frames []image.Image, fps float64) *Sequence {
	return &Sequence{
		frames: frames,
		fps:    fps,
		start:  time.Now(),
		now:    time.Now,
	}
}

// LoadSequence decodes every frame file in dir, ordered by name.
func LoadSequence(dir string, fps float64) (*Sequence, error) {
	if fps <= 0 {
		return nil, fmt.Errorf("sequence %s: fps must be positive", dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !frameExtensions[strings.ToLower(filepath.Ext(e.Name()))] {
			continue
		}
		names = append(names, e.Name())
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("sequence %s: no frames", dir)
	}
	sort.Strings(names)

	frames := make([]image.Image, 0, len(names))
	for _, name := range names {
		img, err := decodeFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}
		frames = append(frames, img)
	}
	return NewSequence(frames, fps), nil
}

func (s *Sequence) Frame() (image.Image, bool) {
	if len(s.frames) == 0 {
		return nil, false
	}
	elapsed := s.now().Sub(s.start).Seconds()
	if elapsed < 0 {
		elapsed = 0
	}
	return s.frames[int(elapsed*s.fps)%len(s.frames)], true
}

func (s *Sequence) Len() int { return len(s.frames) }

func (s *Sequence) Close() error {
	s.frames = nil
	return nil
}
