// Package statusbar renders the one-line status strip shown under a canvas:
// the last status message on the left and the pointer position on the
// right.
//
// Text is drawn with the Go Regular font at a fixed size, so the output
// does not depend on fonts installed on the machine.
package statusbar

import (
	"fmt"
	"image"
	"image/color"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Layout constants, in pixels.
const (
	FontSize = 12
	Height   = 20
	padding  = 6
)

// Default colours of the strip.
var (
	DefaultForeground color.Color = color.Black
	DefaultBackground color.Color = color.RGBA{R: 0xee, G: 0xee, B: 0xee, A: 0xff}
)

var (
	faceOnce sync.Once
	face     font.Face
	faceErr  error

	// faceMu guards face: opentype faces are not safe for concurrent use.
	faceMu sync.Mutex
)

// loadFace parses the embedded font once.
func loadFace() (font.Face, error) {
	faceOnce.Do(func() {
		f, err := opentype.Parse(goregular.TTF)
		if err != nil {
			faceErr = fmt.Errorf("statusbar: parse font: %w", err)
			return
		}
		face, err = opentype.NewFace(f, &opentype.FaceOptions{
			Size:    FontSize,
			DPI:     72,
			Hinting: font.HintingFull,
		})
		if err != nil {
			faceErr = fmt.Errorf("statusbar: create face: %w", err)
		}
	})
	return face, faceErr
}

// Measure returns the advance width of text in pixels.
func Measure(text string) (int, error) {
	f, err := loadFace()
	if err != nil {
		return 0, err
	}
	faceMu.Lock()
	defer faceMu.Unlock()
	return font.MeasureString(f, text).Ceil(), nil
}

// Render fills r on dst with bg and writes left-aligned status text and
// right-aligned position text on it, both vertically centred. Text that
// does not fit is clipped at r.
func Render(dst draw.Image, r image.Rectangle, status, position string, fg, bg color.Color) error {
	f, err := loadFace()
	if err != nil {
		return err
	}
	draw.Draw(dst, r, image.NewUniform(bg), image.Point{}, draw.Src)

	faceMu.Lock()
	defer faceMu.Unlock()

	m := f.Metrics()
	baseline := r.Min.Y + (r.Dy()+m.Ascent.Ceil()-m.Descent.Ceil())/2

	clip := clipped{Image: dst, r: r}
	d := font.Drawer{
		Dst:  clip,
		Src:  image.NewUniform(fg),
		Face: f,
		Dot:  fixed.P(r.Min.X+padding, baseline),
	}
	d.DrawString(status)

	if position != "" {
		w := font.MeasureString(f, position).Ceil()
		d.Dot = fixed.P(r.Max.X-padding-w, baseline)
		d.DrawString(position)
	}
	return nil
}

// Compose returns a new image holding canvas with a status strip of
// Height pixels appended below it.
func Compose(canvas image.Image, status, position string) (*image.RGBA, error) {
	b := canvas.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()+Height))
	draw.Draw(out, image.Rect(0, 0, b.Dx(), b.Dy()), canvas, b.Min, draw.Src)

	strip := image.Rect(0, b.Dy(), b.Dx(), b.Dy()+Height)
	if err := Render(out, strip, status, position, DefaultForeground, DefaultBackground); err != nil {
		return nil, err
	}
	return out, nil
}

// clipped restricts writes to r so long messages cannot spill outside the
// strip.
type clipped struct {
	draw.Image
	r image.Rectangle
}

func (c clipped) Bounds() image.Rectangle {
	return c.r.Intersect(c.Image.Bounds())
}

func (c clipped) Set(x, y int, col color.Color) {
	if image.Pt(x, y).In(c.r) {
		c.Image.Set(x, y, col)
	}
}
