package paint

import (
	"image"

	"golang.org/x/image/draw"
)

// Compositor owns the off-screen buffer of a canvas. A repaint clears the
// buffer, replays every active shape of a Document in paint order, then
// copies the result to the visible target in one step, so the target never
// shows a half-drawn frame.
//
// A new Compositor is inactive: Repaint does nothing until Activate has been
// called once. Activation is permanent.
type Compositor struct {
	buffer     *Pixmap
	target     draw.Image
	background Color
	active     bool
	frames     int
}

// NewCompositor creates a compositor with a width x height buffer. If
// target is nil a Pixmap of the same size is used, pre-filled with the
// background colour.
func NewCompositor(width, height int, background Color, target draw.Image) *Compositor {
	if target == nil {
		pm := NewPixmap(width, height)
		pm.Clear(background)
		target = pm
	}
	return &Compositor{
		buffer:     NewPixmap(width, height),
		target:     target,
		background: background,
	}
}

// Activate enables repainting and reports whether this call was the one
// that switched it on.
func (c *Compositor) Activate() bool {
	if c.active {
		return false
	}
	c.active = true
	return true
}

// Active reports whether Activate has been called.
func (c *Compositor) Active() bool { return c.active }

// Frames returns the number of repaints that reached the target.
func (c *Compositor) Frames() int { return c.frames }

// Buffer returns the off-screen buffer. Its content is only meaningful
// right after a repaint.
func (c *Compositor) Buffer() *Pixmap { return c.buffer }

// Target returns the visible surface.
func (c *Compositor) Target() draw.Image { return c.target }

// Repaint redraws doc into the buffer and blits it to the target. It
// returns false, leaving both untouched, while the compositor is inactive.
func (c *Compositor) Repaint(doc *Document) bool {
	if !c.active {
		return false
	}
	c.buffer.Clear(c.background)
	doc.Each(func(s Shape) {
		s.Rasterize(c.buffer)
	})
	c.blit()
	c.frames++

	extents := extentCache.Stats()
	Logger().Debug("paint: repaint",
		"frame", c.frames,
		"shapes", doc.Len(),
		"removed", doc.RemovedLen(),
		"footprints_cached", extents.Len,
		"footprint_misses", extents.Misses)
	return true
}

func (c *Compositor) blit() {
	if pm, ok := c.target.(*Pixmap); ok && pm.Bounds() == c.buffer.Bounds() {
		pm.CopyFrom(c.buffer)
		return
	}
	draw.Draw(c.target, c.target.Bounds(), c.buffer, image.Point{}, draw.Src)
}
