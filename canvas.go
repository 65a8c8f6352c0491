package paint

import (
	"image"

	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

// Handle refers to a shape placed with Canvas.BeginShape or
// Canvas.BeginImage. The zero Handle refers to nothing; every Canvas method
// treats it, and handles of shapes dropped by Reset, as a no-op.
type Handle uuid.UUID

// IsZero reports whether h is the zero Handle.
func (h Handle) IsZero() bool { return uuid.UUID(h) == uuid.Nil }

func (h Handle) String() string { return uuid.UUID(h).String() }

// Canvas is the drawing engine behind an interactive editor. Pointer
// gestures become shapes through BeginShape, UpdateShape and
// FinalizeShape; the toolbar maps to Undo, Redo, Clear and Reset. Every
// event is applied to the Document as a Command and followed by a repaint
// of the visible surface.
//
// Canvas is not safe for concurrent use. Events must be delivered one at a
// time, in the order they happened.
type Canvas struct {
	cfg  Config
	doc  *Document
	comp *Compositor

	status  string
	pointer Point
	moved   bool
}

// NewCanvas creates an empty canvas. Without options it uses DefaultConfig
// and draws into its own Pixmap.
//
//	c := paint.NewCanvas()
//	h := c.BeginShape(paint.KindLine, paint.Pt(0, 0), c.DefaultStyle())
//	c.UpdateShape(h, paint.Pt(5, 0))
//	c.FinalizeShape(h)
func NewCanvas(opts ...CanvasOption) *Canvas {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	cfg := options.config
	return &Canvas{
		cfg:    cfg,
		doc:    NewDocument(),
		comp:   NewCompositor(cfg.Width, cfg.Height, cfg.Background, options.target),
		status: statusReady,
	}
}

// Config returns the configuration the canvas was built with.
func (c *Canvas) Config() Config { return c.cfg }

// Document returns the shape document. Mutate it through the Canvas so the
// surface stays in sync.
func (c *Canvas) Document() *Document { return c.doc }

// Surface returns the visible surface.
func (c *Canvas) Surface() draw.Image { return c.comp.Target() }

// Status returns the current status line.
func (c *Canvas) Status() string { return c.status }

// Pointer returns the last position passed to UpdateShape. ok is false
// until the first drag.
func (c *Canvas) Pointer() (p Point, ok bool) { return c.pointer, c.moved }

// ShapeCount returns the number of shapes currently drawn.
func (c *Canvas) ShapeCount() int { return c.doc.Len() }

// DefaultStyle returns a hairline stroke in the configured default colour
// and footprint.
func (c *Canvas) DefaultStyle() Style {
	return Style{Width: 1, Color: c.cfg.DefaultColor, Footprint: c.cfg.DefaultFootprint}
}

// StrokeWidthForIndex maps a thickness selector index to a brush diameter.
// Indices outside the table yield 1.
func (c *Canvas) StrokeWidthForIndex(i int) int {
	if i < 0 || i >= len(c.cfg.Thickness) {
		Logger().Warn("paint: thickness index out of range", "index", i, "table", len(c.cfg.Thickness))
	}
	return c.cfg.StrokeWidthForIndex(i)
}

// SelectThickness reports a thickness selection on the status line and
// returns the resulting brush diameter.
func (c *Canvas) SelectThickness(i int) int {
	w := c.StrokeWidthForIndex(i)
	c.status = statusThickness(w)
	return w
}

// SelectFootprint reports a footprint selection on the status line.
func (c *Canvas) SelectFootprint(k FootprintKind) {
	c.status = statusFootprint(k)
}

// BeginShape places a new shape whose far point is still its start point.
// The first shape ever placed switches rendering on. Image stamps must be
// placed with BeginImage; asking for KindImage here returns the zero
// Handle.
func (c *Canvas) BeginShape(kind Kind, start Point, style Style) Handle {
	s, err := NewShape(kind, start, style)
	if err != nil {
		Logger().Warn("paint: shape rejected", "kind", kind, "err", err)
		return Handle{}
	}
	return c.begin(s)
}

// BeginImage places an image stamp anchored at start. The image must be
// decoded already; a nil image returns the zero Handle.
func (c *Canvas) BeginImage(start Point, img image.Image, style Style) Handle {
	if img == nil {
		Logger().Warn("paint: image stamp without image", "at", start)
		return Handle{}
	}
	return c.begin(NewImageStamp(start, img, style))
}

func (c *Canvas) begin(s Shape) Handle {
	c.doc.Apply(Append{Shape: s})
	if c.comp.Activate() {
		Logger().Info("paint: rendering activated", "width", c.cfg.Width, "height", c.cfg.Height)
	}
	Logger().Debug("paint: begin shape",
		"id", s.ID(),
		"kind", s.Kind(),
		"start", s.Start(),
		"width", s.Style().Width)
	c.status = statusBegin(s.Start())
	c.comp.Repaint(c.doc)
	return Handle(s.ID())
}

// UpdateShape moves the far point of the shape behind h and repaints.
func (c *Canvas) UpdateShape(h Handle, far Point) {
	if !c.doc.Apply(UpdateFar{ID: uuid.UUID(h), Far: far}) {
		return
	}
	s, _ := c.doc.Find(uuid.UUID(h))
	c.pointer, c.moved = far, true
	c.status = statusDrag(s.Start())
	c.comp.Repaint(c.doc)
}

// FinalizeShape marks the end of the gesture that drew h. The shape itself
// does not change; the status line reports it and the surface is repainted.
func (c *Canvas) FinalizeShape(h Handle) {
	s, ok := c.doc.Find(uuid.UUID(h))
	if !ok {
		return
	}
	Logger().Debug("paint: finalize shape", "id", s.ID(), "kind", s.Kind(), "far", s.Far())
	c.status = statusCreated(s)
	c.comp.Repaint(c.doc)
}

// Undo removes the most recent shape. It can be brought back with Redo.
func (c *Canvas) Undo() {
	ok := c.apply(Undo{})
	c.status = statusUndo(ok, c.doc.Len())
}

// Redo restores the most recently removed shape.
func (c *Canvas) Redo() {
	ok := c.apply(Redo{})
	c.status = statusRedo(ok, c.doc.Len())
}

// Clear removes every shape from the surface. Repeated Redo calls restore
// them in their original order.
func (c *Canvas) Clear() {
	c.apply(Clear{})
	c.status = statusCleared
}

// Reset discards every shape, including those waiting for Redo.
func (c *Canvas) Reset() {
	if c.apply(Reset{}) {
		Logger().Info("paint: document reset")
	}
	c.status = statusNew
}

func (c *Canvas) apply(cmd Command) bool {
	changed := c.doc.Apply(cmd)
	Logger().Debug("paint: command",
		"type", cmd.Type(),
		"changed", changed,
		"shapes", c.doc.Len(),
		"removed", c.doc.RemovedLen())
	c.comp.Repaint(c.doc)
	return changed
}

// Repaint redraws the surface from the document. It returns false while
// no shape has been placed yet.
func (c *Canvas) Repaint() bool {
	return c.comp.Repaint(c.doc)
}
