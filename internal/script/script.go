// Package script replays recorded editor sessions against a paint.Canvas.
//
// A script is a TOML document holding a list of steps. Each step is either a
// whole pointer gesture (press, drags, release) that draws one shape, a
// toolbar selection, or a document command:
//
//	[[step]]
//	op = "thickness"
//	index = 2
//
//	[[step]]
//	op = "draw"
//	shape = "ellipse"
//	points = [[10, 10], [40, 30], [80, 50]]
//	color = "#0000ff"
//
//	[[step]]
//	op = "image"
//	image = "stamp.png"
//	points = [[100, 100], [160, 140]]
//
//	[[step]]
//	op = "undo"
//
// The first point of a gesture is where the pointer went down, the last is
// where it was released, and every point in between is a drag position.
package script

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/internal/imageio"
)

// Step operations.
const (
	OpDraw      = "draw"
	OpImage     = "image"
	OpUndo      = "undo"
	OpRedo      = "redo"
	OpClear     = "clear"
	OpReset     = "reset"
	OpThickness = "thickness"
	OpFootprint = "footprint"
	OpColor     = "color"
)

// Script errors.
var (
	// ErrUnknownOp is returned for a step whose op is not one of the Op
	// constants.
	ErrUnknownOp = errors.New("script: unknown op")

	// ErrInvalidStep is returned for a step that misses a required field.
	ErrInvalidStep = errors.New("script: invalid step")
)

// Step is one entry of a script. Which fields are used depends on Op.
type Step struct {
	Op string `toml:"op"`

	// Shape and Points describe a draw gesture; Image and Points an image
	// stamp gesture. Shape defaults to a line.
	Shape  paint.Kind `toml:"shape"`
	Points [][2]int   `toml:"points"`
	Image  string     `toml:"image"`

	// Index selects a thickness from the canvas table. In a draw step it
	// overrides the current selection for that gesture only.
	Index *int `toml:"index"`
	// Color and Footprint work the same way.
	Color     *paint.Color         `toml:"color"`
	Footprint *paint.FootprintKind `toml:"footprint"`
}

// Script is a decoded session.
type Script struct {
	Steps []Step `toml:"step"`

	// dir resolves relative image paths; empty means the working directory.
	dir string
}

// Decode reads and validates a script.
func Decode(r io.Reader) (*Script, error) {
	var s Script
	md, err := toml.NewDecoder(r).Decode(&s)
	if err != nil {
		return nil, fmt.Errorf("script: decode: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %s", ErrInvalidStep, undecoded[0])
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads the script file at path. Image paths inside it are resolved
// relative to the file's directory.
func Load(path string) (*Script, error) {
	var s Script
	md, err := toml.DecodeFile(path, &s)
	if err != nil {
		return nil, fmt.Errorf("script: load %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: %s: unknown key %s", ErrInvalidStep, path, undecoded[0])
	}
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.dir = filepath.Dir(path)
	return &s, nil
}

// Validate checks every step. The error names the first bad step.
func (s *Script) Validate() error {
	for i, st := range s.Steps {
		if err := st.validate(); err != nil {
			return fmt.Errorf("step %d: %w", i+1, err)
		}
	}
	return nil
}

func (st Step) validate() error {
	op := strings.ToLower(st.Op)
	switch op {
	case OpDraw:
		if st.Shape == paint.KindImage {
			return fmt.Errorf("%w: draw an image with op %q", ErrInvalidStep, OpImage)
		}
		if len(st.Points) == 0 {
			return fmt.Errorf("%w: %s needs at least one point", ErrInvalidStep, op)
		}
	case OpImage:
		if st.Image == "" {
			return fmt.Errorf("%w: %s needs an image path", ErrInvalidStep, op)
		}
		if len(st.Points) == 0 {
			return fmt.Errorf("%w: %s needs at least one point", ErrInvalidStep, op)
		}
	case OpThickness:
		if st.Index == nil {
			return fmt.Errorf("%w: %s needs an index", ErrInvalidStep, op)
		}
	case OpFootprint:
		if st.Footprint == nil {
			return fmt.Errorf("%w: %s needs a footprint", ErrInvalidStep, op)
		}
	case OpColor:
		if st.Color == nil {
			return fmt.Errorf("%w: %s needs a color", ErrInvalidStep, op)
		}
	case OpUndo, OpRedo, OpClear, OpReset:
	default:
		return fmt.Errorf("%w %q", ErrUnknownOp, st.Op)
	}
	return nil
}

// ImageLoader decodes the image file at path.
type ImageLoader func(path string) (image.Image, error)

// Result summarises a run.
type Result struct {
	Shapes   int // gestures that placed a shape
	Skipped  int // gestures dropped because their image failed to load
	Commands int // undo, redo, clear and reset steps
}

// selection is the toolbar state a gesture picks its style from.
type selection struct {
	index     int
	color     paint.Color
	footprint paint.FootprintKind
}

// Run replays every step against c in order. Image gestures whose file
// cannot be loaded are skipped entirely, so c never learns about them.
// A nil load uses imageio.Load.
func (s *Script) Run(c *paint.Canvas, load ImageLoader) Result {
	if load == nil {
		load = imageio.Load
	}
	cfg := c.Config()
	sel := selection{color: cfg.DefaultColor, footprint: cfg.DefaultFootprint}
	var res Result

	for i, st := range s.Steps {
		log := paint.Logger().With("step", i+1, "op", st.Op)

		switch strings.ToLower(st.Op) {
		case OpThickness:
			sel.index = *st.Index
			c.SelectThickness(sel.index)
		case OpFootprint:
			sel.footprint = *st.Footprint
			c.SelectFootprint(sel.footprint)
		case OpColor:
			sel.color = *st.Color
		case OpDraw:
			gesture(c, st.points(), func(at paint.Point) paint.Handle {
				return c.BeginShape(st.Shape, at, st.style(c, sel))
			})
			res.Shapes++
		case OpImage:
			img, err := load(s.resolve(st.Image))
			if err != nil {
				log.Warn("script: image gesture dropped", "image", st.Image, "err", err)
				res.Skipped++
				continue
			}
			gesture(c, st.points(), func(at paint.Point) paint.Handle {
				return c.BeginImage(at, img, st.style(c, sel))
			})
			res.Shapes++
		case OpUndo:
			c.Undo()
			res.Commands++
		case OpRedo:
			c.Redo()
			res.Commands++
		case OpClear:
			c.Clear()
			res.Commands++
		case OpReset:
			c.Reset()
			res.Commands++
		}
		log.Debug("script: step done", "shapes", c.ShapeCount(), "status", c.Status())
	}
	return res
}

// gesture presses at the first point, drags through the rest and
// releases.
func gesture(c *paint.Canvas, pts []paint.Point, begin func(paint.Point) paint.Handle) {
	h := begin(pts[0])
	for _, p := range pts[1:] {
		c.UpdateShape(h, p)
	}
	c.FinalizeShape(h)
}

func (st Step) points() []paint.Point {
	pts := make([]paint.Point, len(st.Points))
	for i, p := range st.Points {
		pts[i] = paint.Pt(p[0], p[1])
	}
	return pts
}

func (st Step) style(c *paint.Canvas, sel selection) paint.Style {
	if st.Index != nil {
		sel.index = *st.Index
	}
	if st.Color != nil {
		sel.color = *st.Color
	}
	if st.Footprint != nil {
		sel.footprint = *st.Footprint
	}
	return paint.Style{
		Width:     c.StrokeWidthForIndex(sel.index),
		Color:     sel.color,
		Footprint: sel.footprint,
	}
}

func (s *Script) resolve(path string) string {
	if s.dir == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(s.dir, path)
}
