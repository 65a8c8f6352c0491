package paint

import (
	"slices"

	"github.com/google/uuid"
)

// Document is the ordered shape list behind a canvas, together with the
// redo stack of removed shapes.
//
// Active shapes are painted in order, so later shapes cover earlier ones.
// The removed list is a stack whose top is its last element. A shape always
// belongs to exactly one of the two lists until Reset drops it.
//
// Document is not safe for concurrent use.
type Document struct {
	active  []Shape
	removed []Shape
}

// NewDocument returns an empty document.
func NewDocument() *Document {
	return &Document{}
}

// Apply executes cmd and reports whether the document changed. Every
// command is total: undoing an empty document or redoing with nothing
// removed is a no-op that returns false.
func (d *Document) Apply(cmd Command) bool {
	switch c := cmd.(type) {
	case Append:
		return d.append(c.Shape)
	case *Append:
		return c != nil && d.append(c.Shape)
	case UpdateFar:
		return d.updateFar(c.ID, c.Far)
	case *UpdateFar:
		return c != nil && d.updateFar(c.ID, c.Far)
	case Undo, *Undo:
		return d.undo()
	case Redo, *Redo:
		return d.redo()
	case Clear, *Clear:
		return d.clear()
	case Reset, *Reset:
		return d.reset()
	}
	return false
}

func (d *Document) append(s Shape) bool {
	if s == nil {
		return false
	}
	if _, ok := d.Find(s.ID()); ok {
		return false
	}
	d.active = append(d.active, s)
	return true
}

func (d *Document) updateFar(id uuid.UUID, far Point) bool {
	s, ok := d.Find(id)
	if !ok {
		return false
	}
	s.SetFar(far)
	return true
}

func (d *Document) undo() bool {
	n := len(d.active)
	if n == 0 {
		return false
	}
	d.removed = append(d.removed, d.active[n-1])
	d.active[n-1] = nil
	d.active = d.active[:n-1]
	return true
}

func (d *Document) redo() bool {
	n := len(d.removed)
	if n == 0 {
		return false
	}
	d.active = append(d.active, d.removed[n-1])
	d.removed[n-1] = nil
	d.removed = d.removed[:n-1]
	return true
}

// clear pushes the active shapes onto the removed stack topmost-first, so
// that redoing n times rebuilds the active list in its original order.
func (d *Document) clear() bool {
	if len(d.active) == 0 {
		return false
	}
	for i := len(d.active) - 1; i >= 0; i-- {
		d.removed = append(d.removed, d.active[i])
	}
	clear(d.active)
	d.active = d.active[:0]
	return true
}

func (d *Document) reset() bool {
	changed := len(d.active) > 0 || len(d.removed) > 0
	d.active = nil
	d.removed = nil
	return changed
}

// Active returns a copy of the active shapes in paint order.
func (d *Document) Active() []Shape {
	return slices.Clone(d.active)
}

// Removed returns a copy of the removed stack; the last element is the next
// shape Redo restores.
func (d *Document) Removed() []Shape {
	return slices.Clone(d.removed)
}

// Len returns the number of active shapes.
func (d *Document) Len() int { return len(d.active) }

// RemovedLen returns the number of shapes available to Redo.
func (d *Document) RemovedLen() int { return len(d.removed) }

// Find looks a shape up by ID in either list.
func (d *Document) Find(id uuid.UUID) (Shape, bool) {
	for i := len(d.active) - 1; i >= 0; i-- {
		if d.active[i].ID() == id {
			return d.active[i], true
		}
	}
	for i := len(d.removed) - 1; i >= 0; i-- {
		if d.removed[i].ID() == id {
			return d.removed[i], true
		}
	}
	return nil, false
}

// Each calls fn for every active shape in paint order.
func (d *Document) Each(fn func(Shape)) {
	for _, s := range d.active {
		fn(s)
	}
}
