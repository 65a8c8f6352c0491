package paint

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Kind identifies one of the shape variants.
type Kind uint8

const (
	KindLine Kind = iota
	KindCircle
	KindSquare
	KindEllipse
	KindTriangle
	KindArc
	KindImage
)

var kindNames = [...]string{
	KindLine:     "line",
	KindCircle:   "circle",
	KindSquare:   "square",
	KindEllipse:  "ellipse",
	KindTriangle: "triangle",
	KindArc:      "arc",
	KindImage:    "image",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", k)
}

// ParseKind parses a shape kind name such as "line" or "ellipse".
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return Kind(k), nil
		}
	}
	return 0, fmt.Errorf("paint: unknown shape kind %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// Style is the stroke applied to a shape's outline.
type Style struct {
	// Width is the brush diameter in pixels. Values below 1 are raised to 1.
	Width int
	Color Color
	// Footprint is only consulted when Width > 1.
	Footprint FootprintKind
}

func (s Style) normalized() Style {
	if s.Width < 1 {
		s.Width = 1
	}
	return s
}

// Shape is one placed primitive. Its start point is fixed at construction;
// the far point follows the pointer until the gesture ends, and Rasterize
// always draws the shape as of its current far point.
type Shape interface {
	ID() uuid.UUID
	Kind() Kind
	Start() Point
	Far() Point
	SetFar(Point)
	Style() Style
	// Rasterize draws the shape onto pm. It never fails; pixels that fall
	// outside pm are dropped.
	Rasterize(pm *Pixmap)
}

// base carries the fields every shape shares.
type base struct {
	id    uuid.UUID
	kind  Kind
	start Point
	far   Point
	style Style
}

func newBase(kind Kind, start Point, style Style) base {
	return base{
		id:    uuid.New(),
		kind:  kind,
		start: start,
		far:   start,
		style: style.normalized(),
	}
}

func (b *base) ID() uuid.UUID  { return b.id }
func (b *base) Kind() Kind     { return b.kind }
func (b *base) Start() Point   { return b.start }
func (b *base) Far() Point     { return b.far }
func (b *base) SetFar(p Point) { b.far = p }
func (b *base) Style() Style   { return b.style }

func (b *base) pen(pm *Pixmap) brush {
	return brush{pm: pm, style: b.style}
}

// NewShape creates a geometric shape whose far point starts at start.
// Image stamps need a decoded image and are built with NewImageStamp.
func NewShape(kind Kind, start Point, style Style) (Shape, error) {
	b := newBase(kind, start, style)
	switch kind {
	case KindLine:
		return &Line{b}, nil
	case KindCircle:
		return &Circle{b}, nil
	case KindSquare:
		return &Square{b}, nil
	case KindEllipse:
		return &Ellipse{b}, nil
	case KindTriangle:
		return &Triangle{b}, nil
	case KindArc:
		return &Arc{b}, nil
	case KindImage:
		return nil, fmt.Errorf("paint: %v shapes need an image, use NewImageStamp", kind)
	}
	return nil, fmt.Errorf("paint: unknown shape kind %v", kind)
}
