package paint

import "github.com/gogpu/paint/internal/raster"

// Line is a straight stroke from Start to Far. Both endpoints are stamped,
// and a line whose endpoints coincide is a single stamp.
type Line struct{ base }

// Rasterize implements Shape.
func (l *Line) Rasterize(pm *Pixmap) {
	strokeLine(l.pen(pm), l.start, l.far)
}

func strokeLine(b brush, p0, p1 Point) {
	raster.Line(p0.X, p0.Y, p1.X, p1.Y, b.plot)
}

// Square is the axis-aligned rectangle whose opposite corners are Start
// and Far, outlined with four lines clockwise from the top-left corner.
type Square struct{ base }

// Corners returns the top-left, top-right, bottom-right and bottom-left
// corners.
func (s *Square) Corners() [4]Point {
	lo, hi := bounds(s.start, s.far)
	return [4]Point{lo, {hi.X, lo.Y}, hi, {lo.X, hi.Y}}
}

// Rasterize implements Shape.
func (s *Square) Rasterize(pm *Pixmap) {
	b := s.pen(pm)
	c := s.Corners()
	for i := range c {
		strokeLine(b, c[i], c[(i+1)%len(c)])
	}
}

// Triangle is the isosceles triangle inscribed in the rectangle spanned by
// Start and Far: its apex is the midpoint of the top edge and its base is
// the bottom edge.
type Triangle struct{ base }

// Vertices returns the apex, the bottom-right and the bottom-left vertex.
func (t *Triangle) Vertices() [3]Point {
	lo, hi := bounds(t.start, t.far)
	apex := Point{lo.X + (hi.X-lo.X)/2, lo.Y}
	return [3]Point{apex, hi, {lo.X, hi.Y}}
}

// Rasterize implements Shape.
func (t *Triangle) Rasterize(pm *Pixmap) {
	b := t.pen(pm)
	v := t.Vertices()
	for i := range v {
		strokeLine(b, v[i], v[(i+1)%len(v)])
	}
}
