package paint

import "github.com/gogpu/paint/internal/raster"

// ellipseGeom is an axis-aligned ellipse derived from two bounding
// endpoints. a is always the semi-axis along the dominant direction; when
// steep is set that direction is vertical and quadrant points are
// transposed before plotting.
type ellipseGeom struct {
	cx, cy int
	a, b   int
	steep  bool
}

func ellipseFrom(start, far Point) ellipseGeom {
	lo, _ := bounds(start, far)
	dx, dy := abs(far.X-start.X), abs(far.Y-start.Y)
	g := ellipseGeom{cx: lo.X + dx/2, cy: lo.Y + dy/2}
	if dx > dy {
		g.a, g.b = dx/2, dy/2
	} else {
		g.a, g.b, g.steep = dy/2, dx/2, true
	}
	return g
}

// degenerate reports whether the ellipse is too small to draw.
func (g ellipseGeom) degenerate() bool {
	return g.a < 2 && g.b < 2
}

type half uint8

const (
	wholeEllipse half = iota
	leftHalf
	rightHalf
)

func (g ellipseGeom) trace(side half, plot raster.PlotFunc) {
	raster.EllipseQuadrant(g.a, g.b, func(u, v int) {
		x, y := u, v
		if g.steep {
			x, y = v, u
		}
		if side != rightHalf {
			plot(g.cx-x, g.cy+y)
			plot(g.cx-x, g.cy-y)
		}
		if side != leftHalf {
			plot(g.cx+x, g.cy+y)
			plot(g.cx+x, g.cy-y)
		}
	})
}

// Ellipse is the axis-aligned ellipse inscribed in the rectangle spanned by
// Start and Far.
type Ellipse struct{ base }

// Rasterize implements Shape. Nothing is drawn while both semi-axes are
// below 2.
func (e *Ellipse) Rasterize(pm *Pixmap) {
	g := ellipseFrom(e.start, e.far)
	if g.degenerate() {
		return
	}
	g.trace(wholeEllipse, e.pen(pm).plot)
}

// Arc is one vertical half of the ellipse inscribed in the rectangle
// spanned by Start and Far. Which half is drawn depends on the drag
// direction: for a wide rectangle the left half when Far lies to the right
// of Start, and for a tall one the left half when the upper endpoint is
// left of (or level with) the lower one.
type Arc struct{ base }

// LeftHalf reports whether the arc currently draws the left half.
func (a *Arc) LeftHalf() bool {
	if abs(a.far.X-a.start.X) > abs(a.far.Y-a.start.Y) {
		return a.start.X <= a.far.X
	}
	top, bottom := a.start, a.far
	if top.Y > bottom.Y {
		top, bottom = bottom, top
	}
	return top.X <= bottom.X
}

// Rasterize implements Shape, with the same size threshold as Ellipse.
func (a *Arc) Rasterize(pm *Pixmap) {
	g := ellipseFrom(a.start, a.far)
	if g.degenerate() {
		return
	}
	side := rightHalf
	if a.LeftHalf() {
		side = leftHalf
	}
	g.trace(side, a.pen(pm).plot)
}
