package paint

import "github.com/gogpu/paint/internal/raster"

// Circle is drawn inside the rectangle spanned by Start and Far. The longer
// side fixes the radius, and the centre sits at the middle of the
// rectangle.
type Circle struct{ base }

// Geometry returns the centre and radius the circle is drawn with.
func (c *Circle) Geometry() (center Point, radius int) {
	lo, _ := bounds(c.start, c.far)
	dx, dy := abs(c.far.X-c.start.X), abs(c.far.Y-c.start.Y)
	return Point{lo.X + dx/2, lo.Y + dy/2}, max(dx, dy) / 2
}

// Rasterize implements Shape. A radius below 2 draws nothing.
func (c *Circle) Rasterize(pm *Pixmap) {
	center, r := c.Geometry()
	if r < 2 {
		return
	}
	raster.Circle(center.X, center.Y, r, c.pen(pm).plot)
}
