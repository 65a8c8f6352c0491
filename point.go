package paint

import (
	"fmt"
	"image"
)

// Point is an integer pixel coordinate. The origin is the top-left corner of
// the canvas, x grows right and y grows down.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Image converts p to an image.Point.
func (p Point) Image() image.Point {
	return image.Point{X: p.X, Y: p.Y}
}

// String formats p the way the status bar shows coordinates: "[x,y]".
func (p Point) String() string {
	return fmt.Sprintf("[%d,%d]", p.X, p.Y)
}

// bounds returns the normalised rectangle spanned by a and b. Max is
// inclusive: both corners lie inside the described pixel range.
func bounds(a, b Point) (minP, maxP Point) {
	return Point{min(a.X, b.X), min(a.Y, b.Y)}, Point{max(a.X, b.X), max(a.Y, b.Y)}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
