// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

// EllipseQuadrant walks the first quadrant of the axis-aligned ellipse with
// horizontal semi-axis a and vertical semi-axis b centred on the origin,
// between (0, b) and (a, 0). Consecutive points are 8-connected and both
// extremes are always visited.
//
// Region 1 steps x while the outline slope is shallower than -1, region 2
// steps y until the major axis is reached. Decision variables are scaled by
// four so they stay integral, and use int64 so large canvases cannot
// overflow. When b is much smaller than a, region 2 can leave the outline
// before x reaches a; the missing points along y = 0 are then filled in.
// A tall ellipse (b > a) is walked transposed, from (a, 0) to (0, b).
func EllipseQuadrant(a, b int, visit PlotFunc) {
	if a < 0 || b < 0 {
		return
	}
	if b > a {
		EllipseQuadrant(b, a, func(x, y int) { visit(y, x) })
		return
	}
	a2 := int64(a) * int64(a)
	b2 := int64(b) * int64(b)
	x, y := int64(0), int64(b)

	d := 4*b2 - 4*a2*int64(b) + a2
	for b2*x <= a2*y && y > 0 {
		visit(int(x), int(y))
		if d < 0 {
			d += 4 * b2 * (2*x + 3)
		} else {
			d += 4*b2*(2*x+3) - 8*a2*(y-1)
			y--
		}
		x++
	}

	d = b2*(2*x+1)*(2*x+1) + 4*a2*(y-1)*(y-1) - 4*a2*b2
	last := x
	for y >= 0 {
		visit(int(x), int(y))
		last = x
		if d > 0 {
			d += 4 * a2 * (3 - 2*y)
		} else {
			d += 8*b2*(x+1) + 4*a2*(3-2*y)
			x++
		}
		y--
	}

	for x := last + 1; x <= int64(a); x++ {
		visit(int(x), 0)
	}
}

// Ellipse plots the outline of the ellipse with semi-axes a and b centred at
// (cx, cy) by mirroring EllipseQuadrant into all four quadrants.
func Ellipse(cx, cy, a, b int, plot PlotFunc) {
	EllipseQuadrant(a, b, func(x, y int) {
		plot(cx+x, cy+y)
		plot(cx-x, cy+y)
		plot(cx+x, cy-y)
		plot(cx-x, cy-y)
	})
}
