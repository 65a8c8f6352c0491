// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

// Line walks the midpoint line from (x0, y0) to (x1, y1), both endpoints
// inclusive, calling plot once per step along the major axis.
//
// Shallow lines (|dx| > |dy|) step over x; all others step over y. Before
// stepping, the endpoints are ordered so the major coordinate increases,
// which makes Line(a, b) and Line(b, a) visit the same set of points.
// A zero-length line plots its single point.
func Line(x0, y0, x1, y1 int, plot PlotFunc) {
	if abs(x1-x0) > abs(y1-y0) {
		if x0 > x1 {
			x0, x1 = x1, x0
			y0, y1 = y1, y0
		}
		shallow(x0, y0, x1, y1, plot)
		return
	}
	if y0 > y1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}
	steep(x0, y0, x1, y1, plot)
}

// shallow expects x0 <= x1.
func shallow(x0, y0, x1, y1 int, plot PlotFunc) {
	dx := x1 - x0
	dy := y1 - y0
	slope := 1
	if dy < 0 {
		dy = -dy
		slope = -1
	}

	p := 2*dy - dx
	y := y0
	plot(x0, y0)
	for x := x0 + 1; x <= x1; x++ {
		if p < 0 {
			p += 2 * dy
		} else {
			p += 2*dy - 2*dx
			y += slope
		}
		plot(x, y)
	}
}

// steep expects y0 <= y1.
func steep(x0, y0, x1, y1 int, plot PlotFunc) {
	dx := x1 - x0
	dy := y1 - y0
	slope := 1
	if dx < 0 {
		dx = -dx
		slope = -1
	}

	p := 2*dx - dy
	x := x0
	plot(x0, y0)
	for y := y0 + 1; y <= y1; y++ {
		if p < 0 {
			p += 2 * dx
		} else {
			p += 2*dx - 2*dy
			x += slope
		}
		plot(x, y)
	}
}
