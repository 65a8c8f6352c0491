// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import "math"

// CircleOctant walks the second octant of a midpoint circle of radius r
// centred on the origin, from (0, r) clockwise until x > y.
//
// The decision variable starts at 3-2r. Each step advances x; when the
// variable is non-negative y also steps down.
func CircleOctant(r int, visit PlotFunc) {
	if r < 0 {
		return
	}
	x, y := 0, r
	p := 3 - 2*r
	visit(x, y)
	for x <= y {
		x++
		if p < 0 {
			p += 4*x + 6
		} else {
			y--
			p += 4*(x-y) + 10
		}
		visit(x, y)
	}
}

// Circle plots the outline of the circle of radius r centred at (cx, cy)
// using eight-way symmetry around CircleOctant. Mirrored points that
// coincide are plotted more than once.
func Circle(cx, cy, r int, plot PlotFunc) {
	CircleOctant(r, func(x, y int) {
		plot(cx+x, cy+y)
		plot(cx-x, cy+y)
		plot(cx+x, cy-y)
		plot(cx-x, cy-y)
		plot(cx+y, cy+x)
		plot(cx-y, cy+x)
		plot(cx+y, cy-x)
		plot(cx-y, cy-x)
	})
}

// RowExtents returns the horizontal half-width of a filled disk of radius r,
// indexed by absolute row offset from the centre: ext[dy] is the largest x
// such that (x, dy) lies on the midpoint outline of radius r. Filling
// [-ext[dy], ext[dy]] on rows cy-dy and cy+dy reproduces the disk.
//
// The octant is mirrored across the diagonal into the quadrant, and for each
// row only the widest outline x is kept, so rows the octant touches more than
// once never shrink. A radius of 0 or less yields a single-pixel disk.
func RowExtents(r int) []int {
	if r <= 0 {
		return []int{0}
	}
	ext := make([]int, r+1)
	record := func(x, y int) {
		if y < 0 || y > r {
			return
		}
		if x > ext[y] {
			ext[y] = x
		}
	}
	CircleOctant(r, func(x, y int) {
		record(x, y)
		record(y, x)
	})
	return ext
}

// DiskRowExtent returns the half-width of row dy of a filled disk of radius
// r: the largest x with x² + dy² <= r² + r, or -1 when |dy| > r. It stays
// within two pixels of RowExtents and costs the same for every radius, so
// it serves brushes too large to tabulate.
func DiskRowExtent(r, dy int) int {
	dy = abs(dy)
	if r < 0 || dy > r {
		return -1
	}
	if int64(r) >= 1<<31 {
		fr, fd := float64(r), float64(dy)
		return int(math.Sqrt((fr-fd)*(fr+fd) + fr))
	}
	return int(isqrt(uint64(r-dy)*uint64(r+dy) + uint64(r)))
}

// isqrt returns floor(sqrt(n)) for n < 1<<63.
func isqrt(n uint64) uint64 {
	x := uint64(math.Sqrt(float64(n)))
	for x*x > n {
		x--
	}
	for (x+1)*(x+1) <= n {
		x++
	}
	return x
}
