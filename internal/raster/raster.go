// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package raster implements the integer scan-conversion loops used by the
// paint shapes: midpoint lines, midpoint circles and two-region midpoint
// ellipses.
//
// The functions here only walk coordinates. They know nothing about colours,
// pixmaps or brush footprints; every visited point is handed to a PlotFunc,
// which decides what a point means (a single pixel, a stamped footprint, a
// recorded extent). No function in this package clips: callers pass any
// integer coordinates and the pixel sink discards what falls outside.
package raster

// PlotFunc receives one rasterized point.
type PlotFunc func(x, y int)

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
