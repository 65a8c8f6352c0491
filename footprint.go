package paint

import (
	"fmt"
	"image"
	"strings"

	"github.com/gogpu/paint/internal/cache"
	"github.com/gogpu/paint/internal/raster"
)

// FootprintKind selects the brush stamped at every step of a thick stroke.
type FootprintKind uint8

const (
	// FootprintSquare stamps a diameter x diameter block.
	FootprintSquare FootprintKind = iota
	// FootprintRound stamps a filled midpoint disk.
	FootprintRound
)

var footprintNames = [...]string{
	FootprintSquare: "square",
	FootprintRound:  "round",
}

func (k FootprintKind) String() string {
	if int(k) < len(footprintNames) {
		return footprintNames[k]
	}
	return fmt.Sprintf("FootprintKind(%d)", k)
}

// ParseFootprint parses "square" or "round". "circle" is accepted as an
// alias of "round".
func ParseFootprint(s string) (FootprintKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "square":
		return FootprintSquare, nil
	case "round", "circle":
		return FootprintRound, nil
	}
	return 0, fmt.Errorf("paint: unknown footprint %q", s)
}

// MarshalText implements encoding.TextMarshaler.
func (k FootprintKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *FootprintKind) UnmarshalText(text []byte) error {
	parsed, err := ParseFootprint(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// extentCache holds raster.RowExtents results per radius. Brush sizes come
// from a short table, so a small capacity is enough.
var extentCache = cache.New[int, []int](32)

// maxTabulatedRadius bounds the radii kept in extentCache. Larger brushes
// compute each visible row with raster.DiskRowExtent instead.
const maxTabulatedRadius = 256

func roundExtents(r int) []int {
	return extentCache.GetOrCreate(r, func() []int { return raster.RowExtents(r) })
}

// Stamp writes one footprint of the given diameter centred at (cx, cy).
//
// A square footprint covers [cx-d/2, cx-d/2+d) on both axes, so even
// diameters lean toward the top-left. A round footprint fills, on every row
// dy in [-d/2, d/2], the span between the outermost points of the midpoint
// circle of radius d/2. A diameter of 1 or less writes the single centre
// pixel for either kind.
//
// Only rows that cross pm are visited, so the cost is bounded by the
// pixmap size whatever the diameter.
func Stamp(pm *Pixmap, cx, cy, diameter int, kind FootprintKind, c Color) {
	if diameter <= 1 {
		pm.SetPixel(cx, cy, c)
		return
	}
	if kind == FootprintRound {
		stampRound(pm, cx, cy, diameter/2, c)
		return
	}
	x0, y0 := cx-diameter/2, cy-diameter/2
	pm.FillRect(image.Rect(x0, y0, x0+diameter, y0+diameter), c)
}

func stampRound(pm *Pixmap, cx, cy, r int, c Color) {
	y0, y1 := max(cy-r, 0), min(cy+r, pm.Height()-1)
	if y0 > y1 || cx+r < 0 || cx-r >= pm.Width() {
		return
	}
	extent := func(dy int) int { return raster.DiskRowExtent(r, dy) }
	if r <= maxTabulatedRadius {
		ext := roundExtents(r)
		extent = func(dy int) int { return ext[dy] }
	}
	for y := y0; y <= y1; y++ {
		e := extent(abs(y - cy))
		pm.FillSpan(cx-e, cx+e, y, c)
	}
}

// brush is the per-shape plot target: a single pixel for hairline strokes,
// a stamped footprint otherwise. It is the raster.PlotFunc every shape
// passes to the scan-conversion loops.
type brush struct {
	pm    *Pixmap
	style Style
}

func (b brush) plot(x, y int) {
	if b.style.Width <= 1 {
		b.pm.SetPixel(x, y, b.style.Color)
		return
	}
	Stamp(b.pm, x, y, b.style.Width, b.style.Footprint, b.style.Color)
}
