package paint

import (
	"image"

	"golang.org/x/image/draw"
)

// ImageStamp places a decoded raster image on the canvas. While the
// rectangle spanned by Start and Far is empty the image is drawn at its
// natural size with its top-left corner at Start; afterwards it is scaled
// with nearest-neighbour sampling to fill that rectangle, both corners
// inclusive. Transparent source pixels leave the surface untouched.
//
// The image is shared and never modified. The stroke style is kept for
// bookkeeping only.
type ImageStamp struct {
	base
	img image.Image
}

// NewImageStamp creates an image stamp anchored at start.
func NewImageStamp(start Point, img image.Image, style Style) *ImageStamp {
	return &ImageStamp{base: newBase(KindImage, start, style), img: img}
}

// Image returns the stamped image.
func (s *ImageStamp) Image() image.Image { return s.img }

// Rect returns the destination rectangle in canvas coordinates.
func (s *ImageStamp) Rect() image.Rectangle {
	lo, hi := bounds(s.start, s.far)
	if lo.X == hi.X || lo.Y == hi.Y {
		var size image.Point
		if s.img != nil {
			size = s.img.Bounds().Size()
		}
		return image.Rectangle{Min: s.start.Image(), Max: s.start.Image().Add(size)}
	}
	return image.Rect(lo.X, lo.Y, hi.X+1, hi.Y+1)
}

// Rasterize implements Shape.
func (s *ImageStamp) Rasterize(pm *Pixmap) {
	if s.img == nil {
		return
	}
	src := s.img.Bounds()
	if src.Empty() {
		return
	}
	dst := s.Rect()
	if dst.Size() == src.Size() {
		draw.Draw(pm, dst, s.img, src.Min, draw.Over)
		return
	}
	draw.NearestNeighbor.Scale(pm, dst, s.img, src, draw.Over, nil)
}
