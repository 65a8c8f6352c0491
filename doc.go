// Package paint is the drawing engine of a retained-mode 2D paint editor.
//
// # Overview
//
// A Canvas keeps every shape the user has drawn in a Document and repaints
// the whole list onto an off-screen Pixmap after each change. Shapes are
// rasterized on the integer pixel grid with midpoint line, circle and
// ellipse loops; a stroke is thick because a brush footprint (a filled
// square or disk) is stamped at every visited pixel.
//
// # Quick Start
//
//	c := paint.NewCanvas(paint.WithSize(640, 480))
//
//	style := paint.Style{
//		Width:     c.StrokeWidthForIndex(2),
//		Color:     paint.Blue,
//		Footprint: paint.FootprintRound,
//	}
//	h := c.BeginShape(paint.KindEllipse, paint.Pt(100, 100), style)
//	c.UpdateShape(h, paint.Pt(300, 200))
//	c.FinalizeShape(h)
//
//	c.Undo()
//	c.Redo()
//
//	c.Surface().(*paint.Pixmap).SavePNG("canvas.png")
//
// # Shapes
//
// Every shape is described by two points: where the pointer went down and
// where it currently is. Line, Square, Triangle, Circle, Ellipse, Arc and
// ImageStamp each derive their geometry from that pair.
//
// # History
//
// Document changes are Commands applied with Document.Apply: Append,
// UpdateFar, Undo, Redo, Clear and Reset. Undo moves the most recent shape
// to a removed stack; Redo moves it back. Clear moves every shape there, so
// as many Redo calls bring the drawing back in its original order. Reset
// empties both stacks.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - All coordinates are integers; pixels outside the surface are dropped
package paint
