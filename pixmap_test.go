package paint

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

// painted returns the pixels of img that differ from bg.
func painted(img image.Image, bg Color) map[Point]bool {
	set := make(map[Point]bool)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if FromColor(img.At(x, y)) != bg {
				set[Pt(x, y)] = true
			}
		}
	}
	return set
}

func pointsOf(pts ...Point) map[Point]bool {
	set := make(map[Point]bool, len(pts))
	for _, p := range pts {
		set[p] = true
	}
	return set
}

func sameSet(a, b map[Point]bool) bool {
	if len(a) != len(b) {
		return false
	}
	for p := range a {
		if !b[p] {
			return false
		}
	}
	return true
}

func TestNewPixmap(t *testing.T) {
	pm := NewPixmap(7, 3)
	if pm.Width() != 7 || pm.Height() != 3 {
		t.Errorf("size = %dx%d, want 7x3", pm.Width(), pm.Height())
	}
	if len(pm.Data()) != 7*3*4 {
		t.Errorf("len(Data()) = %d, want %d", len(pm.Data()), 7*3*4)
	}
	if got := pm.GetPixel(2, 2); got != Transparent {
		t.Errorf("new pixel = %v, want transparent", got)
	}

	neg := NewPixmap(-4, 5)
	if neg.Width() != 0 || len(neg.Data()) != 0 {
		t.Errorf("NewPixmap(-4, 5) = %dx%d with %d bytes", neg.Width(), neg.Height(), len(neg.Data()))
	}
}

func TestSetPixel(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.SetPixel(5, 5, Orange)

	i := (5*10 + 5) * 4
	data := pm.Data()
	if data[i+0] != 255 || data[i+1] != 200 || data[i+2] != 0 || data[i+3] != 255 {
		t.Errorf("raw data = (%d, %d, %d, %d), want (255, 200, 0, 255)",
			data[i+0], data[i+1], data[i+2], data[i+3])
	}
	if got := pm.GetPixel(5, 5); got != Orange {
		t.Errorf("GetPixel = %v, want %v", got, Orange)
	}
}

// TestSetPixel_OutOfBounds verifies out-of-bounds coordinates are silently ignored.
func TestSetPixel_OutOfBounds(t *testing.T) {
	pm := NewPixmap(10, 10)
	pm.Clear(Black)

	original := make([]uint8, len(pm.Data()))
	copy(original, pm.Data())

	oob := []struct{ x, y int }{
		{-1, 5}, {10, 5}, {5, -1}, {5, 10},
		{-100, -100}, {100, 100},
	}
	for _, c := range oob {
		pm.SetPixel(c.x, c.y, Red)
		if got := pm.GetPixel(c.x, c.y); got != Transparent {
			t.Errorf("GetPixel(%d, %d) = %v, want transparent", c.x, c.y, got)
		}
	}

	for i, v := range pm.Data() {
		if v != original[i] {
			t.Fatalf("out-of-bounds write modified data at index %d: got %d, want %d", i, v, original[i])
		}
	}
}

func TestFillSpan(t *testing.T) {
	tests := []struct {
		name   string
		x0, x1 int
		y      int
		want   map[Point]bool
	}{
		{name: "inside", x0: 2, x1: 4, y: 1, want: pointsOf(Pt(2, 1), Pt(3, 1), Pt(4, 1))},
		{name: "reversed", x0: 4, x1: 2, y: 1, want: pointsOf(Pt(2, 1), Pt(3, 1), Pt(4, 1))},
		{name: "clipped left", x0: -5, x1: 1, y: 0, want: pointsOf(Pt(0, 0), Pt(1, 0))},
		{name: "clipped right", x0: 4, x1: 50, y: 2, want: pointsOf(Pt(4, 2), Pt(5, 2))},
		{name: "row above", x0: 0, x1: 5, y: -1, want: pointsOf()},
		{name: "row below", x0: 0, x1: 5, y: 3, want: pointsOf()},
		{name: "entirely left", x0: -9, x1: -2, y: 1, want: pointsOf()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pm := NewPixmap(6, 3)
			pm.FillSpan(tt.x0, tt.x1, tt.y, Red)
			if got := painted(pm, Transparent); !sameSet(got, tt.want) {
				t.Errorf("FillSpan(%d, %d, %d) painted %v, want %v", tt.x0, tt.x1, tt.y, got, tt.want)
			}
		})
	}
}

func TestFillRect(t *testing.T) {
	pm := NewPixmap(4, 4)
	pm.FillRect(image.Rect(-1, 2, 2, 9), Blue)
	want := pointsOf(Pt(0, 2), Pt(1, 2), Pt(0, 3), Pt(1, 3))
	if got := painted(pm, Transparent); !sameSet(got, want) {
		t.Errorf("FillRect painted %v, want %v", got, want)
	}
}

func TestPixmapIsDrawImage(t *testing.T) {
	pm := NewPixmap(3, 3)
	pm.Set(1, 1, color.RGBA{G: 255, A: 255})
	if got := pm.GetPixel(1, 1); got != Green {
		t.Errorf("Set then GetPixel = %v, want %v", got, Green)
	}
	if pm.Bounds() != image.Rect(0, 0, 3, 3) {
		t.Errorf("Bounds() = %v", pm.Bounds())
	}
	if pm.ColorModel() != color.NRGBAModel {
		t.Error("ColorModel() is not NRGBA")
	}
	if FromColor(pm.At(1, 1)) != Green {
		t.Errorf("At(1,1) = %v", pm.At(1, 1))
	}
}

func TestCopyFrom(t *testing.T) {
	src := NewPixmap(4, 4)
	src.SetPixel(3, 3, Pink)
	dst := NewPixmap(4, 4)
	dst.Clear(White)
	dst.CopyFrom(src)
	if got := dst.GetPixel(3, 3); got != Pink {
		t.Errorf("copied pixel = %v, want %v", got, Pink)
	}
	if got := dst.GetPixel(0, 0); got != Transparent {
		t.Errorf("untouched pixel = %v, want transparent", got)
	}
}

func TestSavePNG(t *testing.T) {
	pm := NewPixmap(5, 4)
	pm.Clear(White)
	pm.SetPixel(2, 1, Red)

	path := filepath.Join(t.TempDir(), "out.png")
	if err := pm.SavePNG(path); err != nil {
		t.Fatalf("SavePNG: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds() != pm.Bounds() {
		t.Errorf("decoded bounds %v, want %v", img.Bounds(), pm.Bounds())
	}
	if got := FromColor(img.At(2, 1)); got != Red {
		t.Errorf("decoded pixel = %v, want %v", got, Red)
	}
}

func TestSavePNGBadPath(t *testing.T) {
	pm := NewPixmap(1, 1)
	if err := pm.SavePNG(filepath.Join(t.TempDir(), "missing", "out.png")); err == nil {
		t.Error("SavePNG into a missing directory succeeded")
	}
}
