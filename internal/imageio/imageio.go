// Package imageio loads the raster images placed on a canvas as image
// stamps.
//
// PNG, JPEG, GIF, BMP, TIFF and WebP are recognised by content, not by file
// extension. Decoding happens before a stamp gesture starts: when it fails
// the caller drops the gesture and the canvas never sees it.
package imageio

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	// Registered with image.Decode.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the data is not in a known
	// image format.
	ErrUnsupportedFormat = errors.New("imageio: unsupported format")

	// ErrEmptyData is returned when there is no image data at all.
	ErrEmptyData = errors.New("imageio: empty data")

	// ErrEmptyImage is returned for images with zero width or height.
	ErrEmptyImage = errors.New("imageio: empty image")
)

// Decode decodes an image from r, detecting the format from its content.
// It returns the image and the registered format name ("png", "webp", ...).
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	switch {
	case errors.Is(err, image.ErrFormat):
		return nil, "", ErrUnsupportedFormat
	case errors.Is(err, io.EOF):
		return nil, "", ErrEmptyData
	case err != nil:
		return nil, "", fmt.Errorf("imageio: decode: %w", err)
	}
	if img.Bounds().Empty() {
		return nil, format, ErrEmptyImage
	}
	return img, format, nil
}

// DecodeBytes decodes an image held in memory.
func DecodeBytes(data []byte) (image.Image, string, error) {
	if len(data) == 0 {
		return nil, "", ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Load reads and decodes the image file at path.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("imageio: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("imageio: %s: %w", path, err)
	}
	return img, nil
}
