package paint

import "golang.org/x/image/draw"

// CanvasOption configures a Canvas during creation.
//
// Example:
//
//	// Stock 1100x611 canvas drawing into its own pixmap
//	c := paint.NewCanvas()
//
//	// Loaded configuration, blitting into a caller-owned image
//	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
//	c := paint.NewCanvas(paint.WithConfig(cfg), paint.WithTarget(img))
type CanvasOption func(*canvasOptions)

// canvasOptions holds optional configuration for Canvas creation.
type canvasOptions struct {
	config Config
	target draw.Image
}

// defaultOptions returns the default canvas options.
func defaultOptions() canvasOptions {
	return canvasOptions{
		config: DefaultConfig(),
		target: nil, // Will be created from the config size if nil
	}
}

// WithConfig replaces the whole configuration. It is not validated here;
// call Config.Validate first when the values come from outside.
func WithConfig(cfg Config) CanvasOption {
	return func(o *canvasOptions) {
		o.config = cfg
	}
}

// WithSize overrides only the canvas dimensions.
func WithSize(width, height int) CanvasOption {
	return func(o *canvasOptions) {
		o.config.Width = width
		o.config.Height = height
	}
}

// WithTarget sets the visible surface that every repaint is copied to.
// The off-screen buffer is always a Pixmap of the configured size; the
// target may be any draw.Image, typically the one a window shows.
//
// Example:
//
//	frame := image.NewRGBA(image.Rect(0, 0, 1100, 611))
//	c := paint.NewCanvas(paint.WithTarget(frame))
func WithTarget(dst draw.Image) CanvasOption {
	return func(o *canvasOptions) {
		o.target = dst
	}
}
