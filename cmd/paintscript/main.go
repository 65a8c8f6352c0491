// Command paintscript replays a recorded drawing session and writes the
// resulting canvas to a PNG file.
//
// Usage:
//
//	paintscript -script session.toml -output canvas.png [-config paint.toml] [-statusbar] [-v]
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/internal/imageio"
	"github.com/gogpu/paint/internal/script"
	"github.com/gogpu/paint/internal/statusbar"
)

func main() {
	var (
		scriptPath = flag.String("script", "", "session script (TOML)")
		configPath = flag.String("config", "", "canvas configuration (TOML); defaults when empty")
		output     = flag.String("output", "canvas.png", "output file")
		withStatus = flag.Bool("statusbar", false, "append the status bar under the canvas")
		verbose    = flag.Bool("v", false, "log every command and repaint")
	)
	flag.Parse()

	if *scriptPath == "" {
		flag.Usage()
		os.Exit(2)
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	paint.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(*scriptPath, *configPath, *output, *withStatus); err != nil {
		log.Fatalf("paintscript: %v", err)
	}
}

func run(scriptPath, configPath, output string, withStatus bool) error {
	cfg := paint.DefaultConfig()
	if configPath != "" {
		var err error
		if cfg, err = paint.LoadConfig(configPath); err != nil {
			return err
		}
	}

	s, err := script.Load(scriptPath)
	if err != nil {
		return err
	}

	c := paint.NewCanvas(paint.WithConfig(cfg))
	res := s.Run(c, imageio.Load)
	paint.Logger().Info("session replayed",
		"shapes", c.ShapeCount(),
		"gestures", res.Shapes,
		"skipped", res.Skipped,
		"commands", res.Commands)

	var img image.Image = c.Surface()
	if withStatus {
		if img, err = statusbar.Compose(img, c.Status(), pointerText(c)); err != nil {
			return err
		}
	}
	return writePNG(output, img)
}

// pointerText formats the last drag position for the status bar, or
// returns "" when nothing was dragged.
func pointerText(c *paint.Canvas) string {
	p, ok := c.Pointer()
	if !ok {
		return ""
	}
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path) //nolint:gosec // output path comes from the command line
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	log.Printf("Canvas saved to %s (%dx%d)\n", path, img.Bounds().Dx(), img.Bounds().Dy())
	return f.Close()
}
