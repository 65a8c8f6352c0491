package main

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/paint"
	"github.com/gogpu/paint/internal/statusbar"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "paint.toml")
	scriptPath := filepath.Join(dir, "session.toml")
	out := filepath.Join(dir, "canvas.png")

	if err := os.WriteFile(cfgPath, []byte("width = 50\nheight = 40\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	session := `
[[step]]
op = "draw"
shape = "triangle"
points = [[5, 5], [30, 30]]
index = 1
`
	if err := os.WriteFile(scriptPath, []byte(session), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, withStatus := range []bool{false, true} {
		if err := run(scriptPath, cfgPath, out, withStatus); err != nil {
			t.Fatalf("run(statusbar=%v): %v", withStatus, err)
		}
		f, err := os.Open(out)
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("decode output: %v", err)
		}
		wantH := 40
		if withStatus {
			wantH += statusbar.Height
		}
		if b := img.Bounds(); b.Dx() != 50 || b.Dy() != wantH {
			t.Errorf("statusbar=%v: output is %v, want 50x%d", withStatus, b, wantH)
		}
	}
}

func TestRunErrors(t *testing.T) {
	dir := t.TempDir()
	if err := run(filepath.Join(dir, "missing.toml"), "", filepath.Join(dir, "out.png"), false); err == nil {
		t.Error("run with a missing script succeeded")
	}

	scriptPath := filepath.Join(dir, "session.toml")
	if err := os.WriteFile(scriptPath, []byte("[[step]]\nop = \"undo\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := run(scriptPath, filepath.Join(dir, "missing.toml"), filepath.Join(dir, "out.png"), false); err == nil {
		t.Error("run with a missing config succeeded")
	}
}

func TestPointerText(t *testing.T) {
	c := paint.NewCanvas(paint.WithSize(10, 10))
	if got := pointerText(c); got != "" {
		t.Errorf("pointerText before any drag = %q, want empty", got)
	}
	h := c.BeginShape(paint.KindLine, paint.Pt(5, 5), c.DefaultStyle())
	c.UpdateShape(h, paint.Pt(0, 0))
	if got := pointerText(c); got != "0,0" {
		t.Errorf("pointerText after a drag to the origin = %q, want %q", got, "0,0")
	}
}
