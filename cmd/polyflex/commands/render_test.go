package commands

import (
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/polyfrost/polyui"
)

func TestRenderPNG(t *testing.T) {
	frame := &polyui.Frame{
		Width:  120.5,
		Height: 40,
		Boxes: []polyui.LayoutBox{
			{Path: "root", Kind: polyui.WidgetRow, Width: 120.5, Height: 40},
			{Path: "root/0", Kind: polyui.WidgetText, Text: "hi", Depth: 1, X: 4, Y: 4, Width: 50, Height: 20},
		},
	}
	path := filepath.Join(t.TempDir(), "out.png")
	if err := RenderPNG(frame, path); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if cfg.Width != 121 || cfg.Height != 40 {
		t.Errorf("image size = %dx%d, want 121x40", cfg.Width, cfg.Height)
	}
}

func TestRenderPNGEmptyFrame(t *testing.T) {
	if err := RenderPNG(&polyui.Frame{}, filepath.Join(t.TempDir(), "out.png")); err == nil {
		t.Error("RenderPNG of an empty frame succeeded")
	}
}
