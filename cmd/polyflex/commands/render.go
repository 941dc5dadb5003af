package commands

import (
	"flag"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"

	"github.com/polyfrost/polyui"
)

// depthColors fill boxes by nesting depth, cycling when the tree is deeper.
var depthColors = []color.RGBA{
	colornames.Whitesmoke,
	colornames.Lightsteelblue,
	colornames.Lightgreen,
	colornames.Khaki,
	colornames.Lightsalmon,
	colornames.Plum,
}

// Render implements the 'polyflex render' command
func Render(args []string) error {
	fs := flag.NewFlagSet("render", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to polyui.toml (default: nearest to the layout)")
	width := fs.Float64("width", 800, "Viewport width in pixels")
	height := fs.Float64("height", 0, "Viewport height in pixels (0 = grow to fit)")
	output := fs.String("o", "layout.png", "Output PNG path")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: polyflex render [options] <layout.toml>")
	}

	frame, err := solveDocument(fs.Arg(0), *configPath, float32(*width), float32(*height))
	if err != nil {
		return err
	}
	if err := RenderPNG(frame, *output); err != nil {
		return err
	}
	fmt.Printf("✓ Wrote %s (%d boxes)\n", *output, len(frame.Boxes))
	return nil
}

// RenderPNG draws the boxes of frame as outlined rectangles and saves them
// to path.
func RenderPNG(frame *polyui.Frame, path string) error {
	w := int(math.Ceil(float64(frame.Width)))
	h := int(math.Ceil(float64(frame.Height)))
	if w < 1 || h < 1 {
		return fmt.Errorf("frame has no area (%.1f x %.1f)", frame.Width, frame.Height)
	}

	dc := gg.NewContext(w, h)
	dc.SetColor(colornames.White)
	dc.Clear()

	for _, box := range frame.Boxes {
		x, y := float64(box.X), float64(box.Y)
		bw, bh := float64(box.Width), float64(box.Height)

		dc.DrawRectangle(x, y, bw, bh)
		dc.SetColor(depthColors[box.Depth%len(depthColors)])
		dc.Fill()

		dc.DrawRectangle(x+0.5, y+0.5, math.Max(bw-1, 0), math.Max(bh-1, 0))
		dc.SetColor(colornames.Dimgray)
		dc.SetLineWidth(1)
		dc.Stroke()

		if box.Text != "" {
			dc.SetColor(colornames.Black)
			dc.DrawStringAnchored(box.Text, x+2, y+bh/2, 0, 0.5)
		}
	}

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
