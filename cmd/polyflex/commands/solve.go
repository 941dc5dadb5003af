package commands

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/polyfrost/polyui"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	pathStyle  = lipgloss.NewStyle().Width(32)
	kindStyle  = lipgloss.NewStyle().Width(8).Foreground(lipgloss.Color("8"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	textStyle  = lipgloss.NewStyle().Italic(true).Foreground(lipgloss.Color("10"))
)

// Solve implements the 'polyflex solve' command
func Solve(args []string) error {
	return runSolve(args, os.Stdout)
}

func runSolve(args []string, out io.Writer) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to polyui.toml (default: nearest to the layout)")
	width := fs.Float64("width", 800, "Viewport width in pixels")
	height := fs.Float64("height", 0, "Viewport height in pixels (0 = grow to fit)")
	asJSON := fs.Bool("json", false, "Print the frame as JSON")
	fs.Parse(args)

	if fs.NArg() != 1 {
		return fmt.Errorf("usage: polyflex solve [options] <layout.toml>")
	}

	frame, err := solveDocument(fs.Arg(0), *configPath, float32(*width), float32(*height))
	if err != nil {
		return err
	}

	if *asJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(frame)
	}
	_, err = io.WriteString(out, Report(frame))
	return err
}

// Report renders a frame as an indented geometry table.
func Report(frame *polyui.Frame) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("frame %d: %.1f x %.1f (%s)",
		frame.Number, frame.Width, frame.Height, frame.Breakpoint)))
	b.WriteString("\n")

	for _, box := range frame.Boxes {
		indent := strings.Repeat("  ", box.Depth)
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			pathStyle.Render(indent+box.Path),
			kindStyle.Render(string(box.Kind)),
			fmt.Sprintf("x=%-8.1f y=%-8.1f w=%-8.1f h=%-8.1f", box.X, box.Y, box.Width, box.Height),
		)
		b.WriteString(line)
		if box.Text != "" {
			b.WriteString(" " + textStyle.Render(fmt.Sprintf("%q", box.Text)))
		}
		b.WriteString("\n")
	}

	for _, w := range frame.Warnings {
		b.WriteString(warnStyle.Render("! " + w.String()))
		b.WriteString("\n")
	}
	return b.String()
}
