package main

import (
	"fmt"
	"os"

	"github.com/polyfrost/polyui/cmd/polyflex/commands"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	args := os.Args[2:]

	var err error
	switch cmd {
	case "solve":
		err = commands.Solve(args)
	case "render":
		err = commands.Render(args)
	case "init":
		err = commands.Init(args)
	case "version", "-v", "--version":
		fmt.Printf("polyflex version %s\n", version)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n\n", cmd)
		printUsage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`polyflex - PolyUI flex layout CLI

Usage: polyflex <command> [options]

Commands:
  solve     Solve a layout file and print the geometry of every box
  render    Solve a layout file and draw the boxes to a PNG
  init      Write a default polyui.toml and a sample layout.toml
  version   Print version information
  help      Show this help message

Examples:
  polyflex solve layout.toml                  Solve at the default 800px viewport
  polyflex solve -width 500 layout.toml       Solve below the md breakpoint
  polyflex solve -json layout.toml            Print the frame as JSON
  polyflex render -o out.png layout.toml      Rasterize the solved boxes

Configuration:
  Gaps, wrapping, scale, font and breakpoints are read from the nearest
  polyui.toml above the layout file. Run 'polyflex init' to create one.`)
}
