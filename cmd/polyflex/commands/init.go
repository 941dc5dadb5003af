package commands

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/polyfrost/polyui"
)

// LayoutFile is the sample layout written by init.
const LayoutFile = "layout.toml"

// Init implements the 'polyflex init' command
func Init(args []string) error {
	fs := flag.NewFlagSet("init", flag.ExitOnError)
	dir := fs.String("dir", ".", "Directory to initialize")
	force := fs.Bool("force", false, "Overwrite existing files")
	fs.Parse(args)

	configPath := filepath.Join(*dir, ConfigFile)
	layoutPath := filepath.Join(*dir, LayoutFile)

	for _, path := range []string{configPath, layoutPath} {
		if _, err := os.Stat(path); err == nil && !*force {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(*dir, 0755); err != nil {
		return fmt.Errorf("failed to create %s: %w", *dir, err)
	}

	if err := polyui.SaveConfig(configPath, polyui.DefaultConfig()); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", configPath)

	if err := SaveDocument(layoutPath, sampleDocument()); err != nil {
		return err
	}
	fmt.Printf("  ✓ Created %s\n", layoutPath)

	fmt.Println("")
	fmt.Println("Next steps:")
	fmt.Printf("  polyflex solve %s\n", layoutPath)
	fmt.Printf("  polyflex render -o layout.png %s\n", layoutPath)

	return nil
}

// sampleDocument is a toolbar over a responsive two-pane body.
func sampleDocument() Document {
	return Document{
		Container: polyui.Column("w-[640px] gap-2 items-stretch"),
		Items: []polyui.Widget{
			polyui.Row("gap-2 items-center justify-between",
				polyui.Text("PolyUI", ""),
				polyui.Row("gap-1",
					polyui.Box("w-16 h-6"),
					polyui.Box("w-16 h-6"),
				),
			),
			polyui.Row("flex-col md:flex-row gap-2",
				polyui.Box("w-40 h-32"),
				polyui.Box("grow h-32"),
			),
		},
	}
}
