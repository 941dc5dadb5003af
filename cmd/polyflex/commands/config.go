package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/polyfrost/polyui"
)

// ConfigFile is the name of the layout configuration file.
const ConfigFile = "polyui.toml"

// Document is a layout file: one root container and its items.
//
//	[container]
//	kind = "Row"
//	classes = "w-[400px] gap-2"
//
//	[[item]]
//	kind = "Text"
//	text = "hello"
//
//	[[item]]
//	kind = "Column"
//	[[item.children]]
//	kind = "Box"
//	classes = "w-8 h-8"
type Document struct {
	Container polyui.Widget   `toml:"container"`
	Items     []polyui.Widget `toml:"item"`
}

// Root returns the widget tree described by the document.
func (d Document) Root() polyui.Widget {
	root := d.Container
	if root.Kind == "" {
		root.Kind = polyui.WidgetRow
	}
	root.Children = append(root.Children, d.Items...)
	return root
}

// ParseDocument parses a TOML layout document.
func ParseDocument(data []byte) (Document, error) {
	var doc Document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return doc, fmt.Errorf("failed to parse layout: %w", err)
	}
	if err := validateKinds(doc.Items, "item"); err != nil {
		return doc, err
	}
	return doc, nil
}

func validateKinds(widgets []polyui.Widget, where string) error {
	for i, w := range widgets {
		switch w.Kind {
		case polyui.WidgetRow, polyui.WidgetColumn, polyui.WidgetBox, polyui.WidgetText:
		default:
			return fmt.Errorf("%s[%d]: unknown kind %q", where, i, w.Kind)
		}
		if err := validateKinds(w.Children, fmt.Sprintf("%s[%d].children", where, i)); err != nil {
			return err
		}
	}
	return nil
}

// LoadDocument reads a layout document from path.
func LoadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", path, err)
	}
	doc, err := ParseDocument(data)
	if err != nil {
		return doc, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// SaveDocument writes doc to path.
func SaveDocument(path string, doc Document) error {
	data, err := toml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal layout: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}

// FindConfig looks for polyui.toml in dir and its parents. It returns ""
// when there is none.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for {
		path := filepath.Join(dir, ConfigFile)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// loadConfig loads the explicit config path, or the nearest polyui.toml
// above the layout file, or the defaults.
func loadConfig(explicit, layoutPath string) (polyui.Config, error) {
	path := explicit
	if path == "" {
		found, err := FindConfig(filepath.Dir(layoutPath))
		if err != nil {
			return polyui.DefaultConfig(), err
		}
		if found == "" {
			return polyui.DefaultConfig(), nil
		}
		path = found
	}
	return polyui.LoadConfig(path)
}

// solveDocument loads a layout and its config and solves one frame.
func solveDocument(layoutPath, configPath string, width, height float32) (*polyui.Frame, error) {
	doc, err := LoadDocument(layoutPath)
	if err != nil {
		return nil, err
	}
	config, err := loadConfig(configPath, layoutPath)
	if err != nil {
		return nil, err
	}

	tree, err := polyui.NewTree(doc.Root(), config)
	if err != nil {
		return nil, err
	}
	return tree.Solve(width, height)
}
