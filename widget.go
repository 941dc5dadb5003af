package polyui

import (
	"encoding/json"

	"github.com/polyfrost/polyui/tw"
)

// WidgetKind represents the type of widget
type WidgetKind string

const (
	// Container widgets
	WidgetRow    WidgetKind = "Row"
	WidgetColumn WidgetKind = "Column"

	// Box is a container when it has children and a sized leaf otherwise
	WidgetBox WidgetKind = "Box"

	// Text is a leaf measured with the tree's text measurer
	WidgetText WidgetKind = "Text"
)

// Widget is a declarative description of one node of the layout tree.
type Widget struct {
	Kind     WidgetKind `json:"kind" toml:"kind"`
	ID       string     `json:"id,omitempty" toml:"id,omitempty"`
	Classes  string     `json:"classes,omitempty" toml:"classes,omitempty"`
	Text     string     `json:"text,omitempty" toml:"text,omitempty"`
	Children []Widget   `json:"children,omitempty" toml:"children,omitempty"`

	// Cached computed styles (not serialized)
	computedStyles *tw.ComputedStyles
}

// NewWidget creates a new widget of the given kind
func NewWidget(kind WidgetKind) *Widget {
	return &Widget{
		Kind:     kind,
		Children: make([]Widget, 0),
	}
}

// WithID sets a stable identifier used to track the widget across frames
func (w *Widget) WithID(id string) *Widget {
	w.ID = id
	return w
}

// WithClasses sets the Tailwind classes for layout
func (w *Widget) WithClasses(classes string) *Widget {
	w.Classes = classes
	w.computedStyles = resolveStyles(classes)
	return w
}

// WithText sets the text content (for text widgets)
func (w *Widget) WithText(text string) *Widget {
	w.Text = text
	return w
}

// WithChildren sets the children of this widget
func (w *Widget) WithChildren(children ...Widget) *Widget {
	w.Children = children
	return w
}

// AddChild adds a single child widget
func (w *Widget) AddChild(child Widget) *Widget {
	w.Children = append(w.Children, child)
	return w
}

// GetComputedStyles returns the cached computed styles
func (w *Widget) GetComputedStyles() *tw.ComputedStyles {
	if w.computedStyles == nil && w.Classes != "" {
		w.computedStyles = resolveStyles(w.Classes)
	}
	return w.computedStyles
}

// IsContainer reports whether the widget lays out children.
func (w *Widget) IsContainer() bool {
	switch w.Kind {
	case WidgetRow, WidgetColumn:
		return true
	case WidgetBox:
		return len(w.Children) > 0
	}
	return false
}

// ToJSON serializes the widget tree to JSON
func (w *Widget) ToJSON() (string, error) {
	data, err := json.Marshal(w)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Convenience constructors

// Row creates a horizontal flex container
func Row(classes string, children ...Widget) Widget {
	return Widget{
		Kind:     WidgetRow,
		Classes:  classes,
		Children: children,
	}
}

// Column creates a vertical flex container
func Column(classes string, children ...Widget) Widget {
	return Widget{
		Kind:     WidgetColumn,
		Classes:  classes,
		Children: children,
	}
}

// Box creates a generic box. Without children it is a leaf sized by its
// classes (w-*, h-*, grow, basis-*).
func Box(classes string, children ...Widget) Widget {
	return Widget{
		Kind:     WidgetBox,
		Classes:  classes,
		Children: children,
	}
}

// Text creates a text widget
func Text(text, classes string) Widget {
	return Widget{
		Kind:    WidgetText,
		Classes: classes,
		Text:    text,
	}
}
