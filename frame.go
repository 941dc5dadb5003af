package polyui

import (
	"github.com/polyfrost/polyui/retained"
	"github.com/polyfrost/polyui/tw"
)

// LayoutBox is the solved geometry of one widget in viewport coordinates.
type LayoutBox struct {
	ID    NodeID     `json:"id"`
	Path  string     `json:"path"`
	Kind  WidgetKind `json:"kind"`
	Text  string     `json:"text,omitempty"`
	Depth int        `json:"depth"`

	X      float32 `json:"x"`
	Y      float32 `json:"y"`
	Width  float32 `json:"width"`
	Height float32 `json:"height"`
}

// Contains reports whether the point (x, y) lies inside b.
func (b LayoutBox) Contains(x, y float32) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Frame is the result of one Tree.Solve.
type Frame struct {
	Number     uint64        `json:"number"`
	Width      float32       `json:"width"`
	Height     float32       `json:"height"`
	Breakpoint tw.Breakpoint `json:"breakpoint"`

	// Boxes in depth-first order, parents before children
	Boxes []LayoutBox `json:"boxes"`

	// Warnings raised by the solver, e.g. items dropped for overflow
	Warnings []retained.Diagnostic `json:"warnings,omitempty"`

	// Updates relative to the previous frame
	Updates []Update `json:"updates,omitempty"`
}

// Find returns the box with the given path.
func (f *Frame) Find(path string) (LayoutBox, bool) {
	for _, b := range f.Boxes {
		if b.Path == path {
			return b, true
		}
	}
	return LayoutBox{}, false
}

// HitTest returns the deepest box containing (x, y).
func (f *Frame) HitTest(x, y float32) (LayoutBox, bool) {
	var (
		hit   LayoutBox
		found bool
	)
	for _, b := range f.Boxes {
		if b.Contains(x, y) && (!found || b.Depth >= hit.Depth) {
			hit, found = b, true
		}
	}
	return hit, found
}

// snapshot walks the solved tree and converts item geometry, which is
// relative to each parent container, into viewport coordinates.
func (t *Tree) snapshot() *Frame {
	rootLayout := t.root.container.Layout()
	frame := &Frame{
		Number:     t.frameNumber,
		Width:      rootLayout.Width,
		Height:     rootLayout.Height,
		Breakpoint: tw.GetBreakpoints().ActiveBreakpoint(t.viewportW),
		Warnings:   t.warnings,
	}

	var visit func(n *node, originX, originY float32)
	visit = func(n *node, originX, originY float32) {
		b := LayoutBox{
			ID:    n.id,
			Path:  n.path,
			Kind:  n.widget.Kind,
			Text:  n.widget.Text,
			Depth: n.depth,
		}
		if n.item == nil {
			b.Width, b.Height = rootLayout.Width, rootLayout.Height
		} else {
			l := n.item.Layout()
			b.X, b.Y = originX+l.X, originY+l.Y
			b.Width, b.Height = l.Width, l.Height
		}
		frame.Boxes = append(frame.Boxes, b)
		for _, child := range n.children {
			visit(child, b.X, b.Y)
		}
	}
	visit(t.root, 0, 0)
	return frame
}

// UpdateType classifies one change between two frames.
type UpdateType uint8

const (
	UpdateAdd UpdateType = iota
	UpdateRemove
	UpdateGeometry
)

func (u UpdateType) String() string {
	switch u {
	case UpdateAdd:
		return "add"
	case UpdateRemove:
		return "remove"
	case UpdateGeometry:
		return "geometry"
	}
	return "unknown"
}

// DirtyMask says which parts of a box's geometry changed.
type DirtyMask uint8

const (
	DirtyPosition DirtyMask = 1 << iota
	DirtySize

	DirtyNone DirtyMask = 0
)

// Update describes how one box changed between frames.
type Update struct {
	Type UpdateType `json:"type"`
	ID   NodeID     `json:"id"`
	Path string     `json:"path"`
	Mask DirtyMask  `json:"mask,omitempty"`
	Old  LayoutBox  `json:"old"`
	New  LayoutBox  `json:"new"`
}

const geometryEpsilon = 1e-3

// DiffFrames returns the updates that turn prev into next: removals in prev
// order, then additions and geometry changes in next order. A nil prev
// reports every box of next as added.
func DiffFrames(prev, next *Frame) []Update {
	var updates []Update
	before := make(map[NodeID]LayoutBox)
	if prev != nil {
		for _, b := range prev.Boxes {
			before[b.ID] = b
		}
	}
	after := make(map[NodeID]struct{}, len(next.Boxes))
	for _, b := range next.Boxes {
		after[b.ID] = struct{}{}
	}

	if prev != nil {
		for _, b := range prev.Boxes {
			if _, ok := after[b.ID]; !ok {
				updates = append(updates, Update{Type: UpdateRemove, ID: b.ID, Path: b.Path, Old: b})
			}
		}
	}
	for _, b := range next.Boxes {
		old, ok := before[b.ID]
		if !ok {
			updates = append(updates, Update{Type: UpdateAdd, ID: b.ID, Path: b.Path, New: b})
			continue
		}
		if mask := geometryDiff(old, b); mask != DirtyNone {
			updates = append(updates, Update{Type: UpdateGeometry, ID: b.ID, Path: b.Path, Mask: mask, Old: old, New: b})
		}
	}
	return updates
}

func geometryDiff(a, b LayoutBox) DirtyMask {
	mask := DirtyNone
	if !near(a.X, b.X) || !near(a.Y, b.Y) {
		mask |= DirtyPosition
	}
	if !near(a.Width, b.Width) || !near(a.Height, b.Height) {
		mask |= DirtySize
	}
	return mask
}

func near(a, b float32) bool {
	d := a - b
	return d < geometryEpsilon && d > -geometryEpsilon
}
