package polyui

import (
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/polyfrost/polyui/internal/measure"
	"github.com/polyfrost/polyui/retained"
	"github.com/polyfrost/polyui/tw"
)

var (
	// ErrRootNotContainer is returned by NewTree for a leaf root widget.
	ErrRootNotContainer = errors.New("polyui: root widget must be a container")

	// ErrUnknownWidget is returned when an ID does not name a widget in the tree.
	ErrUnknownWidget = errors.New("polyui: unknown widget id")
)

// NodeID identifies a widget across frames. It is derived from the widget's
// path, so it is stable as long as the widget keeps its ID (or position).
type NodeID uint64

// TextMeasurer measures the contents of Text widgets.
type TextMeasurer interface {
	// MeasureText returns the size of text wrapped at maxWidth (no
	// wrapping when maxWidth <= 0).
	MeasureText(text string, maxWidth float32) (width, height float32)
	// MinWidth returns the narrowest width text can take.
	MinWidth(text string) float32
	LineHeight() float32
}

// node is the retained counterpart of one Widget.
type node struct {
	widget *Widget
	id     NodeID
	path   string
	depth  int
	parent *node

	item      *retained.Item      // nil for the root
	container *retained.Container // nil for leaves
	children  []*node
	nextChild int

	// Size from w-* and h-* at the current breakpoint, 0 when unset
	declW, declH float32

	// Main size the parent settled on when it is below the natural size,
	// 0 otherwise. Measured children wrap at it.
	fit float32
}

// bounds returns the size n is measured at: declared sizes, with the fit
// applied to the parent's main axis when that axis is undeclared.
func (n *node) bounds() (width, height float32) {
	width, height = n.declW, n.declH
	if n.fit <= 0 || n.parent == nil {
		return width, height
	}
	if n.parent.container.Axis() == retained.Horizontal {
		if width == 0 {
			width = n.fit
		}
	} else if height == 0 {
		height = n.fit
	}
	return width, height
}

// measured reports whether n's size comes from a measurer that depends on
// its bounds.
func (n *node) measured() bool {
	return n.container != nil || n.widget.Kind == WidgetText
}

// Tree builds retained containers from a widget description and solves them
// top-down: a parent measures nested containers through SizeFor, then each
// nested container is solved at the size its parent gave it.
type Tree struct {
	config Config
	text   TextMeasurer
	logger *log.Logger

	root *node
	byID map[string]*node

	viewportW, viewportH float32

	frameNumber uint64
	last        *Frame

	// Collected during one Solve
	warnings   []retained.Diagnostic
	measureErr error
}

// NewTree creates a tree for root. Text widgets are measured with Go
// Regular (or config.Text.FontFile) at config.Text.FontSize.
func NewTree(root Widget, config Config) (*Tree, error) {
	if !root.IsContainer() {
		return nil, fmt.Errorf("%w: got %s", ErrRootNotContainer, root.Kind)
	}

	config = config.withDefaults()
	if err := config.validate(); err != nil {
		return nil, err
	}
	tw.SetConfig(config.themeConfig())
	if config.Debug {
		retained.SetDebug(true, nil)
	}

	face, err := loadFace(config.Text, config.Layout.Scale)
	if err != nil {
		return nil, err
	}

	t := &Tree{
		config: config,
		text:   face,
		byID:   make(map[string]*node),
	}
	t.root = t.build(&root, nil, 0)
	return t, nil
}

func loadFace(cfg TextConfig, scale float32) (*measure.Face, error) {
	size := cfg.FontSize * scale
	if cfg.FontFile == "" {
		return measure.New(size)
	}
	data, err := os.ReadFile(cfg.FontFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read font %s: %w", cfg.FontFile, err)
	}
	return measure.NewFromTTF(data, size)
}

// SetTextMeasurer replaces the measurer used for Text widgets.
func (t *Tree) SetTextMeasurer(m TextMeasurer) {
	t.text = m
	t.walk(t.root, func(n *node) bool {
		if n.widget.Kind == WidgetText && n.item != nil {
			t.invalidateUp(n)
		}
		return true
	})
}

// SetLogger forwards solver warnings to l as they are raised.
func (t *Tree) SetLogger(l *log.Logger) {
	t.logger = l
}

// Root returns the root container.
func (t *Tree) Root() *retained.Container {
	return t.root.container
}

// FrameNumber returns the number of frames produced so far.
func (t *Tree) FrameNumber() uint64 {
	return t.frameNumber
}

// LastFrame returns the most recent frame, or nil before the first Solve.
func (t *Tree) LastFrame() *Frame {
	return t.last
}

// build creates the node for w and, recursively, its children.
func (t *Tree) build(w *Widget, parent *node, index int) *node {
	n := &node{widget: w, parent: parent}

	segment := w.ID
	if segment == "" {
		segment = strconv.Itoa(index)
	}
	if parent == nil {
		if w.ID == "" {
			segment = "root"
		}
		n.path = segment
	} else {
		n.path = parent.path + "/" + segment
		n.depth = parent.depth + 1
	}
	n.id = nodeID(n.path)
	if w.ID != "" {
		t.byID[w.ID] = n
	}

	if w.IsContainer() {
		n.container = retained.NewContainer(retained.ContainerConfig{
			Diagnostics: t.collect,
		})
	}
	if parent != nil {
		n.item = retained.NewItem(retained.Auto, retained.Auto)
		n.item.Data = n
		switch {
		case n.container != nil:
			n.item.SetMeasurer(nestedMeasurer{t: t, n: n})
		case w.Kind == WidgetText:
			n.item.SetMeasurer(textMeasurer{t: t, n: n})
		}
	}

	if n.container == nil {
		return n
	}
	for i := range w.Children {
		child := t.build(&w.Children[i], n, i)
		n.children = append(n.children, child)
		n.nextChild++
		// A fresh container is never solving, so Add cannot fail here.
		_ = n.container.Add(child.item)
	}
	return n
}

func nodeID(path string) NodeID {
	h := fnv.New64a()
	h.Write([]byte(path))
	return NodeID(h.Sum64())
}

// collect is the DiagnosticSink of every container in the tree.
func (t *Tree) collect(d retained.Diagnostic) {
	t.warnings = append(t.warnings, d)
	if t.logger != nil {
		retained.LogSink(t.logger)(d)
	}
}

// Solve lays the tree out in a viewport of width x height (0 height means
// unbounded) and returns the resulting frame. Breakpoint variants resolve
// against the viewport width.
func (t *Tree) Solve(width, height float32) (*Frame, error) {
	t.viewportW, t.viewportH = width, height
	t.warnings = nil
	t.measureErr = nil

	breakpoints := tw.GetBreakpoints()
	t.walk(t.root, func(n *node) bool {
		t.applyStyles(n, breakpoints)
		return true
	})

	rw, rh := t.root.declW, t.root.declH
	if rw == 0 {
		rw = width
	}
	if rh == 0 {
		rh = height
	}
	t.root.container.SetSize(rw, rh)

	if err := t.solveNode(t.root); err != nil {
		return nil, err
	}

	t.frameNumber++
	frame := t.snapshot()
	frame.Updates = DiffFrames(t.last, frame)
	t.last = frame
	return frame, nil
}

// applyStyles resolves n's classes at the current viewport width and pushes
// them into its container and item. Parents are visited first, so the
// parent axis is already final when a child item is mapped.
func (t *Tree) applyStyles(n *node, breakpoints tw.BreakpointConfig) {
	var p tw.FlexProperties
	if styles := resolveStyles(n.widget.Classes); styles != nil {
		p = styles.ResolveForWidth(t.viewportW, breakpoints)
	}
	scale := t.config.Layout.Scale

	declW, declH := declaredSize(p, scale)
	if declW != n.declW || declH != n.declH {
		n.declW, n.declH = declW, declH
		if n.item != nil {
			n.item.InvalidateMeasure()
		}
	}
	if n.container != nil {
		applyContainer(n.container, n.widget.Kind, p, t.config)
	}
	if n.item != nil {
		applyItem(n.item, p, n.parent.container.Axis(), scale)
	}
}

// maxFitPasses bounds how often a container is re-solved after children
// were fitted to a smaller main size.
const maxFitPasses = 3

func (t *Tree) solveNode(n *node) error {
	if n.container.State() == retained.StateDirty {
		for _, child := range n.children {
			child.fit = 0
		}
	}

	for pass := 0; pass < maxFitPasses; pass++ {
		if err := n.container.Solve(); err != nil {
			return fmt.Errorf("solve %s: %w", n.path, err)
		}
		if t.measureErr != nil {
			return t.measureErr
		}
		t.pruneDropped(n)
		if pass == maxFitPasses-1 || !t.fitChildren(n) {
			break
		}
	}

	for _, child := range n.children {
		if child.container == nil {
			continue
		}
		l := child.item.Layout()
		child.container.SetSize(l.Width, l.Height)
		if err := t.solveNode(child); err != nil {
			return err
		}
	}
	return nil
}

// fitChildren re-measures children that n gave less main space than they
// asked for, so a nested row wraps (and text breaks) at the width it
// actually got. It reports whether n needs another solve.
func (t *Tree) fitChildren(n *node) bool {
	ax := n.container.Axis()
	again := false
	for _, child := range n.children {
		if !child.measured() {
			continue
		}

		prev := child.fit
		child.fit = 0
		natural, _ := ax.Split(t.measure(child))
		got := ax.MainOf(child.item.Layout())

		var fit float32
		if got < natural-geometryEpsilon {
			fit = got
		}
		if fit == prev {
			child.fit = prev
			continue
		}

		child.fit = prev
		beforeW, beforeH := t.measure(child)
		child.fit = fit
		afterW, afterH := t.measure(child)
		if !near(beforeW, afterW) || !near(beforeH, afterH) {
			child.item.InvalidateMeasure()
			again = true
		}
	}
	return again
}

// measure returns the intrinsic size of a measured child at its bounds.
func (t *Tree) measure(n *node) (float32, float32) {
	if n.container != nil {
		return nestedMeasurer{t: t, n: n}.MeasureIntrinsicSize(n.item)
	}
	return textMeasurer{t: t, n: n}.MeasureIntrinsicSize(n.item)
}

// pruneDropped forgets children whose items the solver removed for
// overflowing their container.
func (t *Tree) pruneDropped(n *node) {
	kept := n.children[:0]
	for _, child := range n.children {
		if child.item.Container() == n.container {
			kept = append(kept, child)
			continue
		}
		t.walk(child, func(d *node) bool {
			if d.widget.ID != "" {
				delete(t.byID, d.widget.ID)
			}
			return true
		})
	}
	for i := len(kept); i < len(n.children); i++ {
		n.children[i] = nil
	}
	n.children = kept
}

// invalidateUp marks n's item for re-measurement along with every ancestor
// item, since a nested content size feeds each level above it.
func (t *Tree) invalidateUp(n *node) {
	for ; n != nil && n.item != nil; n = n.parent {
		n.item.InvalidateMeasure()
	}
}

func (t *Tree) walk(n *node, fn func(n *node) bool) bool {
	if !fn(n) {
		return false
	}
	for _, child := range n.children {
		if !t.walk(child, fn) {
			return false
		}
	}
	return true
}

func (t *Tree) lookup(id string) (*node, error) {
	n, ok := t.byID[id]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownWidget, id)
	}
	return n, nil
}

// SetText replaces the text of the widget with the given ID.
func (t *Tree) SetText(id, text string) error {
	n, err := t.lookup(id)
	if err != nil {
		return err
	}
	if n.widget.Text == text {
		return nil
	}
	n.widget.Text = text
	t.invalidateUp(n)
	return nil
}

// SetClasses replaces the classes of the widget with the given ID. They take
// effect on the next Solve.
func (t *Tree) SetClasses(id, classes string) error {
	n, err := t.lookup(id)
	if err != nil {
		return err
	}
	n.widget.Classes = classes
	t.invalidateUp(n)
	if n.container != nil {
		n.container.Invalidate()
	}
	return nil
}

// Append adds w as the last child of the container with the given ID.
func (t *Tree) Append(parentID string, w Widget) error {
	parent, err := t.lookup(parentID)
	if err != nil {
		return err
	}
	if parent.container == nil {
		return fmt.Errorf("polyui: widget %q is not a container", parentID)
	}

	// Index paths keep counting after removals so they stay unique.
	child := t.build(&w, parent, parent.nextChild)
	parent.nextChild++
	if err := parent.container.Add(child.item); err != nil {
		return err
	}
	parent.children = append(parent.children, child)
	t.invalidateUp(parent)
	return nil
}

// Remove removes the widget with the given ID and its subtree.
func (t *Tree) Remove(id string) error {
	n, err := t.lookup(id)
	if err != nil {
		return err
	}
	if n.parent == nil {
		return fmt.Errorf("polyui: cannot remove the root widget %q", id)
	}
	parent := n.parent
	if err := parent.container.Remove(n.item); err != nil {
		return err
	}
	t.pruneDropped(parent)
	t.invalidateUp(parent)
	return nil
}

// nestedMeasurer reports the natural size of a nested container at its
// declared size.
type nestedMeasurer struct {
	t *Tree
	n *node
}

func (m nestedMeasurer) MeasureIntrinsicSize(*retained.Item) (float32, float32) {
	w, h, err := m.n.container.SizeFor(m.n.bounds())
	if err != nil && m.t.measureErr == nil {
		m.t.measureErr = fmt.Errorf("measure %s: %w", m.n.path, err)
	}
	return w, h
}

// textMeasurer sizes Text widgets. A declared or fitted width wraps the
// text.
type textMeasurer struct {
	t *Tree
	n *node
}

func (m textMeasurer) MeasureIntrinsicSize(*retained.Item) (float32, float32) {
	width, _ := m.n.bounds()
	return m.t.text.MeasureText(m.n.widget.Text, width)
}

func (m textMeasurer) MeasureMinSize(*retained.Item) (float32, float32) {
	text := m.n.widget.Text
	if strings.TrimSpace(text) == "" {
		return 0, 0
	}
	return m.t.text.MinWidth(text), m.t.text.LineHeight()
}
