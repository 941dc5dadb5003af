// Package retained provides the flex layout solver of the retained-mode
// toolkit: containers own ordered items, and a synchronous solve turns their
// flex descriptors into pixel geometry whenever the container is invalidated.
//
// A solve runs on the thread that drives the render loop. It never blocks or
// spawns work, and it is not reentrant: a container reports
// ErrReentrantSolve instead of nesting.
package retained

import "slices"

// State is the recalculation state of a Container.
type State int

const (
	// StateUninitialized is the zero value: the container was not built by
	// NewContainer and cannot be solved.
	StateUninitialized State = iota
	StateClean
	StateDirty
	StateSolving
)

func (s State) String() string {
	switch s {
	case StateClean:
		return "clean"
	case StateDirty:
		return "dirty"
	case StateSolving:
		return "solving"
	}
	return "uninitialized"
}

// ContainerConfig configures a new Container.
type ContainerConfig struct {
	Direction    Direction
	Wrap         Wrap
	Justify      Justify
	AlignItems   AlignItems
	AlignContent AlignContent

	// MainGap separates items within a row, CrossGap separates rows.
	MainGap  float32
	CrossGap float32

	// Width and Height constrain the container. Zero on an axis means the
	// container grows to fit its content along it.
	Width  float32
	Height float32

	// FlexOnly rejects items whose main length is not a flex weight.
	FlexOnly bool

	// Measurer reports intrinsic sizes. Nil measures every item as 0x0.
	Measurer Measurer

	// Diagnostics receives recoverable conditions such as dropped items.
	Diagnostics DiagnosticSink

	// OnGeometry is called once per item after each successful solve.
	OnGeometry func(it *Item, l ComputedLayout)
}

// DefaultContainerConfig returns a wrapping row with start alignment.
func DefaultContainerConfig() ContainerConfig {
	return ContainerConfig{
		Direction:    Row,
		Wrap:         WrapForward,
		Justify:      JustifyStart,
		AlignItems:   AlignStart,
		AlignContent: ContentStart,
	}
}

// Container owns an ordered list of items and computes their geometry.
// It is not safe for concurrent use: solving happens on the thread that
// drives the render loop.
type Container struct {
	items []*Item

	direction    Direction
	wrap         Wrap
	justify      Justify
	alignItems   AlignItems
	alignContent AlignContent
	mainGap      float32
	crossGap     float32
	width        float32
	height       float32
	flexOnly     bool

	measurer   Measurer
	sink       DiagnosticSink
	onGeometry func(it *Item, l ComputedLayout)

	state State
	// Set by invalidations that arrive while solving.
	pendingDirty bool

	computed ComputedLayout
	warnings []Diagnostic
}

// NewContainer creates a dirty, empty container.
func NewContainer(config ContainerConfig) *Container {
	m := config.Measurer
	if m == nil {
		m = zeroMeasurer{}
	}
	return &Container{
		direction:    config.Direction,
		wrap:         config.Wrap,
		justify:      config.Justify,
		alignItems:   config.AlignItems,
		alignContent: config.AlignContent,
		mainGap:      config.MainGap,
		crossGap:     config.CrossGap,
		width:        config.Width,
		height:       config.Height,
		flexOnly:     config.FlexOnly,
		measurer:     m,
		sink:         config.Diagnostics,
		onGeometry:   config.OnGeometry,
		state:        StateDirty,
	}
}

// State returns the recalculation state.
func (c *Container) State() State { return c.state }

// Items returns a copy of the item list in insertion order.
func (c *Container) Items() []*Item {
	out := make([]*Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of items.
func (c *Container) Len() int { return len(c.items) }

// Layout returns the container's own size from the last solve.
func (c *Container) Layout() ComputedLayout { return c.computed }

// Warnings returns the diagnostics raised by the last solve.
func (c *Container) Warnings() []Diagnostic { return c.warnings }

// Axis returns the main axis for the current direction.
func (c *Container) Axis() Axis { return AxisOf(c.direction) }

// Size returns the configured width and height (0 means auto).
func (c *Container) Size() (width, height float32) { return c.width, c.height }

// Add appends items. Items that already belong to a container are moved.
func (c *Container) Add(items ...*Item) error {
	return c.Insert(len(c.items), items...)
}

// Insert inserts items at index, clamped to the list bounds.
func (c *Container) Insert(index int, items ...*Item) error {
	if c.state == StateSolving {
		return ErrReentrantSolve
	}
	if len(items) == 0 {
		return nil
	}
	for _, it := range items {
		if it.owner != nil {
			if err := it.owner.Remove(it); err != nil {
				return err
			}
		}
		it.owner = c
	}
	if index < 0 {
		index = 0
	}
	if index > len(c.items) {
		index = len(c.items)
	}
	c.items = slices.Insert(c.items, index, items...)
	c.invalidate()
	return nil
}

// Remove removes it from the container. Removing an item that is not a
// member is a no-op.
func (c *Container) Remove(it *Item) error {
	if c.state == StateSolving {
		return ErrReentrantSolve
	}
	for i, member := range c.items {
		if member == it {
			c.items = append(c.items[:i], c.items[i+1:]...)
			it.owner = nil
			c.invalidate()
			return nil
		}
	}
	return nil
}

// Clear removes every item.
func (c *Container) Clear() error {
	if c.state == StateSolving {
		return ErrReentrantSolve
	}
	for _, it := range c.items {
		it.owner = nil
	}
	c.items = c.items[:0]
	c.invalidate()
	return nil
}

// SetSize resizes the container. Zero on an axis means auto.
func (c *Container) SetSize(width, height float32) *Container {
	if c.width != width || c.height != height {
		c.width, c.height = width, height
		c.invalidate()
	}
	return c
}

// SetDirection sets the main axis and reading order.
func (c *Container) SetDirection(d Direction) *Container {
	if c.direction != d {
		c.direction = d
		c.invalidate()
	}
	return c
}

// SetWrap sets the wrap mode.
func (c *Container) SetWrap(w Wrap) *Container {
	if c.wrap != w {
		c.wrap = w
		c.invalidate()
	}
	return c
}

// SetJustify sets main-axis justification.
func (c *Container) SetJustify(j Justify) *Container {
	if c.justify != j {
		c.justify = j
		c.invalidate()
	}
	return c
}

// SetAlignItems sets per-row cross alignment.
func (c *Container) SetAlignItems(a AlignItems) *Container {
	if c.alignItems != a {
		c.alignItems = a
		c.invalidate()
	}
	return c
}

// SetAlignContent sets row placement along the cross axis.
func (c *Container) SetAlignContent(a AlignContent) *Container {
	if c.alignContent != a {
		c.alignContent = a
		c.invalidate()
	}
	return c
}

// SetGap sets the main-axis and cross-axis gaps.
func (c *Container) SetGap(main, cross float32) *Container {
	if c.mainGap != main || c.crossGap != cross {
		c.mainGap, c.crossGap = main, cross
		c.invalidate()
	}
	return c
}

// SetMeasurer replaces the intrinsic size collaborator.
func (c *Container) SetMeasurer(m Measurer) *Container {
	if m == nil {
		m = zeroMeasurer{}
	}
	c.measurer = m
	c.invalidate()
	return c
}

// Rescale multiplies the container size, gaps and every fixed item length by
// factor. It is called when the parent changes scale.
func (c *Container) Rescale(factor float32) *Container {
	if factor == 1 || factor <= 0 {
		return c
	}
	c.width *= factor
	c.height *= factor
	c.mainGap *= factor
	c.crossGap *= factor
	for _, it := range c.items {
		it.main = it.main.Scale(factor)
		it.cross = it.cross.Scale(factor)
	}
	c.invalidate()
	return c
}

// Invalidate requests a full recalculation on the next Solve.
func (c *Container) Invalidate() {
	c.invalidate()
}

func (c *Container) invalidate() {
	switch c.state {
	case StateSolving:
		c.pendingDirty = true
	case StateClean:
		c.state = StateDirty
	}
}

// Solve recomputes geometry when the container is dirty. It is synchronous
// and all-or-nothing: on error no item geometry is changed.
func (c *Container) Solve() error {
	switch c.state {
	case StateUninitialized:
		return ErrNotSetup
	case StateSolving:
		return ErrReentrantSolve
	case StateClean:
		return nil
	}

	c.state = StateSolving
	c.pendingDirty = false

	// A panicking Measurer or OnGeometry callback leaves the container
	// dirty instead of stuck in StateSolving.
	committed := false
	defer func() {
		if committed && !c.pendingDirty {
			c.state = StateClean
		} else {
			c.state = StateDirty
		}
		c.pendingDirty = false
	}()

	a := acquireArena(len(c.items))
	defer releaseArena(a)

	res, err := c.compute(a, c.width, c.height)
	if err != nil {
		return err
	}
	c.commit(a, res)
	committed = true
	return nil
}

// Recalculate invalidates and solves in one call.
func (c *Container) Recalculate() error {
	if c.state == StateUninitialized {
		return ErrNotSetup
	}
	c.invalidate()
	return c.Solve()
}

// ContentSize returns the size the container would take with both axes set
// to auto. It does not touch item geometry or the container's state.
func (c *Container) ContentSize() (width, height float32, err error) {
	return c.SizeFor(0, 0)
}

// SizeFor returns the size the container would take if it were given width
// and height (0 meaning auto on that axis). Like ContentSize it commits
// nothing, so a parent's Measurer can call it for nested containers.
func (c *Container) SizeFor(width, height float32) (float32, float32, error) {
	switch c.state {
	case StateUninitialized:
		return 0, 0, ErrNotSetup
	case StateSolving:
		return 0, 0, ErrReentrantSolve
	}

	prev := c.state
	c.state = StateSolving
	defer func() {
		c.state = prev
		if c.pendingDirty && prev == StateClean {
			c.state = StateDirty
		}
		c.pendingDirty = false
	}()

	a := acquireArena(len(c.items))
	defer releaseArena(a)

	res, err := c.compute(a, width, height)
	if err != nil {
		return 0, 0, err
	}
	return res.width, res.height, nil
}
