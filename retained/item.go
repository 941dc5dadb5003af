package retained

// ComputedLayout stores the resolved position and size after a solve.
// Positions are relative to the owning container's origin.
type ComputedLayout struct {
	X      float32
	Y      float32
	Width  float32
	Height float32

	// Whether this layout was written by a completed solve
	Valid bool
}

// Item is a node laid out by a Container. Its Main length is the flex
// descriptor along the container's main axis; Cross is fixed or intrinsic.
type Item struct {
	main         Length
	cross        Length
	endsRowAfter bool
	alignSelf    AlignSelf

	// Overrides the container's Measurer (nested containers, text).
	measurer Measurer

	layout ComputedLayout
	owner  *Container

	// Data is an opaque handle for the scene graph that owns the item.
	Data any
}

// NewItem creates an item with the given main and cross lengths.
func NewItem(main, cross Length) *Item {
	return &Item{main: main, cross: cross}
}

// Main returns the main-axis flex descriptor.
func (it *Item) Main() Length { return it.main }

// Cross returns the cross-axis length.
func (it *Item) Cross() Length { return it.cross }

// EndsRowAfter reports whether a wrap boundary follows this item.
func (it *Item) EndsRowAfter() bool { return it.endsRowAfter }

// AlignSelf returns the per-item cross alignment override.
func (it *Item) AlignSelf() AlignSelf { return it.alignSelf }

// Layout returns the geometry committed by the last successful solve.
func (it *Item) Layout() ComputedLayout { return it.layout }

// Container returns the container that owns the item, or nil.
func (it *Item) Container() *Container { return it.owner }

// SetMain sets the main-axis flex descriptor.
func (it *Item) SetMain(l Length) *Item {
	if !it.main.Equal(l) {
		it.main = l
		it.markDirty()
	}
	return it
}

// SetCross sets the cross-axis length.
func (it *Item) SetCross(l Length) *Item {
	if !it.cross.Equal(l) {
		it.cross = l
		it.markDirty()
	}
	return it
}

// SetEndsRowAfter forces a wrap boundary immediately after this item.
func (it *Item) SetEndsRowAfter(v bool) *Item {
	if it.endsRowAfter != v {
		it.endsRowAfter = v
		it.markDirty()
	}
	return it
}

// SetAlignSelf overrides the container's AlignItems for this item.
func (it *Item) SetAlignSelf(a AlignSelf) *Item {
	if it.alignSelf != a {
		it.alignSelf = a
		it.markDirty()
	}
	return it
}

// SetMeasurer sets a measurer used for this item instead of the container's.
func (it *Item) SetMeasurer(m Measurer) *Item {
	it.measurer = m
	it.markDirty()
	return it
}

// InvalidateMeasure tells the owner that the item's intrinsic size changed.
func (it *Item) InvalidateMeasure() {
	it.markDirty()
}

func (it *Item) markDirty() {
	if it.owner != nil {
		it.owner.invalidate()
	}
}
