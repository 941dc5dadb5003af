package retained

// Axis maps main/cross quantities onto x/y geometry. It is chosen once per
// solve from the container's Direction, so the solver itself never branches
// on orientation.
type Axis interface {
	// Split returns the main and cross components of a width/height pair.
	Split(width, height float32) (main, cross float32)
	// Join is the inverse of Split.
	Join(main, cross float32) (width, height float32)

	MainOf(l ComputedLayout) float32
	CrossOf(l ComputedLayout) float32
	SetMain(l *ComputedLayout, v float32)
	SetCross(l *ComputedLayout, v float32)
	SetMainPos(l *ComputedLayout, v float32)
	SetCrossPos(l *ComputedLayout, v float32)
}

// Horizontal is the axis of Row containers.
var Horizontal Axis = horizontal{}

// Vertical is the axis of Column containers.
var Vertical Axis = vertical{}

// AxisOf returns the main axis of d.
func AxisOf(d Direction) Axis {
	if d == Column || d == ColumnReverse {
		return Vertical
	}
	return Horizontal
}

type horizontal struct{}

func (horizontal) Split(w, h float32) (float32, float32) { return w, h }
func (horizontal) Join(m, c float32) (float32, float32) { return m, c }
func (horizontal) MainOf(l ComputedLayout) float32 { return l.Width }
func (horizontal) CrossOf(l ComputedLayout) float32 { return l.Height }
func (horizontal) SetMain(l *ComputedLayout, v float32) { l.Width = v }
func (horizontal) SetCross(l *ComputedLayout, v float32) { l.Height = v }
func (horizontal) SetMainPos(l *ComputedLayout, v float32) { l.X = v }
func (horizontal) SetCrossPos(l *ComputedLayout, v float32) { l.Y = v }

func (horizontal) String() string { return "horizontal" }

type vertical struct{}

func (vertical) Split(w, h float32) (float32, float32) { return h, w }
func (vertical) Join(m, c float32) (float32, float32) { return c, m }
func (vertical) MainOf(l ComputedLayout) float32 { return l.Height }
func (vertical) CrossOf(l ComputedLayout) float32 { return l.Width }
func (vertical) SetMain(l *ComputedLayout, v float32) { l.Height = v }
func (vertical) SetCross(l *ComputedLayout, v float32) { l.Width = v }
func (vertical) SetMainPos(l *ComputedLayout, v float32) { l.Y = v }
func (vertical) SetCrossPos(l *ComputedLayout, v float32) { l.X = v }

func (vertical) String() string { return "vertical" }
