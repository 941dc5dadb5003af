package retained

// Measurer reports the intrinsic size of items whose lengths are Auto or
// flex without a basis. The solver treats it as a pure function and may call
// it more than once per item and solve.
type Measurer interface {
	MeasureIntrinsicSize(it *Item) (width, height float32)
}

// MinMeasurer is implemented by measurers that also know an item's minimum
// size. Shrinking never takes an item below it.
type MinMeasurer interface {
	MeasureMinSize(it *Item) (width, height float32)
}

// MeasureFunc adapts a function to the Measurer interface.
type MeasureFunc func(it *Item) (width, height float32)

// MeasureIntrinsicSize calls f(it).
func (f MeasureFunc) MeasureIntrinsicSize(it *Item) (width, height float32) {
	return f(it)
}

// zeroMeasurer is used when a container has no measurer configured.
type zeroMeasurer struct{}

func (zeroMeasurer) MeasureIntrinsicSize(*Item) (float32, float32) { return 0, 0 }

func measurerFor(it *Item, fallback Measurer) Measurer {
	if it.measurer != nil {
		return it.measurer
	}
	return fallback
}
