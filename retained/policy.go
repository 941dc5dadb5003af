package retained

// Direction determines the main axis and the reading order of a container.
type Direction int

const (
	Row Direction = iota
	Column
	RowReverse
	ColumnReverse
)

func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	case RowReverse:
		return "row-reverse"
	case ColumnReverse:
		return "column-reverse"
	}
	return "unknown"
}

// reversed reports whether main-axis positions are mirrored.
func (d Direction) reversed() bool {
	return d == RowReverse || d == ColumnReverse
}

// Wrap controls how items are broken into rows.
type Wrap int

const (
	NoWrap Wrap = iota
	WrapForward
	WrapReverse
)

func (w Wrap) String() string {
	switch w {
	case NoWrap:
		return "nowrap"
	case WrapForward:
		return "wrap"
	case WrapReverse:
		return "wrap-reverse"
	}
	return "unknown"
}

// Justify controls alignment along the main axis within a row.
type Justify int

const (
	JustifyStart Justify = iota
	JustifyEnd
	JustifyCenter
	JustifySpaceBetween
	JustifySpaceEvenly
	JustifySpaceAround
)

func (j Justify) String() string {
	switch j {
	case JustifyStart:
		return "start"
	case JustifyEnd:
		return "end"
	case JustifyCenter:
		return "center"
	case JustifySpaceBetween:
		return "between"
	case JustifySpaceEvenly:
		return "evenly"
	case JustifySpaceAround:
		return "around"
	}
	return "unknown"
}

// AlignItems controls alignment of items along the cross axis within their
// row.
type AlignItems int

const (
	AlignStart AlignItems = iota
	AlignEnd
	AlignCenter
	// AlignStretch expands items with an Auto cross length to the row extent.
	AlignStretch
)

func (a AlignItems) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignEnd:
		return "end"
	case AlignCenter:
		return "center"
	case AlignStretch:
		return "stretch"
	}
	return "unknown"
}

// AlignSelf overrides the container's AlignItems for one item.
type AlignSelf int

const (
	AlignSelfAuto AlignSelf = iota // Use the container's AlignItems
	AlignSelfStart
	AlignSelfEnd
	AlignSelfCenter
	AlignSelfStretch
)

func (a AlignSelf) resolve(parent AlignItems) AlignItems {
	switch a {
	case AlignSelfStart:
		return AlignStart
	case AlignSelfEnd:
		return AlignEnd
	case AlignSelfCenter:
		return AlignCenter
	case AlignSelfStretch:
		return AlignStretch
	}
	return parent
}

// AlignContent controls how rows are placed along the cross axis.
type AlignContent int

const (
	ContentStart AlignContent = iota
	ContentEnd
	ContentCenter
	ContentSpaceBetween
	ContentSpaceEvenly
	ContentStretch
)

func (a AlignContent) String() string {
	switch a {
	case ContentStart:
		return "start"
	case ContentEnd:
		return "end"
	case ContentCenter:
		return "center"
	case ContentSpaceBetween:
		return "between"
	case ContentSpaceEvenly:
		return "evenly"
	case ContentStretch:
		return "stretch"
	}
	return "unknown"
}
