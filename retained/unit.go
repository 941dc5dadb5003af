package retained

import (
	"fmt"
	"strconv"
)

// lengthKind discriminates the variants of a Length.
type lengthKind uint8

const (
	lengthAuto lengthKind = iota
	lengthFixed
	lengthFlex
)

// Length is a size along one axis. The zero value is Auto: the item's
// intrinsic size as reported by the container's Measurer.
type Length struct {
	kind   lengthKind
	px     float32
	grow   int
	shrink int

	// Only set for flex lengths. A flex basis is never itself flex.
	basis *Length
}

// Auto sizes an item from its intrinsic size.
var Auto = Length{}

// Px returns a fixed length in pixels.
func Px(v float32) Length {
	return Length{kind: lengthFixed, px: v}
}

// Flex returns a flex weight whose basis is the item's intrinsic size.
func Flex(grow, shrink int) Length {
	return Length{kind: lengthFlex, grow: grow, shrink: shrink}
}

// FlexBasis returns a flex weight starting from an explicit basis.
func FlexBasis(grow, shrink int, basis Length) Length {
	b := basis
	return Length{kind: lengthFlex, grow: grow, shrink: shrink, basis: &b}
}

// IsAuto reports whether l defers to the intrinsic size.
func (l Length) IsAuto() bool { return l.kind == lengthAuto }

// IsFixed reports whether l is an absolute pixel length.
func (l Length) IsFixed() bool { return l.kind == lengthFixed }

// IsFlex reports whether l is a flex weight.
func (l Length) IsFlex() bool { return l.kind == lengthFlex }

// Pixels returns the pixel value of a fixed length, or 0.
func (l Length) Pixels() float32 {
	if l.kind != lengthFixed {
		return 0
	}
	return l.px
}

// Grow returns the grow factor. Non-flex lengths never grow.
func (l Length) Grow() int {
	if l.kind != lengthFlex {
		return 0
	}
	return l.grow
}

// Shrink returns the shrink factor. Non-flex lengths never shrink.
func (l Length) Shrink() int {
	if l.kind != lengthFlex {
		return 0
	}
	return l.shrink
}

// Basis returns the explicit basis of a flex length.
func (l Length) Basis() (Length, bool) {
	if l.kind != lengthFlex || l.basis == nil {
		return Length{}, false
	}
	return *l.basis, true
}

// Scale multiplies every pixel quantity in l by f. Flex weights are unitless
// and left alone.
func (l Length) Scale(f float32) Length {
	switch l.kind {
	case lengthFixed:
		return Px(l.px * f)
	case lengthFlex:
		if l.basis != nil {
			return FlexBasis(l.grow, l.shrink, l.basis.Scale(f))
		}
	}
	return l
}

// Equal reports whether two lengths describe the same size.
func (l Length) Equal(o Length) bool {
	if l.kind != o.kind || l.px != o.px || l.grow != o.grow || l.shrink != o.shrink {
		return false
	}
	if (l.basis == nil) != (o.basis == nil) {
		return false
	}
	return l.basis == nil || l.basis.Equal(*o.basis)
}

func (l Length) String() string {
	switch l.kind {
	case lengthFixed:
		return strconv.FormatFloat(float64(l.px), 'g', -1, 32) + "px"
	case lengthFlex:
		if l.basis != nil {
			return fmt.Sprintf("flex(%d, %d, %s)", l.grow, l.shrink, l.basis)
		}
		return fmt.Sprintf("flex(%d, %d)", l.grow, l.shrink)
	}
	return "auto"
}

// validate checks that l may be used on the given axis. Cross lengths must
// not carry flex weights; a flex basis must be fixed or auto.
func (l Length) validate(mainAxis bool) string {
	switch l.kind {
	case lengthFixed:
		if l.px < 0 {
			return "negative pixel length"
		}
	case lengthFlex:
		if !mainAxis {
			return "flex weight used as a cross-axis size"
		}
		if l.grow < 0 || l.shrink < 0 {
			return "negative grow or shrink factor"
		}
		if l.basis != nil {
			if l.basis.kind == lengthFlex {
				return "flex basis must not be a flex length"
			}
			if l.basis.kind == lengthFixed && l.basis.px < 0 {
				return "negative flex basis"
			}
		}
	}
	return ""
}
