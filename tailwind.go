package polyui

import (
	"sync"

	"github.com/polyfrost/polyui/retained"
	"github.com/polyfrost/polyui/tw"
)

// styleCache caches parsed styles for repeated class strings.
// The spacing step is part of the key since it changes every sized utility.
var (
	styleCache   = make(map[styleKey]*tw.ComputedStyles)
	styleCacheMu sync.RWMutex
)

type styleKey struct {
	classes string
	spacing float32
}

// resolveStyles returns cached or freshly parsed styles for a class string.
func resolveStyles(classes string) *tw.ComputedStyles {
	if classes == "" {
		return nil
	}
	key := styleKey{classes: classes, spacing: tw.GetSpacing()}

	// Check cache first (read lock)
	styleCacheMu.RLock()
	if cached, ok := styleCache[key]; ok {
		styleCacheMu.RUnlock()
		return cached
	}
	styleCacheMu.RUnlock()

	// Parse and cache (write lock)
	styleCacheMu.Lock()
	defer styleCacheMu.Unlock()

	// Double-check after acquiring write lock
	if cached, ok := styleCache[key]; ok {
		return cached
	}

	styles := tw.ParseClasses(classes)
	styleCache[key] = &styles
	return &styles
}

var directions = map[string]retained.Direction{
	"row":            retained.Row,
	"column":         retained.Column,
	"row-reverse":    retained.RowReverse,
	"column-reverse": retained.ColumnReverse,
}

var wrapModes = map[string]retained.Wrap{
	"nowrap":       retained.NoWrap,
	"wrap":         retained.WrapForward,
	"wrap-reverse": retained.WrapReverse,
}

var justifyModes = map[string]retained.Justify{
	"start":   retained.JustifyStart,
	"end":     retained.JustifyEnd,
	"center":  retained.JustifyCenter,
	"between": retained.JustifySpaceBetween,
	"evenly":  retained.JustifySpaceEvenly,
	"around":  retained.JustifySpaceAround,
}

var alignModes = map[string]retained.AlignItems{
	"start":   retained.AlignStart,
	"end":     retained.AlignEnd,
	"center":  retained.AlignCenter,
	"stretch": retained.AlignStretch,
}

var contentModes = map[string]retained.AlignContent{
	"start":   retained.ContentStart,
	"end":     retained.ContentEnd,
	"center":  retained.ContentCenter,
	"between": retained.ContentSpaceBetween,
	"evenly":  retained.ContentSpaceEvenly,
	"stretch": retained.ContentStretch,
}

var selfModes = map[string]retained.AlignSelf{
	"auto":    retained.AlignSelfAuto,
	"start":   retained.AlignSelfStart,
	"end":     retained.AlignSelfEnd,
	"center":  retained.AlignSelfCenter,
	"stretch": retained.AlignSelfStretch,
}

// defaultDirection returns the direction a container kind has before any
// flex-* class is applied.
func defaultDirection(kind WidgetKind) retained.Direction {
	if kind == WidgetColumn {
		return retained.Column
	}
	return retained.Row
}

// applyContainer pushes resolved container properties into c. Setters only
// invalidate c when a value actually changes.
func applyContainer(c *retained.Container, kind WidgetKind, p tw.FlexProperties, cfg Config) {
	dir := defaultDirection(kind)
	if p.Direction != nil {
		dir = directions[*p.Direction]
	}
	c.SetDirection(dir)

	wrap := wrapModes[cfg.Layout.Wrap]
	if p.Wrap != nil {
		wrap = wrapModes[*p.Wrap]
	}
	c.SetWrap(wrap)

	justify := retained.JustifyStart
	if p.Justify != nil {
		justify = justifyModes[*p.Justify]
	}
	c.SetJustify(justify)

	align := retained.AlignStart
	if p.AlignItems != nil {
		align = alignModes[*p.AlignItems]
	}
	c.SetAlignItems(align)

	content := retained.ContentStart
	if p.AlignContent != nil {
		content = contentModes[*p.AlignContent]
	}
	c.SetAlignContent(content)

	scale := cfg.Layout.Scale
	gapX, gapY := cfg.Layout.Gap, cfg.Layout.Gap
	if p.GapX != nil {
		gapX = *p.GapX
	}
	if p.GapY != nil {
		gapY = *p.GapY
	}
	mainGap, crossGap := c.Axis().Split(gapX*scale, gapY*scale)
	c.SetGap(mainGap, crossGap)
}

// declaredSize returns the width and height set by w-* and h-* classes, 0
// when unset.
func declaredSize(p tw.FlexProperties, scale float32) (width, height float32) {
	if p.Width != nil {
		width = *p.Width * scale
	}
	if p.Height != nil {
		height = *p.Height * scale
	}
	return width, height
}

// itemLengths maps resolved item properties onto the main and cross axis of
// the parent. Any grow, shrink or basis class makes the main length flex;
// otherwise a declared size is fixed and an undeclared one is intrinsic.
func itemLengths(p tw.FlexProperties, parent retained.Axis, scale float32) (main, cross retained.Length) {
	width, height := lengthOf(p.Width, scale), lengthOf(p.Height, scale)
	mainSize, crossSize := width, height
	if parent == retained.Vertical {
		mainSize, crossSize = height, width
	}

	cross = crossSize
	if p.Grow == nil && p.Shrink == nil && p.Basis == nil && p.BasisAuto == nil {
		return mainSize, cross
	}

	grow, shrink := 0, 1 // CSS initial values
	if p.Grow != nil {
		grow = *p.Grow
	}
	if p.Shrink != nil {
		shrink = *p.Shrink
	}

	switch {
	case p.Basis != nil:
		main = retained.FlexBasis(grow, shrink, retained.Px(*p.Basis*scale))
	case mainSize.IsFixed():
		// basis-auto falls back to the declared size, as in CSS
		main = retained.FlexBasis(grow, shrink, mainSize)
	default:
		main = retained.Flex(grow, shrink)
	}
	return main, cross
}

func lengthOf(v *float32, scale float32) retained.Length {
	if v == nil {
		return retained.Auto
	}
	return retained.Px(*v * scale)
}

// applyItem pushes resolved item properties into it.
func applyItem(it *retained.Item, p tw.FlexProperties, parent retained.Axis, scale float32) {
	main, cross := itemLengths(p, parent, scale)
	it.SetMain(main).SetCross(cross)

	self := retained.AlignSelfAuto
	if p.AlignSelf != nil {
		self = selfModes[*p.AlignSelf]
	}
	it.SetAlignSelf(self)
	it.SetEndsRowAfter(p.BreakAfter != nil && *p.BreakAfter)
}
