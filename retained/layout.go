package retained

import (
	"fmt"
	"math"
)

// solveResult is the container-level outcome of compute. Item geometry
// lives in the arena slots.
type solveResult struct {
	width, height float32
	dropped       []*Item
	diagnostics   []Diagnostic
}

// compute runs the full flex pass into a without touching any item. width
// and height of 0 mean auto on that axis.
//
// Phases, in order: resolve item sizes, group into rows, grow/shrink each
// row, size the container, drop rows that overflow an explicit cross size,
// place rows (align-content), then justify and align inside each row.
func (c *Container) compute(a *arena, width, height float32) (solveResult, error) {
	ax := AxisOf(c.direction)
	mainLimit, crossLimit := ax.Split(width, height)

	debugLog("compute: dir=%s wrap=%s size=(%.1f,%.1f) items=%d",
		c.direction, c.wrap, width, height, len(c.items))

	if err := c.resolveSlots(a, ax); err != nil {
		return solveResult{}, err
	}

	var res solveResult
	if len(a.slots) == 0 {
		res.width, res.height = width, height
		return res, nil
	}

	limit := mainLimit
	if limit <= 0 {
		limit = math.MaxFloat32
	}
	a.buildRows(limit, c.mainGap, c.wrap)

	// An auto main size fits the widest row.
	containerMain := mainLimit
	if mainLimit <= 0 {
		for _, r := range a.rows {
			if r.withGaps > containerMain {
				containerMain = r.withGaps
			}
		}
	}

	for i := range a.rows {
		a.rows[i].resize(a.slots, containerMain, c.mainGap, mainLimit)
	}

	if crossLimit > 0 {
		res.dropped = a.dropOverflow(crossLimit, c.crossGap)
		if len(res.dropped) > 0 {
			res.diagnostics = append(res.diagnostics, Diagnostic{
				Severity: SeverityWarning,
				Message: fmt.Sprintf("cross-axis content exceeds container size %.1f: dropped %d item(s)",
					crossLimit, len(res.dropped)),
				Dropped: res.dropped,
			})
		}
	}

	used := a.crossUsed(c.crossGap)
	containerCross := crossLimit
	if crossLimit <= 0 {
		containerCross = used
	}

	a.placeRows(containerCross-used, c.crossGap, c.alignContent)
	if c.wrap == NoWrap && crossLimit > 0 && len(a.rows) == 1 {
		// A single line spans the whole cross size.
		a.rows[0].crossPos = 0
		a.rows[0].extent = containerCross
	}

	reversed := c.direction.reversed()
	for i := range a.rows {
		r := &a.rows[i]
		r.justify(a.slots, containerMain, c.mainGap, c.justify)
		r.align(a.slots)
		if reversed {
			for j := r.start; j < r.end; j++ {
				s := &a.slots[j]
				s.mainPos = containerMain - s.mainPos - s.main
			}
		}
	}

	res.width, res.height = ax.Join(containerMain, containerCross)
	debugLog("compute: rows=%d size=(%.1f,%.1f) dropped=%d",
		len(a.rows), res.width, res.height, len(res.dropped))
	return res, nil
}

// resolveSlots validates every item and fills the arena with resolved main
// and cross sizes. Any configuration error aborts before a slot is used.
func (c *Container) resolveSlots(a *arena, ax Axis) error {
	a.slots = a.slots[:0]
	for i, it := range c.items {
		if reason := it.main.validate(true); reason != "" {
			return &ConfigError{Index: i, Field: "main", Length: it.main, Reason: reason}
		}
		if c.flexOnly && !it.main.IsFlex() {
			return &ConfigError{Index: i, Field: "main", Length: it.main, Reason: "non-flex item in a flex-only container"}
		}
		if reason := it.cross.validate(false); reason != "" {
			return &ConfigError{Index: i, Field: "cross", Length: it.cross, Reason: reason}
		}

		s := slot{
			item:   it,
			grow:   it.main.Grow(),
			shrink: it.main.Shrink(),
			align:  it.alignSelf.resolve(c.alignItems),
		}

		basis, hasBasis := it.main.Basis()
		needsMeasure := it.cross.IsAuto() || it.main.IsAuto() ||
			(it.main.IsFlex() && (!hasBasis || basis.IsAuto()))

		var intrinsicMain, intrinsicCross float32
		m := measurerFor(it, c.measurer)
		if needsMeasure {
			intrinsicMain, intrinsicCross = ax.Split(m.MeasureIntrinsicSize(it))
		}
		if mm, ok := m.(MinMeasurer); ok {
			s.minMain, _ = ax.Split(mm.MeasureMinSize(it))
		}
		if s.minMain < 0 {
			s.minMain = 0
		}

		switch {
		case it.main.IsFixed():
			s.main = it.main.Pixels()
		case hasBasis && basis.IsFixed():
			s.main = basis.Pixels()
		default:
			s.main = intrinsicMain
		}
		if it.cross.IsFixed() {
			s.cross = it.cross.Pixels()
		} else {
			s.cross = intrinsicCross
			s.crossAuto = true
		}
		if s.main < 0 {
			s.main = 0
		}
		if s.cross < 0 {
			s.cross = 0
		}

		a.slots = append(a.slots, s)
	}
	return nil
}

// crossUsed returns the summed row cross sizes plus the gaps between rows.
func (a *arena) crossUsed(gap float32) float32 {
	var used float32
	for _, r := range a.rows {
		used += r.cross
	}
	if n := len(a.rows); n > 1 {
		used += gap * float32(n-1)
	}
	return used
}

// dropOverflow removes every row from the first one whose far edge passes
// limit onward and returns the items they held.
func (a *arena) dropOverflow(limit, gap float32) []*Item {
	var edge float32
	cut := -1
	for i, r := range a.rows {
		if i > 0 {
			edge += gap
		}
		edge += r.cross
		if edge > limit+epsilon {
			cut = i
			break
		}
	}
	if cut < 0 {
		return nil
	}

	var dropped []*Item
	for _, r := range a.rows[cut:] {
		for i := r.start; i < r.end; i++ {
			dropped = append(dropped, a.slots[i].item)
		}
	}
	// Dropped slots stay in place with a nil item so commit skips them.
	for _, r := range a.rows[cut:] {
		for i := r.start; i < r.end; i++ {
			a.slots[i].item = nil
		}
	}
	a.rows = a.rows[:cut]
	return dropped
}

// placeRows assigns each row its cross offset and extent. free is the
// unused cross space, never negative once overflow has been dropped.
func (a *arena) placeRows(free, gap float32, policy AlignContent) {
	n := len(a.rows)
	if n == 0 {
		return
	}
	if free < 0 {
		free = 0
	}

	var start, between, grow float32
	switch policy {
	case ContentEnd:
		start = free
	case ContentCenter:
		start = free / 2
	case ContentSpaceBetween:
		if n == 1 {
			start = free / 2
		} else {
			between = free / float32(n-1)
		}
	case ContentSpaceEvenly:
		between = free / float32(n+1)
		start = between
	case ContentStretch:
		grow = free / float32(n)
	}

	cursor := start
	for i := range a.rows {
		r := &a.rows[i]
		r.crossPos = cursor
		r.extent = r.cross + grow
		cursor += r.extent + gap + between
	}
}

// commit writes the arena geometry into the items, removes dropped items,
// then notifies OnGeometry and the diagnostics sink.
func (c *Container) commit(a *arena, res solveResult) {
	ax := AxisOf(c.direction)
	for i := range a.slots {
		s := &a.slots[i]
		if s.item == nil {
			continue
		}
		var l ComputedLayout
		ax.SetMainPos(&l, s.mainPos)
		ax.SetCrossPos(&l, s.crossPos)
		ax.SetMain(&l, s.main)
		ax.SetCross(&l, s.cross)
		l.Valid = true
		s.item.layout = l
	}

	if len(res.dropped) > 0 {
		kept := c.items[:0]
		for _, it := range c.items {
			if containsItem(res.dropped, it) {
				it.owner = nil
				continue
			}
			kept = append(kept, it)
		}
		for i := len(kept); i < len(c.items); i++ {
			c.items[i] = nil
		}
		c.items = kept
	}

	c.computed = ComputedLayout{Width: res.width, Height: res.height, Valid: true}
	c.warnings = res.diagnostics

	if c.onGeometry != nil {
		for _, it := range c.items {
			c.onGeometry(it, it.layout)
		}
	}
	if c.sink != nil {
		for _, d := range res.diagnostics {
			c.sink(d)
		}
	}
}

func containsItem(items []*Item, it *Item) bool {
	for _, x := range items {
		if x == it {
			return true
		}
	}
	return false
}
