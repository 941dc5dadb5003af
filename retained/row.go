package retained

// epsilon absorbs float drift when comparing accumulated sizes against a
// container edge.
const epsilon = 1e-3

// row is one wrap line: the half-open range [start, end) of arena slots.
type row struct {
	start, end int

	natural  float32 // sum of member main sizes, no gaps
	withGaps float32 // natural plus (n-1) main gaps
	cross    float32 // max member cross size

	crossPos float32 // offset of the row along the cross axis
	extent   float32 // cross extent after align-content
}

func (r *row) len() int { return r.end - r.start }

// measure recomputes the accumulated main sizes and the cross size.
func (r *row) measure(slots []slot, gap float32) {
	r.natural = 0
	r.cross = 0
	for i := r.start; i < r.end; i++ {
		r.natural += slots[i].main
		if slots[i].cross > r.cross {
			r.cross = slots[i].cross
		}
	}
	r.withGaps = r.natural
	if n := r.len(); n > 1 {
		r.withGaps += gap * float32(n-1)
	}
}

// buildRows partitions a.slots into rows. A new row starts when the next
// item would push the running size past limit, or after an item flagged
// EndsRowAfter. A row always takes at least one item, so an over-sized
// item gets a row of its own. NoWrap produces exactly one row.
func (a *arena) buildRows(limit, gap float32, wrap Wrap) {
	a.rows = a.rows[:0]
	if len(a.slots) == 0 {
		return
	}

	if wrap == NoWrap {
		r := row{start: 0, end: len(a.slots)}
		r.measure(a.slots, gap)
		a.rows = append(a.rows, r)
		return
	}

	lineStart := 0
	var running float32
	for i := range a.slots {
		size := a.slots[i].main
		if i > lineStart {
			breakBefore := a.slots[i-1].item.endsRowAfter ||
				running+gap+size > limit+epsilon
			if breakBefore {
				a.closeRow(lineStart, i, gap)
				lineStart = i
				running = 0
			}
		}
		if i > lineStart {
			running += gap
		}
		running += size
	}
	a.closeRow(lineStart, len(a.slots), gap)

	if wrap == WrapReverse {
		for i, j := 0, len(a.rows)-1; i < j; i, j = i+1, j-1 {
			a.rows[i], a.rows[j] = a.rows[j], a.rows[i]
		}
		for _, r := range a.rows {
			for i, j := r.start, r.end-1; i < j; i, j = i+1, j-1 {
				a.slots[i], a.slots[j] = a.slots[j], a.slots[i]
			}
		}
	}
}

func (a *arena) closeRow(start, end int, gap float32) {
	r := row{start: start, end: end}
	r.measure(a.slots, gap)
	debugLog("  row[%d]: items %d..%d natural=%.1f withGaps=%.1f cross=%.1f",
		len(a.rows), start, end, r.natural, r.withGaps, r.cross)
	a.rows = append(a.rows, r)
}

// resize distributes spare main-axis space among the row's items according
// to their grow factors, or takes the deficit away according to their shrink
// factors. A zero factor sum leaves the row as it is. When maxMain is
// positive no item ends up longer than it.
func (r *row) resize(slots []slot, containerMain, gap, maxMain float32) {
	spare := containerMain - r.withGaps

	switch {
	case spare > 0:
		var sumGrow int
		for i := r.start; i < r.end; i++ {
			sumGrow += slots[i].grow
		}
		if sumGrow > 0 {
			for i := r.start; i < r.end; i++ {
				slots[i].main += spare * float32(slots[i].grow) / float32(sumGrow)
			}
		}
	case spare < 0:
		var sumShrink int
		for i := r.start; i < r.end; i++ {
			sumShrink += slots[i].shrink
		}
		if sumShrink > 0 {
			for i := r.start; i < r.end; i++ {
				s := &slots[i]
				s.main += spare * float32(s.shrink) / float32(sumShrink)
				if s.main < s.minMain {
					s.main = s.minMain
				}
			}
		}
	}

	if maxMain > 0 {
		for i := r.start; i < r.end; i++ {
			if slots[i].main > maxMain {
				slots[i].main = maxMain
			}
		}
	}
	r.measure(slots, gap)
}

// justify assigns main-axis positions. Rows that do not fit pack from the
// start; single-item rows under distributive policies are centred.
func (r *row) justify(slots []slot, containerMain, gap float32, policy Justify) {
	n := r.len()
	if n == 0 {
		return
	}
	free := containerMain - r.withGaps

	var start, between float32
	if free > 0 {
		switch policy {
		case JustifyStart:
		case JustifyEnd:
			start = free
		case JustifyCenter:
			start = free / 2
		case JustifySpaceBetween, JustifySpaceEvenly, JustifySpaceAround:
			start, between = distribute(policy, free, n)
		}
	}

	cursor := start
	for i := r.start; i < r.end; i++ {
		slots[i].mainPos = cursor
		cursor += slots[i].main + gap + between
	}
}

// distribute returns the leading offset and the extra spacing between n
// items sharing free space. A single item is centred instead of dividing by
// n-1 or n+1.
func distribute(policy Justify, free float32, n int) (start, between float32) {
	if n == 1 {
		return free / 2, 0
	}
	switch policy {
	case JustifySpaceBetween:
		between = free / float32(n-1)
	case JustifySpaceEvenly:
		between = free / float32(n+1)
		start = between
	case JustifySpaceAround:
		between = free / float32(n)
		start = between / 2
	}
	return start, between
}

// align positions each item within the row's cross extent.
func (r *row) align(slots []slot) {
	for i := r.start; i < r.end; i++ {
		s := &slots[i]
		switch s.align {
		case AlignEnd:
			s.crossPos = r.crossPos + r.extent - s.cross
		case AlignCenter:
			s.crossPos = r.crossPos + (r.extent-s.cross)/2
		case AlignStretch:
			if s.crossAuto {
				s.cross = r.extent
			}
			s.crossPos = r.crossPos
		default:
			s.crossPos = r.crossPos
		}
	}
}
