package retained

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-3)

// newArena builds an arena with one slot per main size.
func newArena(mains ...float32) *arena {
	a := &arena{}
	for _, m := range mains {
		a.slots = append(a.slots, slot{item: NewItem(Px(m), Px(10)), main: m, cross: 10})
	}
	return a
}

func rowRanges(a *arena) [][2]int {
	var out [][2]int
	for _, r := range a.rows {
		out = append(out, [2]int{r.start, r.end})
	}
	return out
}

func mainSizes(a *arena) []float32 {
	out := make([]float32, len(a.slots))
	for i, s := range a.slots {
		out[i] = s.main
	}
	return out
}

func mainPositions(a *arena) []float32 {
	out := make([]float32, len(a.slots))
	for i, s := range a.slots {
		out[i] = s.mainPos
	}
	return out
}

func TestBuildRows(t *testing.T) {
	tests := []struct {
		name  string
		mains []float32
		limit float32
		gap   float32
		wrap  Wrap
		ends  []int // slots flagged EndsRowAfter
		want  [][2]int
	}{
		{
			name:  "empty",
			limit: 100,
			wrap:  WrapForward,
		},
		{
			name:  "all fit",
			mains: []float32{80, 80, 80},
			limit: 300,
			gap:   10,
			wrap:  WrapForward,
			want:  [][2]int{{0, 3}},
		},
		{
			name:  "exact fit stays on one row",
			mains: []float32{100, 100},
			limit: 210,
			gap:   10,
			wrap:  WrapForward,
			want:  [][2]int{{0, 2}},
		},
		{
			name:  "oversized item gets its own row",
			mains: []float32{100, 100, 100, 250, 50},
			limit: 220,
			gap:   10,
			wrap:  WrapForward,
			want:  [][2]int{{0, 2}, {2, 3}, {3, 4}, {4, 5}},
		},
		{
			name:  "ends row after",
			mains: []float32{50, 50, 50},
			limit: 1000,
			wrap:  WrapForward,
			ends:  []int{0},
			want:  [][2]int{{0, 1}, {1, 3}},
		},
		{
			name:  "nowrap ignores limit and breaks",
			mains: []float32{500, 500, 500},
			limit: 100,
			wrap:  NoWrap,
			ends:  []int{0},
			want:  [][2]int{{0, 3}},
		},
		{
			name:  "ends row after on last item",
			mains: []float32{10, 10},
			limit: 100,
			wrap:  WrapForward,
			ends:  []int{1},
			want:  [][2]int{{0, 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newArena(tt.mains...)
			for _, i := range tt.ends {
				a.slots[i].item.endsRowAfter = true
			}
			a.buildRows(tt.limit, tt.gap, tt.wrap)
			if diff := cmp.Diff(tt.want, rowRanges(a)); diff != "" {
				t.Errorf("rows mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestBuildRowsWrapReverse(t *testing.T) {
	a := newArena(100, 100, 100)
	items := []*Item{a.slots[0].item, a.slots[1].item, a.slots[2].item}

	a.buildRows(210, 0, WrapReverse)

	if diff := cmp.Diff([][2]int{{2, 3}, {0, 2}}, rowRanges(a)); diff != "" {
		t.Errorf("rows mismatch (-want +got):\n%s", diff)
	}
	order := []*Item{a.slots[0].item, a.slots[1].item, a.slots[2].item}
	want := []*Item{items[1], items[0], items[2]}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("slot %d holds the wrong item after wrap-reverse", i)
		}
	}
}

func TestRowMeasure(t *testing.T) {
	a := newArena(10, 20, 30)
	a.slots[1].cross = 25
	r := row{start: 0, end: 3}
	r.measure(a.slots, 5)

	if r.natural != 60 {
		t.Errorf("natural = %v, want 60", r.natural)
	}
	if r.withGaps != 70 {
		t.Errorf("withGaps = %v, want 70", r.withGaps)
	}
	if r.cross != 25 {
		t.Errorf("cross = %v, want 25", r.cross)
	}
}

func TestRowResize(t *testing.T) {
	tests := []struct {
		name      string
		mains     []float32
		grow      []int
		shrink    []int
		container float32
		gap       float32
		maxMain   float32
		want      []float32
	}{
		{
			name:      "grow by weight",
			mains:     []float32{80, 80, 80},
			grow:      []int{1, 1, 2},
			shrink:    []int{0, 0, 0},
			container: 300,
			gap:       10,
			want:      []float32{90, 90, 100},
		},
		{
			name:      "zero grow sum underfills",
			mains:     []float32{50, 50},
			grow:      []int{0, 0},
			shrink:    []int{1, 1},
			container: 300,
			want:      []float32{50, 50},
		},
		{
			name:      "shrink by weight",
			mains:     []float32{100, 100, 100},
			grow:      []int{0, 0, 0},
			shrink:    []int{1, 0, 3},
			container: 250,
			gap:       5,
			want:      []float32{85, 100, 55},
		},
		{
			name:      "zero shrink sum overflows",
			mains:     []float32{200, 200},
			grow:      []int{1, 1},
			shrink:    []int{0, 0},
			container: 300,
			want:      []float32{200, 200},
		},
		{
			name:      "shrink never goes negative",
			mains:     []float32{10, 300},
			grow:      []int{0, 0},
			shrink:    []int{1, 1},
			container: 100,
			want:      []float32{0, 195},
		},
		{
			name:      "clamped to explicit container main",
			mains:     []float32{400},
			grow:      []int{0},
			shrink:    []int{0},
			container: 300,
			maxMain:   300,
			want:      []float32{300},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newArena(tt.mains...)
			for i := range a.slots {
				a.slots[i].grow = tt.grow[i]
				a.slots[i].shrink = tt.shrink[i]
			}
			r := row{start: 0, end: len(a.slots)}
			r.measure(a.slots, tt.gap)
			r.resize(a.slots, tt.container, tt.gap, tt.maxMain)

			if diff := cmp.Diff(tt.want, mainSizes(a), approx); diff != "" {
				t.Errorf("main sizes mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestRowResizeConservation(t *testing.T) {
	t.Run("grow", func(t *testing.T) {
		a := newArena(33, 47, 12, 80)
		grows := []int{1, 3, 2, 5}
		for i := range a.slots {
			a.slots[i].grow = grows[i]
		}
		r := row{start: 0, end: 4}
		r.measure(a.slots, 7)
		natural, spare := r.natural, 400-r.withGaps

		r.resize(a.slots, 400, 7, 0)

		if diff := cmp.Diff(natural+spare, r.natural, approx); diff != "" {
			t.Errorf("grow did not conserve space (-want +got):\n%s", diff)
		}
	})

	t.Run("shrink", func(t *testing.T) {
		a := newArena(120, 90, 110)
		shrinks := []int{2, 1, 1}
		for i := range a.slots {
			a.slots[i].shrink = shrinks[i]
		}
		r := row{start: 0, end: 3}
		r.measure(a.slots, 4)
		natural, spare := r.natural, 250-r.withGaps

		r.resize(a.slots, 250, 4, 0)

		if diff := cmp.Diff(natural+spare, r.natural, approx); diff != "" {
			t.Errorf("shrink did not conserve space (-want +got):\n%s", diff)
		}
	})
}

func TestRowJustify(t *testing.T) {
	tests := []struct {
		name   string
		mains  []float32
		main   float32
		gap    float32
		policy Justify
		want   []float32
	}{
		{"start", []float32{50, 50}, 200, 0, JustifyStart, []float32{0, 50}},
		{"start with gap", []float32{50, 50}, 200, 10, JustifyStart, []float32{0, 60}},
		{"end", []float32{50, 50}, 200, 0, JustifyEnd, []float32{100, 150}},
		{"center", []float32{50, 50}, 200, 0, JustifyCenter, []float32{50, 100}},
		{"between", []float32{50, 50}, 200, 0, JustifySpaceBetween, []float32{0, 150}},
		{"evenly", []float32{50, 50}, 200, 0, JustifySpaceEvenly, []float32{33.333, 116.667}},
		{"around", []float32{50, 50}, 200, 0, JustifySpaceAround, []float32{25, 125}},
		{"between single item", []float32{50}, 200, 0, JustifySpaceBetween, []float32{75}},
		{"evenly single item", []float32{50}, 200, 0, JustifySpaceEvenly, []float32{75}},
		{"overfull packs from start", []float32{150, 150}, 200, 0, JustifyEnd, []float32{0, 150}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := newArena(tt.mains...)
			r := row{start: 0, end: len(a.slots)}
			r.measure(a.slots, tt.gap)
			r.justify(a.slots, tt.main, tt.gap, tt.policy)

			if diff := cmp.Diff(tt.want, mainPositions(a), approx); diff != "" {
				t.Errorf("positions mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestArenaPoolReset(t *testing.T) {
	a := acquireArena(4)
	a.slots = append(a.slots, slot{item: NewItem(Px(1), Px(1))})
	a.rows = append(a.rows, row{end: 1})
	releaseArena(a)

	b := acquireArena(2)
	defer releaseArena(b)
	if len(b.slots) != 0 || len(b.rows) != 0 {
		t.Errorf("acquired arena not empty: %d slots, %d rows", len(b.slots), len(b.rows))
	}
}
