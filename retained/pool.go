package retained

import "sync"

// ============================================================================
// Solve Scratch Arena
// ============================================================================
//
// Every solve needs a slot per item and a row per wrap line. Both are pure
// scratch: they are reset at the start of a solve, never referenced by a
// Container after the solve returns, and handed back to the pool.
//
// Usage:
//   a := acquireArena(len(items))
//   defer releaseArena(a)

// slot is the per-item working state of one solve.
type slot struct {
	item *Item

	main    float32
	cross   float32
	minMain float32
	grow    int
	shrink  int

	crossAuto bool
	align     AlignItems

	mainPos  float32
	crossPos float32
}

type arena struct {
	slots []slot
	rows  []row
}

var arenaPool = sync.Pool{
	New: func() interface{} {
		// Covers the common case of a few dozen children
		return &arena{
			slots: make([]slot, 0, 32),
			rows:  make([]row, 0, 8),
		}
	},
}

// acquireArena returns an empty arena with room for n slots.
func acquireArena(n int) *arena {
	a := arenaPool.Get().(*arena)
	if cap(a.slots) < n {
		a.slots = make([]slot, 0, n)
	}
	return a
}

// releaseArena clears item references and returns a to the pool.
func releaseArena(a *arena) {
	if a == nil {
		return
	}
	for i := range a.slots {
		a.slots[i] = slot{}
	}
	a.slots = a.slots[:0]
	a.rows = a.rows[:0]

	// Don't keep oversized arenas around
	if cap(a.slots) <= 1024 {
		arenaPool.Put(a)
	}
}
