package manager

import (
	"langtons-ant/game/types"
)

// CellObserver is told about every cell mutation. A stamp of 0 means the
// cell was turned off.
type CellObserver func(pos types.Point, stamp int)

// GridManager is the sparse store of on cells. A key is present iff the
// cell is on; the value is the generation stamp it was turned on with.
type GridManager struct {
	cells    map[types.Point]int
	observer CellObserver
}

func NewGridManager(observer CellObserver) *GridManager {
	if observer == nil {
		observer = func(types.Point, int) {}
	}
	return &GridManager{
		cells:    make(map[types.Point]int),
		observer: observer,
	}
}

// Get returns the stamp of the cell and whether it is on.
func (gm *GridManager) Get(pos types.Point) (int, bool) {
	stamp, ok := gm.cells[pos]
	return stamp, ok
}

func (gm *GridManager) IsOn(pos types.Point) bool {
	_, ok := gm.cells[pos]
	return ok
}

// Set turns the cell on with the given stamp. Non-positive stamps would be
// indistinguishable from an off cell, so they clear it instead.
func (gm *GridManager) Set(pos types.Point, stamp int) {
	if stamp <= 0 {
		gm.Clear(pos)
		return
	}
	gm.cells[pos] = stamp
	gm.observer(pos, stamp)
}

func (gm *GridManager) Clear(pos types.Point) {
	delete(gm.cells, pos)
	gm.observer(pos, 0)
}

// Len is the number of on cells.
func (gm *GridManager) Len() int {
	return len(gm.cells)
}

// Each calls fn for every on cell, in no particular order.
func (gm *GridManager) Each(fn func(pos types.Point, stamp int)) {
	for pos, stamp := range gm.cells {
		fn(pos, stamp)
	}
}

// Snapshot returns a copy of the on cells.
func (gm *GridManager) Snapshot() map[types.Point]int {
	snapshot := make(map[types.Point]int, len(gm.cells))
	for pos, stamp := range gm.cells {
		snapshot[pos] = stamp
	}
	return snapshot
}

// Reset drops every cell without notifying the observer; callers that keep
// derived state are expected to reset it themselves.
func (gm *GridManager) Reset() {
	gm.cells = make(map[types.Point]int)
}
