// Package pulse implements PulseRecord and PulseEmitter (spec.md §4.4):
// an append-only, area-bucketed log of the pulses a dpt.Decomposer
// extracts. Emitted regions are detached snapshots — they never alias
// live region.Store storage, so pulses may be read freely once a
// decomposition completes (spec.md §5).
package pulse

import (
	"sort"

	"github.com/arl/lulu2d/region"
)

// Record is one extracted pulse: its area, its signed value (v(X) minus
// the absorbing neighbour's value; for the final whole-raster pulse, the
// surviving region's own value), and a detached snapshot of the region's
// geometry at the moment it was emitted.
type Record struct {
	Area     int
	Value    int
	Shape    region.Shape
	StartRow int
	RowSpans [][]region.Interval
}

// Group is one (area, pulses-of-that-area) pair, in the order
// Emitter.Groups() yields them: ascending area.
type Group struct {
	Area    int
	Records []Record
}

// Emitter is the append-only, area-bucketed pulse log of spec.md §4.4.
// It owns every Record's geometry outright: Emit always stores a detached
// copy, never the live region the decomposer is about to merge away.
type Emitter struct {
	byArea map[int][]Record
	areas  []int // insertion order of first-seen areas
}

// NewEmitter returns an empty pulse log.
func NewEmitter() *Emitter {
	return &Emitter{byArea: make(map[int][]Record)}
}

// Emit appends a pulse of the given area, cloning region's geometry from
// store so the emitter never shares storage with a live region.
func Emit(e *Emitter, store *region.Store, id region.ID, area, value int) {
	shape, startRow, rows, _ := store.Snapshot(id)
	rec := Record{
		Area:     area,
		Value:    value,
		Shape:    shape,
		StartRow: startRow,
		RowSpans: rows,
	}
	if _, ok := e.byArea[area]; !ok {
		e.areas = append(e.areas, area)
	}
	e.byArea[area] = append(e.byArea[area], rec)
}

// Count returns the total number of pulses emitted across all areas.
func (e *Emitter) Count() int {
	n := 0
	for _, recs := range e.byArea {
		n += len(recs)
	}
	return n
}

// Area returns the pulses emitted at exactly the given area, in
// extraction order.
func (e *Emitter) Area(area int) []Record {
	return e.byArea[area]
}

// Groups returns every (area, pulses) group, ascending by area. It is the
// iterator spec.md §4.4 describes as "groups() -> iterator over
// (area, pulses)".
func (e *Emitter) Groups() []Group {
	areas := make([]int, 0, len(e.byArea))
	for a := range e.byArea {
		areas = append(areas, a)
	}
	sort.Ints(areas)

	groups := make([]Group, len(areas))
	for i, a := range areas {
		groups[i] = Group{Area: a, Records: e.byArea[a]}
	}
	return groups
}
