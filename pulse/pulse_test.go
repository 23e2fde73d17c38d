package pulse

import (
	"testing"

	"github.com/arl/lulu2d/region"
)

func TestEmitGroupsByArea(t *testing.T) {
	store := region.NewStore(region.Shape{H: 2, W: 2})
	a, _ := store.Create(3, 0, [][]region.Interval{{{0, 1}}})
	b, _ := store.Create(5, 0, [][]region.Interval{{{1, 2}}})

	e := NewEmitter()
	Emit(e, store, a, 1, -2)
	Emit(e, store, b, 1, 2)

	c, _ := store.Create(9, 1, [][]region.Interval{{{0, 2}}})
	Emit(e, store, c, 2, 4)

	if e.Count() != 3 {
		t.Fatalf("Count = %d, want 3", e.Count())
	}

	groups := e.Groups()
	if len(groups) != 2 {
		t.Fatalf("Groups = %d, want 2", len(groups))
	}
	if groups[0].Area != 1 || len(groups[0].Records) != 2 {
		t.Fatalf("group 0 = %+v, want area 1 with 2 records", groups[0])
	}
	if groups[1].Area != 2 || len(groups[1].Records) != 1 {
		t.Fatalf("group 1 = %+v, want area 2 with 1 record", groups[1])
	}
}

func TestEmitDetachesSnapshot(t *testing.T) {
	store := region.NewStore(region.Shape{H: 2, W: 2})
	id, _ := store.Create(3, 0, [][]region.Interval{{{0, 1}}})

	e := NewEmitter()
	Emit(e, store, id, 1, -2)

	store.SetValue(id, 99)
	rec := e.Area(1)[0]
	if rec.Value != -2 {
		t.Fatalf("pulse value mutated after emit: %d", rec.Value)
	}
	rec.RowSpans[0][0].C1 = 99
	if store.Contains(id, 0, 1) {
		t.Fatalf("mutating a pulse snapshot's intervals affected the live region")
	}
}
