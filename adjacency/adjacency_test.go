package adjacency

import (
	"testing"

	"github.com/arl/lulu2d/label"
	"github.com/arl/lulu2d/region"
)

func TestBuildThreeRegionImage(t *testing.T) {
	raster := [][]int{
		{0, 0, 0, 0, 1},
		{0, 2, 2, 2, 1},
		{0, 2, 2, 2, 1},
		{0, 0, 0, 0, 1},
		{0, 0, 0, 0, 1},
	}
	res := label.Labels(raster)
	idx := Build(res)

	// region 2 (the centre block) is adjacent to region 0 (the L-shape)
	// and, through its column 3, to region 1 (the right column); every
	// pair of the three regions touches. Labels are assigned row-major, so
	// zeroID < oneID < twoID.
	var zeroID, oneID, twoID = findBySize(t, res, 15), findBySize(t, res, 5), findBySize(t, res, 6)

	neighboursOfTwo := idx.Neighbours(twoID)
	if len(neighboursOfTwo) != 2 || neighboursOfTwo[0] != zeroID || neighboursOfTwo[1] != oneID {
		t.Fatalf("region of size 6 should neighbour the size-15 and size-5 regions, got %v", neighboursOfTwo)
	}

	neighboursOfOne := idx.Neighbours(oneID)
	if len(neighboursOfOne) != 2 || neighboursOfOne[0] != zeroID || neighboursOfOne[1] != twoID {
		t.Fatalf("region of size 5 should neighbour the size-15 and size-6 regions, got %v", neighboursOfOne)
	}
}

func findBySize(t *testing.T, res *label.Result, size int) region.ID {
	t.Helper()
	for _, rid := range res.IDs {
		if res.Store.NNZ(rid) == size {
			return rid
		}
	}
	t.Fatalf("no region of size %d", size)
	return -1
}

func TestMergeKeepsSymmetry(t *testing.T) {
	raster := [][]int{
		{0, 1, 2},
	}
	res := label.Labels(raster)
	idx := Build(res)

	a, b, c := res.IDs[0], res.IDs[1], res.IDs[2]
	idx.Merge(a, b)
	for _, n := range idx.Neighbours(a) {
		if n == b {
			t.Fatalf("merged id %d should no longer be a neighbour", b)
		}
	}
	if ns := idx.Neighbours(c); len(ns) != 1 || ns[0] != a {
		t.Fatalf("region c should now neighbour a (formerly b), got %v", ns)
	}
	if idx.Has(b) {
		t.Fatalf("id %d should have been removed from the index", b)
	}
}
