// Package adjacency implements AdjacencyIndex (spec.md §4.3): for each
// live region, the set of neighbouring region IDs, maintained under
// merges. It never stores pixel data itself — only IDs — the same
// weak-reference-by-ID discipline the teacher's recast.Region.Connections
// slices use to describe the (cyclic) region adjacency graph without
// owning back-references.
package adjacency

import (
	"sort"

	assert "github.com/aurelien-rainone/assertgo"

	"github.com/arl/lulu2d/label"
	"github.com/arl/lulu2d/region"
)

// Index maps each live region ID to its set of 4-adjacent neighbour IDs.
type Index struct {
	neighbours map[region.ID]map[region.ID]struct{}
}

// Build constructs the initial adjacency index from a label.Result, by
// scanning the label raster for horizontal and vertical transitions
// between differing labels.
func Build(res *label.Result) *Index {
	idx := &Index{neighbours: make(map[region.ID]map[region.ID]struct{}, res.N)}
	for _, id := range res.IDs {
		idx.neighbours[id] = make(map[region.ID]struct{})
	}

	link := func(l1, l2 int) {
		if l1 == l2 {
			return
		}
		idx.addEdge(res.IDs[l1], res.IDs[l2])
	}

	labels := res.Labels
	for r := range labels {
		for c := range labels[r] {
			if c+1 < len(labels[r]) {
				link(labels[r][c], labels[r][c+1])
			}
			if r+1 < len(labels) {
				link(labels[r][c], labels[r+1][c])
			}
		}
	}
	return idx
}

func (idx *Index) addEdge(a, b region.ID) {
	idx.neighbours[a][b] = struct{}{}
	idx.neighbours[b][a] = struct{}{}
}

// Neighbours returns id's current neighbour IDs in ascending order.
func (idx *Index) Neighbours(id region.ID) []region.ID {
	set := idx.neighbours[id]
	out := make([]region.ID, 0, len(set))
	for n := range set {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Has reports whether id is tracked by the index (true for every live
// region created by Build or produced by a prior Merge).
func (idx *Index) Has(id region.ID) bool {
	_, ok := idx.neighbours[id]
	return ok
}

// Merge folds b's neighbour set into a's and removes b, per spec.md §4.3:
//
//	neighbours(a) <- (neighbours(a) U neighbours(b)) \ {a, b}
//	for every n in neighbours(b): replace b with a in neighbours(n)
//	delete neighbours(b)
func (idx *Index) Merge(a, b region.ID) {
	assert.True(idx.Has(a) && idx.Has(b), "adjacency.Index.Merge: unknown id %d or %d", a, b)

	bn := idx.neighbours[b]
	for n := range bn {
		if n == a {
			continue
		}
		delete(idx.neighbours[n], b)
		if n != a {
			idx.neighbours[n][a] = struct{}{}
			idx.neighbours[a][n] = struct{}{}
		}
	}
	delete(idx.neighbours[a], a)
	delete(idx.neighbours[a], b)
	delete(idx.neighbours, b)

	idx.checkSymmetric(a, b)
}

// symmetric checks the invariant a in neighbours(b) <=> b in neighbours(a).
// It is O(V+E); checkSymmetric (symmetry_debug.go / symmetry_release.go)
// is what actually gates whether this runs, since Go evaluates a function
// call's arguments before assert.True gets a chance to no-op them — calling
// this directly from Merge would pay for the scan on every merge in a
// release build even though the panic it fed would never fire.
func (idx *Index) symmetric() bool {
	for a, ns := range idx.neighbours {
		for b := range ns {
			if _, ok := idx.neighbours[b][a]; !ok {
				return false
			}
		}
	}
	return true
}
