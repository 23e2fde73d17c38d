// Package label implements the connected-components labeller of
// spec.md §4.2: a two-pass union-find over a raster that assigns every
// maximal 4-connected, equal-valued pixel set a dense label 0..N-1, and
// builds a region.Store populated with one ConnectedRegion per label.
//
// The two-pass structure (provisional labels from north/west neighbours,
// union-find resolution, then a relabelling pass) mirrors the sweep-line
// labelling recast.BuildRegionsMonotone performs over compact-heightfield
// rows, adapted here from span columns to raster rows.
package label

import (
	"github.com/arl/lulu2d/region"
)

// unionFind is a standard path-compressing, union-by-rank disjoint-set
// structure over provisional label indices.
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind() *unionFind {
	return &unionFind{}
}

func (u *unionFind) newSet() int {
	id := len(u.parent)
	u.parent = append(u.parent, id)
	u.rank = append(u.rank, 0)
	return id
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	if u.rank[ra] < u.rank[rb] {
		ra, rb = rb, ra
	}
	u.parent[rb] = ra
	if u.rank[ra] == u.rank[rb] {
		u.rank[ra]++
	}
}

// Result holds the output of Labels: a dense label raster and the store
// populated with the corresponding regions, indexed 0..N-1 by ID.
type Result struct {
	Labels [][]int
	Store  *region.Store
	IDs    []region.ID // IDs[label] is the region.ID that owns that label
	N      int
}

// Labels runs the two-pass union-find labeller over raster (an H×W
// integer image) and returns the label raster plus a populated
// region.Store. Two pixels receive the same label iff they are
// 4-connected and share the raster value (the P3 label-region
// consistency property).
func Labels(raster [][]int) *Result {
	h := len(raster)
	w := 0
	if h > 0 {
		w = len(raster[0])
	}

	provisional := make([][]int, h)
	for r := range provisional {
		provisional[r] = make([]int, w)
		for c := range provisional[r] {
			provisional[r][c] = -1
		}
	}

	uf := newUnionFind()

	// First pass: examine north and west neighbours only.
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			v := raster[r][c]
			var labels []int
			if c > 0 && raster[r][c-1] == v {
				labels = append(labels, provisional[r][c-1])
			}
			if r > 0 && raster[r-1][c] == v {
				labels = append(labels, provisional[r-1][c])
			}
			if len(labels) == 0 {
				provisional[r][c] = uf.newSet()
				continue
			}
			min := labels[0]
			for _, l := range labels[1:] {
				if l < min {
					min = l
				}
			}
			for _, l := range labels {
				uf.union(min, l)
			}
			provisional[r][c] = min
		}
	}

	// Second pass: resolve every provisional label to its union-find
	// root, then remap roots to a dense 0..N-1 range.
	rootToFinal := make(map[int]int)
	final := make([][]int, h)
	for r := 0; r < h; r++ {
		final[r] = make([]int, w)
		for c := 0; c < w; c++ {
			root := uf.find(provisional[r][c])
			fl, ok := rootToFinal[root]
			if !ok {
				fl = len(rootToFinal)
				rootToFinal[root] = fl
			}
			final[r][c] = fl
		}
	}
	n := len(rootToFinal)

	// Build one region per final label by walking the label raster
	// row-major and appending per-row intervals.
	type rowspan struct {
		startRow int
		rows     [][]region.Interval
	}
	acc := make(map[int]*rowspan, n)
	for r := 0; r < h; r++ {
		c := 0
		for c < w {
			l := final[r][c]
			c0 := c
			for c < w && final[r][c] == l {
				c++
			}
			rs, ok := acc[l]
			if !ok {
				rs = &rowspan{startRow: r}
				acc[l] = rs
			}
			for rs.startRow+len(rs.rows) <= r {
				rs.rows = append(rs.rows, nil)
			}
			i := r - rs.startRow
			rs.rows[i] = append(rs.rows[i], region.Interval{C0: c0, C1: c})
		}
	}

	store := region.NewStore(region.Shape{H: h, W: w})
	ids := make([]region.ID, n)
	for l := 0; l < n; l++ {
		rs := acc[l]
		value := raster[rs.startRow][rowFirstCol(rs.rows[0])]
		id, err := store.Create(value, rs.startRow, rs.rows)
		if err != nil {
			// A bug in the labeller produced an invalid region: this is
			// a programmer error, not a user-input condition.
			panic(err)
		}
		ids[l] = id
	}

	return &Result{Labels: final, Store: store, IDs: ids, N: n}
}

func rowFirstCol(row []region.Interval) int {
	return row[0].C0
}
