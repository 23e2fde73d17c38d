// Package region implements ConnectedRegion, a compressed, never-densified
// representation of a 4-connected set of equal-valued pixels, and
// RegionStore, the arena that owns every live region by stable integer ID.
//
// The representation and the invariants it must satisfy (I1-I4) are
// specified in spec.md §3-4.1. The store never holds owning pointers
// between regions; callers (adjacency.Index, dpt.Decomposer) address
// regions purely by ID, the same arena discipline the teacher's
// recast.Region graph uses for its cyclic adjacency.
package region

import assert "github.com/aurelien-rainone/assertgo"

// ID addresses a region inside a Store. IDs are never reused once a
// region has been merged away: the store's ownership discipline treats a
// dead ID as permanently invalid, not recyclable.
type ID int

// PaintMode selects how Paint combines a region's value with existing
// raster contents.
type PaintMode int

const (
	// Set overwrites the raster's current value.
	Set PaintMode = iota
	// Add accumulates onto the raster's current value.
	Add
)

type regionData struct {
	shape    Shape
	startRow int
	rows     [][]Interval // rows[i] is the region's row at startRow+i
	value    int
	nnz      int
	live     bool
}

// Store is the arena owning every live ConnectedRegion, addressed by
// stable ID. It is the RegionStore of spec.md §4.1.
type Store struct {
	shape   Shape
	regions []*regionData
}

// NewStore creates an empty store bound to the given raster shape. Every
// region later created or merged in this store must fit within shape.
func NewStore(shape Shape) *Store {
	assert.True(shape.H > 0 && shape.W > 0, "region.NewStore: shape must be positive, got %v", shape)
	return &Store{shape: shape}
}

// Shape returns the raster shape the store was created with.
func (s *Store) Shape() Shape { return s.shape }

// Live reports whether id still addresses a region (false once merged away).
func (s *Store) Live(id ID) bool {
	return int(id) >= 0 && int(id) < len(s.regions) && s.regions[int(id)] != nil && s.regions[int(id)].live
}

func (s *Store) get(id ID) *regionData {
	assert.True(s.Live(id), "region.Store: use of dead or unknown id %d", id)
	return s.regions[int(id)]
}

// Create validates and inserts a new region, returning its ID.
//
// rowSpans[i] holds the column intervals of row startRow+i; intervals
// need not be pre-sorted or pre-merged, Create canonicalizes each row,
// but the union of all pixels must already be 4-connected (I2) — Create
// does not look for a connected subset, an invalid (disconnected) input
// is rejected in full.
func (s *Store) Create(value, startRow int, rowSpans [][]Interval) (ID, error) {
	rows := make([][]Interval, len(rowSpans))
	for i, row := range rowSpans {
		rows[i] = canonicalizeRow(row)
	}
	if err := validate(s.shape, startRow, rows); err != nil {
		return -1, err
	}
	rd := &regionData{
		shape:    s.shape,
		startRow: startRow,
		rows:     rows,
		value:    value,
		nnz:      sumNNZ(rows),
		live:     true,
	}
	s.regions = append(s.regions, rd)
	return ID(len(s.regions) - 1), nil
}

func sumNNZ(rows [][]Interval) int {
	n := 0
	for _, row := range rows {
		n += rowWidth(row)
	}
	return n
}

// validate checks I1-I4 against a shape and a per-row interval layout
// whose rows are already individually canonical (sorted, non-overlapping,
// non-touching).
func validate(shape Shape, startRow int, rows [][]Interval) error {
	if len(rows) == 0 {
		return newError(InvalidRegion, "region has no rows")
	}
	if startRow+len(rows) > shape.H {
		return newError(InvalidRegion, "rows [%d,%d) exceed raster height %d", startRow, startRow+len(rows), shape.H)
	}
	if len(rows[0]) == 0 {
		return newError(InvalidRegion, "region must start on a non-empty row")
	}
	if len(rows[len(rows)-1]) == 0 {
		return newError(InvalidRegion, "region must end on a non-empty row")
	}
	for i, row := range rows {
		for _, iv := range row {
			if iv.C0 < 0 || iv.C1 > shape.W || iv.C0 >= iv.C1 {
				return newError(InvalidRegion, "row %d: interval [%d,%d) out of bounds for width %d", startRow+i, iv.C0, iv.C1, shape.W)
			}
		}
	}
	if !connected(rows) {
		return newError(InvalidRegion, "pixel set is not 4-connected")
	}
	return nil
}

// connected reports whether the union of all row intervals forms a single
// 4-connected component, via BFS over (row, interval) nodes linked by
// vertical column overlap between adjacent rows (same-row intervals are
// already canonical, hence never touching, hence never adjacent to each
// other directly).
func connected(rows [][]Interval) bool {
	total := 0
	for _, row := range rows {
		total += len(row)
	}
	if total == 0 {
		return false
	}

	type node struct{ row, idx int }
	visited := make(map[node]bool, total)
	var stack []node
	start := node{}
outer:
	for r, row := range rows {
		for i := range row {
			start = node{r, i}
			break outer
		}
	}
	stack = append(stack, start)
	visited[start] = true
	seen := 1

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		iv := rows[n.row][n.idx]

		for _, dr := range [2]int{-1, 1} {
			nr := n.row + dr
			if nr < 0 || nr >= len(rows) {
				continue
			}
			for j, oiv := range rows[nr] {
				if oiv.C0 < iv.C1 && iv.C0 < oiv.C1 {
					nn := node{nr, j}
					if !visited[nn] {
						visited[nn] = true
						seen++
						stack = append(stack, nn)
					}
				}
			}
		}
	}
	return seen == total
}

// NNZ returns the region's cached pixel count.
func (s *Store) NNZ(id ID) int { return s.get(id).nnz }

// Value returns the region's shared pixel value.
func (s *Store) Value(id ID) int { return s.get(id).value }

// SetValue overwrites the region's shared pixel value.
func (s *Store) SetValue(id ID, v int) { s.get(id).value = v }

// Contains reports whether (r, c) belongs to id's pixel set.
func (s *Store) Contains(id ID, r, c int) bool {
	rd := s.get(id)
	i := r - rd.startRow
	if i < 0 || i >= len(rd.rows) {
		return false
	}
	return rowContains(rd.rows[i], c)
}

// BoundingBox returns the smallest (minR, minC, maxR, maxC) box containing
// id, maxR/maxC exclusive.
func (s *Store) BoundingBox(id ID) (minR, minC, maxR, maxC int) {
	rd := s.get(id)
	minR = rd.startRow
	maxR = rd.startRow + len(rd.rows)
	minC, maxC = rd.shape.W, 0
	for _, row := range rd.rows {
		for _, iv := range row {
			if iv.C0 < minC {
				minC = iv.C0
			}
			if iv.C1 > maxC {
				maxC = iv.C1
			}
		}
	}
	return
}

// ToDense paints id's value into a freshly zeroed H×W array.
func (s *Store) ToDense(id ID) [][]int {
	rd := s.get(id)
	dense := make([][]int, rd.shape.H)
	for r := range dense {
		dense[r] = make([]int, rd.shape.W)
	}
	for i, row := range rd.rows {
		r := rd.startRow + i
		for _, iv := range row {
			for c := iv.C0; c < iv.C1; c++ {
				dense[r][c] = rd.value
			}
		}
	}
	return dense
}

// Paint writes id's pixels into raster (an H×W slice the caller owns),
// either overwriting (Set) or accumulating (Add) v.
func (s *Store) Paint(id ID, raster [][]int, v int, mode PaintMode) {
	rd := s.get(id)
	for i, row := range rd.rows {
		r := rd.startRow + i
		for _, iv := range row {
			for c := iv.C0; c < iv.C1; c++ {
				if mode == Add {
					raster[r][c] += v
				} else {
					raster[r][c] = v
				}
			}
		}
	}
}

// OutsideBoundary enumerates every pixel not in id that is 4-adjacent to
// at least one pixel of id, including the one-pixel frame just outside
// the raster (r=-1, c=-1, r=H, c=W). Pixels are emitted row-major, c
// ascending within a row, with no duplicates: see spec.md §4.1.
func (s *Store) OutsideBoundary(id ID) []Pixel {
	rd := s.get(id)
	return outsideBoundaryOf(rd.shape, rd.startRow, rd.rows)
}

// outsideBoundaryOf computes the outside boundary of an arbitrary
// (possibly disconnected) row-interval layout. Exported only to this
// package: the public Store.OutsideBoundary always validates 4-connectivity
// at Create time, but the boundary algorithm itself does not depend on
// connectivity and is exercised directly by region_test.go against
// disconnected fixtures (spec.md scenario 3).
func outsideBoundaryOf(shape Shape, startRow int, rows [][]Interval) []Pixel {
	regionRow := func(r int) []Interval {
		i := r - startRow
		if i < 0 || i >= len(rows) {
			return nil
		}
		return rows[i]
	}
	endpoints := func(row []Interval) []Interval {
		pts := make([]Interval, 0, 2*len(row))
		for _, iv := range row {
			if iv.C0-1 >= -1 {
				pts = append(pts, Interval{iv.C0 - 1, iv.C0})
			}
			if iv.C1 <= shape.W {
				pts = append(pts, Interval{iv.C1, iv.C1 + 1})
			}
		}
		return canonicalizeRow(pts)
	}

	var out []Pixel
	for r := startRow - 1; r <= startRow+len(rows); r++ {
		candidates := unionRows(regionRow(r-1), regionRow(r+1))
		candidates = unionRows(candidates, endpoints(regionRow(r)))
		outside := subtractRows(candidates, regionRow(r))
		for _, c := range enumerate(outside) {
			out = append(out, Pixel{r, c})
		}
	}
	return out
}

// InsideBoundary enumerates id's pixels that have at least one 4-neighbour
// outside id, row-major.
func (s *Store) InsideBoundary(id ID) []Pixel {
	rd := s.get(id)
	var out []Pixel
	for i, row := range rd.rows {
		r := rd.startRow + i
		above := rowAt(rd.rows, i-1)
		below := rowAt(rd.rows, i+1)
		for _, iv := range row {
			for c := iv.C0; c < iv.C1; c++ {
				if !rowContains(above, c) || !rowContains(below, c) ||
					!rowContains(row, c-1) || !rowContains(row, c+1) {
					out = append(out, Pixel{r, c})
				}
			}
		}
	}
	return out
}

func rowAt(rows [][]Interval, i int) []Interval {
	if i < 0 || i >= len(rows) {
		return nil
	}
	return rows[i]
}

// Reshape adjusts id's shape. With newShape nil, it shrinks shape to the
// smallest box containing the region's occupied rows and columns. With
// newShape set, it fails with InvalidRegion if any live pixel would fall
// outside it. Reshape is idempotent (P6): reshaping twice in a row is a
// no-op the second time.
func (s *Store) Reshape(id ID, newShape *Shape) error {
	rd := s.get(id)
	minR, minC, maxR, maxC := s.BoundingBox(id)
	_ = minC

	target := Shape{H: maxR, W: maxC}
	if newShape != nil {
		target = *newShape
		if target.H < maxR || target.W < maxC {
			return newError(InvalidRegion, "reshape to %v would drop pixels (occupies rows [%d,%d), cols up to %d)", target, minR, maxR, maxC)
		}
	}
	rd.shape = target
	return nil
}

// Merge fuses id_b's pixels into id_a and returns id_a; id_b becomes dead.
// Precondition: id_a and id_b are 4-adjacent (share a boundary edge).
// id_a's value is retained. NotAdjacent is a programmer error per spec §7
// and is reported via assert, not returned.
func (s *Store) Merge(idA, idB ID) ID {
	a, b := s.get(idA), s.get(idB)
	assert.True(adjacent(a, b), "region.Store.Merge: %d and %d are not 4-adjacent", idA, idB)

	startRow := a.startRow
	if b.startRow < startRow {
		startRow = b.startRow
	}
	endRow := a.startRow + len(a.rows)
	if e := b.startRow + len(b.rows); e > endRow {
		endRow = e
	}

	rows := make([][]Interval, endRow-startRow)
	for i := range rows {
		r := startRow + i
		rows[i] = unionRows(rowAtAbs(a, r), rowAtAbs(b, r))
	}

	a.startRow = startRow
	a.rows = rows
	a.nnz = sumNNZ(rows)
	b.live = false
	b.rows = nil
	return idA
}

func rowAtAbs(rd *regionData, r int) []Interval {
	i := r - rd.startRow
	if i < 0 || i >= len(rd.rows) {
		return nil
	}
	return rd.rows[i]
}

// adjacent reports whether a and b share at least one 4-connected
// boundary edge: some pixel of b lies in a's outside boundary.
func adjacent(a, b *regionData) bool {
	boundary := outsideBoundaryOf(a.shape, a.startRow, a.rows)
	for _, p := range boundary {
		i := p.Row - b.startRow
		if i < 0 || i >= len(b.rows) {
			continue
		}
		if rowContains(b.rows[i], p.Col) {
			return true
		}
	}
	return false
}

// Adjacent reports whether ida and idb share a 4-connected boundary edge.
// Exposed for callers (adjacency.Index) that need to test adjacency
// without committing to a merge.
func (s *Store) Adjacent(ida, idb ID) bool {
	return adjacent(s.get(ida), s.get(idb))
}

// Copy deep-clones id into a new, independent region: mutating the copy
// never affects the original (P7), since row slices are fully duplicated.
func (s *Store) Copy(id ID) ID {
	rd := s.get(id)
	rows := make([][]Interval, len(rd.rows))
	for i, row := range rd.rows {
		rows[i] = append([]Interval(nil), row...)
	}
	clone := &regionData{
		shape:    rd.shape,
		startRow: rd.startRow,
		rows:     rows,
		value:    rd.value,
		nnz:      rd.nnz,
		live:     true,
	}
	s.regions = append(s.regions, clone)
	return ID(len(s.regions) - 1)
}

// Snapshot returns an immutable, detached copy of id's geometry: shape,
// start row, and canonical rows, suitable for storage outside the store
// (pulse.Emit uses this so pulses never alias live region storage).
func (s *Store) Snapshot(id ID) (shape Shape, startRow int, rows [][]Interval, value int) {
	rd := s.get(id)
	out := make([][]Interval, len(rd.rows))
	for i, row := range rd.rows {
		out[i] = append([]Interval(nil), row...)
	}
	return rd.shape, rd.startRow, out, rd.value
}
