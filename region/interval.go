package region

import "sort"

// Shape describes the bounding raster dimensions a region (or a whole
// image) is defined against: H rows, W columns.
type Shape struct {
	H, W int
}

// Pixel is a zero-based (row, col) coordinate. row increases downward.
// Coordinates of -1 or H/W denote the logical frame just outside a
// raster, used by OutsideBoundary.
type Pixel struct {
	Row, Col int
}

// Interval is a half-open column range [C0, C1), C0 < C1.
type Interval struct {
	C0, C1 int
}

func (iv Interval) width() int { return iv.C1 - iv.C0 }

// canonicalizeRow sorts intervals by C0 and merges any that overlap or
// touch (I1: "intervals [1,3) and [3,5) must be merged into [1,5)").
func canonicalizeRow(ivs []Interval) []Interval {
	if len(ivs) == 0 {
		return ivs
	}
	sorted := append([]Interval(nil), ivs...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].C0 < sorted[j].C0 })

	out := make([]Interval, 0, len(sorted))
	cur := sorted[0]
	for _, iv := range sorted[1:] {
		if iv.C0 <= cur.C1 {
			// overlapping or touching: merge
			if iv.C1 > cur.C1 {
				cur.C1 = iv.C1
			}
			continue
		}
		out = append(out, cur)
		cur = iv
	}
	out = append(out, cur)
	return out
}

// rowContains reports whether col is covered by any interval in a
// canonical (sorted, non-overlapping) row, via binary search.
func rowContains(row []Interval, col int) bool {
	i := sort.Search(len(row), func(i int) bool { return row[i].C1 > col })
	return i < len(row) && row[i].C0 <= col
}

// rowWidth sums the widths of a row's intervals.
func rowWidth(row []Interval) int {
	n := 0
	for _, iv := range row {
		n += iv.width()
	}
	return n
}

// unionRows merges two canonical interval lists into one canonical list.
func unionRows(a, b []Interval) []Interval {
	if len(a) == 0 {
		return append([]Interval(nil), b...)
	}
	if len(b) == 0 {
		return append([]Interval(nil), a...)
	}
	merged := make([]Interval, 0, len(a)+len(b))
	merged = append(merged, a...)
	merged = append(merged, b...)
	return canonicalizeRow(merged)
}

// subtractRows removes every pixel covered by b from a, both canonical,
// returning a canonical result. Used by the outside-boundary computation
// to turn "candidate columns" into "columns not already in the region".
func subtractRows(a, b []Interval) []Interval {
	if len(b) == 0 {
		return append([]Interval(nil), a...)
	}
	out := make([]Interval, 0, len(a))
	for _, iv := range a {
		c0 := iv.C0
		for _, sub := range b {
			if sub.C1 <= c0 || sub.C0 >= iv.C1 {
				continue
			}
			if sub.C0 > c0 {
				out = append(out, Interval{c0, sub.C0})
			}
			if sub.C1 > c0 {
				c0 = sub.C1
			}
		}
		if c0 < iv.C1 {
			out = append(out, Interval{c0, iv.C1})
		}
	}
	return out
}

// enumerate returns every column covered by a canonical row, ascending.
func enumerate(row []Interval) []int {
	cols := make([]int, 0, rowWidth(row))
	for _, iv := range row {
		for c := iv.C0; c < iv.C1; c++ {
			cols = append(cols, c)
		}
	}
	return cols
}
