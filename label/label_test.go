package label

import "testing"

func img() [][]int {
	return [][]int{
		{0, 0, 0, 0, 1},
		{0, 2, 2, 2, 1},
		{0, 2, 2, 2, 1},
		{0, 0, 0, 0, 1},
		{0, 0, 0, 0, 1},
	}
}

func TestLabelsThreeRegions(t *testing.T) {
	res := Labels(img())
	if res.N != 3 {
		t.Fatalf("N = %d, want 3", res.N)
	}

	sizes := make(map[int]int)
	for r := range res.Labels {
		for c := range res.Labels[r] {
			sizes[res.Labels[r][c]]++
		}
	}
	want := map[int]bool{15: true, 5: true, 6: true}
	got := make(map[int]bool)
	for _, n := range sizes {
		got[n] = true
	}
	for size := range want {
		if !got[size] {
			t.Fatalf("missing a region of size %d, sizes=%v", size, sizes)
		}
	}
}

// TestLabelRegionConsistency checks P3: every pixel with labels[r][c]==i
// is in region i's pixel set, and vice versa.
func TestLabelRegionConsistency(t *testing.T) {
	raster := img()
	res := Labels(raster)

	for r := range raster {
		for c := range raster[r] {
			l := res.Labels[r][c]
			id := res.IDs[l]
			if !res.Store.Contains(id, r, c) {
				t.Fatalf("pixel (%d,%d) has label %d but region does not contain it", r, c, l)
			}
		}
	}
	for l, id := range res.IDs {
		for r := range raster {
			for c := range raster[r] {
				if res.Store.Contains(id, r, c) && res.Labels[r][c] != l {
					t.Fatalf("region %d occupies (%d,%d) but label raster says %d", l, r, c, res.Labels[r][c])
				}
			}
		}
	}
}

func TestLabelsSingleValueRaster(t *testing.T) {
	raster := [][]int{{7, 7}, {7, 7}}
	res := Labels(raster)
	if res.N != 1 {
		t.Fatalf("N = %d, want 1", res.N)
	}
	if res.Store.NNZ(res.IDs[0]) != 4 {
		t.Fatalf("NNZ = %d, want 4", res.Store.NNZ(res.IDs[0]))
	}
}

func TestLabelsCheckerboard(t *testing.T) {
	raster := [][]int{{1, 0}, {0, 1}}
	res := Labels(raster)
	if res.N != 4 {
		t.Fatalf("checkerboard pixels are not 4-connected to same-value neighbours, want 4 singleton regions, got N=%d", res.N)
	}
}
