//go:build debug

package adjacency

import (
	assert "github.com/aurelien-rainone/assertgo"

	"github.com/arl/lulu2d/region"
)

// checkSymmetric verifies the neighbours(a) <=> neighbours(b) invariant
// after b has been merged into a. Gated behind the debug build tag at
// the call site (not just the assert.True panic inside it): idx.symmetric
// is an O(V+E) scan, and the teacher's own assertgo only gates whether
// a failed check panics, not whether the check itself runs.
func (idx *Index) checkSymmetric(a, b region.ID) {
	assert.True(idx.symmetric(), "adjacency.Index.Merge: adjacency became asymmetric after merging %d into %d", b, a)
}
