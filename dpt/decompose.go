// Package dpt is lulu2d's front door: it wires region.Store,
// adjacency.Index and pulse.Emitter together into the Decomposer that
// drives the LULU outer loop of spec.md §4.5, and re-exports the
// library's three external entry points (spec.md §6) — ConnectedRegions,
// Decompose, Reconstruct — as a single cohesive package, the same way
// the teacher's recast package ties heightfield/region/contour build
// steps into one pipeline rather than leaving callers to wire each
// stage by hand.
package dpt

import (
	"context"
	"sort"

	"github.com/arl/lulu2d/adjacency"
	"github.com/arl/lulu2d/label"
	"github.com/arl/lulu2d/pulse"
	"github.com/arl/lulu2d/raster"
	"github.com/arl/lulu2d/region"
)

// ConnectedRegions labels image into its maximal 4-connected, equal-value
// regions (spec.md §4.2) and returns the label raster alongside the
// region.Store and region IDs backing it.
func ConnectedRegions(image raster.Dense) *label.Result {
	return label.Labels(image)
}

// Reconstruct paints every pulse e holds, optionally area-thresholded,
// back onto a dense raster (spec.md §4.6). It returns ShapeMismatch if a
// pulse was recorded against a different raster shape than the one
// requested here (spec §7: a caller-supplied condition, not a panic).
func Reconstruct(e *pulse.Emitter, shape region.Shape, opts raster.Options) (raster.Result, error) {
	return raster.Reconstruct(e, shape, opts)
}

// Decomposer drives the LULU outer loop over an initial connected-region
// labelling: for increasing area a = 1, 2, 3, ..., it repeatedly absorbs
// every region of area exactly a that is a strict local extremum into
// its closest-valued neighbour, until a single region remains.
type Decomposer struct {
	store  *region.Store
	idx    *adjacency.Index
	emit   *pulse.Emitter
	allIDs []region.ID // every region ID ever allocated; Merge never mints new ones
	live   int         // number of regions still live; terminates at 1
	ctx    *BuildContext
}

// NewDecomposer builds a Decomposer from an already-labelled image.
func NewDecomposer(res *label.Result, ctx *BuildContext) *Decomposer {
	return &Decomposer{
		store:  res.Store,
		idx:    adjacency.Build(res),
		emit:   pulse.NewEmitter(),
		allIDs: append([]region.ID(nil), res.IDs...),
		live:   res.N,
		ctx:    ctx,
	}
}

// suboperator is one of the two passes (local-minima removal or
// local-maxima removal) Decompose alternates at every area.
type suboperator int

const (
	subL suboperator = iota // remove local minima
	subU                    // remove local maxima
)

// Decompose runs the full LULU decomposition of image under cfg and
// returns the resulting pulse log. ctx may be nil (no instrumentation);
// the context.Context is polled only at area boundaries, per spec.md
// §4.5's cooperative-cancellation granularity — a cancellation that
// arrives mid-area lets both sub-operator fixpoints of that area finish,
// and is seen at the start of the next area, where Decompose returns
// Cancelled with every pulse extracted so far.
func Decompose(parent context.Context, image raster.Dense, cfg Config, ctx *BuildContext) (*pulse.Emitter, error) {
	ctx.StartTimer(TimerTotal)
	defer ctx.StopTimer(TimerTotal)

	shape := region.Shape{H: len(image), W: 0}
	if shape.H > 0 {
		shape.W = len(image[0])
	}

	res := label.Labels(image)
	ctx.Progressf("labelled %d initial region(s)", res.N)

	d := NewDecomposer(res, ctx)
	order := [2]suboperator{subL, subU}
	if cfg.Operator == UL {
		order = [2]suboperator{subU, subL}
	}

	for a := 1; d.live > 1 && a <= shape.H*shape.W; a++ {
		if parent != nil {
			select {
			case <-parent.Done():
				ctx.Warningf("cancelled at area %d with %d pulse(s) extracted", a, d.emit.Count())
				return d.emit, Cancelled
			default:
			}
		}

		ctx.StartTimer(TimerArea)
		for _, sub := range order {
			d.runSuboperator(a, sub)
			if d.live == 1 {
				break
			}
		}
		ctx.StopTimer(TimerArea)
	}

	if d.live == 1 {
		d.emitResidual()
	}

	ctx.Progressf("decomposition complete: %d pulse(s), %d region(s) remaining", d.emit.Count(), d.live)
	return d.emit, nil
}

// emitResidual emits the final pulse once decomposition has reduced the
// raster to a single region covering it entirely: every Merge retains the
// absorber's own value unchanged (region.Store.Merge never touches
// a.value, per spec.md §4.1 "Y* retains its value v(Y*)"), so the
// decomposition's signed deltas telescope to v(p) - v(root) for every
// original pixel p, where v(root) is the surviving region's original
// raster value. Without this pulse that v(root) term is never emitted
// anywhere and reconstruction is short by exactly v(root) on every
// pixel. Emitting it as an area-H*W pulse holding the root's own
// (untouched) value closes the identity: summing it back in restores
// v(p) exactly, and it is the only pulse whose region spans the whole
// raster.
func (d *Decomposer) emitResidual() {
	id := d.survivor()
	area := d.store.NNZ(id)
	value := d.store.Value(id)
	pulse.Emit(d.emit, d.store, id, area, value)
	d.ctx.Progressf("residual: region %d retains its original value %d over the full raster (area %d)", id, value, area)
}

// survivor returns the single region.ID still live once the outer loop
// has reduced the raster to one region. Only ever called when d.live==1.
func (d *Decomposer) survivor() region.ID {
	for _, id := range d.allIDs {
		if d.store.Live(id) {
			return id
		}
	}
	panic("dpt: emitResidual called with no live region")
}

// runSuboperator drives one sub-operator (local-min or local-max removal)
// to a fixpoint at the given area, per spec.md §4.5: "Repeat until no
// region of area exactly a satisfies the current extremum condition."
// Merging changes a region's neighbourhood (never its neighbours'
// values), so a region that wasn't extremal at the start of the pass can
// become extremal once a neighbour of it is absorbed elsewhere; the
// outer repeat loop below keeps scanning until a full sweep changes
// nothing.
func (d *Decomposer) runSuboperator(area int, sub suboperator) {
	d.ctx.StartTimer(TimerSuboperator)
	defer d.ctx.StopTimer(TimerSuboperator)

	work := d.regionsOfArea(area)
	for {
		changed := false
		for i := 0; i < len(work); i++ {
			id := work[i]
			if !d.store.Live(id) || d.store.NNZ(id) != area {
				continue
			}
			if absorber, ok := d.extremal(id, sub); ok {
				d.absorb(id, absorber, area, sub)
				changed = true
				// Defensive: per spec.md §4.5 a merge may cause a
				// newly-equal-area region to appear; the absorber's
				// area only ever grows past `area`, but a future
				// sub-operator variant might not share that property,
				// so re-check and extend the work set rather than
				// assume it cannot happen.
				if d.store.Live(absorber) && d.store.NNZ(absorber) == area {
					work = append(work, absorber)
				}
			}
		}
		if !changed {
			break
		}
	}
}

// regionsOfArea returns every currently-live region of exactly area
// pixels, in ascending ID order, per spec.md §4.5's processing order.
func (d *Decomposer) regionsOfArea(area int) []region.ID {
	var ids []region.ID
	for _, id := range d.allIDs {
		if d.store.Live(id) && d.store.NNZ(id) == area {
			ids = append(ids, id)
		}
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// extremal reports whether id is a strict local extremum under sub (a
// local minimum for subL, a local maximum for subU), per spec.md §4.5.
// A region with no live neighbours has no absorber and is reported as
// not extremal (ok is false); that region is the whole raster, which
// Decompose's live==1 check already stops the outer loop for. When
// id is extremal, extremal also selects its absorber: the neighbour
// whose value is closest to id's, ties broken by the smallest ID,
// exactly as spec.md §4.5 specifies.
func (d *Decomposer) extremal(id region.ID, sub suboperator) (absorber region.ID, ok bool) {
	v := d.store.Value(id)
	neighbours := d.idx.Neighbours(id)
	if len(neighbours) == 0 {
		return -1, false
	}

	for _, n := range neighbours {
		nv := d.store.Value(n)
		switch sub {
		case subL:
			if nv <= v {
				return -1, false
			}
		case subU:
			if nv >= v {
				return -1, false
			}
		}
	}

	best := neighbours[0]
	bestDiff := abs(d.store.Value(best) - v)
	for _, n := range neighbours[1:] {
		diff := abs(d.store.Value(n) - v)
		if diff < bestDiff {
			best, bestDiff = n, diff
		}
	}
	return best, true
}

// absorb merges id into absorber, emitting the signed pulse v(id) minus
// the absorber's value before the merge, per spec.md §4.4. Any neighbour
// that now touches absorber and holds the same value is folded into it
// as well, without a pulse, so adjacent live regions never share a value.
func (d *Decomposer) absorb(id, absorber region.ID, area int, sub suboperator) {
	delta := d.store.Value(id) - d.store.Value(absorber)
	pulse.Emit(d.emit, d.store, id, area, delta)
	d.store.Merge(absorber, id)
	d.idx.Merge(absorber, id)
	d.live--
	d.ctx.Progressf("area %d: absorbed region %d into %d (sub=%d, delta=%d)", area, id, absorber, sub, delta)

	v := d.store.Value(absorber)
	for _, n := range d.idx.Neighbours(absorber) {
		if d.store.Value(n) == v {
			d.store.Merge(absorber, n)
			d.idx.Merge(absorber, n)
			d.live--
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
