// Package raster implements the Reconstructor of spec.md §4.6 — painting
// a PulseMap back into a dense image — plus the PGM raster I/O the CLI
// uses to round-trip test images (out of scope for the core per spec.md
// §1, an ambient convenience only).
package raster

import (
	"github.com/arl/lulu2d/pulse"
	"github.com/arl/lulu2d/region"
)

// Dense is an H×W integer raster, row-major.
type Dense [][]int

// New returns a zeroed Dense raster of the given shape.
func New(shape region.Shape) Dense {
	d := make(Dense, shape.H)
	for r := range d {
		d[r] = make([]int, shape.W)
	}
	return d
}

// Equal reports whether two dense rasters hold identical values (used by
// the P1 exact-reconstruction property in tests).
func Equal(a, b Dense) bool {
	if len(a) != len(b) {
		return false
	}
	for r := range a {
		if len(a[r]) != len(b[r]) {
			return false
		}
		for c := range a[r] {
			if a[r][c] != b[r][c] {
				return false
			}
		}
	}
	return true
}

// Options bounds which pulses Reconstruct paints, by area. A zero bound
// means 0 (MinArea) or unbounded (MaxArea).
type Options struct {
	MinArea int
	MaxArea int // 0 means unbounded
}

// Result is the output of Reconstruct: the painted raster plus the
// sorted-ascending unique areas that contributed and how many pulses
// contributed at each.
type Result struct {
	Raster      Dense
	Areas       []int
	Counts      []int
	TotalPulses int
}

// Reconstruct paints every pulse in e whose area lies within
// [opts.MinArea, opts.MaxArea] (opts.MaxArea==0 meaning unbounded) onto a
// zeroed raster of the given shape, in Add mode, and reports which areas
// contributed. With no thresholds the result equals the original image
// Labeller/Decomposer started from (the round-trip guarantee of
// spec.md §4.6). Reconstruct rejects a pulse whose recorded shape
// doesn't match shape with ShapeMismatch: that can only happen if a
// caller hands it an Emitter built against a differently-sized raster.
func Reconstruct(e *pulse.Emitter, shape region.Shape, opts Options) (Result, error) {
	store := region.NewStore(shape)
	out := New(shape)

	var areas []int
	var counts []int
	total := 0

	for _, g := range e.Groups() {
		if g.Area < opts.MinArea {
			continue
		}
		if opts.MaxArea != 0 && g.Area > opts.MaxArea {
			continue
		}
		n := 0
		for _, rec := range g.Records {
			if rec.Shape != shape {
				return Result{}, region.NewShapeMismatchError(rec.Shape, shape)
			}
			id, err := store.Create(rec.Value, rec.StartRow, rec.RowSpans)
			if err != nil {
				panic(err)
			}
			store.Paint(id, out, rec.Value, region.Add)
			n++
		}
		if n > 0 {
			areas = append(areas, g.Area)
			counts = append(counts, n)
			total += n
		}
	}

	// e.Groups() already yields ascending-area groups, so areas/counts
	// are built in sorted order as a side effect of the loop above.
	return Result{Raster: out, Areas: areas, Counts: counts, TotalPulses: total}, nil
}
