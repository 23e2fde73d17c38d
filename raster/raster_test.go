package raster

import (
	"bytes"
	"testing"

	"github.com/arl/lulu2d/pulse"
	"github.com/arl/lulu2d/region"
)

func TestReconstructEmptyEmitterYieldsZeroRaster(t *testing.T) {
	shape := region.Shape{H: 2, W: 3}
	res, err := Reconstruct(pulse.NewEmitter(), shape, Options{})
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	want := New(shape)
	if !Equal(res.Raster, want) {
		t.Fatalf("Raster = %v, want all zero", res.Raster)
	}
	if res.TotalPulses != 0 {
		t.Fatalf("TotalPulses = %d, want 0", res.TotalPulses)
	}
}

func TestReconstructAreaThreshold(t *testing.T) {
	store := region.NewStore(region.Shape{H: 2, W: 2})
	small, _ := store.Create(5, 0, [][]region.Interval{{{0, 1}}})
	big, _ := store.Create(2, 0, [][]region.Interval{{{0, 2}}, {{0, 2}}})

	e := pulse.NewEmitter()
	pulse.Emit(e, store, small, 1, 5)
	pulse.Emit(e, store, big, 4, 2)

	shape := region.Shape{H: 2, W: 2}
	res, err := Reconstruct(e, shape, Options{MinArea: 2})
	if err != nil {
		t.Fatalf("Reconstruct: %v", err)
	}
	if res.TotalPulses != 1 {
		t.Fatalf("TotalPulses = %d, want 1 (area-1 pulse excluded)", res.TotalPulses)
	}
	if res.Raster[0][0] != 2 {
		t.Fatalf("Raster[0][0] = %d, want 2", res.Raster[0][0])
	}
}

func TestPGMRoundTrip(t *testing.T) {
	d := Dense{
		{0, 1, 2},
		{-3, 4, 255},
	}
	var buf bytes.Buffer
	if err := WritePGM(&buf, d); err != nil {
		t.Fatalf("WritePGM: %v", err)
	}
	got, err := ReadPGM(&buf)
	if err != nil {
		t.Fatalf("ReadPGM: %v", err)
	}
	if !Equal(got, d) {
		t.Fatalf("round trip mismatch: got %v, want %v", got, d)
	}
}

func TestReadPGMRejectsBadMagic(t *testing.T) {
	_, err := ReadPGM(bytes.NewBufferString("P5\n1 1\n255\n0\n"))
	if err == nil {
		t.Fatalf("expected an error for an unsupported magic number")
	}
}
