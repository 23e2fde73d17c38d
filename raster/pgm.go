package raster

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arl/lulu2d/region"
)

// WritePGM writes d as a plain (ASCII, "P2") portable graymap, the
// simplest raster format the standard library doesn't already provide an
// encoder for. Pulse values can be negative and unbounded, so unlike a
// real PGM's 0-255 samples this is a loose, lulu2d-specific dialect:
// still whitespace-separated decimal integers, still readable by ReadPGM,
// just not by a general-purpose image viewer. Image loading proper is out
// of scope for the core (spec.md §1); this exists only so the CLI can
// round-trip the rasters it decomposes.
func WritePGM(w io.Writer, d Dense) error {
	bw := bufio.NewWriter(w)
	h := len(d)
	width := 0
	if h > 0 {
		width = len(d[0])
	}
	if _, err := fmt.Fprintf(bw, "P2\n%d %d\n255\n", width, h); err != nil {
		return err
	}
	for _, row := range d {
		strs := make([]string, len(row))
		for i, v := range row {
			strs[i] = strconv.Itoa(v)
		}
		if _, err := fmt.Fprintln(bw, strings.Join(strs, " ")); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// ReadPGM parses the dialect WritePGM produces: a "P2" header, a
// width/height line, a (disregarded) max-value line, then width*height
// whitespace-separated integers.
func ReadPGM(r io.Reader) (Dense, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	sc.Split(bufio.ScanWords)

	next := func() (string, error) {
		if !sc.Scan() {
			if err := sc.Err(); err != nil {
				return "", err
			}
			return "", io.ErrUnexpectedEOF
		}
		return sc.Text(), nil
	}

	magic, err := next()
	if err != nil {
		return nil, err
	}
	if magic != "P2" {
		return nil, fmt.Errorf("raster: unsupported PGM magic %q, want P2", magic)
	}

	width, err := nextInt(next)
	if err != nil {
		return nil, err
	}
	height, err := nextInt(next)
	if err != nil {
		return nil, err
	}
	if _, err := nextInt(next); err != nil { // max value, unused
		return nil, err
	}

	d := New(region.Shape{H: height, W: width})
	for r := 0; r < height; r++ {
		for c := 0; c < width; c++ {
			v, err := nextInt(next)
			if err != nil {
				return nil, err
			}
			d[r][c] = v
		}
	}
	return d, nil
}

func nextInt(next func() (string, error)) (int, error) {
	s, err := next()
	if err != nil {
		return 0, err
	}
	return strconv.Atoi(s)
}
