// Package life implements Conway's Game of Life (B3/S23) on a toroidal grid.
//
// The board has no edges: neighbour lookups wrap modulo the grid extents, so
// a cell on row 0 sees row height-1 and a cell on column 0 sees column
// width-1. Every generation is computed into fresh storage from a read-only
// predecessor.
package life

import (
	"golang.org/x/sync/errgroup"

	"simwall/pkg/core"
)

// DefaultAliveProbability is the chance that a cell starts alive when no
// probability is configured.
const DefaultAliveProbability = 0.2

// Initialize returns a grid where each cell is independently alive with
// probability p. Cells draw from src in row-major order, so a seeded source
// reproduces the same grid.
func Initialize(geo core.Geometry, p float64, src core.Source) (*Grid, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	if err := checkProbability(p); err != nil {
		return nil, err
	}
	g := newGrid(geo)
	core.FillBernoulli(src, g.cells, p)
	return g, nil
}

// NextState applies the B3/S23 rule to a single cell.
func NextState(alive bool, neighbors int) bool {
	if alive {
		return neighbors == 2 || neighbors == 3
	}
	return neighbors == 3
}

// Step computes the next generation of g. The input is not modified.
func Step(g *Grid) (*Grid, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	next := newGrid(g.geo)
	stepRows(g, next, wrapSpans(g.geo.Width), 0, g.geo.Height)
	return next, nil
}

// StepParallel computes the same successor as Step, splitting rows into
// bands evaluated by up to workers goroutines.
func StepParallel(g *Grid, workers int) (*Grid, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	h := g.geo.Height
	if workers <= 1 || h < 2 {
		return Step(g)
	}
	workers = min(workers, h)

	var (
		eg   errgroup.Group
		next = newGrid(g.geo)
		cols = wrapSpans(g.geo.Width)
		band = (h + workers - 1) / workers
	)
	for start := 0; start < h; start += band {
		end := min(start+band, h)
		eg.Go(func() error {
			stepRows(g, next, cols, start, end)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return next, nil
}

// span lists the distinct indices of a cell and its two wrapped neighbours
// along one axis. Extents below three collapse duplicates so no neighbour is
// counted twice.
type span struct {
	idx [3]int
	n   int
}

func wrapSpan(i, extent int) span {
	var s span
	for d := -1; d <= 1; d++ {
		j := (i + d + extent) % extent
		if !containsIndex(s.idx[:s.n], j) {
			s.idx[s.n] = j
			s.n++
		}
	}
	return s
}

func containsIndex(idx []int, v int) bool {
	for _, x := range idx {
		if x == v {
			return true
		}
	}
	return false
}

func wrapSpans(extent int) []span {
	spans := make([]span, extent)
	for i := range spans {
		spans[i] = wrapSpan(i, extent)
	}
	return spans
}

// stepRows writes rows [from, to) of next. Bands never overlap, so
// concurrent callers write disjoint slices of next.cells.
func stepRows(cur, next *Grid, cols []span, from, to int) {
	w, h := cur.geo.Width, cur.geo.Height
	for r := from; r < to; r++ {
		rows := wrapSpan(r, h)
		for c := 0; c < w; c++ {
			idx := r*w + c
			next.cells[idx] = NextState(cur.cells[idx], cur.countNeighbors(r, c, rows, cols[c]))
		}
	}
}

func (g *Grid) countNeighbors(r, c int, rows, cols span) int {
	w := g.geo.Width
	n := 0
	for _, rr := range rows.idx[:rows.n] {
		base := rr * w
		for _, cc := range cols.idx[:cols.n] {
			if rr == r && cc == c {
				continue
			}
			if g.cells[base+cc] {
				n++
			}
		}
	}
	return n
}
