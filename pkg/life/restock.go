package life

import "simwall/pkg/core"

// DeadFraction returns the share of dead cells in g.
func DeadFraction(g *Grid) float64 {
	total := len(g.cells)
	if total == 0 {
		return 0
	}
	return float64(total-g.Population()) / float64(total)
}

// Restock returns a copy of g where every dead cell independently comes alive
// with probability p. Living cells are kept.
func Restock(g *Grid, p float64, src core.Source) (*Grid, error) {
	if err := g.validate(); err != nil {
		return nil, err
	}
	if err := checkProbability(p); err != nil {
		return nil, err
	}
	next := g.Clone()
	for i, alive := range next.cells {
		if !alive {
			next.cells[i] = src.Float64() < p
		}
	}
	return next, nil
}
