package life

import (
	"github.com/pkg/errors"

	"simwall/pkg/core"
)

// Engine owns the current generation of a simulation run. It starts
// uninitialized; Initialize or Load make it ready, fixing the geometry for the
// rest of the run.
//
// Grids returned by the engine are snapshots: later edits and steps replace
// the engine's grid instead of writing into one already handed out.
type Engine struct {
	workers int

	geo core.Geometry
	cur *Grid
	gen int
}

// Option configures an Engine.
type Option func(*Engine)

// WithWorkers sets how many goroutines evaluate a generation. Values below two
// step on the calling goroutine.
func WithWorkers(n int) Option {
	return func(e *Engine) { e.workers = n }
}

// New returns an uninitialized engine.
func New(opts ...Option) *Engine {
	e := &Engine{workers: 1}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Ready reports whether the engine holds a grid.
func (e *Engine) Ready() bool { return e.cur != nil }

// Geometry returns the geometry fixed by the last Initialize or Load.
func (e *Engine) Geometry() core.Geometry { return e.geo }

// Current returns the current generation, or nil before initialization.
func (e *Engine) Current() *Grid { return e.cur }

// Generation returns how many steps have been taken since the grid was
// installed. The installed grid is generation 0.
func (e *Engine) Generation() int { return e.gen }

// Initialize replaces any existing grid with a random one.
func (e *Engine) Initialize(geo core.Geometry, p float64, src core.Source) (*Grid, error) {
	g, err := Initialize(geo, p, src)
	if err != nil {
		return nil, err
	}
	e.install(g)
	return g, nil
}

// Load installs a prepared grid, such as a parsed pattern.
func (e *Engine) Load(g *Grid) error {
	if err := g.validate(); err != nil {
		return err
	}
	e.install(g)
	return nil
}

func (e *Engine) install(g *Grid) {
	e.geo = g.geo
	e.cur = g
	e.gen = 0
}

// Step returns the successor of g without touching the engine's state. g must
// match the engine's geometry.
func (e *Engine) Step(g *Grid) (*Grid, error) {
	if !e.Ready() {
		return nil, ErrNotInitialized
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	if g.geo != e.geo {
		return nil, errors.Wrapf(ErrInvalidGrid, "geometry %v, engine has %v", g.geo, e.geo)
	}
	return StepParallel(g, e.workers)
}

// Advance replaces the current grid with its successor and returns it.
func (e *Engine) Advance() (*Grid, error) {
	next, err := e.Step(e.cur)
	if err != nil {
		return nil, err
	}
	e.cur = next
	e.gen++
	return next, nil
}

// Set changes one cell of the current generation.
func (e *Engine) Set(r, c int, alive bool) error {
	if !e.Ready() {
		return ErrNotInitialized
	}
	if r < 0 || r >= e.geo.Height || c < 0 || c >= e.geo.Width {
		return errors.Wrapf(ErrOutOfRange, "(%d,%d) outside %v", r, c, e.geo)
	}
	idx := r*e.geo.Width + c
	if e.cur.cells[idx] == alive {
		return nil
	}
	next := e.cur.Clone()
	next.cells[idx] = alive
	e.cur = next
	return nil
}

// Clear kills every cell of the current generation.
func (e *Engine) Clear() error {
	if !e.Ready() {
		return ErrNotInitialized
	}
	e.cur = newGrid(e.geo)
	return nil
}

// Restock seeds new life into the current generation once the fraction of
// dead cells reaches threshold. It reports whether cells were added.
func (e *Engine) Restock(threshold, p float64, src core.Source) (bool, error) {
	if !e.Ready() {
		return false, ErrNotInitialized
	}
	if err := checkProbability(threshold); err != nil {
		return false, errors.Wrap(err, "restock threshold")
	}
	if DeadFraction(e.cur) < threshold {
		return false, nil
	}
	next, err := Restock(e.cur, p, src)
	if err != nil {
		return false, err
	}
	e.cur = next
	return true, nil
}
