package app

import (
	"time"

	"github.com/pkg/errors"

	"simwall/internal/config"
	"simwall/pkg/core"
	"simwall/pkg/life"
)

// Simulation couples a life.Engine with the seeding and restocking policy of
// a run. Renderers call Next once per frame and read Current to draw.
type Simulation struct {
	cfg    *config.Config
	geo    core.Geometry
	engine *life.Engine

	seed   int64
	rng    *core.RNG
	paused bool
}

// Stats summarises the current generation for status displays.
type Stats struct {
	Generation int
	Population int
	Density    float64
	Seed       int64
}

// NewSimulation prepares a simulation of the given geometry. Call Start
// before the first Next.
func NewSimulation(cfg *config.Config, geo core.Geometry) *Simulation {
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulation{
		cfg:    cfg,
		geo:    geo,
		engine: life.New(life.WithWorkers(cfg.Workers)),
		seed:   seed,
		rng:    core.NewRNG(seed),
	}
}

// Config returns the run configuration.
func (s *Simulation) Config() *config.Config { return s.cfg }

// Geometry returns the grid extents.
func (s *Simulation) Geometry() core.Geometry { return s.geo }

// Start installs the initial generation: an empty board with -clear, a
// centred pattern with -pattern, perlin-clustered cells with -noise, and
// uniform random cells otherwise.
func (s *Simulation) Start() error {
	var (
		g   *life.Grid
		err error
	)
	switch {
	case s.cfg.Clear:
		g, err = life.NewGrid(s.geo)
	case s.cfg.Pattern != "":
		g, err = life.LoadPattern(s.cfg.Pattern, s.geo)
	case s.cfg.NoiseScale > 0:
		g, err = life.InitializeNoise(s.geo, s.cfg.Probability, s.seed, s.cfg.NoiseScale)
	default:
		g, err = life.Initialize(s.geo, s.cfg.Probability, s.rng)
	}
	if err != nil {
		return errors.Wrap(err, "seed board")
	}
	return s.engine.Load(g)
}

// Reset reseeds the board with a new seed drawn from the run's generator.
func (s *Simulation) Reset() error {
	s.seed = s.rng.Int64()
	s.rng = core.NewRNG(s.seed)
	return s.Start()
}

// Next advances one generation and restocks the board if it has emptied.
func (s *Simulation) Next() (*life.Grid, error) {
	if _, err := s.engine.Advance(); err != nil {
		return nil, err
	}
	if !s.cfg.NoRestock {
		if _, err := s.engine.Restock(s.cfg.RestockThreshold, s.cfg.Probability, s.rng); err != nil {
			return nil, err
		}
	}
	return s.engine.Current(), nil
}

// Current returns the generation to draw.
func (s *Simulation) Current() *life.Grid { return s.engine.Current() }

// Generation returns the number of steps since the board was seeded.
func (s *Simulation) Generation() int { return s.engine.Generation() }

// Paused reports whether the renderer should hold the current generation.
func (s *Simulation) Paused() bool { return s.paused }

// TogglePause flips the paused state.
func (s *Simulation) TogglePause() { s.paused = !s.paused }

// SetPaused sets the paused state.
func (s *Simulation) SetPaused(paused bool) { s.paused = paused }

// Paint brings the cell at (r, c) to life.
func (s *Simulation) Paint(r, c int) error { return s.engine.Set(r, c, true) }

// Clear kills every cell.
func (s *Simulation) Clear() error { return s.engine.Clear() }

// Stats reports the current generation's counters.
func (s *Simulation) Stats() Stats {
	g := s.engine.Current()
	st := Stats{Generation: s.engine.Generation(), Seed: s.seed}
	if g == nil {
		return st
	}
	st.Population = g.Population()
	st.Density = float64(st.Population) / float64(s.geo.Cells())
	return st
}
