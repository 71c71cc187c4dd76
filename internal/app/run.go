package app

import (
	"context"
	"io"
	"log"
	"strings"

	"github.com/pkg/errors"

	"simwall/internal/config"
	"simwall/pkg/core"
)

// Run looks up the configured renderer, sizes and seeds the board, and hands
// control to the renderer until it returns. Renderers that hold resources
// from Geometry onwards implement io.Closer and are closed on every path.
func Run(ctx context.Context, cfg *config.Config) error {
	factory, ok := Lookup(cfg.Renderer)
	if !ok {
		return errors.Errorf("unknown renderer %q (available: %s)", cfg.Renderer, strings.Join(Names(), ", "))
	}
	r := factory(cfg)
	if c, ok := r.(io.Closer); ok {
		defer c.Close()
	}

	geo, err := resolveGeometry(cfg, r)
	if err != nil {
		return err
	}

	sim := NewSimulation(cfg, geo)
	if err := sim.Start(); err != nil {
		return err
	}
	log.Printf("%s renderer on %v grid, seed %d", cfg.Renderer, geo, sim.Stats().Seed)
	return r.Run(ctx, sim)
}

func resolveGeometry(cfg *config.Config, r Renderer) (core.Geometry, error) {
	if cfg.Rows > 0 || cfg.Cols > 0 {
		geo := core.Geometry{Height: cfg.Rows, Width: cfg.Cols}
		return geo, errors.Wrap(geo.Validate(), "-rows/-cols")
	}
	geo, err := r.Geometry(cfg)
	if err != nil {
		return core.Geometry{}, errors.Wrapf(err, "%s geometry", cfg.Renderer)
	}
	return geo, nil
}
