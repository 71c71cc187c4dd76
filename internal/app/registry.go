package app

import (
	"context"
	"sort"

	"simwall/internal/config"
	"simwall/pkg/core"
)

// Renderer presents the generations of a Simulation. It owns the run loop:
// it decides when to call Next and stops calling it when the user quits or
// ctx is done. A Renderer that also implements io.Closer is closed when the
// run ends, whether or not Run was reached.
type Renderer interface {
	// Geometry derives the grid extents from the renderer's environment,
	// such as the terminal size or the monitor resolution.
	Geometry(cfg *config.Config) (core.Geometry, error)
	// Run drives the simulation until it finishes, the user quits or ctx is
	// cancelled.
	Run(ctx context.Context, sim *Simulation) error
}

// Factory constructs a Renderer for a run.
type Factory func(cfg *config.Config) Renderer

var renderers = map[string]Factory{}

// Register adds a renderer factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	renderers[name] = f
}

// Lookup returns the factory registered under name.
func Lookup(name string) (Factory, bool) {
	f, ok := renderers[name]
	return f, ok
}

// Names lists the registered renderers in sorted order.
func Names() []string {
	names := make([]string, 0, len(renderers))
	for name := range renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
