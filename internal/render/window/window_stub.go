//go:build !ebiten

package window

import (
	"context"

	"github.com/pkg/errors"

	"simwall/internal/app"
	"simwall/internal/config"
	"simwall/pkg/core"
)

var errNoGUI = errors.New("the window renderer requires building with the 'ebiten' tag")

// Window is a placeholder that reports the missing build tag.
type Window struct{}

// Geometry always reports that the GUI build tag is missing.
func (Window) Geometry(*config.Config) (core.Geometry, error) {
	return core.Geometry{}, errNoGUI
}

// Run always reports that the GUI build tag is missing.
func (Window) Run(context.Context, *app.Simulation) error {
	return errNoGUI
}

func init() {
	app.Register(Name, func(*config.Config) app.Renderer { return Window{} })
}
