package core

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrInvalidGeometry reports a grid extent that is not a positive integer.
var ErrInvalidGeometry = errors.New("invalid geometry")

// Geometry describes the row and column extents of a simulation grid. It is
// fixed for the lifetime of a run.
type Geometry struct {
	Height int
	Width  int
}

// Validate reports ErrInvalidGeometry when either extent is not positive.
func (g Geometry) Validate() error {
	if g.Height <= 0 || g.Width <= 0 {
		return errors.Wrapf(ErrInvalidGeometry, "height=%d width=%d", g.Height, g.Width)
	}
	return nil
}

// Cells returns the number of cells covered by the geometry.
func (g Geometry) Cells() int { return g.Height * g.Width }

// String formats the geometry as rows x columns.
func (g Geometry) String() string {
	return fmt.Sprintf("%dx%d", g.Height, g.Width)
}

// GeometryFromPixels derives a geometry from a display size in pixels and a
// square cell size.
func GeometryFromPixels(widthPx, heightPx, cellSize int) (Geometry, error) {
	if cellSize <= 0 {
		return Geometry{}, errors.Wrapf(ErrInvalidGeometry, "cell size %d", cellSize)
	}
	g := Geometry{Height: heightPx / cellSize, Width: widthPx / cellSize}
	if err := g.Validate(); err != nil {
		return Geometry{}, errors.Wrapf(err, "display %dx%d px at cell size %d", widthPx, heightPx, cellSize)
	}
	return g, nil
}

// GeometryFromTerminal derives a geometry from a terminal's row and column
// count. Cells are drawn two columns wide so the board stays roughly square.
func GeometryFromTerminal(rows, cols int) (Geometry, error) {
	g := Geometry{Height: rows, Width: cols / 2}
	if err := g.Validate(); err != nil {
		return Geometry{}, errors.Wrapf(err, "terminal %d rows x %d cols", rows, cols)
	}
	return g, nil
}
