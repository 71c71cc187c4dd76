package life

import (
	"github.com/pkg/errors"

	"simwall/pkg/core"
)

// Failures are reported wrapped with context; test for them with errors.Is.
var (
	// ErrInvalidGeometry reports a non-positive height or width.
	ErrInvalidGeometry = core.ErrInvalidGeometry
	// ErrInvalidProbability reports an alive probability outside [0, 1].
	ErrInvalidProbability = errors.New("invalid probability")
	// ErrInvalidGrid reports a nil or malformed grid, or one whose geometry
	// does not match the engine's.
	ErrInvalidGrid = errors.New("invalid grid")
	// ErrNotInitialized reports an engine operation before Initialize or Load.
	ErrNotInitialized = errors.New("engine not initialized")
	// ErrOutOfRange reports a cell coordinate outside the grid.
	ErrOutOfRange = errors.New("cell out of range")
	// ErrPatternTooLarge reports a pattern that does not fit the geometry.
	ErrPatternTooLarge = errors.New("pattern larger than grid")
)

func checkProbability(p float64) error {
	// NaN fails both comparisons.
	if !(p >= 0 && p <= 1) {
		return errors.Wrapf(ErrInvalidProbability, "%v not in [0,1]", p)
	}
	return nil
}
