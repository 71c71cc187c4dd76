package life

import (
	"slices"
	"strings"

	"github.com/pkg/errors"

	"simwall/pkg/core"
)

// Grid is one generation of the board, stored row-major. A Grid handed out by
// this package is never modified afterwards, so it is safe to share between
// readers.
type Grid struct {
	geo   core.Geometry
	cells []bool
}

// NewGrid returns an all-dead grid of the given geometry.
func NewGrid(geo core.Geometry) (*Grid, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	return newGrid(geo), nil
}

func newGrid(geo core.Geometry) *Grid {
	return &Grid{geo: geo, cells: make([]bool, geo.Cells())}
}

// GridFromRows copies the given rows into a new grid. Rows must be non-empty
// and of equal length.
func GridFromRows(rows [][]bool) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, errors.Wrap(ErrInvalidGrid, "no cells")
	}
	geo := core.Geometry{Height: len(rows), Width: len(rows[0])}
	g := newGrid(geo)
	for r, row := range rows {
		if len(row) != geo.Width {
			return nil, errors.Wrapf(ErrInvalidGrid, "row %d has %d cells, want %d", r, len(row), geo.Width)
		}
		copy(g.cells[r*geo.Width:], row)
	}
	return g, nil
}

// ParseGrid builds a grid from text rows separated by newlines. '#', 'O', '1'
// and '*' are alive, '.' and '0' are dead. Surrounding whitespace on each row
// is ignored.
func ParseGrid(s string) (*Grid, error) {
	lines := strings.Split(strings.TrimSpace(s), "\n")
	rows := make([][]bool, len(lines))
	for r, line := range lines {
		line = strings.TrimSpace(line)
		rows[r] = make([]bool, len(line))
		for c, ch := range []byte(line) {
			switch {
			case isAliveByte(ch):
				rows[r][c] = true
			case ch == '.' || ch == '0':
			default:
				return nil, errors.Wrapf(ErrInvalidGrid, "row %d col %d: unexpected %q", r, c, ch)
			}
		}
	}
	return GridFromRows(rows)
}

func isAliveByte(ch byte) bool {
	return ch == '#' || ch == 'O' || ch == '1' || ch == '*'
}

// Geometry returns the grid extents.
func (g *Grid) Geometry() core.Geometry { return g.geo }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.geo.Height }

// Width returns the number of columns.
func (g *Grid) Width() int { return g.geo.Width }

// Alive reports whether the cell at (r, c) is alive. Coordinates outside the
// grid report dead.
func (g *Grid) Alive(r, c int) bool {
	if r < 0 || r >= g.geo.Height || c < 0 || c >= g.geo.Width {
		return false
	}
	return g.cells[r*g.geo.Width+c]
}

// Population returns the number of living cells.
func (g *Grid) Population() (count int) {
	for _, alive := range g.cells {
		if alive {
			count++
		}
	}
	return
}

// Rows returns a copy of the grid as a slice of rows.
func (g *Grid) Rows() [][]bool {
	rows := make([][]bool, g.geo.Height)
	for r := range rows {
		rows[r] = slices.Clone(g.cells[r*g.geo.Width : (r+1)*g.geo.Width])
	}
	return rows
}

// Equal reports whether both grids have the same geometry and cells.
func (g *Grid) Equal(o *Grid) bool {
	if g == nil || o == nil {
		return g == o
	}
	return g.geo == o.geo && slices.Equal(g.cells, o.cells)
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{geo: g.geo, cells: slices.Clone(g.cells)}
}

// String renders the grid with '#' for alive and '.' for dead cells.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.geo.Width + 1) * g.geo.Height)
	for r := 0; r < g.geo.Height; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, alive := range g.cells[r*g.geo.Width : (r+1)*g.geo.Width] {
			if alive {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
	}
	return b.String()
}

func (g *Grid) validate() error {
	if g == nil {
		return errors.Wrap(ErrInvalidGrid, "nil grid")
	}
	if g.geo.Validate() != nil || len(g.cells) != g.geo.Cells() {
		return errors.Wrapf(ErrInvalidGrid, "geometry %v with %d cells", g.geo, len(g.cells))
	}
	return nil
}
