package life

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"simwall/pkg/core"
)

// ParsePattern reads a text pattern and centres it on an otherwise dead grid
// of the given geometry. Each line is a row; '1', '#', 'O' and '*' mark living
// cells and any other character is dead. Trailing blank lines are ignored.
func ParsePattern(r io.Reader, geo core.Geometry) (*Grid, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}

	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "read pattern")
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	width := 0
	for _, line := range lines {
		width = max(width, len(line))
	}
	height := len(lines)
	if width == 0 {
		return nil, errors.Wrap(ErrInvalidGrid, "empty pattern")
	}
	if width > geo.Width || height > geo.Height {
		return nil, errors.Wrapf(ErrPatternTooLarge, "%dx%d pattern on %v grid", height, width, geo)
	}

	g := newGrid(geo)
	top := (geo.Height - height) / 2
	left := (geo.Width - width) / 2
	for y, line := range lines {
		row := (top + y) * geo.Width
		for x := 0; x < len(line); x++ {
			g.cells[row+left+x] = isAliveByte(line[x])
		}
	}
	return g, nil
}

// LoadPattern reads a pattern file with ParsePattern.
func LoadPattern(path string, geo core.Geometry) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] failed to open file: %s", path)
	}
	defer f.Close()

	g, err := ParsePattern(f, geo)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadPattern] %s", path)
	}
	return g, nil
}
