// Package imgexport writes one PNG per generation, scaled so each cell is a
// square block of pixels.
package imgexport

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"sync/atomic"

	"github.com/pkg/errors"
	"golang.org/x/image/draw"

	"simwall/internal/app"
	"simwall/internal/config"
	"simwall/internal/render"
	"simwall/pkg/core"
	"simwall/pkg/life"
)

const (
	// Name is the renderer's registry key.
	Name = "png"

	// DefaultCellSize is the block size used when no -s is given.
	DefaultCellSize = 10

	// The export has no monitor to measure, so it sizes the board for a
	// 1080p screen.
	screenWidth  = 1920
	screenHeight = 1080

	bufferFrames = 4
)

// Exporter renders generations to PNG files in an output directory.
type Exporter struct {
	outDir      string
	generations int
	cellSize    int
	on, off     color.RGBA
}

// New constructs an Exporter from the run configuration.
func New(cfg *config.Config) *Exporter {
	on, off := cfg.Colors()
	return &Exporter{
		outDir:      cfg.OutDir,
		generations: cfg.Generations,
		cellSize:    cfg.CellSizeOr(DefaultCellSize),
		on:          on,
		off:         off,
	}
}

// Geometry sizes the board for a 1080p screen at the configured cell size.
func (e *Exporter) Geometry(*config.Config) (core.Geometry, error) {
	return core.GeometryFromPixels(screenWidth, screenHeight, e.cellSize)
}

// Run writes generations 0 through n-1. Stepping and encoding overlap: the
// calling goroutine advances the simulation while a second goroutine encodes
// frames from a bounded buffer.
func (e *Exporter) Run(ctx context.Context, sim *app.Simulation) error {
	if err := os.MkdirAll(e.outDir, 0o755); err != nil {
		return errors.Wrapf(err, "create output directory %s", e.outDir)
	}

	var (
		buf     = newFrameBuffer(bufferFrames)
		failed  atomic.Bool
		encErr  error
		done    = make(chan struct{})
		nameFmt = "%0" + strconv.Itoa(digits(e.generations-1)) + "d.png"
	)

	go func() {
		defer close(done)
		for {
			f := buf.take()
			if f.grid == nil {
				return
			}
			if encErr != nil {
				continue
			}
			path := filepath.Join(e.outDir, fmt.Sprintf(nameFmt, f.gen))
			if err := e.writeFrame(path, f.grid); err != nil {
				encErr = err
				failed.Store(true)
				continue
			}
			log.Printf("generation %d -> %s", f.gen, path)
		}
	}()

	stepErr := e.produce(ctx, sim, buf, &failed)
	buf.put(frame{})
	<-done

	if stepErr != nil {
		return stepErr
	}
	return encErr
}

func (e *Exporter) produce(ctx context.Context, sim *app.Simulation, buf *frameBuffer, failed *atomic.Bool) error {
	grid := sim.Current()
	for gen := 0; gen < e.generations; gen++ {
		if ctx.Err() != nil || failed.Load() {
			return nil
		}
		if gen > 0 {
			next, err := sim.Next()
			if err != nil {
				return errors.Wrapf(err, "step to generation %d", gen)
			}
			grid = next
		}
		buf.put(frame{gen: gen, grid: grid})
	}
	return nil
}

func (e *Exporter) writeFrame(path string, g *life.Grid) error {
	img := e.scale(g)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encode %s", path)
	}
	return errors.Wrapf(f.Close(), "close %s", path)
}

// scale converts the grid to an image with cellSize x cellSize pixel blocks.
func (e *Exporter) scale(g *life.Grid) *image.RGBA {
	src := render.Image(g, e.on, e.off)
	dst := image.NewRGBA(image.Rect(0, 0, g.Width()*e.cellSize, g.Height()*e.cellSize))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst
}

func digits(n int) int {
	d := 2
	for limit := 100; n >= limit; limit *= 10 {
		d++
	}
	return d
}

func init() {
	app.Register(Name, func(cfg *config.Config) app.Renderer { return New(cfg) })
}
