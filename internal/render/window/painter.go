//go:build ebiten

package window

import (
	"image/color"

	"simwall/internal/render"
	"simwall/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter updates a single RGBA image from a grid, one pixel per cell.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the grid into the painter image and draws it scaled by scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, g *life.Grid, on, off color.Color, scale int) {
	if g.Width() != gp.w || g.Height() != gp.h {
		return
	}
	render.FillRGBA(gp.buf, g, on, off)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
