// Package render holds the pixel conversion shared by the image-producing
// renderers.
package render

import (
	"image"
	"image/color"

	"simwall/pkg/life"
)

// FillRGBA converts a grid into RGBA pixels in buf, one pixel per cell in
// row-major order. buf must hold 4*Height*Width bytes.
func FillRGBA(buf []byte, g *life.Grid, on, off color.Color) {
	rOn, gOn, bOn, aOn := on.RGBA()
	rOff, gOff, bOff, aOff := off.RGBA()
	w := g.Width()
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < w; c++ {
			base := (r*w + c) * 4
			if g.Alive(r, c) {
				buf[base+0] = uint8(rOn >> 8)
				buf[base+1] = uint8(gOn >> 8)
				buf[base+2] = uint8(bOn >> 8)
				buf[base+3] = uint8(aOn >> 8)
				continue
			}
			buf[base+0] = uint8(rOff >> 8)
			buf[base+1] = uint8(gOff >> 8)
			buf[base+2] = uint8(bOff >> 8)
			buf[base+3] = uint8(aOff >> 8)
		}
	}
}

// Image returns the grid as an RGBA image with one pixel per cell.
func Image(g *life.Grid, on, off color.Color) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width(), g.Height()))
	FillRGBA(img.Pix, g, on, off)
	return img
}
