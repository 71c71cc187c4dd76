//go:build ebiten

package ui

import (
	"fmt"
	"image/color"

	"simwall/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

const (
	hudHeight  = 18
	hudPadding = 4
)

var (
	hudBackground = color.RGBA{R: 0, G: 0, B: 0, A: 0xb0}
	hudText       = color.RGBA{R: 0xe0, G: 0xe0, B: 0xe0, A: 0xff}
)

// HUD draws a one-line status bar over the top of the board. H toggles it.
type HUD struct {
	sim     *app.Simulation
	visible bool
}

// NewHUD constructs a HUD for the provided simulation. It starts hidden.
func NewHUD(sim *app.Simulation) *HUD {
	return &HUD{sim: sim}
}

// Update toggles visibility on H.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the status line when visible.
func (h *HUD) Draw(screen *ebiten.Image, addMode bool) {
	if !h.visible {
		return
	}
	w := screen.Bounds().Dx()
	vector.DrawFilledRect(screen, 0, 0, float32(w), hudHeight, hudBackground, false)
	face := basicfont.Face7x13
	text.Draw(screen, h.status(addMode), face, hudPadding, hudHeight-hudPadding-1, hudText)
}

func (h *HUD) status(addMode bool) string {
	st := h.sim.Stats()
	line := fmt.Sprintf("gen %d  pop %d (%.1f%%)  seed %d", st.Generation, st.Population, st.Density*100, st.Seed)
	if h.sim.Paused() {
		line += "  [paused]"
	}
	if addMode {
		line += "  [add]"
	}
	return line
}
