//go:build ebiten

package window

import (
	"context"
	"errors"
	"image/color"
	"log"

	"simwall/internal/app"
	"simwall/internal/config"
	"simwall/internal/ui"
	"simwall/pkg/core"
	"simwall/pkg/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Game adapts a Simulation to the ebiten.Game interface.
type Game struct {
	ctx     context.Context
	sim     *app.Simulation
	painter *GridPainter
	hud     *ui.HUD

	onColor  color.RGBA
	offColor color.RGBA

	cellSize int
	circles  bool
	keybinds bool

	addMode  bool
	tickOnce bool
}

// NewGame constructs a Game for the provided simulation.
func NewGame(ctx context.Context, sim *app.Simulation, cfg *config.Config) *Game {
	on, off := cfg.Colors()
	geo := sim.Geometry()
	return &Game{
		ctx:      ctx,
		sim:      sim,
		painter:  NewGridPainter(geo.Width, geo.Height),
		hud:      ui.NewHUD(sim),
		onColor:  on,
		offColor: off,
		cellSize: cfg.CellSizeOr(DefaultCellSize),
		circles:  cfg.Circles,
		keybinds: !cfg.NoKeybinds,
	}
}

// Update handles per-frame input and advances the simulation.
func (g *Game) Update() error {
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if g.keybinds {
		if err := g.handleKeys(); err != nil {
			return err
		}
	}
	if g.hud != nil {
		g.hud.Update()
	}

	if g.addMode {
		return g.paint()
	}
	if !g.sim.Paused() || g.tickOnce {
		g.tickOnce = false
		if _, err := g.sim.Next(); err != nil {
			return err
		}
	}
	return nil
}

func (g *Game) handleKeys() error {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.sim.TogglePause()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		g.addMode = !g.addMode
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.tickOnce = true
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if err := g.sim.Clear(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.sim.Reset(); err != nil {
			return err
		}
	}
	return nil
}

// paint brings the cell under the cursor to life while the left button is held.
func (g *Game) paint() error {
	if !ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		return nil
	}
	x, y := ebiten.CursorPosition()
	r, c := y/g.cellSize, x/g.cellSize
	geo := g.sim.Geometry()
	if x < 0 || y < 0 || r >= geo.Height || c >= geo.Width {
		return nil
	}
	return g.sim.Paint(r, c)
}

// Draw renders the current generation.
func (g *Game) Draw(screen *ebiten.Image) {
	grid := g.sim.Current()
	if g.circles {
		g.drawCircles(screen, grid)
	} else {
		g.painter.Blit(screen, grid, g.onColor, g.offColor, g.cellSize)
	}
	if g.hud != nil {
		g.hud.Draw(screen, g.addMode)
	}
}

func (g *Game) drawCircles(screen *ebiten.Image, grid *life.Grid) {
	screen.Fill(g.offColor)
	radius := float32(g.cellSize) / 2
	for r := 0; r < grid.Height(); r++ {
		for c := 0; c < grid.Width(); c++ {
			if !grid.Alive(r, c) {
				continue
			}
			cx := float32(c*g.cellSize) + radius
			cy := float32(r*g.cellSize) + radius
			vector.DrawFilledCircle(screen, cx, cy, radius, g.onColor, true)
		}
	}
}

// Layout returns the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	geo := g.sim.Geometry()
	return geo.Width * g.cellSize, geo.Height * g.cellSize
}

// Window runs the simulation in an ebiten window.
type Window struct {
	cfg *config.Config
}

// Geometry divides the monitor resolution by the cell size.
func (w *Window) Geometry(cfg *config.Config) (core.Geometry, error) {
	width, height := ebiten.ScreenSizeInFullscreen()
	return core.GeometryFromPixels(width, height, cfg.CellSizeOr(DefaultCellSize))
}

// Run blocks in the ebiten loop until the window closes, a quit key is
// pressed or ctx is done.
func (w *Window) Run(ctx context.Context, sim *app.Simulation) error {
	game := NewGame(ctx, sim, w.cfg)
	geo := sim.Geometry()

	ebiten.SetWindowTitle("simwall")
	ebiten.SetTPS(max(1, int(w.cfg.FPS+0.5)))
	ebiten.SetWindowSize(geo.Width*game.cellSize, geo.Height*game.cellSize)
	ebiten.SetFullscreen(w.cfg.Fullscreen)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	log.Printf("window closed at generation %d", sim.Generation())
	return nil
}

func init() {
	app.Register(Name, func(cfg *config.Config) app.Renderer { return &Window{cfg: cfg} })
}
