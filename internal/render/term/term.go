// Package term shows the simulation in a text terminal, two columns per cell.
package term

import (
	"context"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"simwall/internal/app"
	"simwall/internal/config"
	timing "simwall/internal/core"
	"simwall/pkg/core"
	"simwall/pkg/life"
)

// Name is the renderer's registry key.
const Name = "term"

// refreshRate is how often the loop polls for a due generation.
const refreshRate = 60

// Terminal draws generations with tcell.
type Terminal struct {
	fps      float64
	keybinds bool
	alive    tcell.Style
	dead     tcell.Style

	newScreen func() (tcell.Screen, error)
	screen    tcell.Screen
}

// New constructs a Terminal renderer from the run configuration.
func New(cfg *config.Config) *Terminal {
	on, off := cfg.Colors()
	return &Terminal{
		fps:       cfg.FPS,
		keybinds:  !cfg.NoKeybinds,
		alive:     tcell.StyleDefault.Background(toColor(on)).Foreground(toColor(on)),
		dead:      tcell.StyleDefault.Background(toColor(off)).Foreground(toColor(off)),
		newScreen: tcell.NewScreen,
	}
}

func toColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (t *Terminal) open() (tcell.Screen, error) {
	if t.screen != nil {
		return t.screen, nil
	}
	s, err := t.newScreen()
	if err != nil {
		return nil, errors.Wrap(err, "creating screen")
	}
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "initializing screen")
	}
	t.screen = s
	return s, nil
}

// Close restores the terminal. It is safe to call more than once.
func (t *Terminal) Close() error {
	if t.screen != nil {
		t.screen.Fini()
		t.screen = nil
	}
	return nil
}

// Geometry sizes the board to fill the terminal.
func (t *Terminal) Geometry(*config.Config) (core.Geometry, error) {
	s, err := t.open()
	if err != nil {
		return core.Geometry{}, err
	}
	cols, rows := s.Size()
	return core.GeometryFromTerminal(rows, cols)
}

// Run redraws the board once per generation until Escape or 'q' is pressed
// or ctx is done. Space pauses, 'c' clears and 'r' reseeds unless keybinds
// are disabled.
func (t *Terminal) Run(ctx context.Context, sim *app.Simulation) error {
	s, err := t.open()
	if err != nil {
		return err
	}
	defer t.Close()

	events := make(chan tcell.Event, 16)
	quit := make(chan struct{})
	defer close(quit)
	go s.ChannelEvents(events, quit)

	pace := timing.NewFixedStep(t.fps)
	tick := time.NewTicker(time.Second / refreshRate)
	defer tick.Stop()

	s.Clear()
	t.draw(s, sim.Current())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			stop, err := t.handle(s, ev, sim)
			if err != nil || stop {
				return err
			}
		case <-tick.C:
			if sim.Paused() || !pace.ShouldStep() {
				continue
			}
			g, err := sim.Next()
			if err != nil {
				return err
			}
			t.draw(s, g)
		}
	}
}

func (t *Terminal) handle(s tcell.Screen, ev tcell.Event, sim *app.Simulation) (bool, error) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		s.Sync()
		t.draw(s, sim.Current())
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q' {
			return true, nil
		}
		if !t.keybinds {
			return false, nil
		}
		switch ev.Rune() {
		case ' ':
			sim.TogglePause()
		case 'c':
			if err := sim.Clear(); err != nil {
				return false, err
			}
		case 'r':
			if err := sim.Reset(); err != nil {
				return false, err
			}
		default:
			return false, nil
		}
		t.draw(s, sim.Current())
	}
	return false, nil
}

func (t *Terminal) draw(s tcell.Screen, g *life.Grid) {
	for r := 0; r < g.Height(); r++ {
		for c := 0; c < g.Width(); c++ {
			style := t.dead
			if g.Alive(r, c) {
				style = t.alive
			}
			s.SetContent(c*2, r, ' ', nil, style)
			s.SetContent(c*2+1, r, ' ', nil, style)
		}
	}
	s.Show()
}

func init() {
	app.Register(Name, func(cfg *config.Config) app.Renderer { return New(cfg) })
}
