package app

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"simwall/internal/config"
	"simwall/pkg/core"
	"simwall/pkg/life"
)

type recordingRenderer struct {
	geo    core.Geometry
	geoErr error
	steps  int
	seen   []*life.Grid
}

func (r *recordingRenderer) Geometry(*config.Config) (core.Geometry, error) { return r.geo, r.geoErr }

func (r *recordingRenderer) Run(ctx context.Context, sim *Simulation) error {
	r.seen = append(r.seen, sim.Current())
	for i := 0; i < r.steps; i++ {
		if ctx.Err() != nil {
			return nil
		}
		g, err := sim.Next()
		if err != nil {
			return err
		}
		r.seen = append(r.seen, g)
	}
	return nil
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.Seed = 99
	cfg.Workers = 2
	return cfg
}

func TestRunUsesRendererGeometry(t *testing.T) {
	rec := &recordingRenderer{geo: core.Geometry{Height: 6, Width: 9}, steps: 4}
	Register("recording", func(*config.Config) Renderer { return rec })

	cfg := testConfig()
	cfg.Renderer = "recording"
	if err := Run(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}
	if len(rec.seen) != 5 {
		t.Fatalf("renderer saw %d generations, want 5", len(rec.seen))
	}
	for i, g := range rec.seen {
		if g.Geometry() != rec.geo {
			t.Fatalf("generation %d has geometry %v, want %v", i, g.Geometry(), rec.geo)
		}
	}
}

func TestRunExplicitGeometryWins(t *testing.T) {
	rec := &recordingRenderer{geoErr: errors.New("no terminal")}
	Register("headless", func(*config.Config) Renderer { return rec })

	cfg := testConfig()
	cfg.Renderer = "headless"
	cfg.Rows, cfg.Cols = 4, 7
	if err := Run(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}
	if got := rec.seen[0].Geometry(); got != (core.Geometry{Height: 4, Width: 7}) {
		t.Fatalf("geometry=%v, want 4x7", got)
	}

	cfg.Rows, cfg.Cols = 0, 0
	if err := Run(context.Background(), cfg); err == nil {
		t.Fatal("renderer geometry failure must surface")
	}
}

func TestRunUnknownRenderer(t *testing.T) {
	cfg := testConfig()
	cfg.Renderer = "teletype"
	if err := Run(context.Background(), cfg); err == nil {
		t.Fatal("unknown renderer must fail")
	}
}

func TestSimulationDeterministicSeed(t *testing.T) {
	geo := core.Geometry{Height: 12, Width: 12}
	a := NewSimulation(testConfig(), geo)
	b := NewSimulation(testConfig(), geo)
	if err := a.Start(); err != nil {
		t.Fatal(err)
	}
	if err := b.Start(); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		ga, err := a.Next()
		if err != nil {
			t.Fatal(err)
		}
		gb, err := b.Next()
		if err != nil {
			t.Fatal(err)
		}
		if !ga.Equal(gb) {
			t.Fatalf("generation %d differs for equal seeds", i+1)
		}
	}
	if a.Generation() != 5 || a.Stats().Generation != 5 {
		t.Fatalf("generation=%d", a.Generation())
	}
}

func TestSimulationRestocksEmptyBoard(t *testing.T) {
	cfg := testConfig()
	cfg.Clear = true
	sim := NewSimulation(cfg, core.Geometry{Height: 10, Width: 10})
	if err := sim.Start(); err != nil {
		t.Fatal(err)
	}
	g, err := sim.Next()
	if err != nil {
		t.Fatal(err)
	}
	if g.Population() == 0 {
		t.Fatal("empty board with restocking enabled was not restocked")
	}

	cfg = testConfig()
	cfg.Clear = true
	cfg.NoRestock = true
	sim = NewSimulation(cfg, core.Geometry{Height: 10, Width: 10})
	if err := sim.Start(); err != nil {
		t.Fatal(err)
	}
	if g, err = sim.Next(); err != nil {
		t.Fatal(err)
	}
	if g.Population() != 0 {
		t.Fatal("restocking ran with -nr")
	}
}

func TestSimulationPatternAndEdits(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blinker.txt")
	if err := os.WriteFile(path, []byte("111\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := testConfig()
	cfg.Pattern = path
	cfg.NoRestock = true
	sim := NewSimulation(cfg, core.Geometry{Height: 5, Width: 5})
	if err := sim.Start(); err != nil {
		t.Fatal(err)
	}
	if st := sim.Stats(); st.Population != 3 || st.Density != 3.0/25 {
		t.Fatalf("stats=%+v", st)
	}

	if err := sim.Clear(); err != nil {
		t.Fatal(err)
	}
	if err := sim.Paint(0, 0); err != nil {
		t.Fatal(err)
	}
	if !sim.Current().Alive(0, 0) || sim.Current().Population() != 1 {
		t.Fatalf("paint after clear:\n%s", sim.Current())
	}

	sim.TogglePause()
	if !sim.Paused() {
		t.Fatal("TogglePause did not pause")
	}
	sim.SetPaused(false)
	if sim.Paused() {
		t.Fatal("SetPaused(false) did not resume")
	}

	if err := sim.Reset(); err != nil {
		t.Fatal(err)
	}
	if sim.Current().Population() != 3 || sim.Generation() != 0 {
		t.Fatal("Reset must reload the pattern at generation 0")
	}
}

func TestSimulationNoiseSeeding(t *testing.T) {
	cfg := testConfig()
	cfg.NoiseScale = 0.15
	sim := NewSimulation(cfg, core.Geometry{Height: 20, Width: 30})
	if err := sim.Start(); err != nil {
		t.Fatal(err)
	}
	want, err := life.InitializeNoise(sim.Geometry(), cfg.Probability, cfg.Seed, cfg.NoiseScale)
	if err != nil {
		t.Fatal(err)
	}
	if !sim.Current().Equal(want) {
		t.Fatal("noise seeding must use the configured seed")
	}
}

func TestNamesSorted(t *testing.T) {
	Register("zz-last", func(*config.Config) Renderer { return &recordingRenderer{} })
	Register("aa-first", func(*config.Config) Renderer { return &recordingRenderer{} })
	names := Names()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("names not sorted: %v", names)
		}
	}
}

type closingRenderer struct {
	recordingRenderer
	closed int
}

func (r *closingRenderer) Close() error {
	r.closed++
	return nil
}

func TestRunClosesRendererOnEveryPath(t *testing.T) {
	ok := &closingRenderer{recordingRenderer: recordingRenderer{geo: core.Geometry{Height: 3, Width: 3}, steps: 1}}
	Register("closing", func(*config.Config) Renderer { return ok })
	cfg := testConfig()
	cfg.Renderer = "closing"
	if err := Run(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}

	failing := &closingRenderer{recordingRenderer: recordingRenderer{geoErr: errors.New("no screen")}}
	Register("closing-failing", func(*config.Config) Renderer { return failing })
	cfg.Renderer = "closing-failing"
	if err := Run(context.Background(), cfg); err == nil {
		t.Fatal("geometry failure must surface")
	}

	if ok.closed != 1 || failing.closed != 1 {
		t.Fatalf("closed ok=%d failing=%d, want 1 each", ok.closed, failing.closed)
	}
}
