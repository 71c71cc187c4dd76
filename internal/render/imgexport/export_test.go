package imgexport

import (
	"context"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"simwall/internal/app"
	"simwall/internal/config"
	"simwall/pkg/core"
)

func blinkerConfig(t *testing.T) *config.Config {
	t.Helper()
	dir := t.TempDir()
	pattern := filepath.Join(dir, "blinker.txt")
	if err := os.WriteFile(pattern, []byte("111\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Default()
	cfg.Renderer = Name
	cfg.Pattern = pattern
	cfg.NoRestock = true
	cfg.Rows, cfg.Cols = 5, 5
	cfg.CellSize = 3
	cfg.Generations = 4
	cfg.OutDir = filepath.Join(dir, "out")
	cfg.AliveColor = "FF0000"
	cfg.Seed = 1
	return cfg
}

func TestRunWritesGenerations(t *testing.T) {
	cfg := blinkerConfig(t)
	if err := app.Run(context.Background(), cfg); err != nil {
		t.Fatal(err)
	}

	for _, name := range []string{"00.png", "01.png", "02.png", "03.png"} {
		if _, err := os.Stat(filepath.Join(cfg.OutDir, name)); err != nil {
			t.Fatalf("missing %s: %v", name, err)
		}
	}
	if _, err := os.Stat(filepath.Join(cfg.OutDir, "04.png")); !os.IsNotExist(err) {
		t.Fatalf("wrote more generations than requested: %v", err)
	}

	f, err := os.Open(filepath.Join(cfg.OutDir, "01.png"))
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 15 || b.Dy() != 15 {
		t.Fatalf("bounds=%v, want 15x15", b)
	}

	red := color.RGBAModel.Convert(color.RGBA{R: 0xff, A: 0xff})
	black := color.RGBAModel.Convert(color.RGBA{A: 0xff})
	// Generation 1 of a horizontal blinker in the middle row is vertical.
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			want := black
			if c == 2 && r >= 1 && r <= 3 {
				want = red
			}
			for _, px := range [][2]int{{c * 3, r * 3}, {c*3 + 2, r*3 + 2}} {
				if got := color.RGBAModel.Convert(img.At(px[0], px[1])); got != want {
					t.Fatalf("cell (%d,%d) pixel %v = %v, want %v", r, c, px, got, want)
				}
			}
		}
	}
}

func TestRunCancelled(t *testing.T) {
	cfg := blinkerConfig(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := app.Run(ctx, cfg); err != nil {
		t.Fatal(err)
	}
	entries, err := os.ReadDir(cfg.OutDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Fatalf("cancelled run wrote %d files", len(entries))
	}
}

func TestRunOutputDirFailure(t *testing.T) {
	cfg := blinkerConfig(t)
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg.OutDir = filepath.Join(blocker, "out")
	if err := app.Run(context.Background(), cfg); err == nil {
		t.Fatal("unwritable output directory must fail")
	}
}

func TestGeometry(t *testing.T) {
	cfg := config.Default()
	geo, err := New(cfg).Geometry(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if geo != (core.Geometry{Height: 108, Width: 192}) {
		t.Fatalf("geometry=%v, want 108x192", geo)
	}
}

func TestDigits(t *testing.T) {
	cases := map[int]int{-1: 2, 0: 2, 59: 2, 99: 2, 100: 3, 999: 3, 1000: 4}
	for n, want := range cases {
		if got := digits(n); got != want {
			t.Fatalf("digits(%d)=%d, want %d", n, got, want)
		}
	}
}

func TestFrameBufferOrder(t *testing.T) {
	buf := newFrameBuffer(2)
	go func() {
		for i := 0; i < 10; i++ {
			buf.put(frame{gen: i, grid: nil})
		}
	}()
	for i := 0; i < 10; i++ {
		if f := buf.take(); f.gen != i {
			t.Fatalf("took generation %d, want %d", f.gen, i)
		}
	}
}
