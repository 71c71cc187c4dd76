package config

import (
	"encoding/json"
	"flag"
	"image/color"
	"os"
	"runtime"

	"github.com/pkg/errors"

	"simwall/pkg/life"
)

// Config holds the run parameters shared by the driver and the renderers.
type Config struct {
	Renderer   string `json:"renderer"`
	ConfigPath string `json:"-"`

	Seed        int64   `json:"seed"`
	Probability float64 `json:"probability"`
	NoiseScale  float64 `json:"noise_scale"`
	Pattern     string  `json:"pattern"`
	Clear       bool    `json:"clear"`

	Rows     int `json:"rows"`
	Cols     int `json:"cols"`
	CellSize int `json:"cell_size"`

	FPS         float64 `json:"fps"`
	Generations int     `json:"generations"`
	OutDir      string  `json:"out_dir"`

	AliveColor string `json:"alive_color"`
	DeadColor  string `json:"dead_color"`
	Circles    bool   `json:"circles"`
	Fullscreen bool   `json:"fullscreen"`
	NoKeybinds bool   `json:"no_keybinds"`

	NoRestock        bool    `json:"no_restock"`
	RestockThreshold float64 `json:"restock_threshold"`

	Workers int `json:"workers"`
}

// Default returns the configuration used when no flags or file are given.
func Default() *Config {
	return &Config{
		Renderer:         "term",
		Probability:      life.DefaultAliveProbability,
		FPS:              10,
		Generations:      60,
		OutDir:           "artifacts",
		AliveColor:       "FFFFFF",
		DeadColor:        "000000",
		RestockThreshold: 0.95,
		Workers:          runtime.NumCPU(),
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Renderer, "renderer", c.Renderer, "renderer to run: png, term or window")
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "JSON config file; flags override its values")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 picks one from the clock)")
	fs.Float64Var(&c.Probability, "p", c.Probability, "probability that a cell starts alive")
	fs.Float64Var(&c.NoiseScale, "noise", c.NoiseScale, "perlin noise scale for clustered seeding (0 disables)")
	fs.StringVar(&c.Pattern, "pattern", c.Pattern, "pattern file to centre on the board instead of random seeding")
	fs.BoolVar(&c.Clear, "clear", c.Clear, "start with an empty board (implies -nr)")
	fs.IntVar(&c.Rows, "rows", c.Rows, "grid rows (0 derives them from the renderer)")
	fs.IntVar(&c.Cols, "cols", c.Cols, "grid columns (0 derives them from the renderer)")
	fs.IntVar(&c.CellSize, "s", c.CellSize, "cell size in pixels (0 uses the renderer default)")
	fs.Float64Var(&c.FPS, "fps", c.FPS, "generations per second")
	fs.IntVar(&c.Generations, "n", c.Generations, "generations to export (png)")
	fs.StringVar(&c.OutDir, "out", c.OutDir, "output directory (png)")
	fs.StringVar(&c.AliveColor, "alive", c.AliveColor, "alive cell color as RRGGBB")
	fs.StringVar(&c.DeadColor, "dead", c.DeadColor, "dead cell color as RRGGBB")
	fs.BoolVar(&c.Circles, "c", c.Circles, "draw circles instead of squares (window)")
	fs.BoolVar(&c.Fullscreen, "fullscreen", c.Fullscreen, "cover the whole monitor (window)")
	fs.BoolVar(&c.NoKeybinds, "nk", c.NoKeybinds, "disable keybinds other than quit")
	fs.BoolVar(&c.NoRestock, "nr", c.NoRestock, "never restock an emptying board")
	fs.Float64Var(&c.RestockThreshold, "restock", c.RestockThreshold, "dead fraction that triggers restocking")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines used per generation")
}

// Load reads a JSON config file over the defaults.
func Load(filename string) (*Config, error) {
	c := Default()

	data, err := os.ReadFile(filename)
	if err != nil {
		return c, errors.Wrapf(err, "[Load] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, c); err != nil {
		return c, errors.Wrapf(err, "[Load] failed to unmarshal data from file: %+v", filename)
	}
	c.ConfigPath = filename

	return c, nil
}

// Parse binds a fresh configuration to fs and parses args. When -config names
// a file, the file is loaded first and any flags given explicitly are applied
// on top of it.
func Parse(fs *flag.FlagSet, args []string) (*Config, error) {
	c := Default()
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if c.ConfigPath != "" {
		fileCfg, err := Load(c.ConfigPath)
		if err != nil {
			return nil, err
		}
		overlay := flag.NewFlagSet(fs.Name(), flag.ContinueOnError)
		fileCfg.Bind(overlay)
		var setErr error
		fs.Visit(func(f *flag.Flag) {
			if setErr == nil {
				setErr = overlay.Set(f.Name, f.Value.String())
			}
		})
		if setErr != nil {
			return nil, errors.Wrap(setErr, "apply flags over config file")
		}
		c = fileCfg
	}

	if c.Clear {
		c.NoRestock = true
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks values that would otherwise surface as renderer failures
// mid-run.
func (c *Config) Validate() error {
	if c.Renderer == "" {
		return errors.New("renderer must be set")
	}
	if !(c.Probability >= 0 && c.Probability <= 1) {
		return errors.Wrapf(life.ErrInvalidProbability, "-p %v", c.Probability)
	}
	if !(c.RestockThreshold >= 0 && c.RestockThreshold <= 1) {
		return errors.Wrapf(life.ErrInvalidProbability, "-restock %v", c.RestockThreshold)
	}
	if c.NoiseScale < 0 {
		return errors.Errorf("-noise %v must not be negative", c.NoiseScale)
	}
	if c.CellSize < 0 {
		return errors.Errorf("-s %d must not be negative", c.CellSize)
	}
	if c.Rows < 0 || c.Cols < 0 || (c.Rows == 0) != (c.Cols == 0) {
		return errors.Errorf("-rows %d -cols %d: give both or neither", c.Rows, c.Cols)
	}
	if !(c.FPS > 0) {
		return errors.Errorf("-fps %v must be positive", c.FPS)
	}
	if c.Generations < 0 {
		return errors.Errorf("-n %d must not be negative", c.Generations)
	}
	if _, err := ParseHex(c.AliveColor); err != nil {
		return errors.Wrap(err, "-alive")
	}
	if _, err := ParseHex(c.DeadColor); err != nil {
		return errors.Wrap(err, "-dead")
	}
	return nil
}

// CellSizeOr returns the configured cell size, or def when none was set.
func (c *Config) CellSizeOr(def int) int {
	if c.CellSize > 0 {
		return c.CellSize
	}
	return def
}

// Colors returns the parsed alive and dead colors. Call after Validate.
func (c *Config) Colors() (alive, dead color.RGBA) {
	alive, _ = ParseHex(c.AliveColor)
	dead, _ = ParseHex(c.DeadColor)
	return alive, dead
}
