package life

import (
	"fmt"
	"strconv"

	"rle-life/internal/core"
	"rle-life/pkg/grid"
	engine "rle-life/pkg/life"
	"rle-life/pkg/rle"
)

// Config controls what the viewer loads and how large its window onto the
// grid is.
type Config struct {
	Width   int
	Height  int
	Pattern string
	Rule    string
	Workers int

	Seed        int64
	SoupDensity float64
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 256, Height: 192, Workers: 1, Seed: 42, SoupDensity: 0.35}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["view-width"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["view-height"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["workers"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Workers = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["soup-density"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.SoupDensity = parsed
		}
	}
	c.Pattern = cfg["input"]
	c.Rule = cfg["rule"]
	return c
}

// View shows a window of an evolving pattern.
type View struct {
	cfg  Config
	sim  *engine.Life
	meta rle.Metadata
	raw  *core.ByteGrid

	// upper-left grid coordinate of the window
	origin grid.Point
	seed   int64
}

// New loads the configured pattern, or seeds a soup covering the window when
// none is given.
func New(cfg Config) (*View, error) {
	v := &View{cfg: cfg, raw: core.NewByteGrid(cfg.Width, cfg.Height), seed: cfg.Seed}

	if cfg.Pattern != "" {
		p, err := rle.ReadFile(cfg.Pattern)
		if err != nil {
			return nil, err
		}
		v.meta = p.Meta
		v.sim = engine.New(p.Grid, p.Meta.Rule())
	} else {
		v.meta = rle.DefaultMetadata()
		v.meta.Name = "Random soup"
		area := grid.Rect{Width: int64(cfg.Width), Height: int64(cfg.Height)}
		v.sim = engine.NewSoup(area, cfg.SoupDensity, cfg.Seed, engine.Conway())
	}

	if cfg.Rule != "" {
		r, err := engine.Lookup(cfg.Rule)
		if err != nil {
			return nil, err
		}
		v.sim.SetRule(r)
	}
	v.meta.SetRule(v.sim.Rule())
	v.sim.SetWorkers(cfg.Workers)
	v.Recenter()
	return v, nil
}

// Name returns the simulation identifier.
func (v *View) Name() string { return fmt.Sprintf("%s (%s)", v.meta.DisplayName(), v.sim.Rule()) }

// Size returns the window dimensions in cells.
func (v *View) Size() core.Size { return core.Size{W: v.cfg.Width, H: v.cfg.Height} }

// Reset restores the loaded pattern, or a fresh soup for seed.
func (v *View) Reset(seed int64) {
	v.seed = seed
	v.sim.Reset(seed)
	v.Recenter()
}

// Step advances one generation.
func (v *View) Step() { v.sim.Step() }

// Life exposes the underlying simulation.
func (v *View) Life() *engine.Life { return v.sim }

// Window is the grid rectangle currently shown.
func (v *View) Window() grid.Rect {
	return grid.Rect{X: v.origin.X, Y: v.origin.Y, Width: int64(v.cfg.Width), Height: int64(v.cfg.Height)}
}

// Cells rasterizes the live cells inside the window.
func (v *View) Cells() []uint8 {
	v.raw.Clear()
	win := v.Window()
	it := v.sim.Grid().InRect(win)
	for it.HasNext() {
		c, err := it.Next()
		if err != nil {
			break
		}
		v.raw.Set(int(c.X-win.X), int(c.Y-win.Y), 1)
	}
	return v.raw.Cells()
}

// Pan moves the window by (dx, dy) cells.
func (v *View) Pan(dx, dy int) {
	v.origin.X += int64(dx)
	v.origin.Y += int64(dy)
}

// Recenter puts the middle of the live rectangle in the middle of the window.
func (v *View) Recenter() {
	r := v.sim.Grid().LiveRectangle()
	if r.Empty() {
		v.origin = grid.Point{X: -int64(v.cfg.Width) / 2, Y: -int64(v.cfg.Height) / 2}
		return
	}
	v.origin = grid.Point{
		X: r.X + r.Width/2 - int64(v.cfg.Width)/2,
		Y: r.Y + r.Height/2 - int64(v.cfg.Height)/2,
	}
}

// Parameters reports pattern metadata and run statistics for the HUD.
func (v *View) Parameters() core.ParameterSnapshot {
	bounds := v.sim.Grid().LiveRectangle()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Pattern",
			Params: []core.Parameter{
				{Key: "name", Label: "Name", Value: v.meta.DisplayName()},
				{Key: "author", Label: "Author", Value: v.meta.DisplayAuthor()},
				{Key: "rule", Label: "Rule", Value: v.sim.Rule().String()},
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Value: strconv.Itoa(v.sim.Generation())},
				{Key: "population", Label: "Population", Value: strconv.Itoa(v.sim.Population())},
				{Key: "bounds", Label: "Bounds", Value: fmt.Sprintf("%dx%d", bounds.Width, bounds.Height)},
				{Key: "seed", Label: "Seed", Value: strconv.FormatInt(v.seed, 10)},
			},
		},
	}}
}

func init() {
	core.Register("life", func(cfg map[string]string) (core.Sim, error) {
		return New(FromMap(cfg))
	})
}
