package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the settings shared by the command-line tools and the viewer.
type Config struct {
	Input       string `yaml:"input"`
	Output      string `yaml:"output"`
	Generations int    `yaml:"generations"`
	Rule        string `yaml:"rule"`
	Workers     int    `yaml:"workers"`
	Seed        int64  `yaml:"seed"`

	SoupWidth   int64   `yaml:"soup_width"`
	SoupHeight  int64   `yaml:"soup_height"`
	SoupDensity float64 `yaml:"soup_density"`

	Name       string `yaml:"name"`
	Author     string `yaml:"author"`
	EmitOrigin bool   `yaml:"emit_origin"`

	Sim        string `yaml:"sim"`
	Scale      int    `yaml:"scale"`
	TPS        int    `yaml:"tps"`
	ViewWidth  int    `yaml:"view_width"`
	ViewHeight int    `yaml:"view_height"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Generations: 1,
		Workers:     1,
		Seed:        42,
		SoupDensity: 0.35,
		Sim:         "life",
		Scale:       3,
		TPS:         15,
		ViewWidth:   256,
		ViewHeight:  192,
	}
}

// FromMap populates a Config from flag-style key/value pairs on top of the
// defaults. Malformed values are ignored.
func FromMap(kv map[string]string) Config {
	c := DefaultConfig()
	c.apply(kv)
	return c
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Input, "input", c.Input, "RLE pattern to read (- or empty for stdin)")
	fs.StringVar(&c.Output, "output", c.Output, "where to write the evolved pattern (- or empty for stdout)")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to evolve")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule preset or B../S.. string; empty keeps the pattern's rule")
	fs.IntVar(&c.Workers, "workers", c.Workers, "goroutines evaluating each generation")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random soups")
	fs.Int64Var(&c.SoupWidth, "soup-width", c.SoupWidth, "width of a random soup used when no input is given")
	fs.Int64Var(&c.SoupHeight, "soup-height", c.SoupHeight, "height of a random soup used when no input is given")
	fs.Float64Var(&c.SoupDensity, "soup-density", c.SoupDensity, "live cell probability of a random soup")
	fs.StringVar(&c.Name, "name", c.Name, "pattern name written to the output")
	fs.StringVar(&c.Author, "author", c.Author, "author line written to the output")
	fs.BoolVar(&c.EmitOrigin, "emit-origin", c.EmitOrigin, "write a #R line so the pattern keeps its position")
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to view")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier")
	fs.IntVar(&c.TPS, "tps", c.TPS, "generations per second in the viewer")
	fs.IntVar(&c.ViewWidth, "view-width", c.ViewWidth, "viewer width in cells")
	fs.IntVar(&c.ViewHeight, "view-height", c.ViewHeight, "viewer height in cells")
}

// LoadFile reads a YAML file over the defaults.
func LoadFile(path string) (Config, error) {
	c := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("decode config %s: %w", path, err)
	}
	return c, nil
}

// Parse binds fs, parses args and layers the result: defaults, then the YAML
// file named by -config, then every flag set explicitly on the command line.
func Parse(fs *flag.FlagSet, args []string) (Config, error) {
	c := DefaultConfig()
	var path string
	fs.StringVar(&path, "config", "", "YAML configuration file")
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if path != "" {
		fileCfg, err := LoadFile(path)
		if err != nil {
			return c, err
		}
		explicit := map[string]string{}
		fs.Visit(func(f *flag.Flag) { explicit[f.Name] = f.Value.String() })
		fileCfg.apply(explicit)
		c = fileCfg
	}
	return c, c.Validate()
}

// Map renders the configuration as flag-style key/value pairs.
func (c Config) Map() map[string]string {
	return map[string]string{
		"input":        c.Input,
		"output":       c.Output,
		"generations":  strconv.Itoa(c.Generations),
		"rule":         c.Rule,
		"workers":      strconv.Itoa(c.Workers),
		"seed":         strconv.FormatInt(c.Seed, 10),
		"soup-width":   strconv.FormatInt(c.SoupWidth, 10),
		"soup-height":  strconv.FormatInt(c.SoupHeight, 10),
		"soup-density": strconv.FormatFloat(c.SoupDensity, 'f', -1, 64),
		"name":         c.Name,
		"author":       c.Author,
		"emit-origin":  strconv.FormatBool(c.EmitOrigin),
		"sim":          c.Sim,
		"scale":        strconv.Itoa(c.Scale),
		"tps":          strconv.Itoa(c.TPS),
		"view-width":   strconv.Itoa(c.ViewWidth),
		"view-height":  strconv.Itoa(c.ViewHeight),
	}
}

// Validate rejects settings no tool can run with.
func (c Config) Validate() error {
	var errs []error
	if c.Generations < 0 {
		errs = append(errs, fmt.Errorf("generations must be >= 0, got %d", c.Generations))
	}
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be >= 1, got %d", c.Workers))
	}
	if c.SoupWidth < 0 || c.SoupHeight < 0 {
		errs = append(errs, fmt.Errorf("soup size must not be negative, got %dx%d", c.SoupWidth, c.SoupHeight))
	}
	if c.SoupDensity < 0 || c.SoupDensity > 1 {
		errs = append(errs, fmt.Errorf("soup density must be within [0,1], got %g", c.SoupDensity))
	}
	if c.Scale <= 0 || c.TPS <= 0 {
		errs = append(errs, fmt.Errorf("scale and tps must be positive, got %d and %d", c.Scale, c.TPS))
	}
	if c.ViewWidth <= 0 || c.ViewHeight <= 0 {
		errs = append(errs, fmt.Errorf("view size must be positive, got %dx%d", c.ViewWidth, c.ViewHeight))
	}
	return errors.Join(errs...)
}

func (c *Config) apply(kv map[string]string) {
	if kv == nil {
		return
	}
	for key, v := range kv {
		switch key {
		case "input":
			c.Input = v
		case "output":
			c.Output = v
		case "rule":
			c.Rule = v
		case "name":
			c.Name = v
		case "author":
			c.Author = v
		case "sim":
			if v != "" {
				c.Sim = v
			}
		case "generations":
			if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
				c.Generations = parsed
			}
		case "workers":
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				c.Workers = parsed
			}
		case "seed":
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
				c.Seed = parsed
			}
		case "soup-width":
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed >= 0 {
				c.SoupWidth = parsed
			}
		case "soup-height":
			if parsed, err := strconv.ParseInt(v, 10, 64); err == nil && parsed >= 0 {
				c.SoupHeight = parsed
			}
		case "soup-density":
			if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
				c.SoupDensity = parsed
			}
		case "emit-origin":
			if parsed, err := strconv.ParseBool(v); err == nil {
				c.EmitOrigin = parsed
			}
		case "scale":
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				c.Scale = parsed
			}
		case "tps":
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				c.TPS = parsed
			}
		case "view-width":
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				c.ViewWidth = parsed
			}
		case "view-height":
			if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
				c.ViewHeight = parsed
			}
		}
	}
}
