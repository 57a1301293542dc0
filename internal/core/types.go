package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a rendered viewport.
type Size struct {
	W int
	H int
}

// Sim is what the viewer drives: something that steps and can rasterize its
// current state into a W*H buffer of 0/1 bytes.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Panner is implemented by sims whose viewport can move over an unbounded grid.
type Panner interface {
	Pan(dx, dy int)
	Recenter()
}

// Factory constructs a Sim from flag-style key/value pairs.
type Factory func(cfg map[string]string) (Sim, error)

var sims = map[string]Factory{}

// Register adds a simulation factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	sims[name] = f
}

// Sims exposes the registry of available simulation factories.
func Sims() map[string]Factory {
	return sims
}

// New builds the registered sim called name.
func New(name string, cfg map[string]string) (Sim, error) {
	f, ok := sims[name]
	if !ok {
		names := make([]string, 0, len(sims))
		for n := range sims {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, fmt.Errorf("unknown sim %q (have %v)", name, names)
	}
	return f(cfg)
}
