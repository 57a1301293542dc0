package life

import (
	"context"

	"rle-life/pkg/core"
	"rle-life/pkg/grid"
)

// Life evolves one pattern on an unbounded grid under a birth/survival rule.
type Life struct {
	cur     *grid.Map
	initial *grid.Map
	rule    Rule
	gen     int
	workers int

	soupArea    grid.Rect
	soupDensity float64
}

// New returns a Life evolving g. g is owned by the returned value from now
// on; a copy is kept so Reset can restore it.
func New(g *grid.Map, rule Rule) *Life {
	if g == nil {
		g = grid.NewMap()
	}
	return &Life{cur: g, initial: g.Clone(), rule: rule, workers: 1}
}

// NewSoup returns a Life seeded with a random soup over area.
func NewSoup(area grid.Rect, density float64, seed int64, rule Rule) *Life {
	l := &Life{cur: grid.NewMap(), rule: rule, workers: 1, soupArea: area, soupDensity: density}
	l.Reset(seed)
	return l
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life " + l.rule.String() }

// Grid exposes the current generation.
func (l *Life) Grid() *grid.Map { return l.cur }

// Rule returns the active rule.
func (l *Life) Rule() Rule { return l.rule }

// SetRule changes the rule used by later steps.
func (l *Life) SetRule(r Rule) { l.rule = r }

// SetWorkers sets how many goroutines evaluate a generation. Values below 1
// mean serial evaluation.
func (l *Life) SetWorkers(n int) {
	if n < 1 {
		n = 1
	}
	l.workers = n
}

// Generation returns the number of steps taken since the last Reset.
func (l *Life) Generation() int { return l.gen }

// Population returns the live cell count.
func (l *Life) Population() int { return l.cur.Len() }

// Reset restores the initial pattern in the map returned by Grid. Soups are
// regenerated from seed.
func (l *Life) Reset(seed int64) {
	l.gen = 0
	l.cur.Clear()
	if l.initial == nil {
		Soup(l.cur, l.soupArea, l.soupDensity, seed)
	} else {
		it := l.initial.LiveCells()
		for it.HasNext() {
			c, err := it.Next()
			if err != nil {
				break
			}
			l.cur.Set(c)
		}
	}
	l.cur.ResetModified()
}

// Step advances the simulation by one generation and returns the flipped cells.
func (l *Life) Step() []grid.Cell {
	changes, _ := l.step(context.Background())
	return changes
}

// StepN advances n generations, stopping early if ctx is cancelled.
func (l *Life) StepN(ctx context.Context, n int) error {
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := l.step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (l *Life) step(ctx context.Context) ([]grid.Cell, error) {
	changes, err := ParallelChanges(ctx, l.cur, l.rule, l.workers)
	if err != nil {
		return nil, err
	}
	Apply(l.cur, changes)
	l.gen++
	return changes, nil
}

// Soup sets each cell of area alive with probability density, using a
// generator seeded with seed.
func Soup(g *grid.Map, area grid.Rect, density float64, seed int64) {
	if area.Empty() {
		return
	}
	rng := core.NewRNG(seed)
	for y := area.Y; y <= area.MaxY(); y++ {
		for x := area.X; x <= area.MaxX(); x++ {
			if rng.Chance(density) {
				g.Put(x, y, true)
			}
		}
	}
}
