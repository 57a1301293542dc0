package life

import (
	"context"

	"golang.org/x/sync/errgroup"

	"rle-life/pkg/grid"
)

// Changes evaluates one generation of g under rule and returns the cells whose
// state flips, in row-major order. g is only read.
func Changes(g *grid.Map, rule Rule) []grid.Cell {
	var out []grid.Cell
	it := g.Generation()
	for it.HasNext() {
		c, err := it.Next()
		if err != nil {
			break
		}
		next := NewNeighborhood(c, g).NextState(rule.Survival, rule.Birth)
		if next.Alive != c.Alive {
			out = append(out, next)
		}
	}
	return out
}

// Apply writes a batch of changes produced by Changes or ParallelChanges.
func Apply(g *grid.Map, changes []grid.Cell) {
	for _, c := range changes {
		g.Set(c)
	}
}

// Step advances g by one generation in place and returns the flipped cells.
// All neighbour counts are taken before any cell is written.
func Step(g *grid.Map, rule Rule) []grid.Cell {
	changes := Changes(g, rule)
	Apply(g, changes)
	return changes
}

// ParallelChanges is Changes with the generation area split into row bands
// evaluated by up to workers goroutines. The result is identical to Changes.
func ParallelChanges(ctx context.Context, g *grid.Map, rule Rule, workers int) ([]grid.Cell, error) {
	if workers <= 1 {
		return Changes(g, rule), nil
	}
	area := g.GenerationRect()
	if area.Empty() {
		return nil, nil
	}

	rowsPerWorker := (area.Height + int64(workers) - 1) / int64(workers)
	bands := make([][]grid.Cell, workers)

	eg, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		startRow := area.Y + int64(i)*rowsPerWorker
		endRow := min(startRow+rowsPerWorker, area.Y+area.Height)
		if startRow >= endRow {
			break
		}
		band := grid.Rect{X: area.X, Y: startRow, Width: area.Width, Height: endRow - startRow}
		eg.Go(func() error {
			var out []grid.Cell
			it := g.Scan(band)
			x := band.X
			for it.HasNext() {
				if x == band.X {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				c, err := it.Next()
				if err != nil {
					return err
				}
				next := NewNeighborhood(c, g).NextState(rule.Survival, rule.Birth)
				if next.Alive != c.Alive {
					out = append(out, next)
				}
				x++
				if x > band.MaxX() {
					x = band.X
				}
			}
			bands[i] = out
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	var out []grid.Cell
	for _, b := range bands {
		out = append(out, b...)
	}
	return out, nil
}
