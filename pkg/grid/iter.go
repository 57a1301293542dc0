package grid

import "errors"

// ErrExhausted is returned by Next once an iterator has produced its last cell.
var ErrExhausted = errors.New("grid: iterator exhausted")

// CellIterator is a one-shot, finite sequence of cells. It cannot be restarted.
type CellIterator struct {
	// point mode
	pts []Point

	// scan mode
	src  *Map
	rect Rect
	x, y int64

	scan bool
	pos  int
	done bool
}

func newPointIterator(pts []Point) *CellIterator {
	return &CellIterator{pts: pts, done: len(pts) == 0}
}

func newScanIterator(m *Map, r Rect) *CellIterator {
	return &CellIterator{src: m, rect: r, x: r.X, y: r.Y, scan: true, done: r.Empty()}
}

// HasNext reports whether Next will produce another cell.
func (it *CellIterator) HasNext() bool { return !it.done }

// Next returns the next cell, or ErrExhausted when the sequence is over.
func (it *CellIterator) Next() (Cell, error) {
	if it.done {
		return Cell{}, ErrExhausted
	}
	if !it.scan {
		p := it.pts[it.pos]
		it.pos++
		if it.pos >= len(it.pts) {
			it.done = true
		}
		return Cell{X: p.X, Y: p.Y, Alive: true}, nil
	}

	c := it.src.Get(it.x, it.y)
	if it.x < it.rect.MaxX() {
		it.x++
	} else if it.y < it.rect.MaxY() {
		it.x = it.rect.X
		it.y++
	} else {
		it.done = true
	}
	return c, nil
}

// Collect drains the iterator into a slice.
func (it *CellIterator) Collect() []Cell {
	var out []Cell
	for it.HasNext() {
		c, err := it.Next()
		if err != nil {
			break
		}
		out = append(out, c)
	}
	return out
}
