package grid

// GenerationMargin is how far the Generation iterator reaches past the live
// rectangle on each side.
const GenerationMargin = 2

// Map is a sparse, unbounded grid of binary cells. Only live coordinates are
// stored; absence means dead.
//
// A Map is owned by one caller at a time. Concurrent readers are fine as long
// as nobody calls Put, Clear or ResetModified meanwhile.
type Map struct {
	cells    map[Point]struct{}
	modified bool
}

// NewMap returns an empty map.
func NewMap() *Map {
	return &Map{cells: make(map[Point]struct{})}
}

// Get returns the cell at (x, y). Unset coordinates yield a dead cell.
func (m *Map) Get(x, y int64) Cell {
	_, ok := m.cells[Point{X: x, Y: y}]
	return Cell{X: x, Y: y, Alive: ok}
}

// Put stores the state of (x, y) and returns the previous cell. Dead cells are
// removed so the stored set stays minimal. The map is marked modified even
// when the state does not change.
func (m *Map) Put(x, y int64, alive bool) Cell {
	p := Point{X: x, Y: y}
	_, was := m.cells[p]
	if alive {
		m.cells[p] = struct{}{}
	} else {
		delete(m.cells, p)
	}
	m.modified = true
	return Cell{X: x, Y: y, Alive: was}
}

// Set is Put for a Cell value.
func (m *Map) Set(c Cell) Cell { return m.Put(c.X, c.Y, c.Alive) }

// Len returns the number of live cells.
func (m *Map) Len() int { return len(m.cells) }

// Modified reports whether Put has been called since the last ResetModified.
func (m *Map) Modified() bool { return m.modified }

// ResetModified clears the modified flag.
func (m *Map) ResetModified() { m.modified = false }

// Clear removes every live cell.
func (m *Map) Clear() {
	if len(m.cells) > 0 {
		m.modified = true
	}
	m.cells = make(map[Point]struct{})
}

// Clone returns an independent copy with the modified flag cleared.
func (m *Map) Clone() *Map {
	out := &Map{cells: make(map[Point]struct{}, len(m.cells))}
	for p := range m.cells {
		out.cells[p] = struct{}{}
	}
	return out
}

// Equal reports whether both maps hold the same live coordinates.
func (m *Map) Equal(o *Map) bool {
	if len(m.cells) != len(o.cells) {
		return false
	}
	for p := range m.cells {
		if _, ok := o.cells[p]; !ok {
			return false
		}
	}
	return true
}

// LiveRectangle returns the minimal rectangle enclosing every live cell. An
// empty map yields the zero Rect, which is Empty and contains nothing.
func (m *Map) LiveRectangle() Rect {
	if len(m.cells) == 0 {
		return Rect{}
	}
	first := true
	var minX, minY, maxX, maxY int64
	for p := range m.cells {
		if first {
			minX, maxX, minY, maxY = p.X, p.X, p.Y, p.Y
			first = false
			continue
		}
		minX = min(minX, p.X)
		maxX = max(maxX, p.X)
		minY = min(minY, p.Y)
		maxY = max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}

// LiveCells iterates every live cell in unspecified order. The key set is
// captured when the iterator is created.
func (m *Map) LiveCells() *CellIterator {
	pts := make([]Point, 0, len(m.cells))
	for p := range m.cells {
		pts = append(pts, p)
	}
	return newPointIterator(pts)
}

// InRect iterates the live cells inside r. Dead cells are never visited.
func (m *Map) InRect(r Rect) *CellIterator {
	var pts []Point
	if !r.Empty() {
		for p := range m.cells {
			if r.Contains(p) {
				pts = append(pts, p)
			}
		}
	}
	return newPointIterator(pts)
}

// Generation walks every coordinate, live or dead, of the live rectangle
// grown by GenerationMargin, in row-major order. It is immediately exhausted
// for an empty map.
func (m *Map) Generation() *CellIterator {
	return m.Scan(m.GenerationRect())
}

// GenerationRect is the area visited by Generation.
func (m *Map) GenerationRect() Rect {
	return m.LiveRectangle().Expand(GenerationMargin)
}

// Scan walks every coordinate of r in row-major order, live or dead.
func (m *Map) Scan(r Rect) *CellIterator {
	return newScanIterator(m, r)
}
