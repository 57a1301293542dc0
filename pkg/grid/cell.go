package grid

import "fmt"

// Point is an integer coordinate on the unbounded plane. Y grows downward.
type Point struct {
	X, Y int64
}

// Add returns the point one step away in direction d.
func (p Point) Add(d Direction) Point {
	dx, dy := d.Offset()
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Cell is a coordinate plus its alive flag. Cells are values; the only way to
// change the state stored in a Map is Map.Put.
type Cell struct {
	X, Y  int64
	Alive bool
}

// Point returns the cell coordinate.
func (c Cell) Point() Point { return Point{X: c.X, Y: c.Y} }

// WithAlive returns a copy of c with the alive flag replaced.
func (c Cell) WithAlive(alive bool) Cell {
	c.Alive = alive
	return c
}

func (c Cell) String() string {
	state := "dead"
	if c.Alive {
		state = "alive"
	}
	return fmt.Sprintf("(%d,%d %s)", c.X, c.Y, state)
}
