package life

import "rle-life/pkg/grid"

// CellGetter is the read side of a grid.
type CellGetter interface {
	Get(x, y int64) grid.Cell
}

// Neighborhood holds a cell and its eight Moore neighbours as seen in one
// snapshot of a grid.
type Neighborhood struct {
	self      grid.Cell
	neighbors [MaxNeighbors]grid.Cell
}

// NewNeighborhood looks up the eight neighbours of self in g.
func NewNeighborhood(self grid.Cell, g CellGetter) Neighborhood {
	n := Neighborhood{self: self}
	for _, d := range grid.Directions() {
		dx, dy := d.Offset()
		n.neighbors[d] = g.Get(self.X+dx, self.Y+dy)
	}
	return n
}

// Self returns the centre cell.
func (n Neighborhood) Self() grid.Cell { return n.self }

// Neighbor returns the neighbour in direction d.
func (n Neighborhood) Neighbor(d grid.Direction) grid.Cell { return n.neighbors[d] }

// LivingNeighborCount counts live neighbours, excluding the centre cell.
func (n Neighborhood) LivingNeighborCount() int {
	count := 0
	for _, c := range n.neighbors {
		if c.Alive {
			count++
		}
	}
	return count
}

// NextState returns the centre cell with its alive flag recomputed: a live
// cell survives when its count is in survival, a dead one is born when its
// count is in birth.
func (n Neighborhood) NextState(survival, birth Set) grid.Cell {
	count := n.LivingNeighborCount()
	if n.self.Alive {
		return n.self.WithAlive(survival.Contains(count))
	}
	return n.self.WithAlive(birth.Contains(count))
}
