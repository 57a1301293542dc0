package rle

import (
	"fmt"
	"strings"

	"rle-life/pkg/grid"
)

// Descriptor pairs a grid with the metadata needed to write it as RLE.
type Descriptor struct {
	Meta Metadata
	Grid *grid.Map
	// Origin overrides the upper-left corner the body starts at, clamped so
	// no live cell falls outside the body. When nil the live rectangle's
	// corner is used, or (0,0) without a grid.
	Origin *grid.Point
	// EmitOrigin adds a "#R x y" line so readers place the pattern where it was.
	EmitOrigin bool
}

// NewDescriptor returns a descriptor for g.
func NewDescriptor(meta Metadata, g *grid.Map) *Descriptor {
	return &Descriptor{Meta: meta, Grid: g}
}

// UpperLeft is the coordinate of the first body cell. An explicit Origin is
// moved up and left as far as needed to keep every live cell in the body.
func (d *Descriptor) UpperLeft() grid.Point {
	var live grid.Rect
	if d.Grid != nil {
		live = d.Grid.LiveRectangle()
	}
	if d.Origin == nil {
		return grid.Point{X: live.X, Y: live.Y}
	}
	ul := *d.Origin
	if !live.Empty() {
		ul.X = min(ul.X, live.X)
		ul.Y = min(ul.Y, live.Y)
	}
	return ul
}

// area is the rectangle the body covers: from UpperLeft to the far corner of
// the live rectangle.
func (d *Descriptor) area() grid.Rect {
	if d.Grid == nil {
		return grid.Rect{}
	}
	live := d.Grid.LiveRectangle()
	if live.Empty() {
		return grid.Rect{}
	}
	ul := d.UpperLeft()
	return grid.Rect{X: ul.X, Y: ul.Y, Width: live.MaxX() - ul.X + 1, Height: live.MaxY() - ul.Y + 1}
}

// HeaderComments renders the #C, #N and #O lines. Email and timestamp are only
// written next to an author name.
func (d *Descriptor) HeaderComments() []string {
	var out []string
	for _, c := range d.Meta.Comments {
		out = append(out, "#C "+c)
	}
	if d.Meta.Name != "" {
		out = append(out, "#N "+d.Meta.Name)
	}
	if author := d.Meta.Author(); author != "" {
		out = append(out, "#O "+author)
	}
	if d.EmitOrigin {
		ul := d.UpperLeft()
		out = append(out, fmt.Sprintf("#R %d %d", ul.X, ul.Y))
	}
	return out
}

// HeaderLine renders "x = W, y = H, rule = B../S..".
func (d *Descriptor) HeaderLine() string {
	r := d.area()
	return fmt.Sprintf("x = %d, y = %d, rule = %s", max(r.Width, 0), max(r.Height, 0), d.Meta.Rule())
}

// Cells returns the encode-side symbol stream of the grid.
func (d *Descriptor) Cells() *CellStream {
	return newCellStream(d.Grid, d.area())
}

// Lines renders the full file: comments, header line and body lines.
func (d *Descriptor) Lines() ([]string, error) {
	body, err := NewEncoder().Encode(d.Cells())
	if err != nil {
		return nil, err
	}
	out := d.HeaderComments()
	out = append(out, d.HeaderLine())
	return append(out, body...), nil
}

// String renders the file as newline-terminated text.
func (d *Descriptor) String() string {
	lines, err := d.Lines()
	if err != nil {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}

// CellStream walks a rectangle row-major producing 'o' and 'b', '$' between
// rows and '!' right after the last live cell of the final row.
type CellStream struct {
	g     *grid.Map
	area  grid.Rect
	x, y  int64
	lastX int64
	done  bool
}

func newCellStream(g *grid.Map, area grid.Rect) *CellStream {
	s := &CellStream{g: g, area: area, x: area.X, y: area.Y}
	if !area.Empty() {
		s.lastX = area.X - 1
		it := g.InRect(grid.Rect{X: area.X, Y: area.MaxY(), Width: area.Width, Height: 1})
		for it.HasNext() {
			c, err := it.Next()
			if err != nil {
				break
			}
			s.lastX = max(s.lastX, c.X)
		}
	}
	return s
}

// HasNext reports whether Next will produce another symbol.
func (s *CellStream) HasNext() bool { return !s.done }

// Next returns the next symbol, or ErrExhausted after '!'.
func (s *CellStream) Next() (byte, error) {
	if s.done {
		return 0, ErrExhausted
	}
	if s.area.Empty() || (s.y == s.area.MaxY() && s.x > s.lastX) {
		s.done = true
		return EndOfData, nil
	}
	if s.x > s.area.MaxX() {
		s.x = s.area.X
		s.y++
		return EndOfRow, nil
	}
	c := s.g.Get(s.x, s.y)
	s.x++
	if c.Alive {
		return Alive, nil
	}
	return Dead, nil
}
