package grid

import "fmt"

// Rect is an axis-aligned rectangle. It contains p when
// X <= p.X <= X+Width-1 and Y <= p.Y <= Y+Height-1.
type Rect struct {
	X, Y          int64
	Width, Height int64
}

// RectFromCorners returns the smallest Rect covering both corners.
func RectFromCorners(a, b Point) Rect {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX + 1, Height: maxY - minY + 1}
}

// Empty reports whether the rectangle covers no points.
func (r Rect) Empty() bool { return r.Width <= 0 || r.Height <= 0 }

// MaxX is the last column inside the rectangle.
func (r Rect) MaxX() int64 { return r.X + r.Width - 1 }

// MaxY is the last row inside the rectangle.
func (r Rect) MaxY() int64 { return r.Y + r.Height - 1 }

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	if r.Empty() {
		return false
	}
	return r.X <= p.X && p.X <= r.MaxX() && r.Y <= p.Y && p.Y <= r.MaxY()
}

// Expand grows the rectangle by margin cells on every side. Empty rectangles
// stay empty.
func (r Rect) Expand(margin int64) Rect {
	if r.Empty() {
		return r
	}
	return Rect{X: r.X - margin, Y: r.Y - margin, Width: r.Width + 2*margin, Height: r.Height + 2*margin}
}

// Area returns Width*Height, or 0 for empty rectangles.
func (r Rect) Area() int64 {
	if r.Empty() {
		return 0
	}
	return r.Width * r.Height
}

func (r Rect) String() string {
	return fmt.Sprintf("[x=%d y=%d w=%d h=%d]", r.X, r.Y, r.Width, r.Height)
}
