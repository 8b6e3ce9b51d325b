package mvn

// Point is an integer coordinate pair.
type Point struct {
	X, Y int
}

// FPoint is a float64 coordinate pair.
type FPoint struct {
	X, Y float64
}

// Rect is an integer rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H int
}

// FRect is a float64 rectangle anchored at its top-left corner.
type FRect struct {
	X, Y, W, H float64
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the overlapping region of two rectangles.
// The boolean is false when they do not overlap.
func (r Rect) Intersect(other Rect) (Rect, bool) {
	x1 := max(r.X, other.X)
	y1 := max(r.Y, other.Y)
	x2 := min(r.X+r.W, other.X+other.W)
	y2 := min(r.Y+r.H, other.Y+other.H)
	if x2 <= x1 || y2 <= y1 {
		return Rect{}, false
	}
	return Rect{X: x1, Y: y1, W: x2 - x1, H: y2 - y1}, true
}

// FRect converts the rectangle to float coordinates.
func (r Rect) FRect() FRect {
	return FRect{X: float64(r.X), Y: float64(r.Y), W: float64(r.W), H: float64(r.H)}
}

// Contains reports whether the point lies inside the rectangle.
func (r FRect) Contains(p FPoint) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Empty reports whether the rectangle has no area.
func (r FRect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}
