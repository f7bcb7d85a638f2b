package layout

// Point represents an (X, Y) coordinate.
type Point struct {
	X, Y float64
}

// Add returns a new Point offset by other.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns a new Point with other subtracted.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// In returns true if the point is inside the given area.
func (p Point) In(a Area) bool {
	return a.Contains(p)
}

// Main returns the coordinate on the main axis of dir.
func (p Point) Main(dir Direction) float64 {
	if dir == Horizontal {
		return p.X
	}
	return p.Y
}

// Cross returns the coordinate on the cross axis of dir.
func (p Point) Cross(dir Direction) float64 {
	if dir == Horizontal {
		return p.Y
	}
	return p.X
}

// pointOn builds a Point from main and cross axis coordinates.
func pointOn(dir Direction, main, cross float64) Point {
	if dir == Horizontal {
		return Point{X: main, Y: cross}
	}
	return Point{X: cross, Y: main}
}
