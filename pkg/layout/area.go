package layout

import "fmt"

// Area is a rectangle: an origin (top-left corner) and a size.
type Area struct {
	Origin Point
	Size   Size
}

// NewArea creates a new Area with the given position and dimensions.
func NewArea(x, y, width, height float64) Area {
	return Area{Origin: Point{X: x, Y: y}, Size: Size{Width: width, Height: height}}
}

// String formats the area as "x,y wxh".
func (a Area) String() string {
	return fmt.Sprintf("%g,%g %gx%g", a.Origin.X, a.Origin.Y, a.Size.Width, a.Size.Height)
}

// Width returns the horizontal extent.
func (a Area) Width() float64 { return a.Size.Width }

// Height returns the vertical extent.
func (a Area) Height() float64 { return a.Size.Height }

// MinX returns the x-coordinate of the left edge.
func (a Area) MinX() float64 { return a.Origin.X }

// MinY returns the y-coordinate of the top edge.
func (a Area) MinY() float64 { return a.Origin.Y }

// MaxX returns the x-coordinate of the right edge (exclusive).
func (a Area) MaxX() float64 { return a.Origin.X + a.Size.Width }

// MaxY returns the y-coordinate of the bottom edge (exclusive).
func (a Area) MaxY() float64 { return a.Origin.Y + a.Size.Height }

// IsEmpty returns true if the area has zero or negative extent.
func (a Area) IsEmpty() bool {
	return a.Size.Width <= 0 || a.Size.Height <= 0
}

// Contains returns true if p is inside the area.
// Points on the left and top edges are inside; points on the right and bottom edges are outside.
func (a Area) Contains(p Point) bool {
	return p.X >= a.MinX() && p.X < a.MaxX() && p.Y >= a.MinY() && p.Y < a.MaxY()
}

// ContainsArea returns true if other is fully contained within this area.
func (a Area) ContainsArea(other Area) bool {
	if other.IsEmpty() {
		return true
	}
	if a.IsEmpty() {
		return false
	}
	return other.MinX() >= a.MinX() && other.MinY() >= a.MinY() &&
		other.MaxX() <= a.MaxX() && other.MaxY() <= a.MaxY()
}

// Inset returns a new Area shrunk by the given Edges.
// Negative values expand the area. The resulting size never goes below zero.
func (a Area) Inset(edges Edges) Area {
	return Area{
		Origin: a.Origin.Add(edges.TopLeft()),
		Size: Size{
			Width:  a.Size.Width - edges.Horizontal(),
			Height: a.Size.Height - edges.Vertical(),
		}.Clamp(),
	}
}

// Outset returns a new Area expanded outward by the given Edges.
func (a Area) Outset(edges Edges) Area {
	return Area{
		Origin: a.Origin.Sub(edges.TopLeft()),
		Size: Size{
			Width:  a.Size.Width + edges.Horizontal(),
			Height: a.Size.Height + edges.Vertical(),
		}.Clamp(),
	}
}

// Translate returns a new Area moved by (dx, dy).
func (a Area) Translate(dx, dy float64) Area {
	a.Origin = a.Origin.Add(Point{X: dx, Y: dy})
	return a
}

// Intersect returns the intersection of two areas.
// If the areas don't overlap, returns an empty Area.
func (a Area) Intersect(other Area) Area {
	x := max(a.MinX(), other.MinX())
	y := max(a.MinY(), other.MinY())
	right := min(a.MaxX(), other.MaxX())
	bottom := min(a.MaxY(), other.MaxY())

	if right <= x || bottom <= y {
		return Area{}
	}
	return NewArea(x, y, right-x, bottom-y)
}

// Union returns the smallest area that contains both areas.
// If either area is empty, returns the other one.
func (a Area) Union(other Area) Area {
	if a.IsEmpty() {
		return other
	}
	if other.IsEmpty() {
		return a
	}

	x := min(a.MinX(), other.MinX())
	y := min(a.MinY(), other.MinY())
	right := max(a.MaxX(), other.MaxX())
	bottom := max(a.MaxY(), other.MaxY())

	return NewArea(x, y, right-x, bottom-y)
}

// Intersects returns true if the two areas overlap.
// Touching edges do not count as overlapping.
func (a Area) Intersects(other Area) bool {
	return !a.Intersect(other).IsEmpty()
}
