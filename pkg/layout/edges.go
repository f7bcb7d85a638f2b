package layout

// Edges represents values for four sides of a box.
type Edges struct {
	Top, Right, Bottom, Left float64
}

// EdgeAll creates Edges with the same value on all sides.
func EdgeAll(n float64) Edges {
	return Edges{Top: n, Right: n, Bottom: n, Left: n}
}

// EdgeSymmetric creates Edges with vertical (top/bottom) and horizontal (left/right) values.
func EdgeSymmetric(v, h float64) Edges {
	return Edges{Top: v, Right: h, Bottom: v, Left: h}
}

// EdgeTRBL creates Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l float64) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Horizontal returns the sum of Left and Right.
func (e Edges) Horizontal() float64 {
	return e.Left + e.Right
}

// Vertical returns the sum of Top and Bottom.
func (e Edges) Vertical() float64 {
	return e.Top + e.Bottom
}

// Main returns the sum of both edges along the main axis of dir.
func (e Edges) Main(dir Direction) float64 {
	if dir == Horizontal {
		return e.Horizontal()
	}
	return e.Vertical()
}

// Cross returns the sum of both edges along the cross axis of dir.
func (e Edges) Cross(dir Direction) float64 {
	if dir == Horizontal {
		return e.Vertical()
	}
	return e.Horizontal()
}

// Total returns the combined edges as a Size.
func (e Edges) Total() Size {
	return Size{Width: e.Horizontal(), Height: e.Vertical()}
}

// TopLeft returns the offset introduced by the leading edges.
func (e Edges) TopLeft() Point {
	return Point{X: e.Left, Y: e.Top}
}

// IsZero returns true if all edge values are zero.
func (e Edges) IsZero() bool {
	return e.Top == 0 && e.Right == 0 && e.Bottom == 0 && e.Left == 0
}
