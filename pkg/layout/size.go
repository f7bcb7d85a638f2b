package layout

// Size is a width/height pair.
type Size struct {
	Width, Height float64
}

// Main returns the extent along the main axis of dir.
func (s Size) Main(dir Direction) float64 {
	if dir == Horizontal {
		return s.Width
	}
	return s.Height
}

// Cross returns the extent along the cross axis of dir.
func (s Size) Cross(dir Direction) float64 {
	if dir == Horizontal {
		return s.Height
	}
	return s.Width
}

// WithMain returns a copy of s with the main axis extent of dir replaced.
func (s Size) WithMain(dir Direction, v float64) Size {
	if dir == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
	return s
}

// WithCross returns a copy of s with the cross axis extent of dir replaced.
func (s Size) WithCross(dir Direction, v float64) Size {
	if dir == Horizontal {
		s.Height = v
	} else {
		s.Width = v
	}
	return s
}

// Sub returns s shrunk by other on both axes. The result may be negative.
func (s Size) Sub(other Size) Size {
	return Size{Width: s.Width - other.Width, Height: s.Height - other.Height}
}

// Clamp returns s with negative extents replaced by zero.
func (s Size) Clamp() Size {
	return Size{Width: max(0, s.Width), Height: max(0, s.Height)}
}

// sizeOn builds a Size from main and cross axis extents.
func sizeOn(dir Direction, main, cross float64) Size {
	if dir == Horizontal {
		return Size{Width: main, Height: cross}
	}
	return Size{Width: cross, Height: main}
}
