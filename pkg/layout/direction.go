package layout

// Direction specifies the axis along which a node stacks its children.
type Direction uint8

const (
	Vertical   Direction = iota // Children stacked top-to-bottom
	Horizontal                  // Children stacked left-to-right
)

// String returns a readable name for the direction.
func (d Direction) String() string {
	if d == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Alignment specifies how children are distributed along an axis.
type Alignment uint8

const (
	AlignStart        Alignment = iota // Pack at start
	AlignCenter                        // Center children
	AlignEnd                           // Pack at end
	AlignSpaceBetween                  // Even space between, none at edges
	AlignSpaceAround                   // Even space around each child
	AlignSpaceEvenly                   // Equal space between and at edges
)

// isCrossStart reports whether a behaves as AlignStart on a cross axis.
func (a Alignment) isCrossStart() bool {
	return a != AlignCenter && a != AlignEnd
}

// alignOffset returns the initial offset for the first child along the
// main axis, given the free space left after all children.
func alignOffset(align Alignment, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch align {
	case AlignEnd:
		return freeSpace
	case AlignCenter:
		return freeSpace / 2
	case AlignSpaceAround:
		return freeSpace / float64(itemCount*2)
	case AlignSpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default: // AlignStart, AlignSpaceBetween
		return 0
	}
}

// alignSpacing returns the extra spacing inserted between children along
// the main axis.
func alignSpacing(align Alignment, freeSpace float64, itemCount int) float64 {
	if freeSpace <= 0 || itemCount == 0 {
		return 0
	}

	switch align {
	case AlignSpaceBetween:
		if itemCount == 1 {
			return 0
		}
		return freeSpace / float64(itemCount-1)
	case AlignSpaceAround:
		return freeSpace / float64(itemCount)
	case AlignSpaceEvenly:
		return freeSpace / float64(itemCount+1)
	default: // AlignStart, AlignEnd, AlignCenter
		return 0
	}
}

// crossOffset returns the offset of a child on the cross axis.
func crossOffset(align Alignment, crossSize, itemSize float64) float64 {
	switch align {
	case AlignEnd:
		return crossSize - itemSize
	case AlignCenter:
		return (crossSize - itemSize) / 2
	default:
		return 0
	}
}
