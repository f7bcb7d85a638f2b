package layout

// Position controls whether a node takes part in its parent's stacking.
type Position struct {
	absolute bool
	x, y     float64
}

// Stacked returns the default Position: the node is stacked with its
// siblings along the parent's main axis.
func Stacked() Position {
	return Position{}
}

// Absolute returns a Position that takes the node out of the stacking flow
// and places it at (x, y) relative to the parent's content origin.
func Absolute(x, y float64) Position {
	return Position{absolute: true, x: x, y: y}
}

// IsAbsolute reports whether the node is out of flow.
func (p Position) IsAbsolute() bool {
	return p.absolute
}

// Offset returns the position relative to the parent's content origin.
// It is zero for stacked nodes.
func (p Position) Offset() Point {
	return Point{X: p.x, Y: p.y}
}

// Node describes the layout intent of one tree entry. The engine only reads
// nodes; hosts replace them and call [Engine.Invalidate].
type Node struct {
	// Sizing
	Width     Value
	Height    Value
	MinWidth  Value
	MinHeight Value
	MaxWidth  Value
	MaxHeight Value

	// Container properties
	Direction      Direction
	MainAlignment  Alignment
	CrossAlignment Alignment
	Spacing        float64 // Space between stacked children (main axis only)

	// Scroll offsets applied to the positions of all children
	OffsetX float64
	OffsetY float64

	Position Position

	// Spacing
	Padding Edges
	Margin  Edges
}

// NodeOption configures a Node.
type NodeOption func(*Node)

// NewNode creates a Node with fit-content width and height, stacking its
// children vertically, and applies opts in order.
func NewNode(opts ...NodeOption) Node {
	n := Node{
		Width:     Inner(),
		Height:    Inner(),
		Direction: Vertical,
	}
	for _, opt := range opts {
		opt(&n)
	}
	return n
}

// WithWidth sets the width rule.
func WithWidth(v Value) NodeOption {
	return func(n *Node) {
		n.Width = v
	}
}

// WithHeight sets the height rule.
func WithHeight(v Value) NodeOption {
	return func(n *Node) {
		n.Height = v
	}
}

// WithSize sets both width and height rules.
func WithSize(width, height Value) NodeOption {
	return func(n *Node) {
		n.Width = width
		n.Height = height
	}
}

// WithMinWidth sets the minimum width constraint.
func WithMinWidth(v Value) NodeOption {
	return func(n *Node) {
		n.MinWidth = v
	}
}

// WithMinHeight sets the minimum height constraint.
func WithMinHeight(v Value) NodeOption {
	return func(n *Node) {
		n.MinHeight = v
	}
}

// WithMaxWidth sets the maximum width constraint.
func WithMaxWidth(v Value) NodeOption {
	return func(n *Node) {
		n.MaxWidth = v
	}
}

// WithMaxHeight sets the maximum height constraint.
func WithMaxHeight(v Value) NodeOption {
	return func(n *Node) {
		n.MaxHeight = v
	}
}

// WithDirection sets the stacking direction for children.
func WithDirection(d Direction) NodeOption {
	return func(n *Node) {
		n.Direction = d
	}
}

// WithMainAlignment sets how children are distributed along the main axis.
func WithMainAlignment(a Alignment) NodeOption {
	return func(n *Node) {
		n.MainAlignment = a
	}
}

// WithCrossAlignment sets how children are positioned on the cross axis.
func WithCrossAlignment(a Alignment) NodeOption {
	return func(n *Node) {
		n.CrossAlignment = a
	}
}

// WithSpacing sets the gap between stacked children.
func WithSpacing(s float64) NodeOption {
	return func(n *Node) {
		n.Spacing = s
	}
}

// WithPadding sets the padding.
func WithPadding(e Edges) NodeOption {
	return func(n *Node) {
		n.Padding = e
	}
}

// WithMargin sets the margin.
func WithMargin(e Edges) NodeOption {
	return func(n *Node) {
		n.Margin = e
	}
}

// WithOffset sets the scroll offsets applied to all children.
func WithOffset(x, y float64) NodeOption {
	return func(n *Node) {
		n.OffsetX = x
		n.OffsetY = y
	}
}

// WithPosition sets whether the node is stacked or absolutely positioned.
func WithPosition(p Position) NodeOption {
	return func(n *Node) {
		n.Position = p
	}
}

// IsInnerSized reports whether the node derives its size from its children
// on at least one axis.
func (n Node) IsInnerSized() bool {
	return n.Width.IsInner() || n.Height.IsInner()
}

// DependsOnChildren reports whether a change in the size of any child can
// move or resize other children, or the node itself.
func (n Node) DependsOnChildren() bool {
	return n.IsInnerSized() || n.MainAlignment != AlignStart || !n.CrossAlignment.isCrossStart()
}

// mainRule returns the sizing rule along the main axis of dir.
func (n Node) mainRule(dir Direction) Value {
	if dir == Horizontal {
		return n.Width
	}
	return n.Height
}

// crossRule returns the sizing rule along the cross axis of dir.
func (n Node) crossRule(dir Direction) Value {
	if dir == Horizontal {
		return n.Height
	}
	return n.Width
}

// HasFillMain reports whether the node takes a share of leftover space when
// stacked by a parent with direction dir.
func (n Node) HasFillMain(dir Direction) bool {
	return !n.Position.IsAbsolute() && n.mainRule(dir).IsFill()
}

// offset returns the scroll offset as a Point.
func (n Node) offset() Point {
	return Point{X: n.OffsetX, Y: n.OffsetY}
}

// clamp restricts v to the range [minVal, maxVal].
// If minVal > maxVal, minVal wins (matches CSS behavior).
func clamp(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if maxVal >= minVal && v > maxVal {
		return maxVal
	}
	return v
}
