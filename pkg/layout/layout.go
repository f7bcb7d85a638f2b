package layout

// LayoutNode is the cached result for one node.
type LayoutNode struct {
	// Area is the border box: the slot allocated by the parent after
	// applying this node's margin. Use for hit testing and bounds.
	Area Area

	// InnerArea is Area minus padding, the area where children are placed.
	InnerArea Area

	// InnerSizes is the extent of the stacked children: the sum of their
	// main axis sizes plus spacing, and the largest cross axis size.
	// Scroll views compare it with InnerArea.
	InnerSizes Size

	// Margin is the margin that was applied around Area.
	Margin Edges

	// Available is the slot the parent handed down, and ParentInner the
	// parent's content area that percentages were resolved against.
	// Together they key the validity of this entry.
	Available   Area
	ParentInner Area

	// Generation is the measurement pass that wrote this entry.
	Generation uint64

	placement placement
}

// placement is how the parent computed the slot of a node: out of flow, as
// a share of the leftover main axis space, or as the whole content area.
// A node whose placement changes needs its parent to compute a new slot.
type placement struct {
	absolute bool
	fill     bool
	weight   float64
}

// placementOf returns the placement of node inside a parent stacking its
// children along dir.
func placementOf(node Node, dir Direction) placement {
	if node.Position.IsAbsolute() {
		return placement{absolute: true}
	}
	rule := node.mainRule(dir)
	if !rule.IsFill() {
		return placement{}
	}
	return placement{fill: true, weight: rule.weight()}
}

// Stats describes the work done by the most recent Measure call.
type Stats struct {
	Visited    int    // Nodes laid out and written to the cache
	Skipped    int    // Clean nodes whose cached result was reused
	Sized      int    // Non-committing size computations for fit-content parents
	Measured   int    // Results overridden by the external measurer
	Generation uint64 // Generation of the last completed pass
}
